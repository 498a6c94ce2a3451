/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/carverauto/wifihealth/pkg/logger"
)

var (
	errInvalidDuration       = errors.New("invalid duration")
	errL2KeySeedRequired     = errors.New("l2_key_seed is required")
	errInvalidDailyHour      = errors.New("monitor.daily_hour must be within 0..24")
	errInvalidThreshold      = errors.New("monitor scan thresholds must be positive")
	errInvalidStorageBackend = errors.New("invalid storage backend")
	errNatsURLRequired       = errors.New("nats_url is required")
	errSQLitePathRequired    = errors.New("storage.sqlite_path is required for the sqlite backend")
	errInvalidRatio          = errors.New("scorecard.ratio_threshold must be >= 1")

	// ErrInvalidMobilityState is returned when a mobility state cannot be parsed.
	ErrInvalidMobilityState = errors.New("invalid mobility state")
)

// Duration is a time.Duration that unmarshals from either a Go duration string or
// a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

const (
	StorageBackendNATS   = "nats"
	StorageBackendSQLite = "sqlite"
	StorageBackendMemory = "memory"
)

// MonitorConfig tunes the health monitor detection cycles.
type MonitorConfig struct {
	// PostBootWait is how long to wait after start before running post-boot detection. It
	// must be long enough for the persisted state read to complete.
	PostBootWait Duration `json:"post_boot_wait"`
	// DailyHour is the wall-clock hour of the daily detection alarm; 24 means next midnight.
	DailyHour int `json:"daily_hour"`
	// MaxScanInterval bounds the gap between the last pre-boot and first post-boot scans.
	MaxScanInterval Duration `json:"max_scan_interval"`
	// MinBssid2G and MinBssidAbove2G are the per-band counts that make a zero count on the
	// other side of the boot look broken. 0 flags any empty band.
	MinBssid2G      int      `json:"min_bssid_2g"`
	MinBssidAbove2G int      `json:"min_bssid_above_2g"`
	Verbose         bool     `json:"verbose"`
}

// ScorecardConfig holds thresholds for per-network daily failure detection.
type ScorecardConfig struct {
	MinConnectionAttempts int     `json:"min_connection_attempts"`
	MinFailureCount       int     `json:"min_failure_count"`
	RatioThreshold        float64 `json:"ratio_threshold"`
	RateDeltaThreshold    float64 `json:"rate_delta_threshold"`
	HighRateThreshold     float64 `json:"high_rate_threshold"`
}

// StorageConfig selects the byte store that backs persisted state.
type StorageConfig struct {
	Backend    string `json:"backend"`
	NATSURL    string `json:"nats_url,omitempty"`
	Bucket     string `json:"bucket,omitempty"`
	SQLitePath string `json:"sqlite_path,omitempty"`
}

// FeedConfig describes where live scan and connection events arrive.
type FeedConfig struct {
	NATSURL           string `json:"nats_url"`
	ScanSubject       string `json:"scan_subject"`
	ConnectionSubject string `json:"connection_subject"`
}

// EventsConfig controls publishing of detection reports.
type EventsConfig struct {
	Enabled       bool   `json:"enabled"`
	NATSURL       string `json:"nats_url"`
	Stream        string `json:"stream"`
	SubjectPrefix string `json:"subject_prefix"`
}

// CORSConfig lists the origins allowed to call the admin API from a browser.
type CORSConfig struct {
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowCredentials bool     `json:"allow_credentials"`
}

// APIConfig secures and tunes the admin API.
type APIConfig struct {
	APIKey string     `json:"api_key,omitempty"`
	CORS   CORSConfig `json:"cors"`
	// StatusInterval is the push period of the status stream.
	StatusInterval Duration `json:"status_interval"`
}

// Config is the root configuration of the wifihealth daemon.
type Config struct {
	ListenAddr string          `json:"listen_addr"`
	L2KeySeed  string          `json:"l2_key_seed"`
	Interface  string          `json:"interface"`
	Networks   []string        `json:"networks"`
	Monitor    MonitorConfig   `json:"monitor"`
	Scorecard  ScorecardConfig `json:"scorecard"`
	Storage    StorageConfig   `json:"storage"`
	Feed       FeedConfig      `json:"feed"`
	Events     EventsConfig    `json:"events"`
	API        APIConfig       `json:"api"`
	Logging    *logger.Config  `json:"logging,omitempty"`
}

// DefaultMonitorConfig returns the detection parameters used when none are configured.
func DefaultMonitorConfig() MonitorConfig {
	return MonitorConfig{
		PostBootWait:    Duration(25 * time.Second),
		DailyHour:       24,
		MaxScanInterval: Duration(60 * time.Second),
		MinBssid2G:      2,
		MinBssidAbove2G: 2,
	}
}

// DefaultScorecardConfig returns the default daily detection thresholds.
func DefaultScorecardConfig() ScorecardConfig {
	return ScorecardConfig{
		MinConnectionAttempts: 10,
		MinFailureCount:       2,
		RatioThreshold:        2.0,
		RateDeltaThreshold:    0.1,
		HighRateThreshold:     0.3,
	}
}

// DefaultConfig returns a Config with every default in place. Loaders decode on top of it,
// so fields where zero is meaningful, like the BSSID thresholds, keep an explicit 0.
func DefaultConfig() Config {
	cfg := Config{Monitor: DefaultMonitorConfig()}
	cfg.ApplyDefaults()

	return cfg
}

// ApplyDefaults fills zero values with defaults. The BSSID thresholds are left alone since
// 0 is a valid setting; DefaultConfig supplies them.
func (c *Config) ApplyDefaults() {
	defMon := DefaultMonitorConfig()

	if c.ListenAddr == "" {
		c.ListenAddr = ":8090"
	}

	if c.API.StatusInterval == 0 {
		c.API.StatusInterval = Duration(5 * time.Second)
	}

	if c.Monitor.PostBootWait == 0 {
		c.Monitor.PostBootWait = defMon.PostBootWait
	}

	if c.Monitor.DailyHour == 0 {
		c.Monitor.DailyHour = defMon.DailyHour
	}

	if c.Monitor.MaxScanInterval == 0 {
		c.Monitor.MaxScanInterval = defMon.MaxScanInterval
	}

	defScore := DefaultScorecardConfig()

	if c.Scorecard.MinConnectionAttempts == 0 {
		c.Scorecard.MinConnectionAttempts = defScore.MinConnectionAttempts
	}

	if c.Scorecard.MinFailureCount == 0 {
		c.Scorecard.MinFailureCount = defScore.MinFailureCount
	}

	if c.Scorecard.RatioThreshold == 0 {
		c.Scorecard.RatioThreshold = defScore.RatioThreshold
	}

	if c.Scorecard.RateDeltaThreshold == 0 {
		c.Scorecard.RateDeltaThreshold = defScore.RateDeltaThreshold
	}

	if c.Scorecard.HighRateThreshold == 0 {
		c.Scorecard.HighRateThreshold = defScore.HighRateThreshold
	}

	if c.Storage.Backend == "" {
		c.Storage.Backend = StorageBackendNATS
	}

	if c.Storage.Bucket == "" {
		c.Storage.Bucket = "wifihealth"
	}

	if c.Feed.ScanSubject == "" {
		c.Feed.ScanSubject = "wifi.scan.results"
	}

	if c.Feed.ConnectionSubject == "" {
		c.Feed.ConnectionSubject = "wifi.connection.events"
	}

	if c.Events.Stream == "" {
		c.Events.Stream = "events"
	}

	if c.Events.SubjectPrefix == "" {
		c.Events.SubjectPrefix = "events.wifihealth"
	}
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	c.ApplyDefaults()

	if c.L2KeySeed == "" {
		return errL2KeySeedRequired
	}

	if c.Monitor.DailyHour < 0 || c.Monitor.DailyHour > 24 {
		return errInvalidDailyHour
	}

	if c.Monitor.MinBssid2G < 0 || c.Monitor.MinBssidAbove2G < 0 {
		return errInvalidThreshold
	}

	if c.Scorecard.RatioThreshold < 1 {
		return errInvalidRatio
	}

	switch strings.ToLower(c.Storage.Backend) {
	case StorageBackendNATS:
		if c.Storage.NATSURL == "" {
			return fmt.Errorf("storage: %w", errNatsURLRequired)
		}
	case StorageBackendSQLite:
		if c.Storage.SQLitePath == "" {
			return errSQLitePathRequired
		}
	case StorageBackendMemory:
	default:
		return fmt.Errorf("%w: %s", errInvalidStorageBackend, c.Storage.Backend)
	}

	if c.Events.Enabled && c.Events.NATSURL == "" {
		return fmt.Errorf("events: %w", errNatsURLRequired)
	}

	return nil
}
