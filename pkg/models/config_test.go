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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidateAppliesDefaults(t *testing.T) {
	cfg := Config{L2KeySeed: "seed", Storage: StorageConfig{Backend: StorageBackendMemory}}

	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":8090", cfg.ListenAddr)
	assert.Equal(t, Duration(25*time.Second), cfg.Monitor.PostBootWait)
	assert.Equal(t, 24, cfg.Monitor.DailyHour)
	assert.Equal(t, Duration(60*time.Second), cfg.Monitor.MaxScanInterval)
	assert.Equal(t, DefaultScorecardConfig(), cfg.Scorecard)
	assert.Equal(t, "wifi.scan.results", cfg.Feed.ScanSubject)
	assert.Equal(t, "events.wifihealth", cfg.Events.SubjectPrefix)
	assert.Equal(t, Duration(5*time.Second), cfg.API.StatusInterval)
}

func TestDefaultConfigKeepsExplicitZeroThresholds(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 2, cfg.Monitor.MinBssid2G)
	assert.Equal(t, 2, cfg.Monitor.MinBssidAbove2G)

	body := `{"l2_key_seed":"seed","storage":{"backend":"memory"},"monitor":{"min_bssid_2g":0}}`
	require.NoError(t, json.Unmarshal([]byte(body), &cfg))
	require.NoError(t, cfg.Validate())

	assert.Zero(t, cfg.Monitor.MinBssid2G)
	assert.Equal(t, 2, cfg.Monitor.MinBssidAbove2G)
	assert.Equal(t, 24, cfg.Monitor.DailyHour)
}

func TestConfigValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{
			name: "missing seed",
			cfg:  Config{Storage: StorageConfig{Backend: StorageBackendMemory}},
			want: errL2KeySeedRequired,
		},
		{
			name: "daily hour out of range",
			cfg:  Config{L2KeySeed: "s", Monitor: MonitorConfig{DailyHour: 25}},
			want: errInvalidDailyHour,
		},
		{
			name: "nats backend without url",
			cfg:  Config{L2KeySeed: "s"},
			want: errNatsURLRequired,
		},
		{
			name: "sqlite backend without path",
			cfg:  Config{L2KeySeed: "s", Storage: StorageConfig{Backend: StorageBackendSQLite}},
			want: errSQLitePathRequired,
		},
		{
			name: "unknown backend",
			cfg:  Config{L2KeySeed: "s", Storage: StorageConfig{Backend: "etcd"}},
			want: errInvalidStorageBackend,
		},
		{
			name: "ratio below one",
			cfg: Config{
				L2KeySeed: "s",
				Storage:   StorageConfig{Backend: StorageBackendMemory},
				Scorecard: ScorecardConfig{RatioThreshold: 0.5},
			},
			want: errInvalidRatio,
		},
		{
			name: "events without url",
			cfg: Config{
				L2KeySeed: "s",
				Storage:   StorageConfig{Backend: StorageBackendMemory},
				Events:    EventsConfig{Enabled: true},
			},
			want: errNatsURLRequired,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.cfg.Validate(), tc.want)
		})
	}
}

func TestDurationUnmarshal(t *testing.T) {
	var cfg MonitorConfig

	require.NoError(t, json.Unmarshal([]byte(`{"post_boot_wait":"30s","max_scan_interval":1000000000}`), &cfg))
	assert.Equal(t, Duration(30*time.Second), cfg.PostBootWait)
	assert.Equal(t, Duration(time.Second), cfg.MaxScanInterval)

	require.Error(t, json.Unmarshal([]byte(`{"post_boot_wait":"soon"}`), &cfg))
	require.ErrorIs(t, json.Unmarshal([]byte(`{"post_boot_wait":true}`), &cfg), errInvalidDuration)

	out, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(out))
}
