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

// Package models holds the data types shared across wifihealth packages.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// UnknownSSID is the placeholder the WiFi stack reports when the SSID cannot be determined.
const UnknownSSID = "<unknown ssid>"

// DefaultMACAddress is the placeholder MAC used for device-global records that are not tied
// to any BSSID.
const DefaultMACAddress = "02:00:00:00:00:00"

// FailureReason enumerates the connection failure classes tracked by daily detection.
type FailureReason int

const (
	ReasonAssocRejection FailureReason = iota
	ReasonAssocTimeout
	ReasonAuthFailure
	ReasonConnectionFailure
	ReasonDisconnectionNonlocal
	ReasonShortConnectionNonlocal

	// NumFailureReasons is the number of FailureReason codes.
	NumFailureReasons = 6
)

var failureReasonNames = [NumFailureReasons]string{
	"assoc_rejection",
	"assoc_timeout",
	"auth_failure",
	"connection_failure",
	"disconnection_nonlocal",
	"short_connection_nonlocal",
}

// AllFailureReasons lists every reason code in index order.
func AllFailureReasons() []FailureReason {
	reasons := make([]FailureReason, NumFailureReasons)
	for i := range reasons {
		reasons[i] = FailureReason(i)
	}

	return reasons
}

func (r FailureReason) String() string {
	if r < 0 || int(r) >= NumFailureReasons {
		return fmt.Sprintf("reason(%d)", int(r))
	}

	return failureReasonNames[r]
}

// FailureStats counts, per failure reason, how many networks showed a given pattern.
type FailureStats struct {
	counts [NumFailureReasons]int
}

// Clear resets every counter to zero.
func (f *FailureStats) Clear() {
	f.counts = [NumFailureReasons]int{}
}

func (f *FailureStats) Count(reason FailureReason) int {
	return f.counts[reason]
}

func (f *FailureStats) SetCount(reason FailureReason, count int) {
	f.counts[reason] = count
}

func (f *FailureStats) Increment(reason FailureReason) {
	f.counts[reason]++
}

// Total returns the sum across all reasons.
func (f *FailureStats) Total() int {
	total := 0
	for _, c := range f.counts {
		total += c
	}

	return total
}

// AsMap renders the counters keyed by reason name, used for reports.
func (f *FailureStats) AsMap() map[string]int {
	out := make(map[string]int, NumFailureReasons)
	for i, c := range f.counts {
		out[failureReasonNames[i]] = c
	}

	return out
}

// MarshalJSON encodes FailureStats as a reason-name keyed object.
func (f FailureStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.AsMap())
}

// DetectionSufficiency is the per-network outcome of daily detection.
type DetectionSufficiency int

const (
	Insufficient DetectionSufficiency = iota
	SufficientRecentOnly
	SufficientRecentPrev
)

func (d DetectionSufficiency) String() string {
	switch d {
	case SufficientRecentOnly:
		return "sufficient_recent_only"
	case SufficientRecentPrev:
		return "sufficient_recent_prev"
	case Insufficient:
		return "insufficient"
	default:
		return fmt.Sprintf("sufficiency(%d)", int(d))
	}
}

// MobilityState mirrors the device mobility hint supplied by the host.
type MobilityState int

const (
	MobilityUnknown MobilityState = iota
	MobilityHighMovement
	MobilityLowMovement
	MobilityStationary
)

var mobilityNames = map[MobilityState]string{
	MobilityUnknown:      "unknown",
	MobilityHighMovement: "high_movement",
	MobilityLowMovement:  "low_movement",
	MobilityStationary:   "stationary",
}

func (m MobilityState) String() string {
	if name, ok := mobilityNames[m]; ok {
		return name
	}

	return fmt.Sprintf("mobility(%d)", int(m))
}

// ParseMobilityState accepts either the symbolic name or the numeric value.
func ParseMobilityState(s string) (MobilityState, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for state, name := range mobilityNames {
		if name == s || fmt.Sprint(int(state)) == s {
			return state, nil
		}
	}

	return MobilityUnknown, fmt.Errorf("%w: %q", ErrInvalidMobilityState, s)
}

// ScanBand describes the spectrum coverage of a completed scan.
type ScanBand string

const (
	BandUnspecified ScanBand = "unspecified"
	Band24GHz       ScanBand = "2.4ghz"
	Band5GHz        ScanBand = "5ghz"
	Band5GHzDFS     ScanBand = "5ghz_dfs"
	Band6GHz        ScanBand = "6ghz"
	BandBoth        ScanBand = "both"
	BandBothWithDFS ScanBand = "both_with_dfs"
)

// IsFullSpectrum reports whether a scan with this coverage spans both the 2.4GHz band
// and the bands above it.
func (b ScanBand) IsFullSpectrum() bool {
	return b == BandBoth || b == BandBothWithDFS
}

// ScanResult is a single BSSID detection from a scan.
type ScanResult struct {
	BSSID        string `json:"bssid"`
	SSID         string `json:"ssid,omitempty"`
	FrequencyMHz int    `json:"frequency"`
	RSSI         int    `json:"rssi"`
}

// Is24GHz reports whether the detection was on the 2.4GHz band.
func (r ScanResult) Is24GHz() bool {
	return r.FrequencyMHz > 2400 && r.FrequencyMHz < 2500
}

// Network is a configured (saved) WiFi network.
type Network struct {
	SSID string `json:"ssid"`
}

// IsValid reports whether the network can be tracked. Networks without an SSID or with the
// unknown-SSID placeholder are skipped everywhere.
func (n *Network) IsValid() bool {
	return n != nil && n.SSID != "" && n.SSID != UnknownSSID
}

// ConnectionEventKind classifies a connection lifecycle event.
type ConnectionEventKind string

const (
	EventConnectionAttempt ConnectionEventKind = "connection_attempt"
	EventAssocRejection    ConnectionEventKind = "assoc_rejection"
	EventAssocTimeout      ConnectionEventKind = "assoc_timeout"
	EventAuthFailure       ConnectionEventKind = "auth_failure"
	EventConnectionFailure ConnectionEventKind = "connection_failure"
	EventDisconnection     ConnectionEventKind = "disconnection"
)

// ConnectionEvent is one connection lifecycle event reported by the WiFi stack.
type ConnectionEvent struct {
	SSID string              `json:"ssid"`
	Kind ConnectionEventKind `json:"kind"`
	// Nonlocal marks a disconnection not initiated by this device.
	Nonlocal        bool      `json:"nonlocal,omitempty"`
	DurationSec     int       `json:"duration_sec,omitempty"`
	RSSI            int       `json:"rssi,omitempty"`
	TxLinkSpeedMbps int       `json:"tx_link_speed_mbps,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// NetworkStats is the reportable form of one network's connection statistics.
type NetworkStats struct {
	SSID          string         `json:"ssid"`
	Recent        map[string]int `json:"recent"`
	CurrentBuild  map[string]int `json:"current_build"`
	PreviousBuild map[string]int `json:"previous_build"`
}
