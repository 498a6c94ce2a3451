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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkIsValid(t *testing.T) {
	assert.True(t, (&Network{SSID: "home"}).IsValid())
	assert.False(t, (&Network{}).IsValid())
	assert.False(t, (&Network{SSID: UnknownSSID}).IsValid())

	var missing *Network
	assert.False(t, missing.IsValid())
}

func TestScanResultIs24GHz(t *testing.T) {
	tests := []struct {
		freq int
		want bool
	}{
		{2400, false},
		{2412, true},
		{2484, true},
		{2500, false},
		{5180, false},
		{5955, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ScanResult{FrequencyMHz: tc.freq}.Is24GHz(), "frequency %d", tc.freq)
	}
}

func TestScanBandIsFullSpectrum(t *testing.T) {
	assert.True(t, BandBoth.IsFullSpectrum())
	assert.True(t, BandBothWithDFS.IsFullSpectrum())

	for _, band := range []ScanBand{BandUnspecified, Band24GHz, Band5GHz, Band5GHzDFS, Band6GHz} {
		assert.False(t, band.IsFullSpectrum(), band)
	}
}

func TestParseMobilityState(t *testing.T) {
	state, err := ParseMobilityState(" Stationary ")
	require.NoError(t, err)
	assert.Equal(t, MobilityStationary, state)

	state, err = ParseMobilityState("1")
	require.NoError(t, err)
	assert.Equal(t, MobilityHighMovement, state)

	_, err = ParseMobilityState("sprinting")
	require.ErrorIs(t, err, ErrInvalidMobilityState)

	assert.Equal(t, "mobility(9)", MobilityState(9).String())
}

func TestFailureStats(t *testing.T) {
	var stats FailureStats

	stats.Increment(ReasonAuthFailure)
	stats.Increment(ReasonAuthFailure)
	stats.SetCount(ReasonAssocTimeout, 3)

	assert.Equal(t, 2, stats.Count(ReasonAuthFailure))
	assert.Equal(t, 5, stats.Total())

	out, err := json.Marshal(stats)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"assoc_rejection": 0,
		"assoc_timeout": 3,
		"auth_failure": 2,
		"connection_failure": 0,
		"disconnection_nonlocal": 0,
		"short_connection_nonlocal": 0
	}`, string(out))

	stats.Clear()
	assert.Zero(t, stats.Total())

	assert.Equal(t, "reason(7)", FailureReason(7).String())
	assert.Len(t, AllFailureReasons(), NumFailureReasons)
}
