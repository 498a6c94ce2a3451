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

package scorecard

import (
	"time"

	"github.com/carverauto/wifihealth/pkg/models"
)

// Counter indexes NetworkConnectionStats.
type Counter int

const (
	CntConnectionAttempt Counter = iota
	CntAssocRejection
	CntAssocTimeout
	CntAuthFailure
	CntConnectionFailure
	CntDisconnection
	CntDisconnectionNonlocal
	CntShortConnectionNonlocal
	CntConnectionDurationSec

	// NumCounters is the number of Counter values.
	NumCounters = 9
)

var counterNames = [NumCounters]string{
	"connection_attempt",
	"assoc_rejection",
	"assoc_timeout",
	"auth_failure",
	"connection_failure",
	"disconnection",
	"disconnection_nonlocal",
	"short_connection_nonlocal",
	"connection_duration_sec",
}

func (c Counter) String() string {
	return counterNames[c]
}

// reasonCounters maps each failure reason to the counter it is detected on.
var reasonCounters = [models.NumFailureReasons]Counter{
	models.ReasonAssocRejection:          CntAssocRejection,
	models.ReasonAssocTimeout:            CntAssocTimeout,
	models.ReasonAuthFailure:             CntAuthFailure,
	models.ReasonConnectionFailure:       CntConnectionFailure,
	models.ReasonDisconnectionNonlocal:   CntDisconnectionNonlocal,
	models.ReasonShortConnectionNonlocal: CntShortConnectionNonlocal,
}

const (
	// Non-local disconnections only count when the link was healthy; drops on a weak or
	// slow link are expected.
	minRSSIDbm      = -68
	minTxSpeedMbps  = 54
	shortConnection = 20 * time.Second
)

// NetworkConnectionStats is a fixed vector of counters.
type NetworkConnectionStats struct {
	counts [NumCounters]int
}

func (s *NetworkConnectionStats) Count(c Counter) int {
	return s.counts[c]
}

func (s *NetworkConnectionStats) Add(c Counter, n int) {
	s.counts[c] += n
}

// Accumulate adds every counter of other into s.
func (s *NetworkConnectionStats) Accumulate(other *NetworkConnectionStats) {
	for i := range s.counts {
		s.counts[i] += other.counts[i]
	}
}

func (s *NetworkConnectionStats) Clear() {
	s.counts = [NumCounters]int{}
}

func (s *NetworkConnectionStats) IsEmpty() bool {
	return s.counts == [NumCounters]int{}
}

// AsMap renders non-zero counters keyed by name.
func (s *NetworkConnectionStats) AsMap() map[string]int {
	out := make(map[string]int)

	for i, n := range s.counts {
		if n != 0 {
			out[counterNames[i]] = n
		}
	}

	return out
}

// record folds one connection event into the counters.
func (s *NetworkConnectionStats) record(event *models.ConnectionEvent) {
	switch event.Kind {
	case models.EventConnectionAttempt:
		s.counts[CntConnectionAttempt]++
	case models.EventAssocRejection:
		s.counts[CntAssocRejection]++
	case models.EventAssocTimeout:
		s.counts[CntAssocTimeout]++
	case models.EventAuthFailure:
		s.counts[CntAuthFailure]++
	case models.EventConnectionFailure:
		s.counts[CntConnectionFailure]++
	case models.EventDisconnection:
		s.counts[CntDisconnection]++
		s.counts[CntConnectionDurationSec] += event.DurationSec

		if !event.Nonlocal || !healthyLink(event) {
			return
		}

		s.counts[CntDisconnectionNonlocal]++

		if time.Duration(event.DurationSec)*time.Second < shortConnection {
			s.counts[CntShortConnectionNonlocal]++
		}
	}
}

// healthyLink treats unreported signal and speed as healthy.
func healthyLink(event *models.ConnectionEvent) bool {
	if event.RSSI != 0 && event.RSSI < minRSSIDbm {
		return false
	}

	return event.TxLinkSpeedMbps == 0 || event.TxLinkSpeedMbps >= minTxSpeedMbps
}
