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
	"github.com/carverauto/wifihealth/pkg/models"
)

// PerNetwork holds one network's statistics in three windows: the recent (current day)
// window, the history accumulated under the running software build, and the history of the
// build before it.
type PerNetwork struct {
	ssid string
	key  string
	cfg  models.ScorecardConfig

	recent         NetworkConnectionStats
	statsCurrBuild NetworkConnectionStats
	statsPrevBuild NetworkConnectionStats

	changed bool
	// loaded is set once the persisted record has been merged or found absent; later
	// reads are ignored.
	loaded bool
}

func newPerNetwork(ssid, key string, cfg models.ScorecardConfig) *PerNetwork {
	return &PerNetwork{ssid: ssid, key: key, cfg: cfg}
}

func (p *PerNetwork) SSID() string {
	return p.ssid
}

func (p *PerNetwork) Recent() *NetworkConnectionStats {
	return &p.recent
}

func (p *PerNetwork) CurrentBuildStats() *NetworkConnectionStats {
	return &p.statsCurrBuild
}

func (p *PerNetwork) PreviousBuildStats() *NetworkConnectionStats {
	return &p.statsPrevBuild
}

func (p *PerNetwork) record(event *models.ConnectionEvent) {
	p.recent.record(event)
	p.changed = true
}

// DailyDetection compares the recent window against a baseline: the previous build's
// history when it has enough samples, otherwise the running build's history. With no usable
// baseline only absolute failure rates are judged.
func (p *PerNetwork) DailyDetection(decrease, increase, high *models.FailureStats) models.DetectionSufficiency {
	if !p.sufficient(&p.recent) {
		return models.Insufficient
	}

	var baseline *NetworkConnectionStats

	switch {
	case p.sufficient(&p.statsPrevBuild):
		baseline = &p.statsPrevBuild
	case p.sufficient(&p.statsCurrBuild):
		baseline = &p.statsCurrBuild
	}

	if baseline == nil {
		for _, reason := range models.AllFailureReasons() {
			if p.isHigh(reason) {
				high.Increment(reason)
			}
		}

		return models.SufficientRecentOnly
	}

	for _, reason := range models.AllFailureReasons() {
		c := reasonCounters[reason]

		recentCount := p.recent.Count(c)
		baseCount := baseline.Count(c)
		recentRate := rate(recentCount, p.recent.Count(CntConnectionAttempt))
		baseRate := rate(baseCount, baseline.Count(CntConnectionAttempt))

		switch {
		case p.significant(recentCount, recentRate, baseRate):
			increase.Increment(reason)
		case p.significant(baseCount, baseRate, recentRate):
			decrease.Increment(reason)
		}
	}

	return models.SufficientRecentPrev
}

func (p *PerNetwork) sufficient(stats *NetworkConnectionStats) bool {
	return stats.Count(CntConnectionAttempt) >= p.cfg.MinConnectionAttempts
}

// significant reports whether rate a stands out against rate b: enough failures behind a,
// an absolute gap of at least the delta threshold, and a relative gap of at least the
// ratio threshold.
func (p *PerNetwork) significant(countA int, a, b float64) bool {
	return countA >= p.cfg.MinFailureCount &&
		a-b >= p.cfg.RateDeltaThreshold &&
		a >= b*p.cfg.RatioThreshold
}

func (p *PerNetwork) isHigh(reason models.FailureReason) bool {
	count := p.recent.Count(reasonCounters[reason])

	return count >= p.cfg.MinFailureCount &&
		rate(count, p.recent.Count(CntConnectionAttempt)) >= p.cfg.HighRateThreshold
}

func rate(count, attempts int) float64 {
	if attempts == 0 {
		return 0
	}

	return float64(count) / float64(attempts)
}

func (p *PerNetwork) RecentConnectionDurationSec() int {
	return p.recent.Count(CntConnectionDurationSec)
}

// UpdateAfterDailyDetection rolls the recent window into the running build's history.
func (p *PerNetwork) UpdateAfterDailyDetection() {
	p.statsCurrBuild.Accumulate(&p.recent)
	p.recent.Clear()
	p.changed = true
}

// UpdateAfterSwBuildChange retires the running build's history to the previous slot.
func (p *PerNetwork) UpdateAfterSwBuildChange() {
	p.statsPrevBuild = p.statsCurrBuild
	p.statsCurrBuild.Clear()
	p.changed = true
}

func (p *PerNetwork) clear() {
	p.recent.Clear()
	p.statsCurrBuild.Clear()
	p.statsPrevBuild.Clear()
	p.changed = true
	p.loaded = true
}

// merge adds a persisted record into the live windows. Events recorded before the read
// completed are kept. Only the first completed read is merged.
func (p *PerNetwork) merge(persisted *persistedNetwork) {
	p.recent.Accumulate(&persisted.recent)
	p.statsCurrBuild.Accumulate(&persisted.currBuild)
	p.statsPrevBuild.Accumulate(&persisted.prevBuild)
}

func (p *PerNetwork) summary() models.NetworkStats {
	return models.NetworkStats{
		SSID:          p.ssid,
		Recent:        p.recent.AsMap(),
		CurrentBuild:  p.statsCurrBuild.AsMap(),
		PreviousBuild: p.statsPrevBuild.AsMap(),
	}
}
