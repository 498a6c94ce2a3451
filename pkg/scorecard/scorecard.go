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
	"sort"

	"github.com/carverauto/wifihealth/pkg/hashutil"
	"github.com/carverauto/wifihealth/pkg/healthmonitor"
	"github.com/carverauto/wifihealth/pkg/logger"
	"github.com/carverauto/wifihealth/pkg/models"
	"github.com/carverauto/wifihealth/pkg/scheduler"
)

// NetworkStatsDataName is the memory store field holding a network's record.
const NetworkStatsDataName = "networkStats"

// ScoreCard caches PerNetwork records and persists them through a MemoryStore. Like the
// health monitor it does no locking: every method must run on the Executor, and read
// completions are posted back there.
type ScoreCard struct {
	cfg    models.ScorecardConfig
	seed   string
	exec   scheduler.Executor
	logger logger.Logger

	memoryStore MemoryStore
	networks    map[string]*PerNetwork
}

var _ healthmonitor.NetworkStatsStore = (*ScoreCard)(nil)

// New builds an empty ScoreCard.
func New(cfg models.ScorecardConfig, seed string, exec scheduler.Executor, log logger.Logger) (*ScoreCard, error) {
	switch {
	case exec == nil:
		return nil, errExecutorRequired
	case log == nil:
		return nil, errLoggerRequired
	case seed == "":
		return nil, errSeedRequired
	}

	return &ScoreCard{
		cfg:      cfg,
		seed:     seed,
		exec:     exec,
		logger:   log,
		networks: make(map[string]*PerNetwork),
	}, nil
}

// InstallMemoryStore attaches the persistence backend and reads every cached network whose
// persisted record has not been loaded yet.
func (s *ScoreCard) InstallMemoryStore(store MemoryStore) {
	if s.memoryStore != nil {
		s.logger.Warn().Msg("Replacing scorecard memory store")
	}

	s.memoryStore = store

	for _, network := range s.networks {
		s.requestRead(network)
	}
}

func (s *ScoreCard) keyFor(ssid string) string {
	return hashutil.L2Key(ssid, "", s.seed)
}

// LookupNetwork returns the record for ssid, creating it and requesting its persisted
// state on first use. Invalid SSIDs yield nil.
func (s *ScoreCard) LookupNetwork(ssid string) healthmonitor.PerNetworkStats {
	network := s.lookup(ssid)
	if network == nil {
		return nil
	}

	return network
}

func (s *ScoreCard) lookup(ssid string) *PerNetwork {
	if !(&models.Network{SSID: ssid}).IsValid() {
		return nil
	}

	if network, ok := s.networks[ssid]; ok {
		return network
	}

	network := newPerNetwork(ssid, s.keyFor(ssid), s.cfg)
	s.networks[ssid] = network

	s.requestRead(network)

	return network
}

// FetchNetwork returns the cached record for ssid, or nil.
func (s *ScoreCard) FetchNetwork(ssid string) healthmonitor.PerNetworkStats {
	if network, ok := s.networks[ssid]; ok {
		return network
	}

	return nil
}

// RequestReadNetwork reads persisted state for a cached record that has not loaded it yet.
func (s *ScoreCard) RequestReadNetwork(stats healthmonitor.PerNetworkStats) {
	network, ok := stats.(*PerNetwork)
	if !ok || s.networks[network.ssid] != network {
		return
	}

	s.requestRead(network)
}

func (s *ScoreCard) requestRead(network *PerNetwork) {
	if s.memoryStore == nil || network.loaded {
		return
	}

	s.memoryStore.Read(network.key, NetworkStatsDataName, func(value []byte) {
		s.exec.Post(func() { s.finishRead(network, value) })
	})
}

func (s *ScoreCard) finishRead(network *PerNetwork, value []byte) {
	if s.networks[network.ssid] != network || network.loaded {
		return
	}

	network.loaded = true

	if value == nil {
		return
	}

	persisted, err := unmarshalNetwork(value)
	if err != nil {
		s.logger.Warn().Err(err).Str("ssid", network.ssid).Msg("Discarding unreadable network stats")
		return
	}

	network.merge(persisted)
}

// RemoveNetwork forgets ssid and deletes its persisted record.
func (s *ScoreCard) RemoveNetwork(ssid string) {
	network, ok := s.networks[ssid]
	if !ok {
		return
	}

	delete(s.networks, ssid)

	if s.memoryStore != nil {
		s.memoryStore.Delete(network.key, NetworkStatsDataName)
	}
}

// DoWrites persists every network changed since its last write.
func (s *ScoreCard) DoWrites() {
	if s.memoryStore == nil {
		return
	}

	for _, network := range s.networks {
		if !network.changed {
			continue
		}

		s.memoryStore.Write(network.key, NetworkStatsDataName, network.marshal())
		network.changed = false
	}
}

// Record folds a connection event into its network's recent window.
func (s *ScoreCard) Record(event *models.ConnectionEvent) {
	network := s.lookup(event.SSID)
	if network == nil {
		return
	}

	network.record(event)
}

// ClearAll zeroes every cached network; the next DoWrites persists the empty records.
func (s *ScoreCard) ClearAll() {
	for _, network := range s.networks {
		network.clear()
	}
}

// Snapshot lists every cached network ordered by SSID.
func (s *ScoreCard) Snapshot() []models.NetworkStats {
	out := make([]models.NetworkStats, 0, len(s.networks))

	for _, network := range s.networks {
		out = append(out, network.summary())
	}

	sort.Slice(out, func(i, j int) bool { return out[i].SSID < out[j].SSID })

	return out
}
