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
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/wifihealth/pkg/hashutil"
	"github.com/carverauto/wifihealth/pkg/kv"
	"github.com/carverauto/wifihealth/pkg/logger"
	"github.com/carverauto/wifihealth/pkg/memstore"
	"github.com/carverauto/wifihealth/pkg/models"
	"github.com/carverauto/wifihealth/pkg/scheduler"
)

func newTestNetwork() *PerNetwork {
	return newPerNetwork("home", "key", models.DefaultScorecardConfig())
}

func newTestScoreCard(t *testing.T) *ScoreCard {
	t.Helper()

	return newTestScoreCardOn(t, scheduler.InlineExecutor{})
}

func newTestScoreCardOn(t *testing.T, exec scheduler.Executor) *ScoreCard {
	t.Helper()

	sc, err := New(models.DefaultScorecardConfig(), "seed", exec, logger.NewTestLogger())
	require.NoError(t, err)

	return sc
}

// queueExecutor holds posted work until drain runs it on the test goroutine.
type queueExecutor struct {
	mu    sync.Mutex
	queue []func()
}

func (q *queueExecutor) Post(fn func()) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.queue = append(q.queue, fn)

	return true
}

func (q *queueExecutor) drain() {
	q.mu.Lock()
	queue := q.queue
	q.queue = nil
	q.mu.Unlock()

	for _, fn := range queue {
		fn()
	}
}

func detect(p *PerNetwork) (models.DetectionSufficiency, *models.FailureStats, *models.FailureStats, *models.FailureStats) {
	var decrease, increase, high models.FailureStats

	result := p.DailyDetection(&decrease, &increase, &high)

	return result, &decrease, &increase, &high
}

func TestDailyDetectionInsufficient(t *testing.T) {
	p := newTestNetwork()
	p.recent.Add(CntConnectionAttempt, 9)
	p.recent.Add(CntAuthFailure, 9)
	p.statsPrevBuild.Add(CntConnectionAttempt, 100)

	result, decrease, increase, high := detect(p)

	assert.Equal(t, models.Insufficient, result)
	assert.Zero(t, decrease.Total()+increase.Total()+high.Total())
}

func TestDailyDetectionHighWithoutBaseline(t *testing.T) {
	p := newTestNetwork()
	p.recent.Add(CntConnectionAttempt, 10)
	p.recent.Add(CntConnectionFailure, 3)
	p.recent.Add(CntAssocRejection, 2)
	p.statsCurrBuild.Add(CntConnectionAttempt, 5)

	result, decrease, increase, high := detect(p)

	assert.Equal(t, models.SufficientRecentOnly, result)
	assert.Equal(t, 1, high.Count(models.ReasonConnectionFailure))
	assert.Zero(t, high.Count(models.ReasonAssocRejection), "20% is below the high rate")
	assert.Equal(t, 1, high.Total())
	assert.Zero(t, decrease.Total()+increase.Total())
}

func TestDailyDetectionIncreaseAgainstPreviousBuild(t *testing.T) {
	p := newTestNetwork()
	p.recent.Add(CntConnectionAttempt, 10)
	p.recent.Add(CntAuthFailure, 4)
	p.statsPrevBuild.Add(CntConnectionAttempt, 20)
	p.statsPrevBuild.Add(CntAuthFailure, 1)

	result, decrease, increase, high := detect(p)

	assert.Equal(t, models.SufficientRecentPrev, result)
	assert.Equal(t, 1, increase.Count(models.ReasonAuthFailure))
	assert.Equal(t, 1, increase.Total())
	assert.Zero(t, decrease.Total()+high.Total())
}

func TestDailyDetectionDecreaseAgainstCurrentBuild(t *testing.T) {
	p := newTestNetwork()
	p.recent.Add(CntConnectionAttempt, 10)
	p.statsCurrBuild.Add(CntConnectionAttempt, 20)
	p.statsCurrBuild.Add(CntAssocTimeout, 10)

	result, decrease, increase, _ := detect(p)

	assert.Equal(t, models.SufficientRecentPrev, result)
	assert.Equal(t, 1, decrease.Count(models.ReasonAssocTimeout))
	assert.Zero(t, increase.Total())
}

func TestDailyDetectionPrefersPreviousBuild(t *testing.T) {
	p := newTestNetwork()
	p.recent.Add(CntConnectionAttempt, 10)
	p.statsCurrBuild.Add(CntConnectionAttempt, 20)
	p.statsPrevBuild.Add(CntConnectionAttempt, 20)
	p.statsPrevBuild.Add(CntAuthFailure, 10)

	_, decrease, _, _ := detect(p)

	assert.Equal(t, 1, decrease.Count(models.ReasonAuthFailure))
}

func TestDailyDetectionNeedsRatioAndDelta(t *testing.T) {
	p := newTestNetwork()
	p.recent.Add(CntConnectionAttempt, 10)
	p.recent.Add(CntAuthFailure, 5)
	p.statsPrevBuild.Add(CntConnectionAttempt, 10)
	p.statsPrevBuild.Add(CntAuthFailure, 3)

	// 50% against 30%: the delta is met but not the ratio.
	_, decrease, increase, _ := detect(p)

	assert.Zero(t, increase.Total())
	assert.Zero(t, decrease.Total())
}

func TestWindowRollover(t *testing.T) {
	p := newTestNetwork()
	p.recent.Add(CntConnectionAttempt, 3)
	p.recent.Add(CntConnectionDurationSec, 120)
	p.statsCurrBuild.Add(CntConnectionAttempt, 7)

	assert.Equal(t, 120, p.RecentConnectionDurationSec())

	p.UpdateAfterDailyDetection()

	assert.True(t, p.recent.IsEmpty())
	assert.Equal(t, 10, p.statsCurrBuild.Count(CntConnectionAttempt))
	assert.Equal(t, 120, p.statsCurrBuild.Count(CntConnectionDurationSec))
	assert.True(t, p.changed)

	p.UpdateAfterSwBuildChange()

	assert.True(t, p.statsCurrBuild.IsEmpty())
	assert.Equal(t, 10, p.statsPrevBuild.Count(CntConnectionAttempt))
}

func TestRecordDisconnections(t *testing.T) {
	var stats NetworkConnectionStats

	stats.record(&models.ConnectionEvent{Kind: models.EventConnectionAttempt})
	stats.record(&models.ConnectionEvent{Kind: models.EventDisconnection, Nonlocal: true, DurationSec: 5, RSSI: -60})
	stats.record(&models.ConnectionEvent{Kind: models.EventDisconnection, Nonlocal: true, DurationSec: 300})
	stats.record(&models.ConnectionEvent{Kind: models.EventDisconnection, Nonlocal: true, DurationSec: 5, RSSI: -80})
	stats.record(&models.ConnectionEvent{Kind: models.EventDisconnection, Nonlocal: true, DurationSec: 5, TxLinkSpeedMbps: 24})
	stats.record(&models.ConnectionEvent{Kind: models.EventDisconnection, DurationSec: 5})
	stats.record(&models.ConnectionEvent{Kind: "unknown"})

	assert.Equal(t, 1, stats.Count(CntConnectionAttempt))
	assert.Equal(t, 5, stats.Count(CntDisconnection))
	assert.Equal(t, 2, stats.Count(CntDisconnectionNonlocal))
	assert.Equal(t, 1, stats.Count(CntShortConnectionNonlocal))
	assert.Equal(t, 320, stats.Count(CntConnectionDurationSec))
}

func TestLookupNetworkSkipsInvalid(t *testing.T) {
	sc := newTestScoreCard(t)

	assert.Nil(t, sc.LookupNetwork(""))
	assert.Nil(t, sc.LookupNetwork(models.UnknownSSID))
	assert.Nil(t, sc.FetchNetwork("home"))

	stats := sc.LookupNetwork("home")
	require.NotNil(t, stats)
	assert.Equal(t, "home", stats.SSID())
	assert.Same(t, stats, sc.FetchNetwork("home"))
}

func TestScoreCardPersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(ctx, kv.NewMemoryStore(), logger.NewTestLogger())

	before := newTestScoreCard(t)
	before.InstallMemoryStore(store)

	before.Record(&models.ConnectionEvent{SSID: "home", Kind: models.EventConnectionAttempt})
	before.Record(&models.ConnectionEvent{SSID: "home", Kind: models.EventAuthFailure})
	before.Record(&models.ConnectionEvent{SSID: models.UnknownSSID, Kind: models.EventAuthFailure})
	store.Wait()

	before.LookupNetwork("home").UpdateAfterDailyDetection()
	before.DoWrites()
	store.Wait()

	exec := &queueExecutor{}
	after := newTestScoreCardOn(t, exec)
	after.InstallMemoryStore(store)

	// Recorded before the persisted read lands; both must survive.
	after.Record(&models.ConnectionEvent{SSID: "home", Kind: models.EventConnectionAttempt})
	store.Wait()
	exec.drain()

	network, ok := after.FetchNetwork("home").(*PerNetwork)
	require.True(t, ok)

	assert.Equal(t, 1, network.Recent().Count(CntConnectionAttempt))
	assert.Equal(t, 1, network.CurrentBuildStats().Count(CntConnectionAttempt))
	assert.Equal(t, 1, network.CurrentBuildStats().Count(CntAuthFailure))

	snapshot := after.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, map[string]int{"connection_attempt": 1, "auth_failure": 1}, snapshot[0].CurrentBuild)
}

func TestScoreCardWritesOnlyChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockMemoryStore(ctrl)

	sc := newTestScoreCard(t)
	sc.InstallMemoryStore(store)

	key := hashutil.L2Key("home", "", "seed")

	store.EXPECT().Read(key, NetworkStatsDataName, gomock.Any()).Do(func(_, _ string, onRead func([]byte)) {
		onRead(nil)
	})
	store.EXPECT().Read(hashutil.L2Key("cafe", "", "seed"), NetworkStatsDataName, gomock.Any())
	store.EXPECT().Write(key, NetworkStatsDataName, gomock.Any()).Times(1)

	sc.Record(&models.ConnectionEvent{SSID: "home", Kind: models.EventConnectionAttempt})
	sc.LookupNetwork("cafe")

	sc.DoWrites()
	sc.DoWrites()
}

func TestScoreCardRemoveNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockMemoryStore(ctrl)

	sc := newTestScoreCard(t)
	sc.InstallMemoryStore(store)

	key := hashutil.L2Key("home", "", "seed")

	store.EXPECT().Read(key, NetworkStatsDataName, gomock.Any())
	store.EXPECT().Delete(key, NetworkStatsDataName)

	sc.LookupNetwork("home")
	sc.RemoveNetwork("home")
	sc.RemoveNetwork("home")

	assert.Nil(t, sc.FetchNetwork("home"))
}

func TestStaleReadAfterRemoveIgnored(t *testing.T) {
	sc := newTestScoreCard(t)

	network := sc.lookup("home")
	delete(sc.networks, "home")

	fresh := sc.lookup("home")

	record := newPerNetwork("home", "key", models.DefaultScorecardConfig())
	record.recent.Add(CntConnectionAttempt, 4)

	sc.finishRead(network, record.marshal())
	assert.True(t, fresh.recent.IsEmpty())

	sc.finishRead(fresh, record.marshal())
	assert.Equal(t, 4, fresh.recent.Count(CntConnectionAttempt))
}

func TestUnmarshalNetworkTruncated(t *testing.T) {
	p := newTestNetwork()
	p.recent.Add(CntAuthFailure, 300)

	raw := p.marshal()

	_, err := unmarshalNetwork(raw[:len(raw)-1])
	require.ErrorIs(t, err, ErrTruncatedRecord)
}

func TestClearAll(t *testing.T) {
	sc := newTestScoreCard(t)
	sc.Record(&models.ConnectionEvent{SSID: "home", Kind: models.EventAuthFailure})

	network := sc.lookup("home")
	network.changed = false

	sc.ClearAll()

	assert.True(t, network.recent.IsEmpty())
	assert.True(t, network.changed)
}

func persistAttempts(t *testing.T, store *memstore.Store, ssid string, attempts int) {
	t.Helper()

	prior := newTestScoreCard(t)
	prior.InstallMemoryStore(store)

	network := prior.lookup(ssid)
	store.Wait()

	network.recent.Add(CntConnectionAttempt, attempts)
	network.statsCurrBuild.Add(CntConnectionAttempt, attempts)
	network.changed = true

	prior.DoWrites()
	store.Wait()
}

func TestScoreCardStartupMergesPersistedOnce(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(ctx, kv.NewMemoryStore(), logger.NewTestLogger())

	persistAttempts(t, store, "home", 10)

	exec := &queueExecutor{}
	sc := newTestScoreCardOn(t, exec)

	// An event lands before the store is installed, then the monitor asks for a read of
	// the same record after install.
	sc.Record(&models.ConnectionEvent{SSID: "home", Kind: models.EventConnectionAttempt})
	sc.InstallMemoryStore(store)
	sc.RequestReadNetwork(sc.FetchNetwork("home"))
	store.Wait()
	exec.drain()

	network := sc.lookup("home")
	assert.Equal(t, 11, network.Recent().Count(CntConnectionAttempt))
	assert.Equal(t, 10, network.CurrentBuildStats().Count(CntConnectionAttempt))
}

func TestScoreCardReinstallDoesNotRemerge(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(ctx, kv.NewMemoryStore(), logger.NewTestLogger())

	persistAttempts(t, store, "home", 10)

	exec := &queueExecutor{}
	sc := newTestScoreCardOn(t, exec)
	sc.InstallMemoryStore(store)

	sc.LookupNetwork("home")
	sc.LookupNetwork("cafe")
	store.Wait()
	exec.drain()

	sc.Record(&models.ConnectionEvent{SSID: "home", Kind: models.EventConnectionAttempt})
	sc.Record(&models.ConnectionEvent{SSID: "cafe", Kind: models.EventConnectionAttempt})
	sc.DoWrites()
	store.Wait()

	sc.InstallMemoryStore(store)
	sc.RequestReadNetwork(sc.FetchNetwork("home"))
	sc.RequestReadNetwork(sc.FetchNetwork("cafe"))
	store.Wait()
	exec.drain()

	assert.Equal(t, 11, sc.lookup("home").Recent().Count(CntConnectionAttempt))
	assert.Equal(t, 1, sc.lookup("cafe").Recent().Count(CntConnectionAttempt))
}

func TestReadAfterClearAllIgnored(t *testing.T) {
	sc := newTestScoreCard(t)
	network := sc.lookup("home")

	record := newPerNetwork("home", "key", models.DefaultScorecardConfig())
	record.recent.Add(CntAuthFailure, 3)

	sc.ClearAll()
	sc.finishRead(network, record.marshal())

	assert.True(t, network.recent.IsEmpty())
}
