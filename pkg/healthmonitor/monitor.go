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

// Package healthmonitor detects post-boot and daily WiFi health anomalies from scan and
// connection statistics kept across reboots.
package healthmonitor

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/carverauto/wifihealth/pkg/hashutil"
	"github.com/carverauto/wifihealth/pkg/logger"
	"github.com/carverauto/wifihealth/pkg/models"
	"github.com/carverauto/wifihealth/pkg/scheduler"
)

const (
	// SystemInfoDataName is the memory store field holding the system info record.
	SystemInfoDataName = "systemInfoData"

	PostBootAlarmTag = "wifihealth.postboot"
	DailyAlarmTag    = "wifihealth.daily"

	tracerName = "github.com/carverauto/wifihealth/pkg/healthmonitor"
)

// Options wires a HealthMonitor to its collaborators. Scanner and Reporter are optional.
type Options struct {
	Config    models.MonitorConfig
	L2KeySeed string
	Stats     NetworkStatsStore
	Registry  NetworkRegistry
	Scanner   ScanSource
	Builds    BuildInfoProvider
	Alarms    scheduler.AlarmScheduler
	Clock     scheduler.Clock
	Executor  scheduler.Executor
	Reporter  Reporter
	Logger    logger.Logger
}

// HealthMonitor owns the persisted SystemInfo and runs the detection cycles.
//
// It does no locking. Every exported method, alarm callback, and listener callback must run
// on the Executor passed in Options; listener adapters post themselves there.
type HealthMonitor struct {
	ctx        context.Context
	cfg        models.MonitorConfig
	thresholds ScanThresholds
	key        string

	stats    NetworkStatsStore
	registry NetworkRegistry
	scanner  ScanSource
	builds   BuildInfoProvider
	alarms   scheduler.AlarmScheduler
	clock    scheduler.Clock
	exec     scheduler.Executor
	reporter Reporter
	logger   logger.Logger
	tracer   trace.Tracer

	memoryStore MemoryStore
	// pendingRead receives the system info bytes, or nil, from an in-flight read.
	pendingRead chan []byte

	info       *SystemInfo
	firstScan  ScanSnapshot
	scanBuffer []models.ScanResult

	wifiEnabled       bool
	scannerRegistered bool
	verbose           bool

	failureIncrease models.FailureStats
	failureDecrease models.FailureStats
	failureHigh     models.FailureStats

	lastPostBoot *models.PostBootReport
	lastDaily    *models.DailyReport
}

// NewHealthMonitor builds a monitor and subscribes it to network registry changes. Nothing
// is read or scheduled until InstallMemoryStore.
func NewHealthMonitor(ctx context.Context, opts *Options) (*HealthMonitor, error) {
	switch {
	case opts.Stats == nil:
		return nil, errStatsStoreRequired
	case opts.Registry == nil:
		return nil, errRegistryRequired
	case opts.Builds == nil:
		return nil, errBuildInfoRequired
	case opts.Alarms == nil:
		return nil, errAlarmsRequired
	case opts.Executor == nil:
		return nil, errExecutorRequired
	case opts.Logger == nil:
		return nil, errLoggerRequired
	case opts.L2KeySeed == "":
		return nil, errSeedRequired
	}

	clock := opts.Clock
	if clock == nil {
		clock = scheduler.RealClock()
	}

	m := &HealthMonitor{
		ctx: ctx,
		cfg: opts.Config,
		thresholds: ScanThresholds{
			MaxIntervalMs:   time.Duration(opts.Config.MaxScanInterval).Milliseconds(),
			MinBssid2G:      opts.Config.MinBssid2G,
			MinBssidAbove2G: opts.Config.MinBssidAbove2G,
		},
		key:       hashutil.L2Key("", models.DefaultMACAddress, opts.L2KeySeed),
		stats:     opts.Stats,
		registry:  opts.Registry,
		scanner:   opts.Scanner,
		builds:    opts.Builds,
		alarms:    opts.Alarms,
		clock:     clock,
		exec:      opts.Executor,
		reporter:  opts.Reporter,
		logger:    opts.Logger,
		tracer:    otel.Tracer(tracerName),
		info:      newSystemInfo(),
		firstScan: NewScanSnapshot(),
		verbose:   opts.Config.Verbose,
	}

	m.registry.Subscribe(&networkListener{m: m})

	return m, nil
}

// logv returns an info event when verbose logging is on and a no-op event otherwise.
func (m *HealthMonitor) logv() *zerolog.Event {
	if !m.verbose {
		return nil
	}

	return m.logger.Info()
}

// EnableVerboseLogging toggles per-step detection logging.
func (m *HealthMonitor) EnableVerboseLogging(verbose bool) {
	m.verbose = verbose
}

// SetWifiEnabled tracks the administrative WiFi state. The first enable registers the scan
// listener for the life of the process; disabling flushes pending state.
func (m *HealthMonitor) SetWifiEnabled(enable bool) {
	m.logv().Bool("enable", enable).Msg("Setting wifi enabled")

	m.wifiEnabled = enable

	if !enable {
		m.scanBuffer = nil
		m.DoWrites()

		return
	}

	if m.scannerRegistered || m.scanner == nil {
		return
	}

	if err := m.scanner.RegisterScanListener(&scanListener{m: m}); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to register scan listener")
		return
	}

	m.scannerRegistered = true
}

// SetMobilityState records the device mobility hint.
func (m *HealthMonitor) SetMobilityState(state models.MobilityState) {
	m.logv().Str("mobility", state.String()).Msg("Setting mobility state")
	m.info.setMobility(state)
}

// InstallMemoryStore attaches the persistence backend, requests every persisted record,
// and arms the daily and post-boot alarms. Installing again replaces the store and starts
// over.
func (m *HealthMonitor) InstallMemoryStore(store MemoryStore) {
	if m.memoryStore == nil {
		m.logger.Info().Msg("Installing memory store")
	} else {
		m.logger.Error().Msg("Reinstalling memory store")
	}

	m.memoryStore = store

	m.requestReadSystemInfo()
	m.requestReadAllNetworks()
	m.setDailyAlarm()
	m.setPostBootAlarm()
}

// DoWrites hands the system info record to the memory store when it has changed since the
// last write.
func (m *HealthMonitor) DoWrites() {
	if m.memoryStore == nil || !m.info.Dirty() {
		return
	}

	m.logv().Stringer("system_info", m.info).Msg("Writing system info")

	m.memoryStore.Write(m.key, SystemInfoDataName, m.info.Marshal())
	m.info.markWritten()

	recordWrite(m.ctx)
}

// Clear forgets both build snapshots and both scan snapshots.
func (m *HealthMonitor) Clear() {
	m.logger.Info().Msg("Clearing system info")
	m.info.clearAll()
}

// SystemInfo exposes the live state. Callers must not retain it off the Executor.
func (m *HealthMonitor) SystemInfo() *SystemInfo {
	return m.info
}

// Status snapshots the monitor state.
func (m *HealthMonitor) Status() *models.MonitorStatus {
	return &models.MonitorStatus{
		WifiEnabled:          m.wifiEnabled,
		Verbose:              m.verbose,
		MemoryStoreInstalled: m.memoryStore != nil,
		Dirty:                m.info.Dirty(),
		Mobility:             m.info.Mobility().String(),
		CurrentBuild:         buildModel(m.info.CurrBuild()),
		PreviousBuild:        buildModel(m.info.PrevBuild()),
		CurrentScan:          m.info.CurrScan().toModel(),
		PreBootScan:          m.info.PrevScan().toModel(),
		FirstScanSinceStart:  m.firstScan.toModel(),
		ScanFailureFlags:     m.info.ScanFailure(),
		LastPostBoot:         m.lastPostBoot,
		LastDaily:            m.lastDaily,
	}
}

func (m *HealthMonitor) setPostBootAlarm() {
	m.alarms.SetOneShot(PostBootAlarmTag, time.Duration(m.cfg.PostBootWait), m.onPostBootAlarm)
}

func (m *HealthMonitor) setDailyAlarm() {
	m.alarms.SetDaily(DailyAlarmTag, m.cfg.DailyHour, m.onDailyAlarm)
}

// requestReadSystemInfo starts the asynchronous read finalized by post-boot detection.
// Each request owns its channel; callbacks for a replaced request are dropped.
func (m *HealthMonitor) requestReadSystemInfo() {
	ch := make(chan []byte, 1)
	m.pendingRead = ch

	m.memoryStore.Read(m.key, SystemInfoDataName, func(value []byte) {
		select {
		case ch <- value:
		default:
		}
	})
}

// finishPendingRead consumes the pending read without blocking. A read that has not
// completed yet counts as nothing persisted.
func (m *HealthMonitor) finishPendingRead() {
	ch := m.pendingRead
	if ch == nil {
		return
	}

	m.pendingRead = nil

	var value []byte

	select {
	case value = <-ch:
	default:
		m.logger.Warn().Msg("System info read not complete, treating as absent")
		return
	}

	if value == nil {
		m.logv().Msg("No persisted system info")
		return
	}

	persisted, err := unmarshalSystemInfo(value)
	if err != nil {
		m.logger.Error().Err(err).Msg("Failed to parse persisted system info, treating as absent")
		return
	}

	m.info.applyPersisted(persisted)

	m.logv().Stringer("system_info", m.info).Msg("Loaded persisted system info")
}

func (m *HealthMonitor) requestReadAllNetworks() {
	for _, network := range m.registry.ListConfigured() {
		if !network.IsValid() {
			continue
		}

		if stats := m.stats.FetchNetwork(network.SSID); stats != nil {
			m.stats.RequestReadNetwork(stats)
		} else {
			m.stats.LookupNetwork(network.SSID)
		}
	}
}

func (m *HealthMonitor) onPostBootAlarm() {
	ctx, span := m.tracer.Start(m.ctx, "postBootDetection")
	defer span.End()

	m.logv().Msg("Running post-boot detection")

	m.finishPendingRead()

	report := &models.PostBootReport{Timestamp: m.clock.Now()}

	outcome := m.postBootSwBuildCheck(ctx, report)
	span.SetAttributes(attribute.String("build_check", outcome))

	m.postBootAbnormalScanDetection(ctx, report)

	m.DoWrites()

	report.CurrentBuild = buildModel(m.info.CurrBuild())
	report.PreviousBuild = buildModel(m.info.PrevBuild())
	m.lastPostBoot = report

	recordPostBoot(ctx, outcome)

	if m.reporter != nil {
		if err := m.reporter.PublishPostBoot(ctx, report); err != nil {
			span.SetStatus(codes.Error, err.Error())
			m.logger.Warn().Err(err).Msg("Failed to publish post-boot report")
		}
	}
}

// postBootSwBuildCheck compares the running build with the persisted one and returns the
// outcome. An unavailable networking backend skips only the build check; it is retried on
// the next boot.
func (m *HealthMonitor) postBootSwBuildCheck(ctx context.Context, report *models.PostBootReport) string {
	live, err := m.extractCurrentSoftwareBuild()
	if err != nil {
		m.logger.Warn().Err(err).Msg("Driver and firmware versions unavailable, skipping build check")
		return "build_info_unavailable"
	}

	report.BuildChecked = true

	persisted := m.info.CurrBuild()
	if persisted == nil {
		m.logv().Stringer("build", live).Msg("No persisted build, recording current build")
		m.info.setCurrBuild(live)

		return "first_boot"
	}

	if !DetectChange(live, persisted) {
		return "unchanged"
	}

	m.logger.Info().
		Stringer("previous", persisted).
		Stringer("current", live).
		Msg("Software build changed")

	for _, network := range m.registry.ListConfigured() {
		if !network.IsValid() {
			continue
		}

		if stats := m.stats.LookupNetwork(network.SSID); stats != nil {
			stats.UpdateAfterSwBuildChange()
		}
	}

	m.info.rotateBuild(live)
	report.BuildChanged = true

	recordBuildChange(ctx)

	return "changed"
}

func (m *HealthMonitor) extractCurrentSoftwareBuild() (SoftwareBuild, error) {
	build := SoftwareBuild{OSBuildVersion: m.builds.OSBuildVersion()}

	stack, err := m.builds.StackVersion()
	if err != nil {
		m.logger.Warn().Err(err).Msg("Stack version not found")
	}

	build.StackVersion = stack

	build.DriverVersion, build.FirmwareVersion, err = m.builds.DriverFirmwareVersion()
	if err != nil {
		return SoftwareBuild{}, err
	}

	return build, nil
}

func (m *HealthMonitor) postBootAbnormalScanDetection(ctx context.Context, report *models.PostBootReport) {
	preBoot := m.info.PrevScan()
	mask := AbnormalScanBitmask(preBoot, m.firstScan, m.thresholds)

	m.logv().
		Stringer("pre_boot", preBoot).
		Stringer("post_boot", m.firstScan).
		Int("scan_failure", mask).
		Msg("Abnormal scan detection")

	m.info.setScanFailure(mask)

	report.PreBootScan = preBoot.toModel()
	report.PostBootScan = m.firstScan.toModel()
	report.ScanFailureFlags = mask

	recordScanFailure(ctx, mask)
}

func (m *HealthMonitor) onDailyAlarm() {
	m.setDailyAlarm()

	ctx, span := m.tracer.Start(m.ctx, "dailyDetection")
	defer span.End()

	report := m.dailyDetection()
	span.SetAttributes(attribute.Int("networks_processed", report.NetworksProcessed))

	recordDaily(ctx, report)

	if m.reporter != nil {
		if err := m.reporter.PublishDaily(ctx, report); err != nil {
			span.SetStatus(codes.Error, err.Error())
			m.logger.Warn().Err(err).Msg("Failed to publish daily report")
		}
	}
}

// dailyDetection runs every valid network's daily detection, rolls each recent window into
// history, and flushes both stores.
func (m *HealthMonitor) dailyDetection() *models.DailyReport {
	m.failureIncrease.Clear()
	m.failureDecrease.Clear()
	m.failureHigh.Clear()

	report := &models.DailyReport{Timestamp: m.clock.Now()}

	for _, network := range m.registry.ListConfigured() {
		if !network.IsValid() {
			continue
		}

		stats := m.stats.LookupNetwork(network.SSID)
		if stats == nil {
			continue
		}

		switch stats.DailyDetection(&m.failureDecrease, &m.failureIncrease, &m.failureHigh) {
		case models.SufficientRecentOnly:
			report.NetworksSufficientRecent++
		case models.SufficientRecentPrev:
			report.NetworksSufficientRecentPrv++
		case models.Insufficient:
		}

		report.ConnectionDurationSec += stats.RecentConnectionDurationSec()

		stats.UpdateAfterDailyDetection()

		report.NetworksProcessed++
	}

	report.FailureIncrease = m.failureIncrease
	report.FailureDecrease = m.failureDecrease
	report.FailureHigh = m.failureHigh

	m.logv().
		Int("networks", report.NetworksProcessed).
		Int("sufficient_recent", report.NetworksSufficientRecent).
		Int("sufficient_recent_prev", report.NetworksSufficientRecentPrv).
		Int("connection_duration_sec", report.ConnectionDurationSec).
		Msg("Daily detection complete")

	m.DoWrites()
	m.stats.DoWrites()

	m.lastDaily = report

	return report
}

func (m *HealthMonitor) onFullResult(result models.ScanResult) {
	if !m.wifiEnabled {
		return
	}

	m.scanBuffer = append(m.scanBuffer, result)
}

// onScanResults completes a scan. Only scans spanning both bands are aggregated; the
// buffer is discarded either way.
func (m *HealthMonitor) onScanResults(band models.ScanBand) {
	results := m.scanBuffer
	m.scanBuffer = nil

	if !m.wifiEnabled || !band.IsFullSpectrum() {
		return
	}

	m.handleScanResults(results)
}

func (m *HealthMonitor) handleScanResults(results []models.ScanResult) {
	scan := ScanSnapshot{LastScanTimeMs: m.clock.Now().UnixMilli()}

	for _, result := range results {
		if result.Is24GHz() {
			scan.BssidCount2G++
		} else {
			scan.BssidCountAbove2G++
		}
	}

	if !m.firstScan.HasScan() {
		m.firstScan = scan
	}

	m.info.setCurrScan(scan)

	m.logv().Stringer("scan", scan).Msg("Aggregated full scan")

	recordScan(m.ctx)
}

func (m *HealthMonitor) onNetworkAdded(network models.Network) {
	if !network.IsValid() {
		return
	}

	m.stats.LookupNetwork(network.SSID)
}

func (m *HealthMonitor) onNetworkRemoved(network models.Network) {
	if !network.IsValid() {
		return
	}

	m.stats.RemoveNetwork(network.SSID)
}
