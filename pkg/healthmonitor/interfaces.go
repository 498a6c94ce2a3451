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

//go:generate mockgen -destination=mock_healthmonitor.go -package=healthmonitor github.com/carverauto/wifihealth/pkg/healthmonitor MemoryStore,PerNetworkStats,NetworkStatsStore,NetworkRegistry,BuildInfoProvider,ScanSource,Reporter

package healthmonitor

import (
	"context"

	"github.com/carverauto/wifihealth/pkg/models"
)

// MemoryStore is the persistence collaborator. Read calls onRead at most once, with nil
// when nothing is stored; Write is fire-and-forget.
type MemoryStore interface {
	Read(key, field string, onRead func([]byte))
	Write(key, field string, value []byte)
}

// PerNetworkStats is one network's historical statistics record.
type PerNetworkStats interface {
	SSID() string
	// DailyDetection compares the recent window against history, accumulating per-reason
	// verdicts into the three outputs.
	DailyDetection(decrease, increase, high *models.FailureStats) models.DetectionSufficiency
	// RecentConnectionDurationSec is the connection time accumulated in the recent window.
	RecentConnectionDurationSec() int
	// UpdateAfterDailyDetection rolls the recent window into history and resets it.
	UpdateAfterDailyDetection()
	// UpdateAfterSwBuildChange starts a new build history window.
	UpdateAfterSwBuildChange()
}

// NetworkStatsStore owns every PerNetworkStats record.
type NetworkStatsStore interface {
	// LookupNetwork returns the cached record for ssid, creating it and requesting its
	// persisted state when absent.
	LookupNetwork(ssid string) PerNetworkStats
	// FetchNetwork returns the cached record for ssid, or nil.
	FetchNetwork(ssid string) PerNetworkStats
	// RequestReadNetwork re-reads persisted state for an already cached record.
	RequestReadNetwork(stats PerNetworkStats)
	RemoveNetwork(ssid string)
	DoWrites()
}

// NetworkListener receives configured-network change notifications.
type NetworkListener interface {
	OnNetworkAdded(network models.Network)
	OnNetworkRemoved(network models.Network)
	OnNetworkEnabled(network models.Network)
	OnNetworkDisabled(network models.Network)
	OnNetworkUpdated(network models.Network)
}

// NetworkRegistry lists the configured (saved) networks.
type NetworkRegistry interface {
	ListConfigured() []models.Network
	Subscribe(listener NetworkListener)
}

// BuildInfoProvider reads build identifiers from the running system.
type BuildInfoProvider interface {
	OSBuildVersion() string
	// StackVersion may fail with version.ErrVersionNotFound.
	StackVersion() (int, error)
	// DriverFirmwareVersion fails when the networking backend is unavailable; either
	// string may be empty.
	DriverFirmwareVersion() (driver, firmware string, err error)
}

// ScanListener receives live scan output: individual detections, then a completion
// carrying the band coverage of the whole scan.
type ScanListener interface {
	OnFullResult(result models.ScanResult)
	OnResults(band models.ScanBand)
}

// ScanSource delivers scan output to registered listeners for the life of the process.
type ScanSource interface {
	RegisterScanListener(listener ScanListener) error
}

// Reporter publishes detection summaries for downstream consumers.
type Reporter interface {
	PublishPostBoot(ctx context.Context, report *models.PostBootReport) error
	PublishDaily(ctx context.Context, report *models.DailyReport) error
}
