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

//go:generate mockgen -destination=mock_api.go -package=api github.com/carverauto/wifihealth/pkg/api Executor,Monitor,StatsStore

package api

import (
	"context"

	"github.com/carverauto/wifihealth/pkg/models"
)

// Executor runs fn on the work queue that owns the monitor and waits for it.
type Executor interface {
	Await(ctx context.Context, fn func()) error
}

// Monitor is the health monitor surface driven by the admin API. Every method runs on
// the Executor.
type Monitor interface {
	SetWifiEnabled(enable bool)
	SetMobilityState(state models.MobilityState)
	EnableVerboseLogging(verbose bool)
	DoWrites()
	Clear()
	Status() *models.MonitorStatus
}

// StatsStore is the per-network statistics surface. Every method runs on the Executor.
type StatsStore interface {
	DoWrites()
	ClearAll()
	Snapshot() []models.NetworkStats
}

// NetworkRegistry manages configured networks. It is safe for concurrent use and must not
// be called from the Executor, since its listeners post back onto it.
type NetworkRegistry interface {
	ListConfigured() []models.Network
	Enabled(ssid string) bool
	Add(ssid string) (models.Network, error)
	Remove(ssid string) error
	SetEnabled(ssid string, enabled bool) error
}
