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

package healthmonitor

import "github.com/carverauto/wifihealth/pkg/models"

// scanListener hands scan output to the monitor on its Executor.
type scanListener struct {
	m *HealthMonitor
}

func (l *scanListener) OnFullResult(result models.ScanResult) {
	l.m.exec.Post(func() { l.m.onFullResult(result) })
}

func (l *scanListener) OnResults(band models.ScanBand) {
	l.m.exec.Post(func() { l.m.onScanResults(band) })
}

// networkListener tracks configured networks in the stats store. Enable, disable and
// update notifications carry nothing the monitor needs.
type networkListener struct {
	m *HealthMonitor
}

func (l *networkListener) OnNetworkAdded(network models.Network) {
	l.m.exec.Post(func() { l.m.onNetworkAdded(network) })
}

func (l *networkListener) OnNetworkRemoved(network models.Network) {
	l.m.exec.Post(func() { l.m.onNetworkRemoved(network) })
}

func (*networkListener) OnNetworkEnabled(models.Network)  {}
func (*networkListener) OnNetworkDisabled(models.Network) {}
func (*networkListener) OnNetworkUpdated(models.Network)  {}
