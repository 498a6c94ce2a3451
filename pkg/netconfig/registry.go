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

// Package netconfig is the registry of configured (saved) WiFi networks.
package netconfig

import (
	"errors"
	"sort"
	"sync"

	"github.com/carverauto/wifihealth/pkg/healthmonitor"
	"github.com/carverauto/wifihealth/pkg/models"
)

var (
	// ErrInvalidNetwork is returned for an empty or placeholder SSID.
	ErrInvalidNetwork = errors.New("invalid network")
	// ErrNetworkExists is returned when adding an SSID that is already configured.
	ErrNetworkExists = errors.New("network already configured")
	// ErrNetworkNotFound is returned when the SSID is not configured.
	ErrNetworkNotFound = errors.New("network not configured")
)

type entry struct {
	network models.Network
	enabled bool
}

// Registry is safe for concurrent use. Listeners are notified synchronously, outside the
// registry lock, in subscription order.
type Registry struct {
	mu        sync.RWMutex
	networks  map[string]*entry
	listeners []healthmonitor.NetworkListener
}

var _ healthmonitor.NetworkRegistry = (*Registry)(nil)

// NewRegistry seeds the registry with ssids. Invalid and duplicate entries are dropped.
func NewRegistry(ssids []string) *Registry {
	r := &Registry{networks: make(map[string]*entry)}

	for _, ssid := range ssids {
		network := models.Network{SSID: ssid}
		if !network.IsValid() {
			continue
		}

		r.networks[ssid] = &entry{network: network, enabled: true}
	}

	return r
}

// ListConfigured returns every configured network ordered by SSID.
func (r *Registry) ListConfigured() []models.Network {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Network, 0, len(r.networks))
	for _, e := range r.networks {
		out = append(out, e.network)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].SSID < out[j].SSID })

	return out
}

// Enabled reports whether ssid is configured and enabled.
func (r *Registry) Enabled(ssid string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.networks[ssid]

	return ok && e.enabled
}

func (r *Registry) Subscribe(listener healthmonitor.NetworkListener) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.listeners = append(r.listeners, listener)
}

func (r *Registry) snapshotListeners() []healthmonitor.NetworkListener {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]healthmonitor.NetworkListener(nil), r.listeners...)
}

// Add configures ssid and notifies listeners.
func (r *Registry) Add(ssid string) (models.Network, error) {
	network := models.Network{SSID: ssid}
	if !network.IsValid() {
		return models.Network{}, ErrInvalidNetwork
	}

	r.mu.Lock()
	if _, ok := r.networks[ssid]; ok {
		r.mu.Unlock()

		return models.Network{}, ErrNetworkExists
	}

	r.networks[ssid] = &entry{network: network, enabled: true}
	r.mu.Unlock()

	for _, l := range r.snapshotListeners() {
		l.OnNetworkAdded(network)
	}

	return network, nil
}

// Remove forgets ssid and notifies listeners.
func (r *Registry) Remove(ssid string) error {
	r.mu.Lock()
	e, ok := r.networks[ssid]
	if !ok {
		r.mu.Unlock()

		return ErrNetworkNotFound
	}

	delete(r.networks, ssid)
	r.mu.Unlock()

	for _, l := range r.snapshotListeners() {
		l.OnNetworkRemoved(e.network)
	}

	return nil
}

// SetEnabled toggles a configured network. Listeners hear only actual transitions.
func (r *Registry) SetEnabled(ssid string, enabled bool) error {
	r.mu.Lock()
	e, ok := r.networks[ssid]
	if !ok {
		r.mu.Unlock()

		return ErrNetworkNotFound
	}

	changed := e.enabled != enabled
	e.enabled = enabled
	network := e.network
	r.mu.Unlock()

	if !changed {
		return nil
	}

	for _, l := range r.snapshotListeners() {
		if enabled {
			l.OnNetworkEnabled(network)
		} else {
			l.OnNetworkDisabled(network)
		}
	}

	return nil
}
