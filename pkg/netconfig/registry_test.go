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

package netconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/wifihealth/pkg/models"
)

type recordingListener struct {
	events []string
}

func (l *recordingListener) OnNetworkAdded(n models.Network) {
	l.events = append(l.events, "added:"+n.SSID)
}

func (l *recordingListener) OnNetworkRemoved(n models.Network) {
	l.events = append(l.events, "removed:"+n.SSID)
}

func (l *recordingListener) OnNetworkEnabled(n models.Network) {
	l.events = append(l.events, "enabled:"+n.SSID)
}

func (l *recordingListener) OnNetworkDisabled(n models.Network) {
	l.events = append(l.events, "disabled:"+n.SSID)
}

func (l *recordingListener) OnNetworkUpdated(n models.Network) {
	l.events = append(l.events, "updated:"+n.SSID)
}

func TestNewRegistrySeeds(t *testing.T) {
	r := NewRegistry([]string{"work", "", "home", models.UnknownSSID, "home"})

	assert.Equal(t, []models.Network{{SSID: "home"}, {SSID: "work"}}, r.ListConfigured())
	assert.True(t, r.Enabled("home"))
	assert.False(t, r.Enabled("cafe"))
}

func TestRegistryNotifiesListeners(t *testing.T) {
	r := NewRegistry(nil)
	l := &recordingListener{}
	r.Subscribe(l)

	_, err := r.Add("cafe")
	require.NoError(t, err)

	_, err = r.Add("cafe")
	require.ErrorIs(t, err, ErrNetworkExists)

	_, err = r.Add(models.UnknownSSID)
	require.ErrorIs(t, err, ErrInvalidNetwork)

	require.NoError(t, r.SetEnabled("cafe", false))
	require.NoError(t, r.SetEnabled("cafe", false))
	require.NoError(t, r.SetEnabled("cafe", true))
	require.NoError(t, r.Remove("cafe"))

	require.ErrorIs(t, r.Remove("cafe"), ErrNetworkNotFound)
	require.ErrorIs(t, r.SetEnabled("cafe", true), ErrNetworkNotFound)

	assert.Equal(t, []string{"added:cafe", "disabled:cafe", "enabled:cafe", "removed:cafe"}, l.events)
	assert.Empty(t, r.ListConfigured())
}
