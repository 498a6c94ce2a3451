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

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/carverauto/wifihealth/pkg/models"
	"github.com/carverauto/wifihealth/pkg/netconfig"
)

type mobilityRequest struct {
	State string `json:"state"`
}

type toggleRequest struct {
	Enabled bool `json:"enabled"`
}

type networkRequest struct {
	SSID string `json:"ssid"`
}

func (*Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultAwaitTimeout)
	defer cancel()

	resp, err := s.snapshot(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to snapshot status")
		writeError(w, "work queue unavailable", http.StatusServiceUnavailable)

		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) setWifiEnabled(enable bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var status *models.MonitorStatus

		if !s.await(w, r, func() {
			s.monitor.SetWifiEnabled(enable)
			status = s.monitor.Status()
		}) {
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}

func (s *Server) setMobility(w http.ResponseWriter, r *http.Request) {
	var req mobilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	state, err := models.ParseMobilityState(req.State)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !s.await(w, r, func() { s.monitor.SetMobilityState(state) }) {
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"mobility": state.String()})
}

func (s *Server) setVerbose(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if !s.await(w, r, func() { s.monitor.EnableVerboseLogging(req.Enabled) }) {
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"verbose": req.Enabled})
}

func (s *Server) flush(w http.ResponseWriter, r *http.Request) {
	if !s.await(w, r, func() {
		s.monitor.DoWrites()
		s.stats.DoWrites()
	}) {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// factoryReset forgets build history, scan snapshots and every network's statistics,
// persisting the empty state.
func (s *Server) factoryReset(w http.ResponseWriter, r *http.Request) {
	if !s.await(w, r, func() {
		s.monitor.Clear()
		s.stats.ClearAll()
		s.monitor.DoWrites()
		s.stats.DoWrites()
	}) {
		return
	}

	s.logger.Info().Str("remote_addr", r.RemoteAddr).Msg("Factory reset")

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listNetworks(w http.ResponseWriter, _ *http.Request) {
	configured := s.networks.ListConfigured()

	out := make([]NetworkResponse, 0, len(configured))
	for _, n := range configured {
		out = append(out, NetworkResponse{SSID: n.SSID, Enabled: s.networks.Enabled(n.SSID)})
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) addNetwork(w http.ResponseWriter, r *http.Request) {
	var req networkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	network, err := s.networks.Add(req.SSID)
	if err != nil {
		writeError(w, err.Error(), networkErrorStatus(err))
		return
	}

	writeJSON(w, http.StatusCreated, NetworkResponse{SSID: network.SSID, Enabled: true})
}

func (s *Server) removeNetwork(w http.ResponseWriter, r *http.Request) {
	if err := s.networks.Remove(mux.Vars(r)["ssid"]); err != nil {
		writeError(w, err.Error(), networkErrorStatus(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) setNetworkEnabled(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ssid := mux.Vars(r)["ssid"]

	if err := s.networks.SetEnabled(ssid, req.Enabled); err != nil {
		writeError(w, err.Error(), networkErrorStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, NetworkResponse{SSID: ssid, Enabled: req.Enabled})
}

func networkErrorStatus(err error) int {
	switch {
	case errors.Is(err, netconfig.ErrInvalidNetwork):
		return http.StatusBadRequest
	case errors.Is(err, netconfig.ErrNetworkExists):
		return http.StatusConflict
	case errors.Is(err, netconfig.ErrNetworkNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
