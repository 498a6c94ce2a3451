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

// Package api serves the wifihealth admin HTTP surface.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	srHttp "github.com/carverauto/wifihealth/pkg/http"
	"github.com/carverauto/wifihealth/pkg/logger"
	"github.com/carverauto/wifihealth/pkg/models"
)

const (
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 5 * time.Second
	defaultAwaitTimeout    = 5 * time.Second
)

// Server routes admin requests onto the monitor's work queue.
type Server struct {
	router   *mux.Router
	cfg      models.APIConfig
	exec     Executor
	monitor  Monitor
	stats    StatsStore
	networks NetworkRegistry
	logger   logger.Logger
	metrics  *httpMetrics
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// StatusResponse is the body of GET /api/status.
type StatusResponse struct {
	Monitor  *models.MonitorStatus `json:"monitor"`
	Networks []models.NetworkStats `json:"networks"`
}

// NetworkResponse describes one configured network.
type NetworkResponse struct {
	SSID    string `json:"ssid"`
	Enabled bool   `json:"enabled"`
}

// WithExecutor sets the work queue every monitor call runs on.
func WithExecutor(exec Executor) func(*Server) {
	return func(s *Server) {
		s.exec = exec
	}
}

// WithMonitor sets the health monitor.
func WithMonitor(m Monitor) func(*Server) {
	return func(s *Server) {
		s.monitor = m
	}
}

// WithStatsStore sets the per-network statistics store.
func WithStatsStore(stats StatsStore) func(*Server) {
	return func(s *Server) {
		s.stats = stats
	}
}

// WithNetworkRegistry sets the configured-network registry.
func WithNetworkRegistry(r NetworkRegistry) func(*Server) {
	return func(s *Server) {
		s.networks = r
	}
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) func(*Server) {
	return func(s *Server) {
		s.logger = log
	}
}

// NewServer builds the router; every With option is required.
func NewServer(cfg models.APIConfig, options ...func(*Server)) (*Server, error) {
	s := &Server{
		router:  mux.NewRouter(),
		cfg:     cfg,
		metrics: newHTTPMetrics(),
	}

	for _, o := range options {
		o(s)
	}

	switch {
	case s.exec == nil:
		return nil, errExecutorRequired
	case s.monitor == nil:
		return nil, errMonitorRequired
	case s.stats == nil:
		return nil, errStatsRequired
	case s.networks == nil:
		return nil, errNetworksRequired
	case s.logger == nil:
		return nil, errLoggerRequired
	}

	if s.cfg.StatusInterval <= 0 {
		s.cfg.StatusInterval = models.Duration(5 * time.Second)
	}

	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(s.metrics.middleware)

	s.router.HandleFunc("/health", s.health).Methods(http.MethodGet)
	s.router.Handle("/metrics", s.metrics.handler()).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/status", s.getStatus).Methods(http.MethodGet)
	api.HandleFunc("/status/stream", s.streamStatus).Methods(http.MethodGet)
	api.HandleFunc("/wifi/enable", s.setWifiEnabled(true)).Methods(http.MethodPost)
	api.HandleFunc("/wifi/disable", s.setWifiEnabled(false)).Methods(http.MethodPost)
	api.HandleFunc("/mobility", s.setMobility).Methods(http.MethodPut)
	api.HandleFunc("/verbose", s.setVerbose).Methods(http.MethodPost)
	api.HandleFunc("/flush", s.flush).Methods(http.MethodPost)
	api.HandleFunc("/factory-reset", s.factoryReset).Methods(http.MethodPost)
	api.HandleFunc("/networks", s.listNetworks).Methods(http.MethodGet)
	api.HandleFunc("/networks", s.addNetwork).Methods(http.MethodPost)
	api.HandleFunc("/networks/{ssid}", s.removeNetwork).Methods(http.MethodDelete)
	api.HandleFunc("/networks/{ssid}/enabled", s.setNetworkEnabled).Methods(http.MethodPut)
}

// Handler wraps the router with tracing, CORS and API key checks.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.router

	h = srHttp.APIKeyMiddlewareWithOptions(srHttp.APIKeyOptions{
		APIKey:          s.cfg.APIKey,
		ExcludePaths:    []string{"/health", "/metrics"},
		LogUnauthorized: true,
		Logger:          s.logger,
	})(h)
	h = srHttp.CommonMiddleware(h, s.cfg.CORS, s.logger)

	return otelhttp.NewHandler(h, "wifihealth-api")
}

// Start serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", addr).Msg("Starting admin API")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// await runs fn on the Executor, replying 503 when it cannot.
func (s *Server) await(w http.ResponseWriter, r *http.Request, fn func()) bool {
	ctx, cancel := context.WithTimeout(r.Context(), defaultAwaitTimeout)
	defer cancel()

	if err := s.exec.Await(ctx, fn); err != nil {
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("Work queue unavailable")
		writeError(w, "work queue unavailable", http.StatusServiceUnavailable)

		return false
	}

	return true
}

func (s *Server) snapshot(ctx context.Context) (*StatusResponse, error) {
	var resp StatusResponse

	err := s.exec.Await(ctx, func() {
		resp.Monitor = s.monitor.Status()
		resp.Networks = s.stats.Snapshot()
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, ErrorResponse{Message: message, Status: status})
}
