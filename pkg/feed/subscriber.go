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

// Package feed subscribes to the live scan and connection event subjects on NATS and hands
// their contents to the health monitor and the scorecard.
package feed

import (
	"errors"
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/carverauto/wifihealth/pkg/healthmonitor"
	"github.com/carverauto/wifihealth/pkg/logger"
	"github.com/carverauto/wifihealth/pkg/models"
	"github.com/carverauto/wifihealth/pkg/scheduler"
)

// ConnectionRecorder folds connection events into per-network statistics. Record runs on
// the Executor.
type ConnectionRecorder interface {
	Record(event *models.ConnectionEvent)
}

// Subscriber owns the feed subscriptions for the life of the process.
type Subscriber struct {
	nc       *nats.Conn
	cfg      models.FeedConfig
	exec     scheduler.Executor
	recorder ConnectionRecorder
	clock    scheduler.Clock
	logger   logger.Logger

	mu        sync.RWMutex
	listeners []healthmonitor.ScanListener
	subs      []*nats.Subscription
}

var _ healthmonitor.ScanSource = (*Subscriber)(nil)

// NewSubscriber validates its collaborators; call Start to begin receiving.
func NewSubscriber(
	nc *nats.Conn,
	cfg models.FeedConfig,
	exec scheduler.Executor,
	recorder ConnectionRecorder,
	log logger.Logger,
) (*Subscriber, error) {
	switch {
	case nc == nil:
		return nil, errConnRequired
	case exec == nil:
		return nil, errExecutorRequired
	case recorder == nil:
		return nil, errRecorderRequired
	case log == nil:
		return nil, errLoggerRequired
	case cfg.ScanSubject == "" || cfg.ConnectionSubject == "":
		return nil, errSubjectRequired
	}

	return &Subscriber{
		nc:       nc,
		cfg:      cfg,
		exec:     exec,
		recorder: recorder,
		clock:    scheduler.RealClock(),
		logger:   log,
	}, nil
}

// RegisterScanListener adds a listener for every later scan frame. Listeners are never
// removed.
func (s *Subscriber) RegisterScanListener(listener healthmonitor.ScanListener) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, listener)

	return nil
}

// Start subscribes to both subjects.
func (s *Subscriber) Start() error {
	scanSub, err := s.nc.Subscribe(s.cfg.ScanSubject, s.handleScan)
	if err != nil {
		return err
	}

	connSub, err := s.nc.Subscribe(s.cfg.ConnectionSubject, s.handleConnection)
	if err != nil {
		_ = scanSub.Unsubscribe()

		return err
	}

	s.mu.Lock()
	s.subs = append(s.subs, scanSub, connSub)
	s.mu.Unlock()

	s.logger.Info().
		Str("scan_subject", s.cfg.ScanSubject).
		Str("connection_subject", s.cfg.ConnectionSubject).
		Msg("Subscribed to WiFi feed")

	return nil
}

// Stop drops both subscriptions.
func (s *Subscriber) Stop() error {
	s.mu.Lock()
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	var errs []error

	for _, sub := range subs {
		if err := sub.Unsubscribe(); err != nil && !errors.Is(err, nats.ErrConnectionClosed) {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s *Subscriber) handleScan(msg *nats.Msg) {
	frame, err := decodeScanMessage(msg.Data)
	if err != nil {
		s.logger.Warn().Err(err).Str("subject", msg.Subject).Msg("Dropping scan message")
		return
	}

	s.mu.RLock()
	listeners := append([]healthmonitor.ScanListener(nil), s.listeners...)
	s.mu.RUnlock()

	for _, listener := range listeners {
		if frame.Type == ScanMessageResult {
			listener.OnFullResult(*frame.Result)
		} else {
			listener.OnResults(frame.Band)
		}
	}
}

func (s *Subscriber) handleConnection(msg *nats.Msg) {
	event, err := decodeConnectionEvent(msg.Data, s.clock.Now())
	if err != nil {
		s.logger.Warn().Err(err).Str("subject", msg.Subject).Msg("Dropping connection event")
		return
	}

	if !s.exec.Post(func() { s.recorder.Record(event) }) {
		s.logger.Warn().Str("ssid", event.SSID).Msg("Work queue rejected connection event")
	}
}
