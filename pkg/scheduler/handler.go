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

package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/carverauto/wifihealth/pkg/logger"
)

var (
	// ErrHandlerStopped is returned when work is posted after the handler exited.
	ErrHandlerStopped = errors.New("handler stopped")
	// ErrHandlerRunning is returned by Run when the handler loop is already active.
	ErrHandlerRunning = errors.New("handler already running")
)

const defaultQueueSize = 64

// Handler is a single-goroutine FIFO work queue. Everything that mutates monitor state is
// posted here so no two callbacks ever run concurrently.
type Handler struct {
	queue   chan func()
	done    chan struct{}
	logger  logger.Logger
	mu      sync.Mutex
	running bool
}

// NewHandler creates a Handler with the given queue depth (0 selects a default).
func NewHandler(log logger.Logger, size int) *Handler {
	if size <= 0 {
		size = defaultQueueSize
	}

	return &Handler{
		queue:  make(chan func(), size),
		done:   make(chan struct{}),
		logger: log,
	}
}

// Post enqueues fn, blocking while the queue is full. It returns false once the
// handler has stopped.
func (h *Handler) Post(fn func()) bool {
	select {
	case <-h.done:
		return false
	default:
	}

	select {
	case h.queue <- fn:
		return true
	case <-h.done:
		return false
	}
}

// Await posts fn and waits until it has run or ctx ends.
func (h *Handler) Await(ctx context.Context, fn func()) error {
	finished := make(chan struct{})

	if !h.Post(func() {
		defer close(finished)
		fn()
	}) {
		return ErrHandlerStopped
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-h.done:
		return ErrHandlerStopped
	}
}

// Run executes posted work until ctx is canceled. Work still queued at cancellation is
// dropped.
func (h *Handler) Run(ctx context.Context) error {
	h.mu.Lock()
	if h.running {
		h.mu.Unlock()

		return ErrHandlerRunning
	}

	h.running = true
	h.mu.Unlock()

	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-h.queue:
			h.execute(fn)
		}
	}
}

func (h *Handler) execute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error().
				Err(fmt.Errorf("%v", r)).
				Msg("Recovered from panic in posted work")
		}
	}()

	fn()
}
