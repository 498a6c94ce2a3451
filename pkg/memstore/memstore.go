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

// Package memstore bridges the fire-and-forget read/write contract used by the health
// monitor and the network scorecard onto a kv.KVStore.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/carverauto/wifihealth/pkg/kv"
	"github.com/carverauto/wifihealth/pkg/logger"
)

const defaultOpTimeout = 10 * time.Second

// Store adapts a kv.KVStore to asynchronous Read/Write calls. Operations run on their own
// goroutines and never report failure to the caller.
type Store struct {
	kv        kv.KVStore
	logger    logger.Logger
	ctx       context.Context
	opTimeout time.Duration
	wg        sync.WaitGroup
}

// New creates a Store bound to ctx; canceling ctx abandons in-flight operations.
func New(ctx context.Context, store kv.KVStore, log logger.Logger) *Store {
	return &Store{
		kv:        store,
		logger:    log,
		ctx:       ctx,
		opTimeout: defaultOpTimeout,
	}
}

// Key joins a record key and a field name into the backend key.
func Key(key, field string) string {
	return key + "." + field
}

// Read fetches key/field and calls onRead exactly once with the bytes, or with nil when
// the value is missing or the fetch failed.
func (s *Store) Read(key, field string, onRead func([]byte)) {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(s.ctx, s.opTimeout)
		defer cancel()

		fullKey := Key(key, field)

		value, found, err := s.kv.Get(ctx, fullKey)
		if err != nil {
			s.logger.Warn().Err(err).Str("key", fullKey).Msg("Memory store read failed")

			onRead(nil)

			return
		}

		if !found {
			s.logger.Debug().Str("key", fullKey).Msg("Memory store key not found")

			onRead(nil)

			return
		}

		onRead(value)
	}()
}

// Write stores value under key/field. Failures are logged only.
func (s *Store) Write(key, field string, value []byte) {
	buf := append([]byte(nil), value...)

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(s.ctx, s.opTimeout)
		defer cancel()

		fullKey := Key(key, field)

		if err := s.kv.Put(ctx, fullKey, buf, 0); err != nil {
			s.logger.Error().Err(err).Str("key", fullKey).Msg("Memory store write failed")

			return
		}

		s.logger.Debug().Str("key", fullKey).Int("bytes", len(buf)).Msg("Memory store write complete")
	}()
}

// Delete removes key/field. Failures are logged only.
func (s *Store) Delete(key, field string) {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(s.ctx, s.opTimeout)
		defer cancel()

		fullKey := Key(key, field)

		if err := s.kv.Delete(ctx, fullKey); err != nil {
			s.logger.Error().Err(err).Str("key", fullKey).Msg("Memory store delete failed")
		}
	}()
}

// Wait blocks until every operation issued so far has finished.
func (s *Store) Wait() {
	s.wg.Wait()
}
