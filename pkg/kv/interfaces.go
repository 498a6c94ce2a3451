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

//go:generate mockgen -destination=mock_kv.go -package=kv github.com/carverauto/wifihealth/pkg/kv KVStore

// Package kv provides the byte stores that back persisted WiFi health state.
package kv

import (
	"context"
	"time"
)

// KVStore is a flat key/value byte store.
type KVStore interface {
	// Get retrieves the value for key. found is false when the key does not exist.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Put stores value under key. A zero ttl keeps the value until it is deleted; backends
	// with bucket-level TTLs ignore it.
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}
