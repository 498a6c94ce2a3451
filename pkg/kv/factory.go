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

package kv

import (
	"context"
	"fmt"
	"strings"

	"github.com/carverauto/wifihealth/pkg/models"
)

// Open builds the KVStore selected by cfg.Backend.
func Open(ctx context.Context, cfg models.StorageConfig) (KVStore, error) {
	switch strings.ToLower(cfg.Backend) {
	case models.StorageBackendNATS:
		return NewNatsStore(ctx, cfg.NATSURL, cfg.Bucket, 0)
	case models.StorageBackendSQLite:
		return NewSQLiteStore(cfg.SQLitePath)
	case models.StorageBackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownBackend, cfg.Backend)
	}
}
