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

//go:generate mockgen -destination=mock_scorecard.go -package=scorecard github.com/carverauto/wifihealth/pkg/scorecard MemoryStore

// Package scorecard keeps per-network connection statistics across days and software
// builds, and runs the per-network half of daily failure detection.
package scorecard

// MemoryStore persists per-network records. Read calls onRead at most once, with nil when
// nothing is stored.
type MemoryStore interface {
	Read(key, field string, onRead func([]byte))
	Write(key, field string, value []byte)
	Delete(key, field string)
}
