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

package healthmonitor

import (
	"fmt"

	"github.com/carverauto/wifihealth/pkg/models"
)

// TSNone marks a ScanSnapshot that has not observed a scan. It is distinct from 0.
const TSNone int64 = -1

// ScanSnapshot counts the BSSIDs seen by the most recent full-spectrum scan.
type ScanSnapshot struct {
	LastScanTimeMs    int64
	BssidCount2G      int
	BssidCountAbove2G int
}

// NewScanSnapshot returns an empty snapshot.
func NewScanSnapshot() ScanSnapshot {
	return ScanSnapshot{LastScanTimeMs: TSNone}
}

// Clear resets the snapshot to {TSNone, 0, 0}.
func (s *ScanSnapshot) Clear() {
	*s = NewScanSnapshot()
}

// HasScan reports whether the snapshot carries a timestamp.
func (s ScanSnapshot) HasScan() bool {
	return s.LastScanTimeMs != TSNone
}

func (s ScanSnapshot) String() string {
	return fmt.Sprintf("last scan time: %d, 2g: %d, above 2g: %d",
		s.LastScanTimeMs, s.BssidCount2G, s.BssidCountAbove2G)
}

func (s ScanSnapshot) toModel() models.ScanSummary {
	return models.ScanSummary{
		LastScanTimeMs:    s.LastScanTimeMs,
		BssidCount2G:      s.BssidCount2G,
		BssidCountAbove2G: s.BssidCountAbove2G,
	}
}
