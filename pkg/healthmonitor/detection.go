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

// Scan failure bits. Pre-boot bits flag a last scan before shutdown that looks broken
// next to a healthy first scan after boot; post-boot bits flag the reverse.
const (
	ScanFailurePreBoot2G = 1 << iota
	ScanFailurePreBootAbove2G
	ScanFailurePostBoot2G
	ScanFailurePostBootAbove2G
)

// ScanThresholds parameterizes AbnormalScanBitmask.
type ScanThresholds struct {
	// MaxIntervalMs is the largest gap between the two scans that still allows a verdict.
	MaxIntervalMs   int64
	MinBssid2G      int
	MinBssidAbove2G int
}

// AbnormalScanBitmask compares the last pre-boot scan with the first post-boot scan. It
// returns 0 when either scan is missing or the scans are too far apart, otherwise the OR
// of the ScanFailure bits whose band went from empty to healthy or back.
func AbnormalScanBitmask(preBoot, postBoot ScanSnapshot, th ScanThresholds) int {
	if !preBoot.HasScan() || !postBoot.HasScan() {
		return 0
	}

	if postBoot.LastScanTimeMs-preBoot.LastScanTimeMs > th.MaxIntervalMs {
		return 0
	}

	mask := 0

	if preBoot.BssidCount2G == 0 && postBoot.BssidCount2G >= th.MinBssid2G {
		mask |= ScanFailurePreBoot2G
	}

	if preBoot.BssidCountAbove2G == 0 && postBoot.BssidCountAbove2G >= th.MinBssidAbove2G {
		mask |= ScanFailurePreBootAbove2G
	}

	if postBoot.BssidCount2G == 0 && preBoot.BssidCount2G >= th.MinBssid2G {
		mask |= ScanFailurePostBoot2G
	}

	if postBoot.BssidCountAbove2G == 0 && preBoot.BssidCountAbove2G >= th.MinBssidAbove2G {
		mask |= ScanFailurePostBootAbove2G
	}

	return mask
}
