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

package models

import "time"

// CloudEvent represents a CloudEvents v1.0 compliant event.
type CloudEvent struct {
	SpecVersion     string      `json:"specversion"`
	ID              string      `json:"id"`
	Source          string      `json:"source"`
	Type            string      `json:"type"`
	DataContentType string      `json:"datacontenttype"`
	Subject         string      `json:"subject,omitempty"`
	Time            *time.Time  `json:"time,omitempty"`
	Data            interface{} `json:"data,omitempty"`
}

// SoftwareBuild is the reportable form of a software build snapshot.
type SoftwareBuild struct {
	OSBuildVersion  string `json:"os_build_version"`
	StackVersion    int    `json:"stack_version"`
	DriverVersion   string `json:"driver_version"`
	FirmwareVersion string `json:"firmware_version"`
}

// ScanSummary is the reportable form of a scan snapshot. LastScanTimeMs is -1 when no
// scan has been observed.
type ScanSummary struct {
	LastScanTimeMs    int64 `json:"last_scan_time_ms"`
	BssidCount2G      int   `json:"bssid_count_2g"`
	BssidCountAbove2G int   `json:"bssid_count_above_2g"`
}

// PostBootReport is emitted at the end of every post-boot detection cycle.
type PostBootReport struct {
	Timestamp        time.Time      `json:"timestamp"`
	BuildChecked     bool           `json:"build_checked"`
	BuildChanged     bool           `json:"build_changed"`
	CurrentBuild     *SoftwareBuild `json:"current_build,omitempty"`
	PreviousBuild    *SoftwareBuild `json:"previous_build,omitempty"`
	PreBootScan      ScanSummary    `json:"pre_boot_scan"`
	PostBootScan     ScanSummary    `json:"post_boot_scan"`
	ScanFailureFlags int            `json:"scan_failure_flags"`
}

// DailyReport summarises one daily detection cycle.
type DailyReport struct {
	Timestamp                   time.Time    `json:"timestamp"`
	NetworksProcessed           int          `json:"networks_processed"`
	NetworksSufficientRecent    int          `json:"networks_sufficient_recent_only"`
	NetworksSufficientRecentPrv int          `json:"networks_sufficient_recent_prev"`
	ConnectionDurationSec       int          `json:"connection_duration_sec"`
	FailureIncrease             FailureStats `json:"failure_increase"`
	FailureDecrease             FailureStats `json:"failure_decrease"`
	FailureHigh                 FailureStats `json:"failure_high"`
}

// MonitorStatus is a point-in-time view of the health monitor for the admin API.
type MonitorStatus struct {
	WifiEnabled          bool            `json:"wifi_enabled"`
	Verbose              bool            `json:"verbose"`
	MemoryStoreInstalled bool            `json:"memory_store_installed"`
	Dirty                bool            `json:"dirty"`
	Mobility             string          `json:"mobility"`
	CurrentBuild         *SoftwareBuild  `json:"current_build,omitempty"`
	PreviousBuild        *SoftwareBuild  `json:"previous_build,omitempty"`
	CurrentScan          ScanSummary     `json:"current_scan"`
	PreBootScan          ScanSummary     `json:"pre_boot_scan"`
	FirstScanSinceStart  ScanSummary     `json:"first_scan_since_start"`
	ScanFailureFlags     int             `json:"scan_failure_flags"`
	LastPostBoot         *PostBootReport `json:"last_post_boot,omitempty"`
	LastDaily            *DailyReport    `json:"last_daily,omitempty"`
}
