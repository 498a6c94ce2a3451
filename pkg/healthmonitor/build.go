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

// NotAvailable replaces persisted build strings that were never recorded.
const NotAvailable = "NA"

// SoftwareBuild fingerprints the running software. It is a value type: snapshots are
// replaced wholesale and compared with ==.
type SoftwareBuild struct {
	OSBuildVersion  string
	StackVersion    int
	DriverVersion   string
	FirmwareVersion string
}

func (b SoftwareBuild) String() string {
	return fmt.Sprintf("os: %s, stack: %d, driver: %s, firmware: %s",
		b.OSBuildVersion, b.StackVersion, b.DriverVersion, b.FirmwareVersion)
}

func (b SoftwareBuild) toModel() *models.SoftwareBuild {
	return &models.SoftwareBuild{
		OSBuildVersion:  b.OSBuildVersion,
		StackVersion:    b.StackVersion,
		DriverVersion:   b.DriverVersion,
		FirmwareVersion: b.FirmwareVersion,
	}
}

// DetectChange reports whether current differs in any field from persisted. With nothing
// persisted there is nothing to compare, so the answer is false. Rollbacks count as changes.
func DetectChange(current SoftwareBuild, persisted *SoftwareBuild) bool {
	if persisted == nil {
		return false
	}

	return current != *persisted
}

func buildModel(b *SoftwareBuild) *models.SoftwareBuild {
	if b == nil {
		return nil
	}

	return b.toModel()
}
