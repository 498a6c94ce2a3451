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

package feed

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/carverauto/wifihealth/pkg/models"
)

const (
	ScanMessageResult   = "result"
	ScanMessageComplete = "complete"
)

// ScanMessage is one frame of the scan feed: a single detection, or the completion of a
// scan carrying its band coverage.
type ScanMessage struct {
	Type   string             `json:"type"`
	Result *models.ScanResult `json:"result,omitempty"`
	Band   models.ScanBand    `json:"band,omitempty"`
}

func decodeScanMessage(data []byte) (*ScanMessage, error) {
	if len(data) == 0 {
		return nil, ErrEmptyMessage
	}

	var msg ScanMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnmarshal, err)
	}

	switch msg.Type {
	case ScanMessageResult:
		if msg.Result == nil {
			return nil, ErrMissingScanResult
		}
	case ScanMessageComplete:
		if msg.Band == "" {
			msg.Band = models.BandUnspecified
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScanType, msg.Type)
	}

	return &msg, nil
}

func decodeConnectionEvent(data []byte, now time.Time) (*models.ConnectionEvent, error) {
	if len(data) == 0 {
		return nil, ErrEmptyMessage
	}

	var event models.ConnectionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnmarshal, err)
	}

	if event.SSID == "" {
		return nil, ErrMissingSSID
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = now
	}

	return &event, nil
}
