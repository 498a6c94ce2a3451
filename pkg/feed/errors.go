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

import "errors"

var (
	ErrEmptyMessage      = errors.New("empty message")
	ErrUnmarshal         = errors.New("failed to unmarshal message")
	ErrUnknownScanType   = errors.New("unknown scan message type")
	ErrMissingScanResult = errors.New("scan result message without result")
	ErrMissingSSID       = errors.New("connection event without ssid")

	errConnRequired     = errors.New("nats connection is required")
	errExecutorRequired = errors.New("executor is required")
	errRecorderRequired = errors.New("connection recorder is required")
	errLoggerRequired   = errors.New("logger is required")
	errSubjectRequired  = errors.New("scan and connection subjects are required")
)
