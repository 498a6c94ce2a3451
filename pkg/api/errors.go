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

package api

import "errors"

var (
	errExecutorRequired = errors.New("executor is required")
	errMonitorRequired  = errors.New("monitor is required")
	errStatsRequired    = errors.New("stats store is required")
	errNetworksRequired = errors.New("network registry is required")
	errLoggerRequired   = errors.New("logger is required")

	errHijackUnsupported = errors.New("response writer does not support hijacking")
)
