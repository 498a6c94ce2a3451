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

//go:generate mockgen -destination=mock_scheduler.go -package=scheduler github.com/carverauto/wifihealth/pkg/scheduler Clock,Executor,AlarmScheduler

// Package scheduler provides the serialized work queue and re-armable alarms that drive
// the health monitor's detection cycles.
package scheduler

import "time"

// Clock abstracts wall-clock reads.
type Clock interface {
	Now() time.Time
}

// Executor runs posted work. The health monitor assumes every callback it receives is
// executed by one Executor, one at a time.
type Executor interface {
	Post(fn func()) bool
}

// AlarmScheduler arms tagged alarms whose callbacks are delivered through an Executor.
// Arming a tag that already has a pending alarm replaces it; there is no cancel.
type AlarmScheduler interface {
	// SetOneShot fires fn once after delay.
	SetOneShot(tag string, delay time.Duration, fn func())
	// SetDaily fires fn once at the next occurrence of hour:00 local time. Callers
	// re-arm from the callback to get a recurring alarm.
	SetDaily(tag string, hour int, fn func())
}
