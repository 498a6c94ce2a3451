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

package scheduler

import "time"

type realClock struct{}

// RealClock returns a Clock backed by time.Now.
func RealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// NextDailyOccurrence returns the first instant strictly after now at hour:00 in now's
// location. Hour 24 resolves to the coming midnight.
func NextDailyOccurrence(now time.Time, hour int) time.Time {
	y, m, d := now.Date()

	next := time.Date(y, m, d, hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}

// InlineExecutor runs posted work on the caller's goroutine.
type InlineExecutor struct{}

func (InlineExecutor) Post(fn func()) bool {
	fn()

	return true
}
