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

import (
	"sort"
	"sync"
	"time"
)

type manualAlarm struct {
	at  time.Time
	seq uint64
	fn  func()
}

// ManualScheduler is a controllable Clock and AlarmScheduler for tests. Time only moves
// through Advance or Set, and due alarms fire in deadline order on the Executor.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Time
	exec   Executor
	alarms map[string]manualAlarm
	seq    uint64
}

// NewManualScheduler starts the fake clock at start. A nil exec runs callbacks inline.
func NewManualScheduler(start time.Time, exec Executor) *ManualScheduler {
	if exec == nil {
		exec = InlineExecutor{}
	}

	return &ManualScheduler{
		now:    start,
		exec:   exec,
		alarms: make(map[string]manualAlarm),
	}
}

func (m *ManualScheduler) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.now
}

func (m *ManualScheduler) SetOneShot(tag string, delay time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.arm(tag, m.now.Add(delay), fn)
}

func (m *ManualScheduler) SetDaily(tag string, hour int, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.arm(tag, NextDailyOccurrence(m.now, hour), fn)
}

func (m *ManualScheduler) arm(tag string, at time.Time, fn func()) {
	m.seq++
	m.alarms[tag] = manualAlarm{at: at, seq: m.seq, fn: fn}
}

// Pending reports when the alarm under tag is due.
func (m *ManualScheduler) Pending(tag string) (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	alarm, ok := m.alarms[tag]

	return alarm.at, ok
}

// Advance moves the clock forward by d, firing every alarm that falls due on the way.
// Alarms armed by a firing callback are eligible if they fall inside the window.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	m.Set(target)
}

// Set moves the clock to t, firing due alarms in deadline order.
func (m *ManualScheduler) Set(t time.Time) {
	for {
		m.mu.Lock()

		tag, alarm, ok := m.nextDue(t)
		if !ok {
			if t.After(m.now) {
				m.now = t
			}

			m.mu.Unlock()

			return
		}

		delete(m.alarms, tag)

		if alarm.at.After(m.now) {
			m.now = alarm.at
		}

		m.mu.Unlock()

		m.exec.Post(alarm.fn)
	}
}

func (m *ManualScheduler) nextDue(limit time.Time) (string, manualAlarm, bool) {
	tags := make([]string, 0, len(m.alarms))

	for tag, alarm := range m.alarms {
		if !alarm.at.After(limit) {
			tags = append(tags, tag)
		}
	}

	if len(tags) == 0 {
		return "", manualAlarm{}, false
	}

	sort.Slice(tags, func(i, j int) bool {
		a, b := m.alarms[tags[i]], m.alarms[tags[j]]
		if a.at.Equal(b.at) {
			return a.seq < b.seq
		}

		return a.at.Before(b.at)
	})

	return tags[0], m.alarms[tags[0]], true
}
