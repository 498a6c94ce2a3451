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
	"sync"
	"time"

	"github.com/carverauto/wifihealth/pkg/logger"
)

// dailyRecheckInterval bounds how long a daily alarm sleeps before comparing the wall
// clock with its target again.
const dailyRecheckInterval = 5 * time.Minute

type timerEntry struct {
	timer *time.Timer
	gen   uint64
	// target is the wall-clock deadline of a daily alarm; zero for one-shots.
	target time.Time
}

// TimerScheduler implements AlarmScheduler on time.AfterFunc. Daily alarms track a
// wall-clock target, so a clock step after arming moves the fire time with it.
type TimerScheduler struct {
	mu         sync.Mutex
	clock      Clock
	exec       Executor
	logger     logger.Logger
	timers     map[string]*timerEntry
	lastTarget map[string]time.Time
	gen        uint64
	recheck    time.Duration
}

// NewTimerScheduler creates a scheduler whose callbacks are posted to exec.
func NewTimerScheduler(clock Clock, exec Executor, log logger.Logger) *TimerScheduler {
	if clock == nil {
		clock = RealClock()
	}

	return &TimerScheduler{
		clock:      clock,
		exec:       exec,
		logger:     log,
		timers:     make(map[string]*timerEntry),
		lastTarget: make(map[string]time.Time),
		recheck:    dailyRecheckInterval,
	}
}

func (s *TimerScheduler) SetOneShot(tag string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.armLocked(tag, delay, time.Time{}, fn)

	s.logger.Debug().
		Str("tag", tag).
		Dur("delay", delay).
		Msg("Alarm armed")
}

// SetDaily arms tag for the next hour:00 after both now and the target it last fired
// for. A wall clock stepped backwards cannot make the same day fire twice.
func (s *TimerScheduler) SetDaily(tag string, hour int, fn func()) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	from := now
	if last, ok := s.lastTarget[tag]; ok && last.After(from) {
		from = last
	}

	target := NextDailyOccurrence(from, hour)

	s.armLocked(tag, min(target.Sub(now), s.recheck), target, fn)

	s.logger.Debug().
		Str("tag", tag).
		Time("at", target).
		Msg("Daily alarm armed")
}

func (s *TimerScheduler) armLocked(tag string, delay time.Duration, target time.Time, fn func()) {
	if prev, ok := s.timers[tag]; ok {
		prev.timer.Stop()
	}

	s.gen++
	gen := s.gen

	entry := &timerEntry{gen: gen, target: target}
	entry.timer = time.AfterFunc(delay, func() {
		s.fire(tag, gen, fn)
	})

	s.timers[tag] = entry
}

// fire posts fn unless the alarm was superseded after the timer elapsed. A daily alarm
// that wakes before its wall-clock target sleeps again instead. The generation is
// checked again on the executor.
func (s *TimerScheduler) fire(tag string, gen uint64, fn func()) {
	s.mu.Lock()

	entry, ok := s.timers[tag]
	if !ok || entry.gen != gen {
		s.mu.Unlock()
		return
	}

	if !entry.target.IsZero() {
		if wait := entry.target.Sub(s.clock.Now()); wait > 0 {
			entry.timer = time.AfterFunc(min(wait, s.recheck), func() {
				s.fire(tag, gen, fn)
			})
			s.mu.Unlock()

			return
		}
	}

	target := entry.target
	s.mu.Unlock()

	if !s.exec.Post(func() {
		s.mu.Lock()

		entry, ok := s.timers[tag]
		if !ok || entry.gen != gen {
			s.mu.Unlock()
			return
		}

		delete(s.timers, tag)

		if !target.IsZero() {
			s.lastTarget[tag] = target
		}

		s.mu.Unlock()

		fn()
	}) {
		s.logger.Warn().Str("tag", tag).Msg("Alarm dropped, executor stopped")
	}
}

// Stop disarms every pending alarm.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for tag, entry := range s.timers {
		entry.timer.Stop()
		delete(s.timers, tag)
	}
}
