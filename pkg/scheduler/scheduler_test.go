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
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/wifihealth/pkg/logger"
)

func TestNextDailyOccurrence(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name string
		now  time.Time
		hour int
		want time.Time
	}{
		{
			name: "hour 24 is next midnight",
			now:  time.Date(2025, 3, 10, 15, 30, 0, 0, loc),
			hour: 24,
			want: time.Date(2025, 3, 11, 0, 0, 0, 0, loc),
		},
		{
			name: "later today",
			now:  time.Date(2025, 3, 10, 1, 0, 0, 0, loc),
			hour: 3,
			want: time.Date(2025, 3, 10, 3, 0, 0, 0, loc),
		},
		{
			name: "already passed rolls to tomorrow",
			now:  time.Date(2025, 3, 10, 4, 0, 0, 0, loc),
			hour: 3,
			want: time.Date(2025, 3, 11, 3, 0, 0, 0, loc),
		},
		{
			name: "exactly on the hour rolls to tomorrow",
			now:  time.Date(2025, 3, 10, 3, 0, 0, 0, loc),
			hour: 3,
			want: time.Date(2025, 3, 11, 3, 0, 0, 0, loc),
		},
		{
			name: "month boundary",
			now:  time.Date(2025, 1, 31, 23, 59, 0, 0, loc),
			hour: 24,
			want: time.Date(2025, 2, 1, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextDailyOccurrence(tt.now, tt.hour))
		})
	}
}

func TestManualSchedulerFiresInDeadlineOrder(t *testing.T) {
	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	m := NewManualScheduler(start, nil)

	var fired []string

	m.SetOneShot("b", 20*time.Second, func() { fired = append(fired, "b") })
	m.SetOneShot("a", 10*time.Second, func() { fired = append(fired, "a") })

	m.Advance(5 * time.Second)
	assert.Empty(t, fired)

	m.Advance(30 * time.Second)
	assert.Equal(t, []string{"a", "b"}, fired)
	assert.Equal(t, start.Add(35*time.Second), m.Now())
}

func TestManualSchedulerReplacesSameTag(t *testing.T) {
	m := NewManualScheduler(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), nil)

	var fired []string

	m.SetOneShot("post-boot", 10*time.Second, func() { fired = append(fired, "first") })
	m.SetOneShot("post-boot", 10*time.Second, func() { fired = append(fired, "second") })

	m.Advance(time.Minute)
	assert.Equal(t, []string{"second"}, fired)

	_, pending := m.Pending("post-boot")
	assert.False(t, pending)
}

func TestManualSchedulerDailyRearm(t *testing.T) {
	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	m := NewManualScheduler(start, nil)

	var fireTimes []time.Time

	var arm func()
	arm = func() {
		m.SetDaily("daily", 24, func() {
			fireTimes = append(fireTimes, m.Now())
			arm()
		})
	}
	arm()

	at, ok := m.Pending("daily")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), at)

	m.Advance(60 * time.Hour)

	require.Len(t, fireTimes, 3)
	assert.Equal(t, time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), fireTimes[2])
}

func TestManualSchedulerUsesExecutor(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := NewMockExecutor(ctrl)

	m := NewManualScheduler(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), exec)

	ran := false

	exec.EXPECT().Post(gomock.Any()).DoAndReturn(func(fn func()) bool {
		fn()
		return true
	})

	m.SetOneShot("x", time.Second, func() { ran = true })
	m.Advance(time.Second)

	assert.True(t, ran)
}

func TestHandlerRunsInOrder(t *testing.T) {
	h := NewHandler(logger.NewTestLogger(), 0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = h.Run(ctx) }()

	var (
		mu  sync.Mutex
		got []int
	)

	for i := 0; i < 10; i++ {
		i := i
		require.True(t, h.Post(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		}))
	}

	require.NoError(t, h.Await(ctx, func() {}))

	mu.Lock()
	defer mu.Unlock()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestHandlerRecoversFromPanic(t *testing.T) {
	h := NewHandler(logger.NewTestLogger(), 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = h.Run(ctx) }()

	require.NoError(t, h.Await(ctx, func() { panic("boom") }))

	ran := false
	require.NoError(t, h.Await(ctx, func() { ran = true }))
	assert.True(t, ran)
}

func TestHandlerRejectsAfterStop(t *testing.T) {
	h := NewHandler(logger.NewTestLogger(), 1)

	ctx, cancel := context.WithCancel(context.Background())

	stopped := make(chan error, 1)

	go func() { stopped <- h.Run(ctx) }()

	cancel()
	require.ErrorIs(t, <-stopped, context.Canceled)

	assert.False(t, h.Post(func() {}))
	assert.ErrorIs(t, h.Await(context.Background(), func() {}), ErrHandlerStopped)
	assert.ErrorIs(t, h.Run(context.Background()), ErrHandlerRunning)
}

func TestTimerSchedulerSupersedes(t *testing.T) {
	s := NewTimerScheduler(nil, InlineExecutor{}, logger.NewTestLogger())
	defer s.Stop()

	fired := make(chan string, 2)

	s.SetOneShot("tag", 20*time.Millisecond, func() { fired <- "first" })
	s.SetOneShot("tag", 40*time.Millisecond, func() { fired <- "second" })

	select {
	case got := <-fired:
		assert.Equal(t, "second", got)
	case <-time.After(2 * time.Second):
		t.Fatal("alarm did not fire")
	}

	select {
	case got := <-fired:
		t.Fatalf("unexpected extra fire %q", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTimerSchedulerDailyUsesClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := NewMockClock(ctrl)

	clock.EXPECT().Now().Return(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	s := NewTimerScheduler(clock, InlineExecutor{}, logger.NewTestLogger())
	s.SetDaily("daily", 24, func() { t.Error("daily alarm should not fire during the test") })
	s.Stop()
}

// steppedClock is a wall clock the test can move in either direction.
type steppedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *steppedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *steppedClock) set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = t
}

func TestTimerSchedulerDailyWaitsForWallClock(t *testing.T) {
	midnight := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	clock := &steppedClock{now: midnight.Add(-10 * time.Millisecond)}

	s := NewTimerScheduler(clock, InlineExecutor{}, logger.NewTestLogger())
	s.recheck = 20 * time.Millisecond
	defer s.Stop()

	fired := make(chan struct{}, 2)

	s.SetDaily("daily", 24, func() { fired <- struct{}{} })

	// NTP steps the clock back a minute right after arming.
	clock.set(midnight.Add(-time.Minute))

	select {
	case <-fired:
		t.Fatal("daily alarm fired before its wall-clock target")
	case <-time.After(150 * time.Millisecond):
	}

	clock.set(midnight.Add(time.Second))

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("daily alarm did not fire once the target passed")
	}
}

func TestTimerSchedulerDailyRearmAfterBackwardStep(t *testing.T) {
	midnight := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	clock := &steppedClock{now: midnight.Add(-5 * time.Millisecond)}

	s := NewTimerScheduler(clock, InlineExecutor{}, logger.NewTestLogger())
	s.recheck = 20 * time.Millisecond
	defer s.Stop()

	fired := make(chan time.Time, 4)

	var daily func()
	daily = func() {
		fired <- clock.Now()

		// The clock is stepped back across midnight before the callback re-arms.
		clock.set(midnight.Add(-2 * time.Millisecond))
		s.SetDaily("daily", 24, daily)
	}

	s.SetDaily("daily", 24, daily)
	clock.set(midnight)

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("daily alarm did not fire")
	}

	clock.set(midnight.Add(time.Millisecond))

	select {
	case at := <-fired:
		t.Fatalf("daily alarm fired twice for the same day at %v", at)
	case <-time.After(200 * time.Millisecond):
	}
}
