package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_AddJobIgnoresDisabled(t *testing.T) {
	s := NewScheduler()

	s.AddJob(Job{Name: "off", Interval: 0, Fn: func(context.Context) error { return nil }})
	s.AddJob(Job{Name: "on", Interval: time.Minute, Fn: func(context.Context) error { return nil }})

	assert.Equal(t, 1, s.Len())
}

func TestScheduler_RunsOnTicks(t *testing.T) {
	// Setup
	var runs atomic.Int32
	s := NewScheduler()
	s.AddJob(Job{
		Name:       "count",
		Interval:   10 * time.Millisecond,
		RunOnStart: true,
		Fn: func(context.Context) error {
			runs.Add(1)
			return errors.New("failures are logged, not fatal")
		},
	})

	// Act
	s.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()

	// Assert
	stopped := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load())
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	assert.NotPanics(t, func() { NewScheduler().Stop() })
}

type countingRefresher struct {
	calls atomic.Int32
}

func (r *countingRefresher) RefreshAll(context.Context) error {
	r.calls.Add(1)
	return nil
}

func TestNewRefreshJob(t *testing.T) {
	refresher := &countingRefresher{}

	job := NewRefreshJob(refresher, time.Minute)

	assert.Equal(t, "refresh-records", job.Name)
	assert.Equal(t, time.Minute, job.Interval)
	assert.True(t, job.RunOnStart)
	assert.NoError(t, job.Fn(context.Background()))
	assert.Equal(t, int32(1), refresher.calls.Load())
}

func TestScheduler_RefreshJobRunsAtStart(t *testing.T) {
	// Setup
	refresher := &countingRefresher{}
	s := NewScheduler()
	s.AddJob(NewRefreshJob(refresher, time.Hour))

	// Act
	s.Start(context.Background())
	defer s.Stop()

	// Assert
	assert.Eventually(t, func() bool { return refresher.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_SlowRunsDoNotOverlap(t *testing.T) {
	// Setup
	var active, maxActive atomic.Int32
	s := NewScheduler()
	s.AddJob(Job{
		Name:     "slow",
		Interval: 2 * time.Millisecond,
		Fn: func(context.Context) error {
			n := active.Add(1)
			if n > maxActive.Load() {
				maxActive.Store(n)
			}
			time.Sleep(10 * time.Millisecond)
			active.Add(-1)
			return nil
		},
	})

	// Act
	s.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	// Assert
	assert.Equal(t, int32(1), maxActive.Load())
}
