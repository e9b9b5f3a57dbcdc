package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUsesSchedulerContext(t *testing.T) {
	sched := New()
	got := make(chan context.Context, 1)
	sched.Register(Job{
		Name:     "refresh",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			got <- ctx
			return nil
		},
	})

	lifecycle, cancel := context.WithCancel(context.Background())
	defer cancel()
	sched.Start(lifecycle)

	require.NoError(t, sched.Run("refresh"))

	// The triggered job runs under the scheduler's lifecycle context, so
	// it stays live after the triggering request has come and gone.
	select {
	case jobCtx := <-got:
		assert.NoError(t, jobCtx.Err())
		assert.Equal(t, lifecycle, jobCtx)
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestRunBeforeStartFallsBackToBackground(t *testing.T) {
	sched := New()
	got := make(chan context.Context, 1)
	sched.Register(Job{
		Name:     "refresh",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			got <- ctx
			return nil
		},
	})

	require.NoError(t, sched.Run("refresh"))

	select {
	case jobCtx := <-got:
		assert.NoError(t, jobCtx.Err())
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestRunUnknownJob(t *testing.T) {
	sched := New()
	assert.Error(t, sched.Run("missing"))
}

func TestListReportsJobOutcome(t *testing.T) {
	sched := New()
	done := make(chan struct{}, 1)
	sched.Register(Job{
		Name:     "flaky",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			defer func() { done <- struct{}{} }()
			return context.DeadlineExceeded
		},
	})

	require.NoError(t, sched.Run("flaky"))
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}

	// execute updates status after Fn returns; give it a beat.
	var status JobStatus
	for i := 0; i < 50; i++ {
		items := sched.List()
		require.Len(t, items, 1)
		status = items[0].Status
		if status == StatusFailed {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, StatusFailed, status)
}
