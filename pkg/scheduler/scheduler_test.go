package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsTaskImmediatelyAndOnInterval(t *testing.T) {
	s := NewScheduler(nil)
	var runs atomic.Int32

	s.AddTask("counter", 20*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	time.Sleep(70 * time.Millisecond)
	s.Stop()

	count := runs.Load()
	assert.GreaterOrEqual(t, count, int32(2), "startup run plus at least one tick")
}

func TestSchedulerStopPreventsFurtherRuns(t *testing.T) {
	s := NewScheduler(nil)
	var runs atomic.Int32

	s.AddTask("counter", 10*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	s.Stop()

	after := runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, runs.Load(), "no runs after Stop")
}

func TestSchedulerStartIsIdempotent(t *testing.T) {
	s := NewScheduler(nil)
	var runs atomic.Int32

	s.AddTask("counter", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	ctx := context.Background()
	s.Start(ctx)
	s.Start(ctx) // second start must not double the tasks
	time.Sleep(20 * time.Millisecond)
	s.Stop()

	assert.Equal(t, int32(1), runs.Load())
}
