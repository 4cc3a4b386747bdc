package worker_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jeffleon2/fiadopay/internal/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsEverySubmittedTask(t *testing.T) {
	pool := worker.NewPool("test", 4, 16)

	var count atomic.Int32
	for i := 0; i < 50; i++ {
		require.NoError(t, pool.Submit(func(ctx context.Context) {
			count.Add(1)
		}))
	}

	require.NoError(t, pool.Shutdown(context.Background()))
	assert.Equal(t, int32(50), count.Load())
}

func TestPool_PanickingTaskDoesNotAffectOthers(t *testing.T) {
	pool := worker.NewPool("test", 1, 4)

	var ran atomic.Bool
	require.NoError(t, pool.Submit(func(ctx context.Context) {
		panic("boom")
	}))
	require.NoError(t, pool.Submit(func(ctx context.Context) {
		ran.Store(true)
	}))

	require.NoError(t, pool.Shutdown(context.Background()))
	assert.True(t, ran.Load())
}

func TestPool_SubmitAfterShutdown(t *testing.T) {
	pool := worker.NewPool("test", 1, 1)
	require.NoError(t, pool.Shutdown(context.Background()))

	err := pool.Submit(func(ctx context.Context) {})
	assert.ErrorIs(t, err, worker.ErrPoolClosed)
}

func TestPool_ShutdownTimesOut(t *testing.T) {
	pool := worker.NewPool("test", 1, 1)
	release := make(chan struct{})
	defer close(release)

	require.NoError(t, pool.Submit(func(ctx context.Context) {
		select {
		case <-release:
		case <-ctx.Done():
		}
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.Error(t, pool.Shutdown(ctx))
}

func TestScheduler_FiresAfterDelay(t *testing.T) {
	s := worker.NewScheduler(2)
	defer s.Shutdown(context.Background())

	fired := make(chan time.Time, 1)
	start := time.Now()
	require.True(t, s.Schedule(20*time.Millisecond, func(ctx context.Context) {
		fired <- time.Now()
	}))

	select {
	case at := <-fired:
		assert.GreaterOrEqual(t, at.Sub(start), 20*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("task never fired")
	}
}

func TestScheduler_BoundsConcurrency(t *testing.T) {
	s := worker.NewScheduler(2)

	var running, peak atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		s.Schedule(time.Millisecond, func(ctx context.Context) {
			defer wg.Done()
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			running.Add(-1)
		})
	}

	wg.Wait()
	require.NoError(t, s.Shutdown(context.Background()))
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestScheduler_EveryRepeats(t *testing.T) {
	s := worker.NewScheduler(1)

	var ticks atomic.Int32
	require.True(t, s.Every(time.Millisecond, 5*time.Millisecond, func(ctx context.Context) {
		ticks.Add(1)
	}))

	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)
	require.NoError(t, s.Shutdown(context.Background()))
}

func TestScheduler_EveryRefusesNonPositivePeriod(t *testing.T) {
	s := worker.NewScheduler(1)
	defer func() { require.NoError(t, s.Shutdown(context.Background())) }()

	assert.False(t, s.Every(time.Millisecond, 0, func(ctx context.Context) {}))
	assert.False(t, s.Every(time.Millisecond, -time.Second, func(ctx context.Context) {}))
}

func TestScheduler_ShutdownDropsPendingTimers(t *testing.T) {
	s := worker.NewScheduler(1)

	var fired atomic.Bool
	s.Schedule(time.Hour, func(ctx context.Context) {
		fired.Store(true)
	})

	require.NoError(t, s.Shutdown(context.Background()))
	assert.False(t, fired.Load())
	assert.False(t, s.Schedule(time.Millisecond, func(ctx context.Context) {}))
}
