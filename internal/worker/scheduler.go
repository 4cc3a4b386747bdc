package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// Scheduler fires one-shot and periodic tasks. At most size tasks execute at the same
// time; fired tasks beyond that wait for a slot.
type Scheduler struct {
	sem    *semaphore.Weighted
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	closed  bool
	pending map[*time.Timer]struct{}
	wg      sync.WaitGroup
}

func NewScheduler(size int) *Scheduler {
	if size <= 0 {
		size = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		sem:     semaphore.NewWeighted(int64(size)),
		ctx:     ctx,
		cancel:  cancel,
		pending: make(map[*time.Timer]struct{}),
	}
}

// Schedule arms a timer that runs task after delay. It reports false once the scheduler
// is shut down.
func (s *Scheduler) Schedule(delay time.Duration, task Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	s.wg.Add(1)
	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.pending, timer)
		s.mu.Unlock()

		defer s.wg.Done()
		s.execute(task)
	})
	s.pending[timer] = struct{}{}

	return true
}

// Every runs task after initialDelay and then once per period until shutdown. A
// non-positive period is refused.
func (s *Scheduler) Every(initialDelay, period time.Duration, task Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || period <= 0 {
		return false
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		select {
		case <-time.After(initialDelay):
		case <-s.ctx.Done():
			return
		}
		s.execute(task)

		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.execute(task)
			case <-s.ctx.Done():
				return
			}
		}
	}()

	return true
}

// Shutdown drops timers that have not fired yet, stops periodic tasks and waits for
// running tasks to finish.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	for timer := range s.pending {
		if timer.Stop() {
			s.wg.Done()
		}
		delete(s.pending, timer)
	}
	s.mu.Unlock()
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler did not drain: %w", ctx.Err())
	}
}

func (s *Scheduler) execute(task Task) {
	if err := s.sem.Acquire(s.ctx, 1); err != nil {
		return
	}
	defer s.sem.Release(1)

	run(s.ctx, "scheduler", task)
}
