package worker

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

var ErrPoolClosed = errors.New("worker pool is closed")

// Task is a unit of background work. The context is cancelled only when a shutdown
// runs out of time.
type Task func(ctx context.Context)

// Pool runs submitted tasks on a fixed number of goroutines fed by a buffered queue.
// A panicking task is logged and does not take its worker down.
type Pool struct {
	name   string
	tasks  chan Task
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
	ctx    context.Context
	cancel context.CancelFunc
}

func NewPool(name string, size, queueSize int) *Pool {
	if size <= 0 {
		size = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		name:   name,
		tasks:  make(chan Task, queueSize),
		ctx:    ctx,
		cancel: cancel,
	}

	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.work()
	}

	return p
}

// Submit queues a task, blocking while the queue is full.
func (p *Pool) Submit(task Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}
	p.tasks <- task
	return nil
}

// Shutdown stops accepting tasks and waits for the queue to drain. When ctx expires
// first the running tasks see their context cancelled.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		return fmt.Errorf("pool %s did not drain: %w", p.name, ctx.Err())
	}
}

func (p *Pool) work() {
	defer p.wg.Done()
	for task := range p.tasks {
		run(p.ctx, p.name, task)
	}
}

func run(ctx context.Context, name string, task Task) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("pool", name).Errorf("task panicked: %v\n%s", r, debug.Stack())
		}
	}()
	task(ctx)
}
