package scheduler

import (
	"context"
	"go.uber.org/zap"
	"sync"
	"time"
)

type entry struct {
	name  string
	task  Task
	timer *time.Timer
}

// Deferred runs tasks once, after a delay, detached from the caller.
// Every task gets its own context bounded by timeout.
type Deferred struct {
	log     *zap.SugaredLogger
	timeout time.Duration

	mu      sync.Mutex
	pending map[*entry]struct{}
	stopped bool
	wg      sync.WaitGroup
}

// NewDeferred creates a Deferred whose tasks run with the given timeout
func NewDeferred(log *zap.SugaredLogger, timeout time.Duration) *Deferred {
	return &Deferred{
		log:     log,
		timeout: timeout,
		pending: make(map[*entry]struct{}),
	}
}

// After schedules task to run once delay has elapsed. It never blocks.
// Once the Deferred is stopped, new tasks run right away.
func (d *Deferred) After(name string, delay time.Duration, task Task) {
	e := &entry{name: name, task: task}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.wg.Add(1)
	if d.stopped {
		go d.run(e)
		return
	}

	d.pending[e] = struct{}{}
	e.timer = time.AfterFunc(delay, func() { d.fire(e) })
}

// Pending returns how many tasks are still waiting for their delay
func (d *Deferred) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Stop fires every pending task immediately and waits for all running tasks,
// or until ctx is done.
func (d *Deferred) Stop(ctx context.Context) error {
	d.mu.Lock()
	d.stopped = true
	due := make([]*entry, 0, len(d.pending))
	for e := range d.pending {
		e.timer.Stop()
		delete(d.pending, e)
		due = append(due, e)
	}
	d.mu.Unlock()

	if len(due) > 0 {
		d.log.Infow("scheduler", "status", "flushing deferred tasks", "count", len(due))
	}
	for _, e := range due {
		go d.run(e)
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// fire runs e unless Stop already took it over. Whoever removes an entry from
// pending is the one that runs it.
func (d *Deferred) fire(e *entry) {
	d.mu.Lock()
	if _, ok := d.pending[e]; !ok {
		d.mu.Unlock()
		return
	}
	delete(d.pending, e)
	d.mu.Unlock()

	d.run(e)
}

func (d *Deferred) run(e *entry) {
	defer d.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	run(ctx, d.log, e.name, e.task)
}
