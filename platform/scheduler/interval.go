package scheduler

import (
	"context"
	"go.uber.org/zap"
	"time"
)

// Interval runs a task at start and then every period until stopped.
// A failed run is logged and the next tick tries again.
type Interval struct {
	name   string
	every  time.Duration
	task   Task
	log    *zap.SugaredLogger
	cancel context.CancelFunc
	done   chan struct{}
}

func NewInterval(log *zap.SugaredLogger, name string, every time.Duration, task Task) *Interval {
	return &Interval{
		name:  name,
		every: every,
		task:  task,
		log:   log,
	}
}

// Start launches the loop in its own goroutine
func (i *Interval) Start(ctx context.Context) {
	ctx, i.cancel = context.WithCancel(ctx)
	i.done = make(chan struct{})

	go func() {
		defer close(i.done)

		ticker := time.NewTicker(i.every)
		defer ticker.Stop()

		i.log.Infow("scheduler", "task", i.name, "status", "started", "every", i.every.String())
		for {
			run(ctx, i.log, i.name, i.task)

			select {
			case <-ctx.Done():
				i.log.Infow("scheduler", "task", i.name, "status", "stopped")
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stop cancels the loop and waits for the running pass to return
func (i *Interval) Stop() {
	if i.cancel == nil {
		return
	}
	i.cancel()
	<-i.done
}
