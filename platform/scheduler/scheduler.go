// Package scheduler owns the in-process background work of a binary: one-shot
// deferred tasks and tasks repeated on a fixed interval. Both live only as long
// as the process does.
package scheduler

import (
	"context"
	"go.uber.org/zap"
)

// Task is a unit of background work. Errors are logged by the runner, there is
// nobody else to report them to.
type Task func(ctx context.Context) error

func run(ctx context.Context, log *zap.SugaredLogger, name string, task Task) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("scheduler", "task", name, "status", "panic", "panic", r)
		}
	}()

	if err := task(ctx); err != nil {
		log.Errorw("scheduler", "task", name, "status", "failed", "ERROR", err)
	}
}
