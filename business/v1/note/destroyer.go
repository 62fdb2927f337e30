package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/burn-note/platform/scheduler"
	"go.uber.org/zap"
	"time"
)

// Deferrer runs a task once after a delay without blocking the caller
type Deferrer interface {
	After(name string, delay time.Duration, task scheduler.Task)
}

// Destroyer overwrites revealed content with the sentinel once the grace delay has passed.
type Destroyer struct {
	log    *zap.SugaredLogger
	store  Store
	runner Deferrer
	grace  time.Duration
}

func NewDestroyer(log *zap.SugaredLogger, store Store, runner Deferrer, grace time.Duration) *Destroyer {
	return &Destroyer{
		log:    log,
		store:  store,
		runner: runner,
		grace:  grace,
	}
}

// Schedule queues the scrub of id and returns immediately
func (d *Destroyer) Schedule(id string) {
	d.runner.After("scrub", d.grace, func(ctx context.Context) error {
		return d.scrub(ctx, id)
	})
}

func (d *Destroyer) scrub(ctx context.Context, id string) error {
	changed, err := d.store.Scrub(ctx, id)
	if err != nil {
		return fmt.Errorf("scrub note %s: %w", Short(id), err)
	}
	if !changed {
		d.log.Infow("scrub", "note", Short(id), "status", "note already gone")
		return nil
	}
	d.log.Infow("scrub", "note", Short(id), "status", "content destroyed")
	return nil
}

// Short trims an id for logs. Full ids are read capabilities and stay out of them.
func Short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
