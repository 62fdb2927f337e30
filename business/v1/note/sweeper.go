package note

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"time"
)

// Sweeper deletes unread notes older than the retention window
type Sweeper struct {
	log       *zap.SugaredLogger
	store     Store
	retention time.Duration
	now       func() time.Time
}

func NewSweeper(log *zap.SugaredLogger, store Store, retention time.Duration) *Sweeper {
	return &Sweeper{
		log:       log,
		store:     store,
		retention: retention,
		now:       time.Now,
	}
}

// Sweep runs one pass. Viewed notes are never touched.
func (s *Sweeper) Sweep(ctx context.Context) error {
	cutoff := s.now().UTC().Add(-s.retention)

	n, err := s.store.DeleteExpired(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("sweep expired notes: %w", err)
	}
	s.log.Infow("sweep", "status", "done", "deleted", n, "cutoff", cutoff)
	return nil
}
