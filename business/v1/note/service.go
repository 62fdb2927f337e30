package note

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Gate decides whether a note may be read. Every delivery surface goes through it.
type Gate interface {
	Evaluate(ctx context.Context, id string) (Result, error)
	Status(ctx context.Context, id string) (Outcome, error)
}

// Limiter guards note creation with the per device quota
type Limiter interface {
	Acquire(ctx context.Context, deviceId string) error
	Release(ctx context.Context, deviceId string)
}

// Scheduler receives every id that was just revealed
type Scheduler interface {
	Schedule(id string)
}

type Service struct {
	log        *zap.SugaredLogger
	store      Store
	limiter    Limiter
	destroyer  Scheduler
	maxContent int
}

func NewService(log *zap.SugaredLogger, store Store, limiter Limiter, destroyer Scheduler, maxContent int) *Service {
	return &Service{
		log:        log,
		store:      store,
		limiter:    limiter,
		destroyer:  destroyer,
		maxContent: maxContent,
	}
}

// Create validates and stores a new unread note, charging it to the device quota.
func (s *Service) Create(ctx context.Context, newN NewNote) (string, error) {
	switch {
	case newN.Content == "":
		return "", fmt.Errorf("%w: content is required", ErrInvalidNote)
	case s.maxContent > 0 && len(newN.Content) > s.maxContent:
		return "", fmt.Errorf("%w: content exceeds %d bytes", ErrInvalidNote, s.maxContent)
	case newN.DeviceId == "":
		return "", fmt.Errorf("%w: deviceId is required", ErrInvalidNote)
	}

	if err := s.limiter.Acquire(ctx, newN.DeviceId); err != nil {
		return "", err
	}

	id, err := s.store.Insert(ctx, newN.Content)
	if err != nil {
		s.limiter.Release(ctx, newN.DeviceId)
		return "", fmt.Errorf("create note: %w", err)
	}
	return id, nil
}

// Evaluate reveals a note at most once. A Revealable result means this call
// flipped viewed and the scrub has been scheduled.
func (s *Service) Evaluate(ctx context.Context, id string) (Result, error) {
	if !wellFormed(id) {
		return Result{Outcome: NotFound}, nil
	}

	n, revealed, err := s.store.Reveal(ctx, id)
	if err != nil {
		return Result{}, fmt.Errorf("reveal note: %w", err)
	}
	if revealed {
		s.destroyer.Schedule(id)
		return Result{Outcome: Revealable, Content: n.Content}, nil
	}

	outcome, err := s.Status(ctx, id)
	if err != nil {
		return Result{}, err
	}
	if outcome == Revealable {
		// the conditional write matched nothing, so the row was not unread at that instant
		outcome = NotFound
	}
	return Result{Outcome: outcome}, nil
}

// Status reports what Evaluate would answer without consuming the note.
func (s *Service) Status(ctx context.Context, id string) (Outcome, error) {
	if !wellFormed(id) {
		return NotFound, nil
	}

	n, err := s.store.Lookup(ctx, id)
	if err != nil {
		return NotFound, fmt.Errorf("lookup note: %w", err)
	}
	switch {
	case n.Id == "":
		return NotFound, nil
	case n.Viewed:
		return AlreadyDestroyed, nil
	default:
		return Revealable, nil
	}
}

func wellFormed(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}
