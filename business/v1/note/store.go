package note

import (
	"context"
	"github.com/ribgsilva/burn-note/persistence/v1/note"
	"time"
)

// DestroyedContent is what a revealed note holds once scrubbed
const DestroyedContent = note.DestroyedContent

// Store is the durable side of the notes lifecycle. Reveal must flip viewed
// with a single conditional write so that concurrent callers are linearized.
type Store interface {
	Insert(ctx context.Context, content string) (string, error)
	// Lookup never returns content. A missing note yields a zero Note.
	Lookup(ctx context.Context, id string) (Note, error)
	Reveal(ctx context.Context, id string) (Note, bool, error)
	Scrub(ctx context.Context, id string) (bool, error)
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type mysqlStore struct{}

// MySQL is the Store backed by the shared database in sys.R
func MySQL() Store {
	return mysqlStore{}
}

func (mysqlStore) Insert(ctx context.Context, content string) (string, error) {
	return note.Insert(ctx, note.NewNote{Content: content})
}

func (mysqlStore) Lookup(ctx context.Context, id string) (Note, error) {
	n, err := note.Lookup(ctx, id)
	return Note(n), err
}

func (mysqlStore) Reveal(ctx context.Context, id string) (Note, bool, error) {
	n, ok, err := note.Reveal(ctx, id)
	return Note(n), ok, err
}

func (mysqlStore) Scrub(ctx context.Context, id string) (bool, error) {
	return note.Scrub(ctx, id)
}

func (mysqlStore) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	return note.DeleteExpired(ctx, before)
}
