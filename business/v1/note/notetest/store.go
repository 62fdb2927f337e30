// Package notetest provides an in-memory note.Store for tests.
package notetest

import (
	"context"
	"github.com/google/uuid"
	"github.com/ribgsilva/burn-note/business/v1/note"
	"sync"
	"time"
)

// Store keeps notes in a map. Reveal is a compare-and-swap under the mutex,
// the same guarantee the conditional UPDATE gives in MySQL.
// When Err is set every call fails with it.
type Store struct {
	mu    sync.Mutex
	notes map[string]note.Note
	Err   error
	Now   func() time.Time
}

func New() *Store {
	return &Store{
		notes: make(map[string]note.Note),
		Now:   time.Now,
	}
}

func (s *Store) Insert(_ context.Context, content string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}

	id := uuid.NewString()
	s.notes[id] = note.Note{Id: id, Content: content, CreatedAt: s.Now().UTC()}
	return id, nil
}

func (s *Store) Lookup(_ context.Context, id string) (note.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return note.Note{}, s.Err
	}

	n, ok := s.notes[id]
	if !ok {
		return note.Note{}, nil
	}
	n.Content = ""
	return n, nil
}

func (s *Store) Reveal(_ context.Context, id string) (note.Note, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return note.Note{}, false, s.Err
	}

	n, ok := s.notes[id]
	if !ok || n.Viewed {
		return note.Note{}, false, nil
	}
	n.Viewed = true
	s.notes[id] = n
	return n, true, nil
}

func (s *Store) Scrub(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}

	n, ok := s.notes[id]
	if !ok || !n.Viewed {
		return false, nil
	}
	n.Content = note.DestroyedContent
	s.notes[id] = n
	return true, nil
}

func (s *Store) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}

	var deleted int64
	for id, n := range s.notes {
		if !n.Viewed && n.CreatedAt.Before(before) {
			delete(s.notes, id)
			deleted++
		}
	}
	return deleted, nil
}

// Get returns the stored row as is, content included
func (s *Store) Get(id string) (note.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notes[id]
	return n, ok
}

// Put stores n verbatim, overwriting any row with the same id
func (s *Store) Put(n note.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[n.Id] = n
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.notes, id)
}
