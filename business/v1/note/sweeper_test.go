package note_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ribgsilva/burn-note/business/v1/note"
	"github.com/ribgsilva/burn-note/business/v1/note/notetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSweep_DeletesOnlyExpiredUnread(t *testing.T) {
	store := notetest.New()
	retention := 30 * 24 * time.Hour
	old := time.Now().UTC().Add(-retention - time.Hour)

	store.Put(note.Note{Id: "old-unread", Content: "a", CreatedAt: old})
	store.Put(note.Note{Id: "old-viewed", Content: note.DestroyedContent, Viewed: true, CreatedAt: old})
	store.Put(note.Note{Id: "fresh-unread", Content: "b", CreatedAt: time.Now().UTC()})

	sweeper := note.NewSweeper(zap.NewNop().Sugar(), store, retention)
	require.NoError(t, sweeper.Sweep(context.Background()))

	_, ok := store.Get("old-unread")
	assert.False(t, ok)
	_, ok = store.Get("old-viewed")
	assert.True(t, ok)
	_, ok = store.Get("fresh-unread")
	assert.True(t, ok)
}

func TestSweep_ReportsStoreFailure(t *testing.T) {
	store := notetest.New()
	store.Err = errors.New("storage unavailable")

	sweeper := note.NewSweeper(zap.NewNop().Sugar(), store, time.Hour)
	assert.Error(t, sweeper.Sweep(context.Background()))
}
