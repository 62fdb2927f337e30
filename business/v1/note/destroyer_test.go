package note_test

import (
	"context"
	"testing"
	"time"

	"github.com/ribgsilva/burn-note/business/v1/note"
	"github.com/ribgsilva/burn-note/business/v1/note/notetest"
	"github.com/ribgsilva/burn-note/platform/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const grace = 100 * time.Millisecond

func newDestroying(t *testing.T) (*note.Service, *notetest.Store, *scheduler.Deferred, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core).Sugar()

	store := notetest.New()
	runner := scheduler.NewDeferred(log, time.Second)
	t.Cleanup(func() { _ = runner.Stop(context.Background()) })

	destroyer := note.NewDestroyer(log, store, runner, grace)
	return note.NewService(log, store, &limiter{}, destroyer, 0), store, runner, logs
}

func TestDestroyer_ScrubsAfterGraceDelay(t *testing.T) {
	svc, store, runner, _ := newDestroying(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, note.NewNote{Content: "hello", DeviceId: "dev"})
	require.NoError(t, err)

	res, err := svc.Evaluate(ctx, id)
	require.NoError(t, err)
	require.Equal(t, note.Revealable, res.Outcome)

	n, _ := store.Get(id)
	assert.True(t, n.Viewed)
	assert.Equal(t, "hello", n.Content)
	assert.Equal(t, 1, runner.Pending())

	assert.Eventually(t, func() bool {
		n, _ := store.Get(id)
		return n.Content == note.DestroyedContent
	}, 2*time.Second, 10*time.Millisecond)

	n, _ = store.Get(id)
	assert.True(t, n.Viewed)
}

func TestDestroyer_ToleratesDeletedNote(t *testing.T) {
	svc, store, runner, logs := newDestroying(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, note.NewNote{Content: "hello", DeviceId: "dev"})
	require.NoError(t, err)
	_, err = svc.Evaluate(ctx, id)
	require.NoError(t, err)

	store.Delete(id)

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("scrub").FilterField(zap.String("status", "note already gone")).Len() == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, runner.Pending())
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestDestroyer_UnrevealedNoteKeepsContent(t *testing.T) {
	svc, store, runner, _ := newDestroying(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, note.NewNote{Content: "hello", DeviceId: "dev"})
	require.NoError(t, err)

	time.Sleep(2 * grace)
	assert.Equal(t, 0, runner.Pending())

	n, _ := store.Get(id)
	assert.Equal(t, "hello", n.Content)

	res, err := svc.Evaluate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, note.Result{Outcome: note.Revealable, Content: "hello"}, res)
}

func TestDestroyer_StopFlushesPendingScrubs(t *testing.T) {
	svc, store, runner, _ := newDestroying(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, note.NewNote{Content: "hello", DeviceId: "dev"})
	require.NoError(t, err)
	_, err = svc.Evaluate(ctx, id)
	require.NoError(t, err)

	require.NoError(t, runner.Stop(ctx))

	n, _ := store.Get(id)
	assert.Equal(t, note.DestroyedContent, n.Content)
}
