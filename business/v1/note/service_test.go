package note_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ribgsilva/burn-note/business/v1/note"
	"github.com/ribgsilva/burn-note/business/v1/note/notetest"
	"github.com/ribgsilva/burn-note/business/v1/usage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorder struct {
	mu  sync.Mutex
	ids []string
}

func (r *recorder) Schedule(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
}

func (r *recorder) scheduled() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ids...)
}

type limiter struct {
	mu       sync.Mutex
	acquired map[string]int
	err      error
}

func (l *limiter) Acquire(_ context.Context, deviceId string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return l.err
	}
	if l.acquired == nil {
		l.acquired = make(map[string]int)
	}
	l.acquired[deviceId]++
	return nil
}

func (l *limiter) Release(_ context.Context, deviceId string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.acquired[deviceId]--
}

func newService(t *testing.T) (*note.Service, *notetest.Store, *recorder, *limiter) {
	t.Helper()
	store := notetest.New()
	rec := &recorder{}
	lim := &limiter{}
	return note.NewService(zap.NewNop().Sugar(), store, lim, rec, 64), store, rec, lim
}

func TestEvaluate_RevealsAtMostOnce(t *testing.T) {
	svc, store, rec, _ := newService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, note.NewNote{Content: "hello", DeviceId: "dev"})
	require.NoError(t, err)

	res, err := svc.Evaluate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, note.Result{Outcome: note.Revealable, Content: "hello"}, res)
	assert.Equal(t, []string{id}, rec.scheduled())

	for i := 0; i < 3; i++ {
		res, err = svc.Evaluate(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, note.AlreadyDestroyed, res.Outcome)
		assert.Empty(t, res.Content)
	}

	assert.Len(t, rec.scheduled(), 1)
	n, _ := store.Get(id)
	assert.True(t, n.Viewed)
}

func TestEvaluate_ConcurrentCallersHaveOneWinner(t *testing.T) {
	svc, _, rec, _ := newService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, note.NewNote{Content: "hello", DeviceId: "dev"})
	require.NoError(t, err)

	const callers = 64
	outcomes := make(chan note.Outcome, callers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			res, err := svc.Evaluate(ctx, id)
			assert.NoError(t, err)
			outcomes <- res.Outcome
		}()
	}
	close(start)
	wg.Wait()
	close(outcomes)

	count := map[note.Outcome]int{}
	for o := range outcomes {
		count[o]++
	}
	assert.Equal(t, 1, count[note.Revealable])
	assert.Equal(t, callers-1, count[note.AlreadyDestroyed])
	assert.Len(t, rec.scheduled(), 1)
}

func TestEvaluate_NotFound(t *testing.T) {
	svc, _, rec, _ := newService(t)

	for _, id := range []string{"zzz", "", "7c1b7e3e-0000-4000-8000-000000000000"} {
		res, err := svc.Evaluate(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, note.NotFound, res.Outcome, id)
	}
	assert.Empty(t, rec.scheduled())
}

func TestEvaluate_StoreFailureLeavesNoteUnread(t *testing.T) {
	svc, store, rec, _ := newService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, note.NewNote{Content: "hello", DeviceId: "dev"})
	require.NoError(t, err)

	store.Err = errors.New("connection refused")
	_, err = svc.Evaluate(ctx, id)
	assert.Error(t, err)
	assert.Empty(t, rec.scheduled())

	store.Err = nil
	n, _ := store.Get(id)
	assert.False(t, n.Viewed)
}

func TestStatus_DoesNotConsume(t *testing.T) {
	svc, store, _, _ := newService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, note.NewNote{Content: "hello", DeviceId: "dev"})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		outcome, err := svc.Status(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, note.Revealable, outcome)
	}
	n, _ := store.Get(id)
	assert.False(t, n.Viewed)

	_, err = svc.Evaluate(ctx, id)
	require.NoError(t, err)

	outcome, err := svc.Status(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, note.AlreadyDestroyed, outcome)

	outcome, err = svc.Status(ctx, "zzz")
	require.NoError(t, err)
	assert.Equal(t, note.NotFound, outcome)
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _, lim := newService(t)

	tests := map[string]note.NewNote{
		"empty content":    {DeviceId: "dev"},
		"content too long": {Content: string(make([]byte, 65)), DeviceId: "dev"},
		"missing device":   {Content: "hello"},
	}
	for name, n := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), n)
			assert.ErrorIs(t, err, note.ErrInvalidNote)
		})
	}
	assert.Empty(t, lim.acquired)
}

func TestCreate_LimitReached(t *testing.T) {
	svc, _, _, lim := newService(t)
	lim.err = usage.ErrLimitReached

	_, err := svc.Create(context.Background(), note.NewNote{Content: "hello", DeviceId: "dev"})
	assert.ErrorIs(t, err, usage.ErrLimitReached)
}

func TestCreate_ReleasesQuotaOnStoreFailure(t *testing.T) {
	svc, store, _, lim := newService(t)
	store.Err = errors.New("disk full")

	_, err := svc.Create(context.Background(), note.NewNote{Content: "hello", DeviceId: "dev"})
	assert.Error(t, err)
	assert.Equal(t, 0, lim.acquired["dev"])
}
