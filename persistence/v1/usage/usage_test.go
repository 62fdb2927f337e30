package usage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/burn-note/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	sys.R.Cache = rdb
	sys.Configs.Cache.OperationTimeout = time.Second
	return s
}

func TestIncrement(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	u, err := Increment(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, Usage{DeviceId: "dev-1", Count: 1}, u)

	u, err = Increment(ctx, "dev-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, u.Count)

	assert.Equal(t, "2", s.HGet("usage.dev-1", "count"))
}

func TestIncrement_Premium(t *testing.T) {
	s := setup(t)
	s.HSet("usage.dev-2", "premium", "true")

	u, err := Increment(context.Background(), "dev-2")
	require.NoError(t, err)
	assert.True(t, u.Premium)
	assert.EqualValues(t, 1, u.Count)
}

func TestDecrement(t *testing.T) {
	s := setup(t)
	s.HSet("usage.dev-1", "count", "5")

	require.NoError(t, Decrement(context.Background(), "dev-1"))
	assert.Equal(t, "4", s.HGet("usage.dev-1", "count"))
}

func TestSetPremiumAndFind(t *testing.T) {
	setup(t)
	ctx := context.Background()

	u, err := Find(ctx, "unknown")
	require.NoError(t, err)
	assert.Equal(t, Usage{DeviceId: "unknown"}, u)

	require.NoError(t, SetPremium(ctx, "dev-3", true))
	_, err = Increment(ctx, "dev-3")
	require.NoError(t, err)

	u, err = Find(ctx, "dev-3")
	require.NoError(t, err)
	assert.Equal(t, Usage{DeviceId: "dev-3", Count: 1, Premium: true}, u)
}

func TestFind_Unreachable(t *testing.T) {
	s := setup(t)
	s.Close()

	_, err := Find(context.Background(), "dev-1")
	assert.Error(t, err)
}
