package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	c := &FakeCache{}
	require.Panics(t, func() { c.Get(context.Background(), "k") })
	require.Panics(t, func() { c.Set(context.Background(), "k", 1, 0) })
	require.Panics(t, func() { c.Del(context.Background(), "k") })
	require.Panics(t, func() { c.Incr(context.Background(), "k") })
	require.Panics(t, func() { c.Expire(context.Background(), "k", 0) })
	require.NoError(t, c.Close())

	gCalled := false
	sCalled := false
	dCalled := false
	iCalled := false
	eCalled := false
	clCalled := false
	c.GetFn = func(ctx context.Context, key string) *redis.StringCmd {
		gCalled = true
		return redis.NewStringResult("v", nil)
	}
	c.SetFn = func(ctx context.Context, key string, val any, exp time.Duration) *redis.StatusCmd {
		sCalled = true
		return redis.NewStatusResult("OK", nil)
	}
	c.DelFn = func(ctx context.Context, keys ...string) *redis.IntCmd {
		dCalled = true
		return redis.NewIntResult(1, nil)
	}
	c.IncrFn = func(ctx context.Context, key string) *redis.IntCmd {
		iCalled = true
		return redis.NewIntResult(1, nil)
	}
	c.ExpireFn = func(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
		eCalled = true
		return redis.NewBoolResult(true, nil)
	}
	c.CloseFn = func() error { clCalled = true; return errors.New("close") }

	require.Equal(t, "v", c.Get(context.Background(), "k").Val())
	require.Equal(t, "OK", c.Set(context.Background(), "k", 1, 0).Val())
	require.Equal(t, int64(1), c.Del(context.Background(), "k").Val())
	require.Equal(t, int64(1), c.Incr(context.Background(), "k").Val())
	require.True(t, c.Expire(context.Background(), "k", time.Minute).Val())
	require.EqualError(t, c.Close(), "close")
	require.True(t, gCalled)
	require.True(t, sCalled)
	require.True(t, dCalled)
	require.True(t, iCalled)
	require.True(t, eCalled)
	require.True(t, clCalled)
}
