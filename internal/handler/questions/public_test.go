package questions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dawah-qa/internal/cache"
	"dawah-qa/internal/database"
	"dawah-qa/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newFeedCtx(e *echo.Echo) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/questions/public", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPublicFeedHandler(t *testing.T) {
	e := echo.New()

	t.Run("cache hit", func(t *testing.T) {
		t.Cleanup(restore)
		listPublicAnswered = func(ctx context.Context, db database.DB, category string, limit, offset int) ([]model.Question, error) {
			t.Fatal("db should not be queried on cache hit")
			return nil, nil
		}
		rdb := &cache.FakeCache{GetFn: func(ctx context.Context, key string) *redis.StringCmd {
			require.Equal(t, publicFeedCacheKey, key)
			return redis.NewStringResult(`[{"id":1}]`, nil)
		}}
		ctx, rec := newFeedCtx(e)
		err := PublicFeedHandler(nil, rdb)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"id":1`)
	})

	t.Run("cache miss populates cache", func(t *testing.T) {
		t.Cleanup(restore)
		listPublicAnswered = func(ctx context.Context, db database.DB, category string, limit, offset int) ([]model.Question, error) {
			require.Equal(t, "", category)
			require.Equal(t, publicFeedLimit, limit)
			require.Equal(t, 0, offset)
			return []model.Question{answered(1)}, nil
		}
		setCalled := false
		rdb := &cache.FakeCache{
			GetFn: func(ctx context.Context, key string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
			SetFn: func(ctx context.Context, key string, val any, ttl time.Duration) *redis.StatusCmd {
				setCalled = true
				require.Equal(t, publicFeedCacheKey, key)
				require.Equal(t, publicFeedCacheTTL, ttl)
				return redis.NewStatusResult("OK", nil)
			},
		}
		ctx, rec := newFeedCtx(e)
		err := PublicFeedHandler(nil, rdb)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, setCalled)
		require.Contains(t, rec.Body.String(), `"answered"`)
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		listPublicAnswered = func(ctx context.Context, db database.DB, category string, limit, offset int) ([]model.Question, error) {
			return nil, errors.New("store")
		}
		rdb := &cache.FakeCache{GetFn: func(ctx context.Context, key string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		}}
		ctx, rec := newFeedCtx(e)
		err := PublicFeedHandler(nil, rdb)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
