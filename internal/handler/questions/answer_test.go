package questions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"dawah-qa/internal/cache"
	"dawah-qa/internal/database"
	"dawah-qa/internal/model"
	"dawah-qa/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// syncPool 直接在呼叫端執行任務，方便測試斷言
type syncPool struct{ submitted int }

func (p *syncPool) Submit(t worker.Task) { p.submitted++; t() }
func (p *syncPool) Stop()                {}

func newAnswerCtx(e *echo.Echo, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPut, "/questions/"+id+"/answer", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/questions/:id/answer")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestAnswerQuestionHandler(t *testing.T) {
	e := echo.New()
	wp := &syncPool{}

	t.Run("missing claims", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newAnswerCtx(e, "1", `{"answer":"a"}`)
		err := AnswerQuestionHandler(nil, nil, wp)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newAnswerCtx(e, "abc", `{"answer":"a"}`)
		err := AnswerQuestionHandler(nil, nil, wp)(withClaims(ctx, 2, model.RoleAdmin))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newAnswerCtx(e, "1", "{not json")
		err := AnswerQuestionHandler(nil, nil, wp)(withClaims(ctx, 2, model.RoleAdmin))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("answer required")}
		ctx, rec := newAnswerCtx(e, "1", `{"answer":""}`)
		err := AnswerQuestionHandler(nil, nil, wp)(withClaims(ctx, 2, model.RoleAdmin))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("question not found", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		setAnswer = func(ctx context.Context, db database.DB, id int, text string, by int, refs []string) (*model.Question, error) {
			return nil, pgx.ErrNoRows
		}
		ctx, rec := newAnswerCtx(e, "404", `{"answer":"a"}`)
		err := AnswerQuestionHandler(nil, nil, wp)(withClaims(ctx, 2, model.RoleAdmin))
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "question not found")
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		setAnswer = func(ctx context.Context, db database.DB, id int, text string, by int, refs []string) (*model.Question, error) {
			return nil, errors.New("store")
		}
		ctx, rec := newAnswerCtx(e, "1", `{"answer":"a"}`)
		err := AnswerQuestionHandler(nil, nil, wp)(withClaims(ctx, 2, model.RoleAdmin))
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success invalidates feed cache", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		setAnswer = func(ctx context.Context, db database.DB, id int, text string, by int, refs []string) (*model.Question, error) {
			require.Equal(t, 7, id)
			require.Equal(t, "Yes, because...", text)
			require.Equal(t, 2, by)
			require.Equal(t, []string{"ref"}, refs)
			return &model.Question{
				ID:       id,
				UserID:   1,
				Question: "Is X permissible?",
				Category: "fiqh",
				Status:   model.StatusAnswered,
				IsPublic: true,
				Answer: &model.Answer{
					Text:       text,
					AnsweredBy: by,
					AnsweredAt: time.Now(),
					References: refs,
				},
			}, nil
		}

		var mu sync.Mutex
		deleted := []string{}
		rdb := &cache.FakeCache{DelFn: func(ctx context.Context, keys ...string) *redis.IntCmd {
			mu.Lock()
			deleted = append(deleted, keys...)
			mu.Unlock()
			return redis.NewIntResult(1, nil)
		}}

		pool := &syncPool{}
		ctx, rec := newAnswerCtx(e, "7", `{"answer":"Yes, because...","references":["ref"]}`)
		err := AnswerQuestionHandler(nil, rdb, pool)(withClaims(ctx, 2, model.RoleAdmin))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"answered"`)
		require.Equal(t, 1, pool.submitted)
		require.Equal(t, []string{publicFeedCacheKey}, deleted)
	})
}
