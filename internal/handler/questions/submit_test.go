package questions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dawah-qa/internal/database"
	"dawah-qa/internal/middleware"
	"dawah-qa/internal/model"
	"dawah-qa/internal/service"
	"dawah-qa/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newJSONCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withClaims(c echo.Context, userID int, role model.Role) echo.Context {
	c.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: userID, Role: role})
	return c
}

func restore() {
	listPublicAnswered = store.ListPublicAnswered
	countPublicAnswered = store.CountPublicAnswered
	createQuestion = store.CreateQuestion
	setAnswer = store.SetAnswer
}

func TestSubmitQuestionHandler(t *testing.T) {
	e := echo.New()

	t.Run("missing claims", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"question":"q","category":"fiqh"}`)
		err := SubmitQuestionHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, http.MethodPost, "{not json")
		err := SubmitQuestionHandler(nil)(withClaims(ctx, 1, model.RoleUser))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("bad category")}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"question":"q","category":"nope"}`)
		err := SubmitQuestionHandler(nil)(withClaims(ctx, 1, model.RoleUser))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createQuestion = func(ctx context.Context, db database.DB, q *model.Question) (*model.Question, error) {
			return nil, errors.New("store")
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"question":"q","category":"fiqh"}`)
		err := SubmitQuestionHandler(nil)(withClaims(ctx, 1, model.RoleUser))
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createQuestion = func(ctx context.Context, db database.DB, q *model.Question) (*model.Question, error) {
			// 作者取自令牌，非請求內容
			require.Equal(t, 9, q.UserID)
			require.Equal(t, "Is X permissible?", q.Question)
			require.Equal(t, "fiqh", q.Category)
			require.True(t, q.IsPublic)
			q.ID = 3
			q.Status = model.StatusPending
			q.CreatedAt = time.Now()
			return q, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"question":"Is X permissible?","category":"fiqh"}`)
		err := SubmitQuestionHandler(nil)(withClaims(ctx, 9, model.RoleUser))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), `"pending"`)
	})
}
