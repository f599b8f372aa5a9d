package questions

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"dawah-qa/internal/api"
	"dawah-qa/internal/cache"
	"dawah-qa/internal/database"
	"dawah-qa/internal/middleware"
	"dawah-qa/internal/service"
	"dawah-qa/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// AnswerQuestionHandler 管理員回覆問題
// 回覆寫入後由 worker 非同步清除公開動態快取
// 對已回覆的問題再次呼叫會覆寫先前的回覆
// @Summary     回覆問題
// @Description 寫入回覆內容並將 status 轉為 answered，僅限 admin
// @Tags        questions
// @Accept      json
// @Produce     json
// @Param       id   path int  true "問題 ID"
// @Param       body body api.AnswerQuestionRequest true "回覆內容"
// @Success     200 {object} api.QuestionResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse "非 admin"
// @Failure     404 {object} api.ErrorResponse "問題不存在"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /questions/{id}/answer [put]
func AnswerQuestionHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.UserID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid question ID"})
		}

		var req api.AnswerQuestionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		question, err := setAnswer(c.Request().Context(), db, id, req.Answer, claims.UserID, req.References)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "question not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		wp.Submit(func() {
			rdb.Del(context.Background(), publicFeedCacheKey)
		})

		return c.JSON(http.StatusOK, api.NewQuestionResponse(question))
	}
}
