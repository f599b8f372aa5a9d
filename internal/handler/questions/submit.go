package questions

import (
	"net/http"

	"dawah-qa/internal/api"
	"dawah-qa/internal/database"
	"dawah-qa/internal/middleware"
	"dawah-qa/internal/model"
	"dawah-qa/internal/service"

	"github.com/labstack/echo/v4"
)

// SubmitQuestionHandler 送出新問題，任何已登入角色皆可
// @Summary     送出問題
// @Description 建立 status=pending 的新問題，作者取自令牌身份
// @Tags        questions
// @Accept      json
// @Produce     json
// @Param       body body api.SubmitQuestionRequest true "問題內容"
// @Success     201 {object} api.QuestionResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /questions [post]
func SubmitQuestionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.UserID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.SubmitQuestionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		question, err := createQuestion(c.Request().Context(), db, &model.Question{
			UserID:   claims.UserID,
			Question: req.Question,
			Category: req.Category,
			IsPublic: true,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.NewQuestionResponse(question))
	}
}
