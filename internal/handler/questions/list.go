package questions

import (
	"net/http"
	"strconv"

	"dawah-qa/internal/api"
	"dawah-qa/internal/database"
	"dawah-qa/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listPublicAnswered  = store.ListPublicAnswered
	countPublicAnswered = store.CountPublicAnswered
	createQuestion      = store.CreateQuestion
	setAnswer           = store.SetAnswer
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ListQuestionsHandler 分頁列出公開且已回覆的問題
// @Summary     問題列表
// @Description 僅包含 is_public 且 status=answered 的問題，依建立時間新到舊排序
// @Tags        questions
// @Produce     json
// @Param       category query string false "分類過濾"
// @Param       status   query string false "保留參數，目前僅回傳 answered"
// @Param       limit    query int    false "每頁筆數 (預設 10)"
// @Param       page     query int    false "頁碼 (從 1 起算)"
// @Success     200 {object} api.QuestionListResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /questions [get]
func ListQuestionsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		category := c.QueryParam("category")

		limit, err := strconv.Atoi(c.QueryParam("limit"))
		if err != nil || limit <= 0 {
			limit = defaultPageSize
		}
		if limit > maxPageSize {
			limit = maxPageSize
		}
		page, err := strconv.Atoi(c.QueryParam("page"))
		if err != nil || page <= 0 {
			page = 1
		}

		qs, err := listPublicAnswered(ctx, db, category, limit, (page-1)*limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		total, err := countPublicAnswered(ctx, db, category)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.QuestionListResponse{
			Questions:   api.NewQuestionResponses(qs),
			TotalPages:  (total + limit - 1) / limit,
			CurrentPage: page,
		})
	}
}
