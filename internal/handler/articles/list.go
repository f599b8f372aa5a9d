package articles

import (
	"net/http"

	"dawah-qa/internal/api"
	"dawah-qa/internal/database"
	"dawah-qa/internal/store"

	"github.com/labstack/echo/v4"
)

var listPublishedArticles = store.ListPublishedArticles

// ListArticlesHandler 列出已發佈文章
// @Summary     文章列表
// @Description 僅回傳 published = true 的文章，無需登入
// @Tags        articles
// @Produce     json
// @Success     200 {array} api.ArticleResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /articles [get]
func ListArticlesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		articles, err := listPublishedArticles(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewArticleResponses(articles))
	}
}
