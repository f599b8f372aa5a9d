package questions

import (
	"encoding/json"
	"net/http"
	"time"

	"dawah-qa/internal/api"
	"dawah-qa/internal/cache"
	"dawah-qa/internal/database"

	"github.com/labstack/echo/v4"
)

const (
	// publicFeedCacheKey 匿名首頁動態的 Redis 快取鍵
	publicFeedCacheKey = "questions:public:feed"
	publicFeedCacheTTL = time.Minute
	publicFeedLimit    = 10
)

// PublicFeedHandler 回傳最新 10 筆公開且已回覆的問題
// 結果快取於 Redis；快取失效或 Redis 故障時直接查詢資料庫
// @Summary     公開問答動態
// @Description 最新 10 筆 answered 且公開的問題，供未登入首頁使用
// @Tags        questions
// @Produce     json
// @Success     200 {array} api.QuestionResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /questions/public [get]
func PublicFeedHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if cached, err := rdb.Get(ctx, publicFeedCacheKey).Result(); err == nil {
			return c.JSONBlob(http.StatusOK, []byte(cached))
		}

		qs, err := listPublicAnswered(ctx, db, "", publicFeedLimit, 0)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := api.NewQuestionResponses(qs)
		if payload, err := json.Marshal(resp); err == nil {
			// 快取寫入失敗不影響回應
			rdb.Set(ctx, publicFeedCacheKey, payload, publicFeedCacheTTL)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
