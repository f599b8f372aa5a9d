// File: internal/router/router.go
package router

import (
	"net/http"
	"time"

	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/labstack/echo/v4"

	"dawah-qa/internal/cache"
	"dawah-qa/internal/database"
	"dawah-qa/internal/handler"
	"dawah-qa/internal/handler/articles"
	"dawah-qa/internal/handler/auth"
	"dawah-qa/internal/handler/questions"
	"dawah-qa/internal/middleware"
	"dawah-qa/internal/web"
	"dawah-qa/internal/worker"
)

const (
	// 限流：每 IP 每 15 分鐘 100 次請求，套用於所有 /api 路徑
	rateLimitMax    = 100
	rateLimitWindow = 15 * time.Minute
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	api := e.Group("/api", middleware.RateLimit(rdb, rateLimitMax, rateLimitWindow))

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(db, rdb), middleware.RequireAuth)

	// 註冊與登入
	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db))

	// 問題：公開讀取、登入送出、管理員回覆
	api.GET("/questions", questions.ListQuestionsHandler(db))
	api.GET("/questions/public", questions.PublicFeedHandler(db, rdb))
	api.POST("/questions", questions.SubmitQuestionHandler(db), middleware.RequireAuth)
	api.PUT("/questions/:id/answer", questions.AnswerQuestionHandler(db, rdb, wp), middleware.RequireAdmin)

	// 已發佈文章
	api.GET("/articles", articles.ListArticlesHandler(db))

	// 其餘路徑提供靜態前端，HTML5 模式退回 index.html
	e.Use(echomw.StaticWithConfig(echomw.StaticConfig{
		Filesystem: http.FS(web.FS()),
		HTML5:      true,
	}))
}
