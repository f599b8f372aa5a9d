package api

import (
	"time"

	"dawah-qa/internal/model"
)

// swagger:model api.ArticleResponse
type ArticleResponse struct {
	ID        int       `json:"id" example:"1"`
	Title     string    `json:"title" example:"On sincerity"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// NewArticleResponses 組裝已發佈文章列表
func NewArticleResponses(articles []model.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, ArticleResponse{
			ID:        a.ID,
			Title:     a.Title,
			Body:      a.Body,
			CreatedAt: a.CreatedAt,
		})
	}
	return out
}
