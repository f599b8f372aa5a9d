package store

import (
	"context"
	"fmt"

	"dawah-qa/internal/database"
	"dawah-qa/internal/model"
)

// ListPublishedArticles 僅回傳 published = true 的文章
func ListPublishedArticles(ctx context.Context, db database.DB) ([]model.Article, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, body, published, created_at
		 FROM articles WHERE published`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListPublishedArticles: %w", err)
	}
	defer rows.Close()

	var out []model.Article
	for rows.Next() {
		a := model.Article{}
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Body,
			&a.Published,
			&a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListPublishedArticles: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPublishedArticles: %w", err)
	}
	return out, nil
}
