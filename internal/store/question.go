package store

import (
	"context"
	"fmt"
	"time"

	"dawah-qa/internal/database"
	"dawah-qa/internal/model"

	"github.com/jackc/pgx/v5"
)

const questionColumns = `id, user_id, question, category, status, is_public,
	 answer_text, answered_by, answered_at, answer_refs, created_at`

// scanQuestion 掃描完整問題列，answer 欄位為 NULL 時 Answer 保持 nil
func scanQuestion(row pgx.Row) (*model.Question, error) {
	q := &model.Question{}
	var (
		answerText *string
		answeredBy *int
		answeredAt *time.Time
		refs       []string
	)
	if err := row.Scan(
		&q.ID,
		&q.UserID,
		&q.Question,
		&q.Category,
		&q.Status,
		&q.IsPublic,
		&answerText,
		&answeredBy,
		&answeredAt,
		&refs,
		&q.CreatedAt,
	); err != nil {
		return nil, err
	}
	if answerText != nil && answeredBy != nil && answeredAt != nil {
		q.Answer = &model.Answer{
			Text:       *answerText,
			AnsweredBy: *answeredBy,
			AnsweredAt: *answeredAt,
			References: refs,
		}
	}
	return q, nil
}

func CreateQuestion(ctx context.Context, db database.DB, q *model.Question) (*model.Question, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO questions (user_id, question, category, is_public)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, status, created_at`,
		q.UserID,
		q.Question,
		q.Category,
		q.IsPublic,
	)
	if err := row.Scan(&q.ID, &q.Status, &q.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateQuestion: %w", err)
	}
	return q, nil
}

func GetQuestionByID(ctx context.Context, db database.DB, questionID int) (*model.Question, error) {
	row := db.QueryRow(ctx,
		`SELECT `+questionColumns+`
		 FROM questions WHERE id = $1`,
		questionID,
	)
	q, err := scanQuestion(row)
	if err != nil {
		return nil, fmt.Errorf("GetQuestionByID: %w", err)
	}
	return q, nil
}

// ListPublicAnswered 依新舊排序列出公開且已回覆的問題，category 空字串表示不過濾
func ListPublicAnswered(ctx context.Context, db database.DB, category string, limit, offset int) ([]model.Question, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if category != "" {
		rows, err = db.Query(ctx,
			`SELECT `+questionColumns+`
			 FROM questions
			 WHERE is_public AND status = 'answered' AND category = $1
			 ORDER BY created_at DESC
			 LIMIT $2 OFFSET $3`,
			category, limit, offset,
		)
	} else {
		rows, err = db.Query(ctx,
			`SELECT `+questionColumns+`
			 FROM questions
			 WHERE is_public AND status = 'answered'
			 ORDER BY created_at DESC
			 LIMIT $1 OFFSET $2`,
			limit, offset,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("ListPublicAnswered: %w", err)
	}
	defer rows.Close()

	var out []model.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("ListPublicAnswered: %w", err)
		}
		out = append(out, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPublicAnswered: %w", err)
	}
	return out, nil
}

// CountPublicAnswered 回傳符合 ListPublicAnswered 條件的總筆數
func CountPublicAnswered(ctx context.Context, db database.DB, category string) (int, error) {
	var row pgx.Row
	if category != "" {
		row = db.QueryRow(ctx,
			`SELECT COUNT(*) FROM questions
			 WHERE is_public AND status = 'answered' AND category = $1`,
			category,
		)
	} else {
		row = db.QueryRow(ctx,
			`SELECT COUNT(*) FROM questions
			 WHERE is_public AND status = 'answered'`,
		)
	}
	var total int
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("CountPublicAnswered: %w", err)
	}
	return total, nil
}

// SetAnswer 寫入回覆並同步將 status 轉為 answered，單一 UPDATE 保證不變量
// 重複呼叫會覆寫先前的回覆
func SetAnswer(ctx context.Context, db database.DB, questionID int, text string, answeredBy int, references []string) (*model.Question, error) {
	if references == nil {
		references = []string{}
	}
	row := db.QueryRow(ctx,
		`UPDATE questions
		 SET answer_text = $1, answered_by = $2, answered_at = NOW(),
		     answer_refs = $3, status = 'answered'
		 WHERE id = $4
		 RETURNING `+questionColumns,
		text,
		answeredBy,
		references,
		questionID,
	)
	q, err := scanQuestion(row)
	if err != nil {
		return nil, fmt.Errorf("SetAnswer: %w", err)
	}
	return q, nil
}
