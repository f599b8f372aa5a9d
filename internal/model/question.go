// File: internal/model/question.go
package model

import "time"

// QuestionStatus 問題生命週期狀態
type QuestionStatus string

const (
	StatusPending  QuestionStatus = "pending"
	StatusAnswered QuestionStatus = "answered"
)

// Answer 管理員回覆，status = answered 時必定存在
type Answer struct {
	Text       string    `db:"answer_text" json:"text"`
	AnsweredBy int       `db:"answered_by" json:"answered_by"`
	AnsweredAt time.Time `db:"answered_at" json:"answered_at"`
	References []string  `db:"answer_refs" json:"references"`
}

type Question struct {
	ID        int            `db:"id" json:"id"`
	UserID    int            `db:"user_id" json:"user_id"`
	Question  string         `db:"question" json:"question"`
	Category  string         `db:"category" json:"category"`
	Status    QuestionStatus `db:"status" json:"status"`
	IsPublic  bool           `db:"is_public" json:"is_public"`
	Answer    *Answer        `json:"answer,omitempty"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}
