package api

import (
	"time"

	"dawah-qa/internal/model"
)

// AnswerResponse 內嵌於 QuestionResponse，僅 answered 狀態存在
// swagger:model api.AnswerResponse
type AnswerResponse struct {
	Text       string    `json:"text"`
	AnsweredBy int       `json:"answered_by" example:"1"`
	AnsweredAt time.Time `json:"answered_at"`
	References []string  `json:"references"`
}

// swagger:model api.QuestionResponse
type QuestionResponse struct {
	ID        int                  `json:"id" example:"1"`
	UserID    int                  `json:"user_id" example:"1"`
	Question  string               `json:"question" example:"Is X permissible?"`
	Category  string               `json:"category" example:"fiqh"`
	Status    model.QuestionStatus `json:"status" example:"pending"`
	IsPublic  bool                 `json:"is_public" example:"true"`
	Answer    *AnswerResponse      `json:"answer,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

// NewQuestionResponse 由 model.Question 組裝回應
func NewQuestionResponse(q *model.Question) QuestionResponse {
	resp := QuestionResponse{
		ID:        q.ID,
		UserID:    q.UserID,
		Question:  q.Question,
		Category:  q.Category,
		Status:    q.Status,
		IsPublic:  q.IsPublic,
		CreatedAt: q.CreatedAt,
	}
	if q.Answer != nil {
		resp.Answer = &AnswerResponse{
			Text:       q.Answer.Text,
			AnsweredBy: q.Answer.AnsweredBy,
			AnsweredAt: q.Answer.AnsweredAt,
			References: q.Answer.References,
		}
	}
	return resp
}

// NewQuestionResponses 批次組裝，回傳空 slice 而非 nil 以便序列化為 []
func NewQuestionResponses(qs []model.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(qs))
	for i := range qs {
		out = append(out, NewQuestionResponse(&qs[i]))
	}
	return out
}
