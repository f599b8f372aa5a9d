package api

// swagger:model api.AnswerQuestionRequest
type AnswerQuestionRequest struct {
	Answer     string   `json:"answer" validate:"required" example:"Yes, because..."`
	References []string `json:"references" example:"Sahih al-Bukhari 1"`
}
