package api

// swagger:model api.SubmitQuestionRequest
type SubmitQuestionRequest struct {
	Question string `json:"question" validate:"required" example:"Is X permissible?"`
	Category string `json:"category" validate:"required,oneof=aqeedah fiqh quran hadith seerah general" example:"fiqh"`
}
