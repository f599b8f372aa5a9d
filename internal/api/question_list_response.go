package api

// QuestionListResponse 分頁查詢結果
// swagger:model api.QuestionListResponse
type QuestionListResponse struct {
	Questions   []QuestionResponse `json:"questions"`
	TotalPages  int                `json:"totalPages" example:"3"`
	CurrentPage int                `json:"currentPage" example:"1"`
}
