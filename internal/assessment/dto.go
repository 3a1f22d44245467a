package assessment

import "github.com/google/uuid"

type SessionStateResponse struct {
	SessionID    uuid.UUID     `json:"session_id"`
	CurrentStage string        `json:"current_stage"`
	Progress     int           `json:"progress"`
	Status       SessionStatus `json:"status"`
}

type NextQuestionResponse struct {
	StageComplete  bool      `json:"stage_complete"`
	Question       *Question `json:"question,omitempty"`
	Options        []Option  `json:"options,omitempty"`
	Stage          string    `json:"stage,omitempty"`
	Progress       int       `json:"progress,omitempty"`
	TotalQuestions int       `json:"total_questions,omitempty"`
}

type SubmitAnswerDTO struct {
	SessionID  string `json:"session_id" validate:"required,uuid"`
	QuestionID string `json:"question_id" validate:"required,uuid"`
	OptionID   string `json:"option_id" validate:"required,uuid"`
}

type AdvanceStageDTO struct {
	SessionID string `json:"session_id" validate:"required,uuid"`
}

type AdvanceStageResponse struct {
	Finished  bool   `json:"finished"`
	NextStage string `json:"next_stage,omitempty"`
}

type CategoryScore struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
}

type TestInfoResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Code           string    `json:"code"`
	Description    string    `json:"description,omitempty"`
	TotalQuestions int       `json:"total_questions"`
}

type OptionDTO struct {
	Text     string `json:"text" validate:"required"`
	Score    int    `json:"score"`
	Category string `json:"category"`
}

type CreateQuestionDTO struct {
	TestID   string      `json:"test_id" validate:"required,uuid"`
	Text     string      `json:"question_text" validate:"required"`
	Sequence int         `json:"sequence"`
	Options  []OptionDTO `json:"options" validate:"required,min=4,max=5,dive"`
}

type UpdateQuestionDTO struct {
	Text     *string     `json:"question_text"`
	Sequence *int        `json:"sequence"`
	Options  []OptionDTO `json:"options" validate:"omitempty,min=4,max=5,dive"`
}
