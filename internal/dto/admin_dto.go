package dto

import "time"

type CertificationCreateDTO struct {
	Name        string `json:"name" binding:"required"`
	Vendor      string `json:"vendor"`
	Description string `json:"description"`
}

type CertificationUpdateDTO struct {
	Name        *string `json:"name"`
	Vendor      *string `json:"vendor"`
	Description *string `json:"description"`
}

type AnswerCreateDTO struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionCreateDTO struct {
	CertificationID uint              `json:"certification_id" binding:"required"`
	Text            string            `json:"text" binding:"required"`
	Type            string            `json:"type" binding:"required,oneof=SINGLE_CHOICE MULTIPLE_CHOICE TRUE_FALSE"`
	Explanation     string            `json:"explanation"`
	Answers         []AnswerCreateDTO `json:"answers" binding:"required,min=2,dive"`
}

type QuestionUpdateDTO struct {
	Text        *string           `json:"text"`
	Type        *string           `json:"type" binding:"omitempty,oneof=SINGLE_CHOICE MULTIPLE_CHOICE TRUE_FALSE"`
	Explanation *string           `json:"explanation"`
	Answers     []AnswerCreateDTO `json:"answers" binding:"omitempty,min=2,dive"`
}

type ExamCreateDTO struct {
	CertificationID uint    `json:"certification_id" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	Duration        int     `json:"duration" binding:"required,min=1"`
	PassingScore    float64 `json:"passing_score" binding:"min=0,max=100"`
	IsActive        *bool   `json:"is_active"`
}

type ExamUpdateDTO struct {
	Name         *string  `json:"name"`
	Duration     *int     `json:"duration" binding:"omitempty,min=1"`
	PassingScore *float64 `json:"passing_score" binding:"omitempty,min=0,max=100"`
	IsActive     *bool    `json:"is_active"`
}

type AttachQuestionDTO struct {
	QuestionID uint `json:"question_id" binding:"required"`
	Order      int  `json:"order" binding:"required,min=1"`
}

type ReorderQuestionDTO struct {
	Order int `json:"order" binding:"required,min=1"`
}

type AuditLogDTO struct {
	ID        string    `json:"id"`
	UserID    *uint     `json:"user_id,omitempty"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity,omitempty"`
	EntityID  string    `json:"entity_id,omitempty"`
	Details   string    `json:"details,omitempty"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
