package dto

import "time"

// CertificationSummaryDTO is used for listing certifications to users.
type CertificationSummaryDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Vendor      string    `json:"vendor,omitempty"`
	Description string    `json:"description,omitempty"`
	ExamCount   int       `json:"exam_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExamSummaryDTO is used for listing exams under a certification.
type ExamSummaryDTO struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Duration      int     `json:"duration"`
	PassingScore  float64 `json:"passing_score"`
	QuestionCount int     `json:"question_count"`
	IsActive      bool    `json:"is_active"`
}

// TakerAnswerDTO deliberately omits is_correct: exam takers never see which
// answers are correct from the catalog surface.
type TakerAnswerDTO struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type TakerQuestionDTO struct {
	ID      uint             `json:"id"`
	Text    string           `json:"text"`
	Type    string           `json:"type"`
	Order   int              `json:"order"`
	Answers []TakerAnswerDTO `json:"answers"`
}

// ExamDetailDTO is the exam as presented to a taker about to start an attempt.
type ExamDetailDTO struct {
	ID           uint               `json:"id"`
	Name         string             `json:"name"`
	Duration     int                `json:"duration"`
	PassingScore float64            `json:"passing_score"`
	Questions    []TakerQuestionDTO `json:"questions"`
}
