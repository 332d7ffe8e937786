package dto

import "time"

type StartAttemptRequest struct {
	Mode string `json:"mode"` // "PRACTICE" to practice; anything else defaults to EXAM
}

type StartAttemptResponse struct {
	AttemptID       uint      `json:"attempt_id"`
	Resuming        bool      `json:"resuming"`
	ServerStartTime time.Time `json:"server_start_time"`
	TabSwitchCount  int       `json:"tab_switch_count"`
	Mode            string    `json:"mode"`
}

type TabSwitchResponse struct {
	TabSwitchCount int  `json:"tab_switch_count"`
	Warning        bool `json:"warning"`
}

type CheckAnswerRequest struct {
	QuestionID uint            `json:"question_id" binding:"required"`
	Answer     AnswerSelection `json:"answer"`
}

type CheckAnswerResponse struct {
	Correct          bool   `json:"correct"`
	CorrectAnswerIDs []uint `json:"correct_answer_ids"`
	Explanation      string `json:"explanation,omitempty"`
}

// SubmitExamRequest maps questionID (as JSON object key) to the selected
// answer(s). Absent questions count as wrong.
type SubmitExamRequest struct {
	Answers map[string]AnswerSelection `json:"answers"`
}

type SubmitExamResponse struct {
	AttemptID      uint    `json:"attempt_id"`
	Score          float64 `json:"score"`
	Passed         bool    `json:"passed"`
	CorrectAnswers int     `json:"correct_answers"`
	TotalQuestions int     `json:"total_questions"`
	PassingScore   float64 `json:"passing_score"`
	Flagged        bool    `json:"flagged"`
}

type AttemptSummaryDTO struct {
	ID              uint       `json:"id"`
	ExamID          uint       `json:"exam_id"`
	ExamName        string     `json:"exam_name,omitempty"`
	Mode            string     `json:"mode"`
	ServerStartTime time.Time  `json:"server_start_time"`
	Score           float64    `json:"score"`
	Passed          bool       `json:"passed"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	TabSwitchCount  int        `json:"tab_switch_count"`
	Flagged         bool       `json:"flagged"`
	CreatedAt       time.Time  `json:"created_at"`
}

type AttemptDetailDTO struct {
	AttemptSummaryDTO
	Answers    map[string][]uint `json:"answers,omitempty"`
	FlagReason string            `json:"flag_reason,omitempty"`
}

// FlaggedAttemptDTO is the admin review view of a suspicious attempt.
type FlaggedAttemptDTO struct {
	ID             uint       `json:"id"`
	UserID         uint       `json:"user_id"`
	UserEmail      string     `json:"user_email,omitempty"`
	ExamID         uint       `json:"exam_id"`
	ExamName       string     `json:"exam_name,omitempty"`
	Mode           string     `json:"mode"`
	Score          float64    `json:"score"`
	TabSwitchCount int        `json:"tab_switch_count"`
	FlagReason     string     `json:"flag_reason"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}
