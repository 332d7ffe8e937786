package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ModeExam     = "EXAM"
	ModePractice = "PRACTICE"
)

// ExamAttempt is one user's run through an exam. CompletedAt is the open vs.
// closed discriminator: nil while in progress, set exactly once at submission.
// Attempts are hard-deleted on user request, so no gorm.DeletedAt here.
type ExamAttempt struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	UserID          uint           `json:"user_id" gorm:"not null;index"`
	User            User           `json:"-" gorm:"foreignKey:UserID"`
	ExamID          uint           `json:"exam_id" gorm:"not null;index"`
	Exam            Exam           `json:"exam,omitempty" gorm:"foreignKey:ExamID"`
	Mode            string         `json:"mode" gorm:"not null;default:'EXAM'"`
	ServerStartTime time.Time      `json:"server_start_time" gorm:"not null"`
	Answers         datatypes.JSON `json:"answers,omitempty"` // questionID -> []answerID
	Score           float64        `json:"score"`
	Passed          bool           `json:"passed"`
	CompletedAt     *time.Time     `json:"completed_at,omitempty" gorm:"index"`
	TabSwitchCount  int            `json:"tab_switch_count" gorm:"not null;default:0"`
	Flagged         bool           `json:"flagged" gorm:"not null;default:false;index"`
	FlagReason      string         `json:"flag_reason,omitempty" gorm:"type:text"`
	IPAddress       string         `json:"ip_address,omitempty"`
	UserAgent       string         `json:"user_agent,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (a *ExamAttempt) Completed() bool {
	return a.CompletedAt != nil
}
