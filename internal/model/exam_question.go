package model

import "time"

// ExamQuestion attaches a question to an exam with an explicit position.
// Order values are unique per exam but need not stay contiguous after edits.
type ExamQuestion struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	ExamID     uint      `json:"exam_id" gorm:"not null;index;uniqueIndex:idx_exam_question;uniqueIndex:idx_exam_order"`
	QuestionID uint      `json:"question_id" gorm:"not null;index;uniqueIndex:idx_exam_question"`
	Question   Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Order      int       `json:"order" gorm:"column:order_index;not null;uniqueIndex:idx_exam_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
