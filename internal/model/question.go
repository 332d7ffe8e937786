package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuestionSingleChoice   = "SINGLE_CHOICE"
	QuestionMultipleChoice = "MULTIPLE_CHOICE"
	QuestionTrueFalse      = "TRUE_FALSE"
)

type Question struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	CertificationID uint           `json:"certification_id" gorm:"not null;index"`
	Text            string         `json:"text" gorm:"type:text;not null"`
	Type            string         `json:"type" gorm:"not null"` // SINGLE_CHOICE, MULTIPLE_CHOICE, TRUE_FALSE
	Explanation     string         `json:"explanation,omitempty" gorm:"type:text"`
	Answers         []Answer       `json:"answers,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// CorrectAnswerIDs derives the correct-answer set; it is never stored
// separately from the answer rows.
func (q *Question) CorrectAnswerIDs() []uint {
	var ids []uint
	for _, a := range q.Answers {
		if a.IsCorrect {
			ids = append(ids, a.ID)
		}
	}
	return ids
}
