package model

import (
	"time"

	"gorm.io/gorm"
)

type Exam struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	CertificationID uint           `json:"certification_id" gorm:"not null;index"`
	Name            string         `json:"name" gorm:"not null"`
	Duration        int            `json:"duration" gorm:"not null"` // minutes
	PassingScore    float64        `json:"passing_score" gorm:"not null"`
	IsActive        bool           `json:"is_active" gorm:"not null;default:true"`
	ExamQuestions   []ExamQuestion `json:"exam_questions,omitempty" gorm:"foreignKey:ExamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
