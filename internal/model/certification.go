package model

import (
	"time"

	"gorm.io/gorm"
)

type Certification struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null;uniqueIndex"` // "CompTIA Security+"
	Vendor      string         `json:"vendor,omitempty"`
	Description string         `json:"description,omitempty" gorm:"type:text"`
	Exams       []Exam         `json:"exams,omitempty" gorm:"foreignKey:CertificationID"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:CertificationID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
