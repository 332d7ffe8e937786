package model

import "time"

const (
	AuditUserRegister  = "USER_REGISTER"
	AuditUserLogin     = "USER_LOGIN"
	AuditExamStart     = "EXAM_START"
	AuditPracticeStart = "PRACTICE_START"
	AuditTabSwitch     = "TAB_SWITCH"
	AuditExamSubmit    = "EXAM_SUBMIT"
	AuditAttemptDelete = "ATTEMPT_DELETE"
)

type AuditLog struct {
	ID        string    `gorm:"primarykey;size:36" json:"id"` // uuid
	UserID    *uint     `json:"user_id,omitempty" gorm:"index"`
	Action    string    `json:"action" gorm:"not null;index"`
	Entity    string    `json:"entity,omitempty"`
	EntityID  string    `json:"entity_id,omitempty"`
	Details   string    `json:"details,omitempty" gorm:"type:text"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
