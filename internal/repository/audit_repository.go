package repository

import (
	"time"

	"github.com/Nattie-Nkosi/certsim/internal/model"
	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(entry *model.AuditLog) error
	FindPage(action string, userID *uint, limit, offset int) ([]model.AuditLog, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(entry *model.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *auditLogRepository) FindPage(action string, userID *uint, limit, offset int) ([]model.AuditLog, error) {
	query := r.db.Model(&model.AuditLog{})
	if action != "" {
		query = query.Where("action = ?", action)
	}
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var entries []model.AuditLog
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, err
}

func (r *auditLogRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", cutoff).Delete(&model.AuditLog{})
	return res.RowsAffected, res.Error
}
