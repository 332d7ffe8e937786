package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/Nattie-Nkosi/certsim/internal/dto"
	"github.com/Nattie-Nkosi/certsim/internal/model"
	"github.com/Nattie-Nkosi/certsim/internal/repository"
)

type AuditEntry struct {
	UserID    *uint
	Action    string
	Entity    string
	EntityID  string
	Details   string
	IPAddress string
	UserAgent string
}

type AuditService interface {
	// Record is best-effort: failures are logged and swallowed so they never
	// fail the user-facing operation that emitted the event.
	Record(entry AuditEntry)
	List(action string, userID *uint, limit, offset int) ([]dto.AuditLogDTO, error)
	PurgeExpired(retentionDays int)
}

type auditService struct {
	auditRepo repository.AuditLogRepository
}

func NewAuditService(auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

func (s *auditService) Record(entry AuditEntry) {
	row := model.AuditLog{
		ID:        uuid.NewString(),
		UserID:    entry.UserID,
		Action:    entry.Action,
		Entity:    entry.Entity,
		EntityID:  entry.EntityID,
		Details:   entry.Details,
		IPAddress: entry.IPAddress,
		UserAgent: entry.UserAgent,
	}
	if err := s.auditRepo.Create(&row); err != nil {
		log.Warn().Err(err).Str("action", entry.Action).Msg("Audit write failed; dropping event")
	}
}

func (s *auditService) List(action string, userID *uint, limit, offset int) ([]dto.AuditLogDTO, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	entries, err := s.auditRepo.FindPage(action, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	var dtos []dto.AuditLogDTO
	if err := copier.Copy(&dtos, &entries); err != nil {
		return nil, err
	}
	return dtos, nil
}

func (s *auditService) PurgeExpired(retentionDays int) {
	if retentionDays <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	deleted, err := s.auditRepo.DeleteOlderThan(cutoff)
	if err != nil {
		log.Error().Err(err).Msg("Audit retention purge failed")
		return
	}
	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("Audit retention purge completed")
	}
}
