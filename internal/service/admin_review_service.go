package service

import (
	"github.com/Nattie-Nkosi/certsim/internal/dto"
	"github.com/Nattie-Nkosi/certsim/internal/repository"
)

// AdminReviewService exposes flagged attempts to administrators. Read-only:
// admins may inspect suspicious attempts but never mutate them.
type AdminReviewService interface {
	ListFlaggedAttempts() ([]dto.FlaggedAttemptDTO, error)
}

type adminReviewService struct {
	attemptRepo repository.ExamAttemptRepository
}

func NewAdminReviewService(attemptRepo repository.ExamAttemptRepository) AdminReviewService {
	return &adminReviewService{attemptRepo: attemptRepo}
}

func (s *adminReviewService) ListFlaggedAttempts() ([]dto.FlaggedAttemptDTO, error) {
	attempts, err := s.attemptRepo.FindFlagged()
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.FlaggedAttemptDTO, 0, len(attempts))
	for _, a := range attempts {
		dtos = append(dtos, dto.FlaggedAttemptDTO{
			ID:             a.ID,
			UserID:         a.UserID,
			UserEmail:      a.User.Email,
			ExamID:         a.ExamID,
			ExamName:       a.Exam.Name,
			Mode:           a.Mode,
			Score:          a.Score,
			TabSwitchCount: a.TabSwitchCount,
			FlagReason:     a.FlagReason,
			CompletedAt:    a.CompletedAt,
		})
	}
	return dtos, nil
}
