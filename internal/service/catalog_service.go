package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Nattie-Nkosi/certsim/internal/dto"
	"github.com/Nattie-Nkosi/certsim/internal/repository"
)

// CatalogService is the taker-facing read surface: certifications, their
// exams, and the exam detail used to take an attempt. Answer correctness
// never leaves this service.
type CatalogService interface {
	ListCertifications() ([]dto.CertificationSummaryDTO, error)
	ListExams(certID uint) ([]dto.ExamSummaryDTO, error)
	GetExamForTaking(examID uint) (*dto.ExamDetailDTO, error)
}

type catalogService struct {
	certRepo repository.CertificationRepository
	examRepo repository.ExamRepository
}

func NewCatalogService(certRepo repository.CertificationRepository, examRepo repository.ExamRepository) CatalogService {
	return &catalogService{certRepo: certRepo, examRepo: examRepo}
}

func (s *catalogService) ListCertifications() ([]dto.CertificationSummaryDTO, error) {
	certs, err := s.certRepo.FindAllWithExamCount()
	if err != nil {
		log.Error().Err(err).Msg("ListCertifications: repository error")
		return nil, fmt.Errorf("fetching certifications: %w", err)
	}

	dtos := make([]dto.CertificationSummaryDTO, 0, len(certs))
	for _, c := range certs {
		dtos = append(dtos, dto.CertificationSummaryDTO{
			ID:          c.Certification.ID,
			Name:        c.Certification.Name,
			Vendor:      c.Certification.Vendor,
			Description: c.Certification.Description,
			ExamCount:   c.ExamCount,
			CreatedAt:   c.Certification.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *catalogService) ListExams(certID uint) ([]dto.ExamSummaryDTO, error) {
	if _, err := s.certRepo.FindByID(certID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertNotFound
		}
		return nil, err
	}

	exams, err := s.examRepo.FindByCertificationWithQuestionCount(certID)
	if err != nil {
		return nil, fmt.Errorf("fetching exams: %w", err)
	}

	dtos := make([]dto.ExamSummaryDTO, 0, len(exams))
	for _, e := range exams {
		if !e.Exam.IsActive {
			continue
		}
		dtos = append(dtos, dto.ExamSummaryDTO{
			ID:            e.Exam.ID,
			Name:          e.Exam.Name,
			Duration:      e.Exam.Duration,
			PassingScore:  e.Exam.PassingScore,
			QuestionCount: e.QuestionCount,
			IsActive:      e.Exam.IsActive,
		})
	}
	return dtos, nil
}

func (s *catalogService) GetExamForTaking(examID uint) (*dto.ExamDetailDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}
	if !exam.IsActive {
		return nil, ErrExamInactive
	}

	detail := dto.ExamDetailDTO{
		ID:           exam.ID,
		Name:         exam.Name,
		Duration:     exam.Duration,
		PassingScore: exam.PassingScore,
		Questions:    make([]dto.TakerQuestionDTO, 0, len(exam.ExamQuestions)),
	}
	for _, eq := range exam.ExamQuestions {
		q := dto.TakerQuestionDTO{
			ID:      eq.Question.ID,
			Text:    eq.Question.Text,
			Type:    eq.Question.Type,
			Order:   eq.Order,
			Answers: make([]dto.TakerAnswerDTO, 0, len(eq.Question.Answers)),
		}
		for _, a := range eq.Question.Answers {
			q.Answers = append(q.Answers, dto.TakerAnswerDTO{ID: a.ID, Text: a.Text})
		}
		detail.Questions = append(detail.Questions, q)
	}
	return &detail, nil
}
