package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Nattie-Nkosi/certsim/internal/dto"
	"github.com/Nattie-Nkosi/certsim/internal/model"
	"github.com/Nattie-Nkosi/certsim/internal/repository"
)

type AdminExamService interface {
	Create(req dto.ExamCreateDTO) (*model.Exam, error)
	Update(id uint, req dto.ExamUpdateDTO) (*model.Exam, error)
	Delete(id uint) error
	AttachQuestion(examID uint, req dto.AttachQuestionDTO) error
	DetachQuestion(examID, questionID uint) error
	ReorderQuestion(examID, questionID uint, order int) error
}

type adminExamService struct {
	certRepo     repository.CertificationRepository
	examRepo     repository.ExamRepository
	questionRepo repository.QuestionRepository
}

func NewAdminExamService(
	certRepo repository.CertificationRepository,
	examRepo repository.ExamRepository,
	questionRepo repository.QuestionRepository,
) AdminExamService {
	return &adminExamService{certRepo: certRepo, examRepo: examRepo, questionRepo: questionRepo}
}

func (s *adminExamService) Create(req dto.ExamCreateDTO) (*model.Exam, error) {
	if _, err := s.certRepo.FindByID(req.CertificationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertNotFound
		}
		return nil, err
	}

	exam := model.Exam{
		CertificationID: req.CertificationID,
		Name:            req.Name,
		Duration:        req.Duration,
		PassingScore:    req.PassingScore,
		IsActive:        true,
	}
	if req.IsActive != nil {
		exam.IsActive = *req.IsActive
	}
	if err := s.examRepo.Create(&exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

func (s *adminExamService) Update(id uint, req dto.ExamUpdateDTO) (*model.Exam, error) {
	exam, err := s.examRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}
	if req.Name != nil {
		exam.Name = *req.Name
	}
	if req.Duration != nil {
		exam.Duration = *req.Duration
	}
	if req.PassingScore != nil {
		exam.PassingScore = *req.PassingScore
	}
	if req.IsActive != nil {
		exam.IsActive = *req.IsActive
	}
	if err := s.examRepo.Update(exam); err != nil {
		return nil, err
	}
	return exam, nil
}

func (s *adminExamService) Delete(id uint) error {
	if _, err := s.examRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExamNotFound
		}
		return err
	}
	return s.examRepo.Delete(id)
}

// AttachQuestion adds a question to an exam at an explicit position. Order
// values must be unique per exam but may go non-contiguous as questions are
// attached and detached over time.
func (s *adminExamService) AttachQuestion(examID uint, req dto.AttachQuestionDTO) error {
	if _, err := s.examRepo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExamNotFound
		}
		return err
	}
	if _, err := s.questionRepo.FindByID(req.QuestionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}

	if attached, err := s.examRepo.QuestionAttached(examID, req.QuestionID); err != nil {
		return err
	} else if attached {
		return ErrQuestionAttached
	}
	if taken, err := s.examRepo.OrderInUse(examID, req.Order); err != nil {
		return err
	} else if taken {
		return ErrOrderTaken
	}

	err := s.examRepo.AttachQuestion(&model.ExamQuestion{
		ExamID:     examID,
		QuestionID: req.QuestionID,
		Order:      req.Order,
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Concurrent attach beat the pre-checks; surface the order conflict.
		return ErrOrderTaken
	}
	return err
}

// ReorderQuestion moves an attached question to a new order slot in place.
// The move is a single UPDATE, so the question's current slot never opens up
// mid-operation the way detach plus re-attach would.
func (s *adminExamService) ReorderQuestion(examID, questionID uint, order int) error {
	if _, err := s.examRepo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExamNotFound
		}
		return err
	}

	err := s.examRepo.UpdateQuestionOrder(examID, questionID, order)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrQuestionNotAttached
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrOrderTaken
	}
	return err
}

func (s *adminExamService) DetachQuestion(examID, questionID uint) error {
	if _, err := s.examRepo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExamNotFound
		}
		return err
	}
	return s.examRepo.DetachQuestion(examID, questionID)
}
