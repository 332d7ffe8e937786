package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Nattie-Nkosi/certsim/internal/dto"
	"github.com/Nattie-Nkosi/certsim/internal/model"
	"github.com/Nattie-Nkosi/certsim/internal/repository"
)

type AdminQuestionService interface {
	Create(req dto.QuestionCreateDTO) (*model.Question, error)
	Update(id uint, req dto.QuestionUpdateDTO) (*model.Question, error)
	Delete(id uint) error
	ListByCertification(certID uint) ([]model.Question, error)
}

type adminQuestionService struct {
	certRepo     repository.CertificationRepository
	questionRepo repository.QuestionRepository
}

func NewAdminQuestionService(certRepo repository.CertificationRepository, questionRepo repository.QuestionRepository) AdminQuestionService {
	return &adminQuestionService{certRepo: certRepo, questionRepo: questionRepo}
}

func (s *adminQuestionService) Create(req dto.QuestionCreateDTO) (*model.Question, error) {
	if _, err := s.certRepo.FindByID(req.CertificationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertNotFound
		}
		return nil, err
	}

	question := model.Question{
		CertificationID: req.CertificationID,
		Text:            req.Text,
		Type:            req.Type,
		Explanation:     req.Explanation,
	}
	for _, a := range req.Answers {
		question.Answers = append(question.Answers, model.Answer{Text: a.Text, IsCorrect: a.IsCorrect})
	}
	// No enforcement that SINGLE_CHOICE carries exactly one correct answer;
	// grading stays mechanical either way. Authoring-side validation gap.
	if err := s.questionRepo.Create(&question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *adminQuestionService) Update(id uint, req dto.QuestionUpdateDTO) (*model.Question, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	if req.Text != nil {
		question.Text = *req.Text
	}
	if req.Type != nil {
		question.Type = *req.Type
	}
	if req.Explanation != nil {
		question.Explanation = *req.Explanation
	}
	if err := s.questionRepo.Update(question); err != nil {
		return nil, err
	}

	if req.Answers != nil {
		answers := make([]model.Answer, 0, len(req.Answers))
		for _, a := range req.Answers {
			answers = append(answers, model.Answer{Text: a.Text, IsCorrect: a.IsCorrect})
		}
		if err := s.questionRepo.ReplaceAnswers(question.ID, answers); err != nil {
			return nil, err
		}
	}

	return s.questionRepo.FindByID(question.ID)
}

func (s *adminQuestionService) Delete(id uint) error {
	if _, err := s.questionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}
	return s.questionRepo.Delete(id)
}

func (s *adminQuestionService) ListByCertification(certID uint) ([]model.Question, error) {
	if _, err := s.certRepo.FindByID(certID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertNotFound
		}
		return nil, err
	}
	return s.questionRepo.FindByCertificationID(certID)
}
