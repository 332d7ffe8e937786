package repository

import (
	"github.com/Nattie-Nkosi/certsim/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByCertificationID(certID uint) ([]model.Question, error)
	Update(question *model.Question) error
	ReplaceAnswers(questionID uint, answers []model.Answer) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	// Nested answers are created alongside the question.
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.Preload("Answers").First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByCertificationID(certID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Preload("Answers").
		Where("certification_id = ?", certID).
		Order("created_at DESC").
		Find(&questions).Error
	return questions, err
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Omit("Answers").Save(question).Error
}

// ReplaceAnswers swaps the full answer set of a question in one transaction.
// Editing answers piecemeal is not supported; the authoring UI always sends
// the complete set.
func (r *questionRepository) ReplaceAnswers(questionID uint, answers []model.Answer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("question_id = ?", questionID).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].ID = 0
			answers[i].QuestionID = questionID
		}
		return tx.Create(&answers).Error
	})
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Question{}, id).Error
}
