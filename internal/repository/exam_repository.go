package repository

import (
	"github.com/Nattie-Nkosi/certsim/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(exam *model.Exam) error
	Update(exam *model.Exam) error
	Delete(id uint) error
	FindByID(id uint) (*model.Exam, error)
	FindByIDWithQuestions(id uint) (*model.Exam, error)
	FindByCertificationWithQuestionCount(certID uint) ([]ExamWithQuestionCount, error)
	AttachQuestion(eq *model.ExamQuestion) error
	DetachQuestion(examID, questionID uint) error
	UpdateQuestionOrder(examID, questionID uint, order int) error
	QuestionAttached(examID, questionID uint) (bool, error)
	OrderInUse(examID uint, order int) (bool, error)
}

type ExamWithQuestionCount struct {
	model.Exam
	QuestionCount int
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(exam *model.Exam) error {
	return r.db.Create(exam).Error
}

func (r *examRepository) Update(exam *model.Exam) error {
	return r.db.Omit("ExamQuestions").Save(exam).Error
}

func (r *examRepository) Delete(id uint) error {
	return r.db.Delete(&model.Exam{}, id).Error
}

func (r *examRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

// FindByIDWithQuestions loads the exam with its questions (in exam order) and
// each question's answers. This is the query shape both the taker view and
// grading run on.
func (r *examRepository) FindByIDWithQuestions(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.
		Preload("ExamQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Order("exam_questions.order_index ASC")
		}).
		Preload("ExamQuestions.Question.Answers").
		First(&exam, id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindByCertificationWithQuestionCount(certID uint) ([]ExamWithQuestionCount, error) {
	var results []ExamWithQuestionCount
	err := r.db.Model(&model.Exam{}).
		Select("exams.*, (SELECT COUNT(*) FROM exam_questions WHERE exam_questions.exam_id = exams.id) as question_count").
		Where("exams.certification_id = ? AND exams.deleted_at IS NULL", certID).
		Order("exams.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *examRepository) AttachQuestion(eq *model.ExamQuestion) error {
	return r.db.Create(eq).Error
}

func (r *examRepository) DetachQuestion(examID, questionID uint) error {
	return r.db.Where("exam_id = ? AND question_id = ?", examID, questionID).
		Delete(&model.ExamQuestion{}).Error
}

// UpdateQuestionOrder moves an attached question to a new position in one
// UPDATE, so the old slot is never transiently freed the way detach plus
// re-attach would. The per-exam unique index rejects occupied targets.
func (r *examRepository) UpdateQuestionOrder(examID, questionID uint, order int) error {
	res := r.db.Model(&model.ExamQuestion{}).
		Where("exam_id = ? AND question_id = ?", examID, questionID).
		UpdateColumn("order_index", order)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *examRepository) QuestionAttached(examID, questionID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.ExamQuestion{}).
		Where("exam_id = ? AND question_id = ?", examID, questionID).
		Count(&count).Error
	return count > 0, err
}

func (r *examRepository) OrderInUse(examID uint, order int) (bool, error) {
	var count int64
	err := r.db.Model(&model.ExamQuestion{}).
		Where("exam_id = ? AND order_index = ?", examID, order).
		Count(&count).Error
	return count > 0, err
}
