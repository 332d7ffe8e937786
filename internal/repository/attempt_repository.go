package repository

import (
	"github.com/Nattie-Nkosi/certsim/internal/model"
	"gorm.io/gorm"
)

type ExamAttemptRepository interface {
	Create(attempt *model.ExamAttempt) error
	Save(attempt *model.ExamAttempt) error
	FindByID(id uint) (*model.ExamAttempt, error)
	FindByIDWithExam(id uint) (*model.ExamAttempt, error)
	FindOpen(userID, examID uint, mode string) (*model.ExamAttempt, error)
	FindOpenAnyMode(userID, examID uint) (*model.ExamAttempt, error)
	FindAllByUser(userID uint) ([]model.ExamAttempt, error)
	IncrementTabSwitch(id uint) (*model.ExamAttempt, error)
	Delete(id uint) error
	FindFlagged() ([]model.ExamAttempt, error)
}

type examAttemptRepository struct {
	db *gorm.DB
}

func NewExamAttemptRepository(db *gorm.DB) ExamAttemptRepository {
	return &examAttemptRepository{db: db}
}

func (r *examAttemptRepository) Create(attempt *model.ExamAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *examAttemptRepository) Save(attempt *model.ExamAttempt) error {
	return r.db.Save(attempt).Error
}

func (r *examAttemptRepository) FindByID(id uint) (*model.ExamAttempt, error) {
	var attempt model.ExamAttempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *examAttemptRepository) FindByIDWithExam(id uint) (*model.ExamAttempt, error) {
	var attempt model.ExamAttempt
	if err := r.db.Preload("Exam").First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *examAttemptRepository) FindOpen(userID, examID uint, mode string) (*model.ExamAttempt, error) {
	var attempt model.ExamAttempt
	err := r.db.
		Where("user_id = ? AND exam_id = ? AND mode = ? AND completed_at IS NULL", userID, examID, mode).
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *examAttemptRepository) FindOpenAnyMode(userID, examID uint) (*model.ExamAttempt, error) {
	var attempt model.ExamAttempt
	err := r.db.
		Where("user_id = ? AND exam_id = ? AND completed_at IS NULL", userID, examID).
		Order("server_start_time ASC").
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *examAttemptRepository) FindAllByUser(userID uint) ([]model.ExamAttempt, error) {
	var attempts []model.ExamAttempt
	err := r.db.Preload("Exam").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&attempts).Error
	return attempts, err
}

// IncrementTabSwitch bumps the counter with a single UPDATE expression so
// concurrent signals for the same attempt never lose an increment, then
// re-reads the row for the caller.
func (r *examAttemptRepository) IncrementTabSwitch(id uint) (*model.ExamAttempt, error) {
	err := r.db.Model(&model.ExamAttempt{}).
		Where("id = ?", id).
		UpdateColumn("tab_switch_count", gorm.Expr("tab_switch_count + ?", 1)).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete is a hard delete; attempts have no retention at this layer.
func (r *examAttemptRepository) Delete(id uint) error {
	return r.db.Delete(&model.ExamAttempt{}, id).Error
}

func (r *examAttemptRepository) FindFlagged() ([]model.ExamAttempt, error) {
	var attempts []model.ExamAttempt
	err := r.db.Preload("User").Preload("Exam").
		Where("flagged = ?", true).
		Order("updated_at DESC").
		Find(&attempts).Error
	return attempts, err
}
