package repository

import (
	"github.com/Nattie-Nkosi/certsim/internal/model"
	"gorm.io/gorm"
)

type CertificationRepository interface {
	Create(cert *model.Certification) error
	Update(cert *model.Certification) error
	Delete(id uint) error
	FindByID(id uint) (*model.Certification, error)
	FindAllWithExamCount() ([]CertificationWithExamCount, error)
}

type CertificationWithExamCount struct {
	model.Certification
	ExamCount int
}

type certificationRepository struct {
	db *gorm.DB
}

func NewCertificationRepository(db *gorm.DB) CertificationRepository {
	return &certificationRepository{db: db}
}

func (r *certificationRepository) Create(cert *model.Certification) error {
	return r.db.Create(cert).Error
}

func (r *certificationRepository) Update(cert *model.Certification) error {
	return r.db.Save(cert).Error
}

func (r *certificationRepository) Delete(id uint) error {
	return r.db.Delete(&model.Certification{}, id).Error
}

func (r *certificationRepository) FindByID(id uint) (*model.Certification, error) {
	var cert model.Certification
	if err := r.db.First(&cert, id).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *certificationRepository) FindAllWithExamCount() ([]CertificationWithExamCount, error) {
	var results []CertificationWithExamCount
	err := r.db.Model(&model.Certification{}).
		Select("certifications.*, (SELECT COUNT(*) FROM exams WHERE exams.certification_id = certifications.id AND exams.deleted_at IS NULL) as exam_count").
		Where("certifications.deleted_at IS NULL").
		Order("certifications.name ASC").
		Scan(&results).Error
	return results, err
}
