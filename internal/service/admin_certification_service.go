package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Nattie-Nkosi/certsim/internal/dto"
	"github.com/Nattie-Nkosi/certsim/internal/model"
	"github.com/Nattie-Nkosi/certsim/internal/repository"
)

type AdminCertificationService interface {
	Create(req dto.CertificationCreateDTO) (*model.Certification, error)
	Update(id uint, req dto.CertificationUpdateDTO) (*model.Certification, error)
	Delete(id uint) error
}

type adminCertificationService struct {
	certRepo repository.CertificationRepository
}

func NewAdminCertificationService(certRepo repository.CertificationRepository) AdminCertificationService {
	return &adminCertificationService{certRepo: certRepo}
}

func (s *adminCertificationService) Create(req dto.CertificationCreateDTO) (*model.Certification, error) {
	cert := model.Certification{
		Name:        req.Name,
		Vendor:      req.Vendor,
		Description: req.Description,
	}
	if err := s.certRepo.Create(&cert); err != nil {
		return nil, err
	}
	return &cert, nil
}

func (s *adminCertificationService) Update(id uint, req dto.CertificationUpdateDTO) (*model.Certification, error) {
	cert, err := s.certRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCertNotFound
		}
		return nil, err
	}
	if req.Name != nil {
		cert.Name = *req.Name
	}
	if req.Vendor != nil {
		cert.Vendor = *req.Vendor
	}
	if req.Description != nil {
		cert.Description = *req.Description
	}
	if err := s.certRepo.Update(cert); err != nil {
		return nil, err
	}
	return cert, nil
}

func (s *adminCertificationService) Delete(id uint) error {
	if _, err := s.certRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCertNotFound
		}
		return err
	}
	return s.certRepo.Delete(id)
}
