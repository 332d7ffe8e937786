package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nattie-Nkosi/certsim/internal/dto"
	"github.com/Nattie-Nkosi/certsim/internal/service"
)

type CertificationController struct {
	certService service.AdminCertificationService
}

func NewCertificationController(certService service.AdminCertificationService) *CertificationController {
	return &CertificationController{certService: certService}
}

// CreateCertification godoc
// @Summary (Admin) Create a certification
// @Tags Admin - Certifications
// @Accept json
// @Produce json
// @Param body body dto.CertificationCreateDTO true "Certification data"
// @Success 201 {object} model.Certification
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/certifications [post]
func (c *CertificationController) CreateCertification(ctx *gin.Context) {
	var req dto.CertificationCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	cert, err := c.certService.Create(req)
	if err != nil {
		writeAdminError(ctx, err, "Failed to create certification")
		return
	}
	ctx.JSON(http.StatusCreated, cert)
}

// UpdateCertification godoc
// @Summary (Admin) Update a certification
// @Tags Admin - Certifications
// @Accept json
// @Produce json
// @Param cert_id path int true "Certification ID"
// @Param body body dto.CertificationUpdateDTO true "Fields to update"
// @Success 200 {object} model.Certification
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/certifications/{cert_id} [put]
func (c *CertificationController) UpdateCertification(ctx *gin.Context) {
	certID, ok := parseIDParam(ctx, "cert_id")
	if !ok {
		return
	}
	var req dto.CertificationUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	cert, err := c.certService.Update(certID, req)
	if err != nil {
		writeAdminError(ctx, err, "Failed to update certification")
		return
	}
	ctx.JSON(http.StatusOK, cert)
}

// DeleteCertification godoc
// @Summary (Admin) Delete a certification
// @Tags Admin - Certifications
// @Param cert_id path int true "Certification ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/certifications/{cert_id} [delete]
func (c *CertificationController) DeleteCertification(ctx *gin.Context) {
	certID, ok := parseIDParam(ctx, "cert_id")
	if !ok {
		return
	}
	if err := c.certService.Delete(certID); err != nil {
		writeAdminError(ctx, err, "Failed to delete certification")
		return
	}
	ctx.Status(http.StatusNoContent)
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(value), true
}

func writeAdminError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrCertNotFound),
		errors.Is(err, service.ErrExamNotFound),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrQuestionNotAttached):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrOrderTaken),
		errors.Is(err, service.ErrQuestionAttached):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Admin: unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallback, Details: []string{err.Error()}})
	}
}
