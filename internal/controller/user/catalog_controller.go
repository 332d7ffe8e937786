package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nattie-Nkosi/certsim/internal/dto"
	"github.com/Nattie-Nkosi/certsim/internal/service"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// ListCertifications godoc
// @Summary List all certifications
// @Tags Catalog
// @Produce json
// @Success 200 {array} dto.CertificationSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /certifications [get]
func (c *CatalogController) ListCertifications(ctx *gin.Context) {
	certs, err := c.catalogService.ListCertifications()
	if err != nil {
		log.Error().Err(err).Msg("ListCertifications: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve certifications"})
		return
	}
	ctx.JSON(http.StatusOK, certs)
}

// ListExams godoc
// @Summary List active exams for a certification
// @Tags Catalog
// @Produce json
// @Param cert_id path int true "Certification ID"
// @Success 200 {array} dto.ExamSummaryDTO
// @Failure 404 {object} dto.ErrorResponse "Certification not found"
// @Router /certifications/{cert_id}/exams [get]
func (c *CatalogController) ListExams(ctx *gin.Context) {
	certID, ok := parseIDParam(ctx, "cert_id")
	if !ok {
		return
	}
	exams, err := c.catalogService.ListExams(certID)
	if err != nil {
		writeServiceError(ctx, err, "Failed to retrieve exams")
		return
	}
	ctx.JSON(http.StatusOK, exams)
}

// GetExam godoc
// @Summary Get exam detail for taking an attempt
// @Description Questions in exam order with their answers. Correctness is never included.
// @Tags Catalog
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Exam not found or inactive"
// @Router /exams/{exam_id} [get]
func (c *CatalogController) GetExam(ctx *gin.Context) {
	examID, ok := parseIDParam(ctx, "exam_id")
	if !ok {
		return
	}
	exam, err := c.catalogService.GetExamForTaking(examID)
	if err != nil {
		writeServiceError(ctx, err, "Failed to retrieve exam")
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(value), true
}

// writeServiceError maps service sentinel errors onto HTTP statuses. Cross-user
// attempt access intentionally maps to 401, not 404.
func writeServiceError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrExamNotFound),
		errors.Is(err, service.ErrExamInactive),
		errors.Is(err, service.ErrAttemptNotFound),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrCertNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrAttemptCompleted),
		errors.Is(err, service.ErrWrongMode),
		errors.Is(err, service.ErrExamEmpty):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallback, Details: []string{err.Error()}})
	}
}
