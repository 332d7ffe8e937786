package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nattie-Nkosi/certsim/internal/dto"
	"github.com/Nattie-Nkosi/certsim/internal/service"
)

type ExamController struct {
	examService service.AdminExamService
}

func NewExamController(examService service.AdminExamService) *ExamController {
	return &ExamController{examService: examService}
}

// CreateExam godoc
// @Summary (Admin) Create an exam
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Param body body dto.ExamCreateDTO true "Exam data"
// @Success 201 {object} model.Exam
// @Failure 404 {object} dto.ErrorResponse "Certification not found"
// @Security BearerAuth
// @Router /admin/exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.ExamCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	exam, err := c.examService.Create(req)
	if err != nil {
		writeAdminError(ctx, err, "Failed to create exam")
		return
	}
	ctx.JSON(http.StatusCreated, exam)
}

// UpdateExam godoc
// @Summary (Admin) Update exam metadata
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param body body dto.ExamUpdateDTO true "Fields to update"
// @Success 200 {object} model.Exam
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/exams/{exam_id} [put]
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	examID, ok := parseIDParam(ctx, "exam_id")
	if !ok {
		return
	}
	var req dto.ExamUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	exam, err := c.examService.Update(examID, req)
	if err != nil {
		writeAdminError(ctx, err, "Failed to update exam")
		return
	}
	ctx.JSON(http.StatusOK, exam)
}

// DeleteExam godoc
// @Summary (Admin) Delete an exam
// @Tags Admin - Exams
// @Param exam_id path int true "Exam ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/exams/{exam_id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	examID, ok := parseIDParam(ctx, "exam_id")
	if !ok {
		return
	}
	if err := c.examService.Delete(examID); err != nil {
		writeAdminError(ctx, err, "Failed to delete exam")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AttachQuestion godoc
// @Summary (Admin) Attach a question to an exam at a position
// @Tags Admin - Exams
// @Accept json
// @Param exam_id path int true "Exam ID"
// @Param body body dto.AttachQuestionDTO true "Question and order"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Order in use or question already attached"
// @Security BearerAuth
// @Router /admin/exams/{exam_id}/questions [post]
func (c *ExamController) AttachQuestion(ctx *gin.Context) {
	examID, ok := parseIDParam(ctx, "exam_id")
	if !ok {
		return
	}
	var req dto.AttachQuestionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.examService.AttachQuestion(examID, req); err != nil {
		writeAdminError(ctx, err, "Failed to attach question")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ReorderQuestion godoc
// @Summary (Admin) Move an attached question to a new position
// @Tags Admin - Exams
// @Accept json
// @Param exam_id path int true "Exam ID"
// @Param question_id path int true "Question ID"
// @Param body body dto.ReorderQuestionDTO true "New order"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Exam missing or question not attached"
// @Failure 409 {object} dto.ErrorResponse "Order in use"
// @Security BearerAuth
// @Router /admin/exams/{exam_id}/questions/{question_id} [put]
func (c *ExamController) ReorderQuestion(ctx *gin.Context) {
	examID, ok := parseIDParam(ctx, "exam_id")
	if !ok {
		return
	}
	questionID, ok := parseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.ReorderQuestionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if err := c.examService.ReorderQuestion(examID, questionID, req.Order); err != nil {
		writeAdminError(ctx, err, "Failed to reorder question")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DetachQuestion godoc
// @Summary (Admin) Detach a question from an exam
// @Tags Admin - Exams
// @Param exam_id path int true "Exam ID"
// @Param question_id path int true "Question ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/exams/{exam_id}/questions/{question_id} [delete]
func (c *ExamController) DetachQuestion(ctx *gin.Context) {
	examID, ok := parseIDParam(ctx, "exam_id")
	if !ok {
		return
	}
	questionID, ok := parseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	if err := c.examService.DetachQuestion(examID, questionID); err != nil {
		writeAdminError(ctx, err, "Failed to detach question")
		return
	}
	ctx.Status(http.StatusNoContent)
}
