package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nattie-Nkosi/certsim/internal/dto"
	"github.com/Nattie-Nkosi/certsim/internal/service"
)

type QuestionController struct {
	questionService service.AdminQuestionService
}

func NewQuestionController(questionService service.AdminQuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// CreateQuestion godoc
// @Summary (Admin) Create a question with its answers
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param body body dto.QuestionCreateDTO true "Question with nested answers"
// @Success 201 {object} model.Question
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Certification not found"
// @Security BearerAuth
// @Router /admin/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	question, err := c.questionService.Create(req)
	if err != nil {
		writeAdminError(ctx, err, "Failed to create question")
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary (Admin) Update a question; answers, when present, replace the full set
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param body body dto.QuestionUpdateDTO true "Fields to update"
// @Success 200 {object} model.Question
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/questions/{question_id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.QuestionUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	question, err := c.questionService.Update(questionID, req)
	if err != nil {
		writeAdminError(ctx, err, "Failed to update question")
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Tags Admin - Questions
// @Param question_id path int true "Question ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/questions/{question_id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	if err := c.questionService.Delete(questionID); err != nil {
		writeAdminError(ctx, err, "Failed to delete question")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListQuestions godoc
// @Summary (Admin) List questions for a certification, including correctness
// @Tags Admin - Questions
// @Produce json
// @Param cert_id path int true "Certification ID"
// @Success 200 {array} model.Question
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/certifications/{cert_id}/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	certID, ok := parseIDParam(ctx, "cert_id")
	if !ok {
		return
	}
	questions, err := c.questionService.ListByCertification(certID)
	if err != nil {
		writeAdminError(ctx, err, "Failed to retrieve questions")
		return
	}
	ctx.JSON(http.StatusOK, questions)
}
