package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nattie-Nkosi/certsim/internal/controller/middleware"
	"github.com/Nattie-Nkosi/certsim/internal/dto"
	"github.com/Nattie-Nkosi/certsim/internal/service"
)

type AttemptController struct {
	attemptService service.AttemptService
}

func NewAttemptController(attemptService service.AttemptService) *AttemptController {
	return &AttemptController{attemptService: attemptService}
}

// StartAttempt godoc
// @Summary Start or resume an exam attempt
// @Description Returns the open attempt for (exam, mode) when one exists; the original server start time and tab-switch count are preserved across resumes.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param body body dto.StartAttemptRequest false "Mode selection; defaults to EXAM"
// @Success 200 {object} dto.StartAttemptResponse
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Security BearerAuth
// @Router /exams/{exam_id}/attempts [post]
func (c *AttemptController) StartAttempt(ctx *gin.Context) {
	examID, ok := parseIDParam(ctx, "exam_id")
	if !ok {
		return
	}
	principal, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	var req dto.StartAttemptRequest
	// Body is optional; an empty body means EXAM mode.
	_ = ctx.ShouldBindJSON(&req)

	resp, err := c.attemptService.StartAttempt(examID, principal, req.Mode, middleware.ClientMetaFrom(ctx))
	if err != nil {
		writeServiceError(ctx, err, "Failed to start attempt")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RecordTabSwitch godoc
// @Summary Record a tab-switch proctoring signal
// @Description One call per detected visibility loss. Practice attempts are exempt and always return a zeroed count.
// @Tags Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.TabSwitchResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already completed"
// @Security BearerAuth
// @Router /attempts/{attempt_id}/tab-switch [post]
func (c *AttemptController) RecordTabSwitch(ctx *gin.Context) {
	attemptID, ok := parseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	principal, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	resp, err := c.attemptService.RecordTabSwitch(attemptID, principal)
	if err != nil {
		writeServiceError(ctx, err, "Failed to record tab switch")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CheckAnswer godoc
// @Summary Check a single answer (practice mode only)
// @Tags Attempts
// @Accept json
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Param body body dto.CheckAnswerRequest true "Question and selected answer(s)"
// @Success 200 {object} dto.CheckAnswerResponse
// @Failure 409 {object} dto.ErrorResponse "Not a practice attempt"
// @Security BearerAuth
// @Router /attempts/{attempt_id}/check-answer [post]
func (c *AttemptController) CheckAnswer(ctx *gin.Context) {
	attemptID, ok := parseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	principal, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	var req dto.CheckAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.attemptService.CheckAnswer(attemptID, req.QuestionID, req.Answer.IDs, principal)
	if err != nil {
		writeServiceError(ctx, err, "Failed to check answer")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitAttempt godoc
// @Summary Submit answers for an exam and close the attempt
// @Description Grades every exam question; absent answers count as wrong. Closes the caller's open attempt or creates a terminal one when start was skipped.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param body body dto.SubmitExamRequest true "questionID -> answerID or [answerIDs]"
// @Success 200 {object} dto.SubmitExamResponse
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Exam has no questions"
// @Security BearerAuth
// @Router /exams/{exam_id}/submit [post]
func (c *AttemptController) SubmitAttempt(ctx *gin.Context) {
	examID, ok := parseIDParam(ctx, "exam_id")
	if !ok {
		return
	}
	principal, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	var req dto.SubmitExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	log.Info().Uint("examID", examID).Uint("userID", principal.ID).Int("answerCount", len(req.Answers)).Msg("Received exam submission")

	resp, err := c.attemptService.SubmitAttempt(examID, req.Answers, principal, middleware.ClientMetaFrom(ctx))
	if err != nil {
		writeServiceError(ctx, err, "Failed to submit attempt")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetMyAttempts godoc
// @Summary List the caller's attempts
// @Tags Attempts
// @Produce json
// @Success 200 {array} dto.AttemptSummaryDTO
// @Security BearerAuth
// @Router /my-attempts [get]
func (c *AttemptController) GetMyAttempts(ctx *gin.Context) {
	principal, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	attempts, err := c.attemptService.GetMyAttempts(principal)
	if err != nil {
		writeServiceError(ctx, err, "Failed to retrieve attempts")
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetAttempt godoc
// @Summary Get one of the caller's attempts by ID
// @Tags Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailDTO
// @Failure 401 {object} dto.ErrorResponse "Attempt belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Security BearerAuth
// @Router /attempts/{attempt_id} [get]
func (c *AttemptController) GetAttempt(ctx *gin.Context) {
	attemptID, ok := parseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	principal, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	attempt, err := c.attemptService.GetAttempt(attemptID, principal)
	if err != nil {
		writeServiceError(ctx, err, "Failed to retrieve attempt")
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// DeleteAttempt godoc
// @Summary Delete one of the caller's attempts
// @Tags Attempts
// @Param attempt_id path int true "Attempt ID"
// @Success 204
// @Failure 401 {object} dto.ErrorResponse "Attempt belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Security BearerAuth
// @Router /attempts/{attempt_id} [delete]
func (c *AttemptController) DeleteAttempt(ctx *gin.Context) {
	attemptID, ok := parseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	principal, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	if err := c.attemptService.DeleteAttempt(attemptID, principal); err != nil {
		writeServiceError(ctx, err, "Failed to delete attempt")
		return
	}
	ctx.Status(http.StatusNoContent)
}
