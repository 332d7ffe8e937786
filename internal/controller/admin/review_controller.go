package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Nattie-Nkosi/certsim/internal/dto"
	"github.com/Nattie-Nkosi/certsim/internal/service"
)

type ReviewController struct {
	reviewService service.AdminReviewService
	auditService  service.AuditService
}

func NewReviewController(reviewService service.AdminReviewService, auditService service.AuditService) *ReviewController {
	return &ReviewController{reviewService: reviewService, auditService: auditService}
}

// ListFlaggedAttempts godoc
// @Summary (Admin) List attempts flagged for integrity violations
// @Tags Admin - Review
// @Produce json
// @Success 200 {array} dto.FlaggedAttemptDTO
// @Security BearerAuth
// @Router /admin/flagged-attempts [get]
func (c *ReviewController) ListFlaggedAttempts(ctx *gin.Context) {
	attempts, err := c.reviewService.ListFlaggedAttempts()
	if err != nil {
		writeAdminError(ctx, err, "Failed to retrieve flagged attempts")
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// ListAuditLogs godoc
// @Summary (Admin) Page through audit log entries
// @Tags Admin - Review
// @Produce json
// @Param action query string false "Filter by action"
// @Param user_id query int false "Filter by user"
// @Param limit query int false "Page size (max 200, default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.AuditLogDTO
// @Security BearerAuth
// @Router /admin/audit-logs [get]
func (c *ReviewController) ListAuditLogs(ctx *gin.Context) {
	var userID *uint
	if raw := ctx.Query("user_id"); raw != "" {
		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user_id format"})
			return
		}
		id := uint(value)
		userID = &id
	}
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	entries, err := c.auditService.List(ctx.Query("action"), userID, limit, offset)
	if err != nil {
		writeAdminError(ctx, err, "Failed to retrieve audit logs")
		return
	}
	ctx.JSON(http.StatusOK, entries)
}
