package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goalflow/backend/internal/application/usecase/notification"
	domainerror "github.com/goalflow/backend/internal/domain/error"
	"github.com/goalflow/backend/internal/integration/entrypoint/dto"
)

// CronController handles scheduler-triggered endpoints.
type CronController struct {
	sweepUseCase *notification.DeadlineSweepUseCase
	secret       string
}

// NewCronController creates a new cron controller instance.
func NewCronController(sweepUseCase *notification.DeadlineSweepUseCase, secret string) *CronController {
	return &CronController{
		sweepUseCase: sweepUseCase,
		secret:       secret,
	}
}

// DeadlineReminders handles GET /cron/deadline-reminders requests. The
// endpoint is authenticated with a shared secret instead of a user token.
func (c *CronController) DeadlineReminders(ctx *gin.Context) {
	token := strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ")
	if c.secret == "" || token != c.secret {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Invalid cron secret",
			Code:  string(domainerror.ErrCodeInvalidToken),
		})
		return
	}

	output, err := c.sweepUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.CronSweepResponse{
		GoalsChecked:  output.GoalsChecked,
		RemindersSent: output.RemindersSent,
	}))
}
