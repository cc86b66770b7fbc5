package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goalflow/backend/internal/application/usecase/notification"
	domainerror "github.com/goalflow/backend/internal/domain/error"
	"github.com/goalflow/backend/internal/integration/entrypoint/dto"
)

// NotificationController handles notification preference and telegram link
// endpoints.
type NotificationController struct {
	getPrefsUseCase    *notification.GetPreferencesUseCase
	updatePrefsUseCase *notification.UpdatePreferencesUseCase
	issueLinkUseCase   *notification.IssueLinkCodeUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	getPrefsUseCase *notification.GetPreferencesUseCase,
	updatePrefsUseCase *notification.UpdatePreferencesUseCase,
	issueLinkUseCase *notification.IssueLinkCodeUseCase,
) *NotificationController {
	return &NotificationController{
		getPrefsUseCase:    getPrefsUseCase,
		updatePrefsUseCase: updatePrefsUseCase,
		issueLinkUseCase:   issueLinkUseCase,
	}
}

// GetPreferences handles GET /notifications/preferences requests.
func (c *NotificationController) GetPreferences(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.getPrefsUseCase.Execute(ctx.Request.Context(), notification.GetPreferencesInput{UserID: userID})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToPreferencesResponse(output.Preferences)))
}

// UpdatePreferences handles PATCH /notifications/preferences requests.
func (c *NotificationController) UpdatePreferences(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeNotificationQueueFailed),
		})
		return
	}

	output, err := c.updatePrefsUseCase.Execute(ctx.Request.Context(), notification.UpdatePreferencesInput{
		UserID:                   userID,
		EmailEnabled:             req.EmailEnabled,
		TelegramEnabled:          req.TelegramEnabled,
		StatusChangeEmail:        req.StatusChangeEmail,
		StatusChangeTelegram:     req.StatusChangeTelegram,
		ProgressUpdateEmail:      req.ProgressUpdateEmail,
		ProgressUpdateTelegram:   req.ProgressUpdateTelegram,
		DeadlineReminderEmail:    req.DeadlineReminderEmail,
		DeadlineReminderTelegram: req.DeadlineReminderTelegram,
		DeadlineReminderDays:     req.DeadlineReminderDays,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToPreferencesResponse(output.Preferences)))
}

// IssueTelegramLink handles POST /telegram/link requests.
func (c *NotificationController) IssueTelegramLink(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.issueLinkUseCase.Execute(ctx.Request.Context(), notification.IssueLinkCodeInput{UserID: userID})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.TelegramLinkResponse{
		Code:             output.Code,
		ExpiresInSeconds: int(output.ExpiresIn.Seconds()),
		Instructions:     "Send /link " + output.Code + " to the bot within the next few minutes",
	}))
}
