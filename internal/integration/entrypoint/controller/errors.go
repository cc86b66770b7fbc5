package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/goalflow/backend/internal/domain/error"
	"github.com/goalflow/backend/internal/integration/entrypoint/dto"
	"github.com/goalflow/backend/internal/integration/entrypoint/middleware"
)

// respondDomainError translates coded domain errors to HTTP responses. A
// workspace-scoped operation can fail with errors from several domains, so
// the mapping lives in one place instead of per controller.
func respondDomainError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(goalStatusCode(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	var wsErr *domainerror.WorkspaceError
	if errors.As(err, &wsErr) {
		ctx.JSON(workspaceStatusCode(wsErr.Code), dto.ErrorResponse{
			Error: wsErr.Message,
			Code:  string(wsErr.Code),
		})
		return
	}

	var metricErr *domainerror.MetricError
	if errors.As(err, &metricErr) {
		ctx.JSON(metricStatusCode(metricErr.Code), dto.ErrorResponse{
			Error: metricErr.Message,
			Code:  string(metricErr.Code),
		})
		return
	}

	var tplErr *domainerror.TemplateError
	if errors.As(err, &tplErr) {
		ctx.JSON(templateStatusCode(tplErr.Code), dto.ErrorResponse{
			Error: tplErr.Message,
			Code:  string(tplErr.Code),
		})
		return
	}

	var ntfErr *domainerror.NotificationError
	if errors.As(err, &ntfErr) {
		ctx.JSON(notificationStatusCode(ntfErr.Code), dto.ErrorResponse{
			Error: ntfErr.Message,
			Code:  string(ntfErr.Code),
		})
		return
	}

	slog.Error("Unhandled error", "error", err, "path", ctx.FullPath())
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func goalStatusCode(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound,
		domainerror.ErrCodeParentGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidGoalDates,
		domainerror.ErrCodeInvalidGoalProgress,
		domainerror.ErrCodeInvalidGoalStatus,
		domainerror.ErrCodeInvalidGoalType,
		domainerror.ErrCodeMissingGoalFields,
		domainerror.ErrCodeWeeklyGoalCannotParent,
		domainerror.ErrCodeGoalSelfParent,
		domainerror.ErrCodeGoalHierarchyCycle,
		domainerror.ErrCodeInvalidStatusTransition:
		return http.StatusBadRequest
	case domainerror.ErrCodeUnauthorizedGoalAccess:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func workspaceStatusCode(code domainerror.WorkspaceErrorCode) int {
	switch code {
	case domainerror.ErrCodeWorkspaceNotFound,
		domainerror.ErrCodeMemberNotFound,
		domainerror.ErrCodeInviteNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidWorkspaceRole,
		domainerror.ErrCodeInvalidInviteEmail,
		domainerror.ErrCodeMissingWorkspaceFields,
		domainerror.ErrCodeInviteExpired,
		domainerror.ErrCodeCannotInviteSelf:
		return http.StatusBadRequest
	case domainerror.ErrCodeUserAlreadyMember,
		domainerror.ErrCodeInviteAlreadySent,
		domainerror.ErrCodeInviteAlreadyAccepted:
		return http.StatusConflict
	case domainerror.ErrCodeWorkspaceAccessDenied,
		domainerror.ErrCodeInsufficientRole,
		domainerror.ErrCodeCannotRemoveOwner,
		domainerror.ErrCodeInviteEmailMismatch:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func metricStatusCode(code domainerror.MetricErrorCode) int {
	switch code {
	case domainerror.ErrCodeMetricNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidMetricValue,
		domainerror.ErrCodeMissingMetricFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func templateStatusCode(code domainerror.TemplateErrorCode) int {
	switch code {
	case domainerror.ErrCodeTemplateNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingTemplateFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeTemplateAccessDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func notificationStatusCode(code domainerror.NotificationErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidLinkCode,
		domainerror.ErrCodeTelegramNotLinked:
		return http.StatusBadRequest
	case domainerror.ErrCodeTelegramLinkTaken:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// requireUserID extracts the authenticated user or answers 401.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	id, found := middleware.GetUserIDFromContext(ctx)
	if !found {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return id, false
	}
	return id, true
}

// parseUUIDParam parses a path parameter as a UUID or answers 400.
func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " parameter",
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseWorkspaceQuery parses the workspaceId query parameter or answers 400.
func parseWorkspaceQuery(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Query("workspaceId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Missing or invalid workspaceId parameter",
		})
		return uuid.Nil, false
	}
	return id, true
}
