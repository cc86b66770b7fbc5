package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goalflow/backend/internal/application/usecase/stats"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
	"github.com/goalflow/backend/internal/integration/entrypoint/dto"
)

// StatsController handles dashboard and analytics endpoints.
type StatsController struct {
	dashboardUseCase *stats.GetDashboardUseCase
	analyticsUseCase *stats.GetAnalyticsUseCase
	teamStatsUseCase *stats.GetTeamStatsUseCase
}

// NewStatsController creates a new stats controller instance.
func NewStatsController(
	dashboardUseCase *stats.GetDashboardUseCase,
	analyticsUseCase *stats.GetAnalyticsUseCase,
	teamStatsUseCase *stats.GetTeamStatsUseCase,
) *StatsController {
	return &StatsController{
		dashboardUseCase: dashboardUseCase,
		analyticsUseCase: analyticsUseCase,
		teamStatsUseCase: teamStatsUseCase,
	}
}

// Dashboard handles GET /stats requests.
func (c *StatsController) Dashboard(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	workspaceID, ok := parseWorkspaceQuery(ctx)
	if !ok {
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), stats.GetDashboardInput{
		UserID:      userID,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToDashboardResponse(output)))
}

// Analytics handles GET /analytics requests. startDate, endDate and type are
// optional query filters.
func (c *StatsController) Analytics(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	workspaceID, ok := parseWorkspaceQuery(ctx)
	if !ok {
		return
	}

	input := stats.GetAnalyticsInput{
		UserID:      userID,
		WorkspaceID: workspaceID,
	}

	startDate, ok := parseDateQuery(ctx, "startDate")
	if !ok {
		return
	}
	input.StartDate = startDate

	endDate, ok := parseDateQuery(ctx, "endDate")
	if !ok {
		return
	}
	input.EndDate = endDate

	if typeParam := ctx.Query("type"); typeParam != "" {
		goalType := entity.GoalType(typeParam)
		input.Type = &goalType
	}

	output, err := c.analyticsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToAnalyticsResponse(output)))
}

// TeamStats handles GET /analytics/team requests.
func (c *StatsController) TeamStats(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	workspaceID, ok := parseWorkspaceQuery(ctx)
	if !ok {
		return
	}

	output, err := c.teamStatsUseCase.Execute(ctx.Request.Context(), stats.GetTeamStatsInput{
		UserID:      userID,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToTeamStatsResponse(output)))
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter. Reports false
// after writing a 400 response when the value is present but malformed.
func parseDateQuery(ctx *gin.Context, name string) (*time.Time, bool) {
	value := ctx.Query(name)
	if value == "" {
		return nil, true
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + ", expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidGoalDates),
		})
		return nil, false
	}
	return &parsed, true
}
