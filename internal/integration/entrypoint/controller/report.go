package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/usecase/report"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
	"github.com/goalflow/backend/internal/integration/entrypoint/dto"
)

// ReportController handles report generation endpoints.
type ReportController struct {
	generateUseCase *report.GenerateReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(generateUseCase *report.GenerateReportUseCase) *ReportController {
	return &ReportController{generateUseCase: generateUseCase}
}

// Generate handles POST /reports requests.
func (c *ReportController) Generate(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.GenerateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	workspaceID, _ := uuid.Parse(req.WorkspaceID)
	input := report.GenerateReportInput{
		UserID:         userID,
		WorkspaceID:    workspaceID,
		GroupBy:        report.GroupBy(req.GroupBy),
		IncludeMetrics: req.IncludeMetrics,
	}

	if req.StartDate != nil {
		parsed, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidGoalDates),
			})
			return
		}
		input.StartDate = &parsed
	}
	if req.EndDate != nil {
		parsed, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidGoalDates),
			})
			return
		}
		input.EndDate = &parsed
	}
	for _, status := range req.Statuses {
		input.Statuses = append(input.Statuses, entity.GoalStatus(status))
	}
	for _, goalType := range req.Types {
		input.Types = append(input.Types, entity.GoalType(goalType))
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToReportResponse(output)))
}
