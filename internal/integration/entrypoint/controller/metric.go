package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/goalflow/backend/internal/application/usecase/metric"
	domainerror "github.com/goalflow/backend/internal/domain/error"
	"github.com/goalflow/backend/internal/integration/entrypoint/dto"
)

// MetricController handles metric endpoints.
type MetricController struct {
	createUseCase *metric.CreateMetricUseCase
	listUseCase   *metric.ListMetricsUseCase
	updateUseCase *metric.UpdateMetricUseCase
	deleteUseCase *metric.DeleteMetricUseCase
}

// NewMetricController creates a new metric controller instance.
func NewMetricController(
	createUseCase *metric.CreateMetricUseCase,
	listUseCase *metric.ListMetricsUseCase,
	updateUseCase *metric.UpdateMetricUseCase,
	deleteUseCase *metric.DeleteMetricUseCase,
) *MetricController {
	return &MetricController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /goals/:id/metrics requests.
func (c *MetricController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	goalID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateMetricRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingMetricFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), metric.CreateMetricInput{
		UserID:       userID,
		GoalID:       goalID,
		Name:         req.Name,
		CurrentValue: decimal.NewFromFloat(req.CurrentValue),
		TargetValue:  decimal.NewFromFloat(req.TargetValue),
		Unit:         req.Unit,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.ToMetricResponse(output.Metric)))
}

// List handles GET /goals/:id/metrics requests.
func (c *MetricController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	goalID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), metric.ListMetricsInput{
		UserID: userID,
		GoalID: goalID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToMetricListResponse(output.Metrics)))
}

// Update handles PATCH /metrics/:id requests.
func (c *MetricController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	metricID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMetricRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingMetricFields),
		})
		return
	}

	input := metric.UpdateMetricInput{
		UserID:   userID,
		MetricID: metricID,
		Name:     req.Name,
		Unit:     req.Unit,
	}
	if req.CurrentValue != nil {
		value := decimal.NewFromFloat(*req.CurrentValue)
		input.CurrentValue = &value
	}
	if req.TargetValue != nil {
		value := decimal.NewFromFloat(*req.TargetValue)
		input.TargetValue = &value
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToMetricResponse(output.Metric)))
}

// Delete handles DELETE /metrics/:id requests.
func (c *MetricController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	metricID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), metric.DeleteMetricInput{
		UserID:   userID,
		MetricID: metricID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.MessageResponse{Message: output.Message}))
}
