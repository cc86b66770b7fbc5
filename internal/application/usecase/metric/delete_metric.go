package metric

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// DeleteMetricInput represents the input for metric deletion.
type DeleteMetricInput struct {
	UserID   uuid.UUID
	MetricID uuid.UUID
}

// DeleteMetricOutput represents the output of metric deletion.
type DeleteMetricOutput struct {
	Message string
}

// DeleteMetricUseCase handles metric deletion logic.
type DeleteMetricUseCase struct {
	metricRepo adapter.MetricRepository
	goalRepo   adapter.GoalRepository
}

// NewDeleteMetricUseCase creates a new DeleteMetricUseCase instance.
func NewDeleteMetricUseCase(metricRepo adapter.MetricRepository, goalRepo adapter.GoalRepository) *DeleteMetricUseCase {
	return &DeleteMetricUseCase{
		metricRepo: metricRepo,
		goalRepo:   goalRepo,
	}
}

// Execute performs the metric deletion.
func (uc *DeleteMetricUseCase) Execute(ctx context.Context, input DeleteMetricInput) (*DeleteMetricOutput, error) {
	metric, err := uc.metricRepo.FindByID(ctx, input.MetricID)
	if err != nil {
		return nil, domainerror.NewMetricError(
			domainerror.ErrCodeMetricNotFound,
			"metric not found",
			err,
		)
	}

	if _, err := uc.goalRepo.FindByIDAndOwner(ctx, metric.GoalID, input.UserID); err != nil {
		return nil, domainerror.NewMetricError(
			domainerror.ErrCodeMetricNotFound,
			"metric not found",
			err,
		)
	}

	if err := uc.metricRepo.Delete(ctx, input.MetricID); err != nil {
		return nil, fmt.Errorf("failed to delete metric: %w", err)
	}
	return &DeleteMetricOutput{Message: "Metric deleted"}, nil
}
