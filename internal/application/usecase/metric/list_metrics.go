package metric

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// ListMetricsInput represents the input for listing a goal's metrics.
type ListMetricsInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// ListMetricsOutput represents the output of listing a goal's metrics.
type ListMetricsOutput struct {
	Metrics []*entity.Metric
}

// ListMetricsUseCase lists the metrics attached to a goal.
type ListMetricsUseCase struct {
	metricRepo adapter.MetricRepository
	goalRepo   adapter.GoalRepository
}

// NewListMetricsUseCase creates a new ListMetricsUseCase instance.
func NewListMetricsUseCase(metricRepo adapter.MetricRepository, goalRepo adapter.GoalRepository) *ListMetricsUseCase {
	return &ListMetricsUseCase{
		metricRepo: metricRepo,
		goalRepo:   goalRepo,
	}
}

// Execute lists the goal's metrics.
func (uc *ListMetricsUseCase) Execute(ctx context.Context, input ListMetricsInput) (*ListMetricsOutput, error) {
	if _, err := uc.goalRepo.FindByIDAndOwner(ctx, input.GoalID, input.UserID); err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			err,
		)
	}

	metrics, err := uc.metricRepo.FindByGoalID(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}
	return &ListMetricsOutput{Metrics: metrics}, nil
}
