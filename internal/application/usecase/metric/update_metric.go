package metric

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/activity"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// UpdateMetricInput represents the input for metric updates. Nil fields are
// left unchanged.
type UpdateMetricInput struct {
	UserID       uuid.UUID
	MetricID     uuid.UUID
	Name         *string
	CurrentValue *decimal.Decimal
	TargetValue  *decimal.Decimal
	Unit         *string
}

// UpdateMetricOutput represents the output of metric updates.
type UpdateMetricOutput struct {
	Metric *entity.Metric
}

// UpdateMetricUseCase handles metric update logic.
type UpdateMetricUseCase struct {
	metricRepo adapter.MetricRepository
	goalRepo   adapter.GoalRepository
	recorder   *activity.Recorder
}

// NewUpdateMetricUseCase creates a new UpdateMetricUseCase instance.
func NewUpdateMetricUseCase(metricRepo adapter.MetricRepository, goalRepo adapter.GoalRepository, recorder *activity.Recorder) *UpdateMetricUseCase {
	return &UpdateMetricUseCase{
		metricRepo: metricRepo,
		goalRepo:   goalRepo,
		recorder:   recorder,
	}
}

// Execute performs the metric update.
func (uc *UpdateMetricUseCase) Execute(ctx context.Context, input UpdateMetricInput) (*UpdateMetricOutput, error) {
	metric, err := uc.metricRepo.FindByID(ctx, input.MetricID)
	if err != nil {
		return nil, domainerror.NewMetricError(
			domainerror.ErrCodeMetricNotFound,
			"metric not found",
			err,
		)
	}

	goal, err := uc.goalRepo.FindByIDAndOwner(ctx, metric.GoalID, input.UserID)
	if err != nil {
		return nil, domainerror.NewMetricError(
			domainerror.ErrCodeMetricNotFound,
			"metric not found",
			err,
		)
	}

	oldValue := metric.CurrentValue

	if input.Name != nil {
		metric.Name = *input.Name
	}
	if input.CurrentValue != nil {
		if err := validateValues(*input.CurrentValue); err != nil {
			return nil, err
		}
		metric.CurrentValue = *input.CurrentValue
	}
	if input.TargetValue != nil {
		if err := validateValues(*input.TargetValue); err != nil {
			return nil, err
		}
		metric.TargetValue = *input.TargetValue
	}
	if input.Unit != nil {
		metric.Unit = *input.Unit
	}
	metric.UpdatedAt = time.Now().UTC()

	if err := uc.metricRepo.Update(ctx, metric); err != nil {
		return nil, fmt.Errorf("failed to update metric: %w", err)
	}

	if input.CurrentValue != nil && !oldValue.Equal(metric.CurrentValue) {
		uc.recorder.Record(ctx, entity.ActivityMetricUpdated,
			fmt.Sprintf("Updated metric %q on goal %q", metric.Name, goal.Title),
			input.UserID, goal.WorkspaceID, &goal.ID,
			map[string]interface{}{
				"metric_id": metric.ID.String(),
				"old_value": oldValue.String(),
				"new_value": metric.CurrentValue.String(),
			})
	}

	return &UpdateMetricOutput{Metric: metric}, nil
}
