// Package metric contains metric-related use cases.
package metric

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// CreateMetricInput represents the input for metric creation.
type CreateMetricInput struct {
	UserID       uuid.UUID
	GoalID       uuid.UUID
	Name         string
	CurrentValue decimal.Decimal
	TargetValue  decimal.Decimal
	Unit         string
}

// CreateMetricOutput represents the output of metric creation.
type CreateMetricOutput struct {
	Metric *entity.Metric
}

// CreateMetricUseCase handles metric creation logic.
type CreateMetricUseCase struct {
	metricRepo adapter.MetricRepository
	goalRepo   adapter.GoalRepository
}

// NewCreateMetricUseCase creates a new CreateMetricUseCase instance.
func NewCreateMetricUseCase(metricRepo adapter.MetricRepository, goalRepo adapter.GoalRepository) *CreateMetricUseCase {
	return &CreateMetricUseCase{
		metricRepo: metricRepo,
		goalRepo:   goalRepo,
	}
}

// Execute performs the metric creation.
func (uc *CreateMetricUseCase) Execute(ctx context.Context, input CreateMetricInput) (*CreateMetricOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewMetricError(
			domainerror.ErrCodeMissingMetricFields,
			"metric name is required",
			nil,
		)
	}
	if err := validateValues(input.CurrentValue, input.TargetValue); err != nil {
		return nil, err
	}

	// Metrics can only be attached to goals the user owns.
	if _, err := uc.goalRepo.FindByIDAndOwner(ctx, input.GoalID, input.UserID); err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			err,
		)
	}

	metric := entity.NewMetric(input.Name, input.CurrentValue, input.TargetValue, input.Unit, input.GoalID)

	if err := uc.metricRepo.Create(ctx, metric); err != nil {
		return nil, fmt.Errorf("failed to create metric: %w", err)
	}

	return &CreateMetricOutput{Metric: metric}, nil
}

func validateValues(values ...decimal.Decimal) error {
	for _, v := range values {
		if v.IsNegative() {
			return domainerror.NewMetricError(
				domainerror.ErrCodeInvalidMetricValue,
				"metric values must not be negative",
				domainerror.ErrInvalidMetricValue,
			)
		}
	}
	return nil
}
