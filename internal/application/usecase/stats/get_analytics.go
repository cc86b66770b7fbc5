package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/workspace"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// GetAnalyticsInput represents the input for the analytics summary. Nil
// fields leave the goal set unfiltered.
type GetAnalyticsInput struct {
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	Type        *entity.GoalType
}

// GetAnalyticsOutput represents the analytics summary.
type GetAnalyticsOutput struct {
	CompletionByMonth     []MonthlyRate
	TypeDistribution      []TypeCount
	ProgressTrend         []WeeklyProgress
	AverageCompletionDays int
	OnTimeRate            int
}

// GetAnalyticsUseCase computes the caller's goal analytics within a
// workspace.
type GetAnalyticsUseCase struct {
	goalRepo adapter.GoalRepository
	access   *workspace.AccessChecker
}

// NewGetAnalyticsUseCase creates a new GetAnalyticsUseCase instance.
func NewGetAnalyticsUseCase(goalRepo adapter.GoalRepository, access *workspace.AccessChecker) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{
		goalRepo: goalRepo,
		access:   access,
	}
}

// Execute computes the analytics summary.
func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, input GetAnalyticsInput) (*GetAnalyticsOutput, error) {
	if _, err := uc.access.CheckAccess(ctx, input.WorkspaceID, input.UserID, entity.WorkspaceRoleViewer); err != nil {
		return nil, err
	}

	filter := adapter.GoalFilter{
		WorkspaceID: input.WorkspaceID,
		OwnerID:     &input.UserID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}
	if input.Type != nil {
		if !entity.IsValidGoalType(*input.Type) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalType,
				"invalid goal type",
				domainerror.ErrInvalidGoalType,
			)
		}
		filter.Types = []entity.GoalType{*input.Type}
	}

	goals, err := uc.goalRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	return &GetAnalyticsOutput{
		CompletionByMonth:     completionRateByMonth(goals),
		TypeDistribution:      typeDistribution(goals),
		ProgressTrend:         progressTrendByWeek(goals),
		AverageCompletionDays: averageCompletionDays(goals),
		OnTimeRate:            onTimeRate(goals),
	}, nil
}
