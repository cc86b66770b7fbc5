package stats

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/workspace"
	"github.com/goalflow/backend/internal/domain/entity"
)

const recentGoalLimit = 5

// GetDashboardInput represents the input for the dashboard summary.
type GetDashboardInput struct {
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
}

// GetDashboardOutput represents the dashboard summary.
type GetDashboardOutput struct {
	Counts      StatusCounts
	RecentGoals []*entity.Goal
}

// GetDashboardUseCase computes the caller's dashboard counters within a
// workspace.
type GetDashboardUseCase struct {
	goalRepo adapter.GoalRepository
	access   *workspace.AccessChecker
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(goalRepo adapter.GoalRepository, access *workspace.AccessChecker) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		goalRepo: goalRepo,
		access:   access,
	}
}

// Execute computes the dashboard summary.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	if _, err := uc.access.CheckAccess(ctx, input.WorkspaceID, input.UserID, entity.WorkspaceRoleViewer); err != nil {
		return nil, err
	}

	goals, err := uc.goalRepo.FindByOwnerAndWorkspace(ctx, input.UserID, input.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	return &GetDashboardOutput{
		Counts:      countByStatus(goals),
		RecentGoals: recentGoals(goals, recentGoalLimit),
	}, nil
}
