// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/workspace"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
	Statuses    []entity.GoalStatus
	Types       []entity.GoalType
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*entity.Goal
}

// ListGoalsUseCase handles listing the caller's goals in a workspace.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
	access   *workspace.AccessChecker
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository, access *workspace.AccessChecker) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
		access:   access,
	}
}

// Execute lists the caller's goals, optionally filtered by status and type.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	if _, err := uc.access.CheckAccess(ctx, input.WorkspaceID, input.UserID, entity.WorkspaceRoleViewer); err != nil {
		return nil, err
	}

	for _, s := range input.Statuses {
		if !entity.IsValidGoalStatus(s) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalStatus,
				"invalid goal status filter",
				domainerror.ErrInvalidGoalStatus,
			)
		}
	}
	for _, t := range input.Types {
		if !entity.IsValidGoalType(t) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalType,
				"invalid goal type filter",
				domainerror.ErrInvalidGoalType,
			)
		}
	}

	goals, err := uc.goalRepo.FindByFilter(ctx, adapter.GoalFilter{
		WorkspaceID: input.WorkspaceID,
		OwnerID:     &input.UserID,
		Statuses:    input.Statuses,
		Types:       input.Types,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	return &ListGoalsOutput{Goals: goals}, nil
}
