// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/activity"
	"github.com/goalflow/backend/internal/application/usecase/workspace"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	OwnerID     uuid.UUID
	WorkspaceID uuid.UUID
	Title       string
	Description string
	Type        entity.GoalType
	StartDate   time.Time
	EndDate     time.Time
	ParentID    *uuid.UUID
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	access   *workspace.AccessChecker
	recorder *activity.Recorder
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, access *workspace.AccessChecker, recorder *activity.Recorder) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		access:   access,
		recorder: recorder,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if _, err := uc.access.CheckAccess(ctx, input.WorkspaceID, input.OwnerID, entity.WorkspaceRoleMember); err != nil {
		return nil, err
	}

	if !entity.IsValidGoalType(input.Type) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"invalid goal type",
			domainerror.ErrInvalidGoalType,
		)
	}

	goal := entity.NewGoal(input.Title, input.Description, input.Type, input.StartDate, input.EndDate, input.OwnerID, input.WorkspaceID, input.ParentID)

	if err := validateDates(goal); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		if err := validateParent(ctx, uc.goalRepo, uuid.Nil, input.OwnerID, input.WorkspaceID, *input.ParentID); err != nil {
			return nil, err
		}
	}

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	// A new child pulls its ancestors' averages down immediately.
	rollUpProgress(ctx, uc.goalRepo, goal.ParentID)

	uc.recorder.Record(ctx, entity.ActivityGoalCreated,
		fmt.Sprintf("created goal %q", goal.Title),
		input.OwnerID, input.WorkspaceID, &goal.ID,
		map[string]interface{}{"type": string(goal.Type)},
	)

	return &CreateGoalOutput{Goal: goal}, nil
}
