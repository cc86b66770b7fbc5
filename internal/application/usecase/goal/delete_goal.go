// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/activity"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// DeleteGoalOutput represents the output of goal deletion.
type DeleteGoalOutput struct {
	Message string
}

// DeleteGoalUseCase handles goal deletion logic. Children of a deleted goal
// become roots: their parent reference is cleared, not cascaded.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
	recorder *activity.Recorder
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository, recorder *activity.Recorder) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
		recorder: recorder,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) (*DeleteGoalOutput, error) {
	goal, err := uc.goalRepo.FindByIDAndOwner(ctx, input.GoalID, input.UserID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			err,
		)
	}

	// Detach children before removing the goal so they survive as roots.
	children, err := uc.goalRepo.FindChildren(ctx, goal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load children: %w", err)
	}
	for _, child := range children {
		child.ParentID = nil
		if err := uc.goalRepo.Update(ctx, child); err != nil {
			return nil, fmt.Errorf("failed to detach child goal: %w", err)
		}
	}

	if err := uc.goalRepo.Delete(ctx, goal.ID); err != nil {
		return nil, fmt.Errorf("failed to delete goal: %w", err)
	}

	// The deleted goal no longer contributes to its ancestors' averages.
	rollUpProgress(ctx, uc.goalRepo, goal.ParentID)

	uc.recorder.Record(ctx, entity.ActivityGoalDeleted,
		fmt.Sprintf("deleted goal %q", goal.Title),
		input.UserID, goal.WorkspaceID, nil,
		map[string]interface{}{"goal_id": goal.ID.String()},
	)

	return &DeleteGoalOutput{Message: "Goal deleted"}, nil
}
