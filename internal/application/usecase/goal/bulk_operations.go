// Package goal contains goal-related use cases.
package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/domain/entity"
)

// BulkResult reports the outcome of one goal in a bulk operation.
type BulkResult struct {
	GoalID uuid.UUID
	Error  error
}

// BulkUpdateStatusInput represents the input for a bulk status change.
type BulkUpdateStatusInput struct {
	UserID  uuid.UUID
	GoalIDs []uuid.UUID
	Status  entity.GoalStatus
}

// BulkUpdateStatusOutput represents the per-goal outcome of a bulk status change.
type BulkUpdateStatusOutput struct {
	Results []BulkResult
}

// BulkUpdateStatusUseCase applies a status change to many goals. Each goal
// goes through the full single-goal path so the state machine, roll-up and
// notifications apply per goal; one failing goal does not stop the rest.
type BulkUpdateStatusUseCase struct {
	updateGoal *UpdateGoalUseCase
}

// NewBulkUpdateStatusUseCase creates a new BulkUpdateStatusUseCase instance.
func NewBulkUpdateStatusUseCase(updateGoal *UpdateGoalUseCase) *BulkUpdateStatusUseCase {
	return &BulkUpdateStatusUseCase{
		updateGoal: updateGoal,
	}
}

// Execute performs the bulk status change.
func (uc *BulkUpdateStatusUseCase) Execute(ctx context.Context, input BulkUpdateStatusInput) (*BulkUpdateStatusOutput, error) {
	results := make([]BulkResult, 0, len(input.GoalIDs))
	for _, goalID := range input.GoalIDs {
		status := input.Status
		_, err := uc.updateGoal.Execute(ctx, UpdateGoalInput{
			GoalID: goalID,
			UserID: input.UserID,
			Status: &status,
		})
		results = append(results, BulkResult{GoalID: goalID, Error: err})
	}
	return &BulkUpdateStatusOutput{Results: results}, nil
}

// BulkDeleteInput represents the input for a bulk deletion.
type BulkDeleteInput struct {
	UserID  uuid.UUID
	GoalIDs []uuid.UUID
}

// BulkDeleteOutput represents the per-goal outcome of a bulk deletion.
type BulkDeleteOutput struct {
	Results []BulkResult
}

// BulkDeleteUseCase deletes many goals, one failing goal does not stop the rest.
type BulkDeleteUseCase struct {
	deleteGoal *DeleteGoalUseCase
}

// NewBulkDeleteUseCase creates a new BulkDeleteUseCase instance.
func NewBulkDeleteUseCase(deleteGoal *DeleteGoalUseCase) *BulkDeleteUseCase {
	return &BulkDeleteUseCase{
		deleteGoal: deleteGoal,
	}
}

// Execute performs the bulk deletion.
func (uc *BulkDeleteUseCase) Execute(ctx context.Context, input BulkDeleteInput) (*BulkDeleteOutput, error) {
	results := make([]BulkResult, 0, len(input.GoalIDs))
	for _, goalID := range input.GoalIDs {
		_, err := uc.deleteGoal.Execute(ctx, DeleteGoalInput{
			GoalID: goalID,
			UserID: input.UserID,
		})
		results = append(results, BulkResult{GoalID: goalID, Error: err})
	}
	return &BulkDeleteOutput{Results: results}, nil
}
