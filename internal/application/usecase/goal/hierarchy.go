// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// validateParent checks a parent assignment for the goal identified by
// goalID (uuid.Nil when the goal does not exist yet). The parent must exist,
// belong to the same owner and workspace, be able to carry children, and the
// assignment must not make the goal its own ancestor.
func validateParent(ctx context.Context, goalRepo adapter.GoalRepository, goalID uuid.UUID, ownerID, workspaceID, parentID uuid.UUID) error {
	if goalID != uuid.Nil && parentID == goalID {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalSelfParent,
			"goal cannot be its own parent",
			domainerror.ErrGoalSelfParent,
		)
	}

	parent, err := goalRepo.FindByIDAndOwner(ctx, parentID, ownerID)
	if err != nil {
		return domainerror.NewGoalError(
			domainerror.ErrCodeParentGoalNotFound,
			"parent goal not found",
			domainerror.ErrParentGoalNotFound,
		)
	}
	if parent.WorkspaceID != workspaceID {
		return domainerror.NewGoalError(
			domainerror.ErrCodeParentGoalNotFound,
			"parent goal not found",
			domainerror.ErrParentGoalNotFound,
		)
	}

	if !parent.Type.CanParent() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeWeeklyGoalCannotParent,
			"weekly goals cannot have child goals",
			domainerror.ErrWeeklyGoalCannotParent,
		)
	}

	if goalID == uuid.Nil {
		return nil
	}

	// Walk up from the parent. Reaching the goal means the assignment would
	// close a cycle. The visited set guards against corrupted chains.
	visited := map[uuid.UUID]bool{}
	current := parent
	for {
		if current.ID == goalID {
			return domainerror.NewGoalError(
				domainerror.ErrCodeGoalHierarchyCycle,
				"assignment would create a cycle in the goal hierarchy",
				domainerror.ErrGoalHierarchyCycle,
			)
		}
		if visited[current.ID] {
			return domainerror.NewGoalError(
				domainerror.ErrCodeGoalHierarchyCycle,
				"goal hierarchy contains a cycle",
				domainerror.ErrGoalHierarchyCycle,
			)
		}
		visited[current.ID] = true

		if current.ParentID == nil {
			return nil
		}
		next, err := goalRepo.FindByID(ctx, *current.ParentID)
		if err != nil {
			return fmt.Errorf("failed to walk goal hierarchy: %w", err)
		}
		current = next
	}
}

// validateDates checks that the end date is strictly after the start date.
func validateDates(goal *entity.Goal) error {
	if !goal.EndDate.After(goal.StartDate) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalDates,
			"end date must be after start date",
			domainerror.ErrInvalidGoalDates,
		)
	}
	return nil
}
