// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
)

// rollUpProgress recomputes the progress of the goal identified by parentID
// as the rounded mean of its direct children, then walks up the chain doing
// the same for each ancestor. Each write is a single atomic progress update.
// Roll-up is best effort: a failing level is logged and stops the walk, the
// triggering operation still succeeds.
func rollUpProgress(ctx context.Context, goalRepo adapter.GoalRepository, parentID *uuid.UUID) {
	for parentID != nil {
		parent, err := goalRepo.FindByID(ctx, *parentID)
		if err != nil {
			slog.Error("Progress roll-up failed to load goal", "error", err, "goal_id", *parentID)
			return
		}

		children, err := goalRepo.FindChildren(ctx, parent.ID)
		if err != nil {
			slog.Error("Progress roll-up failed to load children", "error", err, "goal_id", parent.ID)
			return
		}

		if len(children) > 0 {
			sum := 0
			for _, child := range children {
				sum += child.Progress
			}
			progress := int(math.Round(float64(sum) / float64(len(children))))

			if progress != parent.Progress {
				if err := goalRepo.UpdateProgress(ctx, parent.ID, progress); err != nil {
					slog.Error("Progress roll-up failed to update goal", "error", err, "goal_id", parent.ID)
					return
				}
			}
		}

		parentID = parent.ParentID
	}
}
