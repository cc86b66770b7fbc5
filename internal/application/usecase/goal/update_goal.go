// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/activity"
	"github.com/goalflow/backend/internal/application/usecase/notification"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal updates. Nil pointers leave
// the corresponding field untouched. ParentID uses a double pointer so a
// request can distinguish "keep parent" from "detach from parent".
type UpdateGoalInput struct {
	GoalID      uuid.UUID
	UserID      uuid.UUID
	Title       *string
	Description *string
	Status      *entity.GoalStatus
	Progress    *int
	StartDate   *time.Time
	EndDate     *time.Time
	ParentID    **uuid.UUID
}

// UpdateGoalOutput represents the output of a goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic: field changes, the status
// state machine, progress roll-up and notification dispatch.
type UpdateGoalUseCase struct {
	goalRepo   adapter.GoalRepository
	dispatcher *notification.Dispatcher
	recorder   *activity.Recorder
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, dispatcher *notification.Dispatcher, recorder *activity.Recorder) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo:   goalRepo,
		dispatcher: dispatcher,
		recorder:   recorder,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.goalRepo.FindByIDAndOwner(ctx, input.GoalID, input.UserID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			err,
		)
	}

	oldStatus := goal.Status
	oldProgress := goal.Progress
	oldParentID := goal.ParentID

	if input.Title != nil {
		goal.Title = *input.Title
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.StartDate != nil {
		goal.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		goal.EndDate = *input.EndDate
	}
	if err := validateDates(goal); err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !entity.IsValidGoalStatus(*input.Status) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalStatus,
				"invalid goal status",
				domainerror.ErrInvalidGoalStatus,
			)
		}
		if !oldStatus.CanTransitionTo(*input.Status) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidStatusTransition,
				fmt.Sprintf("cannot transition from %s to %s", oldStatus, *input.Status),
				domainerror.ErrInvalidStatusTransition,
			)
		}
		goal.Status = *input.Status
	}

	if input.Progress != nil {
		if *input.Progress < 0 || *input.Progress > 100 {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalProgress,
				"progress must be between 0 and 100",
				domainerror.ErrInvalidGoalProgress,
			)
		}
		goal.Progress = *input.Progress
	} else if goal.Status == entity.GoalStatusCompleted && oldStatus != entity.GoalStatusCompleted {
		// Completing a goal without an explicit progress value means done.
		goal.Progress = 100
	}

	if input.ParentID != nil {
		newParent := *input.ParentID
		if newParent != nil {
			if err := validateParent(ctx, uc.goalRepo, goal.ID, input.UserID, goal.WorkspaceID, *newParent); err != nil {
				return nil, err
			}
		}
		goal.ParentID = newParent
	}

	goal.UpdatedAt = time.Now().UTC()
	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	progressChanged := goal.Progress != oldProgress
	parentChanged := !parentsEqual(oldParentID, goal.ParentID)

	if progressChanged || parentChanged {
		rollUpProgress(ctx, uc.goalRepo, goal.ParentID)
	}
	if parentChanged {
		rollUpProgress(ctx, uc.goalRepo, oldParentID)
	}

	if goal.Status != oldStatus {
		uc.dispatcher.NotifyStatusChange(ctx, input.UserID, goal, oldStatus)

		activityType := entity.ActivityGoalUpdated
		switch goal.Status {
		case entity.GoalStatusCompleted:
			activityType = entity.ActivityGoalCompleted
		case entity.GoalStatusCancelled:
			activityType = entity.ActivityGoalCancelled
		}
		uc.recorder.Record(ctx, activityType,
			fmt.Sprintf("moved goal %q from %s to %s", goal.Title, oldStatus, goal.Status),
			input.UserID, goal.WorkspaceID, &goal.ID,
			map[string]interface{}{"old_status": string(oldStatus), "new_status": string(goal.Status)},
		)
	} else {
		uc.recorder.Record(ctx, entity.ActivityGoalUpdated,
			fmt.Sprintf("updated goal %q", goal.Title),
			input.UserID, goal.WorkspaceID, &goal.ID, nil,
		)
	}

	if progressChanged {
		uc.dispatcher.NotifyProgressUpdate(ctx, input.UserID, goal, oldProgress)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}

func parentsEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
