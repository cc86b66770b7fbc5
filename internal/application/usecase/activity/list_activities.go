package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
)

// AccessChecker verifies that a user holds at least the required role in a
// workspace. Satisfied by the workspace package's checker; declared here so
// this package does not depend on the packages that record activities.
type AccessChecker interface {
	CheckAccess(ctx context.Context, workspaceID, userID uuid.UUID, required entity.WorkspaceRole) (*entity.WorkspaceMember, error)
}

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 100
)

// ListActivitiesInput represents the input for the workspace activity feed.
type ListActivitiesInput struct {
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
	Limit       int
}

// ListActivitiesOutput represents the workspace activity feed.
type ListActivitiesOutput struct {
	Activities []*entity.Activity
}

// ListActivitiesUseCase returns the newest activity entries of a workspace.
type ListActivitiesUseCase struct {
	activityRepo adapter.ActivityRepository
	access       AccessChecker
}

// NewListActivitiesUseCase creates a new ListActivitiesUseCase instance.
func NewListActivitiesUseCase(activityRepo adapter.ActivityRepository, access AccessChecker) *ListActivitiesUseCase {
	return &ListActivitiesUseCase{
		activityRepo: activityRepo,
		access:       access,
	}
}

// Execute returns the activity feed.
func (uc *ListActivitiesUseCase) Execute(ctx context.Context, input ListActivitiesInput) (*ListActivitiesOutput, error) {
	if _, err := uc.access.CheckAccess(ctx, input.WorkspaceID, input.UserID, entity.WorkspaceRoleViewer); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	activities, err := uc.activityRepo.FindByWorkspace(ctx, input.WorkspaceID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return &ListActivitiesOutput{Activities: activities}, nil
}
