// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/workspace"
	"github.com/goalflow/backend/internal/domain/entity"
)

// GetHierarchyInput represents the input for retrieving the goal tree.
type GetHierarchyInput struct {
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
}

// GetHierarchyOutput represents the output of retrieving the goal tree.
type GetHierarchyOutput struct {
	Roots []*entity.GoalWithRelations
}

// GetHierarchyUseCase retrieves the caller's root goals with their direct
// children, the view the frontend renders as a tree.
type GetHierarchyUseCase struct {
	goalRepo adapter.GoalRepository
	access   *workspace.AccessChecker
}

// NewGetHierarchyUseCase creates a new GetHierarchyUseCase instance.
func NewGetHierarchyUseCase(goalRepo adapter.GoalRepository, access *workspace.AccessChecker) *GetHierarchyUseCase {
	return &GetHierarchyUseCase{
		goalRepo: goalRepo,
		access:   access,
	}
}

// Execute retrieves the goal hierarchy roots.
func (uc *GetHierarchyUseCase) Execute(ctx context.Context, input GetHierarchyInput) (*GetHierarchyOutput, error) {
	if _, err := uc.access.CheckAccess(ctx, input.WorkspaceID, input.UserID, entity.WorkspaceRoleViewer); err != nil {
		return nil, err
	}

	roots, err := uc.goalRepo.FindRoots(ctx, input.UserID, input.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goal hierarchy: %w", err)
	}

	return &GetHierarchyOutput{Roots: roots}, nil
}
