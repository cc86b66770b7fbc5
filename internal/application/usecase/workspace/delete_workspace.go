// Package workspace contains workspace-related use cases.
package workspace

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
)

// DeleteWorkspaceInput represents the input for workspace deletion.
type DeleteWorkspaceInput struct {
	WorkspaceID uuid.UUID
	UserID      uuid.UUID
}

// DeleteWorkspaceOutput represents the output of workspace deletion.
type DeleteWorkspaceOutput struct {
	Message string
}

// DeleteWorkspaceUseCase handles workspace deletion. Only the owner may
// delete a workspace.
type DeleteWorkspaceUseCase struct {
	workspaceRepo adapter.WorkspaceRepository
	access        *AccessChecker
}

// NewDeleteWorkspaceUseCase creates a new DeleteWorkspaceUseCase instance.
func NewDeleteWorkspaceUseCase(workspaceRepo adapter.WorkspaceRepository, access *AccessChecker) *DeleteWorkspaceUseCase {
	return &DeleteWorkspaceUseCase{
		workspaceRepo: workspaceRepo,
		access:        access,
	}
}

// Execute performs the workspace deletion.
func (uc *DeleteWorkspaceUseCase) Execute(ctx context.Context, input DeleteWorkspaceInput) (*DeleteWorkspaceOutput, error) {
	if _, err := uc.access.CheckAccess(ctx, input.WorkspaceID, input.UserID, entity.WorkspaceRoleOwner); err != nil {
		return nil, err
	}

	if err := uc.workspaceRepo.Delete(ctx, input.WorkspaceID); err != nil {
		return nil, fmt.Errorf("failed to delete workspace: %w", err)
	}

	return &DeleteWorkspaceOutput{Message: "Workspace deleted"}, nil
}
