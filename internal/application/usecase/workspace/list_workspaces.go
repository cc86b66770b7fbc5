// Package workspace contains workspace-related use cases.
package workspace

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
)

// ListWorkspacesInput represents the input for listing workspaces.
type ListWorkspacesInput struct {
	UserID uuid.UUID
}

// ListWorkspacesOutput represents the output of listing workspaces.
type ListWorkspacesOutput struct {
	Workspaces []*entity.Workspace
}

// ListWorkspacesUseCase lists the workspaces a user belongs to.
type ListWorkspacesUseCase struct {
	workspaceRepo adapter.WorkspaceRepository
}

// NewListWorkspacesUseCase creates a new ListWorkspacesUseCase instance.
func NewListWorkspacesUseCase(workspaceRepo adapter.WorkspaceRepository) *ListWorkspacesUseCase {
	return &ListWorkspacesUseCase{
		workspaceRepo: workspaceRepo,
	}
}

// Execute lists the user's workspaces.
func (uc *ListWorkspacesUseCase) Execute(ctx context.Context, input ListWorkspacesInput) (*ListWorkspacesOutput, error) {
	workspaces, err := uc.workspaceRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return &ListWorkspacesOutput{Workspaces: workspaces}, nil
}
