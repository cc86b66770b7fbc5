// Package workspace contains workspace-related use cases.
package workspace

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
)

// GetWorkspaceInput represents the input for retrieving a workspace.
type GetWorkspaceInput struct {
	WorkspaceID uuid.UUID
	UserID      uuid.UUID
}

// GetWorkspaceOutput represents the output of retrieving a workspace.
type GetWorkspaceOutput struct {
	Workspace *entity.Workspace
	Role      entity.WorkspaceRole
	Members   []*entity.WorkspaceMember
}

// GetWorkspaceUseCase retrieves a workspace with its member list and the
// caller's effective role.
type GetWorkspaceUseCase struct {
	workspaceRepo adapter.WorkspaceRepository
	access        *AccessChecker
}

// NewGetWorkspaceUseCase creates a new GetWorkspaceUseCase instance.
func NewGetWorkspaceUseCase(workspaceRepo adapter.WorkspaceRepository, access *AccessChecker) *GetWorkspaceUseCase {
	return &GetWorkspaceUseCase{
		workspaceRepo: workspaceRepo,
		access:        access,
	}
}

// Execute retrieves the workspace.
func (uc *GetWorkspaceUseCase) Execute(ctx context.Context, input GetWorkspaceInput) (*GetWorkspaceOutput, error) {
	member, err := uc.access.CheckAccess(ctx, input.WorkspaceID, input.UserID, entity.WorkspaceRoleViewer)
	if err != nil {
		return nil, err
	}

	workspace, err := uc.workspaceRepo.FindByID(ctx, input.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	members, err := uc.workspaceRepo.FindMembers(ctx, input.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	return &GetWorkspaceOutput{
		Workspace: workspace,
		Role:      member.Role,
		Members:   members,
	}, nil
}
