// Package workspace contains workspace-related use cases.
package workspace

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
)

// ListMembersInput represents the input for listing workspace members.
type ListMembersInput struct {
	WorkspaceID uuid.UUID
	UserID      uuid.UUID
}

// ListMembersOutput represents the output of listing workspace members.
type ListMembersOutput struct {
	Members []*entity.WorkspaceMember
}

// ListMembersUseCase lists the members of a workspace.
type ListMembersUseCase struct {
	workspaceRepo adapter.WorkspaceRepository
	access        *AccessChecker
}

// NewListMembersUseCase creates a new ListMembersUseCase instance.
func NewListMembersUseCase(workspaceRepo adapter.WorkspaceRepository, access *AccessChecker) *ListMembersUseCase {
	return &ListMembersUseCase{
		workspaceRepo: workspaceRepo,
		access:        access,
	}
}

// Execute lists the workspace members.
func (uc *ListMembersUseCase) Execute(ctx context.Context, input ListMembersInput) (*ListMembersOutput, error) {
	if _, err := uc.access.CheckAccess(ctx, input.WorkspaceID, input.UserID, entity.WorkspaceRoleViewer); err != nil {
		return nil, err
	}

	members, err := uc.workspaceRepo.FindMembers(ctx, input.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return &ListMembersOutput{Members: members}, nil
}
