// Package workspace contains workspace-related use cases.
package workspace

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// ChangeMemberRoleInput represents the input for changing a member's role.
type ChangeMemberRoleInput struct {
	WorkspaceID uuid.UUID
	MemberID    uuid.UUID
	UserID      uuid.UUID
	Role        entity.WorkspaceRole
}

// ChangeMemberRoleOutput represents the output of changing a member's role.
type ChangeMemberRoleOutput struct {
	Member *entity.WorkspaceMember
}

// ChangeMemberRoleUseCase handles role changes. Requires ADMIN; the
// workspace owner's membership cannot be changed.
type ChangeMemberRoleUseCase struct {
	workspaceRepo adapter.WorkspaceRepository
	access        *AccessChecker
}

// NewChangeMemberRoleUseCase creates a new ChangeMemberRoleUseCase instance.
func NewChangeMemberRoleUseCase(workspaceRepo adapter.WorkspaceRepository, access *AccessChecker) *ChangeMemberRoleUseCase {
	return &ChangeMemberRoleUseCase{
		workspaceRepo: workspaceRepo,
		access:        access,
	}
}

// Execute performs the role change.
func (uc *ChangeMemberRoleUseCase) Execute(ctx context.Context, input ChangeMemberRoleInput) (*ChangeMemberRoleOutput, error) {
	if !entity.IsValidWorkspaceRole(input.Role) || input.Role == entity.WorkspaceRoleOwner {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeInvalidWorkspaceRole,
			"invalid workspace role",
			domainerror.ErrInvalidWorkspaceRole,
		)
	}

	if _, err := uc.access.CheckAccess(ctx, input.WorkspaceID, input.UserID, entity.WorkspaceRoleAdmin); err != nil {
		return nil, err
	}

	member, err := uc.workspaceRepo.FindMemberByID(ctx, input.MemberID)
	if err != nil {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeMemberNotFound,
			"member not found",
			err,
		)
	}
	if member.WorkspaceID != input.WorkspaceID {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeMemberNotFound,
			"member not found",
			domainerror.ErrMemberNotFound,
		)
	}

	workspace, err := uc.workspaceRepo.FindByID(ctx, input.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	if member.UserID == workspace.OwnerID {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeCannotRemoveOwner,
			"the workspace owner's role cannot be changed",
			domainerror.ErrCannotRemoveOwner,
		)
	}

	member.Role = input.Role
	if err := uc.workspaceRepo.UpdateMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return &ChangeMemberRoleOutput{Member: member}, nil
}
