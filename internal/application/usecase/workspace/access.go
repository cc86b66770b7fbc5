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

// AccessChecker resolves a user's effective role in a workspace and enforces
// the role ladder. The workspace owner always passes, even if the owner's
// membership row is missing or carries a lower role.
type AccessChecker struct {
	workspaceRepo adapter.WorkspaceRepository
}

// NewAccessChecker creates a new AccessChecker instance.
func NewAccessChecker(workspaceRepo adapter.WorkspaceRepository) *AccessChecker {
	return &AccessChecker{
		workspaceRepo: workspaceRepo,
	}
}

// CheckAccess verifies that the user holds at least the required role in the
// workspace. It returns the user's effective membership on success.
func (c *AccessChecker) CheckAccess(ctx context.Context, workspaceID, userID uuid.UUID, required entity.WorkspaceRole) (*entity.WorkspaceMember, error) {
	workspace, err := c.workspaceRepo.FindByID(ctx, workspaceID)
	if err != nil {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeWorkspaceNotFound,
			"workspace not found",
			err,
		)
	}

	if workspace.OwnerID == userID {
		member, err := c.workspaceRepo.FindMember(ctx, workspaceID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up owner membership: %w", err)
		}
		if member == nil {
			member = &entity.WorkspaceMember{
				UserID:      userID,
				WorkspaceID: workspaceID,
				Role:        entity.WorkspaceRoleOwner,
			}
		} else {
			member.Role = entity.WorkspaceRoleOwner
		}
		return member, nil
	}

	member, err := c.workspaceRepo.FindMember(ctx, workspaceID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up membership: %w", err)
	}
	if member == nil {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeWorkspaceAccessDenied,
			"you are not a member of this workspace",
			domainerror.ErrWorkspaceAccessDenied,
		)
	}

	if !member.Role.AtLeast(required) {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeInsufficientRole,
			"your role does not permit this action",
			domainerror.ErrInsufficientRole,
		)
	}
	return member, nil
}
