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

// ListInvitesInput represents the input for listing workspace invites.
type ListInvitesInput struct {
	WorkspaceID uuid.UUID
	UserID      uuid.UUID
}

// ListInvitesOutput represents the output of listing workspace invites.
type ListInvitesOutput struct {
	Invites []*entity.WorkspaceInvite
}

// ListInvitesUseCase lists a workspace's invites. Requires ADMIN.
type ListInvitesUseCase struct {
	workspaceRepo adapter.WorkspaceRepository
	access        *AccessChecker
}

// NewListInvitesUseCase creates a new ListInvitesUseCase instance.
func NewListInvitesUseCase(workspaceRepo adapter.WorkspaceRepository, access *AccessChecker) *ListInvitesUseCase {
	return &ListInvitesUseCase{
		workspaceRepo: workspaceRepo,
		access:        access,
	}
}

// Execute lists the workspace invites.
func (uc *ListInvitesUseCase) Execute(ctx context.Context, input ListInvitesInput) (*ListInvitesOutput, error) {
	if _, err := uc.access.CheckAccess(ctx, input.WorkspaceID, input.UserID, entity.WorkspaceRoleAdmin); err != nil {
		return nil, err
	}

	invites, err := uc.workspaceRepo.FindInvitesByWorkspace(ctx, input.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	return &ListInvitesOutput{Invites: invites}, nil
}

// CancelInviteInput represents the input for cancelling an invite.
type CancelInviteInput struct {
	WorkspaceID uuid.UUID
	InviteID    uuid.UUID
	UserID      uuid.UUID
}

// CancelInviteOutput represents the output of cancelling an invite.
type CancelInviteOutput struct {
	Message string
}

// CancelInviteUseCase cancels an open invite. Requires ADMIN.
type CancelInviteUseCase struct {
	workspaceRepo adapter.WorkspaceRepository
	access        *AccessChecker
}

// NewCancelInviteUseCase creates a new CancelInviteUseCase instance.
func NewCancelInviteUseCase(workspaceRepo adapter.WorkspaceRepository, access *AccessChecker) *CancelInviteUseCase {
	return &CancelInviteUseCase{
		workspaceRepo: workspaceRepo,
		access:        access,
	}
}

// Execute cancels the invite.
func (uc *CancelInviteUseCase) Execute(ctx context.Context, input CancelInviteInput) (*CancelInviteOutput, error) {
	if _, err := uc.access.CheckAccess(ctx, input.WorkspaceID, input.UserID, entity.WorkspaceRoleAdmin); err != nil {
		return nil, err
	}

	invite, err := uc.workspaceRepo.FindInviteByID(ctx, input.InviteID)
	if err != nil {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeInviteNotFound,
			"invite not found",
			err,
		)
	}
	if invite.WorkspaceID != input.WorkspaceID {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeInviteNotFound,
			"invite not found",
			domainerror.ErrInviteNotFound,
		)
	}
	if invite.IsAccepted() {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeInviteAlreadyAccepted,
			"invite has already been accepted",
			domainerror.ErrInviteAlreadyAccepted,
		)
	}

	if err := uc.workspaceRepo.DeleteInvite(ctx, input.InviteID); err != nil {
		return nil, fmt.Errorf("failed to cancel invite: %w", err)
	}
	return &CancelInviteOutput{Message: "Invite cancelled"}, nil
}

// GetInviteInput represents the input for looking up an invite by token.
type GetInviteInput struct {
	Token string
}

// GetInviteOutput represents the output of an invite lookup.
type GetInviteOutput struct {
	Invite        *entity.WorkspaceInvite
	WorkspaceName string
}

// GetInviteUseCase resolves an invite token so the frontend can show what
// the user is about to join.
type GetInviteUseCase struct {
	workspaceRepo adapter.WorkspaceRepository
}

// NewGetInviteUseCase creates a new GetInviteUseCase instance.
func NewGetInviteUseCase(workspaceRepo adapter.WorkspaceRepository) *GetInviteUseCase {
	return &GetInviteUseCase{
		workspaceRepo: workspaceRepo,
	}
}

// Execute resolves the invite token.
func (uc *GetInviteUseCase) Execute(ctx context.Context, input GetInviteInput) (*GetInviteOutput, error) {
	invite, err := uc.workspaceRepo.FindInviteByToken(ctx, input.Token)
	if err != nil {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeInviteNotFound,
			"invite not found or invalid token",
			err,
		)
	}
	if invite.IsExpired() && !invite.IsAccepted() {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeInviteExpired,
			"invite has expired",
			domainerror.ErrInviteExpired,
		)
	}

	workspace, err := uc.workspaceRepo.FindByID(ctx, invite.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return &GetInviteOutput{
		Invite:        invite,
		WorkspaceName: workspace.Name,
	}, nil
}
