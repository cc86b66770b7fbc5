// Package workspace contains workspace-related use cases.
package workspace

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/activity"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// AcceptInviteInput represents the input for accepting an invitation.
type AcceptInviteInput struct {
	Token  string
	UserID uuid.UUID
}

// AcceptInviteOutput represents the output of accepting an invitation.
type AcceptInviteOutput struct {
	WorkspaceID   uuid.UUID
	WorkspaceName string
	Role          entity.WorkspaceRole
}

// AcceptInviteUseCase handles invitation acceptance. The accepting user's
// email must match the invite; stamping the invite and adding the member
// happen in one transaction.
type AcceptInviteUseCase struct {
	workspaceRepo adapter.WorkspaceRepository
	userRepo      adapter.UserRepository
	recorder      *activity.Recorder
}

// NewAcceptInviteUseCase creates a new AcceptInviteUseCase instance.
func NewAcceptInviteUseCase(workspaceRepo adapter.WorkspaceRepository, userRepo adapter.UserRepository, recorder *activity.Recorder) *AcceptInviteUseCase {
	return &AcceptInviteUseCase{
		workspaceRepo: workspaceRepo,
		userRepo:      userRepo,
		recorder:      recorder,
	}
}

// Execute performs the invitation acceptance.
func (uc *AcceptInviteUseCase) Execute(ctx context.Context, input AcceptInviteInput) (*AcceptInviteOutput, error) {
	invite, err := uc.workspaceRepo.FindInviteByToken(ctx, input.Token)
	if err != nil {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeInviteNotFound,
			"invite not found or invalid token",
			err,
		)
	}

	if invite.IsAccepted() {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeInviteAlreadyAccepted,
			"invite has already been accepted",
			domainerror.ErrInviteAlreadyAccepted,
		)
	}
	if invite.IsExpired() {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeInviteExpired,
			"invite has expired",
			domainerror.ErrInviteExpired,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !strings.EqualFold(user.Email, invite.Email) {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeInviteEmailMismatch,
			"this invite was issued for a different email address",
			domainerror.ErrInviteEmailMismatch,
		)
	}

	existing, err := uc.workspaceRepo.FindMember(ctx, invite.WorkspaceID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeUserAlreadyMember,
			"you are already a member of this workspace",
			domainerror.ErrUserAlreadyMember,
		)
	}

	workspace, err := uc.workspaceRepo.FindByID(ctx, invite.WorkspaceID)
	if err != nil {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeWorkspaceNotFound,
			"workspace not found",
			err,
		)
	}

	now := time.Now().UTC()
	invite.AcceptedAt = &now
	member := entity.NewWorkspaceMember(input.UserID, invite.WorkspaceID, invite.Role)

	if err := uc.workspaceRepo.AcceptInvite(ctx, invite, member); err != nil {
		return nil, fmt.Errorf("failed to accept invite: %w", err)
	}

	uc.recorder.Record(ctx, entity.ActivityMemberAdded,
		fmt.Sprintf("%s joined the workspace", user.Name),
		input.UserID, invite.WorkspaceID, nil,
		map[string]interface{}{"role": string(invite.Role)},
	)

	return &AcceptInviteOutput{
		WorkspaceID:   workspace.ID,
		WorkspaceName: workspace.Name,
		Role:          invite.Role,
	}, nil
}
