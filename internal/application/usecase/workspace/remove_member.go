// Package workspace contains workspace-related use cases.
package workspace

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/activity"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// RemoveMemberInput represents the input for removing a member.
type RemoveMemberInput struct {
	WorkspaceID uuid.UUID
	MemberID    uuid.UUID
	UserID      uuid.UUID
}

// RemoveMemberOutput represents the output of removing a member.
type RemoveMemberOutput struct {
	Message string
}

// RemoveMemberUseCase handles member removal. Requires ADMIN, except that a
// member may always remove themselves; the owner can never be removed.
type RemoveMemberUseCase struct {
	workspaceRepo adapter.WorkspaceRepository
	access        *AccessChecker
	recorder      *activity.Recorder
}

// NewRemoveMemberUseCase creates a new RemoveMemberUseCase instance.
func NewRemoveMemberUseCase(workspaceRepo adapter.WorkspaceRepository, access *AccessChecker, recorder *activity.Recorder) *RemoveMemberUseCase {
	return &RemoveMemberUseCase{
		workspaceRepo: workspaceRepo,
		access:        access,
		recorder:      recorder,
	}
}

// Execute performs the member removal.
func (uc *RemoveMemberUseCase) Execute(ctx context.Context, input RemoveMemberInput) (*RemoveMemberOutput, error) {
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

	// Leaving the workspace needs no elevated role.
	if member.UserID != input.UserID {
		if _, err := uc.access.CheckAccess(ctx, input.WorkspaceID, input.UserID, entity.WorkspaceRoleAdmin); err != nil {
			return nil, err
		}
	}

	workspace, err := uc.workspaceRepo.FindByID(ctx, input.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	if member.UserID == workspace.OwnerID {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeCannotRemoveOwner,
			"the workspace owner cannot be removed",
			domainerror.ErrCannotRemoveOwner,
		)
	}

	if err := uc.workspaceRepo.RemoveMember(ctx, input.MemberID); err != nil {
		return nil, fmt.Errorf("failed to remove member: %w", err)
	}

	uc.recorder.Record(ctx, entity.ActivityMemberRemoved,
		"removed a workspace member",
		input.UserID, input.WorkspaceID, nil,
		map[string]interface{}{"member_user_id": member.UserID.String()},
	)

	return &RemoveMemberOutput{Message: "Member removed"}, nil
}

// LeaveInput represents the input for leaving a workspace.
type LeaveInput struct {
	WorkspaceID uuid.UUID
	UserID      uuid.UUID
}

// Leave removes the caller's own membership. It resolves the membership row
// first and then goes through the regular removal path, so the owner guard
// still applies.
func (uc *RemoveMemberUseCase) Leave(ctx context.Context, input LeaveInput) (*RemoveMemberOutput, error) {
	member, err := uc.workspaceRepo.FindMember(ctx, input.WorkspaceID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up membership: %w", err)
	}
	if member == nil {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeMemberNotFound,
			"you are not a member of this workspace",
			domainerror.ErrMemberNotFound,
		)
	}

	return uc.Execute(ctx, RemoveMemberInput{
		WorkspaceID: input.WorkspaceID,
		MemberID:    member.ID,
		UserID:      input.UserID,
	})
}
