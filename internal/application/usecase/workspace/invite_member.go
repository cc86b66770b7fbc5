// Package workspace contains workspace-related use cases.
package workspace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/notification"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

const (
	// inviteTokenLength is the length of the invite token in bytes.
	inviteTokenLength = 32
	// inviteExpirationDays is the number of days until an invite expires.
	inviteExpirationDays = 7
)

// emailRegex is compiled once at package level.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// InviteMemberInput represents the input for inviting a member.
type InviteMemberInput struct {
	WorkspaceID uuid.UUID
	Email       string
	Role        entity.WorkspaceRole
	InviterID   uuid.UUID
}

// InviteMemberOutput represents the output of inviting a member.
type InviteMemberOutput struct {
	Invite *entity.WorkspaceInvite
}

// InviteMemberUseCase handles workspace invitations. Requires ADMIN. At most
// one open invite may exist per email and workspace.
type InviteMemberUseCase struct {
	workspaceRepo adapter.WorkspaceRepository
	userRepo      adapter.UserRepository
	access        *AccessChecker
	dispatcher    *notification.Dispatcher
}

// NewInviteMemberUseCase creates a new InviteMemberUseCase instance.
func NewInviteMemberUseCase(
	workspaceRepo adapter.WorkspaceRepository,
	userRepo adapter.UserRepository,
	access *AccessChecker,
	dispatcher *notification.Dispatcher,
) *InviteMemberUseCase {
	return &InviteMemberUseCase{
		workspaceRepo: workspaceRepo,
		userRepo:      userRepo,
		access:        access,
		dispatcher:    dispatcher,
	}
}

// Execute performs the member invitation.
func (uc *InviteMemberUseCase) Execute(ctx context.Context, input InviteMemberInput) (*InviteMemberOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !emailRegex.MatchString(email) {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeInvalidInviteEmail,
			"invalid email address",
			domainerror.ErrInvalidInviteEmail,
		)
	}

	role := input.Role
	if role == "" {
		role = entity.WorkspaceRoleMember
	}
	// Ownership is never granted by invite.
	if !entity.IsValidWorkspaceRole(role) || role == entity.WorkspaceRoleOwner {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeInvalidWorkspaceRole,
			"invalid invite role",
			domainerror.ErrInvalidWorkspaceRole,
		)
	}

	if _, err := uc.access.CheckAccess(ctx, input.WorkspaceID, input.InviterID, entity.WorkspaceRoleAdmin); err != nil {
		return nil, err
	}

	inviter, err := uc.userRepo.FindByID(ctx, input.InviterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inviter info: %w", err)
	}
	if strings.EqualFold(inviter.Email, email) {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeCannotInviteSelf,
			"you cannot invite yourself",
			domainerror.ErrCannotInviteSelf,
		)
	}

	// Already a member?
	existingUser, err := uc.userRepo.FindByEmail(ctx, email)
	if err == nil && existingUser != nil {
		member, err := uc.workspaceRepo.FindMember(ctx, input.WorkspaceID, existingUser.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing membership: %w", err)
		}
		if member != nil {
			return nil, domainerror.NewWorkspaceError(
				domainerror.ErrCodeUserAlreadyMember,
				"user is already a member of this workspace",
				domainerror.ErrUserAlreadyMember,
			)
		}
	}

	openInvite, err := uc.workspaceRepo.FindOpenInvite(ctx, input.WorkspaceID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing invites: %w", err)
	}
	if openInvite != nil {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeInviteAlreadySent,
			"Invite already sent",
			domainerror.ErrInviteAlreadySent,
		)
	}

	token, err := generateInviteToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite token: %w", err)
	}

	expiresAt := time.Now().UTC().AddDate(0, 0, inviteExpirationDays)
	invite := entity.NewWorkspaceInvite(email, input.WorkspaceID, role, token, input.InviterID, expiresAt)

	if err := uc.workspaceRepo.CreateInvite(ctx, invite); err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	workspace, err := uc.workspaceRepo.FindByID(ctx, input.WorkspaceID)
	if err == nil {
		uc.dispatcher.NotifyWorkspaceInvite(ctx, input.InviterID, invite, workspace.Name, inviter.Name)
	}

	return &InviteMemberOutput{Invite: invite}, nil
}

// generateInviteToken returns a 64 character hex token.
func generateInviteToken() (string, error) {
	tokenBytes := make([]byte, inviteTokenLength)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(tokenBytes), nil
}
