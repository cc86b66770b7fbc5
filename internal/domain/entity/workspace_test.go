// Package entity contains the core domain entities for the GoalFlow application.
package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestWorkspaceRoleLadder(t *testing.T) {
	tests := []struct {
		name     string
		role     WorkspaceRole
		required WorkspaceRole
		want     bool
	}{
		{"owner outranks admin", WorkspaceRoleOwner, WorkspaceRoleAdmin, true},
		{"admin outranks member", WorkspaceRoleAdmin, WorkspaceRoleMember, true},
		{"member outranks viewer", WorkspaceRoleMember, WorkspaceRoleViewer, true},
		{"viewer matches viewer", WorkspaceRoleViewer, WorkspaceRoleViewer, true},
		{"viewer does not reach member", WorkspaceRoleViewer, WorkspaceRoleMember, false},
		{"member does not reach admin", WorkspaceRoleMember, WorkspaceRoleAdmin, false},
		{"admin does not reach owner", WorkspaceRoleAdmin, WorkspaceRoleOwner, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.AtLeast(tt.required); got != tt.want {
				t.Errorf("%s.AtLeast(%s) = %v, want %v", tt.role, tt.required, got, tt.want)
			}
		})
	}
}

func TestWorkspaceRoleLevelUnknown(t *testing.T) {
	if WorkspaceRole("SUPERUSER").Level() != 0 {
		t.Error("expected unknown role level to be 0")
	}
	if IsValidWorkspaceRole("SUPERUSER") {
		t.Error("expected SUPERUSER to be invalid")
	}
}

func TestWorkspaceInviteExpiry(t *testing.T) {
	workspaceID := uuid.New()
	inviterID := uuid.New()

	t.Run("future expiry is open", func(t *testing.T) {
		invite := NewWorkspaceInvite("new@example.com", workspaceID, WorkspaceRoleMember, "tok", inviterID, time.Now().Add(time.Hour))
		if invite.IsExpired() {
			t.Error("expected invite to not be expired")
		}
		if invite.IsAccepted() {
			t.Error("expected fresh invite to not be accepted")
		}
	})

	t.Run("past expiry is expired", func(t *testing.T) {
		invite := NewWorkspaceInvite("new@example.com", workspaceID, WorkspaceRoleMember, "tok", inviterID, time.Now().Add(-time.Hour))
		if !invite.IsExpired() {
			t.Error("expected invite to be expired")
		}
	})

	t.Run("accepted stamp marks acceptance", func(t *testing.T) {
		invite := NewWorkspaceInvite("new@example.com", workspaceID, WorkspaceRoleMember, "tok", inviterID, time.Now().Add(time.Hour))
		now := time.Now()
		invite.AcceptedAt = &now
		if !invite.IsAccepted() {
			t.Error("expected invite with AcceptedAt to be accepted")
		}
	})
}
