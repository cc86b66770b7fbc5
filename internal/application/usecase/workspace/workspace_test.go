// Package workspace contains workspace-related use cases.
package workspace

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/activity"
	"github.com/goalflow/backend/internal/application/usecase/notification"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
	"github.com/goalflow/backend/internal/integration/persistence"
	"github.com/goalflow/backend/internal/integration/persistence/model"
)

type testEnv struct {
	workspaceRepo adapter.WorkspaceRepository
	userRepo      adapter.UserRepository

	access     *AccessChecker
	invite     *InviteMemberUseCase
	accept     *AcceptInviteUseCase
	remove     *RemoveMemberUseCase
	changeRole *ChangeMemberRoleUseCase

	owner       *entity.User
	workspaceID uuid.UUID
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.WorkspaceModel{},
		&model.WorkspaceMemberModel{},
		&model.WorkspaceInviteModel{},
		&model.ActivityModel{},
		&model.NotificationPreferencesModel{},
		&model.NotificationQueueModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	ctx := context.Background()

	workspaceRepo := persistence.NewWorkspaceRepository(db)
	userRepo := persistence.NewUserRepository(db)
	activityRepo := persistence.NewActivityRepository(db)
	prefsRepo := persistence.NewNotificationPreferencesRepository(db)
	queueRepo := persistence.NewNotificationQueueRepository(db)

	access := NewAccessChecker(workspaceRepo)
	recorder := activity.NewRecorder(activityRepo)
	dispatcher := notification.NewDispatcher(prefsRepo, queueRepo, userRepo)

	owner := entity.NewUser("owner@example.com", "Owner", "hash")
	if err := userRepo.Create(ctx, owner); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	ws := entity.NewWorkspace("Product", "", owner.ID)
	ownerMember := entity.NewWorkspaceMember(owner.ID, ws.ID, entity.WorkspaceRoleOwner)
	if err := workspaceRepo.CreateWithOwner(ctx, ws, ownerMember); err != nil {
		t.Fatalf("failed to create workspace: %v", err)
	}

	return &testEnv{
		workspaceRepo: workspaceRepo,
		userRepo:      userRepo,
		access:        access,
		invite:        NewInviteMemberUseCase(workspaceRepo, userRepo, access, dispatcher),
		accept:        NewAcceptInviteUseCase(workspaceRepo, userRepo, recorder),
		remove:        NewRemoveMemberUseCase(workspaceRepo, access, recorder),
		changeRole:    NewChangeMemberRoleUseCase(workspaceRepo, access),
		owner:         owner,
		workspaceID:   ws.ID,
	}
}

// addUser creates a user and, if role is non-empty, a membership row.
func (e *testEnv) addUser(t *testing.T, email string, role entity.WorkspaceRole) (*entity.User, *entity.WorkspaceMember) {
	t.Helper()
	ctx := context.Background()

	user := entity.NewUser(email, email, "hash")
	if err := e.userRepo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	if role == "" {
		return user, nil
	}
	member := entity.NewWorkspaceMember(user.ID, e.workspaceID, role)
	if err := e.workspaceRepo.AddMember(ctx, member); err != nil {
		t.Fatalf("failed to add member: %v", err)
	}
	return user, member
}

func TestCheckAccess(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	viewer, _ := env.addUser(t, "viewer@example.com", entity.WorkspaceRoleViewer)
	admin, _ := env.addUser(t, "admin@example.com", entity.WorkspaceRoleAdmin)
	stranger, _ := env.addUser(t, "stranger@example.com", "")

	t.Run("owner passes any requirement", func(t *testing.T) {
		member, err := env.access.CheckAccess(ctx, env.workspaceID, env.owner.ID, entity.WorkspaceRoleOwner)
		if err != nil {
			t.Fatalf("CheckAccess failed: %v", err)
		}
		if member.Role != entity.WorkspaceRoleOwner {
			t.Errorf("role = %s, want OWNER", member.Role)
		}
	})

	t.Run("role at required level passes", func(t *testing.T) {
		if _, err := env.access.CheckAccess(ctx, env.workspaceID, admin.ID, entity.WorkspaceRoleAdmin); err != nil {
			t.Errorf("admin rejected at ADMIN level: %v", err)
		}
		if _, err := env.access.CheckAccess(ctx, env.workspaceID, viewer.ID, entity.WorkspaceRoleViewer); err != nil {
			t.Errorf("viewer rejected at VIEWER level: %v", err)
		}
	})

	t.Run("insufficient role is rejected", func(t *testing.T) {
		_, err := env.access.CheckAccess(ctx, env.workspaceID, viewer.ID, entity.WorkspaceRoleMember)
		assertWorkspaceErrorCode(t, err, domainerror.ErrCodeInsufficientRole)
	})

	t.Run("non-member is rejected", func(t *testing.T) {
		_, err := env.access.CheckAccess(ctx, env.workspaceID, stranger.ID, entity.WorkspaceRoleViewer)
		assertWorkspaceErrorCode(t, err, domainerror.ErrCodeWorkspaceAccessDenied)
	})

	t.Run("unknown workspace is rejected", func(t *testing.T) {
		_, err := env.access.CheckAccess(ctx, uuid.New(), env.owner.ID, entity.WorkspaceRoleViewer)
		assertWorkspaceErrorCode(t, err, domainerror.ErrCodeWorkspaceNotFound)
	})
}

func TestInviteMember(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("creates open invite", func(t *testing.T) {
		output, err := env.invite.Execute(ctx, InviteMemberInput{
			WorkspaceID: env.workspaceID,
			Email:       "New.Member@Example.com",
			Role:        entity.WorkspaceRoleMember,
			InviterID:   env.owner.ID,
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.Invite.Email != "new.member@example.com" {
			t.Errorf("email not normalized: %q", output.Invite.Email)
		}
		if output.Invite.Token == "" {
			t.Error("expected a generated token")
		}
		if output.Invite.IsExpired() {
			t.Error("fresh invite must not be expired")
		}
	})

	t.Run("duplicate open invite is rejected", func(t *testing.T) {
		_, err := env.invite.Execute(ctx, InviteMemberInput{
			WorkspaceID: env.workspaceID,
			Email:       "new.member@example.com",
			Role:        entity.WorkspaceRoleMember,
			InviterID:   env.owner.ID,
		})
		assertWorkspaceErrorCode(t, err, domainerror.ErrCodeInviteAlreadySent)
	})

	t.Run("self-invite is rejected", func(t *testing.T) {
		_, err := env.invite.Execute(ctx, InviteMemberInput{
			WorkspaceID: env.workspaceID,
			Email:       env.owner.Email,
			Role:        entity.WorkspaceRoleMember,
			InviterID:   env.owner.ID,
		})
		assertWorkspaceErrorCode(t, err, domainerror.ErrCodeCannotInviteSelf)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		_, err := env.invite.Execute(ctx, InviteMemberInput{
			WorkspaceID: env.workspaceID,
			Email:       "not-an-email",
			InviterID:   env.owner.ID,
		})
		assertWorkspaceErrorCode(t, err, domainerror.ErrCodeInvalidInviteEmail)
	})

	t.Run("owner role cannot be granted by invite", func(t *testing.T) {
		_, err := env.invite.Execute(ctx, InviteMemberInput{
			WorkspaceID: env.workspaceID,
			Email:       "future.owner@example.com",
			Role:        entity.WorkspaceRoleOwner,
			InviterID:   env.owner.ID,
		})
		assertWorkspaceErrorCode(t, err, domainerror.ErrCodeInvalidWorkspaceRole)
	})

	t.Run("existing member cannot be invited", func(t *testing.T) {
		member, _ := env.addUser(t, "already@example.com", entity.WorkspaceRoleMember)
		_, err := env.invite.Execute(ctx, InviteMemberInput{
			WorkspaceID: env.workspaceID,
			Email:       member.Email,
			Role:        entity.WorkspaceRoleMember,
			InviterID:   env.owner.ID,
		})
		assertWorkspaceErrorCode(t, err, domainerror.ErrCodeUserAlreadyMember)
	})

	t.Run("member role cannot invite", func(t *testing.T) {
		member, _ := env.addUser(t, "plain@example.com", entity.WorkspaceRoleMember)
		_, err := env.invite.Execute(ctx, InviteMemberInput{
			WorkspaceID: env.workspaceID,
			Email:       "someone@example.com",
			Role:        entity.WorkspaceRoleMember,
			InviterID:   member.ID,
		})
		assertWorkspaceErrorCode(t, err, domainerror.ErrCodeInsufficientRole)
	})
}

func TestAcceptInvite(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	invitee, _ := env.addUser(t, "invitee@example.com", "")

	output, err := env.invite.Execute(ctx, InviteMemberInput{
		WorkspaceID: env.workspaceID,
		Email:       invitee.Email,
		Role:        entity.WorkspaceRoleAdmin,
		InviterID:   env.owner.ID,
	})
	if err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	token := output.Invite.Token

	t.Run("wrong email is rejected", func(t *testing.T) {
		other, _ := env.addUser(t, "other@example.com", "")
		_, err := env.accept.Execute(ctx, AcceptInviteInput{Token: token, UserID: other.ID})
		assertWorkspaceErrorCode(t, err, domainerror.ErrCodeInviteEmailMismatch)
	})

	t.Run("matching email joins with invite role", func(t *testing.T) {
		result, err := env.accept.Execute(ctx, AcceptInviteInput{Token: token, UserID: invitee.ID})
		if err != nil {
			t.Fatalf("accept failed: %v", err)
		}
		if result.WorkspaceID != env.workspaceID {
			t.Errorf("workspace id mismatch")
		}
		if result.Role != entity.WorkspaceRoleAdmin {
			t.Errorf("role = %s, want ADMIN", result.Role)
		}

		member, err := env.workspaceRepo.FindMember(ctx, env.workspaceID, invitee.ID)
		if err != nil || member == nil {
			t.Fatalf("membership row missing: %v", err)
		}
		if member.Role != entity.WorkspaceRoleAdmin {
			t.Errorf("stored role = %s, want ADMIN", member.Role)
		}
	})

	t.Run("second accept is rejected", func(t *testing.T) {
		_, err := env.accept.Execute(ctx, AcceptInviteInput{Token: token, UserID: invitee.ID})
		assertWorkspaceErrorCode(t, err, domainerror.ErrCodeInviteAlreadyAccepted)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		_, err := env.accept.Execute(ctx, AcceptInviteInput{Token: "no-such-token", UserID: invitee.ID})
		assertWorkspaceErrorCode(t, err, domainerror.ErrCodeInviteNotFound)
	})

	t.Run("expired invite is rejected", func(t *testing.T) {
		late, _ := env.addUser(t, "late@example.com", "")
		expired := entity.NewWorkspaceInvite(
			late.Email, env.workspaceID, entity.WorkspaceRoleMember,
			"expired-token", env.owner.ID, time.Now().UTC().Add(-time.Hour),
		)
		if err := env.workspaceRepo.CreateInvite(ctx, expired); err != nil {
			t.Fatalf("failed to seed invite: %v", err)
		}

		_, err := env.accept.Execute(ctx, AcceptInviteInput{Token: "expired-token", UserID: late.ID})
		assertWorkspaceErrorCode(t, err, domainerror.ErrCodeInviteExpired)
	})
}

func TestRemoveMember(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("owner cannot be removed", func(t *testing.T) {
		ownerMember, err := env.workspaceRepo.FindMember(ctx, env.workspaceID, env.owner.ID)
		if err != nil || ownerMember == nil {
			t.Fatalf("owner membership missing: %v", err)
		}
		_, err = env.remove.Execute(ctx, RemoveMemberInput{
			WorkspaceID: env.workspaceID,
			MemberID:    ownerMember.ID,
			UserID:      env.owner.ID,
		})
		assertWorkspaceErrorCode(t, err, domainerror.ErrCodeCannotRemoveOwner)
	})

	t.Run("admin removes a member", func(t *testing.T) {
		admin, _ := env.addUser(t, "admin@example.com", entity.WorkspaceRoleAdmin)
		target, targetMember := env.addUser(t, "target@example.com", entity.WorkspaceRoleMember)

		if _, err := env.remove.Execute(ctx, RemoveMemberInput{
			WorkspaceID: env.workspaceID,
			MemberID:    targetMember.ID,
			UserID:      admin.ID,
		}); err != nil {
			t.Fatalf("remove failed: %v", err)
		}

		gone, err := env.workspaceRepo.FindMember(ctx, env.workspaceID, target.ID)
		if err != nil {
			t.Fatalf("FindMember failed: %v", err)
		}
		if gone != nil {
			t.Error("membership row still present after removal")
		}
	})

	t.Run("member cannot remove others", func(t *testing.T) {
		mover, _ := env.addUser(t, "mover@example.com", entity.WorkspaceRoleMember)
		_, victimMember := env.addUser(t, "victim@example.com", entity.WorkspaceRoleMember)

		_, err := env.remove.Execute(ctx, RemoveMemberInput{
			WorkspaceID: env.workspaceID,
			MemberID:    victimMember.ID,
			UserID:      mover.ID,
		})
		assertWorkspaceErrorCode(t, err, domainerror.ErrCodeInsufficientRole)
	})

	t.Run("member leaves on their own", func(t *testing.T) {
		leaver, _ := env.addUser(t, "leaver@example.com", entity.WorkspaceRoleViewer)

		if _, err := env.remove.Leave(ctx, LeaveInput{
			WorkspaceID: env.workspaceID,
			UserID:      leaver.ID,
		}); err != nil {
			t.Fatalf("leave failed: %v", err)
		}

		gone, err := env.workspaceRepo.FindMember(ctx, env.workspaceID, leaver.ID)
		if err != nil {
			t.Fatalf("FindMember failed: %v", err)
		}
		if gone != nil {
			t.Error("membership row still present after leaving")
		}
	})

	t.Run("owner cannot leave", func(t *testing.T) {
		_, err := env.remove.Leave(ctx, LeaveInput{
			WorkspaceID: env.workspaceID,
			UserID:      env.owner.ID,
		})
		assertWorkspaceErrorCode(t, err, domainerror.ErrCodeCannotRemoveOwner)
	})
}

func TestChangeMemberRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, member := env.addUser(t, "member@example.com", entity.WorkspaceRoleMember)

	t.Run("owner promotes a member", func(t *testing.T) {
		output, err := env.changeRole.Execute(ctx, ChangeMemberRoleInput{
			WorkspaceID: env.workspaceID,
			MemberID:    member.ID,
			UserID:      env.owner.ID,
			Role:        entity.WorkspaceRoleAdmin,
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.Member.Role != entity.WorkspaceRoleAdmin {
			t.Errorf("role = %s, want ADMIN", output.Member.Role)
		}
	})

	t.Run("owner role cannot be assigned", func(t *testing.T) {
		_, err := env.changeRole.Execute(ctx, ChangeMemberRoleInput{
			WorkspaceID: env.workspaceID,
			MemberID:    member.ID,
			UserID:      env.owner.ID,
			Role:        entity.WorkspaceRoleOwner,
		})
		assertWorkspaceErrorCode(t, err, domainerror.ErrCodeInvalidWorkspaceRole)
	})

	t.Run("owner's own role cannot be changed", func(t *testing.T) {
		ownerMember, err := env.workspaceRepo.FindMember(ctx, env.workspaceID, env.owner.ID)
		if err != nil || ownerMember == nil {
			t.Fatalf("owner membership missing: %v", err)
		}
		_, err = env.changeRole.Execute(ctx, ChangeMemberRoleInput{
			WorkspaceID: env.workspaceID,
			MemberID:    ownerMember.ID,
			UserID:      env.owner.ID,
			Role:        entity.WorkspaceRoleViewer,
		})
		assertWorkspaceErrorCode(t, err, domainerror.ErrCodeCannotRemoveOwner)
	})
}

func assertWorkspaceErrorCode(t *testing.T, err error, want domainerror.WorkspaceErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	var wsErr *domainerror.WorkspaceError
	if !errors.As(err, &wsErr) {
		t.Fatalf("expected workspace error, got %v", err)
	}
	if wsErr.Code != want {
		t.Errorf("error code = %s, want %s", wsErr.Code, want)
	}
}
