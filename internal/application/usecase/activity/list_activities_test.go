package activity_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/goalflow/backend/internal/application/usecase/activity"
	"github.com/goalflow/backend/internal/application/usecase/workspace"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
	"github.com/goalflow/backend/internal/integration/persistence"
	"github.com/goalflow/backend/internal/integration/persistence/model"
)

// The use case takes the workspace package's checker through its own
// interface, so the feed keeps the membership gate without a package cycle.
var _ activity.AccessChecker = (*workspace.AccessChecker)(nil)

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
		&model.GoalModel{},
		&model.ActivityModel{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func TestListActivities(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	workspaceRepo := persistence.NewWorkspaceRepository(db)
	userRepo := persistence.NewUserRepository(db)
	activityRepo := persistence.NewActivityRepository(db)

	access := workspace.NewAccessChecker(workspaceRepo)
	recorder := activity.NewRecorder(activityRepo)
	list := activity.NewListActivitiesUseCase(activityRepo, access)

	owner := entity.NewUser("owner@example.com", "Owner", "hash")
	if err := userRepo.Create(ctx, owner); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	ws := entity.NewWorkspace("Product", "", owner.ID)
	member := entity.NewWorkspaceMember(owner.ID, ws.ID, entity.WorkspaceRoleOwner)
	if err := workspaceRepo.CreateWithOwner(ctx, ws, member); err != nil {
		t.Fatalf("failed to create workspace: %v", err)
	}

	for i := 0; i < 5; i++ {
		recorder.Record(ctx, entity.ActivityGoalCreated,
			fmt.Sprintf("created goal %d", i),
			owner.ID, ws.ID, nil, nil,
		)
	}

	t.Run("returns feed for a member", func(t *testing.T) {
		output, err := list.Execute(ctx, activity.ListActivitiesInput{
			UserID:      owner.ID,
			WorkspaceID: ws.ID,
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if len(output.Activities) != 5 {
			t.Fatalf("expected 5 entries, got %d", len(output.Activities))
		}
		for _, entry := range output.Activities {
			if entry.Type != entity.ActivityGoalCreated {
				t.Errorf("unexpected entry type %s", entry.Type)
			}
		}
	})

	t.Run("caps the feed at the requested limit", func(t *testing.T) {
		output, err := list.Execute(ctx, activity.ListActivitiesInput{
			UserID:      owner.ID,
			WorkspaceID: ws.ID,
			Limit:       2,
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if len(output.Activities) != 2 {
			t.Errorf("expected 2 entries, got %d", len(output.Activities))
		}
	})

	t.Run("rejects non-member", func(t *testing.T) {
		stranger := entity.NewUser("stranger@example.com", "Stranger", "hash")
		if err := userRepo.Create(ctx, stranger); err != nil {
			t.Fatalf("failed to create user: %v", err)
		}

		_, err := list.Execute(ctx, activity.ListActivitiesInput{
			UserID:      stranger.ID,
			WorkspaceID: ws.ID,
		})
		if err == nil {
			t.Fatal("expected access error")
		}
		var wsErr *domainerror.WorkspaceError
		if !errors.As(err, &wsErr) {
			t.Fatalf("expected workspace error, got %v", err)
		}
		if wsErr.Code != domainerror.ErrCodeWorkspaceAccessDenied {
			t.Errorf("error code = %s, want %s", wsErr.Code, domainerror.ErrCodeWorkspaceAccessDenied)
		}
	})
}

func TestListActivitiesUnknownWorkspace(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	workspaceRepo := persistence.NewWorkspaceRepository(db)
	activityRepo := persistence.NewActivityRepository(db)
	list := activity.NewListActivitiesUseCase(activityRepo, workspace.NewAccessChecker(workspaceRepo))

	_, err := list.Execute(ctx, activity.ListActivitiesInput{
		UserID:      uuid.New(),
		WorkspaceID: uuid.New(),
	})
	if err == nil {
		t.Fatal("expected error for unknown workspace")
	}
	var wsErr *domainerror.WorkspaceError
	if !errors.As(err, &wsErr) {
		t.Fatalf("expected workspace error, got %v", err)
	}
	if wsErr.Code != domainerror.ErrCodeWorkspaceNotFound {
		t.Errorf("error code = %s, want %s", wsErr.Code, domainerror.ErrCodeWorkspaceNotFound)
	}
}
