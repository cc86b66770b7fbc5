// Package goal contains goal-related use cases.
package goal

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
	"github.com/goalflow/backend/internal/application/usecase/workspace"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
	"github.com/goalflow/backend/internal/integration/persistence"
	"github.com/goalflow/backend/internal/integration/persistence/model"
)

type testEnv struct {
	goalRepo      adapter.GoalRepository
	workspaceRepo adapter.WorkspaceRepository
	userRepo      adapter.UserRepository
	queueRepo     adapter.NotificationQueueRepository

	create    *CreateGoalUseCase
	update    *UpdateGoalUseCase
	delete    *DeleteGoalUseCase
	get       *GetGoalUseCase
	hierarchy *GetHierarchyUseCase

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
		&model.GoalModel{},
		&model.MetricModel{},
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

	goalRepo := persistence.NewGoalRepository(db)
	workspaceRepo := persistence.NewWorkspaceRepository(db)
	userRepo := persistence.NewUserRepository(db)
	activityRepo := persistence.NewActivityRepository(db)
	prefsRepo := persistence.NewNotificationPreferencesRepository(db)
	queueRepo := persistence.NewNotificationQueueRepository(db)

	access := workspace.NewAccessChecker(workspaceRepo)
	recorder := activity.NewRecorder(activityRepo)
	dispatcher := notification.NewDispatcher(prefsRepo, queueRepo, userRepo)

	owner := entity.NewUser("owner@example.com", "Owner", "hash")
	if err := userRepo.Create(ctx, owner); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	ws := entity.NewWorkspace("Engineering", "", owner.ID)
	member := entity.NewWorkspaceMember(owner.ID, ws.ID, entity.WorkspaceRoleOwner)
	if err := workspaceRepo.CreateWithOwner(ctx, ws, member); err != nil {
		t.Fatalf("failed to create workspace: %v", err)
	}

	return &testEnv{
		goalRepo:      goalRepo,
		workspaceRepo: workspaceRepo,
		userRepo:      userRepo,
		queueRepo:     queueRepo,
		create:        NewCreateGoalUseCase(goalRepo, access, recorder),
		update:        NewUpdateGoalUseCase(goalRepo, dispatcher, recorder),
		delete:        NewDeleteGoalUseCase(goalRepo, recorder),
		get:           NewGetGoalUseCase(goalRepo),
		hierarchy:     NewGetHierarchyUseCase(goalRepo, access),
		owner:         owner,
		workspaceID:   ws.ID,
	}
}

func (e *testEnv) mustCreateGoal(t *testing.T, goalType entity.GoalType, parentID *uuid.UUID) *entity.Goal {
	t.Helper()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	output, err := e.create.Execute(context.Background(), CreateGoalInput{
		OwnerID:     e.owner.ID,
		WorkspaceID: e.workspaceID,
		Title:       "goal",
		Type:        goalType,
		StartDate:   start,
		EndDate:     start.AddDate(0, 3, 0),
		ParentID:    parentID,
	})
	if err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}
	return output.Goal
}

func TestCreateGoal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates draft goal", func(t *testing.T) {
		output, err := env.create.Execute(ctx, CreateGoalInput{
			OwnerID:     env.owner.ID,
			WorkspaceID: env.workspaceID,
			Title:       "Q1 objectives",
			Type:        entity.GoalTypeQuarterly,
			StartDate:   start,
			EndDate:     start.AddDate(0, 3, 0),
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.Goal.Status != entity.GoalStatusDraft {
			t.Errorf("expected DRAFT, got %s", output.Goal.Status)
		}

		stored, err := env.goalRepo.FindByID(ctx, output.Goal.ID)
		if err != nil {
			t.Fatalf("goal not persisted: %v", err)
		}
		if stored.Title != "Q1 objectives" {
			t.Errorf("stored title = %q", stored.Title)
		}
	})

	t.Run("rejects end date before start date", func(t *testing.T) {
		_, err := env.create.Execute(ctx, CreateGoalInput{
			OwnerID:     env.owner.ID,
			WorkspaceID: env.workspaceID,
			Title:       "backwards",
			Type:        entity.GoalTypeWeekly,
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, -1),
		})
		assertGoalErrorCode(t, err, domainerror.ErrCodeInvalidGoalDates)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := env.create.Execute(ctx, CreateGoalInput{
			OwnerID:     env.owner.ID,
			WorkspaceID: env.workspaceID,
			Title:       "typed",
			Type:        entity.GoalType("YEARLY"),
			StartDate:   start,
			EndDate:     start.AddDate(0, 1, 0),
		})
		assertGoalErrorCode(t, err, domainerror.ErrCodeInvalidGoalType)
	})

	t.Run("rejects non-member", func(t *testing.T) {
		_, err := env.create.Execute(ctx, CreateGoalInput{
			OwnerID:     uuid.New(),
			WorkspaceID: env.workspaceID,
			Title:       "intruder",
			Type:        entity.GoalTypeWeekly,
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, 7),
		})
		if err == nil {
			t.Fatal("expected access error")
		}
		var wsErr *domainerror.WorkspaceError
		if !errors.As(err, &wsErr) {
			t.Fatalf("expected workspace error, got %v", err)
		}
	})

	t.Run("rejects weekly parent", func(t *testing.T) {
		weekly := env.mustCreateGoal(t, entity.GoalTypeWeekly, nil)
		_, err := env.create.Execute(ctx, CreateGoalInput{
			OwnerID:     env.owner.ID,
			WorkspaceID: env.workspaceID,
			Title:       "child of a leaf",
			Type:        entity.GoalTypeWeekly,
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, 7),
			ParentID:    &weekly.ID,
		})
		assertGoalErrorCode(t, err, domainerror.ErrCodeWeeklyGoalCannotParent)
	})
}

func TestUpdateGoalStatusMachine(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	goal := env.mustCreateGoal(t, entity.GoalTypeWeekly, nil)

	active := entity.GoalStatusActive
	output, err := env.update.Execute(ctx, UpdateGoalInput{
		GoalID: goal.ID,
		UserID: env.owner.ID,
		Status: &active,
	})
	if err != nil {
		t.Fatalf("activate failed: %v", err)
	}
	if output.Goal.Status != entity.GoalStatusActive {
		t.Errorf("status = %s, want ACTIVE", output.Goal.Status)
	}

	t.Run("completion forces progress to 100", func(t *testing.T) {
		completed := entity.GoalStatusCompleted
		output, err := env.update.Execute(ctx, UpdateGoalInput{
			GoalID: goal.ID,
			UserID: env.owner.ID,
			Status: &completed,
		})
		if err != nil {
			t.Fatalf("complete failed: %v", err)
		}
		if output.Goal.Progress != 100 {
			t.Errorf("progress = %d, want 100", output.Goal.Progress)
		}
	})

	t.Run("terminal goal rejects further transitions", func(t *testing.T) {
		active := entity.GoalStatusActive
		_, err := env.update.Execute(ctx, UpdateGoalInput{
			GoalID: goal.ID,
			UserID: env.owner.ID,
			Status: &active,
		})
		assertGoalErrorCode(t, err, domainerror.ErrCodeInvalidStatusTransition)
	})

	t.Run("rejects out of range progress", func(t *testing.T) {
		other := env.mustCreateGoal(t, entity.GoalTypeWeekly, nil)
		bad := 150
		_, err := env.update.Execute(ctx, UpdateGoalInput{
			GoalID:   other.ID,
			UserID:   env.owner.ID,
			Progress: &bad,
		})
		assertGoalErrorCode(t, err, domainerror.ErrCodeInvalidGoalProgress)
	})
}

func TestProgressRollUp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	quarterly := env.mustCreateGoal(t, entity.GoalTypeQuarterly, nil)
	monthly := env.mustCreateGoal(t, entity.GoalTypeMonthly, &quarterly.ID)
	weekly1 := env.mustCreateGoal(t, entity.GoalTypeWeekly, &monthly.ID)
	weekly2 := env.mustCreateGoal(t, entity.GoalTypeWeekly, &monthly.ID)

	setProgress := func(id uuid.UUID, progress int) {
		t.Helper()
		if _, err := env.update.Execute(ctx, UpdateGoalInput{
			GoalID:   id,
			UserID:   env.owner.ID,
			Progress: &progress,
		}); err != nil {
			t.Fatalf("failed to set progress: %v", err)
		}
	}

	setProgress(weekly1.ID, 50)
	setProgress(weekly2.ID, 100)

	parent, err := env.goalRepo.FindByID(ctx, monthly.ID)
	if err != nil {
		t.Fatalf("failed to reload monthly: %v", err)
	}
	if parent.Progress != 75 {
		t.Errorf("monthly progress = %d, want 75", parent.Progress)
	}

	// The roll-up continues to the quarterly root. The monthly is its only
	// child, so the value propagates unchanged.
	root, err := env.goalRepo.FindByID(ctx, quarterly.ID)
	if err != nil {
		t.Fatalf("failed to reload quarterly: %v", err)
	}
	if root.Progress != 75 {
		t.Errorf("quarterly progress = %d, want 75", root.Progress)
	}

	t.Run("deleting a child recomputes ancestors", func(t *testing.T) {
		if _, err := env.delete.Execute(ctx, DeleteGoalInput{
			GoalID: weekly1.ID,
			UserID: env.owner.ID,
		}); err != nil {
			t.Fatalf("delete failed: %v", err)
		}

		parent, err := env.goalRepo.FindByID(ctx, monthly.ID)
		if err != nil {
			t.Fatalf("failed to reload monthly: %v", err)
		}
		if parent.Progress != 100 {
			t.Errorf("monthly progress after delete = %d, want 100", parent.Progress)
		}
	})
}

func TestReparentRejectsCycles(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	quarterly := env.mustCreateGoal(t, entity.GoalTypeQuarterly, nil)
	monthly := env.mustCreateGoal(t, entity.GoalTypeMonthly, &quarterly.ID)
	grandchild := env.mustCreateGoal(t, entity.GoalTypeMonthly, &monthly.ID)

	reparent := func(goalID uuid.UUID, parentID uuid.UUID) error {
		parent := &parentID
		_, err := env.update.Execute(ctx, UpdateGoalInput{
			GoalID:   goalID,
			UserID:   env.owner.ID,
			ParentID: &parent,
		})
		return err
	}

	t.Run("goal cannot be its own parent", func(t *testing.T) {
		err := reparent(quarterly.ID, quarterly.ID)
		assertGoalErrorCode(t, err, domainerror.ErrCodeGoalSelfParent)
	})

	t.Run("goal cannot move under its own descendant", func(t *testing.T) {
		err := reparent(quarterly.ID, grandchild.ID)
		assertGoalErrorCode(t, err, domainerror.ErrCodeGoalHierarchyCycle)

		// The rejected assignment must leave the tree untouched.
		root, err2 := env.goalRepo.FindByID(ctx, quarterly.ID)
		if err2 != nil {
			t.Fatalf("failed to reload root: %v", err2)
		}
		if root.ParentID != nil {
			t.Error("root gained a parent from a rejected assignment")
		}
	})

	t.Run("reparenting to a valid goal succeeds", func(t *testing.T) {
		other := env.mustCreateGoal(t, entity.GoalTypeQuarterly, nil)
		if err := reparent(monthly.ID, other.ID); err != nil {
			t.Fatalf("reparent failed: %v", err)
		}

		moved, err := env.goalRepo.FindByID(ctx, monthly.ID)
		if err != nil {
			t.Fatalf("failed to reload goal: %v", err)
		}
		if moved.ParentID == nil || *moved.ParentID != other.ID {
			t.Error("parent not updated")
		}
	})
}

func TestUpdateGoalEnqueuesNotifications(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	goal := env.mustCreateGoal(t, entity.GoalTypeWeekly, nil)

	active := entity.GoalStatusActive
	if _, err := env.update.Execute(ctx, UpdateGoalInput{
		GoalID: goal.ID,
		UserID: env.owner.ID,
		Status: &active,
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	jobs, err := env.queueRepo.GetPendingJobs(ctx, 10)
	if err != nil {
		t.Fatalf("failed to read queue: %v", err)
	}
	// Default preferences enable email only.
	if len(jobs) != 1 {
		t.Fatalf("expected 1 queued job, got %d", len(jobs))
	}
	if jobs[0].Event != entity.EventStatusChange {
		t.Errorf("event = %s, want status change", jobs[0].Event)
	}
	if jobs[0].Channel != entity.ChannelEmail {
		t.Errorf("channel = %s, want email", jobs[0].Channel)
	}
	if jobs[0].Payload["new_status"] != string(entity.GoalStatusActive) {
		t.Errorf("payload new_status = %v", jobs[0].Payload["new_status"])
	}
}

func TestGetHierarchy(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	quarterly := env.mustCreateGoal(t, entity.GoalTypeQuarterly, nil)
	monthly := env.mustCreateGoal(t, entity.GoalTypeMonthly, &quarterly.ID)
	orphan := env.mustCreateGoal(t, entity.GoalTypeWeekly, nil)

	output, err := env.hierarchy.Execute(ctx, GetHierarchyInput{
		UserID:      env.owner.ID,
		WorkspaceID: env.workspaceID,
	})
	if err != nil {
		t.Fatalf("hierarchy failed: %v", err)
	}

	if len(output.Roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(output.Roots))
	}

	byID := make(map[uuid.UUID]*entity.GoalWithRelations, len(output.Roots))
	for _, root := range output.Roots {
		byID[root.Goal.ID] = root
	}

	root, ok := byID[quarterly.ID]
	if !ok {
		t.Fatal("quarterly goal missing from roots")
	}
	if len(root.Children) != 1 || root.Children[0].ID != monthly.ID {
		t.Errorf("expected monthly goal as the only child of the quarterly root")
	}

	leaf, ok := byID[orphan.ID]
	if !ok {
		t.Fatal("parentless weekly goal missing from roots")
	}
	if len(leaf.Children) != 0 {
		t.Errorf("expected no children on the weekly root, got %d", len(leaf.Children))
	}
}

func assertGoalErrorCode(t *testing.T, err error, want domainerror.GoalErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) {
		t.Fatalf("expected goal error, got %v", err)
	}
	if goalErr.Code != want {
		t.Errorf("error code = %s, want %s", goalErr.Code, want)
	}
}
