// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/domain/entity"
)

// GoalFilter narrows goal queries for analytics and reporting.
type GoalFilter struct {
	WorkspaceID uuid.UUID
	OwnerID     *uuid.UUID
	StartDate   *time.Time // createdAt >= StartDate
	EndDate     *time.Time // createdAt <= EndDate
	Statuses    []entity.GoalStatus
	Types       []entity.GoalType
}

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByIDAndOwner retrieves a goal owned by the given user.
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Goal, error)

	// FindByIDWithRelations retrieves a goal with parent, children and metrics loaded.
	FindByIDWithRelations(ctx context.Context, id, ownerID uuid.UUID) (*entity.GoalWithRelations, error)

	// FindByOwnerAndWorkspace retrieves all goals owned by a user in a workspace,
	// most recently created first.
	FindByOwnerAndWorkspace(ctx context.Context, ownerID, workspaceID uuid.UUID) ([]*entity.Goal, error)

	// FindByFilter retrieves goals matching a filter, most recently created first.
	FindByFilter(ctx context.Context, filter GoalFilter) ([]*entity.Goal, error)

	// FindRoots retrieves goals without a parent in a workspace for an owner,
	// with direct children preloaded.
	FindRoots(ctx context.Context, ownerID, workspaceID uuid.UUID) ([]*entity.GoalWithRelations, error)

	// FindChildren retrieves the direct children of a goal.
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]*entity.Goal, error)

	// Search retrieves goals whose title or description contains the query,
	// scoped to an owner and workspace.
	Search(ctx context.Context, ownerID, workspaceID uuid.UUID, query string) ([]*entity.Goal, error)

	// FindExpiring retrieves ACTIVE and REVIEW goals with an end date between
	// from and to, across all workspaces.
	FindExpiring(ctx context.Context, from, to time.Time) ([]*entity.Goal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.Goal) error

	// UpdateProgress atomically sets a goal's progress in a single write.
	UpdateProgress(ctx context.Context, id uuid.UUID, progress int) error

	// Delete removes a goal from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
