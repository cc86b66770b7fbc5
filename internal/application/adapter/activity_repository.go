// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/domain/entity"
)

// ActivityRepository defines the interface for the append-only activity log.
// There are no update or delete operations: entries are immutable.
type ActivityRepository interface {
	// Create appends a new activity entry.
	Create(ctx context.Context, activity *entity.Activity) error

	// FindByWorkspace retrieves the newest activity entries of a workspace
	// with user and goal info populated.
	FindByWorkspace(ctx context.Context, workspaceID uuid.UUID, limit int) ([]*entity.Activity, error)
}
