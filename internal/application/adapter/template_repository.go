// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/domain/entity"
)

// GoalTemplateRepository defines the interface for goal template persistence.
type GoalTemplateRepository interface {
	// Create creates a new template in the database.
	Create(ctx context.Context, template *entity.GoalTemplate) error

	// FindByID retrieves a template by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GoalTemplate, error)

	// FindVisible retrieves templates visible to a user: owned, public, or
	// scoped to the given workspace. Newest first.
	FindVisible(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) ([]*entity.GoalTemplate, error)

	// Update updates an existing template in the database.
	Update(ctx context.Context, template *entity.GoalTemplate) error

	// Delete removes a template from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
