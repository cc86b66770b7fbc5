// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/domain/entity"
)

// MetricRepository defines the interface for metric persistence operations.
type MetricRepository interface {
	// Create creates a new metric in the database.
	Create(ctx context.Context, metric *entity.Metric) error

	// FindByID retrieves a metric by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Metric, error)

	// FindByGoalID retrieves all metrics of a goal, most recently created first.
	FindByGoalID(ctx context.Context, goalID uuid.UUID) ([]*entity.Metric, error)

	// Update updates an existing metric in the database.
	Update(ctx context.Context, metric *entity.Metric) error

	// Delete removes a metric from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
