// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/domain/entity"
)

// NotificationPreferencesRepository persists per-user notification settings.
type NotificationPreferencesRepository interface {
	// FindByUserID retrieves the preferences of a user, nil if none exist yet.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreferences, error)

	// Create inserts a preferences record.
	Create(ctx context.Context, prefs *entity.NotificationPreferences) error

	// Update updates a preferences record.
	Update(ctx context.Context, prefs *entity.NotificationPreferences) error
}

// NotificationQueueRepository persists the notification outbox.
type NotificationQueueRepository interface {
	// Create enqueues a notification job.
	Create(ctx context.Context, job *entity.NotificationJob) error

	// GetPendingJobs retrieves up to limit pending jobs whose scheduled time
	// has passed, oldest first.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.NotificationJob, error)

	// Update updates a job's status fields.
	Update(ctx context.Context, job *entity.NotificationJob) error
}
