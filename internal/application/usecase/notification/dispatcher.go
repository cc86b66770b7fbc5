// Package notification contains notification preference and dispatch use cases.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
)

// Dispatcher fans events out to the notification outbox. One job is enqueued
// per enabled channel so a failing channel never blocks the other. Enqueue
// failures are logged and never fail the triggering operation.
type Dispatcher struct {
	prefsRepo adapter.NotificationPreferencesRepository
	queueRepo adapter.NotificationQueueRepository
	userRepo  adapter.UserRepository
}

// NewDispatcher creates a new Dispatcher instance.
func NewDispatcher(
	prefsRepo adapter.NotificationPreferencesRepository,
	queueRepo adapter.NotificationQueueRepository,
	userRepo adapter.UserRepository,
) *Dispatcher {
	return &Dispatcher{
		prefsRepo: prefsRepo,
		queueRepo: queueRepo,
		userRepo:  userRepo,
	}
}

// NotifyStatusChange enqueues notifications for a goal status transition.
func (d *Dispatcher) NotifyStatusChange(ctx context.Context, userID uuid.UUID, goal *entity.Goal, oldStatus entity.GoalStatus) {
	payload := map[string]interface{}{
		"goal_id":    goal.ID.String(),
		"goal_title": goal.Title,
		"old_status": string(oldStatus),
		"new_status": string(goal.Status),
	}
	d.dispatch(ctx, entity.EventStatusChange, userID, payload)
}

// NotifyProgressUpdate enqueues notifications for a goal progress change.
func (d *Dispatcher) NotifyProgressUpdate(ctx context.Context, userID uuid.UUID, goal *entity.Goal, oldProgress int) {
	payload := map[string]interface{}{
		"goal_id":      goal.ID.String(),
		"goal_title":   goal.Title,
		"old_progress": oldProgress,
		"new_progress": goal.Progress,
	}
	d.dispatch(ctx, entity.EventProgressUpdate, userID, payload)
}

// NotifyDeadlineReminder enqueues reminder notifications for a goal whose
// end date is daysLeft days away. The reminder only fires if the user asked
// for that specific lead time.
func (d *Dispatcher) NotifyDeadlineReminder(ctx context.Context, userID uuid.UUID, goal *entity.Goal, daysLeft int) {
	prefs, err := d.preferencesFor(ctx, userID)
	if err != nil {
		slog.Error("Failed to load notification preferences", "error", err, "user_id", userID)
		return
	}
	if !prefs.WantsReminderAt(daysLeft) {
		return
	}

	payload := map[string]interface{}{
		"goal_id":    goal.ID.String(),
		"goal_title": goal.Title,
		"end_date":   goal.EndDate.Format("2006-01-02"),
		"days_left":  daysLeft,
	}
	d.enqueueEnabled(ctx, entity.EventDeadlineReminder, userID, prefs, payload)
}

// NotifyWorkspaceInvite enqueues the invite email. Invites bypass
// preferences: the recipient may not have an account yet.
func (d *Dispatcher) NotifyWorkspaceInvite(ctx context.Context, invitedBy uuid.UUID, invite *entity.WorkspaceInvite, workspaceName, inviterName string) {
	payload := map[string]interface{}{
		"email":          invite.Email,
		"workspace_name": workspaceName,
		"inviter_name":   inviterName,
		"role":           string(invite.Role),
		"token":          invite.Token,
	}
	job := entity.NewNotificationJob(entity.EventWorkspaceInvite, entity.ChannelEmail, invitedBy, payload)
	if err := d.queueRepo.Create(ctx, job); err != nil {
		slog.Error("Failed to enqueue invite email", "error", err, "invite_id", invite.ID)
	}
}

// dispatch enqueues one job per channel the user has enabled for the event.
func (d *Dispatcher) dispatch(ctx context.Context, event entity.NotificationEvent, userID uuid.UUID, payload map[string]interface{}) {
	prefs, err := d.preferencesFor(ctx, userID)
	if err != nil {
		slog.Error("Failed to load notification preferences", "error", err, "user_id", userID)
		return
	}
	d.enqueueEnabled(ctx, event, userID, prefs, payload)
}

func (d *Dispatcher) enqueueEnabled(ctx context.Context, event entity.NotificationEvent, userID uuid.UUID, prefs *entity.NotificationPreferences, payload map[string]interface{}) {
	for _, channel := range []entity.NotificationChannel{entity.ChannelEmail, entity.ChannelTelegram} {
		if !prefs.ChannelEnabledFor(channel, event) {
			continue
		}
		if channel == entity.ChannelTelegram {
			user, err := d.userRepo.FindByID(ctx, userID)
			if err != nil || !user.HasTelegramLinked() {
				continue
			}
		}

		job := entity.NewNotificationJob(event, channel, userID, payload)
		if err := d.queueRepo.Create(ctx, job); err != nil {
			slog.Error("Failed to enqueue notification job",
				"error", err,
				"event", event,
				"channel", channel,
				"user_id", userID,
			)
		}
	}
}

// preferencesFor loads the user's preferences, creating the default record
// on first access.
func (d *Dispatcher) preferencesFor(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreferences, error) {
	prefs, err := d.prefsRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	if prefs != nil {
		return prefs, nil
	}

	prefs = entity.NewNotificationPreferences(userID)
	if err := d.prefsRepo.Create(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to create default preferences: %w", err)
	}
	return prefs, nil
}
