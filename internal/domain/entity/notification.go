// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationEvent identifies the kind of event a notification reports.
type NotificationEvent string

const (
	EventStatusChange     NotificationEvent = "STATUS_CHANGE"
	EventProgressUpdate   NotificationEvent = "PROGRESS_UPDATE"
	EventDeadlineReminder NotificationEvent = "DEADLINE_REMINDER"

	// EventWorkspaceInvite is not gated by preferences: the recipient may not
	// be a registered user yet. It only ever goes out by email.
	EventWorkspaceInvite NotificationEvent = "WORKSPACE_INVITE"
)

// NotificationChannel identifies a delivery channel.
type NotificationChannel string

const (
	ChannelEmail    NotificationChannel = "email"
	ChannelTelegram NotificationChannel = "telegram"
)

// NotificationPreferences holds a user's per-channel, per-event toggles and
// the set of days-before-deadline on which reminders fire. One record per
// user, created lazily on first access.
type NotificationPreferences struct {
	ID                       uuid.UUID
	UserID                   uuid.UUID
	EmailEnabled             bool
	TelegramEnabled          bool
	StatusChangeEmail        bool
	StatusChangeTelegram     bool
	ProgressUpdateEmail      bool
	ProgressUpdateTelegram   bool
	DeadlineReminderEmail    bool
	DeadlineReminderTelegram bool
	DeadlineReminderDays     []int
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// NewNotificationPreferences creates preferences with schema defaults:
// email on, telegram off, every event toggle on, reminders 1/3/7 days out.
func NewNotificationPreferences(userID uuid.UUID) *NotificationPreferences {
	now := time.Now().UTC()
	return &NotificationPreferences{
		ID:                       uuid.New(),
		UserID:                   userID,
		EmailEnabled:             true,
		TelegramEnabled:          false,
		StatusChangeEmail:        true,
		StatusChangeTelegram:     true,
		ProgressUpdateEmail:      true,
		ProgressUpdateTelegram:   true,
		DeadlineReminderEmail:    true,
		DeadlineReminderTelegram: true,
		DeadlineReminderDays:     []int{1, 3, 7},
		CreatedAt:                now,
		UpdatedAt:                now,
	}
}

// ChannelEnabledFor reports whether the given channel is enabled for the
// given event, combining the channel master switch with the event toggle.
func (p *NotificationPreferences) ChannelEnabledFor(channel NotificationChannel, event NotificationEvent) bool {
	switch channel {
	case ChannelEmail:
		if !p.EmailEnabled {
			return false
		}
		switch event {
		case EventStatusChange:
			return p.StatusChangeEmail
		case EventProgressUpdate:
			return p.ProgressUpdateEmail
		case EventDeadlineReminder:
			return p.DeadlineReminderEmail
		}
	case ChannelTelegram:
		if !p.TelegramEnabled {
			return false
		}
		switch event {
		case EventStatusChange:
			return p.StatusChangeTelegram
		case EventProgressUpdate:
			return p.ProgressUpdateTelegram
		case EventDeadlineReminder:
			return p.DeadlineReminderTelegram
		}
	}
	return false
}

// WantsReminderAt reports whether the user asked for a deadline reminder
// exactly daysLeft days before the end date.
func (p *NotificationPreferences) WantsReminderAt(daysLeft int) bool {
	for _, d := range p.DeadlineReminderDays {
		if d == daysLeft {
			return true
		}
	}
	return false
}

// NotificationStatus represents the status of a notification job in the outbox.
type NotificationStatus string

const (
	NotificationStatusPending    NotificationStatus = "pending"
	NotificationStatusProcessing NotificationStatus = "processing"
	NotificationStatusSent       NotificationStatus = "sent"
	NotificationStatusFailed     NotificationStatus = "failed"
)

// NotificationJob represents one channel delivery waiting in the outbox.
// The dispatcher enqueues one job per enabled channel so channel failures
// stay independent.
type NotificationJob struct {
	ID          uuid.UUID
	Event       NotificationEvent
	Channel     NotificationChannel
	UserID      uuid.UUID
	Payload     map[string]interface{}
	Status      NotificationStatus
	Attempts    int
	MaxAttempts int
	LastError   string
	ProviderID  string
	CreatedAt   time.Time
	ScheduledAt time.Time
	ProcessedAt *time.Time
}

// NewNotificationJob creates a new NotificationJob with default values.
func NewNotificationJob(event NotificationEvent, channel NotificationChannel, userID uuid.UUID, payload map[string]interface{}) *NotificationJob {
	now := time.Now().UTC()
	return &NotificationJob{
		ID:          uuid.New(),
		Event:       event,
		Channel:     channel,
		UserID:      userID,
		Payload:     payload,
		Status:      NotificationStatusPending,
		Attempts:    0,
		MaxAttempts: 3,
		CreatedAt:   now,
		ScheduledAt: now,
	}
}

// MarkProcessing marks the job as currently being processed.
func (n *NotificationJob) MarkProcessing() {
	n.Status = NotificationStatusProcessing
}

// MarkSent marks the job as successfully delivered.
func (n *NotificationJob) MarkSent(providerID string) {
	n.Status = NotificationStatusSent
	n.ProviderID = providerID
	now := time.Now().UTC()
	n.ProcessedAt = &now
}

// MarkFailed marks the job as failed and schedules a retry if attempts remain.
func (n *NotificationJob) MarkFailed(err error, permanent bool) {
	n.Attempts++
	n.LastError = err.Error()

	if permanent || n.Attempts >= n.MaxAttempts {
		n.Status = NotificationStatusFailed
		now := time.Now().UTC()
		n.ProcessedAt = &now
	} else {
		n.Status = NotificationStatusPending
		n.ScheduledAt = n.calculateNextRetry()
	}
}

// calculateNextRetry calculates the next retry time using exponential backoff.
// Retry delays: 0s (immediate), 1min, 5min
func (n *NotificationJob) calculateNextRetry() time.Time {
	delays := []time.Duration{0, 1 * time.Minute, 5 * time.Minute}
	if n.Attempts < len(delays) {
		return time.Now().UTC().Add(delays[n.Attempts])
	}
	return time.Now().UTC().Add(5 * time.Minute)
}

// IsReadyToProcess returns true if the job is ready to be processed.
func (n *NotificationJob) IsReadyToProcess() bool {
	return n.Status == NotificationStatusPending && time.Now().UTC().After(n.ScheduledAt)
}
