// Package entity contains the core domain entities for the GoalFlow application.
package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewNotificationPreferencesDefaults(t *testing.T) {
	prefs := NewNotificationPreferences(uuid.New())

	if !prefs.EmailEnabled {
		t.Error("expected email to default on")
	}
	if prefs.TelegramEnabled {
		t.Error("expected telegram to default off")
	}
	if len(prefs.DeadlineReminderDays) != 3 {
		t.Fatalf("expected 3 default reminder days, got %d", len(prefs.DeadlineReminderDays))
	}
	for i, want := range []int{1, 3, 7} {
		if prefs.DeadlineReminderDays[i] != want {
			t.Errorf("reminder day %d = %d, want %d", i, prefs.DeadlineReminderDays[i], want)
		}
	}
}

func TestChannelEnabledFor(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*NotificationPreferences)
		channel NotificationChannel
		event   NotificationEvent
		want    bool
	}{
		{
			name:    "email status change on by default",
			mutate:  func(p *NotificationPreferences) {},
			channel: ChannelEmail,
			event:   EventStatusChange,
			want:    true,
		},
		{
			name:    "telegram gated by master switch",
			mutate:  func(p *NotificationPreferences) {},
			channel: ChannelTelegram,
			event:   EventStatusChange,
			want:    false,
		},
		{
			name: "telegram on when master switch flipped",
			mutate: func(p *NotificationPreferences) {
				p.TelegramEnabled = true
			},
			channel: ChannelTelegram,
			event:   EventProgressUpdate,
			want:    true,
		},
		{
			name: "event toggle overrides enabled channel",
			mutate: func(p *NotificationPreferences) {
				p.ProgressUpdateEmail = false
			},
			channel: ChannelEmail,
			event:   EventProgressUpdate,
			want:    false,
		},
		{
			name: "master switch overrides event toggle",
			mutate: func(p *NotificationPreferences) {
				p.EmailEnabled = false
			},
			channel: ChannelEmail,
			event:   EventDeadlineReminder,
			want:    false,
		},
		{
			name:    "unknown event is off",
			mutate:  func(p *NotificationPreferences) {},
			channel: ChannelEmail,
			event:   NotificationEvent("unknown"),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := NewNotificationPreferences(uuid.New())
			tt.mutate(prefs)
			if got := prefs.ChannelEnabledFor(tt.channel, tt.event); got != tt.want {
				t.Errorf("ChannelEnabledFor(%s, %s) = %v, want %v", tt.channel, tt.event, got, tt.want)
			}
		})
	}
}

func TestWantsReminderAt(t *testing.T) {
	prefs := NewNotificationPreferences(uuid.New())
	prefs.DeadlineReminderDays = []int{1, 7}

	if !prefs.WantsReminderAt(7) {
		t.Error("expected reminder wanted at 7 days")
	}
	if prefs.WantsReminderAt(3) {
		t.Error("expected no reminder at 3 days")
	}
}

func TestNotificationJobLifecycle(t *testing.T) {
	newJob := func() *NotificationJob {
		return NewNotificationJob(EventStatusChange, ChannelEmail, uuid.New(), map[string]interface{}{
			"goal_id": uuid.New().String(),
		})
	}

	t.Run("new job is pending and ready", func(t *testing.T) {
		job := newJob()
		if job.Status != NotificationStatusPending {
			t.Errorf("expected pending, got %s", job.Status)
		}
		if job.MaxAttempts != 3 {
			t.Errorf("expected 3 max attempts, got %d", job.MaxAttempts)
		}
		// ScheduledAt is now; allow the clock to pass it.
		time.Sleep(time.Millisecond)
		if !job.IsReadyToProcess() {
			t.Error("expected fresh job to be ready")
		}
	})

	t.Run("sent job records provider id and timestamp", func(t *testing.T) {
		job := newJob()
		job.MarkProcessing()
		if job.Status != NotificationStatusProcessing {
			t.Errorf("expected processing, got %s", job.Status)
		}

		job.MarkSent("provider-123")
		if job.Status != NotificationStatusSent {
			t.Errorf("expected sent, got %s", job.Status)
		}
		if job.ProviderID != "provider-123" {
			t.Errorf("expected provider id to be stored, got %q", job.ProviderID)
		}
		if job.ProcessedAt == nil {
			t.Error("expected ProcessedAt to be set")
		}
	})

	t.Run("transient failure reschedules", func(t *testing.T) {
		job := newJob()
		job.MarkFailed(errors.New("timeout"), false)

		if job.Status != NotificationStatusPending {
			t.Errorf("expected pending after transient failure, got %s", job.Status)
		}
		if job.Attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", job.Attempts)
		}
		if job.LastError != "timeout" {
			t.Errorf("expected last error recorded, got %q", job.LastError)
		}
		if !job.ScheduledAt.After(time.Now().UTC().Add(30 * time.Second)) {
			t.Error("expected retry to be scheduled at least a minute out")
		}
	})

	t.Run("permanent failure stops retries", func(t *testing.T) {
		job := newJob()
		job.MarkFailed(errors.New("bad recipient"), true)

		if job.Status != NotificationStatusFailed {
			t.Errorf("expected failed, got %s", job.Status)
		}
		if job.ProcessedAt == nil {
			t.Error("expected ProcessedAt to be set on permanent failure")
		}
	})

	t.Run("attempts exhaust after max", func(t *testing.T) {
		job := newJob()
		for i := 0; i < job.MaxAttempts; i++ {
			job.MarkFailed(errors.New("flaky"), false)
		}
		if job.Status != NotificationStatusFailed {
			t.Errorf("expected failed after %d attempts, got %s", job.MaxAttempts, job.Status)
		}
	})
}
