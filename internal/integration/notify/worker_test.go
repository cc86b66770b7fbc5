// Package notify runs the notification outbox worker.
package notify

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
	"github.com/goalflow/backend/internal/integration/email/templates"
	"github.com/goalflow/backend/internal/integration/persistence"
	"github.com/goalflow/backend/internal/integration/persistence/model"
)

type mockEmailSender struct {
	sent []adapter.SendEmailInput
	err  error
}

func (m *mockEmailSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.sent = append(m.sent, input)
	return &adapter.SendEmailResult{ProviderID: "email-provider-id"}, nil
}

type mockTelegramSender struct {
	sent []adapter.SendTelegramInput
	err  error
}

func (m *mockTelegramSender) Send(_ context.Context, input adapter.SendTelegramInput) (*adapter.SendTelegramResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.sent = append(m.sent, input)
	return &adapter.SendTelegramResult{MessageID: "42"}, nil
}

type workerEnv struct {
	db       *gorm.DB
	worker   *Worker
	email    *mockEmailSender
	telegram *mockTelegramSender
	queue    adapter.NotificationQueueRepository
	user     *entity.User
}

func newWorkerEnv(t *testing.T) *workerEnv {
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
	if err := db.AutoMigrate(&model.UserModel{}, &model.NotificationQueueModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	queueRepo := persistence.NewNotificationQueueRepository(db)
	userRepo := persistence.NewUserRepository(db)

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}

	user := entity.NewUser("recipient@example.com", "Recipient", "hash")
	user.TelegramChatID = "123456"
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	emailSender := &mockEmailSender{}
	telegramSender := &mockTelegramSender{}

	worker := NewWorker(queueRepo, userRepo, emailSender, telegramSender, renderer, WorkerConfig{
		BaseURL:      "https://app.example.com",
		PollInterval: time.Second,
		BatchSize:    10,
	})

	return &workerEnv{
		db:       db,
		worker:   worker,
		email:    emailSender,
		telegram: telegramSender,
		queue:    queueRepo,
		user:     user,
	}
}

func (e *workerEnv) enqueue(t *testing.T, job *entity.NotificationJob) {
	t.Helper()
	if err := e.queue.Create(context.Background(), job); err != nil {
		t.Fatalf("failed to enqueue job: %v", err)
	}
}

func (e *workerEnv) jobRow(t *testing.T, id uuid.UUID) *model.NotificationQueueModel {
	t.Helper()
	var row model.NotificationQueueModel
	if err := e.db.First(&row, "id = ?", id).Error; err != nil {
		t.Fatalf("failed to load job row: %v", err)
	}
	return &row
}

func statusChangePayload() map[string]interface{} {
	return map[string]interface{}{
		"goal_id":    uuid.NewString(),
		"goal_title": "Ship the launch checklist",
		"old_status": "DRAFT",
		"new_status": "ACTIVE",
	}
}

func TestWorkerDeliversEmail(t *testing.T) {
	env := newWorkerEnv(t)
	ctx := context.Background()

	job := entity.NewNotificationJob(entity.EventStatusChange, entity.ChannelEmail, env.user.ID, statusChangePayload())
	env.enqueue(t, job)

	env.worker.processBatch(ctx)

	if len(env.email.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(env.email.sent))
	}
	sent := env.email.sent[0]
	if sent.To != env.user.Email {
		t.Errorf("To = %q, want %q", sent.To, env.user.Email)
	}
	if sent.Subject != "Goal status updated: Ship the launch checklist" {
		t.Errorf("unexpected subject %q", sent.Subject)
	}
	if sent.HTML == "" || sent.Text == "" {
		t.Error("expected rendered html and text bodies")
	}

	row := env.jobRow(t, job.ID)
	if row.Status != string(entity.NotificationStatusSent) {
		t.Errorf("status = %s, want sent", row.Status)
	}
	if row.ProviderID != "email-provider-id" {
		t.Errorf("provider id = %q", row.ProviderID)
	}
	if !row.ProcessedAt.Valid {
		t.Error("expected processed timestamp")
	}
}

func TestWorkerSendsInviteToPayloadAddress(t *testing.T) {
	env := newWorkerEnv(t)
	ctx := context.Background()

	job := entity.NewNotificationJob(entity.EventWorkspaceInvite, entity.ChannelEmail, env.user.ID, map[string]interface{}{
		"email":          "invited@example.com",
		"inviter_name":   "Recipient",
		"workspace_name": "Product",
		"role":           "MEMBER",
		"token":          "tok123",
	})
	env.enqueue(t, job)

	env.worker.processBatch(ctx)

	if len(env.email.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(env.email.sent))
	}
	if env.email.sent[0].To != "invited@example.com" {
		t.Errorf("invite sent to %q, want the payload address", env.email.sent[0].To)
	}
}

func TestWorkerDeliversTelegram(t *testing.T) {
	env := newWorkerEnv(t)
	ctx := context.Background()

	job := entity.NewNotificationJob(entity.EventStatusChange, entity.ChannelTelegram, env.user.ID, statusChangePayload())
	env.enqueue(t, job)

	env.worker.processBatch(ctx)

	if len(env.telegram.sent) != 1 {
		t.Fatalf("expected 1 telegram message, got %d", len(env.telegram.sent))
	}
	if env.telegram.sent[0].ChatID != "123456" {
		t.Errorf("chat id = %q", env.telegram.sent[0].ChatID)
	}

	row := env.jobRow(t, job.ID)
	if row.Status != string(entity.NotificationStatusSent) {
		t.Errorf("status = %s, want sent", row.Status)
	}
	if row.ProviderID != "42" {
		t.Errorf("provider id = %q", row.ProviderID)
	}
}

func TestWorkerFailureHandling(t *testing.T) {
	t.Run("temporary failure reschedules", func(t *testing.T) {
		env := newWorkerEnv(t)
		env.email.err = domainerror.NewNotificationError(
			domainerror.ErrCodeTemporarySendFailure, "provider timeout", nil,
		)

		job := entity.NewNotificationJob(entity.EventStatusChange, entity.ChannelEmail, env.user.ID, statusChangePayload())
		env.enqueue(t, job)

		env.worker.processBatch(context.Background())

		row := env.jobRow(t, job.ID)
		if row.Status != string(entity.NotificationStatusPending) {
			t.Errorf("status = %s, want pending", row.Status)
		}
		if row.Attempts != 1 {
			t.Errorf("attempts = %d, want 1", row.Attempts)
		}
		if row.LastError == "" {
			t.Error("expected last error to be recorded")
		}
		if !row.ScheduledAt.After(time.Now().UTC().Add(30 * time.Second)) {
			t.Errorf("retry not pushed into the future: %v", row.ScheduledAt)
		}
	})

	t.Run("permanent failure fails the job", func(t *testing.T) {
		env := newWorkerEnv(t)
		env.email.err = domainerror.NewNotificationError(
			domainerror.ErrCodePermanentSendFailure, "address rejected", nil,
		)

		job := entity.NewNotificationJob(entity.EventStatusChange, entity.ChannelEmail, env.user.ID, statusChangePayload())
		env.enqueue(t, job)

		env.worker.processBatch(context.Background())

		row := env.jobRow(t, job.ID)
		if row.Status != string(entity.NotificationStatusFailed) {
			t.Errorf("status = %s, want failed", row.Status)
		}
	})

	t.Run("unlinked telegram recipient fails permanently", func(t *testing.T) {
		env := newWorkerEnv(t)

		unlinked := entity.NewUser("plain@example.com", "Plain", "hash")
		userRepo := persistence.NewUserRepository(env.db)
		if err := userRepo.Create(context.Background(), unlinked); err != nil {
			t.Fatalf("failed to create user: %v", err)
		}

		job := entity.NewNotificationJob(entity.EventStatusChange, entity.ChannelTelegram, unlinked.ID, statusChangePayload())
		env.enqueue(t, job)

		env.worker.processBatch(context.Background())

		if len(env.telegram.sent) != 0 {
			t.Fatalf("expected no telegram sends, got %d", len(env.telegram.sent))
		}
		row := env.jobRow(t, job.ID)
		if row.Status != string(entity.NotificationStatusFailed) {
			t.Errorf("status = %s, want failed", row.Status)
		}
	})

	t.Run("missing telegram sender fails permanently", func(t *testing.T) {
		env := newWorkerEnv(t)
		env.worker.telegram = nil

		job := entity.NewNotificationJob(entity.EventStatusChange, entity.ChannelTelegram, env.user.ID, statusChangePayload())
		env.enqueue(t, job)

		env.worker.processBatch(context.Background())

		row := env.jobRow(t, job.ID)
		if row.Status != string(entity.NotificationStatusFailed) {
			t.Errorf("status = %s, want failed", row.Status)
		}
	})
}

func TestWorkerExhaustsRetries(t *testing.T) {
	env := newWorkerEnv(t)
	env.email.err = domainerror.NewNotificationError(
		domainerror.ErrCodeTemporarySendFailure, "provider timeout", nil,
	)

	job := entity.NewNotificationJob(entity.EventStatusChange, entity.ChannelEmail, env.user.ID, statusChangePayload())
	env.enqueue(t, job)

	for i := 0; i < job.MaxAttempts; i++ {
		// Force the job due so each pass picks it up regardless of backoff.
		if err := env.db.Model(&model.NotificationQueueModel{}).
			Where("id = ?", job.ID).
			Update("scheduled_at", time.Now().UTC().Add(-time.Minute)).Error; err != nil {
			t.Fatalf("failed to rewind schedule: %v", err)
		}
		env.worker.processBatch(context.Background())
	}

	row := env.jobRow(t, job.ID)
	if row.Status != string(entity.NotificationStatusFailed) {
		t.Errorf("status = %s, want failed after %d attempts", row.Status, job.MaxAttempts)
	}
	if row.Attempts != job.MaxAttempts {
		t.Errorf("attempts = %d, want %d", row.Attempts, job.MaxAttempts)
	}
}
