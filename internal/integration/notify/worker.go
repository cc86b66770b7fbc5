// Package notify runs the notification outbox worker.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
	"github.com/goalflow/backend/internal/integration/email/templates"
)

// Worker drains the notification outbox and delivers jobs over their
// channel. Each job is one channel delivery; retry state lives on the job.
type Worker struct {
	queue        adapter.NotificationQueueRepository
	users        adapter.UserRepository
	emailSender  adapter.EmailSender
	telegram     adapter.TelegramSender
	renderer     *templates.Renderer
	baseURL      string
	pollInterval time.Duration
	batchSize    int
}

// WorkerConfig holds configuration for the notification worker.
type WorkerConfig struct {
	// BaseURL is the app's public URL, used for links in messages.
	BaseURL      string
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new notification worker.
func NewWorker(
	queue adapter.NotificationQueueRepository,
	users adapter.UserRepository,
	emailSender adapter.EmailSender,
	telegram adapter.TelegramSender,
	renderer *templates.Renderer,
	config WorkerConfig,
) *Worker {
	return &Worker{
		queue:        queue,
		users:        users,
		emailSender:  emailSender,
		telegram:     telegram,
		renderer:     renderer,
		baseURL:      config.BaseURL,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Notification worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Notification worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch fetches and processes a batch of pending jobs.
func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending notification jobs", "error", err)
		return
	}

	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing notification batch", "count", len(jobs))

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			w.processJob(ctx, job)
		}
	}
}

// processJob delivers a single job over its channel.
func (w *Worker) processJob(ctx context.Context, job *entity.NotificationJob) {
	logger := slog.With(
		"job_id", job.ID,
		"event", job.Event,
		"channel", job.Channel,
	)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	var providerID string
	var err error
	switch job.Channel {
	case entity.ChannelEmail:
		providerID, err = w.deliverEmail(ctx, job)
	case entity.ChannelTelegram:
		providerID, err = w.deliverTelegram(ctx, job)
	default:
		err = domainerror.NewNotificationError(
			domainerror.ErrCodePermanentSendFailure,
			"unknown notification channel",
			nil,
		)
	}

	if err != nil {
		logger.Error("Failed to deliver notification", "error", err)
		w.handleFailure(ctx, job, err)
		return
	}

	job.MarkSent(providerID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Notification delivered", "provider_id", providerID)
}

// deliverEmail renders the event's template and sends it. Workspace invites
// carry the recipient address in the payload; every other event goes to the
// job's user.
func (w *Worker) deliverEmail(ctx context.Context, job *entity.NotificationJob) (string, error) {
	var to, name string
	if job.Event == entity.EventWorkspaceInvite {
		to = getString(job.Payload, "email")
	} else {
		user, err := w.users.FindByID(ctx, job.UserID)
		if err != nil {
			return "", domainerror.NewNotificationError(
				domainerror.ErrCodePermanentSendFailure,
				"recipient user not found",
				err,
			)
		}
		to = user.Email
		name = user.Name
	}
	if to == "" {
		return "", domainerror.NewNotificationError(
			domainerror.ErrCodePermanentSendFailure,
			"job has no recipient address",
			nil,
		)
	}

	templateName, subject, data := w.emailContent(job, name)
	html, text, err := w.renderer.Render(templateName, data)
	if err != nil {
		// Template errors are permanent
		return "", domainerror.NewNotificationError(
			domainerror.ErrCodePermanentSendFailure,
			"failed to render email template",
			err,
		)
	}

	result, err := w.emailSender.Send(ctx, adapter.SendEmailInput{
		To:      to,
		Name:    name,
		Subject: subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		return "", err
	}
	return result.ProviderID, nil
}

// deliverTelegram sends the event's text message to the user's linked chat.
func (w *Worker) deliverTelegram(ctx context.Context, job *entity.NotificationJob) (string, error) {
	if w.telegram == nil {
		return "", domainerror.NewNotificationError(
			domainerror.ErrCodePermanentSendFailure,
			"telegram delivery is not configured",
			domainerror.ErrTelegramNotLinked,
		)
	}

	user, err := w.users.FindByID(ctx, job.UserID)
	if err != nil {
		return "", domainerror.NewNotificationError(
			domainerror.ErrCodePermanentSendFailure,
			"recipient user not found",
			err,
		)
	}
	if !user.HasTelegramLinked() {
		return "", domainerror.NewNotificationError(
			domainerror.ErrCodePermanentSendFailure,
			"user has no linked telegram chat",
			domainerror.ErrTelegramNotLinked,
		)
	}

	result, err := w.telegram.Send(ctx, adapter.SendTelegramInput{
		ChatID: user.TelegramChatID,
		Text:   w.telegramText(job),
	})
	if err != nil {
		return "", err
	}
	return result.MessageID, nil
}

// emailContent picks the template, subject and data for an email job.
func (w *Worker) emailContent(job *entity.NotificationJob, userName string) (templateName, subject string, data interface{}) {
	goalTitle := getString(job.Payload, "goal_title")
	goalURL := ""
	if w.baseURL != "" && getString(job.Payload, "goal_id") != "" {
		goalURL = fmt.Sprintf("%s/goals/%s", w.baseURL, getString(job.Payload, "goal_id"))
	}

	switch job.Event {
	case entity.EventStatusChange:
		return "status_change", fmt.Sprintf("Goal status updated: %s", goalTitle), templates.StatusChangeData{
			UserName:  userName,
			GoalTitle: goalTitle,
			OldStatus: getString(job.Payload, "old_status"),
			NewStatus: getString(job.Payload, "new_status"),
			GoalURL:   goalURL,
		}
	case entity.EventProgressUpdate:
		return "progress_update", fmt.Sprintf("Goal progress updated: %s", goalTitle), templates.ProgressUpdateData{
			UserName:    userName,
			GoalTitle:   goalTitle,
			OldProgress: getNumber(job.Payload, "old_progress"),
			NewProgress: getNumber(job.Payload, "new_progress"),
			GoalURL:     goalURL,
		}
	case entity.EventDeadlineReminder:
		return "deadline_reminder", fmt.Sprintf("Deadline approaching: %s", goalTitle), templates.DeadlineReminderData{
			UserName:  userName,
			GoalTitle: goalTitle,
			EndDate:   getString(job.Payload, "end_date"),
			DaysLeft:  getNumber(job.Payload, "days_left"),
			GoalURL:   goalURL,
		}
	default:
		inviteURL := fmt.Sprintf("%s/invites/accept?token=%s", w.baseURL, getString(job.Payload, "token"))
		return "workspace_invite", fmt.Sprintf("You have been invited to %s", getString(job.Payload, "workspace_name")), templates.WorkspaceInviteData{
			InviterName:   getString(job.Payload, "inviter_name"),
			WorkspaceName: getString(job.Payload, "workspace_name"),
			Role:          getString(job.Payload, "role"),
			InviteURL:     inviteURL,
			ExpiresIn:     "7 days",
		}
	}
}

// telegramText builds the message text for a telegram job.
func (w *Worker) telegramText(job *entity.NotificationJob) string {
	goalTitle := getString(job.Payload, "goal_title")
	switch job.Event {
	case entity.EventStatusChange:
		return fmt.Sprintf("*%s* moved from %s to %s",
			goalTitle,
			getString(job.Payload, "old_status"),
			getString(job.Payload, "new_status"),
		)
	case entity.EventProgressUpdate:
		return fmt.Sprintf("*%s* progress: %s%% -> %s%%",
			goalTitle,
			getNumber(job.Payload, "old_progress"),
			getNumber(job.Payload, "new_progress"),
		)
	case entity.EventDeadlineReminder:
		return fmt.Sprintf("*%s* is due on %s (%s day(s) left)",
			goalTitle,
			getString(job.Payload, "end_date"),
			getNumber(job.Payload, "days_left"),
		)
	default:
		return fmt.Sprintf("You have a new notification from GoalFlow (%s).", job.Event)
	}
}

// handleFailure records a failed delivery and schedules a retry when the
// failure is temporary and attempts remain.
func (w *Worker) handleFailure(ctx context.Context, job *entity.NotificationJob, err error) {
	var ntfErr *domainerror.NotificationError
	permanent := errors.As(err, &ntfErr) && ntfErr.Code == domainerror.ErrCodePermanentSendFailure

	job.MarkFailed(err, permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.NotificationStatusFailed {
		slog.Warn("Notification job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
	} else {
		slog.Info("Notification job scheduled for retry",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"scheduled_at", job.ScheduledAt,
		)
	}
}

// getString safely extracts a string from a payload map.
func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// getNumber renders a numeric payload value. Values round-trip through JSON
// so integers come back as float64.
func getNumber(data map[string]interface{}, key string) string {
	switch v := data[key].(type) {
	case float64:
		return fmt.Sprintf("%.0f", v)
	case int:
		return fmt.Sprintf("%d", v)
	case string:
		return v
	default:
		return ""
	}
}

// ProcessNow processes all pending jobs immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
