package notification

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
)

const reminderWindowDays = 7

// DeadlineSweepOutput reports what a sweep run did.
type DeadlineSweepOutput struct {
	GoalsChecked  int
	RemindersSent int
}

// DeadlineSweepUseCase scans active goals approaching their end date and
// dispatches deadline reminders to their owners. Triggered by the cron
// endpoint.
type DeadlineSweepUseCase struct {
	goalRepo   adapter.GoalRepository
	dispatcher *Dispatcher
}

// NewDeadlineSweepUseCase creates a new DeadlineSweepUseCase instance.
func NewDeadlineSweepUseCase(goalRepo adapter.GoalRepository, dispatcher *Dispatcher) *DeadlineSweepUseCase {
	return &DeadlineSweepUseCase{
		goalRepo:   goalRepo,
		dispatcher: dispatcher,
	}
}

// Execute runs the sweep.
func (uc *DeadlineSweepUseCase) Execute(ctx context.Context) (*DeadlineSweepOutput, error) {
	now := time.Now().UTC()
	goals, err := uc.goalRepo.FindExpiring(ctx, now, now.AddDate(0, 0, reminderWindowDays))
	if err != nil {
		return nil, fmt.Errorf("failed to scan expiring goals: %w", err)
	}

	out := &DeadlineSweepOutput{GoalsChecked: len(goals)}
	for _, goal := range goals {
		daysLeft := int(math.Ceil(goal.EndDate.Sub(now).Hours() / 24))
		if daysLeft < 0 {
			continue
		}

		prefs, err := uc.dispatcher.preferencesFor(ctx, goal.OwnerID)
		if err != nil {
			slog.Error("Failed to load preferences during deadline sweep",
				"error", err,
				"user_id", goal.OwnerID,
			)
			continue
		}
		if !prefs.WantsReminderAt(daysLeft) {
			continue
		}

		payload := map[string]interface{}{
			"goal_id":    goal.ID.String(),
			"goal_title": goal.Title,
			"end_date":   goal.EndDate.Format("2006-01-02"),
			"days_left":  daysLeft,
		}
		uc.dispatcher.enqueueEnabled(ctx, entity.EventDeadlineReminder, goal.OwnerID, prefs, payload)
		out.RemindersSent++
	}
	return out, nil
}
