// Package stats contains the analytics use cases. Aggregations are pure
// functions over goal sets fetched into memory.
package stats

import (
	"testing"
	"time"

	"github.com/goalflow/backend/internal/domain/entity"
)

func makeGoal(status entity.GoalStatus, goalType entity.GoalType, progress int, created, updated, start, end time.Time) *entity.Goal {
	return &entity.Goal{
		Status:    status,
		Type:      goalType,
		Progress:  progress,
		CreatedAt: created,
		UpdatedAt: updated,
		StartDate: start,
		EndDate:   end,
	}
}

func TestCountByStatus(t *testing.T) {
	now := time.Now()
	goals := []*entity.Goal{
		makeGoal(entity.GoalStatusActive, entity.GoalTypeWeekly, 50, now, now, now, now),
		makeGoal(entity.GoalStatusActive, entity.GoalTypeWeekly, 20, now, now, now, now),
		makeGoal(entity.GoalStatusCompleted, entity.GoalTypeMonthly, 100, now, now, now, now),
		makeGoal(entity.GoalStatusReview, entity.GoalTypeMonthly, 90, now, now, now, now),
		makeGoal(entity.GoalStatusDraft, entity.GoalTypeQuarterly, 0, now, now, now, now),
	}

	counts := countByStatus(goals)

	if counts.Total != 5 {
		t.Errorf("Total = %d, want 5", counts.Total)
	}
	if counts.Active != 2 {
		t.Errorf("Active = %d, want 2", counts.Active)
	}
	if counts.Completed != 1 {
		t.Errorf("Completed = %d, want 1", counts.Completed)
	}
	if counts.Review != 1 {
		t.Errorf("Review = %d, want 1", counts.Review)
	}
}

func TestRecentGoals(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	var goals []*entity.Goal
	for i := 0; i < 8; i++ {
		g := makeGoal(entity.GoalStatusActive, entity.GoalTypeWeekly, 0, base, base.Add(time.Duration(i)*time.Hour), base, base)
		g.Title = string(rune('a' + i))
		goals = append(goals, g)
	}

	recent := recentGoals(goals, 5)

	if len(recent) != 5 {
		t.Fatalf("expected 5 recent goals, got %d", len(recent))
	}
	// Most recently updated first.
	if recent[0].Title != "h" {
		t.Errorf("expected newest goal first, got %q", recent[0].Title)
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].UpdatedAt.After(recent[i-1].UpdatedAt) {
			t.Error("expected recent goals in descending update order")
		}
	}
	// Input order is untouched.
	if goals[0].Title != "a" {
		t.Error("expected input slice order to be preserved")
	}
}

func TestCompletionRateByMonth(t *testing.T) {
	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	goals := []*entity.Goal{
		makeGoal(entity.GoalStatusCompleted, entity.GoalTypeWeekly, 100, jan, jan, jan, jan),
		makeGoal(entity.GoalStatusActive, entity.GoalTypeWeekly, 40, jan, jan, jan, jan),
		makeGoal(entity.GoalStatusCompleted, entity.GoalTypeWeekly, 100, jan, jan, jan, jan),
		makeGoal(entity.GoalStatusActive, entity.GoalTypeWeekly, 10, feb, feb, feb, feb),
	}

	rates := completionRateByMonth(goals)

	if len(rates) != 2 {
		t.Fatalf("expected 2 months, got %d", len(rates))
	}
	if rates[0].Month != "2026-01" || rates[1].Month != "2026-02" {
		t.Errorf("expected ascending month keys, got %s, %s", rates[0].Month, rates[1].Month)
	}
	if rates[0].Total != 3 || rates[0].Completed != 2 || rates[0].Rate != 67 {
		t.Errorf("january = %+v, want total 3 completed 2 rate 67", rates[0])
	}
	if rates[1].Rate != 0 {
		t.Errorf("february rate = %d, want 0", rates[1].Rate)
	}
}

func TestTypeDistribution(t *testing.T) {
	now := time.Now()
	goals := []*entity.Goal{
		makeGoal(entity.GoalStatusActive, entity.GoalTypeWeekly, 0, now, now, now, now),
		makeGoal(entity.GoalStatusActive, entity.GoalTypeWeekly, 0, now, now, now, now),
		makeGoal(entity.GoalStatusActive, entity.GoalTypeQuarterly, 0, now, now, now, now),
	}

	dist := typeDistribution(goals)

	if len(dist) != 2 {
		t.Fatalf("expected 2 entries (monthly absent), got %d", len(dist))
	}
	// Fixed order: quarterly before weekly.
	if dist[0].Type != entity.GoalTypeQuarterly || dist[1].Type != entity.GoalTypeWeekly {
		t.Errorf("unexpected order: %s, %s", dist[0].Type, dist[1].Type)
	}
	if dist[0].Percentage != 33 {
		t.Errorf("quarterly percentage = %d, want 33", dist[0].Percentage)
	}
	if dist[1].Percentage != 67 {
		t.Errorf("weekly percentage = %d, want 67", dist[1].Percentage)
	}
}

func TestProgressTrendByWeek(t *testing.T) {
	// Monday and Wednesday of ISO week 2 of 2026, then week 3.
	week2a := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	week2b := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	week3 := time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)

	goals := []*entity.Goal{
		makeGoal(entity.GoalStatusActive, entity.GoalTypeWeekly, 20, week2a, week2a, week2a, week2a),
		makeGoal(entity.GoalStatusActive, entity.GoalTypeWeekly, 41, week2b, week2b, week2b, week2b),
		makeGoal(entity.GoalStatusActive, entity.GoalTypeWeekly, 80, week3, week3, week3, week3),
	}

	trend := progressTrendByWeek(goals)

	if len(trend) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(trend))
	}
	if trend[0].Week != "2026-W02" {
		t.Errorf("first week key = %s, want 2026-W02", trend[0].Week)
	}
	if trend[0].Count != 2 || trend[0].AverageProgress != 31 {
		t.Errorf("week 2 = %+v, want count 2 average 31", trend[0])
	}
	if trend[1].Week != "2026-W03" || trend[1].AverageProgress != 80 {
		t.Errorf("week 3 = %+v, want average 80", trend[1])
	}
}

func TestAverageCompletionDays(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	goals := []*entity.Goal{
		makeGoal(entity.GoalStatusCompleted, entity.GoalTypeWeekly, 100, start, start.AddDate(0, 0, 10), start, start.AddDate(0, 0, 14)),
		makeGoal(entity.GoalStatusCompleted, entity.GoalTypeWeekly, 100, start, start.AddDate(0, 0, 20), start, start.AddDate(0, 0, 14)),
		// Active goals are excluded.
		makeGoal(entity.GoalStatusActive, entity.GoalTypeWeekly, 50, start, start.AddDate(0, 0, 100), start, start.AddDate(0, 0, 14)),
	}

	if got := averageCompletionDays(goals); got != 15 {
		t.Errorf("averageCompletionDays = %d, want 15", got)
	}
	if got := averageCompletionDays(nil); got != 0 {
		t.Errorf("averageCompletionDays(nil) = %d, want 0", got)
	}
}

func TestOnTimeRate(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)
	goals := []*entity.Goal{
		// Finished before the deadline.
		makeGoal(entity.GoalStatusCompleted, entity.GoalTypeWeekly, 100, start, end.AddDate(0, 0, -2), start, end),
		// Finished exactly on the deadline.
		makeGoal(entity.GoalStatusCompleted, entity.GoalTypeWeekly, 100, start, end, start, end),
		// Finished late.
		makeGoal(entity.GoalStatusCompleted, entity.GoalTypeWeekly, 100, start, end.AddDate(0, 0, 3), start, end),
	}

	if got := onTimeRate(goals); got != 67 {
		t.Errorf("onTimeRate = %d, want 67", got)
	}
	if got := onTimeRate(nil); got != 0 {
		t.Errorf("onTimeRate(nil) = %d, want 0", got)
	}
}

func TestAverageProgress(t *testing.T) {
	now := time.Now()
	goals := []*entity.Goal{
		makeGoal(entity.GoalStatusActive, entity.GoalTypeWeekly, 10, now, now, now, now),
		makeGoal(entity.GoalStatusActive, entity.GoalTypeWeekly, 25, now, now, now, now),
	}
	if got := averageProgress(goals); got != 18 {
		t.Errorf("averageProgress = %d, want 18", got)
	}
	if got := averageProgress(nil); got != 0 {
		t.Errorf("averageProgress(nil) = %d, want 0", got)
	}
}

func TestRoundPercent(t *testing.T) {
	tests := []struct {
		part, total, want int
	}{
		{0, 0, 0},
		{1, 2, 50},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
	}
	for _, tt := range tests {
		if got := roundPercent(tt.part, tt.total); got != tt.want {
			t.Errorf("roundPercent(%d, %d) = %d, want %d", tt.part, tt.total, got, tt.want)
		}
	}
}
