// Package entity contains the core domain entities for the GoalFlow application.
package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGoalStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    GoalStatus
		to      GoalStatus
		allowed bool
	}{
		{"draft to active", GoalStatusDraft, GoalStatusActive, true},
		{"draft to review skips active", GoalStatusDraft, GoalStatusReview, true},
		{"draft to completed skips two", GoalStatusDraft, GoalStatusCompleted, true},
		{"active to review", GoalStatusActive, GoalStatusReview, true},
		{"active to completed", GoalStatusActive, GoalStatusCompleted, true},
		{"review to completed", GoalStatusReview, GoalStatusCompleted, true},
		{"active back to draft", GoalStatusActive, GoalStatusDraft, false},
		{"review back to active", GoalStatusReview, GoalStatusActive, false},
		{"draft to cancelled", GoalStatusDraft, GoalStatusCancelled, true},
		{"review to cancelled", GoalStatusReview, GoalStatusCancelled, true},
		{"completed to cancelled", GoalStatusCompleted, GoalStatusCancelled, false},
		{"completed to active", GoalStatusCompleted, GoalStatusActive, false},
		{"cancelled to active", GoalStatusCancelled, GoalStatusActive, false},
		{"same status is a no-op", GoalStatusActive, GoalStatusActive, true},
		{"terminal same status is a no-op", GoalStatusCompleted, GoalStatusCompleted, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestGoalStatusIsTerminal(t *testing.T) {
	terminal := []GoalStatus{GoalStatusCompleted, GoalStatusCancelled}
	open := []GoalStatus{GoalStatusDraft, GoalStatusActive, GoalStatusReview}

	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("expected %s to be terminal", s)
		}
	}
	for _, s := range open {
		if s.IsTerminal() {
			t.Errorf("expected %s to not be terminal", s)
		}
	}
}

func TestGoalTypeCanParent(t *testing.T) {
	if !GoalTypeQuarterly.CanParent() {
		t.Error("expected quarterly goals to allow children")
	}
	if !GoalTypeMonthly.CanParent() {
		t.Error("expected monthly goals to allow children")
	}
	if GoalTypeWeekly.CanParent() {
		t.Error("expected weekly goals to be leaves")
	}
}

func TestNewGoalDefaults(t *testing.T) {
	ownerID := uuid.New()
	workspaceID := uuid.New()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0)

	goal := NewGoal("Ship v2", "the big one", GoalTypeQuarterly, start, end, ownerID, workspaceID, nil)

	if goal.Status != GoalStatusDraft {
		t.Errorf("expected new goal status DRAFT, got %s", goal.Status)
	}
	if goal.Progress != 0 {
		t.Errorf("expected new goal progress 0, got %d", goal.Progress)
	}
	if goal.ID == uuid.Nil {
		t.Error("expected new goal to have an ID")
	}
	if goal.ParentID != nil {
		t.Error("expected new goal to have no parent")
	}
}

func TestIsValidGoalStatusAndType(t *testing.T) {
	for _, s := range []GoalStatus{GoalStatusDraft, GoalStatusActive, GoalStatusReview, GoalStatusCompleted, GoalStatusCancelled} {
		if !IsValidGoalStatus(s) {
			t.Errorf("expected %s to be a valid status", s)
		}
	}
	if IsValidGoalStatus("ARCHIVED") {
		t.Error("expected ARCHIVED to be invalid")
	}

	for _, typ := range []GoalType{GoalTypeQuarterly, GoalTypeMonthly, GoalTypeWeekly} {
		if !IsValidGoalType(typ) {
			t.Errorf("expected %s to be a valid type", typ)
		}
	}
	if IsValidGoalType("YEARLY") {
		t.Error("expected YEARLY to be invalid")
	}
}
