// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalStatus represents the lifecycle status of a goal.
type GoalStatus string

const (
	GoalStatusDraft     GoalStatus = "DRAFT"
	GoalStatusActive    GoalStatus = "ACTIVE"
	GoalStatusReview    GoalStatus = "REVIEW"
	GoalStatusCompleted GoalStatus = "COMPLETED"
	GoalStatusCancelled GoalStatus = "CANCELLED"
)

// GoalType represents the planning horizon of a goal.
type GoalType string

const (
	GoalTypeQuarterly GoalType = "QUARTERLY"
	GoalTypeMonthly   GoalType = "MONTHLY"
	GoalTypeWeekly    GoalType = "WEEKLY"
)

// statusRank orders the forward path of the status state machine.
// CANCELLED sits outside the ladder and is handled separately.
var statusRank = map[GoalStatus]int{
	GoalStatusDraft:     0,
	GoalStatusActive:    1,
	GoalStatusReview:    2,
	GoalStatusCompleted: 3,
}

// IsTerminal reports whether the status permits no further transitions.
func (s GoalStatus) IsTerminal() bool {
	return s == GoalStatusCompleted || s == GoalStatusCancelled
}

// CanTransitionTo reports whether the state machine allows moving from s
// to target. Forward moves along DRAFT -> ACTIVE -> REVIEW -> COMPLETED
// are allowed (including skips); CANCELLED is reachable from any
// non-terminal state; terminal states allow nothing.
func (s GoalStatus) CanTransitionTo(target GoalStatus) bool {
	if s == target {
		return true
	}
	if s.IsTerminal() {
		return false
	}
	if target == GoalStatusCancelled {
		return true
	}
	from, okFrom := statusRank[s]
	to, okTo := statusRank[target]
	return okFrom && okTo && to > from
}

// IsValidGoalStatus reports whether the given status is a known value.
func IsValidGoalStatus(s GoalStatus) bool {
	switch s {
	case GoalStatusDraft, GoalStatusActive, GoalStatusReview, GoalStatusCompleted, GoalStatusCancelled:
		return true
	}
	return false
}

// IsValidGoalType reports whether the given type is a known value.
func IsValidGoalType(t GoalType) bool {
	switch t {
	case GoalTypeQuarterly, GoalTypeMonthly, GoalTypeWeekly:
		return true
	}
	return false
}

// CanParent reports whether a goal of this type may have children.
// Weekly goals are leaves.
func (t GoalType) CanParent() bool {
	return t != GoalTypeWeekly
}

// Goal represents a goal in the GoalFlow system. Goals form a tree within
// a workspace: quarterly and monthly goals may parent, weekly goals may not.
type Goal struct {
	ID          uuid.UUID
	Title       string
	Description string
	Status      GoalStatus
	Type        GoalType
	Progress    int // 0-100
	StartDate   time.Time
	EndDate     time.Time
	OwnerID     uuid.UUID
	WorkspaceID uuid.UUID
	ParentID    *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewGoal creates a new Goal entity in DRAFT status with zero progress.
func NewGoal(title, description string, goalType GoalType, startDate, endDate time.Time, ownerID, workspaceID uuid.UUID, parentID *uuid.UUID) *Goal {
	now := time.Now().UTC()
	return &Goal{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Status:      GoalStatusDraft,
		Type:        goalType,
		Progress:    0,
		StartDate:   startDate,
		EndDate:     endDate,
		OwnerID:     ownerID,
		WorkspaceID: workspaceID,
		ParentID:    parentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// GoalWithRelations represents a goal with its loaded tree neighbours and metrics.
type GoalWithRelations struct {
	Goal     *Goal
	Parent   *Goal
	Children []*Goal
	Metrics  []*Metric
}
