package stats

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/workspace"
	"github.com/goalflow/backend/internal/domain/entity"
)

// MemberStats holds the per-member performance numbers.
type MemberStats struct {
	UserID                uuid.UUID
	UserName              string
	UserEmail             string
	Role                  entity.WorkspaceRole
	Counts                StatusCounts
	AverageProgress       int
	AverageCompletionDays int
	OnTimeRate            int
}

// GetTeamStatsInput represents the input for team performance stats.
type GetTeamStatsInput struct {
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
}

// GetTeamStatsOutput represents the team performance stats.
type GetTeamStatsOutput struct {
	Members []MemberStats
	// TeamOnTimeRate weighs each member's on-time rate by their completed
	// goal count.
	TeamOnTimeRate int
	TotalGoals     int
	TotalCompleted int
}

// GetTeamStatsUseCase computes per-member performance across a workspace.
type GetTeamStatsUseCase struct {
	goalRepo      adapter.GoalRepository
	workspaceRepo adapter.WorkspaceRepository
	access        *workspace.AccessChecker
}

// NewGetTeamStatsUseCase creates a new GetTeamStatsUseCase instance.
func NewGetTeamStatsUseCase(goalRepo adapter.GoalRepository, workspaceRepo adapter.WorkspaceRepository, access *workspace.AccessChecker) *GetTeamStatsUseCase {
	return &GetTeamStatsUseCase{
		goalRepo:      goalRepo,
		workspaceRepo: workspaceRepo,
		access:        access,
	}
}

// Execute computes the team performance stats.
func (uc *GetTeamStatsUseCase) Execute(ctx context.Context, input GetTeamStatsInput) (*GetTeamStatsOutput, error) {
	if _, err := uc.access.CheckAccess(ctx, input.WorkspaceID, input.UserID, entity.WorkspaceRoleViewer); err != nil {
		return nil, err
	}

	members, err := uc.workspaceRepo.FindMembers(ctx, input.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	out := &GetTeamStatsOutput{Members: make([]MemberStats, 0, len(members))}
	var weightedSum float64
	for _, member := range members {
		goals, err := uc.goalRepo.FindByOwnerAndWorkspace(ctx, member.UserID, input.WorkspaceID)
		if err != nil {
			return nil, fmt.Errorf("failed to load goals for member %s: %w", member.UserID, err)
		}

		stats := MemberStats{
			UserID:                member.UserID,
			UserName:              member.UserName,
			UserEmail:             member.UserEmail,
			Role:                  member.Role,
			Counts:                countByStatus(goals),
			AverageProgress:       averageProgress(goals),
			AverageCompletionDays: averageCompletionDays(goals),
			OnTimeRate:            onTimeRate(goals),
		}
		out.Members = append(out.Members, stats)

		out.TotalGoals += stats.Counts.Total
		out.TotalCompleted += stats.Counts.Completed
		weightedSum += float64(stats.Counts.Completed) * float64(stats.OnTimeRate)
	}

	if out.TotalCompleted > 0 {
		out.TeamOnTimeRate = int(math.Round(weightedSum / float64(out.TotalCompleted)))
	}
	return out, nil
}
