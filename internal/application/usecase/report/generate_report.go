// Package report contains the report generation use case.
package report

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/workspace"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// GroupBy selects the report grouping dimension.
type GroupBy string

const (
	GroupByNone   GroupBy = ""
	GroupByOwner  GroupBy = "OWNER"
	GroupByType   GroupBy = "TYPE"
	GroupByStatus GroupBy = "STATUS"
	GroupByMonth  GroupBy = "MONTH"
)

var validGroupBy = map[GroupBy]bool{
	GroupByNone:   true,
	GroupByOwner:  true,
	GroupByType:   true,
	GroupByStatus: true,
	GroupByMonth:  true,
}

// GenerateReportInput represents the report filter and grouping config.
type GenerateReportInput struct {
	UserID         uuid.UUID
	WorkspaceID    uuid.UUID
	StartDate      *time.Time
	EndDate        *time.Time
	Statuses       []entity.GoalStatus
	Types          []entity.GoalType
	GroupBy        GroupBy
	IncludeMetrics bool
}

// ReportSummary holds the workspace-wide aggregates.
type ReportSummary struct {
	Total           int
	Active          int
	Completed       int
	AverageProgress int
	CompletionRate  int
}

// ReportGroup holds the aggregates for one group-by bucket.
type ReportGroup struct {
	Key             string
	Count           int
	AverageProgress int
	CompletionRate  int
}

// GenerateReportOutput represents the generated report.
type GenerateReportOutput struct {
	Summary ReportSummary
	Groups  []ReportGroup
	Goals   []*entity.Goal
	// Metrics maps goal IDs to their metrics, populated when requested.
	Metrics map[uuid.UUID][]*entity.Metric
}

// GenerateReportUseCase filters and aggregates a workspace's goal set.
type GenerateReportUseCase struct {
	goalRepo      adapter.GoalRepository
	metricRepo    adapter.MetricRepository
	workspaceRepo adapter.WorkspaceRepository
	access        *workspace.AccessChecker
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
func NewGenerateReportUseCase(goalRepo adapter.GoalRepository, metricRepo adapter.MetricRepository, workspaceRepo adapter.WorkspaceRepository, access *workspace.AccessChecker) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		goalRepo:      goalRepo,
		metricRepo:    metricRepo,
		workspaceRepo: workspaceRepo,
		access:        access,
	}
}

// Execute generates the report.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, input GenerateReportInput) (*GenerateReportOutput, error) {
	if _, err := uc.access.CheckAccess(ctx, input.WorkspaceID, input.UserID, entity.WorkspaceRoleViewer); err != nil {
		return nil, err
	}

	if !validGroupBy[input.GroupBy] {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"invalid group-by dimension",
			nil,
		)
	}
	for _, s := range input.Statuses {
		if !entity.IsValidGoalStatus(s) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalStatus,
				"invalid goal status in filter",
				domainerror.ErrInvalidGoalStatus,
			)
		}
	}
	for _, t := range input.Types {
		if !entity.IsValidGoalType(t) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalType,
				"invalid goal type in filter",
				domainerror.ErrInvalidGoalType,
			)
		}
	}

	goals, err := uc.goalRepo.FindByFilter(ctx, adapter.GoalFilter{
		WorkspaceID: input.WorkspaceID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Statuses:    input.Statuses,
		Types:       input.Types,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	out := &GenerateReportOutput{
		Summary: summarize(goals),
		Goals:   goals,
	}

	if input.GroupBy != GroupByNone {
		groups, err := uc.groupGoals(ctx, input.WorkspaceID, input.GroupBy, goals)
		if err != nil {
			return nil, err
		}
		out.Groups = groups
	}

	if input.IncludeMetrics {
		out.Metrics = make(map[uuid.UUID][]*entity.Metric, len(goals))
		for _, g := range goals {
			metrics, err := uc.metricRepo.FindByGoalID(ctx, g.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to load metrics for goal %s: %w", g.ID, err)
			}
			if len(metrics) > 0 {
				out.Metrics[g.ID] = metrics
			}
		}
	}

	return out, nil
}

func summarize(goals []*entity.Goal) ReportSummary {
	summary := ReportSummary{Total: len(goals)}
	var progressSum int
	for _, g := range goals {
		progressSum += g.Progress
		switch g.Status {
		case entity.GoalStatusActive:
			summary.Active++
		case entity.GoalStatusCompleted:
			summary.Completed++
		}
	}
	if summary.Total > 0 {
		summary.AverageProgress = int(math.Round(float64(progressSum) / float64(summary.Total)))
		summary.CompletionRate = int(math.Round(float64(summary.Completed) / float64(summary.Total) * 100))
	}
	return summary
}

func (uc *GenerateReportUseCase) groupGoals(ctx context.Context, workspaceID uuid.UUID, groupBy GroupBy, goals []*entity.Goal) ([]ReportGroup, error) {
	// Owner grouping keys by member email; unknown owners fall back to the ID.
	emails := map[uuid.UUID]string{}
	if groupBy == GroupByOwner {
		members, err := uc.workspaceRepo.FindMembers(ctx, workspaceID)
		if err != nil {
			return nil, fmt.Errorf("failed to list members: %w", err)
		}
		for _, m := range members {
			emails[m.UserID] = m.UserEmail
		}
	}

	keyFor := func(g *entity.Goal) string {
		switch groupBy {
		case GroupByOwner:
			if email, ok := emails[g.OwnerID]; ok && email != "" {
				return email
			}
			return g.OwnerID.String()
		case GroupByType:
			return string(g.Type)
		case GroupByStatus:
			return string(g.Status)
		default:
			return g.CreatedAt.Format("2006-01")
		}
	}

	type bucket struct {
		count       int
		progressSum int
		completed   int
	}
	buckets := map[string]*bucket{}
	for _, g := range goals {
		key := keyFor(g)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.count++
		b.progressSum += g.Progress
		if g.Status == entity.GoalStatusCompleted {
			b.completed++
		}
	}

	groups := make([]ReportGroup, 0, len(buckets))
	for key, b := range buckets {
		groups = append(groups, ReportGroup{
			Key:             key,
			Count:           b.count,
			AverageProgress: int(math.Round(float64(b.progressSum) / float64(b.count))),
			CompletionRate:  int(math.Round(float64(b.completed) / float64(b.count) * 100)),
		})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups, nil
}
