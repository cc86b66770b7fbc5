// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/workspace"
	"github.com/goalflow/backend/internal/domain/entity"
)

// SearchGoalsInput represents the input for goal search.
type SearchGoalsInput struct {
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
	Query       string
}

// SearchGoalsOutput represents the output of goal search.
type SearchGoalsOutput struct {
	Goals []*entity.Goal
}

// SearchGoalsUseCase handles substring search over goal titles and
// descriptions.
type SearchGoalsUseCase struct {
	goalRepo adapter.GoalRepository
	access   *workspace.AccessChecker
}

// NewSearchGoalsUseCase creates a new SearchGoalsUseCase instance.
func NewSearchGoalsUseCase(goalRepo adapter.GoalRepository, access *workspace.AccessChecker) *SearchGoalsUseCase {
	return &SearchGoalsUseCase{
		goalRepo: goalRepo,
		access:   access,
	}
}

// Execute performs the search. A blank query returns no results.
func (uc *SearchGoalsUseCase) Execute(ctx context.Context, input SearchGoalsInput) (*SearchGoalsOutput, error) {
	if _, err := uc.access.CheckAccess(ctx, input.WorkspaceID, input.UserID, entity.WorkspaceRoleViewer); err != nil {
		return nil, err
	}

	query := strings.TrimSpace(input.Query)
	if query == "" {
		return &SearchGoalsOutput{Goals: []*entity.Goal{}}, nil
	}

	goals, err := uc.goalRepo.Search(ctx, input.UserID, input.WorkspaceID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search goals: %w", err)
	}

	return &SearchGoalsOutput{Goals: goals}, nil
}
