package template

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/goal"
	"github.com/goalflow/backend/internal/application/usecase/workspace"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// CreateGoalFromTemplateInput represents the input for instantiating a
// template into a goal.
type CreateGoalFromTemplateInput struct {
	UserID      uuid.UUID
	TemplateID  uuid.UUID
	WorkspaceID uuid.UUID
	ParentID    *uuid.UUID
	// Title overrides the template title when set.
	Title *string
}

// CreateGoalFromTemplateOutput represents the created goal.
type CreateGoalFromTemplateOutput struct {
	Goal *entity.Goal
}

// CreateGoalFromTemplateUseCase instantiates a template through the regular
// goal creation path, deriving dates from the template type.
type CreateGoalFromTemplateUseCase struct {
	templateRepo adapter.GoalTemplateRepository
	access       *workspace.AccessChecker
	createGoal   *goal.CreateGoalUseCase
}

// NewCreateGoalFromTemplateUseCase creates a new CreateGoalFromTemplateUseCase instance.
func NewCreateGoalFromTemplateUseCase(templateRepo adapter.GoalTemplateRepository, access *workspace.AccessChecker, createGoal *goal.CreateGoalUseCase) *CreateGoalFromTemplateUseCase {
	return &CreateGoalFromTemplateUseCase{
		templateRepo: templateRepo,
		access:       access,
		createGoal:   createGoal,
	}
}

// Execute instantiates the template.
func (uc *CreateGoalFromTemplateUseCase) Execute(ctx context.Context, input CreateGoalFromTemplateInput) (*CreateGoalFromTemplateOutput, error) {
	template, err := uc.templateRepo.FindByID(ctx, input.TemplateID)
	if err != nil {
		return nil, domainerror.NewTemplateError(
			domainerror.ErrCodeTemplateNotFound,
			"template not found",
			err,
		)
	}
	if err := uc.checkVisibility(ctx, template, input.UserID); err != nil {
		return nil, err
	}

	title := template.Title
	if input.Title != nil && *input.Title != "" {
		title = *input.Title
	}
	start, end := template.GoalDates(time.Now().UTC())

	out, err := uc.createGoal.Execute(ctx, goal.CreateGoalInput{
		OwnerID:     input.UserID,
		WorkspaceID: input.WorkspaceID,
		Title:       title,
		Description: template.DefaultDescription,
		Type:        template.Type,
		StartDate:   start,
		EndDate:     end,
		ParentID:    input.ParentID,
	})
	if err != nil {
		return nil, err
	}
	return &CreateGoalFromTemplateOutput{Goal: out.Goal}, nil
}

// checkVisibility enforces the template visibility rule: owner, public, or
// member of the template's workspace.
func (uc *CreateGoalFromTemplateUseCase) checkVisibility(ctx context.Context, template *entity.GoalTemplate, userID uuid.UUID) error {
	if template.OwnerID == userID || template.IsPublic {
		return nil
	}
	if template.WorkspaceID != nil {
		if _, err := uc.access.CheckAccess(ctx, *template.WorkspaceID, userID, entity.WorkspaceRoleViewer); err == nil {
			return nil
		}
	}
	return domainerror.NewTemplateError(
		domainerror.ErrCodeTemplateAccessDenied,
		"template access denied",
		domainerror.ErrTemplateAccessDenied,
	)
}
