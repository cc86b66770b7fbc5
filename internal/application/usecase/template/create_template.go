// Package template contains goal template use cases.
package template

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/workspace"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// CreateTemplateInput represents the input for template creation.
type CreateTemplateInput struct {
	UserID             uuid.UUID
	Name               string
	Description        string
	Type               entity.GoalType
	Title              string
	DefaultDescription string
	WorkspaceID        *uuid.UUID
	IsPublic           bool
}

// CreateTemplateOutput represents the output of template creation.
type CreateTemplateOutput struct {
	Template *entity.GoalTemplate
}

// CreateTemplateUseCase handles template creation logic.
type CreateTemplateUseCase struct {
	templateRepo adapter.GoalTemplateRepository
	access       *workspace.AccessChecker
}

// NewCreateTemplateUseCase creates a new CreateTemplateUseCase instance.
func NewCreateTemplateUseCase(templateRepo adapter.GoalTemplateRepository, access *workspace.AccessChecker) *CreateTemplateUseCase {
	return &CreateTemplateUseCase{
		templateRepo: templateRepo,
		access:       access,
	}
}

// Execute performs the template creation.
func (uc *CreateTemplateUseCase) Execute(ctx context.Context, input CreateTemplateInput) (*CreateTemplateOutput, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Title) == "" {
		return nil, domainerror.NewTemplateError(
			domainerror.ErrCodeMissingTemplateFields,
			"template name and title are required",
			nil,
		)
	}
	if !entity.IsValidGoalType(input.Type) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"invalid goal type",
			domainerror.ErrInvalidGoalType,
		)
	}

	// Sharing into a workspace requires membership there.
	if input.WorkspaceID != nil {
		if _, err := uc.access.CheckAccess(ctx, *input.WorkspaceID, input.UserID, entity.WorkspaceRoleMember); err != nil {
			return nil, err
		}
	}

	template := entity.NewGoalTemplate(input.Name, input.Description, input.Type, input.Title, input.DefaultDescription, input.UserID, input.WorkspaceID, input.IsPublic)

	if err := uc.templateRepo.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return &CreateTemplateOutput{Template: template}, nil
}
