package template

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// UpdateTemplateInput represents the input for template updates. Nil fields
// are left unchanged.
type UpdateTemplateInput struct {
	UserID             uuid.UUID
	TemplateID         uuid.UUID
	Name               *string
	Description        *string
	Title              *string
	DefaultDescription *string
	IsPublic           *bool
}

// UpdateTemplateOutput represents the output of template updates.
type UpdateTemplateOutput struct {
	Template *entity.GoalTemplate
}

// UpdateTemplateUseCase handles template update logic. Only the owner may
// update a template.
type UpdateTemplateUseCase struct {
	templateRepo adapter.GoalTemplateRepository
}

// NewUpdateTemplateUseCase creates a new UpdateTemplateUseCase instance.
func NewUpdateTemplateUseCase(templateRepo adapter.GoalTemplateRepository) *UpdateTemplateUseCase {
	return &UpdateTemplateUseCase{
		templateRepo: templateRepo,
	}
}

// Execute performs the template update.
func (uc *UpdateTemplateUseCase) Execute(ctx context.Context, input UpdateTemplateInput) (*UpdateTemplateOutput, error) {
	template, err := uc.templateRepo.FindByID(ctx, input.TemplateID)
	if err != nil {
		return nil, domainerror.NewTemplateError(
			domainerror.ErrCodeTemplateNotFound,
			"template not found",
			err,
		)
	}
	if template.OwnerID != input.UserID {
		return nil, domainerror.NewTemplateError(
			domainerror.ErrCodeTemplateAccessDenied,
			"only the template owner can update it",
			domainerror.ErrTemplateAccessDenied,
		)
	}

	if input.Name != nil {
		template.Name = *input.Name
	}
	if input.Description != nil {
		template.Description = *input.Description
	}
	if input.Title != nil {
		template.Title = *input.Title
	}
	if input.DefaultDescription != nil {
		template.DefaultDescription = *input.DefaultDescription
	}
	if input.IsPublic != nil {
		template.IsPublic = *input.IsPublic
	}
	template.UpdatedAt = time.Now().UTC()

	if err := uc.templateRepo.Update(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}
	return &UpdateTemplateOutput{Template: template}, nil
}
