package template

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// DeleteTemplateInput represents the input for template deletion.
type DeleteTemplateInput struct {
	UserID     uuid.UUID
	TemplateID uuid.UUID
}

// DeleteTemplateOutput represents the output of template deletion.
type DeleteTemplateOutput struct {
	Message string
}

// DeleteTemplateUseCase handles template deletion logic. Only the owner may
// delete a template.
type DeleteTemplateUseCase struct {
	templateRepo adapter.GoalTemplateRepository
}

// NewDeleteTemplateUseCase creates a new DeleteTemplateUseCase instance.
func NewDeleteTemplateUseCase(templateRepo adapter.GoalTemplateRepository) *DeleteTemplateUseCase {
	return &DeleteTemplateUseCase{
		templateRepo: templateRepo,
	}
}

// Execute performs the template deletion.
func (uc *DeleteTemplateUseCase) Execute(ctx context.Context, input DeleteTemplateInput) (*DeleteTemplateOutput, error) {
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
			"only the template owner can delete it",
			domainerror.ErrTemplateAccessDenied,
		)
	}

	if err := uc.templateRepo.Delete(ctx, input.TemplateID); err != nil {
		return nil, fmt.Errorf("failed to delete template: %w", err)
	}
	return &DeleteTemplateOutput{Message: "Template deleted"}, nil
}
