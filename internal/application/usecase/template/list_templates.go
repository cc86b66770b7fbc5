package template

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
)

// ListTemplatesInput represents the input for listing visible templates.
type ListTemplatesInput struct {
	UserID      uuid.UUID
	WorkspaceID *uuid.UUID
}

// ListTemplatesOutput represents the output of listing visible templates.
type ListTemplatesOutput struct {
	Templates []*entity.GoalTemplate
}

// ListTemplatesUseCase lists templates visible to a user: their own, public
// ones, and those shared with the given workspace.
type ListTemplatesUseCase struct {
	templateRepo adapter.GoalTemplateRepository
}

// NewListTemplatesUseCase creates a new ListTemplatesUseCase instance.
func NewListTemplatesUseCase(templateRepo adapter.GoalTemplateRepository) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{
		templateRepo: templateRepo,
	}
}

// Execute lists the visible templates.
func (uc *ListTemplatesUseCase) Execute(ctx context.Context, input ListTemplatesInput) (*ListTemplatesOutput, error) {
	templates, err := uc.templateRepo.FindVisible(ctx, input.UserID, input.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return &ListTemplatesOutput{Templates: templates}, nil
}
