// Package workspace contains workspace-related use cases.
package workspace

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/activity"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// UpdateWorkspaceInput represents the input for workspace updates. Nil
// pointers leave the corresponding field untouched.
type UpdateWorkspaceInput struct {
	WorkspaceID uuid.UUID
	UserID      uuid.UUID
	Name        *string
	Description *string
}

// UpdateWorkspaceOutput represents the output of a workspace update.
type UpdateWorkspaceOutput struct {
	Workspace *entity.Workspace
}

// UpdateWorkspaceUseCase handles workspace update logic. Requires ADMIN.
type UpdateWorkspaceUseCase struct {
	workspaceRepo adapter.WorkspaceRepository
	access        *AccessChecker
	recorder      *activity.Recorder
}

// NewUpdateWorkspaceUseCase creates a new UpdateWorkspaceUseCase instance.
func NewUpdateWorkspaceUseCase(workspaceRepo adapter.WorkspaceRepository, access *AccessChecker, recorder *activity.Recorder) *UpdateWorkspaceUseCase {
	return &UpdateWorkspaceUseCase{
		workspaceRepo: workspaceRepo,
		access:        access,
		recorder:      recorder,
	}
}

// Execute performs the workspace update.
func (uc *UpdateWorkspaceUseCase) Execute(ctx context.Context, input UpdateWorkspaceInput) (*UpdateWorkspaceOutput, error) {
	if _, err := uc.access.CheckAccess(ctx, input.WorkspaceID, input.UserID, entity.WorkspaceRoleAdmin); err != nil {
		return nil, err
	}

	workspace, err := uc.workspaceRepo.FindByID(ctx, input.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewWorkspaceError(
				domainerror.ErrCodeMissingWorkspaceFields,
				"workspace name is required",
				nil,
			)
		}
		workspace.Name = name
	}
	if input.Description != nil {
		workspace.Description = *input.Description
	}
	workspace.UpdatedAt = time.Now().UTC()

	if err := uc.workspaceRepo.Update(ctx, workspace); err != nil {
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}

	uc.recorder.Record(ctx, entity.ActivityWorkspaceUpdated,
		fmt.Sprintf("updated workspace %q", workspace.Name),
		input.UserID, workspace.ID, nil, nil,
	)

	return &UpdateWorkspaceOutput{Workspace: workspace}, nil
}
