// Package workspace contains workspace-related use cases.
package workspace

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/activity"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// CreateWorkspaceInput represents the input for workspace creation.
type CreateWorkspaceInput struct {
	Name        string
	Description string
	OwnerID     uuid.UUID
}

// CreateWorkspaceOutput represents the output of workspace creation.
type CreateWorkspaceOutput struct {
	Workspace *entity.Workspace
}

// CreateWorkspaceUseCase handles workspace creation logic.
type CreateWorkspaceUseCase struct {
	workspaceRepo adapter.WorkspaceRepository
	recorder      *activity.Recorder
}

// NewCreateWorkspaceUseCase creates a new CreateWorkspaceUseCase instance.
func NewCreateWorkspaceUseCase(workspaceRepo adapter.WorkspaceRepository, recorder *activity.Recorder) *CreateWorkspaceUseCase {
	return &CreateWorkspaceUseCase{
		workspaceRepo: workspaceRepo,
		recorder:      recorder,
	}
}

// Execute creates the workspace and its owner membership atomically.
func (uc *CreateWorkspaceUseCase) Execute(ctx context.Context, input CreateWorkspaceInput) (*CreateWorkspaceOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewWorkspaceError(
			domainerror.ErrCodeMissingWorkspaceFields,
			"workspace name is required",
			nil,
		)
	}

	workspace := entity.NewWorkspace(name, input.Description, input.OwnerID)
	ownerMember := entity.NewWorkspaceMember(input.OwnerID, workspace.ID, entity.WorkspaceRoleOwner)

	if err := uc.workspaceRepo.CreateWithOwner(ctx, workspace, ownerMember); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	uc.recorder.Record(ctx, entity.ActivityWorkspaceCreated,
		fmt.Sprintf("created workspace %q", workspace.Name),
		input.OwnerID, workspace.ID, nil, nil,
	)

	return &CreateWorkspaceOutput{Workspace: workspace}, nil
}
