// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
	"github.com/goalflow/backend/internal/integration/persistence/model"
)

// workspaceRepository implements the adapter.WorkspaceRepository interface.
type workspaceRepository struct {
	db *gorm.DB
}

// NewWorkspaceRepository creates a new workspace repository instance.
func NewWorkspaceRepository(db *gorm.DB) adapter.WorkspaceRepository {
	return &workspaceRepository{
		db: db,
	}
}

// CreateWithOwner creates a workspace and its owner membership row in one
// transaction.
func (r *workspaceRepository) CreateWithOwner(ctx context.Context, workspace *entity.Workspace, ownerMember *entity.WorkspaceMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.WorkspaceFromEntity(workspace)).Error; err != nil {
			return err
		}
		return tx.Create(model.MemberFromEntity(ownerMember)).Error
	})
}

// FindByID retrieves a workspace by its ID.
func (r *workspaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Workspace, error) {
	var workspaceModel model.WorkspaceModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&workspaceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrWorkspaceNotFound
		}
		return nil, result.Error
	}
	return workspaceModel.ToEntity(), nil
}

// FindByUser retrieves all workspaces the user owns or is a member of.
func (r *workspaceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Workspace, error) {
	var workspaceModels []model.WorkspaceModel
	result := r.db.WithContext(ctx).
		Joins("JOIN workspace_members ON workspace_members.workspace_id = workspaces.id").
		Where("workspace_members.user_id = ?", userID).
		Order("workspaces.created_at DESC").
		Find(&workspaceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	workspaces := make([]*entity.Workspace, len(workspaceModels))
	for i := range workspaceModels {
		workspaces[i] = workspaceModels[i].ToEntity()
	}
	return workspaces, nil
}

// Update updates an existing workspace in the database.
func (r *workspaceRepository) Update(ctx context.Context, workspace *entity.Workspace) error {
	result := r.db.WithContext(ctx).Save(model.WorkspaceFromEntity(workspace))
	return result.Error
}

// Delete removes a workspace and its memberships.
func (r *workspaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.WorkspaceMemberModel{}, "workspace_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.WorkspaceInviteModel{}, "workspace_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.WorkspaceModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrWorkspaceNotFound
		}
		return nil
	})
}

// FindMember retrieves the membership row for a user in a workspace,
// nil if the user is not a member.
func (r *workspaceRepository) FindMember(ctx context.Context, workspaceID, userID uuid.UUID) (*entity.WorkspaceMember, error) {
	var memberModel model.WorkspaceMemberModel
	result := r.db.WithContext(ctx).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		First(&memberModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return memberModel.ToEntity(), nil
}

// FindMemberByID retrieves a membership row by its ID.
func (r *workspaceRepository) FindMemberByID(ctx context.Context, memberID uuid.UUID) (*entity.WorkspaceMember, error) {
	var memberModel model.WorkspaceMemberModel
	result := r.db.WithContext(ctx).Where("id = ?", memberID).First(&memberModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMemberNotFound
		}
		return nil, result.Error
	}
	return memberModel.ToEntity(), nil
}

// FindMembers retrieves all membership rows of a workspace with user info.
func (r *workspaceRepository) FindMembers(ctx context.Context, workspaceID uuid.UUID) ([]*entity.WorkspaceMember, error) {
	var memberModels []model.WorkspaceMemberModel
	result := r.db.WithContext(ctx).
		Preload("User").
		Where("workspace_id = ?", workspaceID).
		Order("joined_at ASC").
		Find(&memberModels)
	if result.Error != nil {
		return nil, result.Error
	}

	members := make([]*entity.WorkspaceMember, len(memberModels))
	for i := range memberModels {
		members[i] = memberModels[i].ToEntity()
	}
	return members, nil
}

// AddMember inserts a membership row.
func (r *workspaceRepository) AddMember(ctx context.Context, member *entity.WorkspaceMember) error {
	result := r.db.WithContext(ctx).Create(model.MemberFromEntity(member))
	return result.Error
}

// UpdateMember updates a membership row.
func (r *workspaceRepository) UpdateMember(ctx context.Context, member *entity.WorkspaceMember) error {
	result := r.db.WithContext(ctx).Save(model.MemberFromEntity(member))
	return result.Error
}

// RemoveMember deletes a membership row.
func (r *workspaceRepository) RemoveMember(ctx context.Context, memberID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.WorkspaceMemberModel{}, "id = ?", memberID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMemberNotFound
	}
	return nil
}

// CreateInvite inserts an invite row.
func (r *workspaceRepository) CreateInvite(ctx context.Context, invite *entity.WorkspaceInvite) error {
	result := r.db.WithContext(ctx).Create(model.InviteFromEntity(invite))
	return result.Error
}

// FindInviteByID retrieves an invite by its ID.
func (r *workspaceRepository) FindInviteByID(ctx context.Context, id uuid.UUID) (*entity.WorkspaceInvite, error) {
	var inviteModel model.WorkspaceInviteModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&inviteModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInviteNotFound
		}
		return nil, result.Error
	}
	return inviteModel.ToEntity(), nil
}

// FindInviteByToken retrieves an invite by its token.
func (r *workspaceRepository) FindInviteByToken(ctx context.Context, token string) (*entity.WorkspaceInvite, error) {
	var inviteModel model.WorkspaceInviteModel
	result := r.db.WithContext(ctx).Where("token = ?", token).First(&inviteModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInviteNotFound
		}
		return nil, result.Error
	}
	return inviteModel.ToEntity(), nil
}

// FindOpenInvite retrieves the unaccepted invite for an email in a
// workspace, nil if none exists.
func (r *workspaceRepository) FindOpenInvite(ctx context.Context, workspaceID uuid.UUID, email string) (*entity.WorkspaceInvite, error) {
	var inviteModel model.WorkspaceInviteModel
	result := r.db.WithContext(ctx).
		Where("workspace_id = ? AND email = ? AND accepted_at IS NULL AND expires_at > ?",
			workspaceID, email, time.Now().UTC()).
		First(&inviteModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return inviteModel.ToEntity(), nil
}

// FindInvitesByWorkspace retrieves all invites of a workspace, newest first.
func (r *workspaceRepository) FindInvitesByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*entity.WorkspaceInvite, error) {
	var inviteModels []model.WorkspaceInviteModel
	result := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&inviteModels)
	if result.Error != nil {
		return nil, result.Error
	}

	invites := make([]*entity.WorkspaceInvite, len(inviteModels))
	for i := range inviteModels {
		invites[i] = inviteModels[i].ToEntity()
	}
	return invites, nil
}

// AcceptInvite stamps the invite accepted and adds the membership row in
// one transaction.
func (r *workspaceRepository) AcceptInvite(ctx context.Context, invite *entity.WorkspaceInvite, member *entity.WorkspaceMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model.InviteFromEntity(invite)).Error; err != nil {
			return err
		}
		return tx.Create(model.MemberFromEntity(member)).Error
	})
}

// DeleteInvite removes an invite.
func (r *workspaceRepository) DeleteInvite(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.WorkspaceInviteModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrInviteNotFound
	}
	return nil
}
