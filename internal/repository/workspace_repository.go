package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskman/internal/model"
)

type WorkspaceRepository struct {
	db *gorm.DB
}

type WorkspaceRepositoryInterface interface {
	Create(ctx context.Context, workspace *model.Workspace) error
	GetOwned(ctx context.Context, userID uuid.UUID) ([]model.Workspace, error)
	GetByIDOwned(ctx context.Context, id, userID uuid.UUID) (*model.Workspace, error)
	Update(ctx context.Context, workspace *model.Workspace) error
	Delete(ctx context.Context, workspace *model.Workspace) error
}

var _ WorkspaceRepositoryInterface = (*WorkspaceRepository)(nil)

func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

func (r *WorkspaceRepository) Create(ctx context.Context, workspace *model.Workspace) error {
	if err := r.db.WithContext(ctx).Create(workspace).Error; err != nil {
		return TranslateError(err)
	}
	return nil
}

func (r *WorkspaceRepository) GetOwned(ctx context.Context, userID uuid.UUID) ([]model.Workspace, error) {
	var workspaces []model.Workspace
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&workspaces).Error
	return workspaces, err
}

// GetByIDOwned returns (nil, nil) both when the workspace is absent and when
// it belongs to someone else, so callers answer 404 either way.
func (r *WorkspaceRepository) GetByIDOwned(ctx context.Context, id, userID uuid.UUID) (*model.Workspace, error) {
	var workspace model.Workspace
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&workspace).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

func (r *WorkspaceRepository) Update(ctx context.Context, workspace *model.Workspace) error {
	if err := r.db.WithContext(ctx).Save(workspace).Error; err != nil {
		return TranslateError(err)
	}
	return nil
}

// Delete removes the workspace; boards, lists and cards go with it through
// foreign-key cascade.
func (r *WorkspaceRepository) Delete(ctx context.Context, workspace *model.Workspace) error {
	return r.db.WithContext(ctx).Delete(workspace).Error
}
