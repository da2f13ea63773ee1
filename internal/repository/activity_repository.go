package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskman/internal/model"
)

type ActivityRepository struct {
	db *gorm.DB
}

type ActivityRepositoryInterface interface {
	Log(ctx context.Context, workspaceID uuid.UUID, title string) error
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]model.Activity, error)
}

var _ ActivityRepositoryInterface = (*ActivityRepository)(nil)

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Log appends one audit entry. The trail is append-only; nothing in the
// application updates or deletes activities.
func (r *ActivityRepository) Log(ctx context.Context, workspaceID uuid.UUID, title string) error {
	activity := &model.Activity{
		Title:       title,
		WorkspaceID: workspaceID,
	}
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *ActivityRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&activities).Error
	return activities, err
}
