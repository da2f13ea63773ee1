package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskman/internal/model"
)

type ListRepository struct {
	db *gorm.DB
}

type ListRepositoryInterface interface {
	Create(ctx context.Context, list *model.List) error
	GetByBoard(ctx context.Context, boardID uuid.UUID) ([]model.List, error)
	GetByIDOwned(ctx context.Context, id, userID uuid.UUID) (*model.List, error)
	WorkspaceID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, list *model.List) error
	Delete(ctx context.Context, list *model.List) error
}

var _ ListRepositoryInterface = (*ListRepository)(nil)

func NewListRepository(db *gorm.DB) *ListRepository {
	return &ListRepository{db: db}
}

func (r *ListRepository) Create(ctx context.Context, list *model.List) error {
	if err := r.db.WithContext(ctx).Create(list).Error; err != nil {
		return TranslateError(err)
	}
	return nil
}

func (r *ListRepository) GetByBoard(ctx context.Context, boardID uuid.UUID) ([]model.List, error) {
	var lists []model.List
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at ASC").
		Find(&lists).Error
	return lists, err
}

func (r *ListRepository) GetByIDOwned(ctx context.Context, id, userID uuid.UUID) (*model.List, error) {
	var list model.List
	err := r.db.WithContext(ctx).
		Joins("JOIN boards ON boards.id = lists.board_id").
		Joins("JOIN workspaces ON workspaces.id = boards.workspace_id").
		Where("lists.id = ? AND workspaces.user_id = ?", id, userID).
		First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// WorkspaceID walks the containment chain up to the owning workspace, for
// scoping activity entries. The list can disappear between resolution and
// this call, so a miss is reported rather than scanned as the zero UUID.
func (r *ListRepository) WorkspaceID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var workspaceID uuid.UUID
	res := r.db.WithContext(ctx).Model(&model.List{}).
		Select("boards.workspace_id").
		Joins("JOIN boards ON boards.id = lists.board_id").
		Where("lists.id = ?", id).
		Scan(&workspaceID)
	if res.Error != nil {
		return uuid.Nil, res.Error
	}
	if res.RowsAffected == 0 {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	return workspaceID, nil
}

func (r *ListRepository) Update(ctx context.Context, list *model.List) error {
	if err := r.db.WithContext(ctx).Save(list).Error; err != nil {
		return TranslateError(err)
	}
	return nil
}

// Delete removes the list; its cards follow by cascade.
func (r *ListRepository) Delete(ctx context.Context, list *model.List) error {
	return r.db.WithContext(ctx).Delete(list).Error
}
