package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskman/internal/model"
)

type CardRepository struct {
	db *gorm.DB
}

type CardRepositoryInterface interface {
	Create(ctx context.Context, card *model.Card) error
	GetByList(ctx context.Context, listID uuid.UUID) ([]model.Card, error)
	GetByIDOwned(ctx context.Context, id, userID uuid.UUID) (*model.Card, error)
	WorkspaceID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, card *model.Card) error
	Delete(ctx context.Context, card *model.Card) error
}

var _ CardRepositoryInterface = (*CardRepository)(nil)

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return TranslateError(err)
	}
	return nil
}

func (r *CardRepository) GetByList(ctx context.Context, listID uuid.UUID) ([]model.Card, error) {
	var cards []model.Card
	err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("created_at ASC").
		Find(&cards).Error
	return cards, err
}

func (r *CardRepository) GetByIDOwned(ctx context.Context, id, userID uuid.UUID) (*model.Card, error) {
	var card model.Card
	err := r.db.WithContext(ctx).
		Joins("JOIN lists ON lists.id = cards.list_id").
		Joins("JOIN boards ON boards.id = lists.board_id").
		Joins("JOIN workspaces ON workspaces.id = boards.workspace_id").
		Where("cards.id = ? AND workspaces.user_id = ?", id, userID).
		First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// WorkspaceID walks the containment chain up to the owning workspace, for
// scoping activity entries. The card can disappear between resolution and
// this call, so a miss is reported rather than scanned as the zero UUID.
func (r *CardRepository) WorkspaceID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var workspaceID uuid.UUID
	res := r.db.WithContext(ctx).Model(&model.Card{}).
		Select("boards.workspace_id").
		Joins("JOIN lists ON lists.id = cards.list_id").
		Joins("JOIN boards ON boards.id = lists.board_id").
		Where("cards.id = ?", id).
		Scan(&workspaceID)
	if res.Error != nil {
		return uuid.Nil, res.Error
	}
	if res.RowsAffected == 0 {
		return uuid.Nil, gorm.ErrRecordNotFound
	}
	return workspaceID, nil
}

func (r *CardRepository) Update(ctx context.Context, card *model.Card) error {
	if err := r.db.WithContext(ctx).Save(card).Error; err != nil {
		return TranslateError(err)
	}
	return nil
}

func (r *CardRepository) Delete(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Delete(card).Error
}
