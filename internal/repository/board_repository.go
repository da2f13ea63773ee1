package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskman/internal/model"
)

type BoardRepository struct {
	db *gorm.DB
}

// BoardStats holds the raw aggregate counts for one board. Percentages are
// derived by the handler.
type BoardStats struct {
	ListsCount     int64 `gorm:"column:lists_count"`
	TotalCards     int64 `gorm:"column:total_cards"`
	TodoCards      int64 `gorm:"column:todo_cards"`
	DoneCards      int64 `gorm:"column:done_cards"`
	HighPriority   int64 `gorm:"column:high_priority"`
	MediumPriority int64 `gorm:"column:medium_priority"`
	LowPriority    int64 `gorm:"column:low_priority"`
	OverdueCards   int64 `gorm:"column:overdue_cards"`
}

type BoardRepositoryInterface interface {
	Create(ctx context.Context, board *model.Board) error
	GetByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]model.Board, error)
	GetByIDOwned(ctx context.Context, id, userID uuid.UUID) (*model.Board, error)
	Update(ctx context.Context, board *model.Board) error
	Delete(ctx context.Context, board *model.Board) error
	Statistics(ctx context.Context, boardID uuid.UUID) (*BoardStats, error)
}

var _ BoardRepositoryInterface = (*BoardRepository)(nil)

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Create(ctx context.Context, board *model.Board) error {
	if err := r.db.WithContext(ctx).Create(board).Error; err != nil {
		return TranslateError(err)
	}
	return nil
}

func (r *BoardRepository) GetByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&boards).Error
	return boards, err
}

// GetByIDOwned resolves the board only when the owning workspace belongs to
// userID. Absent and foreign boards are indistinguishable to the caller.
func (r *BoardRepository) GetByIDOwned(ctx context.Context, id, userID uuid.UUID) (*model.Board, error) {
	var board model.Board
	err := r.db.WithContext(ctx).
		Joins("JOIN workspaces ON workspaces.id = boards.workspace_id").
		Where("boards.id = ? AND workspaces.user_id = ?", id, userID).
		First(&board).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepository) Update(ctx context.Context, board *model.Board) error {
	if err := r.db.WithContext(ctx).Save(board).Error; err != nil {
		return TranslateError(err)
	}
	return nil
}

// Delete removes the board; its lists and cards follow by cascade.
func (r *BoardRepository) Delete(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Delete(board).Error
}

func (r *BoardRepository) Statistics(ctx context.Context, boardID uuid.UUID) (*BoardStats, error) {
	var stats BoardStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(DISTINCT lists.id)                                            AS lists_count,
			COUNT(cards.id)                                                     AS total_cards,
			COUNT(CASE WHEN cards.status = 'TODO' THEN 1 END)                   AS todo_cards,
			COUNT(CASE WHEN cards.status = 'DONE' THEN 1 END)                   AS done_cards,
			COUNT(CASE WHEN cards.priority = 'HIGH' THEN 1 END)                 AS high_priority,
			COUNT(CASE WHEN cards.priority = 'MEDIUM' THEN 1 END)               AS medium_priority,
			COUNT(CASE WHEN cards.priority = 'LOW' THEN 1 END)                  AS low_priority,
			COUNT(CASE WHEN cards.status = 'TODO' AND cards.deadline < NOW() THEN 1 END) AS overdue_cards
		FROM lists
		LEFT JOIN cards ON cards.list_id = lists.id
		WHERE lists.board_id = ?`, boardID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
