package handler_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taskman/internal/model"
	"taskman/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SetRefreshToken(ctx context.Context, id uuid.UUID, token *string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

func (m *MockUserRepository) FindByIDAndRefreshToken(ctx context.Context, id uuid.UUID, token string) (*model.User, error) {
	args := m.Called(ctx, id, token)
	if user := args.Get(0); user != nil {
		return user.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockWorkspaceRepository struct {
	mock.Mock
}

func (m *MockWorkspaceRepository) Create(ctx context.Context, workspace *model.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) GetOwned(ctx context.Context, userID uuid.UUID) ([]model.Workspace, error) {
	args := m.Called(ctx, userID)
	if ws := args.Get(0); ws != nil {
		return ws.([]model.Workspace), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWorkspaceRepository) GetByIDOwned(ctx context.Context, id, userID uuid.UUID) (*model.Workspace, error) {
	args := m.Called(ctx, id, userID)
	if ws := args.Get(0); ws != nil {
		return ws.(*model.Workspace), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWorkspaceRepository) Update(ctx context.Context, workspace *model.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) Delete(ctx context.Context, workspace *model.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) Create(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) GetByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]model.Board, error) {
	args := m.Called(ctx, workspaceID)
	if boards := args.Get(0); boards != nil {
		return boards.([]model.Board), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBoardRepository) GetByIDOwned(ctx context.Context, id, userID uuid.UUID) (*model.Board, error) {
	args := m.Called(ctx, id, userID)
	if board := args.Get(0); board != nil {
		return board.(*model.Board), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBoardRepository) Update(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) Delete(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) Statistics(ctx context.Context, boardID uuid.UUID) (*repository.BoardStats, error) {
	args := m.Called(ctx, boardID)
	if stats := args.Get(0); stats != nil {
		return stats.(*repository.BoardStats), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) Create(ctx context.Context, list *model.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) GetByBoard(ctx context.Context, boardID uuid.UUID) ([]model.List, error) {
	args := m.Called(ctx, boardID)
	if lists := args.Get(0); lists != nil {
		return lists.([]model.List), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockListRepository) GetByIDOwned(ctx context.Context, id, userID uuid.UUID) (*model.List, error) {
	args := m.Called(ctx, id, userID)
	if list := args.Get(0); list != nil {
		return list.(*model.List), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockListRepository) WorkspaceID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockListRepository) Update(ctx context.Context, list *model.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) Delete(ctx context.Context, list *model.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Create(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) GetByList(ctx context.Context, listID uuid.UUID) ([]model.Card, error) {
	args := m.Called(ctx, listID)
	if cards := args.Get(0); cards != nil {
		return cards.([]model.Card), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCardRepository) GetByIDOwned(ctx context.Context, id, userID uuid.UUID) (*model.Card, error) {
	args := m.Called(ctx, id, userID)
	if card := args.Get(0); card != nil {
		return card.(*model.Card), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCardRepository) WorkspaceID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCardRepository) Update(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) Delete(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Log(ctx context.Context, workspaceID uuid.UUID, title string) error {
	args := m.Called(ctx, workspaceID, title)
	return args.Error(0)
}

func (m *MockActivityRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]model.Activity, error) {
	args := m.Called(ctx, workspaceID)
	if activities := args.Get(0); activities != nil {
		return activities.([]model.Activity), args.Error(1)
	}
	return nil, args.Error(1)
}

var (
	_ repository.UserRepositoryInterface      = (*MockUserRepository)(nil)
	_ repository.WorkspaceRepositoryInterface = (*MockWorkspaceRepository)(nil)
	_ repository.BoardRepositoryInterface     = (*MockBoardRepository)(nil)
	_ repository.ListRepositoryInterface      = (*MockListRepository)(nil)
	_ repository.CardRepositoryInterface      = (*MockCardRepository)(nil)
	_ repository.ActivityRepositoryInterface  = (*MockActivityRepository)(nil)
)
