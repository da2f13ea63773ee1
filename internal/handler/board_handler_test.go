package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taskman/internal/handler"
	"taskman/internal/model"
	"taskman/internal/repository"
)

type boardTestEnv struct {
	router     *gin.Engine
	boards     *MockBoardRepository
	lists      *MockListRepository
	activities *MockActivityRepository
	userID     uuid.UUID
}

func setupBoardTest() *boardTestEnv {
	gin.SetMode(gin.TestMode)
	env := &boardTestEnv{
		boards:     new(MockBoardRepository),
		lists:      new(MockListRepository),
		activities: new(MockActivityRepository),
		userID:     uuid.New(),
	}

	h := handler.NewBoardHandler(env.boards, env.lists, env.activities)

	r := gin.New()
	api := r.Group("/api", identityMiddleware(env.userID))
	api.GET("/boards/:id", h.GetByID)
	api.PATCH("/boards/:id", h.Update)
	api.DELETE("/boards/:id", h.Delete)
	api.GET("/boards/:id/lists", h.GetLists)
	api.POST("/boards/:id/lists", h.CreateList)
	api.GET("/boards/:id/statistics", h.Statistics)

	env.router = r
	return env
}

func (env *boardTestEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, _ := http.NewRequest("GET", path, nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)
	return resp
}

func TestGetBoard_NotOwned(t *testing.T) {
	// Arrange
	env := setupBoardTest()
	boardID := uuid.New()

	env.boards.On("GetByIDOwned", mock.Anything, boardID, env.userID).Return(nil, nil)

	// Act
	resp := env.get(t, "/api/boards/"+boardID.String())

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Board not found")
}

func TestDeleteBoard_LogsActivity(t *testing.T) {
	// Arrange
	env := setupBoardTest()
	board := &model.Board{ID: uuid.New(), Title: "Sprint 1", Color: "#ff0000", WorkspaceID: uuid.New()}

	env.boards.On("GetByIDOwned", mock.Anything, board.ID, env.userID).Return(board, nil)
	env.boards.On("Delete", mock.Anything, board).Return(nil)
	env.activities.On("Log", mock.Anything, board.WorkspaceID, `Deleted board "Sprint 1"`).Return(nil)

	req, _ := http.NewRequest("DELETE", "/api/boards/"+board.ID.String(), nil)

	// Act
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Board deleted successfully")

	env.boards.AssertExpectations(t)
	env.activities.AssertNumberOfCalls(t, "Log", 1)
}

func TestUpdateBoard_NoFields(t *testing.T) {
	// Arrange
	env := setupBoardTest()
	board := &model.Board{ID: uuid.New(), Title: "Sprint 1", Color: "#ff0000", WorkspaceID: uuid.New()}

	env.boards.On("GetByIDOwned", mock.Anything, board.ID, env.userID).Return(board, nil)

	// Act
	resp := postPatch(env.router, "/api/boards/"+board.ID.String(), map[string]string{})

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "No fields to update")
}

func TestBoardStatistics_Math(t *testing.T) {
	// Arrange: 8 cards, 3 done -> round(37.5) = 38
	env := setupBoardTest()
	board := &model.Board{ID: uuid.New(), Title: "Sprint 1", Color: "#ff0000", WorkspaceID: uuid.New()}
	stats := &repository.BoardStats{
		ListsCount:     3,
		TotalCards:     8,
		TodoCards:      5,
		DoneCards:      3,
		HighPriority:   2,
		MediumPriority: 4,
		LowPriority:    2,
		OverdueCards:   1,
	}

	env.boards.On("GetByIDOwned", mock.Anything, board.ID, env.userID).Return(board, nil)
	env.boards.On("Statistics", mock.Anything, board.ID).Return(stats, nil)

	// Act
	resp := env.get(t, "/api/boards/"+board.ID.String()+"/statistics")

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	var got handler.BoardStatisticsResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, board.ID.String(), got.BoardID)
	assert.Equal(t, "Sprint 1", got.BoardTitle)
	assert.Equal(t, int64(8), got.TotalTasks)
	assert.Equal(t, int64(3), got.CompletedTasks)
	assert.Equal(t, int64(5), got.PendingTasks)
	assert.Equal(t, int64(1), got.OverdueTasks)
	assert.Equal(t, 38, got.CompletionPercentage)
	assert.Equal(t, int64(2), got.PriorityBreakdown.High)
	assert.Equal(t, int64(4), got.PriorityBreakdown.Medium)
	assert.Equal(t, int64(2), got.PriorityBreakdown.Low)
	assert.Equal(t, int64(3), got.ListsCount)
}

func TestBoardStatistics_EmptyBoard(t *testing.T) {
	// Arrange: no cards means 0%, not a division by zero
	env := setupBoardTest()
	board := &model.Board{ID: uuid.New(), Title: "Empty", Color: "#00ff00", WorkspaceID: uuid.New()}

	env.boards.On("GetByIDOwned", mock.Anything, board.ID, env.userID).Return(board, nil)
	env.boards.On("Statistics", mock.Anything, board.ID).Return(&repository.BoardStats{}, nil)

	// Act
	resp := env.get(t, "/api/boards/"+board.ID.String()+"/statistics")

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	var got handler.BoardStatisticsResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, 0, got.CompletionPercentage)
	assert.Equal(t, int64(0), got.TotalTasks)
}

func TestCreateList_LogsActivity(t *testing.T) {
	// Arrange
	env := setupBoardTest()
	board := &model.Board{ID: uuid.New(), Title: "Sprint 1", Color: "#ff0000", WorkspaceID: uuid.New()}

	env.boards.On("GetByIDOwned", mock.Anything, board.ID, env.userID).Return(board, nil)
	env.lists.On("Create", mock.Anything, mock.AnythingOfType("*model.List")).Return(nil)
	env.activities.On("Log", mock.Anything, board.WorkspaceID, `Created list "In Progress"`).Return(nil)

	// Act
	resp := postJSON(env.router, "/api/boards/"+board.ID.String()+"/lists", handler.CreateListRequest{
		Title: "In Progress",
	}, "")

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)

	var created model.List
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, board.ID, created.BoardID)

	env.lists.AssertExpectations(t)
	env.activities.AssertNumberOfCalls(t, "Log", 1)
}
