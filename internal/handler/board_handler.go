package handler

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskman/internal/model"
	"taskman/internal/repository"
)

type BoardHandler struct {
	boards     repository.BoardRepositoryInterface
	lists      repository.ListRepositoryInterface
	activities repository.ActivityRepositoryInterface
}

func NewBoardHandler(
	boards repository.BoardRepositoryInterface,
	lists repository.ListRepositoryInterface,
	activities repository.ActivityRepositoryInterface,
) *BoardHandler {
	return &BoardHandler{
		boards:     boards,
		lists:      lists,
		activities: activities,
	}
}

type UpdateBoardRequest struct {
	Title string `json:"title"`
	Color string `json:"color"`
}

type CreateListRequest struct {
	Title string `json:"title" binding:"required"`
}

type PriorityBreakdown struct {
	High   int64 `json:"high"`
	Medium int64 `json:"medium"`
	Low    int64 `json:"low"`
}

type BoardStatisticsResponse struct {
	BoardID              string            `json:"boardId"`
	BoardTitle           string            `json:"boardTitle"`
	BoardColor           string            `json:"boardColor"`
	TotalTasks           int64             `json:"totalTasks"`
	CompletedTasks       int64             `json:"completedTasks"`
	PendingTasks         int64             `json:"pendingTasks"`
	OverdueTasks         int64             `json:"overdueTasks"`
	CompletionPercentage int               `json:"completionPercentage"`
	PriorityBreakdown    PriorityBreakdown `json:"priorityBreakdown"`
	ListsCount           int64             `json:"listsCount"`
}

// resolveOwned fetches the board under the strict ownership policy and
// answers 404 itself when it cannot be seen by the caller.
func (h *BoardHandler) resolveOwned(c *gin.Context) *model.Board {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	id, ok := pathID(c)
	if !ok {
		return nil
	}

	board, err := h.boards.GetByIDOwned(c.Request.Context(), id, userID)
	if err != nil {
		respondInternal(c, err)
		return nil
	}
	if board == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Board not found"})
		return nil
	}
	return board
}

func (h *BoardHandler) GetByID(c *gin.Context) {
	board := h.resolveOwned(c)
	if board == nil {
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *BoardHandler) Update(c *gin.Context) {
	board := h.resolveOwned(c)
	if board == nil {
		return
	}

	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}
	if req.Title == "" && req.Color == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No fields to update"})
		return
	}

	if req.Title != "" {
		board.Title = req.Title
	}
	if req.Color != "" {
		board.Color = req.Color
	}

	if err := h.boards.Update(c.Request.Context(), board); err != nil {
		respondRepoError(c, err)
		return
	}

	title := fmt.Sprintf("Updated board %q", board.Title)
	if err := h.activities.Log(c.Request.Context(), board.WorkspaceID, title); err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

func (h *BoardHandler) Delete(c *gin.Context) {
	board := h.resolveOwned(c)
	if board == nil {
		return
	}

	// Cascade takes the board's lists and cards with it.
	if err := h.boards.Delete(c.Request.Context(), board); err != nil {
		respondInternal(c, err)
		return
	}

	title := fmt.Sprintf("Deleted board %q", board.Title)
	if err := h.activities.Log(c.Request.Context(), board.WorkspaceID, title); err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board deleted successfully"})
}

func (h *BoardHandler) GetLists(c *gin.Context) {
	board := h.resolveOwned(c)
	if board == nil {
		return
	}

	lists, err := h.lists.GetByBoard(c.Request.Context(), board.ID)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, lists)
}

func (h *BoardHandler) CreateList(c *gin.Context) {
	board := h.resolveOwned(c)
	if board == nil {
		return
	}

	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title is required"})
		return
	}

	list := &model.List{
		Title:   req.Title,
		BoardID: board.ID,
	}
	if err := h.lists.Create(c.Request.Context(), list); err != nil {
		respondRepoError(c, err)
		return
	}

	title := fmt.Sprintf("Created list %q", list.Title)
	if err := h.activities.Log(c.Request.Context(), board.WorkspaceID, title); err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, list)
}

func (h *BoardHandler) Statistics(c *gin.Context) {
	board := h.resolveOwned(c)
	if board == nil {
		return
	}

	stats, err := h.boards.Statistics(c.Request.Context(), board.ID)
	if err != nil {
		respondInternal(c, err)
		return
	}

	completion := 0
	if stats.TotalCards > 0 {
		completion = int(math.Round(float64(stats.DoneCards) / float64(stats.TotalCards) * 100))
	}

	c.JSON(http.StatusOK, BoardStatisticsResponse{
		BoardID:              board.ID.String(),
		BoardTitle:           board.Title,
		BoardColor:           board.Color,
		TotalTasks:           stats.TotalCards,
		CompletedTasks:       stats.DoneCards,
		PendingTasks:         stats.TodoCards,
		OverdueTasks:         stats.OverdueCards,
		CompletionPercentage: completion,
		PriorityBreakdown: PriorityBreakdown{
			High:   stats.HighPriority,
			Medium: stats.MediumPriority,
			Low:    stats.LowPriority,
		},
		ListsCount: stats.ListsCount,
	})
}
