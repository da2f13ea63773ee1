package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskman/internal/model"
	"taskman/internal/repository"
)

type ListHandler struct {
	lists      repository.ListRepositoryInterface
	cards      repository.CardRepositoryInterface
	activities repository.ActivityRepositoryInterface
}

func NewListHandler(
	lists repository.ListRepositoryInterface,
	cards repository.CardRepositoryInterface,
	activities repository.ActivityRepositoryInterface,
) *ListHandler {
	return &ListHandler{
		lists:      lists,
		cards:      cards,
		activities: activities,
	}
}

type UpdateListRequest struct {
	Title string `json:"title" binding:"required"`
}

type CreateCardRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Priority    string     `json:"priority" binding:"required,oneof=HIGH MEDIUM LOW"`
	Deadline    *time.Time `json:"deadline"`
}

func (h *ListHandler) resolveOwned(c *gin.Context) *model.List {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	id, ok := pathID(c)
	if !ok {
		return nil
	}

	list, err := h.lists.GetByIDOwned(c.Request.Context(), id, userID)
	if err != nil {
		respondInternal(c, err)
		return nil
	}
	if list == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "List not found"})
		return nil
	}
	return list
}

// logActivity resolves the list's workspace and appends one audit entry.
func (h *ListHandler) logActivity(c *gin.Context, list *model.List, title string) bool {
	workspaceID, err := h.lists.WorkspaceID(c.Request.Context(), list.ID)
	if err != nil {
		respondInternal(c, err)
		return false
	}
	if err := h.activities.Log(c.Request.Context(), workspaceID, title); err != nil {
		respondInternal(c, err)
		return false
	}
	return true
}

func (h *ListHandler) GetByID(c *gin.Context) {
	list := h.resolveOwned(c)
	if list == nil {
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ListHandler) Update(c *gin.Context) {
	list := h.resolveOwned(c)
	if list == nil {
		return
	}

	var req UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title is required"})
		return
	}

	list.Title = req.Title
	if err := h.lists.Update(c.Request.Context(), list); err != nil {
		respondRepoError(c, err)
		return
	}

	if !h.logActivity(c, list, fmt.Sprintf("Updated list %q", list.Title)) {
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *ListHandler) Delete(c *gin.Context) {
	list := h.resolveOwned(c)
	if list == nil {
		return
	}

	// Resolve the workspace before the row disappears.
	workspaceID, err := h.lists.WorkspaceID(c.Request.Context(), list.ID)
	if err != nil {
		respondInternal(c, err)
		return
	}

	// Cascade takes the list's cards with it.
	if err := h.lists.Delete(c.Request.Context(), list); err != nil {
		respondInternal(c, err)
		return
	}

	title := fmt.Sprintf("Deleted list %q", list.Title)
	if err := h.activities.Log(c.Request.Context(), workspaceID, title); err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "List deleted successfully"})
}

func (h *ListHandler) GetCards(c *gin.Context) {
	list := h.resolveOwned(c)
	if list == nil {
		return
	}

	cards, err := h.cards.GetByList(c.Request.Context(), list.ID)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}

func (h *ListHandler) CreateCard(c *gin.Context) {
	list := h.resolveOwned(c)
	if list == nil {
		return
	}

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title, description, and priority are required"})
		return
	}

	card := &model.Card{
		Title:       req.Title,
		Description: req.Description,
		Priority:    model.Priority(req.Priority),
		Status:      model.StatusTodo,
		Deadline:    req.Deadline,
		ListID:      list.ID,
	}
	if err := h.cards.Create(c.Request.Context(), card); err != nil {
		respondRepoError(c, err)
		return
	}

	if !h.logActivity(c, list, fmt.Sprintf("Created card %q", card.Title)) {
		return
	}

	c.JSON(http.StatusCreated, card)
}
