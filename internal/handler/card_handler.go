package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"taskman/internal/model"
	"taskman/internal/repository"
)

type CardHandler struct {
	cards      repository.CardRepositoryInterface
	activities repository.ActivityRepositoryInterface
}

func NewCardHandler(
	cards repository.CardRepositoryInterface,
	activities repository.ActivityRepositoryInterface,
) *CardHandler {
	return &CardHandler{
		cards:      cards,
		activities: activities,
	}
}

// UpdateCardRequest carries optional fields; absent fields leave the card
// unchanged.
type UpdateCardRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=HIGH MEDIUM LOW"`
	Status      string     `json:"status" binding:"omitempty,oneof=TODO DONE"`
	Deadline    *time.Time `json:"deadline"`
}

func (h *CardHandler) resolveOwned(c *gin.Context) *model.Card {
	userID, ok := currentUserID(c)
	if !ok {
		return nil
	}
	id, ok := pathID(c)
	if !ok {
		return nil
	}

	card, err := h.cards.GetByIDOwned(c.Request.Context(), id, userID)
	if err != nil {
		respondInternal(c, err)
		return nil
	}
	if card == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Card not found"})
		return nil
	}
	return card
}

func (h *CardHandler) GetByID(c *gin.Context) {
	card := h.resolveOwned(c)
	if card == nil {
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *CardHandler) Update(c *gin.Context) {
	card := h.resolveOwned(c)
	if card == nil {
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}
	if req.Title == "" && req.Description == "" && req.Priority == "" && req.Status == "" && req.Deadline == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No fields to update"})
		return
	}

	if req.Title != "" {
		card.Title = req.Title
	}
	if req.Description != "" {
		card.Description = req.Description
	}
	if req.Priority != "" {
		card.Priority = model.Priority(req.Priority)
	}
	if req.Status != "" {
		card.Status = model.Status(req.Status)
	}
	if req.Deadline != nil {
		card.Deadline = req.Deadline
	}

	if err := h.cards.Update(c.Request.Context(), card); err != nil {
		respondRepoError(c, err)
		return
	}

	workspaceID, err := h.cards.WorkspaceID(c.Request.Context(), card.ID)
	if err != nil {
		respondInternal(c, err)
		return
	}
	title := fmt.Sprintf("Updated card %q", card.Title)
	if req.Status != "" {
		title += fmt.Sprintf(" (%s)", req.Status)
	}
	if err := h.activities.Log(c.Request.Context(), workspaceID, title); err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

func (h *CardHandler) Delete(c *gin.Context) {
	card := h.resolveOwned(c)
	if card == nil {
		return
	}

	// Resolve the workspace before the row disappears.
	workspaceID, err := h.cards.WorkspaceID(c.Request.Context(), card.ID)
	if err != nil {
		respondInternal(c, err)
		return
	}

	if err := h.cards.Delete(c.Request.Context(), card); err != nil {
		respondInternal(c, err)
		return
	}

	title := fmt.Sprintf("Deleted card %q", card.Title)
	if err := h.activities.Log(c.Request.Context(), workspaceID, title); err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card deleted successfully"})
}
