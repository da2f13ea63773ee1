package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskman/internal/model"
	"taskman/internal/repository"
)

type WorkspaceHandler struct {
	workspaces repository.WorkspaceRepositoryInterface
	boards     repository.BoardRepositoryInterface
	activities repository.ActivityRepositoryInterface
}

func NewWorkspaceHandler(
	workspaces repository.WorkspaceRepositoryInterface,
	boards repository.BoardRepositoryInterface,
	activities repository.ActivityRepositoryInterface,
) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaces: workspaces,
		boards:     boards,
		activities: activities,
	}
}

type WorkspaceRequest struct {
	Title string `json:"title" binding:"required"`
}

type CreateBoardRequest struct {
	Title string `json:"title" binding:"required"`
	Color string `json:"color" binding:"required"`
}

func (h *WorkspaceHandler) GetAll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	workspaces, err := h.workspaces.GetOwned(c.Request.Context(), userID)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, workspaces)
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req WorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title is required"})
		return
	}

	workspace := &model.Workspace{
		Title:  req.Title,
		UserID: userID,
	}
	if err := h.workspaces.Create(c.Request.Context(), workspace); err != nil {
		respondRepoError(c, err)
		return
	}

	title := fmt.Sprintf("Created workspace %q", workspace.Title)
	if err := h.activities.Log(c.Request.Context(), workspace.ID, title); err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, workspace)
}

func (h *WorkspaceHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	workspace, err := h.workspaces.GetByIDOwned(c.Request.Context(), id, userID)
	if err != nil {
		respondInternal(c, err)
		return
	}
	if workspace == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Workspace not found"})
		return
	}

	c.JSON(http.StatusOK, workspace)
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req WorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title is required"})
		return
	}

	workspace, err := h.workspaces.GetByIDOwned(c.Request.Context(), id, userID)
	if err != nil {
		respondInternal(c, err)
		return
	}
	if workspace == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Workspace not found"})
		return
	}

	workspace.Title = req.Title
	if err := h.workspaces.Update(c.Request.Context(), workspace); err != nil {
		respondRepoError(c, err)
		return
	}

	title := fmt.Sprintf("Updated workspace to %q", workspace.Title)
	if err := h.activities.Log(c.Request.Context(), workspace.ID, title); err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, workspace)
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	workspace, err := h.workspaces.GetByIDOwned(c.Request.Context(), id, userID)
	if err != nil {
		respondInternal(c, err)
		return
	}
	if workspace == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Workspace not found"})
		return
	}

	if err := h.workspaces.Delete(c.Request.Context(), workspace); err != nil {
		respondInternal(c, err)
		return
	}

	// The activity table has no FK to workspaces, so this entry survives
	// the deletion it records.
	title := fmt.Sprintf("Deleted workspace %q", workspace.Title)
	if err := h.activities.Log(c.Request.Context(), workspace.ID, title); err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workspace deleted successfully"})
}

func (h *WorkspaceHandler) GetBoards(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	workspace, err := h.workspaces.GetByIDOwned(c.Request.Context(), id, userID)
	if err != nil {
		respondInternal(c, err)
		return
	}
	if workspace == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Workspace not found"})
		return
	}

	boards, err := h.boards.GetByWorkspace(c.Request.Context(), workspace.ID)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, boards)
}

func (h *WorkspaceHandler) CreateBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and color are required"})
		return
	}

	workspace, err := h.workspaces.GetByIDOwned(c.Request.Context(), id, userID)
	if err != nil {
		respondInternal(c, err)
		return
	}
	if workspace == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Workspace not found"})
		return
	}

	board := &model.Board{
		Title:       req.Title,
		Color:       req.Color,
		WorkspaceID: workspace.ID,
	}
	if err := h.boards.Create(c.Request.Context(), board); err != nil {
		respondRepoError(c, err)
		return
	}

	title := fmt.Sprintf("Created board %q", board.Title)
	if err := h.activities.Log(c.Request.Context(), workspace.ID, title); err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, board)
}

// GetActivities returns the workspace's audit trail, newest first.
func (h *WorkspaceHandler) GetActivities(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	workspace, err := h.workspaces.GetByIDOwned(c.Request.Context(), id, userID)
	if err != nil {
		respondInternal(c, err)
		return
	}
	if workspace == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Workspace not found"})
		return
	}

	activities, err := h.activities.ListByWorkspace(c.Request.Context(), workspace.ID)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}
