package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskman/internal/auth"
	"taskman/internal/repository"
)

type UserHandler struct {
	users repository.UserRepositoryInterface
}

func NewUserHandler(users repository.UserRepositoryInterface) *UserHandler {
	return &UserHandler{users: users}
}

type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

// GetProfile returns the authenticated user's own record.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondInternal(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	if req.Username == "" && req.Email == "" && req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No fields to update"})
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondInternal(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		email := strings.ToLower(req.Email)
		taken, err := h.users.EmailTaken(c.Request.Context(), email, userID)
		if err != nil {
			respondInternal(c, err)
			return
		}
		if taken {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already in use"})
			return
		}
		user.Email = email
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			respondInternal(c, err)
			return
		}
		user.HashedPassword = hash
	}

	if err := h.users.Update(c.Request.Context(), user); err != nil {
		respondRepoError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
