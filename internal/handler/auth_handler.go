package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskman/internal/auth"
	"taskman/internal/model"
	"taskman/internal/repository"
)

type AuthHandler struct {
	users  repository.UserRepositoryInterface
	tokens *auth.TokenService
}

func NewAuthHandler(users repository.UserRepositoryInterface, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UserPayload struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Role     model.Role `json:"role"`
}

type AuthResponse struct {
	User         UserPayload `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
}

func userPayload(user *model.User) UserPayload {
	return UserPayload{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

// issuePair mints a fresh access/refresh pair and overwrites the stored
// refresh token, invalidating any previous session for the user.
func (h *AuthHandler) issuePair(c *gin.Context, user *model.User) (access, refresh string, ok bool) {
	access, err := h.tokens.IssueAccessToken(user)
	if err != nil {
		respondInternal(c, err)
		return "", "", false
	}
	refresh, err = h.tokens.IssueRefreshToken(user)
	if err != nil {
		respondInternal(c, err)
		return "", "", false
	}
	if err := h.users.SetRefreshToken(c.Request.Context(), user.ID, &refresh); err != nil {
		respondInternal(c, err)
		return "", "", false
	}
	return access, refresh, true
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Valid username, email and password (min 6 characters) are required"})
		return
	}

	req.Email = strings.ToLower(req.Email)

	existing, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondInternal(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		respondInternal(c, err)
		return
	}

	role := model.Role(req.Role)
	if role == "" {
		role = model.RoleUser
	}

	user := &model.User{
		ID:             uuid.New(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hash,
		Role:           role,
	}

	if err := h.users.Create(c.Request.Context(), user); err != nil {
		// The pre-check above can lose a race against a concurrent register;
		// the unique index then reports the same condition.
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		respondRepoError(c, err)
		return
	}

	access, refresh, ok := h.issuePair(c, user)
	if !ok {
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		User:         userPayload(user),
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Valid email and password are required"})
		return
	}

	req.Email = strings.ToLower(req.Email)

	user, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondInternal(c, err)
		return
	}
	if user == nil || !auth.CheckPassword(req.Password, user.HashedPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	access, refresh, ok := h.issuePair(c, user)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		User:         userPayload(user),
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

// Refresh rotates the token pair. The presented token must both verify
// against the refresh secret and exactly match the value stored for its
// subject; after rotation the old token no longer matches and is dead.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Refresh token required"})
		return
	}

	claims, err := h.tokens.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid refresh token"})
		return
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid refresh token"})
		return
	}

	user, err := h.users.FindByIDAndRefreshToken(c.Request.Context(), userID, req.RefreshToken)
	if err != nil {
		respondInternal(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid refresh token"})
		return
	}

	access, refresh, ok := h.issuePair(c, user)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

// Logout clears the stored refresh token for the authenticated user. The
// route sits behind the auth middleware, so only a valid access token can
// target its own session.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.users.SetRefreshToken(c.Request.Context(), userID, nil); err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
