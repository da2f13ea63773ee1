package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskman/internal/middleware"
	"taskman/internal/repository"
)

// respondInternal answers 500. Error detail is attached only outside release
// mode so production responses stay generic.
func respondInternal(c *gin.Context, err error) {
	body := gin.H{"message": "Internal server error"}
	if gin.Mode() != gin.ReleaseMode && err != nil {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}

// respondRepoError maps constraint violations to 400 and everything else
// to 500.
func respondRepoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Duplicate entry"})
	case errors.Is(err, repository.ErrForeignKey):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Referenced resource not found"})
	default:
		respondInternal(c, err)
	}
}

// currentUserID pulls the authenticated user's ID out of the gin context and
// answers the request itself when it is missing.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		respondInternal(c, nil)
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses the :id route parameter; a malformed value is a 400.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return uuid.Nil, false
	}
	return id, true
}
