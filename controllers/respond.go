package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/agusyquia/csci42-group4/services"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) uint {
	return c.MustGet("userID").(uint)
}

// pathID parses the :id segment. A non-numeric id can never name an
// existing row, so it gets the same 404 as a missing one.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrNotFound.Error()})
		return 0, false
	}
	return uint(id), true
}

// respondError maps the service error taxonomy onto HTTP statuses:
// validation → 400 with the offending field, not-found-or-not-owned →
// 404, anything else → 500.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{validationErr.Field: validationErr.Message})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
