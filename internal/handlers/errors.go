package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-desk-backend/internal/apperrors"
	"clinic-desk-backend/internal/services/scheduling"
)

// respondError maps the service error taxonomy onto HTTP statuses: scheduling
// conflicts → 409, validation → 400, missing records → 404. Nothing is
// collapsed into a generic error; conflicts keep the offending range.
func respondError(c *gin.Context, err error) {
	var conflict *scheduling.ConflictError
	var invalid *apperrors.ValidationError

	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":  conflict.Error(),
			"doctor": conflict.Doctor,
			"date":   conflict.Date,
			"start":  conflict.Start,
			"end":    conflict.End,
		})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
