package handlers

import (
	"errors"
	"net/http"

	apperrors "whatsapp-crm-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps service errors onto HTTP status codes. Conflict and
// ambiguity errors carry their structured payload so callers can render
// alternatives.
func respondError(c *gin.Context, err error) {
	var conflictErr *apperrors.ConflictDetectedError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":     "schedule conflict detected",
			"conflicts": conflictErr.Conflicts,
		})
		return
	}

	var ambiguousErr *apperrors.AmbiguousMatchError
	if errors.As(err, &ambiguousErr) {
		c.JSON(http.StatusConflict, gin.H{
			"error":      "multiple appointments match, disambiguation required",
			"candidates": ambiguousErr.Candidates,
		})
		return
	}

	var validationErrs validator.ValidationErrors
	switch {
	case apperrors.IsNotFound(err), errors.Is(err, apperrors.ErrNoCalendarConfigured):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err), errors.As(err, &validationErrs),
		errors.Is(err, apperrors.ErrInvalidTimeRange),
		errors.Is(err, apperrors.ErrStartTimeInPast):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNoneAvailable),
		errors.Is(err, apperrors.ErrInsufficientStaff),
		errors.Is(err, apperrors.ErrQuotaExhausted),
		errors.Is(err, apperrors.ErrAutomationSuppressed),
		errors.Is(err, apperrors.ErrAppointmentNotActive):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsExternalService(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
