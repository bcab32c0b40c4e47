package handlers

import (
	"errors"
	"net/http"

	"github.com/engagecrm/engage-backend/internal/apperrors"
	"github.com/engagecrm/engage-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// respondError maps error kinds to status codes with sanitized bodies.
// Raw store or upstream errors never reach the client; they are logged at
// the service layer.
func respondError(c *gin.Context, err error) {
	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve.Fields})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "upstream service unavailable"})
	case errors.Is(err, apperrors.ErrInvalidResponseShape):
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream returned an unexpected response"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
