package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/shag-platform/shag-api/pkg/errors"
)

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError sends an error JSON response and attaches the error to the gin context
// so the observability middleware can include the reason in the request log.
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message})
}

// respondBindingError reports a failed request binding, including
// field-level details when the failure came from validation tags.
func respondBindingError(c *gin.Context, err error) {
	attachError(c, err)
	if details := ParseValidationErrors(err); len(details) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": details})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}

// respondDomainError maps domain errors onto HTTP statuses.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound, "Not found", err)
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err.Error(), err)
	case apperrors.Is(err, apperrors.ErrInvalidTransition):
		respondError(c, http.StatusConflict, err.Error(), err)
	case apperrors.Is(err, apperrors.ErrMatchFailed):
		respondError(c, http.StatusBadGateway, "Matching is unavailable right now", err)
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
