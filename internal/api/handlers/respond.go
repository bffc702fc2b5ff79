package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"camp-records-backend/internal/api/middleware"
	"camp-records-backend/internal/authz"
	apperrors "camp-records-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error  string `json:"error" example:"error message"`
	Reason string `json:"reason,omitempty" example:"out_of_scope"`
}

// respondError maps a service error onto the right HTTP status
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err) || strings.Contains(err.Error(), "validation failed"):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      err.Error(),
			"request_id": c.GetString("request_id"),
		})
	}
}

// respondDenied writes a denied authorization decision. Out-of-scope denials
// surface as 404 so callers cannot probe for existence.
func respondDenied(c *gin.Context, d authz.Decision) {
	c.JSON(d.Reason.HTTPStatus(), gin.H{
		"error":  d.Message,
		"reason": d.Reason,
	})
}

// actorScope reads the resolved actor and scope placed by the scope middleware
func actorScope(c *gin.Context) (authz.Actor, *authz.Scope, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "No staff member is linked to this account"})
		return authz.Actor{}, nil, false
	}
	scope, ok := middleware.GetScope(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Visibility scope missing from request context"})
		return authz.Actor{}, nil, false
	}
	return actor, scope, true
}

// pagination reads limit/offset query parameters with the standard defaults
func pagination(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
