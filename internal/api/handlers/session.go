package handlers

import (
	"net/http"
	"time"

	"camp-records-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandler handles HTTP requests for camp sessions
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// CreateSession creates a new camp session
// @Summary Create a new session
// @Description Create a new camp session. Admin only.
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body service.CreateSessionRequest true "Session data"
// @Success 201 {object} service.SessionResponse "Successfully created session"
// @Failure 400 {object} map[string]interface{} "Invalid request body or date range"
// @Security BearerAuth
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var req service.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessionService.CreateSession(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSession retrieves a session by ID
// @Summary Get session by ID
// @Description Get a specific camp session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.SessionResponse "Successfully retrieved session"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Security BearerAuth
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	session, err := h.sessionService.GetSessionByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// ListSessions lists all camp sessions
// @Summary List sessions
// @Description Get all camp sessions. Pass active_on (YYYY-MM-DD) to list only the sessions covering a date.
// @Tags sessions
// @Accept json
// @Produce json
// @Param active_on query string false "List sessions active on this date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved sessions"
// @Failure 400 {object} map[string]interface{} "Invalid active_on date"
// @Security BearerAuth
// @Router /sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	if raw := c.Query("active_on"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid active_on date, expected YYYY-MM-DD"})
			return
		}
		sessions, err := h.sessionService.GetActiveSessions(date)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"sessions": sessions,
			"total":    int64(len(sessions)),
		})
		return
	}

	sessions, err := h.sessionService.GetSessions()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessions": sessions,
		"total":    int64(len(sessions)),
	})
}

// UpdateSession updates an existing session
// @Summary Update session
// @Description Update an existing camp session by ID. Admin only.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param session body service.UpdateSessionRequest true "Updated session data"
// @Success 200 {object} service.SessionResponse "Successfully updated session"
// @Failure 400 {object} map[string]interface{} "Invalid request body or date range"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Security BearerAuth
// @Router /sessions/{id} [put]
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	var req service.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessionService.UpdateSession(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// DeleteSession deletes a session
// @Summary Delete session
// @Description Delete a camp session by ID. Admin only.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 204 "Successfully deleted session"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Security BearerAuth
// @Router /sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	if err := h.sessionService.DeleteSession(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
