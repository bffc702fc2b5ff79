package handlers

import (
	"net/http"

	"camp-records-backend/internal/authz"
	"camp-records-backend/internal/database/models"
	"camp-records-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BunkLogHandler handles HTTP requests for bunk logs
type BunkLogHandler struct {
	logService *service.BunkLogService
	guard      *authz.Guard
}

// NewBunkLogHandler creates a new bunk log handler
func NewBunkLogHandler(logService *service.BunkLogService, guard *authz.Guard) *BunkLogHandler {
	return &BunkLogHandler{
		logService: logService,
		guard:      guard,
	}
}

func bunkLogRef(log *models.BunkLog) authz.ResourceRef {
	return authz.ResourceRef{
		ID:        log.ID,
		BunkID:    log.BunkID,
		AuthorID:  log.AuthorID,
		CreatedAt: log.CreatedAt,
	}
}

// CreateBunkLog creates a new bunk log
// @Summary Create a bunk log
// @Description Create the daily log for a bunk. The log date is the author's local calendar date and is assigned by the server.
// @Tags bunk-logs
// @Accept json
// @Produce json
// @Param log body service.CreateBunkLogRequest true "Bunk log data"
// @Success 201 {object} service.BunkLogResponse "Successfully created bunk log"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role cannot author bunk logs"
// @Failure 404 {object} ErrorResponse "Bunk not found"
// @Failure 409 {object} map[string]interface{} "A log already exists for this bunk and date"
// @Security BearerAuth
// @Router /bunk-logs [post]
func (h *BunkLogHandler) CreateBunkLog(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	var req service.CreateBunkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionCreate, authz.ResourceBunkLog, authz.ResourceRef{BunkID: req.BunkID}); !d.Allowed {
		respondDenied(c, d)
		return
	}

	log, err := h.logService.CreateBunkLog(actor.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, log)
}

// GetBunkLog retrieves a bunk log by ID
// @Summary Get bunk log by ID
// @Description Get a specific bunk log. Logs for bunks outside the caller's scope read as not found.
// @Tags bunk-logs
// @Accept json
// @Produce json
// @Param id path string true "Bunk log ID (UUID)"
// @Param as_of query string false "Evaluate visibility as of this date (YYYY-MM-DD)"
// @Success 200 {object} service.BunkLogResponse "Successfully retrieved bunk log"
// @Failure 404 {object} ErrorResponse "Bunk log not found"
// @Security BearerAuth
// @Router /bunk-logs/{id} [get]
func (h *BunkLogHandler) GetBunkLog(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bunk log ID"})
		return
	}

	log, err := h.logService.GetBunkLogModel(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionRead, authz.ResourceBunkLog, bunkLogRef(log)); !d.Allowed {
		respondDenied(c, d)
		return
	}

	response, err := h.logService.GetBunkLogByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListBunkLogs lists the bunk logs visible to the caller
// @Summary List bunk logs
// @Description Get the bunk logs for bunks inside the caller's visibility scope, newest first
// @Tags bunk-logs
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Param as_of query string false "Evaluate visibility as of this date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved bunk logs"
// @Security BearerAuth
// @Router /bunk-logs [get]
func (h *BunkLogHandler) ListBunkLogs(c *gin.Context) {
	_, scope, ok := actorScope(c)
	if !ok {
		return
	}

	limit, offset := pagination(c)

	logs, total, err := h.logService.ListBunkLogs(scope.BunkIDList(), scope.Kind == authz.ScopeUnrestricted, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bunk_logs": logs,
		"total":     total,
		"limit":     limit,
		"offset":    offset,
	})
}

// UpdateBunkLog updates an existing bunk log
// @Summary Update bunk log
// @Description Update a bunk log's content. Counselors may only edit their own logs until local midnight of the creation day; unit-level roles are view-only; admins are exempt from the window.
// @Tags bunk-logs
// @Accept json
// @Produce json
// @Param id path string true "Bunk log ID (UUID)"
// @Param log body service.UpdateBunkLogRequest true "Updated bunk log data"
// @Success 200 {object} service.BunkLogResponse "Successfully updated bunk log"
// @Failure 403 {object} ErrorResponse "Edit window closed, not the author, or role is view-only"
// @Failure 404 {object} ErrorResponse "Bunk log not found"
// @Security BearerAuth
// @Router /bunk-logs/{id} [put]
func (h *BunkLogHandler) UpdateBunkLog(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bunk log ID"})
		return
	}

	log, err := h.logService.GetBunkLogModel(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionUpdate, authz.ResourceBunkLog, bunkLogRef(log)); !d.Allowed {
		respondDenied(c, d)
		return
	}

	var req service.UpdateBunkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.logService.UpdateBunkLog(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// RedateBunkLog moves a bunk log to a different date
// @Summary Redate bunk log
// @Description Move a misdated bunk log to another date. Admin only; the target date must be free for the bunk.
// @Tags bunk-logs
// @Accept json
// @Produce json
// @Param id path string true "Bunk log ID (UUID)"
// @Param redate body service.RedateBunkLogRequest true "Target date"
// @Success 200 {object} service.BunkLogResponse "Successfully redated bunk log"
// @Failure 404 {object} ErrorResponse "Bunk log not found"
// @Failure 409 {object} map[string]interface{} "A log already exists for the target date"
// @Security BearerAuth
// @Router /bunk-logs/{id}/redate [post]
func (h *BunkLogHandler) RedateBunkLog(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bunk log ID"})
		return
	}

	var req service.RedateBunkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.logService.RedateBunkLog(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteBunkLog deletes a bunk log
// @Summary Delete bunk log
// @Description Delete a bunk log by ID. Admin only.
// @Tags bunk-logs
// @Accept json
// @Produce json
// @Param id path string true "Bunk log ID (UUID)"
// @Success 204 "Successfully deleted bunk log"
// @Failure 403 {object} ErrorResponse "Role cannot delete bunk logs"
// @Failure 404 {object} ErrorResponse "Bunk log not found"
// @Security BearerAuth
// @Router /bunk-logs/{id} [delete]
func (h *BunkLogHandler) DeleteBunkLog(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bunk log ID"})
		return
	}

	log, err := h.logService.GetBunkLogModel(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionDelete, authz.ResourceBunkLog, bunkLogRef(log)); !d.Allowed {
		respondDenied(c, d)
		return
	}

	if err := h.logService.DeleteBunkLog(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
