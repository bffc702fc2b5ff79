package handlers

import (
	"net/http"

	"camp-records-backend/internal/authz"
	"camp-records-backend/internal/database/models"
	"camp-records-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CounselorLogHandler handles HTTP requests for counselor logs
type CounselorLogHandler struct {
	logService *service.CounselorLogService
	guard      *authz.Guard
}

// NewCounselorLogHandler creates a new counselor log handler
func NewCounselorLogHandler(logService *service.CounselorLogService, guard *authz.Guard) *CounselorLogHandler {
	return &CounselorLogHandler{
		logService: logService,
		guard:      guard,
	}
}

func counselorLogRef(log *models.CounselorLog) authz.ResourceRef {
	return authz.ResourceRef{
		ID:        log.ID,
		BunkID:    log.BunkID,
		AuthorID:  log.AuthorID,
		CreatedAt: log.CreatedAt,
	}
}

// CreateCounselorLog creates a new counselor log
// @Summary Create a counselor log
// @Description Create the daily log about a counselor. The log date is the author's local calendar date and is assigned by the server.
// @Tags counselor-logs
// @Accept json
// @Produce json
// @Param log body service.CreateCounselorLogRequest true "Counselor log data"
// @Success 201 {object} service.CounselorLogResponse "Successfully created counselor log"
// @Failure 400 {object} map[string]interface{} "Invalid request body or subject is not a counselor"
// @Failure 403 {object} ErrorResponse "Role cannot author counselor logs"
// @Failure 404 {object} ErrorResponse "Bunk not found"
// @Failure 409 {object} map[string]interface{} "A log already exists for this counselor and date"
// @Security BearerAuth
// @Router /counselor-logs [post]
func (h *CounselorLogHandler) CreateCounselorLog(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	var req service.CreateCounselorLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionCreate, authz.ResourceCounselorLog, authz.ResourceRef{BunkID: req.BunkID}); !d.Allowed {
		respondDenied(c, d)
		return
	}

	log, err := h.logService.CreateCounselorLog(actor.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, log)
}

// GetCounselorLog retrieves a counselor log by ID
// @Summary Get counselor log by ID
// @Description Get a specific counselor log. Logs for bunks outside the caller's scope read as not found.
// @Tags counselor-logs
// @Accept json
// @Produce json
// @Param id path string true "Counselor log ID (UUID)"
// @Param as_of query string false "Evaluate visibility as of this date (YYYY-MM-DD)"
// @Success 200 {object} service.CounselorLogResponse "Successfully retrieved counselor log"
// @Failure 404 {object} ErrorResponse "Counselor log not found"
// @Security BearerAuth
// @Router /counselor-logs/{id} [get]
func (h *CounselorLogHandler) GetCounselorLog(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid counselor log ID"})
		return
	}

	log, err := h.logService.GetCounselorLogModel(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionRead, authz.ResourceCounselorLog, counselorLogRef(log)); !d.Allowed {
		respondDenied(c, d)
		return
	}

	response, err := h.logService.GetCounselorLogByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListCounselorLogs lists the counselor logs visible to the caller
// @Summary List counselor logs
// @Description Get the counselor logs for bunks inside the caller's visibility scope, newest first. Pass counselor_id to filter by subject.
// @Tags counselor-logs
// @Accept json
// @Produce json
// @Param counselor_id query string false "Filter by counselor ID (UUID)"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Param as_of query string false "Evaluate visibility as of this date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved counselor logs"
// @Security BearerAuth
// @Router /counselor-logs [get]
func (h *CounselorLogHandler) ListCounselorLogs(c *gin.Context) {
	_, scope, ok := actorScope(c)
	if !ok {
		return
	}

	limit, offset := pagination(c)

	if counselorIDStr := c.Query("counselor_id"); counselorIDStr != "" {
		counselorID, err := uuid.Parse(counselorIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid counselor ID"})
			return
		}
		logs, total, err := h.logService.ListByCounselor(counselorID, limit, offset)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"counselor_logs": logs,
			"total":          total,
			"limit":          limit,
			"offset":         offset,
		})
		return
	}

	logs, total, err := h.logService.ListCounselorLogs(scope.BunkIDList(), scope.Kind == authz.ScopeUnrestricted, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"counselor_logs": logs,
		"total":          total,
		"limit":          limit,
		"offset":         offset,
	})
}

// UpdateCounselorLog updates an existing counselor log
// @Summary Update counselor log
// @Description Update a counselor log's content. Counselors may only edit their own logs until local midnight of the creation day; unit-level roles are view-only; admins are exempt from the window.
// @Tags counselor-logs
// @Accept json
// @Produce json
// @Param id path string true "Counselor log ID (UUID)"
// @Param log body service.UpdateCounselorLogRequest true "Updated counselor log data"
// @Success 200 {object} service.CounselorLogResponse "Successfully updated counselor log"
// @Failure 403 {object} ErrorResponse "Edit window closed, not the author, or role is view-only"
// @Failure 404 {object} ErrorResponse "Counselor log not found"
// @Security BearerAuth
// @Router /counselor-logs/{id} [put]
func (h *CounselorLogHandler) UpdateCounselorLog(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid counselor log ID"})
		return
	}

	log, err := h.logService.GetCounselorLogModel(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionUpdate, authz.ResourceCounselorLog, counselorLogRef(log)); !d.Allowed {
		respondDenied(c, d)
		return
	}

	var req service.UpdateCounselorLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.logService.UpdateCounselorLog(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// RedateCounselorLog moves a counselor log to a different date
// @Summary Redate counselor log
// @Description Move a misdated counselor log to another date. Admin only; the target date must be free for the counselor.
// @Tags counselor-logs
// @Accept json
// @Produce json
// @Param id path string true "Counselor log ID (UUID)"
// @Param redate body service.RedateCounselorLogRequest true "Target date"
// @Success 200 {object} service.CounselorLogResponse "Successfully redated counselor log"
// @Failure 404 {object} ErrorResponse "Counselor log not found"
// @Failure 409 {object} map[string]interface{} "A log already exists for the target date"
// @Security BearerAuth
// @Router /counselor-logs/{id}/redate [post]
func (h *CounselorLogHandler) RedateCounselorLog(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid counselor log ID"})
		return
	}

	var req service.RedateCounselorLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.logService.RedateCounselorLog(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteCounselorLog deletes a counselor log
// @Summary Delete counselor log
// @Description Delete a counselor log by ID. Admin only.
// @Tags counselor-logs
// @Accept json
// @Produce json
// @Param id path string true "Counselor log ID (UUID)"
// @Success 204 "Successfully deleted counselor log"
// @Failure 403 {object} ErrorResponse "Role cannot delete counselor logs"
// @Failure 404 {object} ErrorResponse "Counselor log not found"
// @Security BearerAuth
// @Router /counselor-logs/{id} [delete]
func (h *CounselorLogHandler) DeleteCounselorLog(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid counselor log ID"})
		return
	}

	log, err := h.logService.GetCounselorLogModel(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionDelete, authz.ResourceCounselorLog, counselorLogRef(log)); !d.Allowed {
		respondDenied(c, d)
		return
	}

	if err := h.logService.DeleteCounselorLog(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
