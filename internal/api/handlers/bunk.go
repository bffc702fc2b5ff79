package handlers

import (
	"net/http"

	"camp-records-backend/internal/authz"
	"camp-records-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BunkHandler handles HTTP requests for bunks
type BunkHandler struct {
	bunkService *service.BunkService
	guard       *authz.Guard
}

// NewBunkHandler creates a new bunk handler
func NewBunkHandler(bunkService *service.BunkService, guard *authz.Guard) *BunkHandler {
	return &BunkHandler{
		bunkService: bunkService,
		guard:       guard,
	}
}

// CreateBunk creates a new bunk
// @Summary Create a new bunk
// @Description Create a new bunk. Admin only.
// @Tags bunks
// @Accept json
// @Produce json
// @Param bunk body service.CreateBunkRequest true "Bunk data"
// @Success 201 {object} service.BunkResponse "Successfully created bunk"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role cannot create bunks"
// @Security BearerAuth
// @Router /bunks [post]
func (h *BunkHandler) CreateBunk(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionCreate, authz.ResourceBunk, authz.ResourceRef{}); !d.Allowed {
		respondDenied(c, d)
		return
	}

	var req service.CreateBunkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bunk, err := h.bunkService.CreateBunk(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bunk)
}

// GetBunk retrieves a bunk by ID
// @Summary Get bunk by ID
// @Description Get a specific bunk. Bunks outside the caller's scope read as not found.
// @Tags bunks
// @Accept json
// @Produce json
// @Param bunkId path string true "Bunk ID (UUID)"
// @Param as_of query string false "Evaluate visibility as of this date (YYYY-MM-DD)"
// @Success 200 {object} service.BunkResponse "Successfully retrieved bunk"
// @Failure 400 {object} map[string]interface{} "Invalid bunk ID"
// @Failure 404 {object} ErrorResponse "Bunk not found"
// @Security BearerAuth
// @Router /bunks/{bunkId} [get]
func (h *BunkHandler) GetBunk(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("bunkId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bunk ID"})
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionRead, authz.ResourceBunk, authz.ResourceRef{ID: id}); !d.Allowed {
		respondDenied(c, d)
		return
	}

	bunk, err := h.bunkService.GetBunkByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bunk)
}

// ListBunks lists the bunks visible to the caller
// @Summary List bunks
// @Description Get the bunks inside the caller's visibility scope. Pass unit_id to filter by unit.
// @Tags bunks
// @Accept json
// @Produce json
// @Param unit_id query string false "Filter by unit ID (UUID)"
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Param as_of query string false "Evaluate visibility as of this date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved bunks"
// @Security BearerAuth
// @Router /bunks [get]
func (h *BunkHandler) ListBunks(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	limit, offset := pagination(c)

	if unitIDStr := c.Query("unit_id"); unitIDStr != "" {
		unitID, err := uuid.Parse(unitIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit ID"})
			return
		}
		if d := h.guard.Decide(actor, scope, authz.ActionRead, authz.ResourceUnit, authz.ResourceRef{ID: unitID}); !d.Allowed {
			respondDenied(c, d)
			return
		}
		bunks, err := h.bunkService.GetBunksByUnit(unitID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"bunks": bunks,
			"total": int64(len(bunks)),
		})
		return
	}

	if scope.Kind == authz.ScopeUnrestricted {
		bunks, total, err := h.bunkService.GetBunks(limit, offset)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"bunks":  bunks,
			"total":  total,
			"limit":  limit,
			"offset": offset,
		})
		return
	}

	bunks, err := h.bunkService.GetBunksByIDs(scope.BunkIDList())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bunks":  bunks,
		"total":  int64(len(bunks)),
		"limit":  limit,
		"offset": offset,
	})
}

// UpdateBunk updates an existing bunk
// @Summary Update bunk
// @Description Update an existing bunk by ID. Admin only.
// @Tags bunks
// @Accept json
// @Produce json
// @Param bunkId path string true "Bunk ID (UUID)"
// @Param bunk body service.UpdateBunkRequest true "Updated bunk data"
// @Success 200 {object} service.BunkResponse "Successfully updated bunk"
// @Failure 403 {object} ErrorResponse "Role cannot update bunks"
// @Failure 404 {object} ErrorResponse "Bunk not found"
// @Security BearerAuth
// @Router /bunks/{bunkId} [put]
func (h *BunkHandler) UpdateBunk(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("bunkId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bunk ID"})
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionUpdate, authz.ResourceBunk, authz.ResourceRef{ID: id}); !d.Allowed {
		respondDenied(c, d)
		return
	}

	var req service.UpdateBunkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bunk, err := h.bunkService.UpdateBunk(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bunk)
}

// DeleteBunk deletes a bunk
// @Summary Delete bunk
// @Description Delete a bunk by ID. Admin only.
// @Tags bunks
// @Accept json
// @Produce json
// @Param bunkId path string true "Bunk ID (UUID)"
// @Success 204 "Successfully deleted bunk"
// @Failure 403 {object} ErrorResponse "Role cannot delete bunks"
// @Failure 404 {object} ErrorResponse "Bunk not found"
// @Security BearerAuth
// @Router /bunks/{bunkId} [delete]
func (h *BunkHandler) DeleteBunk(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("bunkId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bunk ID"})
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionDelete, authz.ResourceBunk, authz.ResourceRef{ID: id}); !d.Allowed {
		respondDenied(c, d)
		return
	}

	if err := h.bunkService.DeleteBunk(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
