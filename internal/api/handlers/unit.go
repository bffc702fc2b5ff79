package handlers

import (
	"net/http"

	"camp-records-backend/internal/authz"
	"camp-records-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UnitHandler handles HTTP requests for units
type UnitHandler struct {
	unitService *service.UnitService
	guard       *authz.Guard
}

// NewUnitHandler creates a new unit handler
func NewUnitHandler(unitService *service.UnitService, guard *authz.Guard) *UnitHandler {
	return &UnitHandler{
		unitService: unitService,
		guard:       guard,
	}
}

// CreateUnit creates a new unit
// @Summary Create a new unit
// @Description Create a new unit. Admin only.
// @Tags units
// @Accept json
// @Produce json
// @Param unit body service.CreateUnitRequest true "Unit data"
// @Success 201 {object} service.UnitResponse "Successfully created unit"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role cannot create units"
// @Security BearerAuth
// @Router /units [post]
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionCreate, authz.ResourceUnit, authz.ResourceRef{}); !d.Allowed {
		respondDenied(c, d)
		return
	}

	var req service.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unit, err := h.unitService.CreateUnit(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, unit)
}

// GetUnit retrieves a unit by ID
// @Summary Get unit by ID
// @Description Get a specific unit. Units outside the caller's scope read as not found.
// @Tags units
// @Accept json
// @Produce json
// @Param unitId path string true "Unit ID (UUID)"
// @Param as_of query string false "Evaluate visibility as of this date (YYYY-MM-DD)"
// @Success 200 {object} service.UnitResponse "Successfully retrieved unit"
// @Failure 400 {object} map[string]interface{} "Invalid unit ID"
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Security BearerAuth
// @Router /units/{unitId} [get]
func (h *UnitHandler) GetUnit(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("unitId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit ID"})
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionRead, authz.ResourceUnit, authz.ResourceRef{ID: id}); !d.Allowed {
		respondDenied(c, d)
		return
	}

	unit, err := h.unitService.GetUnitByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, unit)
}

// GetUnitWithBunks retrieves a unit with its bunks
// @Summary Get unit with bunks
// @Description Get a unit and the bunks that belong to it
// @Tags units
// @Accept json
// @Produce json
// @Param unitId path string true "Unit ID (UUID)"
// @Success 200 {object} service.UnitResponse "Successfully retrieved unit with bunks"
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Security BearerAuth
// @Router /units/{unitId}/bunks [get]
func (h *UnitHandler) GetUnitWithBunks(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("unitId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit ID"})
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionRead, authz.ResourceUnit, authz.ResourceRef{ID: id}); !d.Allowed {
		respondDenied(c, d)
		return
	}

	unit, err := h.unitService.GetUnitWithBunks(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, unit)
}

// ListUnits lists the units visible to the caller
// @Summary List units
// @Description Get the units inside the caller's visibility scope
// @Tags units
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Param as_of query string false "Evaluate visibility as of this date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved units"
// @Security BearerAuth
// @Router /units [get]
func (h *UnitHandler) ListUnits(c *gin.Context) {
	_, scope, ok := actorScope(c)
	if !ok {
		return
	}

	limit, offset := pagination(c)

	if scope.Kind == authz.ScopeUnrestricted {
		units, total, err := h.unitService.GetUnits(limit, offset)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"units":  units,
			"total":  total,
			"limit":  limit,
			"offset": offset,
		})
		return
	}

	units, err := h.unitService.GetUnitsByIDs(scope.UnitIDList())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"units":  units,
		"total":  int64(len(units)),
		"limit":  limit,
		"offset": offset,
	})
}

// UpdateUnit updates an existing unit
// @Summary Update unit
// @Description Update an existing unit by ID. Admin only.
// @Tags units
// @Accept json
// @Produce json
// @Param unitId path string true "Unit ID (UUID)"
// @Param unit body service.UpdateUnitRequest true "Updated unit data"
// @Success 200 {object} service.UnitResponse "Successfully updated unit"
// @Failure 403 {object} ErrorResponse "Role cannot update units"
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Security BearerAuth
// @Router /units/{unitId} [put]
func (h *UnitHandler) UpdateUnit(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("unitId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit ID"})
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionUpdate, authz.ResourceUnit, authz.ResourceRef{ID: id}); !d.Allowed {
		respondDenied(c, d)
		return
	}

	var req service.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unit, err := h.unitService.UpdateUnit(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, unit)
}

// DeleteUnit deletes a unit
// @Summary Delete unit
// @Description Delete a unit by ID. Admin only.
// @Tags units
// @Accept json
// @Produce json
// @Param unitId path string true "Unit ID (UUID)"
// @Success 204 "Successfully deleted unit"
// @Failure 403 {object} ErrorResponse "Role cannot delete units"
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Security BearerAuth
// @Router /units/{unitId} [delete]
func (h *UnitHandler) DeleteUnit(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("unitId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit ID"})
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionDelete, authz.ResourceUnit, authz.ResourceRef{ID: id}); !d.Allowed {
		respondDenied(c, d)
		return
	}

	if err := h.unitService.DeleteUnit(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
