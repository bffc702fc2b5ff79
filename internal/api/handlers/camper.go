package handlers

import (
	"net/http"

	"camp-records-backend/internal/authz"
	"camp-records-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CamperHandler handles HTTP requests for campers
type CamperHandler struct {
	camperService *service.CamperService
	guard         *authz.Guard
}

// NewCamperHandler creates a new camper handler
func NewCamperHandler(camperService *service.CamperService, guard *authz.Guard) *CamperHandler {
	return &CamperHandler{
		camperService: camperService,
		guard:         guard,
	}
}

// CreateCamper creates a new camper
// @Summary Create a new camper
// @Description Create a new camper, optionally placing them in a bunk. Admin only.
// @Tags campers
// @Accept json
// @Produce json
// @Param camper body service.CreateCamperRequest true "Camper data"
// @Success 201 {object} service.CamperResponse "Successfully created camper"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role cannot create campers"
// @Security BearerAuth
// @Router /campers [post]
func (h *CamperHandler) CreateCamper(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionCreate, authz.ResourceCamper, authz.ResourceRef{}); !d.Allowed {
		respondDenied(c, d)
		return
	}

	var req service.CreateCamperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	camper, err := h.camperService.CreateCamper(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, camper)
}

// GetCamper retrieves a camper by ID
// @Summary Get camper by ID
// @Description Get a specific camper with their bunk stay history. Campers outside the caller's scope read as not found.
// @Tags campers
// @Accept json
// @Produce json
// @Param id path string true "Camper ID (UUID)"
// @Param as_of query string false "Evaluate visibility as of this date (YYYY-MM-DD)"
// @Success 200 {object} service.CamperResponse "Successfully retrieved camper"
// @Failure 400 {object} map[string]interface{} "Invalid camper ID"
// @Failure 404 {object} ErrorResponse "Camper not found"
// @Security BearerAuth
// @Router /campers/{id} [get]
func (h *CamperHandler) GetCamper(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid camper ID"})
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionRead, authz.ResourceCamper, authz.ResourceRef{ID: id}); !d.Allowed {
		respondDenied(c, d)
		return
	}

	camper, err := h.camperService.GetCamperByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, camper)
}

// ListCampers lists the campers visible to the caller
// @Summary List campers
// @Description Get the campers inside the caller's visibility scope with pagination
// @Tags campers
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Param as_of query string false "Evaluate visibility as of this date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved campers"
// @Security BearerAuth
// @Router /campers [get]
func (h *CamperHandler) ListCampers(c *gin.Context) {
	_, scope, ok := actorScope(c)
	if !ok {
		return
	}

	limit, offset := pagination(c)

	var (
		campers []service.CamperResponse
		total   int64
		err     error
	)
	if scope.Kind == authz.ScopeUnrestricted {
		campers, total, err = h.camperService.GetCampers(limit, offset)
	} else {
		campers, total, err = h.camperService.GetCampersByIDs(scope.CamperIDList(), limit, offset)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campers": campers,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// UpdateCamper updates an existing camper
// @Summary Update camper
// @Description Update an existing camper by ID. Admin only.
// @Tags campers
// @Accept json
// @Produce json
// @Param id path string true "Camper ID (UUID)"
// @Param camper body service.UpdateCamperRequest true "Updated camper data"
// @Success 200 {object} service.CamperResponse "Successfully updated camper"
// @Failure 403 {object} ErrorResponse "Role cannot update campers"
// @Failure 404 {object} ErrorResponse "Camper not found"
// @Security BearerAuth
// @Router /campers/{id} [put]
func (h *CamperHandler) UpdateCamper(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid camper ID"})
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionUpdate, authz.ResourceCamper, authz.ResourceRef{ID: id}); !d.Allowed {
		respondDenied(c, d)
		return
	}

	var req service.UpdateCamperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	camper, err := h.camperService.UpdateCamper(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, camper)
}

// MoveCamper moves a camper to another bunk
// @Summary Move camper to another bunk
// @Description Close the camper's active bunk stay the day before the move date and open a new stay in the target bunk. History is preserved. Admin only.
// @Tags campers
// @Accept json
// @Produce json
// @Param id path string true "Camper ID (UUID)"
// @Param move body service.MoveCamperRequest true "Target bunk and move date"
// @Success 200 {object} service.CamperResponse "Successfully moved camper"
// @Failure 403 {object} ErrorResponse "Role cannot move campers"
// @Failure 404 {object} ErrorResponse "Camper or bunk not found"
// @Security BearerAuth
// @Router /campers/{id}/move [post]
func (h *CamperHandler) MoveCamper(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid camper ID"})
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionUpdate, authz.ResourceCamper, authz.ResourceRef{ID: id}); !d.Allowed {
		respondDenied(c, d)
		return
	}

	var req service.MoveCamperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	camper, err := h.camperService.MoveCamper(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, camper)
}

// DeleteCamper deletes a camper
// @Summary Delete camper
// @Description Delete a camper by ID. Admin only.
// @Tags campers
// @Accept json
// @Produce json
// @Param id path string true "Camper ID (UUID)"
// @Success 204 "Successfully deleted camper"
// @Failure 403 {object} ErrorResponse "Role cannot delete campers"
// @Failure 404 {object} ErrorResponse "Camper not found"
// @Security BearerAuth
// @Router /campers/{id} [delete]
func (h *CamperHandler) DeleteCamper(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid camper ID"})
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionDelete, authz.ResourceCamper, authz.ResourceRef{ID: id}); !d.Allowed {
		respondDenied(c, d)
		return
	}

	if err := h.camperService.DeleteCamper(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
