package handlers

import (
	"net/http"

	"camp-records-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CabinHandler handles HTTP requests for cabins
type CabinHandler struct {
	cabinService *service.CabinService
}

// NewCabinHandler creates a new cabin handler
func NewCabinHandler(cabinService *service.CabinService) *CabinHandler {
	return &CabinHandler{
		cabinService: cabinService,
	}
}

// CreateCabin creates a new cabin
// @Summary Create a new cabin
// @Description Create a new physical cabin. Admin only.
// @Tags cabins
// @Accept json
// @Produce json
// @Param cabin body service.CreateCabinRequest true "Cabin data"
// @Success 201 {object} service.CabinResponse "Successfully created cabin"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /cabins [post]
func (h *CabinHandler) CreateCabin(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var req service.CreateCabinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cabin, err := h.cabinService.CreateCabin(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cabin)
}

// GetCabin retrieves a cabin by ID
// @Summary Get cabin by ID
// @Description Get a specific cabin
// @Tags cabins
// @Accept json
// @Produce json
// @Param id path string true "Cabin ID (UUID)"
// @Success 200 {object} service.CabinResponse "Successfully retrieved cabin"
// @Failure 404 {object} map[string]interface{} "Cabin not found"
// @Security BearerAuth
// @Router /cabins/{id} [get]
func (h *CabinHandler) GetCabin(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cabin ID"})
		return
	}

	cabin, err := h.cabinService.GetCabinByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cabin)
}

// GetCabinWithBunks retrieves a cabin with its bunks
// @Summary Get cabin with bunks
// @Description Get a cabin and the bunks housed in it
// @Tags cabins
// @Accept json
// @Produce json
// @Param id path string true "Cabin ID (UUID)"
// @Success 200 {object} service.CabinResponse "Successfully retrieved cabin with bunks"
// @Failure 404 {object} map[string]interface{} "Cabin not found"
// @Security BearerAuth
// @Router /cabins/{id}/bunks [get]
func (h *CabinHandler) GetCabinWithBunks(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cabin ID"})
		return
	}

	cabin, err := h.cabinService.GetCabinWithBunks(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cabin)
}

// ListCabins lists all cabins
// @Summary List cabins
// @Description Get all cabins
// @Tags cabins
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Successfully retrieved cabins"
// @Security BearerAuth
// @Router /cabins [get]
func (h *CabinHandler) ListCabins(c *gin.Context) {
	cabins, err := h.cabinService.GetCabins()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cabins": cabins,
		"total":  int64(len(cabins)),
	})
}

// UpdateCabin updates an existing cabin
// @Summary Update cabin
// @Description Update an existing cabin by ID. Admin only.
// @Tags cabins
// @Accept json
// @Produce json
// @Param id path string true "Cabin ID (UUID)"
// @Param cabin body service.UpdateCabinRequest true "Updated cabin data"
// @Success 200 {object} service.CabinResponse "Successfully updated cabin"
// @Failure 404 {object} map[string]interface{} "Cabin not found"
// @Security BearerAuth
// @Router /cabins/{id} [put]
func (h *CabinHandler) UpdateCabin(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cabin ID"})
		return
	}

	var req service.UpdateCabinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cabin, err := h.cabinService.UpdateCabin(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cabin)
}

// DeleteCabin deletes a cabin
// @Summary Delete cabin
// @Description Delete a cabin by ID. Admin only.
// @Tags cabins
// @Accept json
// @Produce json
// @Param id path string true "Cabin ID (UUID)"
// @Success 204 "Successfully deleted cabin"
// @Failure 404 {object} map[string]interface{} "Cabin not found"
// @Security BearerAuth
// @Router /cabins/{id} [delete]
func (h *CabinHandler) DeleteCabin(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cabin ID"})
		return
	}

	if err := h.cabinService.DeleteCabin(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
