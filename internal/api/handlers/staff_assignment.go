package handlers

import (
	"net/http"
	"time"

	"camp-records-backend/internal/api/middleware"
	"camp-records-backend/internal/database/models"
	"camp-records-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StaffAssignmentHandler handles HTTP requests for unit staff assignments
type StaffAssignmentHandler struct {
	assignmentService *service.StaffAssignmentService
}

// NewStaffAssignmentHandler creates a new staff assignment handler
func NewStaffAssignmentHandler(assignmentService *service.StaffAssignmentService) *StaffAssignmentHandler {
	return &StaffAssignmentHandler{
		assignmentService: assignmentService,
	}
}

// asOfOrNow resolves the evaluation date for assignment queries
func asOfOrNow(c *gin.Context) time.Time {
	if asOf := middleware.GetAsOf(c); !asOf.IsZero() {
		return asOf
	}
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// CreateStaffAssignment creates a new staff assignment
// @Summary Create a staff assignment
// @Description Assign a unit head or camper care staff member to a unit for a date window. Admin only.
// @Tags staff-assignments
// @Accept json
// @Produce json
// @Param assignment body service.CreateStaffAssignmentRequest true "Assignment data"
// @Success 201 {object} service.StaffAssignmentResponse "Successfully created assignment"
// @Failure 400 {object} map[string]interface{} "Invalid request body, role or date range"
// @Failure 409 {object} map[string]interface{} "Duplicate assignment window"
// @Security BearerAuth
// @Router /staff-assignments [post]
func (h *StaffAssignmentHandler) CreateStaffAssignment(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var req service.CreateStaffAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.CreateStaffAssignment(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// GetStaffAssignment retrieves a staff assignment by ID
// @Summary Get staff assignment by ID
// @Description Get a specific staff assignment
// @Tags staff-assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} service.StaffAssignmentResponse "Successfully retrieved assignment"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Security BearerAuth
// @Router /staff-assignments/{id} [get]
func (h *StaffAssignmentHandler) GetStaffAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	assignment, err := h.assignmentService.GetStaffAssignmentByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// GetAssignmentsByUnit lists all assignments for a unit
// @Summary List assignments for a unit
// @Description Get every staff assignment recorded for a unit, including closed windows
// @Tags staff-assignments
// @Accept json
// @Produce json
// @Param unitId path string true "Unit ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved assignments"
// @Failure 400 {object} map[string]interface{} "Invalid unit ID"
// @Security BearerAuth
// @Router /units/{unitId}/assignments [get]
func (h *StaffAssignmentHandler) GetAssignmentsByUnit(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("unitId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit ID"})
		return
	}

	assignments, err := h.assignmentService.GetAssignmentsByUnit(unitID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assignments": assignments,
		"total":       int64(len(assignments)),
	})
}

// GetActiveForUnit lists the assignments active for a unit and role on a date
// @Summary List active assignments for a unit
// @Description Get the assignments of a role whose date window covers the evaluation date, primary holder first. Defaults to today; pass as_of for a historical snapshot.
// @Tags staff-assignments
// @Accept json
// @Produce json
// @Param unitId path string true "Unit ID (UUID)"
// @Param role query string true "Staff role (unit_head or camper_care)"
// @Param as_of query string false "Evaluate as of this date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved active assignments"
// @Failure 400 {object} map[string]interface{} "Invalid unit ID or role"
// @Security BearerAuth
// @Router /units/{unitId}/assignments/active [get]
func (h *StaffAssignmentHandler) GetActiveForUnit(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("unitId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit ID"})
		return
	}

	role := models.StaffRole(c.Query("role"))
	if !role.IsUnitRole() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be unit_head or camper_care"})
		return
	}

	assignments, err := h.assignmentService.GetActiveForUnit(unitID, role, asOfOrNow(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assignments": assignments,
		"total":       int64(len(assignments)),
	})
}

// GetPrimaryForUnit returns the primary holder of a role for a unit on a date
// @Summary Get primary holder for a unit
// @Description Get the primary assignment of a role for a unit on the evaluation date. Falls back to the unit's legacy holder column when no dated assignment covers the date.
// @Tags staff-assignments
// @Accept json
// @Produce json
// @Param unitId path string true "Unit ID (UUID)"
// @Param role query string true "Staff role (unit_head or camper_care)"
// @Param as_of query string false "Evaluate as of this date (YYYY-MM-DD)"
// @Success 200 {object} service.StaffAssignmentResponse "Primary holder"
// @Failure 400 {object} map[string]interface{} "Invalid unit ID or role"
// @Failure 404 {object} map[string]interface{} "No holder for this role and date"
// @Security BearerAuth
// @Router /units/{unitId}/assignments/primary [get]
func (h *StaffAssignmentHandler) GetPrimaryForUnit(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("unitId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit ID"})
		return
	}

	role := models.StaffRole(c.Query("role"))
	if !role.IsUnitRole() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be unit_head or camper_care"})
		return
	}

	assignment, err := h.assignmentService.GetPrimaryForUnit(unitID, role, asOfOrNow(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if assignment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No holder for this role and date"})
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// SetPrimary marks an assignment as the primary holder for its role and unit
// @Summary Set primary assignment
// @Description Mark an assignment as the primary holder; any sibling primary flag for the same unit and role is cleared. Admin only.
// @Tags staff-assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} service.StaffAssignmentResponse "Successfully set primary"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Security BearerAuth
// @Router /staff-assignments/{id}/primary [post]
func (h *StaffAssignmentHandler) SetPrimary(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	assignment, err := h.assignmentService.SetPrimary(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// CloseStaffAssignment closes an open assignment window
// @Summary Close staff assignment
// @Description Set the end date of an open assignment window. Admin only.
// @Tags staff-assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Param close body service.CloseStaffAssignmentRequest true "End date"
// @Success 200 {object} service.StaffAssignmentResponse "Successfully closed assignment"
// @Failure 400 {object} map[string]interface{} "Invalid end date or assignment already closed"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Security BearerAuth
// @Router /staff-assignments/{id}/close [post]
func (h *StaffAssignmentHandler) CloseStaffAssignment(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	var req service.CloseStaffAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.CloseStaffAssignment(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}
