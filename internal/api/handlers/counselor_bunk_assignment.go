package handlers

import (
	"net/http"
	"time"

	"camp-records-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CounselorBunkAssignmentHandler handles HTTP requests for counselor bunk assignments
type CounselorBunkAssignmentHandler struct {
	assignmentService *service.CounselorBunkAssignmentService
}

// NewCounselorBunkAssignmentHandler creates a new counselor bunk assignment handler
func NewCounselorBunkAssignmentHandler(assignmentService *service.CounselorBunkAssignmentService) *CounselorBunkAssignmentHandler {
	return &CounselorBunkAssignmentHandler{
		assignmentService: assignmentService,
	}
}

// CreateAssignment creates a new counselor bunk assignment
// @Summary Create a counselor bunk assignment
// @Description Assign a counselor to a bunk for a date window. Admin only.
// @Tags counselor-assignments
// @Accept json
// @Produce json
// @Param assignment body service.CreateCounselorBunkAssignmentRequest true "Assignment data"
// @Success 201 {object} service.CounselorBunkAssignmentResponse "Successfully created assignment"
// @Failure 400 {object} map[string]interface{} "Invalid request body, role or date range"
// @Security BearerAuth
// @Router /counselor-assignments [post]
func (h *CounselorBunkAssignmentHandler) CreateAssignment(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var req service.CreateCounselorBunkAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.CreateAssignment(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// GetAssignment retrieves a counselor bunk assignment by ID
// @Summary Get counselor bunk assignment by ID
// @Description Get a specific counselor bunk assignment
// @Tags counselor-assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} service.CounselorBunkAssignmentResponse "Successfully retrieved assignment"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Security BearerAuth
// @Router /counselor-assignments/{id} [get]
func (h *CounselorBunkAssignmentHandler) GetAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	assignment, err := h.assignmentService.GetAssignmentByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// GetAssignmentsByBunk lists all counselor assignments for a bunk
// @Summary List counselor assignments for a bunk
// @Description Get every counselor assignment recorded for a bunk, including closed windows
// @Tags counselor-assignments
// @Accept json
// @Produce json
// @Param bunkId path string true "Bunk ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved assignments"
// @Failure 400 {object} map[string]interface{} "Invalid bunk ID"
// @Security BearerAuth
// @Router /bunks/{bunkId}/counselors [get]
func (h *CounselorBunkAssignmentHandler) GetAssignmentsByBunk(c *gin.Context) {
	bunkID, err := uuid.Parse(c.Param("bunkId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bunk ID"})
		return
	}

	assignments, err := h.assignmentService.GetAssignmentsByBunk(bunkID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assignments": assignments,
		"total":       int64(len(assignments)),
	})
}

// GetActiveForBunk lists the counselor assignments active for a bunk on a date
// @Summary List active counselor assignments for a bunk
// @Description Get the counselor assignments whose date window covers the evaluation date, primary counselor first. Defaults to today; pass as_of for a historical snapshot.
// @Tags counselor-assignments
// @Accept json
// @Produce json
// @Param bunkId path string true "Bunk ID (UUID)"
// @Param as_of query string false "Evaluate as of this date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved active assignments"
// @Failure 400 {object} map[string]interface{} "Invalid bunk ID"
// @Security BearerAuth
// @Router /bunks/{bunkId}/counselors/active [get]
func (h *CounselorBunkAssignmentHandler) GetActiveForBunk(c *gin.Context) {
	bunkID, err := uuid.Parse(c.Param("bunkId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bunk ID"})
		return
	}

	assignments, err := h.assignmentService.GetActiveForBunk(bunkID, asOfOrNow(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assignments": assignments,
		"total":       int64(len(assignments)),
	})
}

// SetPrimary marks a counselor assignment as the primary one for its bunk
// @Summary Set primary counselor assignment
// @Description Mark an assignment as the bunk's primary counselor; any sibling primary flag is cleared. Admin only.
// @Tags counselor-assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} service.CounselorBunkAssignmentResponse "Successfully set primary"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Security BearerAuth
// @Router /counselor-assignments/{id}/primary [post]
func (h *CounselorBunkAssignmentHandler) SetPrimary(c *gin.Context) {
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

// CloseAssignment closes an open counselor assignment window
// @Summary Close counselor bunk assignment
// @Description Set the end date of an open counselor assignment window. Admin only.
// @Tags counselor-assignments
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Param close body CloseAssignmentRequest true "End date"
// @Success 200 {object} service.CounselorBunkAssignmentResponse "Successfully closed assignment"
// @Failure 400 {object} map[string]interface{} "Invalid end date or assignment already closed"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Security BearerAuth
// @Router /counselor-assignments/{id}/close [post]
func (h *CounselorBunkAssignmentHandler) CloseAssignment(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	var req CloseAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.CloseAssignment(id, req.EndDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// CloseAssignmentRequest is the request body for closing an assignment window
type CloseAssignmentRequest struct {
	EndDate time.Time `json:"end_date" binding:"required"`
}
