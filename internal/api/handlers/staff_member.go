package handlers

import (
	"net/http"

	"camp-records-backend/internal/api/middleware"
	"camp-records-backend/internal/authz"
	"camp-records-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StaffMemberHandler handles HTTP requests for staff members
type StaffMemberHandler struct {
	staffService *service.StaffMemberService
}

// NewStaffMemberHandler creates a new staff member handler
func NewStaffMemberHandler(staffService *service.StaffMemberService) *StaffMemberHandler {
	return &StaffMemberHandler{
		staffService: staffService,
	}
}

// requireAdmin denies unless the actor is an admin or an office staff account
func requireAdmin(c *gin.Context) bool {
	actor, ok := middleware.GetActor(c)
	if !ok || (actor.Role != authz.RoleAdmin && !actor.IsStaff) {
		respondDenied(c, authz.Deny(authz.ReasonRoleForbidden, "only admins may manage this resource"))
		return false
	}
	return true
}

// CreateStaffMember creates a new staff member
// @Summary Create a new staff member
// @Description Create a new staff member.
// @Description
// @Description Optional Fields with Defaults:
// @Description - role: Defaults to 'counselor' (valid values: admin, unit_head, camper_care, counselor)
// @Description - timezone: Defaults to 'America/New_York'
// @Description - is_active: Defaults to true
// @Tags staff-members
// @Accept json
// @Produce json
// @Param staff_member body service.CreateStaffMemberRequest true "Staff member data"
// @Success 201 {object} service.StaffMemberResponse "Successfully created staff member"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Email already in use"
// @Security BearerAuth
// @Router /staff-members [post]
func (h *StaffMemberHandler) CreateStaffMember(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var req service.CreateStaffMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.staffService.CreateStaffMember(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetStaffMember retrieves a staff member by ID
// @Summary Get staff member by ID
// @Description Get a specific staff member by their UUID
// @Tags staff-members
// @Accept json
// @Produce json
// @Param id path string true "Staff member ID (UUID)"
// @Success 200 {object} service.StaffMemberResponse "Successfully retrieved staff member"
// @Failure 400 {object} map[string]interface{} "Invalid staff member ID"
// @Failure 404 {object} map[string]interface{} "Staff member not found"
// @Security BearerAuth
// @Router /staff-members/{id} [get]
func (h *StaffMemberHandler) GetStaffMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff member ID"})
		return
	}

	member, err := h.staffService.GetStaffMemberByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListStaffMembers lists staff members with pagination
// @Summary List staff members
// @Description Get all staff members with pagination
// @Tags staff-members
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Successfully retrieved staff members"
// @Security BearerAuth
// @Router /staff-members [get]
func (h *StaffMemberHandler) ListStaffMembers(c *gin.Context) {
	limit, offset := pagination(c)

	members, total, err := h.staffService.GetStaffMembers(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"staff_members": members,
		"total":         total,
		"limit":         limit,
		"offset":        offset,
	})
}

// UpdateStaffMember updates an existing staff member
// @Summary Update staff member
// @Description Update an existing staff member by ID
// @Tags staff-members
// @Accept json
// @Produce json
// @Param id path string true "Staff member ID (UUID)"
// @Param staff_member body service.UpdateStaffMemberRequest true "Updated staff member data"
// @Success 200 {object} service.StaffMemberResponse "Successfully updated staff member"
// @Failure 400 {object} map[string]interface{} "Invalid request body or staff member ID"
// @Failure 404 {object} map[string]interface{} "Staff member not found"
// @Security BearerAuth
// @Router /staff-members/{id} [put]
func (h *StaffMemberHandler) UpdateStaffMember(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff member ID"})
		return
	}

	var req service.UpdateStaffMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.staffService.UpdateStaffMember(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteStaffMember deletes a staff member
// @Summary Delete staff member
// @Description Delete a staff member by ID
// @Tags staff-members
// @Accept json
// @Produce json
// @Param id path string true "Staff member ID (UUID)"
// @Success 204 "Successfully deleted staff member"
// @Failure 400 {object} map[string]interface{} "Invalid staff member ID"
// @Failure 404 {object} map[string]interface{} "Staff member not found"
// @Security BearerAuth
// @Router /staff-members/{id} [delete]
func (h *StaffMemberHandler) DeleteStaffMember(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff member ID"})
		return
	}

	if err := h.staffService.DeleteStaffMember(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
