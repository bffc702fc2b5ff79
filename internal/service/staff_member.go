package service

import (
	"fmt"
	"time"

	"camp-records-backend/internal/database/models"
	apperrors "camp-records-backend/internal/errors"
	"camp-records-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// StaffMemberService handles business logic for staff members
type StaffMemberService struct {
	repo      repository.StaffMemberRepositoryInterface
	validator *validator.Validate
}

// NewStaffMemberService creates a new staff member service
func NewStaffMemberService(repo repository.StaffMemberRepositoryInterface, validator *validator.Validate) *StaffMemberService {
	return &StaffMemberService{
		repo:      repo,
		validator: validator,
	}
}

// CreateStaffMemberRequest represents the data needed to create a staff member
type CreateStaffMemberRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Role     *string `json:"role" example:"counselor" default:"counselor"` // Optional: defaults to "counselor". Valid values: admin, unit_head, camper_care, counselor
	IsStaff  *bool   `json:"is_staff" example:"false" default:"false"`
	Timezone *string `json:"timezone" example:"America/New_York"`
	Phone    string  `json:"phone" validate:"max=40"`
}

// UpdateStaffMemberRequest represents the data needed to update a staff member
type UpdateStaffMemberRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Role     *string `json:"role"`
	IsStaff  *bool   `json:"is_staff"`
	IsActive *bool   `json:"is_active"`
	Timezone *string `json:"timezone"`
	Phone    *string `json:"phone" validate:"omitempty,max=40"`
}

// StaffMemberResponse represents the response data for a staff member
type StaffMemberResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsStaff   bool      `json:"is_staff"`
	IsActive  bool      `json:"is_active"`
	Timezone  string    `json:"timezone"`
	Phone     string    `json:"phone,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// CreateStaffMember creates a new staff member
func (s *StaffMemberService) CreateStaffMember(req *CreateStaffMemberRequest) (*StaffMemberResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Check if email already exists
	exists, err := s.repo.CheckEmailExists(req.Email, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrStaffMemberExists
	}

	// Set default role
	role := models.StaffRoleCounselor
	if req.Role != nil {
		role = models.StaffRole(*req.Role)
		if !role.IsValid() {
			return nil, apperrors.ErrInvalidRole
		}
	}

	isStaff := false
	if req.IsStaff != nil {
		isStaff = *req.IsStaff
	}

	timezone := "America/New_York"
	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return nil, apperrors.NewValidationError("timezone", "unknown timezone name")
		}
		timezone = *req.Timezone
	}

	member := &models.StaffMember{
		Name:     req.Name,
		Email:    req.Email,
		Role:     role,
		IsStaff:  isStaff,
		IsActive: true,
		Timezone: timezone,
		Phone:    req.Phone,
	}

	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}

	return convertStaffMember(member), nil
}

// GetStaffMemberByID retrieves a staff member by ID
func (s *StaffMemberService) GetStaffMemberByID(id uuid.UUID) (*StaffMemberResponse, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrStaffMemberNotFound
	}

	return convertStaffMember(member), nil
}

// GetStaffMembers retrieves all staff members with pagination
func (s *StaffMemberService) GetStaffMembers(limit, offset int) ([]StaffMemberResponse, int64, error) {
	members, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get staff members: %w", err)
	}

	responses := make([]StaffMemberResponse, len(members))
	for i, member := range members {
		responses[i] = *convertStaffMember(&member)
	}

	return responses, total, nil
}

// UpdateStaffMember updates an existing staff member
func (s *StaffMemberService) UpdateStaffMember(id uuid.UUID, req *UpdateStaffMemberRequest) (*StaffMemberResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	member, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrStaffMemberNotFound
	}

	// Check email uniqueness if email is being updated
	if req.Email != nil && *req.Email != member.Email {
		exists, err := s.repo.CheckEmailExists(*req.Email, &id)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return nil, apperrors.ErrStaffMemberExists
		}
		member.Email = *req.Email
	}

	// Update fields
	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		role := models.StaffRole(*req.Role)
		if !role.IsValid() {
			return nil, apperrors.ErrInvalidRole
		}
		member.Role = role
	}
	if req.IsStaff != nil {
		member.IsStaff = *req.IsStaff
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}
	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return nil, apperrors.NewValidationError("timezone", "unknown timezone name")
		}
		member.Timezone = *req.Timezone
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}

	if err := s.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update staff member: %w", err)
	}

	return convertStaffMember(member), nil
}

// DeleteStaffMember deletes a staff member
func (s *StaffMemberService) DeleteStaffMember(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrStaffMemberNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}

	return nil
}

func convertStaffMember(member *models.StaffMember) *StaffMemberResponse {
	return &StaffMemberResponse{
		ID:        member.ID,
		Name:      member.Name,
		Email:     member.Email,
		Role:      string(member.Role),
		IsStaff:   member.IsStaff,
		IsActive:  member.IsActive,
		Timezone:  member.Timezone,
		Phone:     member.Phone,
		AvatarURL: member.AvatarURL,
		CreatedAt: member.CreatedAt.Format(time.RFC3339),
		UpdatedAt: member.UpdatedAt.Format(time.RFC3339),
	}
}
