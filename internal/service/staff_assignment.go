package service

import (
	"fmt"
	"time"

	"camp-records-backend/internal/authz"
	"camp-records-backend/internal/database/models"
	apperrors "camp-records-backend/internal/errors"
	"camp-records-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// StaffAssignmentService handles business logic for unit-level staff
// assignments. Reads that need resolution order (primary tie-break, legacy
// fallback) go through the authz resolver so the API and the authorization
// engine never disagree about who holds a unit.
type StaffAssignmentService struct {
	repo      repository.StaffAssignmentRepositoryInterface
	unitRepo  repository.UnitRepositoryInterface
	staffRepo repository.StaffMemberRepositoryInterface
	resolver  *authz.Resolver
	validator *validator.Validate
}

// NewStaffAssignmentService creates a new staff assignment service
func NewStaffAssignmentService(
	repo repository.StaffAssignmentRepositoryInterface,
	unitRepo repository.UnitRepositoryInterface,
	staffRepo repository.StaffMemberRepositoryInterface,
	resolver *authz.Resolver,
	validator *validator.Validate,
) *StaffAssignmentService {
	return &StaffAssignmentService{
		repo:      repo,
		unitRepo:  unitRepo,
		staffRepo: staffRepo,
		resolver:  resolver,
		validator: validator,
	}
}

// CreateStaffAssignmentRequest represents the data needed to create a staff assignment
type CreateStaffAssignmentRequest struct {
	UnitID        uuid.UUID  `json:"unit_id" validate:"required"`
	StaffMemberID uuid.UUID  `json:"staff_member_id" validate:"required"`
	Role          string     `json:"role" validate:"required" example:"unit_head"`
	IsPrimary     bool       `json:"is_primary"`
	StartDate     time.Time  `json:"start_date" validate:"required"`
	EndDate       *time.Time `json:"end_date"`
}

// CloseStaffAssignmentRequest represents the data needed to close an assignment
type CloseStaffAssignmentRequest struct {
	EndDate time.Time `json:"end_date" validate:"required"`
}

// StaffAssignmentResponse represents the response data for a staff assignment
type StaffAssignmentResponse struct {
	ID            uuid.UUID  `json:"id"`
	UnitID        uuid.UUID  `json:"unit_id"`
	StaffMemberID uuid.UUID  `json:"staff_member_id"`
	Role          string     `json:"role"`
	IsPrimary     bool       `json:"is_primary"`
	StartDate     string     `json:"start_date"`
	EndDate       *string    `json:"end_date,omitempty"`
	Legacy        bool       `json:"legacy,omitempty"`
	CreatedAt     string     `json:"created_at,omitempty"`
	UpdatedAt     string     `json:"updated_at,omitempty"`
}

// CreateStaffAssignment creates a new staff assignment
func (s *StaffAssignmentService) CreateStaffAssignment(req *CreateStaffAssignmentRequest) (*StaffAssignmentResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.StaffRole(req.Role)
	if !role.IsUnitRole() {
		return nil, apperrors.ErrInvalidRole
	}

	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	// Verify the unit and staff member exist
	if _, err := s.unitRepo.GetByID(req.UnitID); err != nil {
		return nil, apperrors.ErrUnitNotFound
	}
	if _, err := s.staffRepo.GetByID(req.StaffMemberID); err != nil {
		return nil, apperrors.ErrStaffMemberNotFound
	}

	// One row per (unit, staff member, role)
	exists, err := s.repo.ExistsForTuple(req.UnitID, req.StaffMemberID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to check assignment: %w", err)
	}
	if exists {
		return nil, apperrors.ErrStaffAssignmentExists
	}

	assignment := &models.StaffAssignment{
		UnitID:        req.UnitID,
		StaffMemberID: req.StaffMemberID,
		Role:          role,
		IsPrimary:     req.IsPrimary,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	}

	if err := s.repo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create staff assignment: %w", err)
	}

	return convertAssignmentModel(assignment), nil
}

// GetStaffAssignmentByID retrieves a staff assignment by ID
func (s *StaffAssignmentService) GetStaffAssignmentByID(id uuid.UUID) (*StaffAssignmentResponse, error) {
	assignment, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrStaffAssignmentNotFound
	}

	return convertAssignmentModel(assignment), nil
}

// GetAssignmentsByUnit retrieves the full assignment history for a unit
func (s *StaffAssignmentService) GetAssignmentsByUnit(unitID uuid.UUID) ([]StaffAssignmentResponse, error) {
	if _, err := s.unitRepo.GetByID(unitID); err != nil {
		return nil, apperrors.ErrUnitNotFound
	}

	assignments, err := s.repo.GetByUnitID(unitID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	responses := make([]StaffAssignmentResponse, len(assignments))
	for i, assignment := range assignments {
		responses[i] = *convertAssignmentModel(&assignment)
	}
	return responses, nil
}

// GetActiveForUnit retrieves the assignments active on asOf for (unit, role)
// in resolution order, including a synthesized legacy holder when the unit has
// no active rows.
func (s *StaffAssignmentService) GetActiveForUnit(unitID uuid.UUID, role models.StaffRole, asOf time.Time) ([]StaffAssignmentResponse, error) {
	if !role.IsUnitRole() {
		return nil, apperrors.ErrInvalidRole
	}
	if _, err := s.unitRepo.GetByID(unitID); err != nil {
		return nil, apperrors.ErrUnitNotFound
	}

	active, err := s.resolver.ActiveForUnit(unitID, authz.Role(role), asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve active assignments: %w", err)
	}

	responses := make([]StaffAssignmentResponse, len(active))
	for i, assignment := range active {
		responses[i] = *convertResolvedAssignment(assignment)
	}
	return responses, nil
}

// GetPrimaryForUnit retrieves the single authoritative holder of (unit, role)
// on asOf, or nil when the unit has no holder.
func (s *StaffAssignmentService) GetPrimaryForUnit(unitID uuid.UUID, role models.StaffRole, asOf time.Time) (*StaffAssignmentResponse, error) {
	if !role.IsUnitRole() {
		return nil, apperrors.ErrInvalidRole
	}
	if _, err := s.unitRepo.GetByID(unitID); err != nil {
		return nil, apperrors.ErrUnitNotFound
	}

	primary, err := s.resolver.PrimaryForUnit(unitID, authz.Role(role), asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve primary holder: %w", err)
	}
	if primary == nil {
		return nil, nil
	}
	return convertResolvedAssignment(*primary), nil
}

// SetPrimary promotes an assignment to primary, atomically demoting every
// other assignment sharing its unit and role.
func (s *StaffAssignmentService) SetPrimary(id uuid.UUID) (*StaffAssignmentResponse, error) {
	if err := s.repo.SetPrimary(id); err != nil {
		return nil, apperrors.ErrStaffAssignmentNotFound
	}

	assignment, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrStaffAssignmentNotFound
	}
	return convertAssignmentModel(assignment), nil
}

// CloseStaffAssignment ends an assignment on the given date. The end date is
// inclusive; the assignment still grants access on that day.
func (s *StaffAssignmentService) CloseStaffAssignment(id uuid.UUID, req *CloseStaffAssignmentRequest) (*StaffAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	assignment, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrStaffAssignmentNotFound
	}
	if req.EndDate.Before(assignment.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if err := s.repo.Close(id, req.EndDate); err != nil {
		return nil, err
	}

	closed, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrStaffAssignmentNotFound
	}
	return convertAssignmentModel(closed), nil
}

func convertAssignmentModel(assignment *models.StaffAssignment) *StaffAssignmentResponse {
	resp := &StaffAssignmentResponse{
		ID:            assignment.ID,
		UnitID:        assignment.UnitID,
		StaffMemberID: assignment.StaffMemberID,
		Role:          string(assignment.Role),
		IsPrimary:     assignment.IsPrimary,
		StartDate:     assignment.StartDate.Format("2006-01-02"),
		CreatedAt:     assignment.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     assignment.UpdatedAt.Format(time.RFC3339),
	}
	if assignment.EndDate != nil {
		end := assignment.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}

func convertResolvedAssignment(assignment authz.Assignment) *StaffAssignmentResponse {
	resp := &StaffAssignmentResponse{
		ID:            assignment.ID,
		UnitID:        assignment.UnitID,
		StaffMemberID: assignment.StaffMemberID,
		Role:          string(assignment.Role),
		IsPrimary:     assignment.IsPrimary,
		Legacy:        assignment.Legacy,
	}
	if !assignment.StartDate.IsZero() {
		resp.StartDate = assignment.StartDate.Format("2006-01-02")
	}
	if assignment.EndDate != nil {
		end := assignment.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}
