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

// CounselorBunkAssignmentService handles business logic for counselor-to-bunk
// assignments
type CounselorBunkAssignmentService struct {
	repo      repository.CounselorBunkAssignmentRepositoryInterface
	bunkRepo  repository.BunkRepositoryInterface
	staffRepo repository.StaffMemberRepositoryInterface
	validator *validator.Validate
}

// NewCounselorBunkAssignmentService creates a new counselor bunk assignment service
func NewCounselorBunkAssignmentService(
	repo repository.CounselorBunkAssignmentRepositoryInterface,
	bunkRepo repository.BunkRepositoryInterface,
	staffRepo repository.StaffMemberRepositoryInterface,
	validator *validator.Validate,
) *CounselorBunkAssignmentService {
	return &CounselorBunkAssignmentService{
		repo:      repo,
		bunkRepo:  bunkRepo,
		staffRepo: staffRepo,
		validator: validator,
	}
}

// CreateCounselorBunkAssignmentRequest represents the data needed to assign a
// counselor to a bunk
type CreateCounselorBunkAssignmentRequest struct {
	CounselorID uuid.UUID  `json:"counselor_id" validate:"required"`
	BunkID      uuid.UUID  `json:"bunk_id" validate:"required"`
	IsPrimary   bool       `json:"is_primary"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date"`
}

// CounselorBunkAssignmentResponse represents the response data for a counselor
// bunk assignment
type CounselorBunkAssignmentResponse struct {
	ID          uuid.UUID `json:"id"`
	CounselorID uuid.UUID `json:"counselor_id"`
	BunkID      uuid.UUID `json:"bunk_id"`
	IsPrimary   bool      `json:"is_primary"`
	StartDate   string    `json:"start_date"`
	EndDate     *string   `json:"end_date,omitempty"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// CreateAssignment assigns a counselor to a bunk
func (s *CounselorBunkAssignmentService) CreateAssignment(req *CreateCounselorBunkAssignmentRequest) (*CounselorBunkAssignmentResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	counselor, err := s.staffRepo.GetByID(req.CounselorID)
	if err != nil {
		return nil, apperrors.ErrStaffMemberNotFound
	}
	if counselor.Role != models.StaffRoleCounselor {
		return nil, apperrors.ErrInvalidRole
	}
	if _, err := s.bunkRepo.GetByID(req.BunkID); err != nil {
		return nil, apperrors.ErrBunkNotFound
	}

	assignment := &models.CounselorBunkAssignment{
		CounselorID: req.CounselorID,
		BunkID:      req.BunkID,
		IsPrimary:   req.IsPrimary,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	if err := s.repo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create counselor bunk assignment: %w", err)
	}

	return convertCounselorAssignment(assignment), nil
}

// GetAssignmentByID retrieves a counselor bunk assignment by ID
func (s *CounselorBunkAssignmentService) GetAssignmentByID(id uuid.UUID) (*CounselorBunkAssignmentResponse, error) {
	assignment, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrCounselorBunkAssignmentNotFound
	}
	return convertCounselorAssignment(assignment), nil
}

// GetAssignmentsByBunk retrieves the assignment history for a bunk
func (s *CounselorBunkAssignmentService) GetAssignmentsByBunk(bunkID uuid.UUID) ([]CounselorBunkAssignmentResponse, error) {
	if _, err := s.bunkRepo.GetByID(bunkID); err != nil {
		return nil, apperrors.ErrBunkNotFound
	}

	assignments, err := s.repo.GetByBunkID(bunkID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	responses := make([]CounselorBunkAssignmentResponse, len(assignments))
	for i, assignment := range assignments {
		responses[i] = *convertCounselorAssignment(&assignment)
	}
	return responses, nil
}

// GetActiveForBunk retrieves the assignments active on asOf for a bunk
func (s *CounselorBunkAssignmentService) GetActiveForBunk(bunkID uuid.UUID, asOf time.Time) ([]CounselorBunkAssignmentResponse, error) {
	if _, err := s.bunkRepo.GetByID(bunkID); err != nil {
		return nil, apperrors.ErrBunkNotFound
	}

	assignments, err := s.repo.ActiveForBunk(bunkID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to get active assignments: %w", err)
	}

	responses := make([]CounselorBunkAssignmentResponse, len(assignments))
	for i, assignment := range assignments {
		responses[i] = *convertCounselorAssignment(&assignment)
	}
	return responses, nil
}

// SetPrimary marks an assignment as the counselor's primary bunk
func (s *CounselorBunkAssignmentService) SetPrimary(id uuid.UUID) (*CounselorBunkAssignmentResponse, error) {
	if err := s.repo.SetPrimary(id); err != nil {
		return nil, apperrors.ErrCounselorBunkAssignmentNotFound
	}

	assignment, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrCounselorBunkAssignmentNotFound
	}
	return convertCounselorAssignment(assignment), nil
}

// CloseAssignment ends an assignment on the given date (inclusive)
func (s *CounselorBunkAssignmentService) CloseAssignment(id uuid.UUID, endDate time.Time) (*CounselorBunkAssignmentResponse, error) {
	assignment, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrCounselorBunkAssignmentNotFound
	}
	if endDate.Before(assignment.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if err := s.repo.Close(id, endDate); err != nil {
		return nil, err
	}

	closed, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrCounselorBunkAssignmentNotFound
	}
	return convertCounselorAssignment(closed), nil
}

func convertCounselorAssignment(assignment *models.CounselorBunkAssignment) *CounselorBunkAssignmentResponse {
	resp := &CounselorBunkAssignmentResponse{
		ID:          assignment.ID,
		CounselorID: assignment.CounselorID,
		BunkID:      assignment.BunkID,
		IsPrimary:   assignment.IsPrimary,
		StartDate:   assignment.StartDate.Format("2006-01-02"),
		CreatedAt:   assignment.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   assignment.UpdatedAt.Format(time.RFC3339),
	}
	if assignment.EndDate != nil {
		end := assignment.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}
