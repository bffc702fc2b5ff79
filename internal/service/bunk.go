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

// BunkService handles business logic for bunks
type BunkService struct {
	repo      repository.BunkRepositoryInterface
	unitRepo  repository.UnitRepositoryInterface
	validator *validator.Validate
}

// NewBunkService creates a new bunk service
func NewBunkService(repo repository.BunkRepositoryInterface, unitRepo repository.UnitRepositoryInterface, validator *validator.Validate) *BunkService {
	return &BunkService{
		repo:      repo,
		unitRepo:  unitRepo,
		validator: validator,
	}
}

// CreateBunkRequest represents the data needed to create a bunk
type CreateBunkRequest struct {
	Name      string     `json:"name" validate:"required,max=100"`
	UnitID    *uuid.UUID `json:"unit_id"`
	CabinID   *uuid.UUID `json:"cabin_id"`
	SessionID *uuid.UUID `json:"session_id"`
}

// UpdateBunkRequest represents the data needed to update a bunk
type UpdateBunkRequest struct {
	Name      *string    `json:"name" validate:"omitempty,max=100"`
	UnitID    *uuid.UUID `json:"unit_id"`
	CabinID   *uuid.UUID `json:"cabin_id"`
	SessionID *uuid.UUID `json:"session_id"`
	IsActive  *bool      `json:"is_active"`
}

// BunkResponse represents the response data for a bunk
type BunkResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	UnitID    *uuid.UUID `json:"unit_id,omitempty"`
	CabinID   *uuid.UUID `json:"cabin_id,omitempty"`
	SessionID *uuid.UUID `json:"session_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

// CreateBunk creates a new bunk
func (s *BunkService) CreateBunk(req *CreateBunkRequest) (*BunkResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.UnitID != nil {
		if _, err := s.unitRepo.GetByID(*req.UnitID); err != nil {
			return nil, apperrors.ErrUnitNotFound
		}
	}

	bunk := &models.Bunk{
		Name:      req.Name,
		UnitID:    req.UnitID,
		CabinID:   req.CabinID,
		SessionID: req.SessionID,
		IsActive:  true,
	}

	if err := s.repo.Create(bunk); err != nil {
		return nil, fmt.Errorf("failed to create bunk: %w", err)
	}

	return convertBunk(bunk), nil
}

// GetBunkByID retrieves a bunk by ID
func (s *BunkService) GetBunkByID(id uuid.UUID) (*BunkResponse, error) {
	bunk, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrBunkNotFound
	}

	return convertBunk(bunk), nil
}

// GetBunksByUnit retrieves all bunks for a unit
func (s *BunkService) GetBunksByUnit(unitID uuid.UUID) ([]BunkResponse, error) {
	if _, err := s.unitRepo.GetByID(unitID); err != nil {
		return nil, apperrors.ErrUnitNotFound
	}

	bunks, err := s.repo.GetByUnitID(unitID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bunks: %w", err)
	}

	responses := make([]BunkResponse, len(bunks))
	for i, bunk := range bunks {
		responses[i] = *convertBunk(&bunk)
	}
	return responses, nil
}

// GetBunksByIDs retrieves the bunks with the given IDs, used to render a
// scoped actor's bunk list
func (s *BunkService) GetBunksByIDs(ids []uuid.UUID) ([]BunkResponse, error) {
	bunks, err := s.repo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get bunks: %w", err)
	}

	responses := make([]BunkResponse, len(bunks))
	for i, bunk := range bunks {
		responses[i] = *convertBunk(&bunk)
	}
	return responses, nil
}

// GetBunks retrieves all bunks with pagination
func (s *BunkService) GetBunks(limit, offset int) ([]BunkResponse, int64, error) {
	bunks, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get bunks: %w", err)
	}

	responses := make([]BunkResponse, len(bunks))
	for i, bunk := range bunks {
		responses[i] = *convertBunk(&bunk)
	}
	return responses, total, nil
}

// UpdateBunk updates an existing bunk
func (s *BunkService) UpdateBunk(id uuid.UUID, req *UpdateBunkRequest) (*BunkResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	bunk, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrBunkNotFound
	}

	if req.Name != nil {
		bunk.Name = *req.Name
	}
	if req.UnitID != nil {
		if _, err := s.unitRepo.GetByID(*req.UnitID); err != nil {
			return nil, apperrors.ErrUnitNotFound
		}
		bunk.UnitID = req.UnitID
	}
	if req.CabinID != nil {
		bunk.CabinID = req.CabinID
	}
	if req.SessionID != nil {
		bunk.SessionID = req.SessionID
	}
	if req.IsActive != nil {
		bunk.IsActive = *req.IsActive
	}

	if err := s.repo.Update(bunk); err != nil {
		return nil, fmt.Errorf("failed to update bunk: %w", err)
	}

	return convertBunk(bunk), nil
}

// DeleteBunk deletes a bunk
func (s *BunkService) DeleteBunk(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrBunkNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete bunk: %w", err)
	}

	return nil
}

func convertBunk(bunk *models.Bunk) *BunkResponse {
	return &BunkResponse{
		ID:        bunk.ID,
		Name:      bunk.Name,
		UnitID:    bunk.UnitID,
		CabinID:   bunk.CabinID,
		SessionID: bunk.SessionID,
		IsActive:  bunk.IsActive,
		CreatedAt: bunk.CreatedAt.Format(time.RFC3339),
		UpdatedAt: bunk.UpdatedAt.Format(time.RFC3339),
	}
}
