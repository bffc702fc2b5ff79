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

// UnitService handles business logic for units
type UnitService struct {
	repo      repository.UnitRepositoryInterface
	validator *validator.Validate
}

// NewUnitService creates a new unit service
func NewUnitService(repo repository.UnitRepositoryInterface, validator *validator.Validate) *UnitService {
	return &UnitService{
		repo:      repo,
		validator: validator,
	}
}

// CreateUnitRequest represents the data needed to create a unit
type CreateUnitRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=200"`
}

// UpdateUnitRequest represents the data needed to update a unit
type UpdateUnitRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=200"`
}

// UnitResponse represents the response data for a unit
type UnitResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
	Bunks       []BunkResponse `json:"bunks,omitempty"`
}

// CreateUnit creates a new unit
func (s *UnitService) CreateUnit(req *CreateUnitRequest) (*UnitResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Check if name already exists
	exists, err := s.repo.CheckNameExists(req.Name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check unit name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUnitExists
	}

	unit := &models.Unit{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(unit); err != nil {
		return nil, fmt.Errorf("failed to create unit: %w", err)
	}

	return convertUnit(unit), nil
}

// GetUnitByID retrieves a unit by ID
func (s *UnitService) GetUnitByID(id uuid.UUID) (*UnitResponse, error) {
	unit, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrUnitNotFound
	}

	return convertUnit(unit), nil
}

// GetUnitWithBunks retrieves a unit with its bunks
func (s *UnitService) GetUnitWithBunks(id uuid.UUID) (*UnitResponse, error) {
	unit, err := s.repo.GetWithBunks(id)
	if err != nil {
		return nil, apperrors.ErrUnitNotFound
	}

	resp := convertUnit(unit)
	resp.Bunks = make([]BunkResponse, len(unit.Bunks))
	for i, bunk := range unit.Bunks {
		resp.Bunks[i] = *convertBunk(&bunk)
	}
	return resp, nil
}

// GetUnits retrieves all units with pagination
func (s *UnitService) GetUnits(limit, offset int) ([]UnitResponse, int64, error) {
	units, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get units: %w", err)
	}

	responses := make([]UnitResponse, len(units))
	for i, unit := range units {
		responses[i] = *convertUnit(&unit)
	}

	return responses, total, nil
}

// GetUnitsByIDs retrieves the units with the given IDs, used to render a
// scoped actor's unit list
func (s *UnitService) GetUnitsByIDs(ids []uuid.UUID) ([]UnitResponse, error) {
	units, err := s.repo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get units: %w", err)
	}

	responses := make([]UnitResponse, len(units))
	for i, unit := range units {
		responses[i] = *convertUnit(&unit)
	}
	return responses, nil
}

// UpdateUnit updates an existing unit
func (s *UnitService) UpdateUnit(id uuid.UUID, req *UpdateUnitRequest) (*UnitResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	unit, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrUnitNotFound
	}

	if req.Name != nil && *req.Name != unit.Name {
		exists, err := s.repo.CheckNameExists(*req.Name, &id)
		if err != nil {
			return nil, fmt.Errorf("failed to check unit name: %w", err)
		}
		if exists {
			return nil, apperrors.ErrUnitExists
		}
		unit.Name = *req.Name
	}
	if req.Description != nil {
		unit.Description = *req.Description
	}

	if err := s.repo.Update(unit); err != nil {
		return nil, fmt.Errorf("failed to update unit: %w", err)
	}

	return convertUnit(unit), nil
}

// DeleteUnit deletes a unit
func (s *UnitService) DeleteUnit(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrUnitNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete unit: %w", err)
	}

	return nil
}

func convertUnit(unit *models.Unit) *UnitResponse {
	return &UnitResponse{
		ID:          unit.ID,
		Name:        unit.Name,
		Description: unit.Description,
		CreatedAt:   unit.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   unit.UpdatedAt.Format(time.RFC3339),
	}
}
