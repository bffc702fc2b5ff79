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

// CabinService handles business logic for cabins
type CabinService struct {
	repo      repository.CabinRepositoryInterface
	validator *validator.Validate
}

// NewCabinService creates a new cabin service
func NewCabinService(repo repository.CabinRepositoryInterface, validator *validator.Validate) *CabinService {
	return &CabinService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCabinRequest represents the data needed to create a cabin
type CreateCabinRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Capacity int    `json:"capacity" validate:"min=0"`
}

// UpdateCabinRequest represents the data needed to update a cabin
type UpdateCabinRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Capacity *int    `json:"capacity" validate:"omitempty,min=0"`
}

// CabinResponse represents the response data for a cabin
type CabinResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Capacity  int            `json:"capacity"`
	Bunks     []BunkResponse `json:"bunks,omitempty"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
}

// CreateCabin creates a new cabin
func (s *CabinService) CreateCabin(req *CreateCabinRequest) (*CabinResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	cabin := &models.Cabin{
		Name:     req.Name,
		Capacity: req.Capacity,
	}

	if err := s.repo.Create(cabin); err != nil {
		return nil, fmt.Errorf("failed to create cabin: %w", err)
	}

	return convertCabin(cabin), nil
}

// GetCabinByID retrieves a cabin by ID
func (s *CabinService) GetCabinByID(id uuid.UUID) (*CabinResponse, error) {
	cabin, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrCabinNotFound
	}

	return convertCabin(cabin), nil
}

// GetCabinWithBunks retrieves a cabin with its bunks
func (s *CabinService) GetCabinWithBunks(id uuid.UUID) (*CabinResponse, error) {
	cabin, err := s.repo.GetWithBunks(id)
	if err != nil {
		return nil, apperrors.ErrCabinNotFound
	}

	resp := convertCabin(cabin)
	resp.Bunks = make([]BunkResponse, len(cabin.Bunks))
	for i, bunk := range cabin.Bunks {
		resp.Bunks[i] = *convertBunk(&bunk)
	}
	return resp, nil
}

// GetCabins retrieves all cabins ordered by name
func (s *CabinService) GetCabins() ([]CabinResponse, error) {
	cabins, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get cabins: %w", err)
	}

	responses := make([]CabinResponse, len(cabins))
	for i, cabin := range cabins {
		responses[i] = *convertCabin(&cabin)
	}
	return responses, nil
}

// UpdateCabin updates an existing cabin
func (s *CabinService) UpdateCabin(id uuid.UUID, req *UpdateCabinRequest) (*CabinResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	cabin, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrCabinNotFound
	}

	if req.Name != nil {
		cabin.Name = *req.Name
	}
	if req.Capacity != nil {
		cabin.Capacity = *req.Capacity
	}

	if err := s.repo.Update(cabin); err != nil {
		return nil, fmt.Errorf("failed to update cabin: %w", err)
	}

	return convertCabin(cabin), nil
}

// DeleteCabin deletes a cabin
func (s *CabinService) DeleteCabin(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrCabinNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete cabin: %w", err)
	}

	return nil
}

func convertCabin(cabin *models.Cabin) *CabinResponse {
	return &CabinResponse{
		ID:        cabin.ID,
		Name:      cabin.Name,
		Capacity:  cabin.Capacity,
		CreatedAt: cabin.CreatedAt.Format(time.RFC3339),
		UpdatedAt: cabin.UpdatedAt.Format(time.RFC3339),
	}
}
