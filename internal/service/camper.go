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

// CamperService handles business logic for campers and their bunk stays
type CamperService struct {
	repo      repository.CamperRepositoryInterface
	stayRepo  repository.CamperBunkAssignmentRepositoryInterface
	bunkRepo  repository.BunkRepositoryInterface
	validator *validator.Validate
}

// NewCamperService creates a new camper service
func NewCamperService(
	repo repository.CamperRepositoryInterface,
	stayRepo repository.CamperBunkAssignmentRepositoryInterface,
	bunkRepo repository.BunkRepositoryInterface,
	validator *validator.Validate,
) *CamperService {
	return &CamperService{
		repo:      repo,
		stayRepo:  stayRepo,
		bunkRepo:  bunkRepo,
		validator: validator,
	}
}

// CreateCamperRequest represents the data needed to create a camper
type CreateCamperRequest struct {
	FirstName string     `json:"first_name" validate:"required,max=100"`
	LastName  string     `json:"last_name" validate:"required,max=100"`
	BirthDate *time.Time `json:"birth_date"`
	Notes     string     `json:"notes"`
	// BunkID optionally places the camper in a bunk on creation
	BunkID    *uuid.UUID `json:"bunk_id"`
	StartDate *time.Time `json:"start_date"`
}

// UpdateCamperRequest represents the data needed to update a camper
type UpdateCamperRequest struct {
	FirstName *string    `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string    `json:"last_name" validate:"omitempty,max=100"`
	BirthDate *time.Time `json:"birth_date"`
	Notes     *string    `json:"notes"`
}

// MoveCamperRequest represents a bunk move: the current stay is closed and a
// new one opened, preserving history
type MoveCamperRequest struct {
	ToBunkID uuid.UUID `json:"to_bunk_id" validate:"required"`
	MoveDate time.Time `json:"move_date" validate:"required"`
}

// CamperStayResponse represents one bunk stay in a camper's history
type CamperStayResponse struct {
	ID        uuid.UUID `json:"id"`
	BunkID    uuid.UUID `json:"bunk_id"`
	StartDate string    `json:"start_date"`
	EndDate   *string   `json:"end_date,omitempty"`
}

// CamperResponse represents the response data for a camper
type CamperResponse struct {
	ID        uuid.UUID            `json:"id"`
	FirstName string               `json:"first_name"`
	LastName  string               `json:"last_name"`
	BirthDate *string              `json:"birth_date,omitempty"`
	Notes     string               `json:"notes,omitempty"`
	Stays     []CamperStayResponse `json:"stays,omitempty"`
	CreatedAt string               `json:"created_at"`
	UpdatedAt string               `json:"updated_at"`
}

// CreateCamper creates a new camper, optionally placing them in a bunk
func (s *CamperService) CreateCamper(req *CreateCamperRequest) (*CamperResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.BunkID != nil {
		if _, err := s.bunkRepo.GetByID(*req.BunkID); err != nil {
			return nil, apperrors.ErrBunkNotFound
		}
	}

	camper := &models.Camper{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.BirthDate,
		Notes:     req.Notes,
	}

	if err := s.repo.Create(camper); err != nil {
		return nil, fmt.Errorf("failed to create camper: %w", err)
	}

	if req.BunkID != nil {
		start := time.Now().UTC().Truncate(24 * time.Hour)
		if req.StartDate != nil {
			start = *req.StartDate
		}
		stay := &models.CamperBunkAssignment{
			CamperID:  camper.ID,
			BunkID:    *req.BunkID,
			StartDate: start,
		}
		if err := s.stayRepo.Create(stay); err != nil {
			return nil, fmt.Errorf("failed to place camper in bunk: %w", err)
		}
	}

	return s.convertWithStays(camper)
}

// GetCamperByID retrieves a camper by ID with their bunk history
func (s *CamperService) GetCamperByID(id uuid.UUID) (*CamperResponse, error) {
	camper, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrCamperNotFound
	}

	return s.convertWithStays(camper)
}

// GetCampersByIDs retrieves campers with the given IDs, used to render a
// scoped actor's camper list
func (s *CamperService) GetCampersByIDs(ids []uuid.UUID, limit, offset int) ([]CamperResponse, int64, error) {
	campers, total, err := s.repo.GetByIDs(ids, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get campers: %w", err)
	}

	responses := make([]CamperResponse, len(campers))
	for i, camper := range campers {
		responses[i] = *convertCamper(&camper)
	}
	return responses, total, nil
}

// GetCampers retrieves all campers with pagination
func (s *CamperService) GetCampers(limit, offset int) ([]CamperResponse, int64, error) {
	campers, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get campers: %w", err)
	}

	responses := make([]CamperResponse, len(campers))
	for i, camper := range campers {
		responses[i] = *convertCamper(&camper)
	}
	return responses, total, nil
}

// UpdateCamper updates an existing camper
func (s *CamperService) UpdateCamper(id uuid.UUID, req *UpdateCamperRequest) (*CamperResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	camper, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrCamperNotFound
	}

	if req.FirstName != nil {
		camper.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		camper.LastName = *req.LastName
	}
	if req.BirthDate != nil {
		camper.BirthDate = req.BirthDate
	}
	if req.Notes != nil {
		camper.Notes = *req.Notes
	}

	if err := s.repo.Update(camper); err != nil {
		return nil, fmt.Errorf("failed to update camper: %w", err)
	}

	return s.convertWithStays(camper)
}

// MoveCamper moves a camper to a new bunk: the active stay is closed the day
// before the move date and a new stay opens on it, so history survives and
// unit-level staff of the old unit retain visibility.
func (s *CamperService) MoveCamper(id uuid.UUID, req *MoveCamperRequest) (*CamperResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	camper, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrCamperNotFound
	}
	if _, err := s.bunkRepo.GetByID(req.ToBunkID); err != nil {
		return nil, apperrors.ErrBunkNotFound
	}

	active, err := s.stayRepo.ActiveForCamper(id, req.MoveDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get active stays: %w", err)
	}
	for _, stay := range active {
		if err := s.stayRepo.Close(stay.ID, req.MoveDate.AddDate(0, 0, -1)); err != nil {
			return nil, fmt.Errorf("failed to close stay: %w", err)
		}
	}

	stay := &models.CamperBunkAssignment{
		CamperID:  id,
		BunkID:    req.ToBunkID,
		StartDate: req.MoveDate,
	}
	if err := s.stayRepo.Create(stay); err != nil {
		return nil, fmt.Errorf("failed to create stay: %w", err)
	}

	return s.convertWithStays(camper)
}

// DeleteCamper deletes a camper
func (s *CamperService) DeleteCamper(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrCamperNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete camper: %w", err)
	}

	return nil
}

func (s *CamperService) convertWithStays(camper *models.Camper) (*CamperResponse, error) {
	resp := convertCamper(camper)

	stays, err := s.stayRepo.GetByCamperID(camper.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bunk history: %w", err)
	}
	resp.Stays = make([]CamperStayResponse, len(stays))
	for i, stay := range stays {
		stayResp := CamperStayResponse{
			ID:        stay.ID,
			BunkID:    stay.BunkID,
			StartDate: stay.StartDate.Format("2006-01-02"),
		}
		if stay.EndDate != nil {
			end := stay.EndDate.Format("2006-01-02")
			stayResp.EndDate = &end
		}
		resp.Stays[i] = stayResp
	}
	return resp, nil
}

func convertCamper(camper *models.Camper) *CamperResponse {
	resp := &CamperResponse{
		ID:        camper.ID,
		FirstName: camper.FirstName,
		LastName:  camper.LastName,
		Notes:     camper.Notes,
		CreatedAt: camper.CreatedAt.Format(time.RFC3339),
		UpdatedAt: camper.UpdatedAt.Format(time.RFC3339),
	}
	if camper.BirthDate != nil {
		birth := camper.BirthDate.Format("2006-01-02")
		resp.BirthDate = &birth
	}
	return resp
}
