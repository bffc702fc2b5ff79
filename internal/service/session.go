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

// SessionService handles business logic for camp sessions
type SessionService struct {
	repo      repository.SessionRepositoryInterface
	validator *validator.Validate
}

// NewSessionService creates a new session service
func NewSessionService(repo repository.SessionRepositoryInterface, validator *validator.Validate) *SessionService {
	return &SessionService{
		repo:      repo,
		validator: validator,
	}
}

// CreateSessionRequest represents the data needed to create a session
type CreateSessionRequest struct {
	Name      string    `json:"name" validate:"required,max=100"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

// UpdateSessionRequest represents the data needed to update a session
type UpdateSessionRequest struct {
	Name      *string    `json:"name" validate:"omitempty,max=100"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// SessionResponse represents the response data for a session
type SessionResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// CreateSession creates a new session
func (s *SessionService) CreateSession(req *CreateSessionRequest) (*SessionResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	session := &models.Session{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	if err := s.repo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return convertSession(session), nil
}

// GetSessionByID retrieves a session by ID
func (s *SessionService) GetSessionByID(id uuid.UUID) (*SessionResponse, error) {
	session, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrSessionNotFound
	}

	return convertSession(session), nil
}

// GetSessions retrieves all sessions ordered by start date
func (s *SessionService) GetSessions() ([]SessionResponse, error) {
	sessions, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	responses := make([]SessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = *convertSession(&session)
	}
	return responses, nil
}

// GetActiveSessions retrieves the sessions covering the given date
func (s *SessionService) GetActiveSessions(date time.Time) ([]SessionResponse, error) {
	sessions, err := s.repo.GetActiveOn(date)
	if err != nil {
		return nil, fmt.Errorf("failed to get active sessions: %w", err)
	}

	responses := make([]SessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = *convertSession(&session)
	}
	return responses, nil
}

// UpdateSession updates an existing session
func (s *SessionService) UpdateSession(id uuid.UUID, req *UpdateSessionRequest) (*SessionResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	session, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrSessionNotFound
	}

	if req.Name != nil {
		session.Name = *req.Name
	}
	if req.StartDate != nil {
		session.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		session.EndDate = *req.EndDate
	}
	if session.EndDate.Before(session.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if err := s.repo.Update(session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return convertSession(session), nil
}

// DeleteSession deletes a session
func (s *SessionService) DeleteSession(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrSessionNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func convertSession(session *models.Session) *SessionResponse {
	return &SessionResponse{
		ID:        session.ID,
		Name:      session.Name,
		StartDate: session.StartDate.Format("2006-01-02"),
		EndDate:   session.EndDate.Format("2006-01-02"),
		CreatedAt: session.CreatedAt.Format(time.RFC3339),
		UpdatedAt: session.UpdatedAt.Format(time.RFC3339),
	}
}
