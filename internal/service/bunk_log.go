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

// BunkLogService handles business logic for bunk logs. The log date is never
// accepted from clients: it is derived from the injected clock in the
// author's timezone at creation time, so a log written at 23:30 and one
// written at 00:30 land on different calendar days.
type BunkLogService struct {
	repo      repository.BunkLogRepositoryInterface
	bunkRepo  repository.BunkRepositoryInterface
	clock     authz.Clock
	locales   authz.LocaleProvider
	validator *validator.Validate
}

// NewBunkLogService creates a new bunk log service
func NewBunkLogService(
	repo repository.BunkLogRepositoryInterface,
	bunkRepo repository.BunkRepositoryInterface,
	clock authz.Clock,
	locales authz.LocaleProvider,
	validator *validator.Validate,
) *BunkLogService {
	return &BunkLogService{
		repo:      repo,
		bunkRepo:  bunkRepo,
		clock:     clock,
		locales:   locales,
		validator: validator,
	}
}

// CreateBunkLogRequest represents the data needed to create a bunk log
type CreateBunkLogRequest struct {
	BunkID        uuid.UUID `json:"bunk_id" validate:"required"`
	Summary       string    `json:"summary" validate:"required"`
	MoodScore     int       `json:"mood_score" validate:"min=0,max=5"`
	HealthNotes   string    `json:"health_notes"`
	RequestItems  string    `json:"request_items"`
	FlagForFollow bool      `json:"flag_for_follow"`
}

// UpdateBunkLogRequest represents the data needed to update a bunk log. The
// author and date are immutable; fields absent from the request are kept.
type UpdateBunkLogRequest struct {
	Summary       *string `json:"summary" validate:"omitempty,min=1"`
	MoodScore     *int    `json:"mood_score" validate:"omitempty,min=0,max=5"`
	HealthNotes   *string `json:"health_notes"`
	RequestItems  *string `json:"request_items"`
	FlagForFollow *bool   `json:"flag_for_follow"`
}

// RedateBunkLogRequest represents an administrative date correction
type RedateBunkLogRequest struct {
	Date time.Time `json:"date" validate:"required"`
}

// BunkLogResponse represents the response data for a bunk log
type BunkLogResponse struct {
	ID            uuid.UUID `json:"id"`
	BunkID        uuid.UUID `json:"bunk_id"`
	AuthorID      uuid.UUID `json:"author_id"`
	Date          string    `json:"date"`
	Summary       string    `json:"summary"`
	MoodScore     int       `json:"mood_score"`
	HealthNotes   string    `json:"health_notes,omitempty"`
	RequestItems  string    `json:"request_items,omitempty"`
	FlagForFollow bool      `json:"flag_for_follow"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
}

// CreateBunkLog creates a bunk log authored by the given staff member, dated
// with the author's current local calendar date
func (s *BunkLogService) CreateBunkLog(authorID uuid.UUID, req *CreateBunkLogRequest) (*BunkLogResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.bunkRepo.GetByID(req.BunkID); err != nil {
		return nil, apperrors.ErrBunkNotFound
	}

	date, err := s.localDate(authorID)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsForBunkDate(req.BunkID, date, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check log date: %w", err)
	}
	if exists {
		return nil, apperrors.ErrBunkLogExists
	}

	log := &models.BunkLog{
		BunkID:        req.BunkID,
		AuthorID:      authorID,
		Date:          date,
		Summary:       req.Summary,
		MoodScore:     req.MoodScore,
		HealthNotes:   req.HealthNotes,
		RequestItems:  req.RequestItems,
		FlagForFollow: req.FlagForFollow,
	}

	if err := s.repo.Create(log); err != nil {
		return nil, fmt.Errorf("failed to create bunk log: %w", err)
	}

	return convertBunkLog(log), nil
}

// GetBunkLogByID retrieves a bunk log by ID
func (s *BunkLogService) GetBunkLogByID(id uuid.UUID) (*BunkLogResponse, error) {
	log, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrBunkLogNotFound
	}

	return convertBunkLog(log), nil
}

// GetBunkLogModel retrieves the raw model, used by handlers to build
// authorization refs before deciding
func (s *BunkLogService) GetBunkLogModel(id uuid.UUID) (*models.BunkLog, error) {
	log, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrBunkLogNotFound
	}
	return log, nil
}

// ListBunkLogs retrieves logs restricted to the given bunks. A nil bunk list
// means unrestricted.
func (s *BunkLogService) ListBunkLogs(bunkIDs []uuid.UUID, unrestricted bool, limit, offset int) ([]BunkLogResponse, int64, error) {
	var logs []models.BunkLog
	var total int64
	var err error

	if unrestricted {
		logs, total, err = s.repo.ListAll(limit, offset)
	} else {
		logs, total, err = s.repo.ListByBunks(bunkIDs, limit, offset)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bunk logs: %w", err)
	}

	responses := make([]BunkLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = *convertBunkLog(&log)
	}
	return responses, total, nil
}

// UpdateBunkLog updates a bunk log's content. The stored author and date are
// preserved regardless of the request payload.
func (s *BunkLogService) UpdateBunkLog(id uuid.UUID, req *UpdateBunkLogRequest) (*BunkLogResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	log, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrBunkLogNotFound
	}

	if req.Summary != nil {
		log.Summary = *req.Summary
	}
	if req.MoodScore != nil {
		log.MoodScore = *req.MoodScore
	}
	if req.HealthNotes != nil {
		log.HealthNotes = *req.HealthNotes
	}
	if req.RequestItems != nil {
		log.RequestItems = *req.RequestItems
	}
	if req.FlagForFollow != nil {
		log.FlagForFollow = *req.FlagForFollow
	}

	if err := s.repo.Update(log); err != nil {
		return nil, fmt.Errorf("failed to update bunk log: %w", err)
	}

	return convertBunkLog(log), nil
}

// RedateBunkLog moves a log to a new date. This is an administrative
// correction path; the one-log-per-bunk-per-date rule still holds.
func (s *BunkLogService) RedateBunkLog(id uuid.UUID, req *RedateBunkLogRequest) (*BunkLogResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	log, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrBunkLogNotFound
	}

	date := truncateToDate(req.Date)
	exists, err := s.repo.ExistsForBunkDate(log.BunkID, date, &id)
	if err != nil {
		return nil, fmt.Errorf("failed to check log date: %w", err)
	}
	if exists {
		return nil, apperrors.ErrBunkLogExists
	}

	if err := s.repo.Redate(id, date); err != nil {
		return nil, fmt.Errorf("failed to redate bunk log: %w", err)
	}

	log.Date = date
	return convertBunkLog(log), nil
}

// DeleteBunkLog deletes a bunk log
func (s *BunkLogService) DeleteBunkLog(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrBunkLogNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete bunk log: %w", err)
	}

	return nil
}

// localDate returns today's calendar date in the author's timezone
func (s *BunkLogService) localDate(authorID uuid.UUID) (time.Time, error) {
	loc, err := s.locales.Location(authorID)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to resolve author timezone: %w", err)
	}
	now := s.clock.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func convertBunkLog(log *models.BunkLog) *BunkLogResponse {
	return &BunkLogResponse{
		ID:            log.ID,
		BunkID:        log.BunkID,
		AuthorID:      log.AuthorID,
		Date:          log.Date.Format("2006-01-02"),
		Summary:       log.Summary,
		MoodScore:     log.MoodScore,
		HealthNotes:   log.HealthNotes,
		RequestItems:  log.RequestItems,
		FlagForFollow: log.FlagForFollow,
		CreatedAt:     log.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     log.UpdatedAt.Format(time.RFC3339),
	}
}
