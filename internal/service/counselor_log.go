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

// CounselorLogService handles business logic for counselor logs. The subject
// is the counselor; the bunk link is what unit-level visibility keys off.
type CounselorLogService struct {
	repo      repository.CounselorLogRepositoryInterface
	staffRepo repository.StaffMemberRepositoryInterface
	bunkRepo  repository.BunkRepositoryInterface
	clock     authz.Clock
	locales   authz.LocaleProvider
	validator *validator.Validate
}

// NewCounselorLogService creates a new counselor log service
func NewCounselorLogService(
	repo repository.CounselorLogRepositoryInterface,
	staffRepo repository.StaffMemberRepositoryInterface,
	bunkRepo repository.BunkRepositoryInterface,
	clock authz.Clock,
	locales authz.LocaleProvider,
	validator *validator.Validate,
) *CounselorLogService {
	return &CounselorLogService{
		repo:      repo,
		staffRepo: staffRepo,
		bunkRepo:  bunkRepo,
		clock:     clock,
		locales:   locales,
		validator: validator,
	}
}

// CreateCounselorLogRequest represents the data needed to create a counselor log
type CreateCounselorLogRequest struct {
	CounselorID uuid.UUID `json:"counselor_id" validate:"required"`
	BunkID      uuid.UUID `json:"bunk_id" validate:"required"`
	Highlights  string    `json:"highlights"`
	Concerns    string    `json:"concerns"`
	HoursSlept  float64   `json:"hours_slept" validate:"min=0,max=24"`
}

// UpdateCounselorLogRequest represents the data needed to update a counselor
// log. Subject, author and date are immutable.
type UpdateCounselorLogRequest struct {
	Highlights *string  `json:"highlights"`
	Concerns   *string  `json:"concerns"`
	HoursSlept *float64 `json:"hours_slept" validate:"omitempty,min=0,max=24"`
}

// RedateCounselorLogRequest represents an administrative date correction
type RedateCounselorLogRequest struct {
	Date time.Time `json:"date" validate:"required"`
}

// CounselorLogResponse represents the response data for a counselor log
type CounselorLogResponse struct {
	ID          uuid.UUID `json:"id"`
	CounselorID uuid.UUID `json:"counselor_id"`
	AuthorID    uuid.UUID `json:"author_id"`
	BunkID      uuid.UUID `json:"bunk_id"`
	Date        string    `json:"date"`
	Highlights  string    `json:"highlights,omitempty"`
	Concerns    string    `json:"concerns,omitempty"`
	HoursSlept  float64   `json:"hours_slept"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// CreateCounselorLog creates a counselor log authored by the given staff
// member, dated with the author's current local calendar date
func (s *CounselorLogService) CreateCounselorLog(authorID uuid.UUID, req *CreateCounselorLogRequest) (*CounselorLogResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
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

	loc, err := s.locales.Location(authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve author timezone: %w", err)
	}
	now := s.clock.Now().In(loc)
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	exists, err := s.repo.ExistsForCounselorDate(req.CounselorID, date, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check log date: %w", err)
	}
	if exists {
		return nil, apperrors.ErrCounselorLogExists
	}

	log := &models.CounselorLog{
		CounselorID: req.CounselorID,
		AuthorID:    authorID,
		BunkID:      req.BunkID,
		Date:        date,
		Highlights:  req.Highlights,
		Concerns:    req.Concerns,
		HoursSlept:  req.HoursSlept,
	}

	if err := s.repo.Create(log); err != nil {
		return nil, fmt.Errorf("failed to create counselor log: %w", err)
	}

	return convertCounselorLog(log), nil
}

// GetCounselorLogByID retrieves a counselor log by ID
func (s *CounselorLogService) GetCounselorLogByID(id uuid.UUID) (*CounselorLogResponse, error) {
	log, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrCounselorLogNotFound
	}

	return convertCounselorLog(log), nil
}

// GetCounselorLogModel retrieves the raw model, used by handlers to build
// authorization refs before deciding
func (s *CounselorLogService) GetCounselorLogModel(id uuid.UUID) (*models.CounselorLog, error) {
	log, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrCounselorLogNotFound
	}
	return log, nil
}

// ListCounselorLogs retrieves logs restricted to the given bunks. Unrestricted
// actors see everything.
func (s *CounselorLogService) ListCounselorLogs(bunkIDs []uuid.UUID, unrestricted bool, limit, offset int) ([]CounselorLogResponse, int64, error) {
	var logs []models.CounselorLog
	var total int64
	var err error

	if unrestricted {
		logs, total, err = s.repo.ListAll(limit, offset)
	} else {
		logs, total, err = s.repo.ListByBunks(bunkIDs, limit, offset)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list counselor logs: %w", err)
	}

	responses := make([]CounselorLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = *convertCounselorLog(&log)
	}
	return responses, total, nil
}

// ListByCounselor retrieves a counselor's own logs
func (s *CounselorLogService) ListByCounselor(counselorID uuid.UUID, limit, offset int) ([]CounselorLogResponse, int64, error) {
	logs, total, err := s.repo.ListByCounselor(counselorID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list counselor logs: %w", err)
	}

	responses := make([]CounselorLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = *convertCounselorLog(&log)
	}
	return responses, total, nil
}

// UpdateCounselorLog updates a counselor log's content. The stored subject,
// author and date are preserved regardless of the request payload.
func (s *CounselorLogService) UpdateCounselorLog(id uuid.UUID, req *UpdateCounselorLogRequest) (*CounselorLogResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	log, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrCounselorLogNotFound
	}

	if req.Highlights != nil {
		log.Highlights = *req.Highlights
	}
	if req.Concerns != nil {
		log.Concerns = *req.Concerns
	}
	if req.HoursSlept != nil {
		log.HoursSlept = *req.HoursSlept
	}

	if err := s.repo.Update(log); err != nil {
		return nil, fmt.Errorf("failed to update counselor log: %w", err)
	}

	return convertCounselorLog(log), nil
}

// RedateCounselorLog moves a log to a new date. This is an administrative
// correction path; the one-log-per-counselor-per-date rule still holds.
func (s *CounselorLogService) RedateCounselorLog(id uuid.UUID, req *RedateCounselorLogRequest) (*CounselorLogResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	log, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrCounselorLogNotFound
	}

	date := truncateToDate(req.Date)
	exists, err := s.repo.ExistsForCounselorDate(log.CounselorID, date, &id)
	if err != nil {
		return nil, fmt.Errorf("failed to check log date: %w", err)
	}
	if exists {
		return nil, apperrors.ErrCounselorLogExists
	}

	if err := s.repo.Redate(id, date); err != nil {
		return nil, fmt.Errorf("failed to redate counselor log: %w", err)
	}

	log.Date = date
	return convertCounselorLog(log), nil
}

// DeleteCounselorLog deletes a counselor log
func (s *CounselorLogService) DeleteCounselorLog(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrCounselorLogNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete counselor log: %w", err)
	}

	return nil
}

func convertCounselorLog(log *models.CounselorLog) *CounselorLogResponse {
	return &CounselorLogResponse{
		ID:          log.ID,
		CounselorID: log.CounselorID,
		AuthorID:    log.AuthorID,
		BunkID:      log.BunkID,
		Date:        log.Date.Format("2006-01-02"),
		Highlights:  log.Highlights,
		Concerns:    log.Concerns,
		HoursSlept:  log.HoursSlept,
		CreatedAt:   log.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   log.UpdatedAt.Format(time.RFC3339),
	}
}
