package repository

import (
	"time"

	"camp-records-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository handles database operations for camp sessions
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// GetByID retrieves a session by ID
func (r *SessionRepository) GetByID(id uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := r.db.First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetAll retrieves all sessions ordered by start date
func (r *SessionRepository) GetAll() ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.Order("start_date").Find(&sessions).Error
	return sessions, err
}

// GetActiveOn retrieves sessions whose date range contains the given date
func (r *SessionRepository) GetActiveOn(date time.Time) ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.Where("start_date <= ? AND end_date >= ?", date, date).Find(&sessions).Error
	return sessions, err
}

// Update updates a session
func (r *SessionRepository) Update(session *models.Session) error {
	return r.db.Save(session).Error
}

// Delete deletes a session
func (r *SessionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Session{}, "id = ?", id).Error
}
