package repository

import (
	"time"

	"camp-records-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BunkLogRepository handles database operations for bunk logs
type BunkLogRepository struct {
	db *gorm.DB
}

// NewBunkLogRepository creates a new bunk log repository
func NewBunkLogRepository(db *gorm.DB) *BunkLogRepository {
	return &BunkLogRepository{db: db}
}

// Create creates a new bunk log
func (r *BunkLogRepository) Create(log *models.BunkLog) error {
	return r.db.Create(log).Error
}

// GetByID retrieves a bunk log by ID
func (r *BunkLogRepository) GetByID(id uuid.UUID) (*models.BunkLog, error) {
	var log models.BunkLog
	err := r.db.First(&log, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// ExistsForBunkDate checks whether a log already exists for the given bunk
// and date, optionally excluding an ID
func (r *BunkLogRepository) ExistsForBunkDate(bunkID uuid.UUID, date time.Time, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.BunkLog{}).
		Where("bunk_id = ? AND date = ?", bunkID, date)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// ListByBunks retrieves logs for any of the given bunks, newest first, with
// pagination. An empty bunk set yields no rows.
func (r *BunkLogRepository) ListByBunks(bunkIDs []uuid.UUID, limit, offset int) ([]models.BunkLog, int64, error) {
	if len(bunkIDs) == 0 {
		return nil, 0, nil
	}
	var logs []models.BunkLog
	var total int64

	if err := r.db.Model(&models.BunkLog{}).Where("bunk_id IN ?", bunkIDs).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Where("bunk_id IN ?", bunkIDs).
		Order("date DESC, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// ListAll retrieves all bunk logs, newest first, with pagination
func (r *BunkLogRepository) ListAll(limit, offset int) ([]models.BunkLog, int64, error) {
	var logs []models.BunkLog
	var total int64

	if err := r.db.Model(&models.BunkLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("date DESC, created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// GetByBunkAndDate retrieves the log for a bunk on a specific date
func (r *BunkLogRepository) GetByBunkAndDate(bunkID uuid.UUID, date time.Time) (*models.BunkLog, error) {
	var log models.BunkLog
	err := r.db.First(&log, "bunk_id = ? AND date = ?", bunkID, date).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// Update updates a bunk log
func (r *BunkLogRepository) Update(log *models.BunkLog) error {
	return r.db.Save(log).Error
}

// Delete deletes a bunk log
func (r *BunkLogRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.BunkLog{}, "id = ?", id).Error
}

// Redate moves a log to a new date
func (r *BunkLogRepository) Redate(id uuid.UUID, date time.Time) error {
	return r.db.Model(&models.BunkLog{}).Where("id = ?", id).Update("date", date).Error
}
