package repository

import (
	"time"

	"camp-records-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CounselorLogRepository handles database operations for counselor logs
type CounselorLogRepository struct {
	db *gorm.DB
}

// NewCounselorLogRepository creates a new counselor log repository
func NewCounselorLogRepository(db *gorm.DB) *CounselorLogRepository {
	return &CounselorLogRepository{db: db}
}

// Create creates a new counselor log
func (r *CounselorLogRepository) Create(log *models.CounselorLog) error {
	return r.db.Create(log).Error
}

// GetByID retrieves a counselor log by ID
func (r *CounselorLogRepository) GetByID(id uuid.UUID) (*models.CounselorLog, error) {
	var log models.CounselorLog
	err := r.db.First(&log, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// ExistsForCounselorDate checks whether a log already exists for the given
// counselor and date, optionally excluding an ID
func (r *CounselorLogRepository) ExistsForCounselorDate(counselorID uuid.UUID, date time.Time, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.CounselorLog{}).
		Where("counselor_id = ? AND date = ?", counselorID, date)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// ListByBunks retrieves logs whose bunk is in the given set, newest first,
// with pagination. An empty bunk set yields no rows.
func (r *CounselorLogRepository) ListByBunks(bunkIDs []uuid.UUID, limit, offset int) ([]models.CounselorLog, int64, error) {
	if len(bunkIDs) == 0 {
		return nil, 0, nil
	}
	var logs []models.CounselorLog
	var total int64

	if err := r.db.Model(&models.CounselorLog{}).Where("bunk_id IN ?", bunkIDs).Count(&total).Error; err != nil {
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

// ListByCounselor retrieves a counselor's own logs, newest first
func (r *CounselorLogRepository) ListByCounselor(counselorID uuid.UUID, limit, offset int) ([]models.CounselorLog, int64, error) {
	var logs []models.CounselorLog
	var total int64

	if err := r.db.Model(&models.CounselorLog{}).Where("counselor_id = ?", counselorID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Where("counselor_id = ?", counselorID).
		Order("date DESC, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// ListAll retrieves all counselor logs, newest first, with pagination
func (r *CounselorLogRepository) ListAll(limit, offset int) ([]models.CounselorLog, int64, error) {
	var logs []models.CounselorLog
	var total int64

	if err := r.db.Model(&models.CounselorLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("date DESC, created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// Update updates a counselor log
func (r *CounselorLogRepository) Update(log *models.CounselorLog) error {
	return r.db.Save(log).Error
}

// Delete deletes a counselor log
func (r *CounselorLogRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.CounselorLog{}, "id = ?", id).Error
}

// Redate moves a log to a new date
func (r *CounselorLogRepository) Redate(id uuid.UUID, date time.Time) error {
	return r.db.Model(&models.CounselorLog{}).Where("id = ?", id).Update("date", date).Error
}
