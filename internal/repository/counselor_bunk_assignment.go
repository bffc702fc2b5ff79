package repository

import (
	"time"

	"camp-records-backend/internal/database/models"
	apperrors "camp-records-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CounselorBunkAssignmentRepository handles database operations for
// counselor-to-bunk assignments
type CounselorBunkAssignmentRepository struct {
	db *gorm.DB
}

// NewCounselorBunkAssignmentRepository creates a new counselor bunk assignment repository
func NewCounselorBunkAssignmentRepository(db *gorm.DB) *CounselorBunkAssignmentRepository {
	return &CounselorBunkAssignmentRepository{db: db}
}

// Create creates a new counselor bunk assignment
func (r *CounselorBunkAssignmentRepository) Create(assignment *models.CounselorBunkAssignment) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves a counselor bunk assignment by ID
func (r *CounselorBunkAssignmentRepository) GetByID(id uuid.UUID) (*models.CounselorBunkAssignment, error) {
	var assignment models.CounselorBunkAssignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByBunkID retrieves all assignments for a bunk, newest first
func (r *CounselorBunkAssignmentRepository) GetByBunkID(bunkID uuid.UUID) ([]models.CounselorBunkAssignment, error) {
	var assignments []models.CounselorBunkAssignment
	err := r.db.Where("bunk_id = ?", bunkID).Order("start_date DESC").Find(&assignments).Error
	return assignments, err
}

// ActiveForCounselor retrieves the counselor's assignments active on asOf
func (r *CounselorBunkAssignmentRepository) ActiveForCounselor(counselorID uuid.UUID, asOf time.Time) ([]models.CounselorBunkAssignment, error) {
	var assignments []models.CounselorBunkAssignment
	err := r.db.
		Where("counselor_id = ?", counselorID).
		Where("start_date <= ? AND (end_date IS NULL OR end_date >= ?)", asOf, asOf).
		Find(&assignments).Error
	return assignments, err
}

// ActiveForBunk retrieves the bunk's assignments active on asOf
func (r *CounselorBunkAssignmentRepository) ActiveForBunk(bunkID uuid.UUID, asOf time.Time) ([]models.CounselorBunkAssignment, error) {
	var assignments []models.CounselorBunkAssignment
	err := r.db.
		Where("bunk_id = ?", bunkID).
		Where("start_date <= ? AND (end_date IS NULL OR end_date >= ?)", asOf, asOf).
		Find(&assignments).Error
	return assignments, err
}

// SetPrimary marks the assignment primary and clears the flag on the
// counselor's other assignments in one transaction
func (r *CounselorBunkAssignmentRepository) SetPrimary(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var assignment models.CounselorBunkAssignment
		if err := tx.First(&assignment, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.CounselorBunkAssignment{}).
			Where("counselor_id = ? AND id != ?", assignment.CounselorID, id).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.CounselorBunkAssignment{}).
			Where("id = ?", id).
			Update("is_primary", true).Error
	})
}

// Close sets the assignment's end date
func (r *CounselorBunkAssignmentRepository) Close(id uuid.UUID, endDate time.Time) error {
	var assignment models.CounselorBunkAssignment
	if err := r.db.First(&assignment, "id = ?", id).Error; err != nil {
		return err
	}
	if assignment.EndDate != nil {
		return apperrors.ErrAssignmentAlreadyClosed
	}
	return r.db.Model(&models.CounselorBunkAssignment{}).
		Where("id = ?", id).
		Update("end_date", endDate).Error
}
