package repository

import (
	"time"

	"camp-records-backend/internal/database/models"
	apperrors "camp-records-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CamperBunkAssignmentRepository handles database operations for
// camper-to-bunk assignments
type CamperBunkAssignmentRepository struct {
	db *gorm.DB
}

// NewCamperBunkAssignmentRepository creates a new camper bunk assignment repository
func NewCamperBunkAssignmentRepository(db *gorm.DB) *CamperBunkAssignmentRepository {
	return &CamperBunkAssignmentRepository{db: db}
}

// Create creates a new camper bunk assignment
func (r *CamperBunkAssignmentRepository) Create(assignment *models.CamperBunkAssignment) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves a camper bunk assignment by ID
func (r *CamperBunkAssignmentRepository) GetByID(id uuid.UUID) (*models.CamperBunkAssignment, error) {
	var assignment models.CamperBunkAssignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByCamperID retrieves a camper's assignment history, newest first
func (r *CamperBunkAssignmentRepository) GetByCamperID(camperID uuid.UUID) ([]models.CamperBunkAssignment, error) {
	var assignments []models.CamperBunkAssignment
	err := r.db.Where("camper_id = ?", camperID).Order("start_date DESC").Find(&assignments).Error
	return assignments, err
}

// ActiveForCamper retrieves the camper's assignments active on asOf
func (r *CamperBunkAssignmentRepository) ActiveForCamper(camperID uuid.UUID, asOf time.Time) ([]models.CamperBunkAssignment, error) {
	var assignments []models.CamperBunkAssignment
	err := r.db.
		Where("camper_id = ?", camperID).
		Where("start_date <= ? AND (end_date IS NULL OR end_date >= ?)", asOf, asOf).
		Find(&assignments).Error
	return assignments, err
}

// CamperIDsForBunks retrieves distinct campers with a bunk assignment in any
// of the given bunks, in one query. When activeOnly is true only assignments
// active on asOf count; otherwise historical assignments grant visibility too.
func (r *CamperBunkAssignmentRepository) CamperIDsForBunks(bunkIDs []uuid.UUID, activeOnly bool, asOf time.Time) ([]uuid.UUID, error) {
	if len(bunkIDs) == 0 {
		return nil, nil
	}
	query := r.db.Model(&models.CamperBunkAssignment{}).
		Where("bunk_id IN ?", bunkIDs).
		Distinct("camper_id")
	if activeOnly {
		query = query.Where("start_date <= ? AND (end_date IS NULL OR end_date >= ?)", asOf, asOf)
	}
	var ids []uuid.UUID
	err := query.Pluck("camper_id", &ids).Error
	return ids, err
}

// Close sets the assignment's end date
func (r *CamperBunkAssignmentRepository) Close(id uuid.UUID, endDate time.Time) error {
	var assignment models.CamperBunkAssignment
	if err := r.db.First(&assignment, "id = ?", id).Error; err != nil {
		return err
	}
	if assignment.EndDate != nil {
		return apperrors.ErrAssignmentAlreadyClosed
	}
	return r.db.Model(&models.CamperBunkAssignment{}).
		Where("id = ?", id).
		Update("end_date", endDate).Error
}
