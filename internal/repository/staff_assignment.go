package repository

import (
	"time"

	"camp-records-backend/internal/database/models"
	apperrors "camp-records-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffAssignmentRepository handles database operations for staff assignments
type StaffAssignmentRepository struct {
	db *gorm.DB
}

// NewStaffAssignmentRepository creates a new staff assignment repository
func NewStaffAssignmentRepository(db *gorm.DB) *StaffAssignmentRepository {
	return &StaffAssignmentRepository{db: db}
}

// Create creates a new staff assignment
func (r *StaffAssignmentRepository) Create(assignment *models.StaffAssignment) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves a staff assignment by ID
func (r *StaffAssignmentRepository) GetByID(id uuid.UUID) (*models.StaffAssignment, error) {
	var assignment models.StaffAssignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByUnitID retrieves all assignments for a unit, newest first
func (r *StaffAssignmentRepository) GetByUnitID(unitID uuid.UUID) ([]models.StaffAssignment, error) {
	var assignments []models.StaffAssignment
	err := r.db.Where("unit_id = ?", unitID).Order("start_date DESC").Find(&assignments).Error
	return assignments, err
}

// GetByStaffMemberID retrieves all assignments held by a staff member
func (r *StaffAssignmentRepository) GetByStaffMemberID(staffMemberID uuid.UUID) ([]models.StaffAssignment, error) {
	var assignments []models.StaffAssignment
	err := r.db.Where("staff_member_id = ?", staffMemberID).Order("start_date DESC").Find(&assignments).Error
	return assignments, err
}

// ActiveForUnit retrieves assignments active on asOf for (unit, role).
// The date window is inclusive on both ends; a null end date never expires.
func (r *StaffAssignmentRepository) ActiveForUnit(unitID uuid.UUID, role models.StaffRole, asOf time.Time) ([]models.StaffAssignment, error) {
	var assignments []models.StaffAssignment
	err := r.db.
		Where("unit_id = ? AND role = ?", unitID, role).
		Where("start_date <= ? AND (end_date IS NULL OR end_date >= ?)", asOf, asOf).
		Find(&assignments).Error
	return assignments, err
}

// ActiveForStaff retrieves assignments active on asOf held by a staff member
// in the given role
func (r *StaffAssignmentRepository) ActiveForStaff(staffMemberID uuid.UUID, role models.StaffRole, asOf time.Time) ([]models.StaffAssignment, error) {
	var assignments []models.StaffAssignment
	err := r.db.
		Where("staff_member_id = ? AND role = ?", staffMemberID, role).
		Where("start_date <= ? AND (end_date IS NULL OR end_date >= ?)", asOf, asOf).
		Find(&assignments).Error
	return assignments, err
}

// LegacyUnitIDsForStaff retrieves units whose deprecated legacy holder column
// for the role names the staff member and which have no assignment rows
// active on asOf for that role
func (r *StaffAssignmentRepository) LegacyUnitIDsForStaff(staffMemberID uuid.UUID, role models.StaffRole, asOf time.Time) ([]uuid.UUID, error) {
	column := "legacy_unit_head_id"
	if role == models.StaffRoleCamperCare {
		column = "legacy_camper_care_id"
	}

	var ids []uuid.UUID
	err := r.db.Model(&models.Unit{}).
		Where(column+" = ?", staffMemberID).
		Where(`NOT EXISTS (
			SELECT 1 FROM staff_assignments sa
			WHERE sa.unit_id = units.id AND sa.role = ?
			AND sa.start_date <= ? AND (sa.end_date IS NULL OR sa.end_date >= ?)
		)`, role, asOf, asOf).
		Pluck("id", &ids).Error
	return ids, err
}

// SetPrimary marks the assignment primary and atomically clears the primary
// flag on every other assignment sharing its (unit, role) in one transaction
func (r *StaffAssignmentRepository) SetPrimary(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var assignment models.StaffAssignment
		if err := tx.First(&assignment, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.StaffAssignment{}).
			Where("unit_id = ? AND role = ? AND id != ?", assignment.UnitID, assignment.Role, id).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.StaffAssignment{}).
			Where("id = ?", id).
			Update("is_primary", true).Error
	})
}

// Close sets the assignment's end date. Assignments are never hard-deleted in
// normal operation so history survives; an already-closed assignment cannot
// be closed again.
func (r *StaffAssignmentRepository) Close(id uuid.UUID, endDate time.Time) error {
	var assignment models.StaffAssignment
	if err := r.db.First(&assignment, "id = ?", id).Error; err != nil {
		return err
	}
	if assignment.EndDate != nil {
		return apperrors.ErrAssignmentAlreadyClosed
	}
	return r.db.Model(&models.StaffAssignment{}).
		Where("id = ?", id).
		Update("end_date", endDate).Error
}

// ExistsForTuple checks whether an assignment row exists for the unique
// (unit, staff member, role) tuple
func (r *StaffAssignmentRepository) ExistsForTuple(unitID, staffMemberID uuid.UUID, role models.StaffRole) (bool, error) {
	var count int64
	err := r.db.Model(&models.StaffAssignment{}).
		Where("unit_id = ? AND staff_member_id = ? AND role = ?", unitID, staffMemberID, role).
		Count(&count).Error
	return count > 0, err
}
