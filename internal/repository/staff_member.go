package repository

import (
	"camp-records-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffMemberRepository handles database operations for staff members
type StaffMemberRepository struct {
	db *gorm.DB
}

// NewStaffMemberRepository creates a new staff member repository
func NewStaffMemberRepository(db *gorm.DB) *StaffMemberRepository {
	return &StaffMemberRepository{db: db}
}

// Create creates a new staff member
func (r *StaffMemberRepository) Create(member *models.StaffMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a staff member by ID
func (r *StaffMemberRepository) GetByID(id uuid.UUID) (*models.StaffMember, error) {
	var member models.StaffMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByEmail retrieves a staff member by email
func (r *StaffMemberRepository) GetByEmail(email string) (*models.StaffMember, error) {
	var member models.StaffMember
	err := r.db.First(&member, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetAll retrieves all staff members with pagination
func (r *StaffMemberRepository) GetAll(limit, offset int) ([]models.StaffMember, int64, error) {
	var members []models.StaffMember
	var total int64

	if err := r.db.Model(&models.StaffMember{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("name").Limit(limit).Offset(offset).Find(&members).Error
	if err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

// GetByRole retrieves staff members with the given role
func (r *StaffMemberRepository) GetByRole(role models.StaffRole) ([]models.StaffMember, error) {
	var members []models.StaffMember
	err := r.db.Where("role = ?", role).Order("name").Find(&members).Error
	return members, err
}

// Update updates a staff member
func (r *StaffMemberRepository) Update(member *models.StaffMember) error {
	return r.db.Save(member).Error
}

// Delete deletes a staff member
func (r *StaffMemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.StaffMember{}, "id = ?", id).Error
}

// CheckEmailExists checks if a staff member email exists, optionally
// excluding an ID
func (r *StaffMemberRepository) CheckEmailExists(email string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.StaffMember{}).Where("email = ?", email)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
