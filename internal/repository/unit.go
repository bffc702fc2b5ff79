package repository

import (
	"camp-records-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnitRepository handles database operations for units
type UnitRepository struct {
	db *gorm.DB
}

// NewUnitRepository creates a new unit repository
func NewUnitRepository(db *gorm.DB) *UnitRepository {
	return &UnitRepository{db: db}
}

// Create creates a new unit
func (r *UnitRepository) Create(unit *models.Unit) error {
	return r.db.Create(unit).Error
}

// GetByID retrieves a unit by ID
func (r *UnitRepository) GetByID(id uuid.UUID) (*models.Unit, error) {
	var unit models.Unit
	err := r.db.First(&unit, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// GetByName retrieves a unit by name
func (r *UnitRepository) GetByName(name string) (*models.Unit, error) {
	var unit models.Unit
	err := r.db.First(&unit, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// GetAll retrieves all units with pagination
func (r *UnitRepository) GetAll(limit, offset int) ([]models.Unit, int64, error) {
	var units []models.Unit
	var total int64

	if err := r.db.Model(&models.Unit{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("name").Limit(limit).Offset(offset).Find(&units).Error
	if err != nil {
		return nil, 0, err
	}
	return units, total, nil
}

// GetByIDs retrieves units by a set of IDs in one query
func (r *UnitRepository) GetByIDs(ids []uuid.UUID) ([]models.Unit, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var units []models.Unit
	err := r.db.Where("id IN ?", ids).Find(&units).Error
	return units, err
}

// Update updates a unit
func (r *UnitRepository) Update(unit *models.Unit) error {
	return r.db.Save(unit).Error
}

// Delete deletes a unit
func (r *UnitRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Unit{}, "id = ?", id).Error
}

// GetWithBunks retrieves a unit with its bunks
func (r *UnitRepository) GetWithBunks(id uuid.UUID) (*models.Unit, error) {
	var unit models.Unit
	err := r.db.Preload("Bunks").First(&unit, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// CheckNameExists checks if a unit name exists, optionally excluding an ID
func (r *UnitRepository) CheckNameExists(name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Unit{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
