package repository

import (
	"camp-records-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BunkRepository handles database operations for bunks
type BunkRepository struct {
	db *gorm.DB
}

// NewBunkRepository creates a new bunk repository
func NewBunkRepository(db *gorm.DB) *BunkRepository {
	return &BunkRepository{db: db}
}

// Create creates a new bunk
func (r *BunkRepository) Create(bunk *models.Bunk) error {
	return r.db.Create(bunk).Error
}

// GetByID retrieves a bunk by ID
func (r *BunkRepository) GetByID(id uuid.UUID) (*models.Bunk, error) {
	var bunk models.Bunk
	err := r.db.First(&bunk, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bunk, nil
}

// GetByUnitID retrieves all bunks for a unit
func (r *BunkRepository) GetByUnitID(unitID uuid.UUID) ([]models.Bunk, error) {
	var bunks []models.Bunk
	err := r.db.Where("unit_id = ?", unitID).Order("name").Find(&bunks).Error
	return bunks, err
}

// GetByUnitIDs retrieves all bunks belonging to any of the given units in one
// query
func (r *BunkRepository) GetByUnitIDs(unitIDs []uuid.UUID) ([]models.Bunk, error) {
	if len(unitIDs) == 0 {
		return nil, nil
	}
	var bunks []models.Bunk
	err := r.db.Where("unit_id IN ?", unitIDs).Find(&bunks).Error
	return bunks, err
}

// GetByIDs retrieves bunks by a set of IDs in one query
func (r *BunkRepository) GetByIDs(ids []uuid.UUID) ([]models.Bunk, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var bunks []models.Bunk
	err := r.db.Where("id IN ?", ids).Find(&bunks).Error
	return bunks, err
}

// GetAll retrieves all bunks with pagination
func (r *BunkRepository) GetAll(limit, offset int) ([]models.Bunk, int64, error) {
	var bunks []models.Bunk
	var total int64

	if err := r.db.Model(&models.Bunk{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("name").Limit(limit).Offset(offset).Find(&bunks).Error
	if err != nil {
		return nil, 0, err
	}
	return bunks, total, nil
}

// Update updates a bunk
func (r *BunkRepository) Update(bunk *models.Bunk) error {
	return r.db.Save(bunk).Error
}

// Delete deletes a bunk
func (r *BunkRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Bunk{}, "id = ?", id).Error
}

// SetActive sets the is_active flag of a bunk
func (r *BunkRepository) SetActive(id uuid.UUID, active bool) error {
	return r.db.Model(&models.Bunk{}).Where("id = ?", id).Update("is_active", active).Error
}
