package repository

import (
	"camp-records-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CabinRepository handles database operations for cabins
type CabinRepository struct {
	db *gorm.DB
}

// NewCabinRepository creates a new cabin repository
func NewCabinRepository(db *gorm.DB) *CabinRepository {
	return &CabinRepository{db: db}
}

// Create creates a new cabin
func (r *CabinRepository) Create(cabin *models.Cabin) error {
	return r.db.Create(cabin).Error
}

// GetByID retrieves a cabin by ID
func (r *CabinRepository) GetByID(id uuid.UUID) (*models.Cabin, error) {
	var cabin models.Cabin
	err := r.db.First(&cabin, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cabin, nil
}

// GetAll retrieves all cabins ordered by name
func (r *CabinRepository) GetAll() ([]models.Cabin, error) {
	var cabins []models.Cabin
	err := r.db.Order("name").Find(&cabins).Error
	return cabins, err
}

// GetWithBunks retrieves a cabin with its bunks
func (r *CabinRepository) GetWithBunks(id uuid.UUID) (*models.Cabin, error) {
	var cabin models.Cabin
	err := r.db.Preload("Bunks").First(&cabin, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cabin, nil
}

// Update updates a cabin
func (r *CabinRepository) Update(cabin *models.Cabin) error {
	return r.db.Save(cabin).Error
}

// Delete deletes a cabin
func (r *CabinRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Cabin{}, "id = ?", id).Error
}
