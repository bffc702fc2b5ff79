package repository

import (
	"camp-records-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CamperRepository handles database operations for campers
type CamperRepository struct {
	db *gorm.DB
}

// NewCamperRepository creates a new camper repository
func NewCamperRepository(db *gorm.DB) *CamperRepository {
	return &CamperRepository{db: db}
}

// Create creates a new camper
func (r *CamperRepository) Create(camper *models.Camper) error {
	return r.db.Create(camper).Error
}

// GetByID retrieves a camper by ID
func (r *CamperRepository) GetByID(id uuid.UUID) (*models.Camper, error) {
	var camper models.Camper
	err := r.db.First(&camper, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &camper, nil
}

// GetByIDs retrieves campers by a set of IDs in one query, with pagination
func (r *CamperRepository) GetByIDs(ids []uuid.UUID, limit, offset int) ([]models.Camper, int64, error) {
	if len(ids) == 0 {
		return nil, 0, nil
	}
	var campers []models.Camper
	var total int64

	if err := r.db.Model(&models.Camper{}).Where("id IN ?", ids).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Where("id IN ?", ids).Order("last_name, first_name").Limit(limit).Offset(offset).Find(&campers).Error
	if err != nil {
		return nil, 0, err
	}
	return campers, total, nil
}

// GetAll retrieves all campers with pagination
func (r *CamperRepository) GetAll(limit, offset int) ([]models.Camper, int64, error) {
	var campers []models.Camper
	var total int64

	if err := r.db.Model(&models.Camper{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("last_name, first_name").Limit(limit).Offset(offset).Find(&campers).Error
	if err != nil {
		return nil, 0, err
	}
	return campers, total, nil
}

// GetWithBunkHistory retrieves a camper with their full bunk assignment history
func (r *CamperRepository) GetWithBunkHistory(id uuid.UUID) (*models.Camper, error) {
	var camper models.Camper
	err := r.db.Preload("BunkAssignments").First(&camper, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &camper, nil
}

// Update updates a camper
func (r *CamperRepository) Update(camper *models.Camper) error {
	return r.db.Save(camper).Error
}

// Delete deletes a camper
func (r *CamperRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Camper{}, "id = ?", id).Error
}
