package repository

import (
	"camp-records-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplyOrderRepository handles database operations for supply orders
type SupplyOrderRepository struct {
	db *gorm.DB
}

// NewSupplyOrderRepository creates a new supply order repository
func NewSupplyOrderRepository(db *gorm.DB) *SupplyOrderRepository {
	return &SupplyOrderRepository{db: db}
}

// Create creates a new supply order
func (r *SupplyOrderRepository) Create(order *models.SupplyOrder) error {
	return r.db.Create(order).Error
}

// GetByID retrieves a supply order by ID
func (r *SupplyOrderRepository) GetByID(id uuid.UUID) (*models.SupplyOrder, error) {
	var order models.SupplyOrder
	err := r.db.First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByUnits retrieves orders for any of the given units, newest first, with
// pagination. An empty unit set yields no rows.
func (r *SupplyOrderRepository) ListByUnits(unitIDs []uuid.UUID, limit, offset int) ([]models.SupplyOrder, int64, error) {
	if len(unitIDs) == 0 {
		return nil, 0, nil
	}
	var orders []models.SupplyOrder
	var total int64

	if err := r.db.Model(&models.SupplyOrder{}).Where("unit_id IN ?", unitIDs).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Where("unit_id IN ?", unitIDs).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ListAll retrieves all supply orders, newest first, with pagination
func (r *SupplyOrderRepository) ListAll(limit, offset int) ([]models.SupplyOrder, int64, error) {
	var orders []models.SupplyOrder
	var total int64

	if err := r.db.Model(&models.SupplyOrder{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// Update updates a supply order
func (r *SupplyOrderRepository) Update(order *models.SupplyOrder) error {
	return r.db.Save(order).Error
}

// Delete deletes a supply order
func (r *SupplyOrderRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SupplyOrder{}, "id = ?", id).Error
}

// SetStatus updates the status of a supply order
func (r *SupplyOrderRepository) SetStatus(id uuid.UUID, status models.SupplyOrderStatus) error {
	return r.db.Model(&models.SupplyOrder{}).Where("id = ?", id).Update("status", status).Error
}
