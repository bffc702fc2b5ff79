package service

import (
	"encoding/json"
	"fmt"
	"time"

	"camp-records-backend/internal/database/models"
	apperrors "camp-records-backend/internal/errors"
	"camp-records-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SupplyOrderService handles business logic for supply orders
type SupplyOrderService struct {
	repo      repository.SupplyOrderRepositoryInterface
	unitRepo  repository.UnitRepositoryInterface
	validator *validator.Validate
}

// NewSupplyOrderService creates a new supply order service
func NewSupplyOrderService(repo repository.SupplyOrderRepositoryInterface, unitRepo repository.UnitRepositoryInterface, validator *validator.Validate) *SupplyOrderService {
	return &SupplyOrderService{
		repo:      repo,
		unitRepo:  unitRepo,
		validator: validator,
	}
}

// CreateSupplyOrderRequest represents the data needed to create a supply order
type CreateSupplyOrderRequest struct {
	UnitID uuid.UUID       `json:"unit_id" validate:"required"`
	Items  json.RawMessage `json:"items" validate:"required"`
	Notes  string          `json:"notes"`
}

// UpdateSupplyOrderRequest represents the data needed to update a supply order
type UpdateSupplyOrderRequest struct {
	Items json.RawMessage `json:"items"`
	Notes *string         `json:"notes"`
}

// SetSupplyOrderStatusRequest represents a status transition
type SetSupplyOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SupplyOrderResponse represents the response data for a supply order
type SupplyOrderResponse struct {
	ID          uuid.UUID       `json:"id"`
	UnitID      uuid.UUID       `json:"unit_id"`
	RequestedBy uuid.UUID       `json:"requested_by"`
	Status      string          `json:"status"`
	Items       json.RawMessage `json:"items,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// CreateSupplyOrder creates a new supply order requested by the given staff member
func (s *SupplyOrderService) CreateSupplyOrder(requestedBy uuid.UUID, req *CreateSupplyOrderRequest) (*SupplyOrderResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.unitRepo.GetByID(req.UnitID); err != nil {
		return nil, apperrors.ErrUnitNotFound
	}

	order := &models.SupplyOrder{
		UnitID:      req.UnitID,
		RequestedBy: requestedBy,
		Status:      models.SupplyOrderStatusPending,
		Items:       req.Items,
		Notes:       req.Notes,
	}

	if err := s.repo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create supply order: %w", err)
	}

	return convertSupplyOrder(order), nil
}

// GetSupplyOrderByID retrieves a supply order by ID
func (s *SupplyOrderService) GetSupplyOrderByID(id uuid.UUID) (*SupplyOrderResponse, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrSupplyOrderNotFound
	}

	return convertSupplyOrder(order), nil
}

// GetSupplyOrderModel retrieves the raw model, used by handlers to build
// authorization refs before deciding
func (s *SupplyOrderService) GetSupplyOrderModel(id uuid.UUID) (*models.SupplyOrder, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrSupplyOrderNotFound
	}
	return order, nil
}

// ListSupplyOrders retrieves orders restricted to the given units.
// Unrestricted actors see everything.
func (s *SupplyOrderService) ListSupplyOrders(unitIDs []uuid.UUID, unrestricted bool, limit, offset int) ([]SupplyOrderResponse, int64, error) {
	var orders []models.SupplyOrder
	var total int64
	var err error

	if unrestricted {
		orders, total, err = s.repo.ListAll(limit, offset)
	} else {
		orders, total, err = s.repo.ListByUnits(unitIDs, limit, offset)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list supply orders: %w", err)
	}

	responses := make([]SupplyOrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = *convertSupplyOrder(&order)
	}
	return responses, total, nil
}

// UpdateSupplyOrder updates a supply order's content
func (s *SupplyOrderService) UpdateSupplyOrder(id uuid.UUID, req *UpdateSupplyOrderRequest) (*SupplyOrderResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrSupplyOrderNotFound
	}

	if req.Items != nil {
		order.Items = req.Items
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}

	if err := s.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update supply order: %w", err)
	}

	return convertSupplyOrder(order), nil
}

// SetSupplyOrderStatus transitions a supply order to a new status
func (s *SupplyOrderService) SetSupplyOrderStatus(id uuid.UUID, req *SetSupplyOrderStatusRequest) (*SupplyOrderResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.SupplyOrderStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrSupplyOrderNotFound
	}

	if err := s.repo.SetStatus(id, status); err != nil {
		return nil, fmt.Errorf("failed to set supply order status: %w", err)
	}

	order.Status = status
	return convertSupplyOrder(order), nil
}

// DeleteSupplyOrder deletes a supply order
func (s *SupplyOrderService) DeleteSupplyOrder(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrSupplyOrderNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete supply order: %w", err)
	}

	return nil
}

func convertSupplyOrder(order *models.SupplyOrder) *SupplyOrderResponse {
	return &SupplyOrderResponse{
		ID:          order.ID,
		UnitID:      order.UnitID,
		RequestedBy: order.RequestedBy,
		Status:      string(order.Status),
		Items:       order.Items,
		Notes:       order.Notes,
		CreatedAt:   order.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   order.UpdatedAt.Format(time.RFC3339),
	}
}
