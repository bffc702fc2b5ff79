package handlers

import (
	"net/http"

	"camp-records-backend/internal/authz"
	"camp-records-backend/internal/database/models"
	"camp-records-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SupplyOrderHandler handles HTTP requests for supply orders
type SupplyOrderHandler struct {
	orderService *service.SupplyOrderService
	guard        *authz.Guard
}

// NewSupplyOrderHandler creates a new supply order handler
func NewSupplyOrderHandler(orderService *service.SupplyOrderService, guard *authz.Guard) *SupplyOrderHandler {
	return &SupplyOrderHandler{
		orderService: orderService,
		guard:        guard,
	}
}

func supplyOrderRef(order *models.SupplyOrder) authz.ResourceRef {
	return authz.ResourceRef{
		ID:        order.ID,
		UnitID:    order.UnitID,
		AuthorID:  order.RequestedBy,
		CreatedAt: order.CreatedAt,
	}
}

// CreateSupplyOrder creates a new supply order
// @Summary Create a supply order
// @Description Request supplies for a unit. Unit heads and camper care staff may order for units in their scope.
// @Tags supply-orders
// @Accept json
// @Produce json
// @Param order body service.CreateSupplyOrderRequest true "Supply order data"
// @Success 201 {object} service.SupplyOrderResponse "Successfully created supply order"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} ErrorResponse "Role cannot create supply orders"
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Security BearerAuth
// @Router /supply-orders [post]
func (h *SupplyOrderHandler) CreateSupplyOrder(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	var req service.CreateSupplyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionCreate, authz.ResourceSupplyOrder, authz.ResourceRef{UnitID: req.UnitID}); !d.Allowed {
		respondDenied(c, d)
		return
	}

	order, err := h.orderService.CreateSupplyOrder(actor.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetSupplyOrder retrieves a supply order by ID
// @Summary Get supply order by ID
// @Description Get a specific supply order. Orders for units outside the caller's scope read as not found.
// @Tags supply-orders
// @Accept json
// @Produce json
// @Param id path string true "Supply order ID (UUID)"
// @Param as_of query string false "Evaluate visibility as of this date (YYYY-MM-DD)"
// @Success 200 {object} service.SupplyOrderResponse "Successfully retrieved supply order"
// @Failure 404 {object} ErrorResponse "Supply order not found"
// @Security BearerAuth
// @Router /supply-orders/{id} [get]
func (h *SupplyOrderHandler) GetSupplyOrder(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supply order ID"})
		return
	}

	order, err := h.orderService.GetSupplyOrderModel(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionRead, authz.ResourceSupplyOrder, supplyOrderRef(order)); !d.Allowed {
		respondDenied(c, d)
		return
	}

	response, err := h.orderService.GetSupplyOrderByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListSupplyOrders lists the supply orders visible to the caller
// @Summary List supply orders
// @Description Get the supply orders for units inside the caller's visibility scope, newest first
// @Tags supply-orders
// @Accept json
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Param as_of query string false "Evaluate visibility as of this date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved supply orders"
// @Security BearerAuth
// @Router /supply-orders [get]
func (h *SupplyOrderHandler) ListSupplyOrders(c *gin.Context) {
	_, scope, ok := actorScope(c)
	if !ok {
		return
	}

	limit, offset := pagination(c)

	orders, total, err := h.orderService.ListSupplyOrders(scope.UnitIDList(), scope.Kind == authz.ScopeUnrestricted, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"supply_orders": orders,
		"total":         total,
		"limit":         limit,
		"offset":        offset,
	})
}

// UpdateSupplyOrder updates an existing supply order
// @Summary Update supply order
// @Description Update a supply order's items or notes. Unit-level roles and admins only.
// @Tags supply-orders
// @Accept json
// @Produce json
// @Param id path string true "Supply order ID (UUID)"
// @Param order body service.UpdateSupplyOrderRequest true "Updated supply order data"
// @Success 200 {object} service.SupplyOrderResponse "Successfully updated supply order"
// @Failure 403 {object} ErrorResponse "Role cannot update supply orders"
// @Failure 404 {object} ErrorResponse "Supply order not found"
// @Security BearerAuth
// @Router /supply-orders/{id} [put]
func (h *SupplyOrderHandler) UpdateSupplyOrder(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supply order ID"})
		return
	}

	order, err := h.orderService.GetSupplyOrderModel(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionUpdate, authz.ResourceSupplyOrder, supplyOrderRef(order)); !d.Allowed {
		respondDenied(c, d)
		return
	}

	var req service.UpdateSupplyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.orderService.UpdateSupplyOrder(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// SetSupplyOrderStatus transitions a supply order's status
// @Summary Set supply order status
// @Description Move a supply order to a new status (pending, approved, ordered, delivered, cancelled). Unit-level roles and admins only.
// @Tags supply-orders
// @Accept json
// @Produce json
// @Param id path string true "Supply order ID (UUID)"
// @Param status body service.SetSupplyOrderStatusRequest true "Target status"
// @Success 200 {object} service.SupplyOrderResponse "Successfully updated status"
// @Failure 400 {object} map[string]interface{} "Unknown status value"
// @Failure 403 {object} ErrorResponse "Role cannot update supply orders"
// @Failure 404 {object} ErrorResponse "Supply order not found"
// @Security BearerAuth
// @Router /supply-orders/{id}/status [post]
func (h *SupplyOrderHandler) SetSupplyOrderStatus(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supply order ID"})
		return
	}

	order, err := h.orderService.GetSupplyOrderModel(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionUpdate, authz.ResourceSupplyOrder, supplyOrderRef(order)); !d.Allowed {
		respondDenied(c, d)
		return
	}

	var req service.SetSupplyOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.orderService.SetSupplyOrderStatus(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteSupplyOrder deletes a supply order
// @Summary Delete supply order
// @Description Delete a supply order by ID. Admin only.
// @Tags supply-orders
// @Accept json
// @Produce json
// @Param id path string true "Supply order ID (UUID)"
// @Success 204 "Successfully deleted supply order"
// @Failure 403 {object} ErrorResponse "Role cannot delete supply orders"
// @Failure 404 {object} ErrorResponse "Supply order not found"
// @Security BearerAuth
// @Router /supply-orders/{id} [delete]
func (h *SupplyOrderHandler) DeleteSupplyOrder(c *gin.Context) {
	actor, scope, ok := actorScope(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supply order ID"})
		return
	}

	order, err := h.orderService.GetSupplyOrderModel(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if d := h.guard.Decide(actor, scope, authz.ActionDelete, authz.ResourceSupplyOrder, supplyOrderRef(order)); !d.Allowed {
		respondDenied(c, d)
		return
	}

	if err := h.orderService.DeleteSupplyOrder(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
