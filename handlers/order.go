package handlers

import (
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/pkg/resp"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{Orders: orders}
}

// PlaceOrder creates a new order (customer only)
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	customer := middleware.CurrentUser(c)

	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Orders.Create(customer, req)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, gin.H{"order": order})
}

// ListOrders returns the caller's orders scoped by role, with an optional
// ?status= filter
func (h *OrderHandler) ListOrders(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var status *models.OrderStatus
	if raw := c.Query("status"); raw != "" {
		s := models.OrderStatus(raw)
		if !models.ValidStatus(s) {
			resp.BadRequest(c, "Unknown status "+raw)
			return
		}
		status = &s
	}

	orders, err := h.Orders.List(user, status)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(orders), "orders": orders})
}

// GetOrder returns one order if the caller is related to it
func (h *OrderHandler) GetOrder(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.Orders.Get(user, id)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}

type setStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// SetOrderStatus moves an order through its lifecycle (owner or driver)
func (h *OrderHandler) SetOrderStatus(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Orders.SetStatus(user, id, req.Status)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}

// TakeOrder assigns the calling driver to an unassigned order
func (h *OrderHandler) TakeOrder(c *gin.Context) {
	driver := middleware.CurrentUser(c)
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.Orders.Take(driver, id)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}
