package handlers

import (
	"food-ordering-api/middleware"
	"food-ordering-api/pkg/resp"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	Payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Payments: payments}
}

// CreatePayment records a promotion payment for a restaurant the caller owns
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	owner := middleware.CurrentUser(c)

	var req services.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	payment, err := h.Payments.Create(owner, req)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, gin.H{"payment": payment})
}

// ListPayments returns the caller's own payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	user := middleware.CurrentUser(c)

	payments, err := h.Payments.List(user)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, gin.H{"count": len(payments), "payments": payments})
}
