package handler

import (
	"github.com/ayumu-dev/regi-api/internal/application/service"
	"github.com/ayumu-dev/regi-api/internal/domain/enum"
	"github.com/ayumu-dev/regi-api/internal/presentation/http/dto/request"
	"github.com/ayumu-dev/regi-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles checkout HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout handles committing the current cart into a transaction
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	method, ok := parsePaymentMethod(req.PaymentMethod)
	if !ok {
		response.BadRequest(c, "Invalid payment method")
		return
	}

	txn, err := h.checkoutService.Checkout(c.Request.Context(), service.CheckoutInput{
		SessionID:     GetSessionID(c),
		CashierName:   GetUserName(c),
		CustomerName:  req.CustomerName,
		PaymentMethod: method,
		CashAmount:    req.CashAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Checkout completed successfully", txn)
}

// Recent handles listing the register's most recent checkouts
func (h *CheckoutHandler) Recent(c *gin.Context) {
	response.OK(c, "Recent transactions retrieved successfully", h.checkoutService.Recent())
}

func parsePaymentMethod(s string) (enum.PaymentMethod, bool) {
	switch s {
	case "Cash", "cash":
		return enum.PaymentMethodCash, true
	case "Card", "card":
		return enum.PaymentMethodCard, true
	case "QR", "qr":
		return enum.PaymentMethodQR, true
	}
	return enum.PaymentMethodCash, false
}
