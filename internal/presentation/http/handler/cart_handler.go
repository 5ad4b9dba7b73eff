package handler

import (
	"github.com/ayumu-dev/regi-api/internal/application/service"
	"github.com/ayumu-dev/regi-api/internal/presentation/http/dto/request"
	"github.com/ayumu-dev/regi-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartHandler handles cart HTTP requests for the active register session
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

type cartPayload struct {
	Cart    *service.CartView `json:"cart"`
	Warning string            `json:"warning,omitempty"`
}

// Get handles fetching the current cart
func (h *CartHandler) Get(c *gin.Context) {
	cart := h.cartService.Get(GetSessionID(c))
	response.OK(c, "Cart retrieved successfully", cartPayload{Cart: cart})
}

// AddLine handles adding one unit of a product to the cart
func (h *CartHandler) AddLine(c *gin.Context) {
	var req request.AddCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	cart, warning, err := h.cartService.AddLine(c.Request.Context(), GetSessionID(c), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart updated", cartPayload{Cart: cart, Warning: warning})
}

// ChangeQuantity handles adjusting a cart line's quantity by a delta
func (h *CartHandler) ChangeQuantity(c *gin.Context) {
	var req request.ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	cart, warning, err := h.cartService.ChangeQuantity(c.Request.Context(), GetSessionID(c), productID, req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart updated", cartPayload{Cart: cart, Warning: warning})
}

// RemoveLine handles removing a cart line
func (h *CartHandler) RemoveLine(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	cart := h.cartService.RemoveLine(GetSessionID(c), productID)
	response.OK(c, "Cart updated", cartPayload{Cart: cart})
}

// Clear handles emptying the cart
func (h *CartHandler) Clear(c *gin.Context) {
	h.cartService.Clear(GetSessionID(c))
	response.OK(c, "Cart cleared", cartPayload{Cart: h.cartService.Get(GetSessionID(c))})
}
