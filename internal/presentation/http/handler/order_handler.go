package handler

import (
	"github.com/ayumu-dev/regi-api/internal/application/service"
	"github.com/ayumu-dev/regi-api/internal/domain/enum"
	"github.com/ayumu-dev/regi-api/internal/domain/repository"
	"github.com/ayumu-dev/regi-api/internal/presentation/http/dto/request"
	"github.com/ayumu-dev/regi-api/internal/presentation/http/dto/response"
	"github.com/ayumu-dev/regi-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles online order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles recording a new online order
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), service.CreateOrderInput{
		CustomerName: req.CustomerName,
		Total:        req.Total,
		ShippingFee:  req.ShippingFee,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get handles fetching a single order
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// UpdateStatus handles moving an order through its lifecycle
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	status, ok := parseOrderStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Invalid order status")
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", order)
}

// List handles listing orders with search and status filters
func (h *OrderHandler) List(c *gin.Context) {
	var filter request.ListOrdersRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: filter.Search,
	}

	if filter.Status != "" {
		status, ok := parseOrderStatus(filter.Status)
		if !ok {
			response.BadRequest(c, "Invalid order status")
			return
		}
		params.Status = &status
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

func parseOrderStatus(s string) (enum.OrderStatus, bool) {
	switch s {
	case "Pending", "pending":
		return enum.OrderStatusPending, true
	case "Paid", "paid":
		return enum.OrderStatusPaid, true
	case "Shipped", "shipped":
		return enum.OrderStatusShipped, true
	case "Cancelled", "cancelled":
		return enum.OrderStatusCancelled, true
	}
	return enum.OrderStatusPending, false
}
