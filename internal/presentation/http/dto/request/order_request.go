package request

// CreateOrderRequest represents the payload for recording an online order
type CreateOrderRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Total        int64  `json:"total" binding:"min=0"`
	ShippingFee  int64  `json:"shipping_fee" binding:"min=0"`
}

// UpdateOrderStatusRequest represents the payload for moving an order through
// its lifecycle
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListOrdersRequest represents query parameters for the order listing
type ListOrdersRequest struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Search  string `form:"search"`
	Status  string `form:"status"`
}
