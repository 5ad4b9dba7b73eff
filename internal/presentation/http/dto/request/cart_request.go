package request

// AddCartLineRequest represents the payload for adding a product to the cart
type AddCartLineRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
}

// ChangeQuantityRequest represents the payload for adjusting a cart line
type ChangeQuantityRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Delta     int    `json:"delta" binding:"required"`
}

// RemoveCartLineRequest represents the payload for removing a cart line
type RemoveCartLineRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
}
