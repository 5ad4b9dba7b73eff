package request

// CheckoutRequest represents the payload for committing a cart
type CheckoutRequest struct {
	CustomerName  *string `json:"customer_name"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	CashAmount    *int64  `json:"cash_amount"`
}
