package entity

import (
	"time"

	"github.com/ayumu-dev/regi-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order represents an online order. Orders feed the monthly revenue and
// financial reports; their shipping fee is excluded from the product-cost
// estimate.
type Order struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OrderNo      string           `gorm:"size:100;unique;not null" json:"order_no"`
	CustomerName string           `gorm:"size:255;not null" json:"customer_name"`
	Status       enum.OrderStatus `gorm:"default:0" json:"status"`
	Total        int64            `gorm:"not null" json:"total"` // whole yen, includes shipping
	ShippingFee  int64            `gorm:"not null;default:0" json:"shipping_fee"`
	CreatedAt    time.Time        `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
