package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a sellable item in the catalog
type Product struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Code        string         `gorm:"size:100;unique;not null" json:"code"`
	Category    string         `gorm:"size:100;index" json:"category"`
	Price       int64          `gorm:"not null;default:0" json:"price"` // whole yen
	Stock       int            `gorm:"not null;default:0" json:"stock"`
	StockAlert  int            `gorm:"default:0" json:"stock_alert"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	ImageURL    *string        `gorm:"size:255" json:"image_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// InStock reports whether the product has any sellable stock left.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
