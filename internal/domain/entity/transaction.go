package entity

import (
	"time"

	"github.com/ayumu-dev/regi-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction represents a completed point-of-sale checkout.
// Records are immutable once written.
type Transaction struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo     string             `gorm:"size:100;unique;not null" json:"invoice_no"`
	CashierName   string             `gorm:"size:255;not null;index" json:"cashier_name"`
	CustomerName  *string            `gorm:"size:255;index" json:"customer_name,omitempty"`
	PaymentMethod enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	Total         int64              `gorm:"not null" json:"total"` // whole yen
	CashAmount    *int64             `json:"cash_amount,omitempty"`
	ChangeAmount  *int64             `json:"change_amount,omitempty"`
	Timestamp     time.Time          `gorm:"not null;index" json:"timestamp"`
	CreatedAt     time.Time          `json:"created_at"`

	Items []TransactionItem `gorm:"foreignKey:TransactionID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "pos_transactions"
}

// TransactionItem is a line item within a transaction. Product name, category
// and price are snapshotted at checkout time so later catalog edits do not
// rewrite history.
type TransactionItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index" json:"transaction_id"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Category      string    `gorm:"size:100" json:"category"`
	Price         int64     `gorm:"not null" json:"price"` // whole yen, unit price
	Quantity      int       `gorm:"not null" json:"quantity"`
	Total         int64     `gorm:"not null" json:"total"`
	CreatedAt     time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new transaction item
func (ti *TransactionItem) BeforeCreate(tx *gorm.DB) error {
	if ti.ID == uuid.Nil {
		ti.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TransactionItem model
func (TransactionItem) TableName() string {
	return "pos_transaction_items"
}
