package repository

import (
	"context"
	"time"

	"github.com/ayumu-dev/regi-api/internal/domain/entity"
	"github.com/ayumu-dev/regi-api/pkg/pagination"
	"github.com/google/uuid"
)

// TransactionFilterParams holds filter parameters for transaction history.
// Search and the time window apply conjunctively.
type TransactionFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string // matched against customer name, invoice no and cashier name
	StartTime  *time.Time
	EndTime    *time.Time // exclusive
}

// TransactionRepository defines the interface for POS transaction data access
type TransactionRepository interface {
	// CreateWithStockDecrement persists the transaction with its items and
	// decrements product stock, all inside a single database transaction.
	// Each decrement is conditional on sufficient stock; IDs of products that
	// could not be decremented are returned and nothing is written.
	CreateWithStockDecrement(ctx context.Context, txn *entity.Transaction, decrements map[uuid.UUID]int) ([]uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Transaction, error)
	List(ctx context.Context, params *TransactionFilterParams) ([]entity.Transaction, int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}
