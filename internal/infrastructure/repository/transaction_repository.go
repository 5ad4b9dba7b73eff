package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ayumu-dev/regi-api/internal/domain/entity"
	domainRepo "github.com/ayumu-dev/regi-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new POS transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

// CreateWithStockDecrement writes the transaction, its items and the stock
// decrements atomically. Each decrement runs as
// UPDATE products SET stock = stock - q WHERE id = ? AND stock >= q,
// so a concurrent checkout can never overdraw stock. Any insufficient product
// rolls the whole checkout back and its ID is reported to the caller.
func (r *transactionRepository) CreateWithStockDecrement(ctx context.Context, txn *entity.Transaction, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	var failedIDs []uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, qty := range decrements {
			result := tx.Model(&entity.Product{}).
				Where("id = ? AND stock >= ?", id, qty).
				Update("stock", gorm.Expr("stock - ?", qty))

			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				failedIDs = append(failedIDs, id)
			}
		}

		if len(failedIDs) > 0 {
			return gorm.ErrInvalidTransaction
		}

		return tx.Create(txn).Error
	})

	// rollback caused by insufficient stock is not a transport error
	if errors.Is(err, gorm.ErrInvalidTransaction) && len(failedIDs) > 0 {
		return failedIDs, nil
	}

	return failedIDs, err
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txn entity.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&txn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &txn, err
}

func (r *transactionRepository) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Transaction, error) {
	var txn entity.Transaction
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&txn, "invoice_no = ?", invoiceNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &txn, err
}

func (r *transactionRepository) List(ctx context.Context, params *domainRepo.TransactionFilterParams) ([]entity.Transaction, int64, error) {
	var txns []entity.Transaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Transaction{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where(
			"LOWER(customer_name) LIKE LOWER(?) OR LOWER(invoice_no) LIKE LOWER(?) OR LOWER(cashier_name) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}

	if params.StartTime != nil {
		query = query.Where("timestamp >= ?", *params.StartTime)
	}

	if params.EndTime != nil {
		query = query.Where("timestamp < ?", *params.EndTime)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("timestamp DESC").
		Find(&txns).Error

	return txns, total, err
}

func (r *transactionRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Transaction{}).
		Where("timestamp >= ?", since).
		Count(&total).Error
	return total, err
}
