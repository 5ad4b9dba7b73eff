package service

import (
	"context"
	"strings"
	"time"

	"github.com/ayumu-dev/regi-api/internal/domain/entity"
	"github.com/ayumu-dev/regi-api/internal/domain/enum"
	"github.com/ayumu-dev/regi-api/internal/domain/repository"
	"github.com/ayumu-dev/regi-api/pkg/apperror"
	"github.com/ayumu-dev/regi-api/pkg/pagination"
	"github.com/google/uuid"
)

// HistoryQuery filters the transaction log. Search and range compose
// conjunctively.
type HistoryQuery struct {
	Search     string
	Range      enum.DateRange
	Pagination *pagination.PaginationParams
}

// HistoryService serves the immutable transaction log.
type HistoryService struct {
	txnRepo repository.TransactionRepository
	now     func() time.Time
}

// NewHistoryService creates a new history service
func NewHistoryService(txnRepo repository.TransactionRepository) *HistoryService {
	return &HistoryService{
		txnRepo: txnRepo,
		now:     time.Now,
	}
}

// ListTransactions returns transactions matching the query, newest first.
func (s *HistoryService) ListTransactions(ctx context.Context, query HistoryQuery) (*pagination.PaginatedResult[entity.Transaction], error) {
	if query.Range == "" {
		query.Range = enum.DateRangeAll
	}
	if !query.Range.Valid() {
		return nil, apperror.NewBadRequestError("Invalid date range")
	}
	if query.Pagination == nil {
		query.Pagination = &pagination.PaginationParams{}
	}
	query.Pagination.Validate()

	params := &repository.TransactionFilterParams{
		Pagination: query.Pagination,
		Search:     strings.TrimSpace(query.Search),
	}
	if start, end, ok := query.Range.Window(s.now()); ok {
		params.StartTime = &start
		params.EndTime = &end
	}

	txns, total, err := s.txnRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(query.Pagination.Page, query.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(txns, meta), nil
}

// GetTransaction fetches one transaction with its line items.
func (s *HistoryService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	txn, err := s.txnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return txn, nil
}
