package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ayumu-dev/regi-api/internal/domain/entity"
	"github.com/ayumu-dev/regi-api/internal/domain/enum"
	"github.com/ayumu-dev/regi-api/internal/domain/repository"
	"github.com/ayumu-dev/regi-api/pkg/apperror"
	"github.com/ayumu-dev/regi-api/pkg/utils"
	"github.com/google/uuid"
)

const recentTransactionLimit = 5

// CheckoutInput carries everything needed to turn a session's cart into a
// committed transaction.
type CheckoutInput struct {
	SessionID     string
	CashierName   string
	CustomerName  *string
	PaymentMethod enum.PaymentMethod
	CashAmount    *int64 // required for cash payments
}

// CheckoutService commits carts into immutable transactions. Stock decrements
// and the transaction insert happen in one database transaction; a failure on
// any line rolls back the whole checkout.
type CheckoutService struct {
	cartSvc     *CartService
	txnRepo     repository.TransactionRepository
	productRepo repository.ProductRepository
	stream      *ReportStream
	now         func() time.Time

	mu     sync.Mutex
	recent []entity.Transaction // newest first, capped
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	cartSvc *CartService,
	txnRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	stream *ReportStream,
) *CheckoutService {
	return &CheckoutService{
		cartSvc:     cartSvc,
		txnRepo:     txnRepo,
		productRepo: productRepo,
		stream:      stream,
		now:         time.Now,
	}
}

// Checkout validates the session's cart, persists the transaction with atomic
// stock decrements, clears the cart and returns the committed record.
func (s *CheckoutService) Checkout(ctx context.Context, input CheckoutInput) (*entity.Transaction, error) {
	cart := s.cartSvc.Get(input.SessionID)
	if len(cart.Lines) == 0 {
		return nil, apperror.ErrEmptyCart
	}

	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}
	if input.CashierName == "" {
		return nil, apperror.NewBadRequestError("Cashier name is required")
	}

	total := cart.Total

	var cashAmount, changeAmount *int64
	if input.PaymentMethod == enum.PaymentMethodCash {
		if input.CashAmount == nil {
			return nil, apperror.NewBadRequestError("Cash amount is required for cash payments")
		}
		if *input.CashAmount < total {
			return nil, apperror.ErrInsufficientPayment
		}
		cash := *input.CashAmount
		change := cash - total
		cashAmount = &cash
		changeAmount = &change
	}

	txn := &entity.Transaction{
		InvoiceNo:     utils.GenerateInvoiceNo("TXN"),
		CashierName:   input.CashierName,
		CustomerName:  input.CustomerName,
		PaymentMethod: input.PaymentMethod,
		Total:         total,
		CashAmount:    cashAmount,
		ChangeAmount:  changeAmount,
		Timestamp:     s.now().UTC(),
		Items:         toTransactionItems(cart.Lines),
	}

	decrements := make(map[uuid.UUID]int, len(cart.Lines))
	for _, l := range cart.Lines {
		decrements[l.ProductID] = l.Quantity
	}

	failedIDs, err := s.txnRepo.CreateWithStockDecrement(ctx, txn, decrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		return nil, apperror.NewConflictError(s.insufficientStockMessage(ctx, cart.Lines, failedIDs))
	}

	s.cartSvc.Clear(input.SessionID)
	s.pushRecent(*txn)
	s.stream.NotifyChange(ctx)

	return txn, nil
}

// Recent returns the most recent checkouts of this process, newest first.
func (s *CheckoutService) Recent() []entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Transaction, len(s.recent))
	copy(out, s.recent)
	return out
}

func (s *CheckoutService) pushRecent(txn entity.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent = append([]entity.Transaction{txn}, s.recent...)
	if len(s.recent) > recentTransactionLimit {
		s.recent = s.recent[:recentTransactionLimit]
	}
}

// insufficientStockMessage names the products that blocked the checkout,
// with the stock still on hand. Names come from a batch read so the message
// reflects the catalog, not the cart snapshot.
func (s *CheckoutService) insufficientStockMessage(ctx context.Context, lines []CartLine, failedIDs []uuid.UUID) string {
	remaining := make(map[uuid.UUID]int, len(failedIDs))
	liveName := make(map[uuid.UUID]string, len(failedIDs))
	if products, err := s.productRepo.GetByIDs(ctx, failedIDs); err == nil {
		for _, p := range products {
			remaining[p.ID] = p.Stock
			liveName[p.ID] = p.Name
		}
	}

	failed := make(map[uuid.UUID]bool, len(failedIDs))
	for _, id := range failedIDs {
		failed[id] = true
	}

	var parts []string
	for _, l := range lines {
		if !failed[l.ProductID] {
			continue
		}
		name := l.Name
		if n, ok := liveName[l.ProductID]; ok {
			name = n
		}
		if stock, ok := remaining[l.ProductID]; ok {
			parts = append(parts, fmt.Sprintf("%s (%d left)", name, stock))
		} else {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "Insufficient stock"
	}
	return fmt.Sprintf("Insufficient stock for: %s", strings.Join(parts, ", "))
}
