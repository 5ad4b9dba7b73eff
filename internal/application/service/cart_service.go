package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/ayumu-dev/regi-api/internal/domain/entity"
	"github.com/ayumu-dev/regi-api/internal/domain/repository"
	"github.com/ayumu-dev/regi-api/pkg/apperror"
	"github.com/ayumu-dev/regi-api/pkg/currency"
	"github.com/google/uuid"
)

// CartLine is a product-and-quantity entry within a checkout session's cart.
// Name, category and price are snapshots of the product at add time.
type CartLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     int64     `json:"price"` // whole yen
	Quantity  int       `json:"quantity"`
}

// CartView is the snapshot returned to callers. Total is recomputed from the
// lines on every read, never cached.
type CartView struct {
	Lines          []CartLine `json:"lines"`
	Total          int64      `json:"total"`
	TotalFormatted string     `json:"total_formatted"`
}

type cart struct {
	lines []CartLine
}

func (c *cart) total() int64 {
	var sum int64
	for _, l := range c.lines {
		sum += l.Price * int64(l.Quantity)
	}
	return sum
}

func (c *cart) view() *CartView {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	total := c.total()
	return &CartView{
		Lines:          lines,
		Total:          total,
		TotalFormatted: currency.FormatYen(total),
	}
}

// CartService holds the in-memory carts of active checkout sessions, keyed by
// session ID. Carts are ephemeral; they never touch the database.
//
// Stock ceilings are enforced against the product's current stock, re-read on
// every mutation. Violations do not fail the request: the cart is returned
// unchanged together with a user-visible warning.
type CartService struct {
	mu          sync.Mutex
	carts       map[string]*cart
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(productRepo repository.ProductRepository) *CartService {
	return &CartService{
		carts:       make(map[string]*cart),
		productRepo: productRepo,
	}
}

func (s *CartService) session(sessionID string) *cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = &cart{}
		s.carts[sessionID] = c
	}
	return c
}

// Get returns the current cart snapshot for a session.
func (s *CartService) Get(sessionID string) *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(sessionID).view()
}

// AddLine adds one unit of a product to the cart. An out-of-stock product or
// a quantity already at the stock ceiling leaves the cart unchanged and
// returns a warning.
func (s *CartService) AddLine(ctx context.Context, sessionID string, productID uuid.UUID) (*CartView, string, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, "", err
	}
	if product == nil {
		return nil, "", apperror.NewNotFoundError("Product")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.session(sessionID)

	if !product.InStock() {
		return c.view(), fmt.Sprintf("%s is out of stock", product.Name), nil
	}

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			if c.lines[i].Quantity+1 > product.Stock {
				return c.view(), fmt.Sprintf("Only %d of %s in stock", product.Stock, product.Name), nil
			}
			c.lines[i].Quantity++
			return c.view(), "", nil
		}
	}

	c.lines = append(c.lines, CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price,
		Quantity:  1,
	})
	return c.view(), "", nil
}

// ChangeQuantity adjusts a line's quantity by delta. Results outside
// [1, product.stock] leave the quantity unchanged and return a warning.
func (s *CartService) ChangeQuantity(ctx context.Context, sessionID string, productID uuid.UUID, delta int) (*CartView, string, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, "", err
	}
	if product == nil {
		return nil, "", apperror.NewNotFoundError("Product")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.session(sessionID)

	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}
		next := c.lines[i].Quantity + delta
		if next < 1 {
			return c.view(), "Quantity cannot go below 1; remove the line instead", nil
		}
		if next > product.Stock {
			return c.view(), fmt.Sprintf("Only %d of %s in stock", product.Stock, product.Name), nil
		}
		c.lines[i].Quantity = next
		return c.view(), "", nil
	}

	return nil, "", apperror.NewNotFoundError("Cart line")
}

// RemoveLine removes a line unconditionally.
func (s *CartService) RemoveLine(sessionID string, productID uuid.UUID) *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.session(sessionID)

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
	return c.view()
}

// Clear empties a session's cart.
func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// toTransactionItems converts cart lines to transaction line items.
func toTransactionItems(lines []CartLine) []entity.TransactionItem {
	items := make([]entity.TransactionItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, entity.TransactionItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Category:  l.Category,
			Price:     l.Price,
			Quantity:  l.Quantity,
			Total:     l.Price * int64(l.Quantity),
		})
	}
	return items
}
