package service

import (
	"context"
	"strings"

	"github.com/ayumu-dev/regi-api/internal/domain/entity"
	"github.com/ayumu-dev/regi-api/internal/domain/enum"
	"github.com/ayumu-dev/regi-api/internal/domain/repository"
	"github.com/ayumu-dev/regi-api/pkg/apperror"
	"github.com/ayumu-dev/regi-api/pkg/pagination"
	"github.com/ayumu-dev/regi-api/pkg/utils"
	"github.com/google/uuid"
)

// CreateOrderInput holds order creation data
type CreateOrderInput struct {
	CustomerName string
	Total        int64
	ShippingFee  int64
}

// OrderService manages the online order ledger that feeds the monthly
// reports.
type OrderService struct {
	orderRepo repository.OrderRepository
	stream    *ReportStream
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, stream *ReportStream) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		stream:    stream,
	}
}

// CreateOrder records a new pending order.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}
	if input.ShippingFee < 0 {
		return nil, apperror.NewBadRequestError("Shipping fee cannot be negative")
	}
	if input.Total < input.ShippingFee {
		return nil, apperror.NewBadRequestError("Total cannot be less than the shipping fee")
	}

	order := &entity.Order{
		OrderNo:      utils.GenerateInvoiceNo("ORD"),
		CustomerName: strings.TrimSpace(input.CustomerName),
		Status:       enum.OrderStatusPending,
		Total:        input.Total,
		ShippingFee:  input.ShippingFee,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.stream.NotifyChange(ctx)
	return order, nil
}

// GetOrder fetches one order by ID.
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// UpdateOrderStatus moves an order through its lifecycle. Cancelled orders
// are terminal.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, apperror.NewBadRequestError("Invalid order status")
	}

	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == enum.OrderStatusCancelled {
		return nil, apperror.NewConflictError("Cancelled orders cannot change status")
	}

	order.Status = status
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.stream.NotifyChange(ctx)
	return order, nil
}

// ListOrders returns a filtered, paginated order page, newest first.
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	if params.Pagination == nil {
		params.Pagination = &pagination.PaginationParams{}
	}
	params.Pagination.Validate()

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, meta), nil
}
