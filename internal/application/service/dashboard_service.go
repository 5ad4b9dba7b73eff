package service

import (
	"context"
	"time"

	"github.com/ayumu-dev/regi-api/internal/domain/repository"
)

// DashboardStats is the aggregate snapshot shown on the back-office landing
// page and pushed over the live report stream.
type DashboardStats struct {
	ProductCount    int64                            `json:"product_count"`
	LowStockCount   int64                            `json:"low_stock_count"`
	TodayTxnCount   int64                            `json:"today_transaction_count"`
	TodayRevenue    int64                            `json:"today_revenue"`
	MonthRevenue    int64                            `json:"month_revenue"`
	SalesByCategory []repository.CategorySalesResult `json:"sales_by_category"`
}

// DashboardService assembles cross-repository aggregates for the dashboard.
type DashboardService struct {
	productRepo repository.ProductRepository
	txnRepo     repository.TransactionRepository
	analytics   repository.AnalyticsRepository
	now         func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	productRepo repository.ProductRepository,
	txnRepo repository.TransactionRepository,
	analytics repository.AnalyticsRepository,
) *DashboardService {
	return &DashboardService{
		productRepo: productRepo,
		txnRepo:     txnRepo,
		analytics:   analytics,
		now:         time.Now,
	}
}

// GetStats computes the current dashboard snapshot.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	productCount, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.CountLowStock(ctx)
	if err != nil {
		return nil, err
	}

	todayTxns, err := s.txnRepo.CountSince(ctx, startOfDay)
	if err != nil {
		return nil, err
	}

	todayRevenue, err := s.analytics.GetRevenueSince(ctx, startOfDay)
	if err != nil {
		return nil, err
	}

	monthRevenue, err := s.analytics.GetRevenueSince(ctx, startOfMonth)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.analytics.GetSalesByCategory(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		ProductCount:    productCount,
		LowStockCount:   lowStock,
		TodayTxnCount:   todayTxns,
		TodayRevenue:    todayRevenue,
		MonthRevenue:    monthRevenue,
		SalesByCategory: byCategory,
	}, nil
}
