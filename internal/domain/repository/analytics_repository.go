package repository

import (
	"context"
	"time"
)

// MonthlyOrderStats is the aggregate over orders in one calendar month
type MonthlyOrderStats struct {
	OrderCount  int64 `json:"order_count"`
	RevenueSum  int64 `json:"revenue_sum"`  // whole yen
	ShippingSum int64 `json:"shipping_sum"` // whole yen
}

// CategorySalesResult represents POS sales grouped by product category
type CategorySalesResult struct {
	Category   string  `json:"category"`
	TotalSales int64   `json:"total_sales"` // whole yen
	ItemCount  int64   `json:"item_count"`
	Percentage float64 `json:"percentage"`
}

// AnalyticsRepository defines aggregate queries used by the reporting layer
type AnalyticsRepository interface {
	// GetMonthlyOrderStats aggregates orders with created_at in [start, end).
	GetMonthlyOrderStats(ctx context.Context, start, end time.Time) (*MonthlyOrderStats, error)
	// GetSalesByCategory aggregates POS transaction items by category snapshot.
	GetSalesByCategory(ctx context.Context) ([]CategorySalesResult, error)
	// GetRevenueSince sums POS transaction totals with timestamp >= since.
	GetRevenueSince(ctx context.Context, since time.Time) (int64, error)
}
