package repository

import (
	"context"
	"time"

	"github.com/ayumu-dev/regi-api/internal/domain/enum"
	domainRepo "github.com/ayumu-dev/regi-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetMonthlyOrderStats(ctx context.Context, start, end time.Time) (*domainRepo.MonthlyOrderStats, error) {
	var stats domainRepo.MonthlyOrderStats

	// cancelled orders carry no revenue
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(id) as order_count,
			COALESCE(SUM(total), 0) as revenue_sum,
			COALESCE(SUM(shipping_fee), 0) as shipping_sum
		FROM orders
		WHERE status <> ?
		AND created_at >= ? AND created_at < ?
	`, enum.OrderStatusCancelled, start, end).Scan(&stats).Error

	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *analyticsRepository) GetSalesByCategory(ctx context.Context) ([]domainRepo.CategorySalesResult, error) {
	var results []domainRepo.CategorySalesResult

	var totalSales int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0) FROM pos_transaction_items
	`).Scan(&totalSales).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT
			CASE WHEN category = '' THEN 'Uncategorized' ELSE category END as category,
			COALESCE(SUM(total), 0) as total_sales,
			COALESCE(SUM(quantity), 0) as item_count
		FROM pos_transaction_items
		GROUP BY 1
		ORDER BY total_sales DESC
	`).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	for i := range results {
		if totalSales > 0 {
			results[i].Percentage = float64(results[i].TotalSales) / float64(totalSales) * 100
		}
	}

	return results, nil
}

func (r *analyticsRepository) GetRevenueSince(ctx context.Context, since time.Time) (int64, error) {
	var revenue int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM pos_transactions
		WHERE timestamp >= ?
	`, since).Scan(&revenue).Error

	return revenue, err
}
