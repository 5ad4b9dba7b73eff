package service

import (
	"context"
	"testing"
	"time"

	"github.com/ayumu-dev/regi-api/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTxnWithItems(t *testing.T, env *testEnv, ts time.Time, items ...entity.TransactionItem) {
	t.Helper()

	var total int64
	for i := range items {
		items[i].ProductID = uuid.New()
		total += items[i].Total
	}
	txn := &entity.Transaction{
		InvoiceNo:   "TXN-" + uuid.NewString()[:8],
		CashierName: "Tanaka",
		Total:       total,
		Timestamp:   ts,
		Items:       items,
	}
	require.NoError(t, env.DB.Create(txn).Error)
}

func TestDashboardService_GetStats(t *testing.T) {
	env := newTestEnv(t)
	svc := NewDashboardService(env.ProductRepo, env.TxnRepo, env.Analytics)
	now := time.Date(2026, time.September, 10, 14, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	env.seedProduct(t, "Onigiri", 150, 20)
	lowStock := env.seedProduct(t, "Bento", 580, 1)
	lowStock.StockAlert = 5
	require.NoError(t, env.DB.Save(lowStock).Error)

	seedTxnWithItems(t, env, now.Add(-time.Hour),
		entity.TransactionItem{Name: "Onigiri", Category: "Food", Price: 150, Quantity: 2, Total: 300},
	)
	seedTxnWithItems(t, env, now.AddDate(0, 0, -3),
		entity.TransactionItem{Name: "Green Tea", Category: "Drink", Price: 100, Quantity: 1, Total: 100},
	)
	// Before this month
	seedTxnWithItems(t, env, now.AddDate(0, -2, 0),
		entity.TransactionItem{Name: "Bento", Category: "Food", Price: 580, Quantity: 1, Total: 580},
	)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.ProductCount)
	assert.Equal(t, int64(1), stats.LowStockCount)
	assert.Equal(t, int64(1), stats.TodayTxnCount)
	assert.Equal(t, int64(300), stats.TodayRevenue)
	assert.Equal(t, int64(400), stats.MonthRevenue)

	// Category shares are computed over all transaction items
	require.Len(t, stats.SalesByCategory, 2)
	var foodShare float64
	for _, cs := range stats.SalesByCategory {
		if cs.Category == "Food" {
			foodShare = cs.Percentage
			assert.Equal(t, int64(880), cs.TotalSales)
		}
	}
	assert.InDelta(t, 89.8, foodShare, 0.1)
}
