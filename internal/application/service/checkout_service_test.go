package service

import (
	"context"
	"testing"

	"github.com/ayumu-dev/regi-api/internal/domain/entity"
	"github.com/ayumu-dev/regi-api/internal/domain/enum"
	"github.com/ayumu-dev/regi-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCheckoutService_CashCheckout(t *testing.T) {
	env := newTestEnv(t)
	cartSvc := NewCartService(env.ProductRepo)
	svc := NewCheckoutService(cartSvc, env.TxnRepo, env.ProductRepo, nil)
	ctx := context.Background()

	bento := env.seedProduct(t, "Bento", 1000, 10)

	_, _, err := cartSvc.AddLine(ctx, "till-1", bento.ID)
	require.NoError(t, err)
	_, _, err = cartSvc.AddLine(ctx, "till-1", bento.ID)
	require.NoError(t, err)

	txn, err := svc.Checkout(ctx, CheckoutInput{
		SessionID:     "till-1",
		CashierName:   "Tanaka",
		PaymentMethod: enum.PaymentMethodCash,
		CashAmount:    int64Ptr(5000),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2000), txn.Total)
	require.NotNil(t, txn.ChangeAmount)
	assert.Equal(t, int64(3000), *txn.ChangeAmount)
	assert.NotEmpty(t, txn.InvoiceNo)
	require.Len(t, txn.Items, 1)
	assert.Equal(t, 2, txn.Items[0].Quantity)

	// Stock was decremented and the cart cleared
	product, err := env.ProductRepo.GetByID(ctx, bento.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, product.Stock)
	assert.Empty(t, cartSvc.Get("till-1").Lines)

	// The transaction was persisted with its items
	stored, err := env.TxnRepo.GetByID(ctx, txn.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Len(t, stored.Items, 1)
}

func TestCheckoutService_EmptyCart(t *testing.T) {
	env := newTestEnv(t)
	cartSvc := NewCartService(env.ProductRepo)
	svc := NewCheckoutService(cartSvc, env.TxnRepo, env.ProductRepo, nil)

	_, err := svc.Checkout(context.Background(), CheckoutInput{
		SessionID:     "till-1",
		CashierName:   "Tanaka",
		PaymentMethod: enum.PaymentMethodCash,
		CashAmount:    int64Ptr(1000),
	})
	require.ErrorIs(t, err, apperror.ErrEmptyCart)

	var count int64
	env.DB.Model(&entity.Transaction{}).Count(&count)
	assert.Zero(t, count)
}

func TestCheckoutService_InsufficientCash(t *testing.T) {
	env := newTestEnv(t)
	cartSvc := NewCartService(env.ProductRepo)
	svc := NewCheckoutService(cartSvc, env.TxnRepo, env.ProductRepo, nil)
	ctx := context.Background()

	bento := env.seedProduct(t, "Bento", 1000, 10)
	_, _, err := cartSvc.AddLine(ctx, "till-1", bento.ID)
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, CheckoutInput{
		SessionID:     "till-1",
		CashierName:   "Tanaka",
		PaymentMethod: enum.PaymentMethodCash,
		CashAmount:    int64Ptr(500),
	})
	require.ErrorIs(t, err, apperror.ErrInsufficientPayment)

	// Nothing was written and the cart survives for a retry
	product, err := env.ProductRepo.GetByID(ctx, bento.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, product.Stock)
	assert.Len(t, cartSvc.Get("till-1").Lines, 1)
}

func TestCheckoutService_CashAmountRequired(t *testing.T) {
	env := newTestEnv(t)
	cartSvc := NewCartService(env.ProductRepo)
	svc := NewCheckoutService(cartSvc, env.TxnRepo, env.ProductRepo, nil)
	ctx := context.Background()

	bento := env.seedProduct(t, "Bento", 1000, 10)
	_, _, err := cartSvc.AddLine(ctx, "till-1", bento.ID)
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, CheckoutInput{
		SessionID:     "till-1",
		CashierName:   "Tanaka",
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.Error(t, err)
}

func TestCheckoutService_CardNeedsNoCash(t *testing.T) {
	env := newTestEnv(t)
	cartSvc := NewCartService(env.ProductRepo)
	svc := NewCheckoutService(cartSvc, env.TxnRepo, env.ProductRepo, nil)
	ctx := context.Background()

	bento := env.seedProduct(t, "Bento", 1000, 10)
	_, _, err := cartSvc.AddLine(ctx, "till-1", bento.ID)
	require.NoError(t, err)

	txn, err := svc.Checkout(ctx, CheckoutInput{
		SessionID:     "till-1",
		CashierName:   "Tanaka",
		PaymentMethod: enum.PaymentMethodCard,
	})
	require.NoError(t, err)
	assert.Nil(t, txn.CashAmount)
	assert.Nil(t, txn.ChangeAmount)
}

func TestCheckoutService_InsufficientStockRollsBack(t *testing.T) {
	env := newTestEnv(t)
	cartSvc := NewCartService(env.ProductRepo)
	svc := NewCheckoutService(cartSvc, env.TxnRepo, env.ProductRepo, nil)
	ctx := context.Background()

	bento := env.seedProduct(t, "Bento", 1000, 2)
	tea := env.seedProduct(t, "Green Tea", 120, 5)

	_, _, err := cartSvc.AddLine(ctx, "till-1", bento.ID)
	require.NoError(t, err)
	_, _, err = cartSvc.AddLine(ctx, "till-1", bento.ID)
	require.NoError(t, err)
	_, _, err = cartSvc.AddLine(ctx, "till-1", tea.ID)
	require.NoError(t, err)

	// Another register sells out the bento behind this cart's back
	require.NoError(t, env.DB.Model(&entity.Product{}).
		Where("id = ?", bento.ID).
		Update("stock", 1).Error)

	_, err = svc.Checkout(ctx, CheckoutInput{
		SessionID:     "till-1",
		CashierName:   "Tanaka",
		PaymentMethod: enum.PaymentMethodCash,
		CashAmount:    int64Ptr(5000),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bento (1 left)")
	assert.NotContains(t, err.Error(), "Green Tea")

	// The whole checkout rolled back: no transaction, no partial decrement
	var count int64
	env.DB.Model(&entity.Transaction{}).Count(&count)
	assert.Zero(t, count)

	teaAfter, err := env.ProductRepo.GetByID(ctx, tea.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, teaAfter.Stock)

	bentoAfter, err := env.ProductRepo.GetByID(ctx, bento.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, bentoAfter.Stock)
}

func TestCheckoutService_StockConflictReportsCatalogState(t *testing.T) {
	env := newTestEnv(t)
	cartSvc := NewCartService(env.ProductRepo)
	svc := NewCheckoutService(cartSvc, env.TxnRepo, env.ProductRepo, nil)
	ctx := context.Background()

	bento := env.seedProduct(t, "Bento", 1000, 3)
	_, _, err := cartSvc.AddLine(ctx, "till-1", bento.ID)
	require.NoError(t, err)

	// Renamed and sold out after the line was added; the conflict message
	// reads the catalog, not the cart's snapshot
	require.NoError(t, env.DB.Model(&entity.Product{}).
		Where("id = ?", bento.ID).
		Updates(map[string]interface{}{"name": "Makunouchi Bento", "stock": 0}).Error)

	_, err = svc.Checkout(ctx, CheckoutInput{
		SessionID:     "till-1",
		CashierName:   "Tanaka",
		PaymentMethod: enum.PaymentMethodCard,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Makunouchi Bento (0 left)")
}

func TestCheckoutService_RecentIsCapped(t *testing.T) {
	env := newTestEnv(t)
	cartSvc := NewCartService(env.ProductRepo)
	svc := NewCheckoutService(cartSvc, env.TxnRepo, env.ProductRepo, nil)
	ctx := context.Background()

	tea := env.seedProduct(t, "Green Tea", 120, 100)

	for i := 0; i < 7; i++ {
		_, _, err := cartSvc.AddLine(ctx, "till-1", tea.ID)
		require.NoError(t, err)

		_, err = svc.Checkout(ctx, CheckoutInput{
			SessionID:     "till-1",
			CashierName:   "Tanaka",
			PaymentMethod: enum.PaymentMethodCard,
		})
		require.NoError(t, err)
	}

	recent := svc.Recent()
	require.Len(t, recent, 5)

	// Newest first
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i-1].Timestamp.Before(recent[i].Timestamp))
	}
}
