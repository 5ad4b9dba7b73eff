package service

import (
	"context"
	"testing"
	"time"

	"github.com/ayumu-dev/regi-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportStream_DeliversSnapshotOnCheckout(t *testing.T) {
	env := newTestEnv(t)
	cartSvc := NewCartService(env.ProductRepo)
	dashboard := NewDashboardService(env.ProductRepo, env.TxnRepo, env.Analytics)
	stream := NewReportStream(dashboard)
	svc := NewCheckoutService(cartSvc, env.TxnRepo, env.ProductRepo, stream)
	ctx := context.Background()

	tea := env.seedProduct(t, "Green Tea", 120, 10)

	ch, cancel := stream.Subscribe()
	defer cancel()

	_, _, err := cartSvc.AddLine(ctx, "till-1", tea.ID)
	require.NoError(t, err)
	_, err = svc.Checkout(ctx, CheckoutInput{
		SessionID:     "till-1",
		CashierName:   "Tanaka",
		PaymentMethod: enum.PaymentMethodCard,
	})
	require.NoError(t, err)

	select {
	case stats := <-ch:
		assert.Equal(t, int64(1), stats.TodayTxnCount)
		assert.Equal(t, int64(120), stats.TodayRevenue)
	case <-time.After(time.Second):
		t.Fatal("expected a dashboard snapshot after checkout")
	}
}

func TestReportStream_SlowSubscriberGetsLatestOnly(t *testing.T) {
	env := newTestEnv(t)
	dashboard := NewDashboardService(env.ProductRepo, env.TxnRepo, env.Analytics)
	stream := NewReportStream(dashboard)
	ctx := context.Background()

	ch, cancel := stream.Subscribe()
	defer cancel()

	// Two publishes without a read in between, the first is replaced
	stream.NotifyChange(ctx)
	env.seedProduct(t, "Onigiri", 150, 10)
	stream.NotifyChange(ctx)

	stats := <-ch
	assert.Equal(t, int64(1), stats.ProductCount)

	select {
	case <-ch:
		t.Fatal("stale snapshot should have been discarded")
	default:
	}
}

func TestReportStream_CancelClosesChannel(t *testing.T) {
	env := newTestEnv(t)
	dashboard := NewDashboardService(env.ProductRepo, env.TxnRepo, env.Analytics)
	stream := NewReportStream(dashboard)

	ch, cancel := stream.Subscribe()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)

	// Publishing after cancel must not panic
	stream.NotifyChange(context.Background())
}
