package service

import (
	"context"
	"testing"
	"time"

	"github.com/ayumu-dev/regi-api/internal/domain/entity"
	"github.com/ayumu-dev/regi-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTransaction(t *testing.T, env *testEnv, customer string, ts time.Time) *entity.Transaction {
	t.Helper()

	txn := &entity.Transaction{
		InvoiceNo:   "TXN-" + uuid.NewString()[:8],
		CashierName: "Tanaka",
		Total:       1000,
		Timestamp:   ts,
	}
	if customer != "" {
		txn.CustomerName = &customer
	}
	require.NoError(t, env.DB.Create(txn).Error)
	return txn
}

func TestHistoryService_ListByRange(t *testing.T) {
	env := newTestEnv(t)
	svc := NewHistoryService(env.TxnRepo)
	now := time.Date(2026, time.September, 1, 14, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	seedTransaction(t, env, "Sato", now.Add(-time.Hour))
	seedTransaction(t, env, "Suzuki", now.AddDate(0, 0, -1))
	seedTransaction(t, env, "Watanabe", now.AddDate(0, 0, -20))

	cases := []struct {
		r    enum.DateRange
		want int
	}{
		{enum.DateRangeAll, 3},
		{enum.DateRangeToday, 1},
		{enum.DateRangeYesterday, 1},
		{enum.DateRangeWeek, 2},
		{enum.DateRangeMonth, 3},
	}
	for _, tc := range cases {
		result, err := svc.ListTransactions(ctx, HistoryQuery{Range: tc.r})
		require.NoError(t, err, string(tc.r))
		assert.Len(t, result.Items, tc.want, string(tc.r))
	}
}

func TestHistoryService_SearchComposesWithRange(t *testing.T) {
	env := newTestEnv(t)
	svc := NewHistoryService(env.TxnRepo)
	now := time.Date(2026, time.September, 1, 14, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	seedTransaction(t, env, "Sato", now.Add(-time.Hour))
	seedTransaction(t, env, "Sato", now.AddDate(0, 0, -20))
	seedTransaction(t, env, "Suzuki", now.Add(-time.Hour))

	result, err := svc.ListTransactions(ctx, HistoryQuery{
		Search: "sato",
		Range:  enum.DateRangeToday,
	})
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
}

func TestHistoryService_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	svc := NewHistoryService(env.TxnRepo)
	ctx := context.Background()

	base := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
	seedTransaction(t, env, "", base)
	seedTransaction(t, env, "", base.Add(2*time.Hour))
	seedTransaction(t, env, "", base.Add(time.Hour))

	result, err := svc.ListTransactions(ctx, HistoryQuery{})
	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	for i := 1; i < len(result.Items); i++ {
		assert.True(t, !result.Items[i-1].Timestamp.Before(result.Items[i].Timestamp))
	}
}

func TestHistoryService_InvalidRange(t *testing.T) {
	env := newTestEnv(t)
	svc := NewHistoryService(env.TxnRepo)

	_, err := svc.ListTransactions(context.Background(), HistoryQuery{Range: "fortnight"})
	require.Error(t, err)
}

func TestHistoryService_GetTransaction(t *testing.T) {
	env := newTestEnv(t)
	svc := NewHistoryService(env.TxnRepo)
	ctx := context.Background()

	txn := seedTransaction(t, env, "Sato", time.Now())

	got, err := svc.GetTransaction(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, txn.InvoiceNo, got.InvoiceNo)

	_, err = svc.GetTransaction(ctx, uuid.New())
	require.Error(t, err)
}
