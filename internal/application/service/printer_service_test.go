package service

import (
	"context"
	"testing"
	"time"

	"github.com/ayumu-dev/regi-api/internal/config"
	"github.com/ayumu-dev/regi-api/internal/domain/entity"
	"github.com/ayumu-dev/regi-api/pkg/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testShop = config.ShopConfig{
	Name:    "REGI STORE",
	Address: "1-2-3 Shibuya, Tokyo",
	Phone:   "03-1234-5678",
}

func newTestPrinterService(env *testEnv) *PrinterService {
	return NewPrinterService(
		printer.NewNullPrinter(),
		NewHistoryService(env.TxnRepo),
		testShop,
		config.PrinterConfig{Type: "none", Width: 32},
	)
}

func TestPrinterService_BuildReceipt(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestPrinterService(env)
	ctx := context.Background()

	customer := "Sato"
	cash := int64(5000)
	change := int64(3000)
	txn := &entity.Transaction{
		InvoiceNo:    "TXN-ABC12345",
		CashierName:  "Tanaka",
		CustomerName: &customer,
		Total:        2000,
		CashAmount:   &cash,
		ChangeAmount: &change,
		Timestamp:    time.Date(2026, time.September, 1, 14, 30, 0, 0, time.UTC),
		Items: []entity.TransactionItem{
			{Name: "Bento", Category: "Food", Price: 1000, Quantity: 2, Total: 2000},
		},
	}
	require.NoError(t, env.DB.Create(txn).Error)

	receipt, err := svc.BuildReceipt(ctx, txn.ID)
	require.NoError(t, err)

	assert.Equal(t, "REGI STORE", receipt.Header.ShopName)
	assert.Equal(t, "TXN-ABC12345", receipt.InvoiceNo)
	assert.Equal(t, "Tanaka", receipt.Cashier)
	assert.Equal(t, "Sato", receipt.Customer)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "¥1,000", receipt.Items[0].UnitPrice)
	assert.Equal(t, "¥2,000", receipt.Items[0].Total)
	assert.Equal(t, "¥2,000", receipt.SubTotal)
	assert.Equal(t, "¥2,000", receipt.Total)
	assert.Equal(t, "¥5,000", receipt.Cash)
	assert.Equal(t, "¥3,000", receipt.Change)
}

func TestPrinterService_PrintReceiptWithNullPrinter(t *testing.T) {
	env := newTestEnv(t)
	svc := newTestPrinterService(env)
	ctx := context.Background()

	txn := &entity.Transaction{
		InvoiceNo:   "TXN-XYZ99999",
		CashierName: "Tanaka",
		Total:       150,
		Timestamp:   time.Now(),
		Items: []entity.TransactionItem{
			{Name: "Onigiri", Price: 150, Quantity: 1, Total: 150},
		},
	}
	require.NoError(t, env.DB.Create(txn).Error)

	// Printing is disabled but the composed receipt still comes back
	receipt, err := svc.PrintReceipt(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, "¥150", receipt.Total)

	status := svc.Status()
	assert.Equal(t, "none", status.Type)
	assert.False(t, status.Connected)
}
