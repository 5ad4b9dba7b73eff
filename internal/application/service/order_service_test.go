package service

import (
	"context"
	"testing"

	"github.com/ayumu-dev/regi-api/internal/domain/enum"
	"github.com/ayumu-dev/regi-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CreateOrder(t *testing.T) {
	env := newTestEnv(t)
	svc := NewOrderService(env.OrderRepo, nil)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, CreateOrderInput{
		CustomerName: "Sato",
		Total:        12800,
		ShippingFee:  800,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, order.OrderNo)
	assert.Equal(t, enum.OrderStatusPending, order.Status)
	assert.Equal(t, int64(12800), order.Total)
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewOrderService(env.OrderRepo, nil)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, CreateOrderInput{CustomerName: "", Total: 100})
	require.Error(t, err)

	_, err = svc.CreateOrder(ctx, CreateOrderInput{CustomerName: "Sato", Total: 100, ShippingFee: -1})
	require.Error(t, err)

	_, err = svc.CreateOrder(ctx, CreateOrderInput{CustomerName: "Sato", Total: 100, ShippingFee: 500})
	require.Error(t, err)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	svc := NewOrderService(env.OrderRepo, nil)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, CreateOrderInput{CustomerName: "Sato", Total: 1000})
	require.NoError(t, err)

	order, err = svc.UpdateOrderStatus(ctx, order.ID, enum.OrderStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusPaid, order.Status)

	order, err = svc.UpdateOrderStatus(ctx, order.ID, enum.OrderStatusCancelled)
	require.NoError(t, err)

	// Cancelled is terminal
	_, err = svc.UpdateOrderStatus(ctx, order.ID, enum.OrderStatusShipped)
	require.Error(t, err)
}

func TestOrderService_ListByStatus(t *testing.T) {
	env := newTestEnv(t)
	svc := NewOrderService(env.OrderRepo, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateOrder(ctx, CreateOrderInput{CustomerName: "Sato", Total: 1000})
		require.NoError(t, err)
	}
	order, err := svc.CreateOrder(ctx, CreateOrderInput{CustomerName: "Suzuki", Total: 2000})
	require.NoError(t, err)
	_, err = svc.UpdateOrderStatus(ctx, order.ID, enum.OrderStatusPaid)
	require.NoError(t, err)

	paid := enum.OrderStatusPaid
	result, err := svc.ListOrders(ctx, &repository.OrderFilterParams{Status: &paid})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Suzuki", result.Items[0].CustomerName)
}
