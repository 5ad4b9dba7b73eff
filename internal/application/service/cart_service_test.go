package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddLine(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCartService(env.ProductRepo)
	ctx := context.Background()

	onigiri := env.seedProduct(t, "Onigiri", 150, 10)

	cart, warning, err := svc.AddLine(ctx, "till-1", onigiri.ID)
	require.NoError(t, err)
	assert.Empty(t, warning)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
	assert.Equal(t, int64(150), cart.Total)

	// Adding the same product again increments the existing line
	cart, warning, err = svc.AddLine(ctx, "till-1", onigiri.ID)
	require.NoError(t, err)
	assert.Empty(t, warning)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, int64(300), cart.Total)
}

func TestCartService_AddLine_UnknownProduct(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCartService(env.ProductRepo)

	_, _, err := svc.AddLine(context.Background(), "till-1", uuid.New())
	require.Error(t, err)
}

func TestCartService_AddLine_OutOfStock(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCartService(env.ProductRepo)
	ctx := context.Background()

	soldOut := env.seedProduct(t, "Bento", 580, 0)

	cart, warning, err := svc.AddLine(ctx, "till-1", soldOut.ID)
	require.NoError(t, err)
	assert.Contains(t, warning, "out of stock")
	assert.Empty(t, cart.Lines)
}

func TestCartService_AddLine_StockCeiling(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCartService(env.ProductRepo)
	ctx := context.Background()

	tea := env.seedProduct(t, "Green Tea", 120, 2)

	_, _, err := svc.AddLine(ctx, "till-1", tea.ID)
	require.NoError(t, err)
	_, _, err = svc.AddLine(ctx, "till-1", tea.ID)
	require.NoError(t, err)

	// Third add would exceed stock, cart stays unchanged
	cart, warning, err := svc.AddLine(ctx, "till-1", tea.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, warning)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestCartService_ChangeQuantity_Clamps(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCartService(env.ProductRepo)
	ctx := context.Background()

	coffee := env.seedProduct(t, "Coffee", 300, 5)

	_, _, err := svc.AddLine(ctx, "till-1", coffee.ID)
	require.NoError(t, err)

	cart, warning, err := svc.ChangeQuantity(ctx, "till-1", coffee.ID, 3)
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, 4, cart.Lines[0].Quantity)

	// Going below 1 is a no-op with a warning
	cart, warning, err = svc.ChangeQuantity(ctx, "till-1", coffee.ID, -10)
	require.NoError(t, err)
	assert.NotEmpty(t, warning)
	assert.Equal(t, 4, cart.Lines[0].Quantity)

	// Going above stock is a no-op with a warning
	cart, warning, err = svc.ChangeQuantity(ctx, "till-1", coffee.ID, 5)
	require.NoError(t, err)
	assert.NotEmpty(t, warning)
	assert.Equal(t, 4, cart.Lines[0].Quantity)
}

func TestCartService_ChangeQuantity_MissingLine(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCartService(env.ProductRepo)

	coffee := env.seedProduct(t, "Coffee", 300, 5)

	_, _, err := svc.ChangeQuantity(context.Background(), "till-1", coffee.ID, 1)
	require.Error(t, err)
}

func TestCartService_RemoveLineAndClear(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCartService(env.ProductRepo)
	ctx := context.Background()

	onigiri := env.seedProduct(t, "Onigiri", 150, 10)
	bento := env.seedProduct(t, "Bento", 580, 10)

	_, _, err := svc.AddLine(ctx, "till-1", onigiri.ID)
	require.NoError(t, err)
	_, _, err = svc.AddLine(ctx, "till-1", bento.ID)
	require.NoError(t, err)

	cart := svc.RemoveLine("till-1", onigiri.ID)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, bento.ID, cart.Lines[0].ProductID)

	// Removing an absent line is a no-op
	cart = svc.RemoveLine("till-1", onigiri.ID)
	assert.Len(t, cart.Lines, 1)

	svc.Clear("till-1")
	assert.Empty(t, svc.Get("till-1").Lines)
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCartService(env.ProductRepo)
	ctx := context.Background()

	onigiri := env.seedProduct(t, "Onigiri", 150, 10)

	_, _, err := svc.AddLine(ctx, "till-1", onigiri.ID)
	require.NoError(t, err)

	assert.Len(t, svc.Get("till-1").Lines, 1)
	assert.Empty(t, svc.Get("till-2").Lines)
}
