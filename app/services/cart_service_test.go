package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/freshbasket/app/services"
)

func cartFixture(state *memState) *services.CartService {
	return services.NewCartService(
		&fakeUnitOfWork{state: state},
		&fakeCatalog{state},
		&fakeCart{state},
	)
}

func TestBulkAdd_PartitionScenario(t *testing.T) {
	state := newMemState()
	seedProduct(state, 1, "Apples", 10, 5)
	seedProduct(state, 2, "Pears", 10, 3)
	svc := cartFixture(state)

	result := svc.BulkAdd(context.Background(), 7, []services.BulkAddItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 100},
	})

	require.Len(t, result.Added, 1)
	assert.Equal(t, uint(1), result.Added[0].ProductID)
	assert.Equal(t, "added", result.Added[0].Action)
	assert.Equal(t, int64(2), result.Added[0].Quantity)

	require.Len(t, result.Failed, 1)
	assert.Equal(t, uint(2), result.Failed[0].ProductID)
	assert.Contains(t, result.Failed[0].Reason, "Only 3")

	assert.Equal(t, 1, result.AddedCount)
	assert.Equal(t, 1, result.FailedCount)

	require.Len(t, state.cart, 1, "only A's line may exist")
	assert.Equal(t, uint(1), state.cart[0].ProductID)
}

func TestBulkAdd_MergesExistingLine(t *testing.T) {
	state := newMemState()
	seedProduct(state, 1, "Apples", 10, 10)
	seedCartLine(state, 7, 1, 3)
	svc := cartFixture(state)

	result := svc.BulkAdd(context.Background(), 7, []services.BulkAddItem{
		{ProductID: 1, Quantity: 4},
	})

	require.Len(t, result.Added, 1)
	assert.Equal(t, "updated", result.Added[0].Action)
	assert.Equal(t, int64(7), result.Added[0].Quantity)
	assert.Equal(t, int64(7), state.cart[0].Quantity)
}

func TestBulkAdd_MergeExceedingStockLeavesLine(t *testing.T) {
	state := newMemState()
	seedProduct(state, 1, "Apples", 10, 5)
	seedCartLine(state, 7, 1, 4)
	svc := cartFixture(state)

	result := svc.BulkAdd(context.Background(), 7, []services.BulkAddItem{
		{ProductID: 1, Quantity: 3}, // 4 in cart + 3 > 5 stock
	})

	require.Len(t, result.Failed, 1)
	assert.Contains(t, result.Failed[0].Reason, "Only 5 available")
	assert.Contains(t, result.Failed[0].Reason, "4 already in cart")
	assert.Equal(t, int64(4), state.cart[0].Quantity, "line must be untouched")
}

func TestBulkAdd_RejectsNonPositiveQuantity(t *testing.T) {
	state := newMemState()
	seedProduct(state, 1, "Apples", 10, 5)
	svc := cartFixture(state)

	result := svc.BulkAdd(context.Background(), 7, []services.BulkAddItem{
		{ProductID: 1, Quantity: -3},
		{ProductID: 1, Quantity: 0},
	})

	assert.Empty(t, result.Added)
	require.Len(t, result.Failed, 2)
	for _, f := range result.Failed {
		assert.Equal(t, uint(1), f.ProductID)
		assert.Contains(t, f.Reason, "at least 1")
	}
	assert.Empty(t, state.cart, "no line may be created")
	assert.Equal(t, int64(5), state.products[1].StockQuantity)
}

func TestBulkAdd_UnknownProduct(t *testing.T) {
	state := newMemState()
	svc := cartFixture(state)

	result := svc.BulkAdd(context.Background(), 7, []services.BulkAddItem{
		{ProductID: 42, Quantity: 1},
	})

	require.Len(t, result.Failed, 1)
	assert.Equal(t, "Product not found", result.Failed[0].Reason)
	assert.Empty(t, state.cart)
}

func TestBulkAdd_NeverMutatesStock(t *testing.T) {
	state := newMemState()
	seedProduct(state, 1, "Apples", 10, 5)
	svc := cartFixture(state)

	svc.BulkAdd(context.Background(), 7, []services.BulkAddItem{
		{ProductID: 1, Quantity: 5},
	})

	assert.Equal(t, int64(5), state.products[1].StockQuantity)
}

func TestBulkAdd_FailureIsolatedPerItem(t *testing.T) {
	state := newMemState()
	seedProduct(state, 1, "Apples", 10, 5)
	seedProduct(state, 3, "Bananas", 5, 5)
	svc := cartFixture(state)

	result := svc.BulkAdd(context.Background(), 7, []services.BulkAddItem{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 1}, // missing
		{ProductID: 3, Quantity: 2},
	})

	assert.Equal(t, 2, result.AddedCount)
	assert.Equal(t, 1, result.FailedCount)
	assert.Len(t, state.cart, 2)
}

func TestAddToCart_StockPreCheck(t *testing.T) {
	state := newMemState()
	seedProduct(state, 1, "Apples", 10, 2)
	svc := cartFixture(state)

	_, err := svc.AddToCart(context.Background(), 7, 1, 5)

	var conflict *services.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "insufficient_stock", conflict.Reason)
	assert.Empty(t, state.cart)
}

func TestAddToCart_AccumulatesQuantity(t *testing.T) {
	state := newMemState()
	seedProduct(state, 1, "Apples", 10, 100)
	svc := cartFixture(state)

	_, err := svc.AddToCart(context.Background(), 7, 1, 2)
	require.NoError(t, err)
	line, err := svc.AddToCart(context.Background(), 7, 1, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(5), line.Quantity)
	require.Len(t, state.cart, 1)
}

func TestRemoveFromCart(t *testing.T) {
	state := newMemState()
	seedProduct(state, 1, "Apples", 10, 100)
	seedCartLine(state, 7, 1, 2)
	svc := cartFixture(state)

	require.NoError(t, svc.RemoveFromCart(context.Background(), state.cart[0].CartID))
	assert.Empty(t, state.cart)
}
