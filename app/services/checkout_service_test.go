package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/freshbasket/app/models"
	"github.com/shashiranjanraj/freshbasket/app/services"
)

func seedProduct(s *memState, id uint, name string, price float64, stock int64) {
	s.products[id] = models.Product{
		ProductID:     id,
		ProductName:   name,
		Price:         price,
		StockQuantity: stock,
	}
}

func seedCartLine(s *memState, userID, productID uint, quantity int64) {
	s.cart = append(s.cart, models.CartItem{
		CartID:    s.nextCartID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
	s.nextCartID++
}

func TestCheckout_Success(t *testing.T) {
	state := newMemState()
	seedProduct(state, 1, "Fresh Tomatoes", 100, 5)
	seedCartLine(state, 7, 1, 2)

	svc := services.NewCheckoutService(&fakeUnitOfWork{state: state})
	summary, err := svc.Checkout(context.Background(), services.CheckoutInput{UserID: 7})

	require.NoError(t, err)
	assert.Equal(t, 200.0, summary.TotalAmount)
	assert.Equal(t, 1, summary.ItemsOrdered)
	assert.NotZero(t, summary.OrderID)

	assert.Equal(t, int64(3), state.products[1].StockQuantity, "stock should drop 5 -> 3")
	assert.Empty(t, state.cart, "cart should be cleared")

	require.Len(t, state.orders, 1)
	assert.Equal(t, models.OrderStatusPending, state.orders[0].Status)
	assert.NotEmpty(t, state.orders[0].OrderDate)

	require.Len(t, state.orderItems, 1)
	assert.Equal(t, 100.0, state.orderItems[0].UnitPrice)
	assert.Equal(t, 200.0, state.orderItems[0].Subtotal)
}

func TestCheckout_TotalSpansLines(t *testing.T) {
	state := newMemState()
	seedProduct(state, 1, "Milk", 2.5, 10)
	seedProduct(state, 2, "Bread", 3.0, 10)
	seedCartLine(state, 7, 1, 4)
	seedCartLine(state, 7, 2, 2)

	svc := services.NewCheckoutService(&fakeUnitOfWork{state: state})
	summary, err := svc.Checkout(context.Background(), services.CheckoutInput{UserID: 7})

	require.NoError(t, err)
	assert.Equal(t, 16.0, summary.TotalAmount)
	assert.Equal(t, 2, summary.ItemsOrdered)

	var sum float64
	for _, it := range state.orderItems {
		sum += it.Subtotal
	}
	assert.Equal(t, summary.TotalAmount, sum)
}

func TestCheckout_EmptyCart(t *testing.T) {
	state := newMemState()
	svc := services.NewCheckoutService(&fakeUnitOfWork{state: state})

	_, err := svc.Checkout(context.Background(), services.CheckoutInput{UserID: 7})

	var conflict *services.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "empty_cart", conflict.Reason)
	assert.Empty(t, state.orders)
}

func TestCheckout_InsufficientStock(t *testing.T) {
	state := newMemState()
	seedProduct(state, 2, "Organic Milk", 50, 3)
	seedCartLine(state, 7, 2, 10)

	svc := services.NewCheckoutService(&fakeUnitOfWork{state: state})
	_, err := svc.Checkout(context.Background(), services.CheckoutInput{UserID: 7})

	var conflict *services.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "insufficient_stock", conflict.Reason)
	assert.Contains(t, conflict.Message, "Organic Milk")

	assert.Equal(t, int64(3), state.products[2].StockQuantity, "stock must be untouched")
	assert.Len(t, state.cart, 1, "cart must be unchanged")
	assert.Empty(t, state.orders)
	assert.Empty(t, state.orderItems)
}

func TestCheckout_NonPositiveLineAbortsWithoutInflatingStock(t *testing.T) {
	// A corrupt line with a negative quantity must never reach the stock
	// decrement, where it would add items back.
	state := newMemState()
	seedProduct(state, 1, "Apples", 10, 5)
	seedCartLine(state, 7, 1, -3)

	svc := services.NewCheckoutService(&fakeUnitOfWork{state: state})
	_, err := svc.Checkout(context.Background(), services.CheckoutInput{UserID: 7})

	var internal *services.InternalError
	require.ErrorAs(t, err, &internal)

	assert.Equal(t, int64(5), state.products[1].StockQuantity, "stock must not move")
	assert.Empty(t, state.orders)
	assert.Len(t, state.cart, 1, "cart must be unchanged")
}

func TestCheckout_ProductVanished(t *testing.T) {
	state := newMemState()
	seedCartLine(state, 7, 99, 1)

	svc := services.NewCheckoutService(&fakeUnitOfWork{state: state})
	_, err := svc.Checkout(context.Background(), services.CheckoutInput{UserID: 7})

	var notFound *services.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint(99), notFound.ID)
	assert.Len(t, state.cart, 1)
}

func TestCheckout_ValidationPrecedesWrites(t *testing.T) {
	// Two lines; the second fails stock validation. Nothing at all may be
	// written, including for the first, valid line.
	state := newMemState()
	seedProduct(state, 1, "Apples", 10, 100)
	seedProduct(state, 2, "Pears", 10, 1)
	seedCartLine(state, 7, 1, 5)
	seedCartLine(state, 7, 2, 2)

	svc := services.NewCheckoutService(&fakeUnitOfWork{state: state})
	_, err := svc.Checkout(context.Background(), services.CheckoutInput{UserID: 7})

	require.Error(t, err)
	assert.Equal(t, int64(100), state.products[1].StockQuantity)
	assert.Equal(t, int64(1), state.products[2].StockQuantity)
	assert.Len(t, state.cart, 2)
	assert.Empty(t, state.orders)
}

func TestCheckout_CommitFailureRollsBack(t *testing.T) {
	state := newMemState()
	seedProduct(state, 1, "Apples", 10, 100)
	seedCartLine(state, 7, 1, 5)
	state.failOn = "DeleteCart" // fail after order insert and decrement

	svc := services.NewCheckoutService(&fakeUnitOfWork{state: state})
	_, err := svc.Checkout(context.Background(), services.CheckoutInput{UserID: 7})

	var internal *services.InternalError
	require.ErrorAs(t, err, &internal)

	assert.Equal(t, int64(100), state.products[1].StockQuantity, "decrement must roll back")
	assert.Empty(t, state.orders, "order insert must roll back")
	assert.Empty(t, state.orderItems)
	assert.Len(t, state.cart, 1)
}

func TestCheckout_ServerStampsOrderDate(t *testing.T) {
	state := newMemState()
	seedProduct(state, 1, "Apples", 10, 100)
	seedCartLine(state, 7, 1, 1)

	svc := services.NewCheckoutService(&fakeUnitOfWork{state: state})
	_, err := svc.Checkout(context.Background(), services.CheckoutInput{
		UserID:          7,
		DeliveryAddress: "12 Main St",
		PaymentMethod:   "card",
	})

	require.NoError(t, err)
	require.Len(t, state.orders, 1)
	assert.NotEmpty(t, state.orders[0].OrderDate)
	assert.Equal(t, "12 Main St", state.orders[0].DeliveryAddress)
	assert.Equal(t, "card", state.orders[0].PaymentMethod)
}
