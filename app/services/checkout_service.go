package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shashiranjanraj/freshbasket/app/jobs"
	"github.com/shashiranjanraj/freshbasket/app/models"
	"github.com/shashiranjanraj/freshbasket/pkg/collection"
	"github.com/shashiranjanraj/freshbasket/pkg/logger"
	"github.com/shashiranjanraj/freshbasket/pkg/metrics"
	"github.com/shashiranjanraj/freshbasket/pkg/queue"
)

// CheckoutInput carries the checkout request. OrderDate is always
// server-stamped; a client-supplied value is ignored.
type CheckoutInput struct {
	UserID          uint   `json:"user_id" validate:"required"`
	StoreID         *uint  `json:"store_id"`
	DeliveryAddress string `json:"delivery_address"`
	PaymentMethod   string `json:"payment_method"`
	DeliveryTime    string `json:"delivery_time"`
}

// OrderSummary is the successful checkout response.
type OrderSummary struct {
	OrderID      uint    `json:"order_id"`
	TotalAmount  float64 `json:"total_amount"`
	ItemsOrdered int     `json:"items_ordered"`
}

// CheckoutService converts a user's cart into an order with atomic stock
// accounting.
type CheckoutService struct {
	uow UnitOfWork
}

func NewCheckoutService(uow UnitOfWork) *CheckoutService {
	return &CheckoutService{uow: uow}
}

// Checkout validates every cart line against live stock, then creates the
// order, its items, decrements stock, and clears the cart — all inside one
// transaction. All validation happens before any write, so a rejection
// leaves nothing mutated.
func (s *CheckoutService) Checkout(ctx context.Context, in CheckoutInput) (*OrderSummary, error) {
	var summary *OrderSummary
	var userEmail string

	err := s.uow.Atomically(ctx, func(st Stores) error {
		if u, found, err := st.Users.GetUser(ctx, in.UserID); err == nil && found {
			userEmail = u.Email
		}

		lines, err := st.Cart.ListCart(ctx, in.UserID)
		if err != nil {
			return &InternalError{Err: fmt.Errorf("list cart: %w", err)}
		}
		if len(lines) == 0 {
			return ErrEmptyCart()
		}

		// Lock product rows in ascending id order so concurrent checkouts
		// touching the same products cannot deadlock.
		sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })

		products := make(map[uint]models.Product, len(lines))
		for _, line := range lines {
			// Cart writes enforce a positive quantity; a line that violates
			// that is corrupt data, and feeding it to the stock decrement
			// would increase stock. Abort rather than guess.
			if line.Quantity < 1 {
				return &InternalError{Err: fmt.Errorf("cart line %d has non-positive quantity %d", line.CartID, line.Quantity)}
			}
			p, found, err := st.Catalog.GetProductForUpdate(ctx, line.ProductID)
			if err != nil {
				return &InternalError{Err: fmt.Errorf("load product %d: %w", line.ProductID, err)}
			}
			if !found {
				return &NotFoundError{Entity: "product", ID: line.ProductID}
			}
			if p.StockQuantity < line.Quantity {
				return ErrInsufficientStock(p.ProductName, p.StockQuantity)
			}
			products[line.ProductID] = p
		}

		items := collection.Map(lines, func(line models.CartItem) models.OrderItem {
			p := products[line.ProductID]
			return models.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: p.Price,
				Subtotal:  p.Price * float64(line.Quantity),
			}
		})
		total := collection.Reduce(items, 0.0, func(acc float64, it models.OrderItem) float64 {
			return acc + it.Subtotal
		})

		order := models.Order{
			UserID:          in.UserID,
			StoreID:         in.StoreID,
			OrderDate:       time.Now().Format(time.RFC3339),
			TotalAmount:     total,
			Status:          models.OrderStatusPending,
			DeliveryAddress: in.DeliveryAddress,
			PaymentMethod:   in.PaymentMethod,
			DeliveryTime:    in.DeliveryTime,
		}
		if err := st.Orders.CreateOrder(ctx, &order, items); err != nil {
			return &InternalError{Err: fmt.Errorf("create order: %w", err)}
		}

		for _, line := range lines {
			ok, err := st.Catalog.DecrementStock(ctx, line.ProductID, line.Quantity)
			if err != nil {
				return &InternalError{Err: fmt.Errorf("decrement stock %d: %w", line.ProductID, err)}
			}
			if !ok {
				// Cannot happen while the row lock is held, so treat a miss
				// as a store fault rather than a user error.
				return &InternalError{Err: fmt.Errorf("stock guard failed for product %d", line.ProductID)}
			}
		}

		if err := st.Cart.DeleteCart(ctx, in.UserID); err != nil {
			return &InternalError{Err: fmt.Errorf("clear cart: %w", err)}
		}

		summary = &OrderSummary{
			OrderID:      order.OrderID,
			TotalAmount:  total,
			ItemsOrdered: len(items),
		}
		return nil
	})
	if err != nil {
		recordCheckoutFailure(err)
		return nil, err
	}

	metrics.OrdersPlaced.Inc()

	// Confirmation email is best-effort; a dispatch failure never affects
	// the committed order.
	if err := queue.Dispatch(&jobs.OrderConfirmationJob{
		UserID:      in.UserID,
		OrderID:     summary.OrderID,
		TotalAmount: summary.TotalAmount,
		Email:       userEmail,
	}); err != nil {
		logger.WithCtx(ctx).Warn("checkout: confirmation dispatch failed",
			"order_id", summary.OrderID, "error", err)
	}

	return summary, nil
}

func recordCheckoutFailure(err error) {
	switch e := err.(type) {
	case *ConflictError:
		metrics.CheckoutFailures.WithLabelValues(e.Reason).Inc()
	case *NotFoundError:
		metrics.CheckoutFailures.WithLabelValues("product_not_found").Inc()
	default:
		metrics.CheckoutFailures.WithLabelValues("internal").Inc()
	}
}
