package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/freshbasket/app/models"
	"github.com/shashiranjanraj/freshbasket/pkg/metrics"
)

// BulkAddItem is one product+quantity request in a bulk add.
type BulkAddItem struct {
	ProductID uint  `json:"product_id" validate:"required"`
	Quantity  int64 `json:"quantity" validate:"required,min=1"`
}

// BulkAddSuccess describes one cart line the bulk add created or grew.
type BulkAddSuccess struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"` // resulting line quantity
	Action      string `json:"action"`   // "added" or "updated"
}

// BulkAddFailure describes one item the bulk add rejected.
type BulkAddFailure struct {
	ProductID uint   `json:"product_id"`
	Reason    string `json:"reason"`
}

// BulkAddResult partitions a bulk add into successes and failures.
type BulkAddResult struct {
	Added       []BulkAddSuccess `json:"added"`
	Failed      []BulkAddFailure `json:"failed"`
	AddedCount  int              `json:"added_count"`
	FailedCount int              `json:"failed_count"`
}

// CartService manages cart lines: single adds with a stock pre-check, and
// the bulk merge used after shopping-list matching.
type CartService struct {
	uow     UnitOfWork
	catalog CatalogStore
	cart    CartStore
}

func NewCartService(uow UnitOfWork, catalog CatalogStore, cart CartStore) *CartService {
	return &CartService{uow: uow, catalog: catalog, cart: cart}
}

// BulkAdd merges items into the user's cart one at a time; each item runs in
// its own transaction so one failure never aborts its siblings. Stock checks
// here are advisory — stock only moves at checkout, which re-validates.
func (s *CartService) BulkAdd(ctx context.Context, userID uint, items []BulkAddItem) *BulkAddResult {
	result := &BulkAddResult{Added: []BulkAddSuccess{}, Failed: []BulkAddFailure{}}

	for _, item := range items {
		success, failure := s.addOne(ctx, userID, item)
		if failure != nil {
			result.Failed = append(result.Failed, *failure)
			metrics.BulkAddItems.WithLabelValues("failed").Inc()
			continue
		}
		result.Added = append(result.Added, *success)
		metrics.BulkAddItems.WithLabelValues(success.Action).Inc()
	}

	result.AddedCount = len(result.Added)
	result.FailedCount = len(result.Failed)
	return result
}

func (s *CartService) addOne(ctx context.Context, userID uint, item BulkAddItem) (*BulkAddSuccess, *BulkAddFailure) {
	// Tag validation on BulkAddItem does not run for slice elements, so the
	// quantity floor is enforced here. A non-positive quantity must never
	// reach a cart line: checkout's conditional decrement would move stock
	// the wrong way.
	if item.Quantity < 1 {
		return nil, &BulkAddFailure{ProductID: item.ProductID, Reason: "Quantity must be at least 1"}
	}

	var success *BulkAddSuccess
	var failure *BulkAddFailure

	err := s.uow.Atomically(ctx, func(st Stores) error {
		p, found, err := st.Catalog.GetProduct(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if !found {
			failure = &BulkAddFailure{ProductID: item.ProductID, Reason: "Product not found"}
			return nil
		}
		if p.StockQuantity < item.Quantity {
			failure = &BulkAddFailure{
				ProductID: item.ProductID,
				Reason:    fmt.Sprintf("Insufficient stock for %s. Only %d items available.", p.ProductName, p.StockQuantity),
			}
			return nil
		}

		// Lock the line so concurrent bulk-adds by the same user cannot
		// lose an update.
		line, exists, err := st.Cart.GetLineForUpdate(ctx, userID, item.ProductID)
		if err != nil {
			return err
		}

		quantity := item.Quantity
		action := "added"
		if exists {
			newQuantity := line.Quantity + item.Quantity
			if p.StockQuantity < newQuantity {
				failure = &BulkAddFailure{
					ProductID: item.ProductID,
					Reason: fmt.Sprintf("Insufficient stock for %s. Only %d available, %d already in cart.",
						p.ProductName, p.StockQuantity, line.Quantity),
				}
				return nil
			}
			quantity = newQuantity
			action = "updated"
		}

		if _, err := st.Cart.UpsertLine(ctx, userID, item.ProductID, quantity); err != nil {
			return err
		}
		success = &BulkAddSuccess{
			ProductID:   item.ProductID,
			ProductName: p.ProductName,
			Quantity:    quantity,
			Action:      action,
		}
		return nil
	})
	if err != nil {
		return nil, &BulkAddFailure{ProductID: item.ProductID, Reason: "Could not add item"}
	}
	return success, failure
}

// AddToCart adds a single line after a stock pre-check.
func (s *CartService) AddToCart(ctx context.Context, userID, productID uint, quantity int64) (*models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	p, found, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, &InternalError{Err: fmt.Errorf("load product %d: %w", productID, err)}
	}
	if !found {
		return nil, &NotFoundError{Entity: "product", ID: productID}
	}
	if p.StockQuantity < quantity {
		return nil, ErrInsufficientStock(p.ProductName, p.StockQuantity)
	}

	existing, exists, err := s.cart.GetLine(ctx, userID, productID)
	if err != nil {
		return nil, &InternalError{Err: err}
	}
	if exists {
		quantity += existing.Quantity
	}

	line, err := s.cart.UpsertLine(ctx, userID, productID, quantity)
	if err != nil {
		return nil, &InternalError{Err: fmt.Errorf("upsert cart line: %w", err)}
	}
	return &line, nil
}

// GetCart lists the user's cart lines.
func (s *CartService) GetCart(ctx context.Context, userID uint) ([]models.CartItem, error) {
	lines, err := s.cart.ListCart(ctx, userID)
	if err != nil {
		return nil, &InternalError{Err: err}
	}
	return lines, nil
}

// RemoveFromCart deletes a single line by its cart id.
func (s *CartService) RemoveFromCart(ctx context.Context, cartID uint) error {
	if err := s.cart.DeleteLine(ctx, cartID); err != nil {
		return &InternalError{Err: err}
	}
	return nil
}
