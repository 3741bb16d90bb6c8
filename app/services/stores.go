package services

import (
	"context"

	"github.com/shashiranjanraj/freshbasket/app/models"
)

// CatalogStore reads products and performs the one stock mutation the
// checkout engine is allowed to make.
type CatalogStore interface {
	// GetProduct returns (product, true, nil) when found, (_, false, nil)
	// when absent.
	GetProduct(ctx context.Context, id uint) (models.Product, bool, error)

	// GetProductForUpdate is GetProduct holding a row lock for the duration
	// of the enclosing transaction.
	GetProductForUpdate(ctx context.Context, id uint) (models.Product, bool, error)

	// ListProducts returns the whole catalogue in ascending product_id order.
	ListProducts(ctx context.Context) ([]models.Product, error)

	// DecrementStock subtracts amount from the product's stock only if
	// enough remains: UPDATE ... SET stock = stock - ? WHERE stock >= ?.
	// Returns (false, nil) when the guard fails.
	DecrementStock(ctx context.Context, id uint, amount int64) (bool, error)
}

// CartStore manages per-user cart lines.
type CartStore interface {
	ListCart(ctx context.Context, userID uint) ([]models.CartItem, error)
	GetLine(ctx context.Context, userID, productID uint) (models.CartItem, bool, error)

	// GetLineForUpdate locks the line against concurrent bulk-adds by the
	// same user.
	GetLineForUpdate(ctx context.Context, userID, productID uint) (models.CartItem, bool, error)

	// UpsertLine creates the (user, product) line or replaces its quantity.
	UpsertLine(ctx context.Context, userID, productID uint, quantity int64) (models.CartItem, error)

	DeleteLine(ctx context.Context, cartID uint) error

	// DeleteCart removes every line belonging to userID.
	DeleteCart(ctx context.Context, userID uint) error
}

// OrderStore persists orders. CreateOrder inserts the order and its items
// as one group; item OrderIDs are filled in from the created order.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error
	ListOrders(ctx context.Context, userID uint) ([]models.Order, error)
}

// UserStore manages shopper accounts.
type UserStore interface {
	GetUser(ctx context.Context, id uint) (models.User, bool, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, bool, error)
	CreateUser(ctx context.Context, user *models.User) error
	MarkVerified(ctx context.Context, userID uint) error
}

// ReferenceStore reads the store/location reference data.
type ReferenceStore interface {
	ListStores(ctx context.Context) ([]models.Store, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
}

// Stores bundles every store a transactional operation may touch.
type Stores struct {
	Catalog CatalogStore
	Cart    CartStore
	Orders  OrderStore
	Users   UserStore
}

// UnitOfWork is the explicit transaction boundary. Everything fn does
// through the supplied Stores commits together or not at all.
type UnitOfWork interface {
	Atomically(ctx context.Context, fn func(s Stores) error) error
}
