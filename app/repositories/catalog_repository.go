// Package repositories holds the GORM implementations of the store
// contracts in app/services.
package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/freshbasket/app/models"
)

// CatalogRepository implements services.CatalogStore and the image store.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) GetProduct(ctx context.Context, id uint) (models.Product, bool, error) {
	var p models.Product
	err := r.db.WithContext(ctx).First(&p, "product_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, false, nil
	}
	if err != nil {
		return models.Product{}, false, err
	}
	return p, true, nil
}

// GetProductForUpdate locks the product row until the enclosing transaction
// ends, serializing concurrent checkouts on the same product.
func (r *CatalogRepository) GetProductForUpdate(ctx context.Context, id uint) (models.Product, bool, error) {
	var p models.Product
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&p, "product_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, false, nil
	}
	if err != nil {
		return models.Product{}, false, err
	}
	return p, true, nil
}

func (r *CatalogRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).Order("product_id ASC").Find(&products).Error
	return products, err
}

// DecrementStock subtracts amount only when enough stock remains; the guard
// in the WHERE clause makes the decrement safe even without a prior lock.
func (r *CatalogRepository) DecrementStock(ctx context.Context, id uint, amount int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("product_id = ? AND stock_quantity >= ?", id, amount).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", amount))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *CatalogRepository) SetProductImage(ctx context.Context, productID uint, url string) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("product_id = ?", productID).
		Update("image_url", url).Error
}
