package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/freshbasket/app/models"
)

// CartRepository implements services.CartStore.
type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) ListCart(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var lines []models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("cart_id ASC").
		Find(&lines).Error
	return lines, err
}

func (r *CartRepository) GetLine(ctx context.Context, userID, productID uint) (models.CartItem, bool, error) {
	var line models.CartItem
	err := r.db.WithContext(ctx).
		First(&line, "user_id = ? AND product_id = ?", userID, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartItem{}, false, nil
	}
	if err != nil {
		return models.CartItem{}, false, err
	}
	return line, true, nil
}

func (r *CartRepository) GetLineForUpdate(ctx context.Context, userID, productID uint) (models.CartItem, bool, error) {
	var line models.CartItem
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&line, "user_id = ? AND product_id = ?", userID, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartItem{}, false, nil
	}
	if err != nil {
		return models.CartItem{}, false, err
	}
	return line, true, nil
}

// UpsertLine sets the (user, product) line to quantity, creating it when
// absent. The unique index on the pair backs the ON CONFLICT clause.
func (r *CartRepository) UpsertLine(ctx context.Context, userID, productID uint, quantity int64) (models.CartItem, error) {
	line := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "added_at"}),
		}).
		Create(&line).Error
	if err != nil {
		return models.CartItem{}, err
	}
	// Re-read so CartID is correct after an update path.
	fresh, _, err := r.GetLine(ctx, userID, productID)
	if err != nil {
		return models.CartItem{}, err
	}
	return fresh, nil
}

func (r *CartRepository) DeleteLine(ctx context.Context, cartID uint) error {
	return r.db.WithContext(ctx).Delete(&models.CartItem{}, "cart_id = ?", cartID).Error
}

func (r *CartRepository) DeleteCart(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Delete(&models.CartItem{}, "user_id = ?", userID).Error
}
