package models

import "time"

// CartItem is one product line in a user's cart. A (user, product) pair
// appears at most once; adding the same product again bumps the quantity.
type CartItem struct {
	CartID    uint      `gorm:"column:cart_id;primaryKey" json:"cart_id"`
	UserID    uint      `gorm:"column:user_id;not null;index:idx_cart_user_product,unique" json:"user_id"`
	ProductID uint      `gorm:"column:product_id;not null;index:idx_cart_user_product,unique" json:"product_id"`
	Quantity  int64     `gorm:"column:quantity;not null" json:"quantity"`
	AddedAt   time.Time `gorm:"column:added_at" json:"added_at"`

	Product *Product `gorm:"foreignKey:ProductID;references:ProductID" json:"product,omitempty"`
}

func (CartItem) TableName() string { return "cart" }
