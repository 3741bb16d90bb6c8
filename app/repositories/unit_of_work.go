package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/freshbasket/app/services"
)

// GormUnitOfWork implements services.UnitOfWork on a GORM transaction.
type GormUnitOfWork struct {
	db *gorm.DB
}

func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Atomically runs fn inside one database transaction. The Stores handed to
// fn are bound to the transaction, so every read sees its snapshot and every
// write commits or rolls back with it.
func (u *GormUnitOfWork) Atomically(ctx context.Context, fn func(s services.Stores) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(services.Stores{
			Catalog: NewCatalogRepository(tx),
			Cart:    NewCartRepository(tx),
			Orders:  NewOrderRepository(tx),
			Users:   NewUserRepository(tx),
		})
	})
}
