package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/freshbasket/app/models"
	"github.com/shashiranjanraj/freshbasket/pkg/migration"
	"github.com/shashiranjanraj/freshbasket/pkg/queue"
)

func init() {
	migration.Register("20260101000000_create_locations_table", &CreateLocationsTable{})
	migration.Register("20260101000001_create_stores_table", &CreateStoresTable{})
	migration.Register("20260101000002_create_users_table", &CreateUsersTable{})
	migration.Register("20260101000003_create_products_table", &CreateProductsTable{})
	migration.Register("20260101000004_create_cart_table", &CreateCartTable{})
	migration.Register("20260101000005_create_orders_tables", &CreateOrdersTables{})
	migration.Register("20260101000006_create_failed_jobs_table", &CreateFailedJobsTable{})
}

type CreateLocationsTable struct{}

func (m *CreateLocationsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Location{})
}

func (m *CreateLocationsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("locations")
}

type CreateStoresTable struct{}

func (m *CreateStoresTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Store{})
}

func (m *CreateStoresTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("stores")
}

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

type CreateCartTable struct{}

func (m *CreateCartTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.CartItem{})
}

func (m *CreateCartTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("cart")
}

// Orders and order items migrate together; an order is never useful without
// its lines.
type CreateOrdersTables struct{}

func (m *CreateOrdersTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{}, &models.OrderItem{})
}

func (m *CreateOrdersTables) Down(db *gorm.DB) error {
	if err := db.Migrator().DropTable("order_items"); err != nil {
		return err
	}
	return db.Migrator().DropTable("orders")
}

type CreateFailedJobsTable struct{}

func (m *CreateFailedJobsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&queue.FailedJobRecord{})
}

func (m *CreateFailedJobsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("failed_jobs")
}
