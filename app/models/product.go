package models

// Product is a grocery item carried by a store.
type Product struct {
	ProductID     uint    `gorm:"column:product_id;primaryKey" json:"product_id"`
	ProductName   string  `gorm:"column:product_name;type:text;not null" json:"product_name"`
	Description   string  `gorm:"column:description;type:text" json:"description,omitempty"`
	Category      string  `gorm:"column:category;type:text" json:"category,omitempty"`
	Price         float64 `gorm:"column:price;not null" json:"price"`
	StoreID       *uint   `gorm:"column:store_id" json:"store_id,omitempty"`
	StockQuantity int64   `gorm:"column:stock_quantity;not null;default:0" json:"stock_quantity"`
	Unit          string  `gorm:"column:unit;type:text" json:"unit,omitempty"`
	Brand         string  `gorm:"column:brand;type:text" json:"brand,omitempty"`
	ImageURL      string  `gorm:"column:image_url;size:500" json:"image_url,omitempty"`
}

func (Product) TableName() string { return "products" }
