package models

// OrderStatusPending is the status every new order is created with.
const OrderStatusPending = "pending"

// Order is a confirmed checkout with its priced line items.
type Order struct {
	OrderID         uint    `gorm:"column:order_id;primaryKey" json:"order_id"`
	UserID          uint    `gorm:"column:user_id;not null;index" json:"user_id"`
	StoreID         *uint   `gorm:"column:store_id" json:"store_id,omitempty"`
	OrderDate       string  `gorm:"column:order_date;type:text;not null" json:"order_date"`
	TotalAmount     float64 `gorm:"column:total_amount;not null" json:"total_amount"`
	Status          string  `gorm:"column:status;type:text;not null" json:"status"`
	DeliveryAddress string  `gorm:"column:delivery_address;type:text" json:"delivery_address,omitempty"`
	PaymentMethod   string  `gorm:"column:payment_method;type:text" json:"payment_method,omitempty"`
	DeliveryTime    string  `gorm:"column:delivery_time;type:text" json:"delivery_time,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID;references:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string { return "orders" }

// OrderItem is one product line of an order, priced at checkout time so
// later catalogue price changes do not rewrite order history.
type OrderItem struct {
	OrderItemID uint    `gorm:"column:order_item_id;primaryKey" json:"order_item_id"`
	OrderID     uint    `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductID   uint    `gorm:"column:product_id;not null" json:"product_id"`
	Quantity    int64   `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice   float64 `gorm:"column:unit_price;not null" json:"unit_price"`
	Subtotal    float64 `gorm:"column:subtotal" json:"subtotal"`
}

func (OrderItem) TableName() string { return "order_items" }
