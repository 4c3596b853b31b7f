package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a placed purchase with its shipping destination and monetary totals.
type Order struct {
	ID                   uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	OrderNumber          string          `gorm:"column:order_number;not null"`
	UserID               *uuid.UUID      `gorm:"column:user_id;type:uuid"`
	Status               string          `gorm:"column:status;not null"`
	PaymentMethod        string          `gorm:"column:payment_method;not null"`
	PaymentStatus        string          `gorm:"column:payment_status;not null"`
	Subtotal             decimal.Decimal `gorm:"column:subtotal;type:numeric(12,2);not null"`
	Tax                  decimal.Decimal `gorm:"column:tax;type:numeric(12,2);not null"`
	ShippingFee          decimal.Decimal `gorm:"column:shipping_fee;type:numeric(12,2);not null"`
	TotalAmount          decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null"`
	TrackingNumber       *string         `gorm:"column:tracking_number"`
	ShippingFullName     string          `gorm:"column:shipping_full_name;not null"`
	ShippingPhone        string          `gorm:"column:shipping_phone;not null"`
	ShippingAddressLine1 string          `gorm:"column:shipping_address_line1;not null"`
	ShippingAddressLine2 *string         `gorm:"column:shipping_address_line2"`
	ShippingCity         string          `gorm:"column:shipping_city;not null"`
	ShippingState        *string         `gorm:"column:shipping_state"`
	ShippingPostalCode   *string         `gorm:"column:shipping_postal_code"`
	ShippingCountry      string          `gorm:"column:shipping_country;not null"`
	Profile              *Profile        `gorm:"foreignKey:UserID;references:ID"`
	Items                []OrderItem     `gorm:"foreignKey:OrderID;references:ID"`
	CreatedAt            time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Order) TableName() string { return "orders" }

// OrderItem is one line of an order. TotalPrice is stored, not recomputed.
type OrderItem struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"column:order_id;type:uuid;not null"`
	ProductID   *uuid.UUID      `gorm:"column:product_id;type:uuid"`
	ProductName string          `gorm:"column:product_name;not null"`
	Quantity    int             `gorm:"column:quantity;not null"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`
	TotalPrice  decimal.Decimal `gorm:"column:total_price;type:numeric(12,2);not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (OrderItem) TableName() string { return "order_items" }
