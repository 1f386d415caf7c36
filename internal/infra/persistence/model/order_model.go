package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressSnapshotModel is the immutable delivery address document serialized
// into the order row as JSON.
type AddressSnapshotModel struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Province string `json:"province"`
	City     string `json:"city"`
	District string `json:"district"`
	Detail   string `json:"detail"`
}

// OrderModel mirrors the storefront 'orders' table. The unique index on
// OrderNumber is what turns a generation collision into a conflict error
// instead of a silent overwrite.
type OrderModel struct {
	ID              uuid.UUID            `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber     string               `gorm:"type:varchar(50);uniqueIndex;not null"`
	UserID          uuid.UUID            `gorm:"type:uuid;not null;index"`
	PaymentMethod   string               `gorm:"type:varchar(50)"`
	TotalAmount     float64              `gorm:"not null"`
	Status          string               `gorm:"type:varchar(20);not null;default:pending"`
	CreateTime      time.Time            `gorm:"autoCreateTime;index"`
	AddressSnapshot AddressSnapshotModel `gorm:"serializer:json;type:text"`

	Items []*OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the storefront 'order_items' table. Price is the
// snapshot captured at order time.
type OrderItemModel struct {
	ID        uint      `gorm:"primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
	Price     float64   `gorm:"not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
