package model

import "github.com/google/uuid"

// CartItemModel mirrors the storefront 'cart_items' table. The composite
// unique index enforces one row per (user, product) pair.
type CartItemModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int       `gorm:"not null;default:1"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
