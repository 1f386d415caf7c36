package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the storefront 'favorites' table. The composite
// unique index enforces one row per (user, product) pair.
type FavoriteModel struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_user_product"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_user_product"`
	CreateTime time.Time `gorm:"autoCreateTime"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
