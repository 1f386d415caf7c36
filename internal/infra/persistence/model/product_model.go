package model

import "github.com/google/uuid"

// ProductModel mirrors the storefront 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);index;not null"`
	Price       float64   `gorm:"not null"`
	Category    string    `gorm:"type:varchar(50);index"`
	Image       string    `gorm:"type:text"`
	Description string    `gorm:"type:text"`
	Rating      float64   `gorm:"not null;default:0"`
	Sales       int       `gorm:"not null;default:0"`
	Stock       int       `gorm:"not null;default:0"`
	Status      string    `gorm:"type:varchar(20);default:active"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
