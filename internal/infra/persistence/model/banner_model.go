package model

import "time"

// BannerModel mirrors the operations-store 'banners' table.
type BannerModel struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"type:varchar(100);not null"`
	ImageURL    string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text"`
	LinkURL     string    `gorm:"type:varchar(255)"`
	SortOrder   int       `gorm:"not null;default:0"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreateTime  time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (BannerModel) TableName() string {
	return "banners"
}
