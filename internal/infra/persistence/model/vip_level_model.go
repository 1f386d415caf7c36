package model

import "github.com/google/uuid"

// VIPLevelModel mirrors the storefront 'vip_levels' table. Benefits are
// stored as a JSON array in a text column.
type VIPLevelModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Level    int       `gorm:"uniqueIndex;not null"`
	Discount int       `gorm:"not null"`
	MinSpend float64   `gorm:"not null;default:0"`
	Color    string    `gorm:"type:varchar(20)"`
	Icon     string    `gorm:"type:varchar(20)"`
	Benefits []string  `gorm:"serializer:json;type:text"`
}

// TableName explicitly sets the table name for GORM.
func (VIPLevelModel) TableName() string {
	return "vip_levels"
}
