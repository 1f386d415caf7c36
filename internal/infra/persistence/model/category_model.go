package model

// CategoryModel mirrors the operations-store 'categories' table.
type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description string `gorm:"type:varchar(200)"`
	Icon        string `gorm:"type:varchar(100)"`
	Color       string `gorm:"type:varchar(50);default:blue"`
	SortOrder   int    `gorm:"not null;default:0"`
	IsActive    bool   `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
