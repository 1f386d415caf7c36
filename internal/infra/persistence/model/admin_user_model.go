package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminUserModel mirrors the operations-store 'admin_users' table.
type AdminUserModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username   string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email      string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	Password   string     `gorm:"type:varchar(255);not null"`
	Avatar     string     `gorm:"type:varchar(255)"`
	CreateTime time.Time  `gorm:"autoCreateTime"`
	LastLogin  *time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminUserModel) TableName() string {
	return "admin_users"
}
