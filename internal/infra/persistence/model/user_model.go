// Package model contains the GORM persistence structs for both stores.
// Structs suffixed Model mirror tables; mapping to domain entities happens
// in the repository implementations.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the storefront 'users' table.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email        string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	Phone        string     `gorm:"type:varchar(20)"`
	Avatar       string     `gorm:"type:varchar(255)"`
	Role         string     `gorm:"type:varchar(20);default:user"`
	IsActive     bool       `gorm:"not null;default:true"`
	VIPLevelID   *uuid.UUID `gorm:"type:uuid;index"`
	RegisterTime time.Time  `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
