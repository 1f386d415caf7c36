package model

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentModel mirrors the operations-store 'shippings' table. OrderID has
// a uniqueness constraint but deliberately no foreign key: the orders table
// lives in a different store, so the reference is an opaque identifier
// resolved in application code. Under two concurrent auto-creations this
// constraint is the final arbiter.
type ShipmentModel struct {
	ID                    uint       `gorm:"primaryKey"`
	OrderID               uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	TrackingNumber        string     `gorm:"type:varchar(100)"`
	Carrier               string     `gorm:"type:varchar(50)"`
	Status                string     `gorm:"type:varchar(30);not null"`
	ShippingTime          time.Time  `gorm:"autoCreateTime"`
	EstimatedDeliveryTime *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShipmentModel) TableName() string {
	return "shippings"
}
