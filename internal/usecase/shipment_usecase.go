package usecase

import (
	"context"
	"time"

	"petmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ShipmentUsecase defines the interface for shipment ledger operations.
type ShipmentUsecase interface {
	// Create records a shipment for an order. At most one shipment may
	// exist per order; a second create returns a Conflict error.
	Create(ctx context.Context, input *CreateShipmentInput) (*entity.Shipment, error)

	// Get returns a shipment by its ID.
	Get(ctx context.Context, id uint) (*entity.Shipment, error)

	// GetByOrder returns the shipment recorded for an order.
	GetByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Shipment, error)

	// Update applies a partial update to a shipment.
	Update(ctx context.Context, id uint, input *UpdateShipmentInput) (*entity.Shipment, error)

	// Delete removes a shipment record.
	Delete(ctx context.Context, id uint) error

	// ListWithOrders returns one page of shipments with their orders
	// resolved from the storefront store. An order that does not resolve
	// yields a nil Order reference, never an error.
	ListWithOrders(ctx context.Context, offset, limit int) (*ShipmentPage, error)
}

// --- Input DTOs ---

// CreateShipmentInput defines the data required to record a shipment.
type CreateShipmentInput struct {
	OrderID               uuid.UUID  `json:"order_id" validate:"required"`
	TrackingNumber        string     `json:"tracking_number"`
	Carrier               string     `json:"carrier"`
	Status                string     `json:"status"`
	EstimatedDeliveryTime *time.Time `json:"estimated_delivery_time,omitempty"`
}

// UpdateShipmentInput defines a partial shipment update. Nil fields are
// left unchanged.
type UpdateShipmentInput struct {
	TrackingNumber        *string    `json:"tracking_number,omitempty"`
	Carrier               *string    `json:"carrier,omitempty"`
	Status                *string    `json:"status,omitempty"`
	EstimatedDeliveryTime *time.Time `json:"estimated_delivery_time,omitempty"`
}

// --- Output DTOs ---

// ShipmentWithOrder pairs a shipment with its order resolved across stores.
// Order is nil when the referenced order does not exist in the storefront
// store.
type ShipmentWithOrder struct {
	Shipment *entity.Shipment `json:"shipment"`
	Order    *entity.Order    `json:"order"`
}

// ShipmentPage is one page of shipments plus the total count.
type ShipmentPage struct {
	Items []*ShipmentWithOrder `json:"items"`
	Total int64                `json:"total"`
}
