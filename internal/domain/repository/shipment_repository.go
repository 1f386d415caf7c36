package repository

import (
	"context"
	"errors"
	"time"

	"petmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShipmentNotFound is returned when a referenced shipment is absent.
var ErrShipmentNotFound = errors.New("shipment not found")

// ShipmentUpdate carries the mutable shipment fields for a partial update.
// Nil fields are left unchanged.
type ShipmentUpdate struct {
	TrackingNumber        *string
	Carrier               *string
	Status                *string
	EstimatedDeliveryTime *time.Time
}

// ShipmentRepository defines the persistence operations of the shipment
// ledger in the operations store.
type ShipmentRepository interface {
	// Create persists a new shipment. A second shipment for the same order
	// violates the (order_id) uniqueness constraint and surfaces as a
	// Conflict error; the constraint, not application logic, is the final
	// arbiter under concurrency.
	Create(ctx context.Context, shipment *entity.Shipment) error

	// FindByID returns a shipment or ErrShipmentNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Shipment, error)

	// FindByOrderID returns the shipment for an order or ErrShipmentNotFound.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Shipment, error)

	// List returns one page of shipments plus the total count.
	List(ctx context.Context, offset, limit int) ([]*entity.Shipment, int64, error)

	// Update applies a partial update to the shipment with the given ID.
	Update(ctx context.Context, id uint, update ShipmentUpdate) error

	// Delete removes a shipment record.
	Delete(ctx context.Context, id uint) error
}
