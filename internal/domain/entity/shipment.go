package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentStatusAwaitingPickup is the initial status of a shipment created
// automatically when an order transitions to "shipped".
const ShipmentStatusAwaitingPickup = "awaiting pickup"

// Shipment is the per-order shipping record in the operations store. OrderID
// is an opaque reference into the storefront store: the two stores share no
// foreign keys, so the referenced order may not (yet, or ever) resolve, and
// joins happen in application code. At most one shipment exists per order,
// enforced by a uniqueness constraint on OrderID.
type Shipment struct {
	ID                    uint       // Surrogate key.
	OrderID               uuid.UUID  // Opaque cross-store order reference, unique.
	TrackingNumber        string     // Carrier tracking number, may be empty.
	Carrier               string     // Carrier name, may be empty.
	Status                string     // Shipping progress status.
	ShippingTime          time.Time  // When the shipment record was created.
	EstimatedDeliveryTime *time.Time // Optional delivery estimate.
}
