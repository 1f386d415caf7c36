package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// orderTransitions is the happy-path transition table:
// pending → paid → shipped → completed, with cancelled reachable from any
// non-terminal state. Only Pay enforces it today; SetStatus deliberately
// accepts arbitrary writes for admin correction flows.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:    {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped: {OrderStatusCompleted, OrderStatusCancelled},
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}

	return false
}

// Terminal reports whether no further transitions leave s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the happy-path table allows s → next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// AddressSnapshot is the immutable copy of the delivery address captured at
// order-creation time. It is stored with the order and never re-derived from
// a live address table.
type AddressSnapshot struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Province string `json:"province"`
	City     string `json:"city"`
	District string `json:"district"`
	Detail   string `json:"detail"`
}

// Order is one entry of the order ledger in the storefront store. It is the
// source of truth for order status; the operations store's shipment record is
// a derived, best-effort mirror.
type Order struct {
	ID            uuid.UUID       // The unique identifier for the order.
	OrderNumber   string          // Globally unique, time-derived business number.
	UserID        uuid.UUID       // The customer who placed the order.
	PaymentMethod string          // Payment method chosen at checkout or pay time.
	TotalAmount   float64         // Sum of line price × quantity, fixed at creation.
	Status        OrderStatus     // Current lifecycle state.
	CreateTime    time.Time       // Timestamp of order creation.
	Address       AddressSnapshot // Immutable delivery address snapshot.

	// Lines are the order's line items, created atomically with the order.
	Lines []*OrderLine
}

// OrderLine is a single line item of an order. Price is the catalog price
// snapshotted at order time and is never updated afterwards.
type OrderLine struct {
	ID        uint      // Surrogate key.
	OrderID   uuid.UUID // Owning order.
	ProductID uuid.UUID // Referenced catalog product.
	Quantity  int       // Units purchased.
	Price     float64   // Unit price snapshot.

	// Product is the joined catalog product for display purposes. Nil when
	// not loaded.
	Product *Product
}
