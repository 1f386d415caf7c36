package usecase

import (
	"context"

	"petmart/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the interface for order lifecycle operations.
type OrderUsecase interface {
	// Checkout converts the user's cart into an order atomically. The cart
	// must be non-empty; line prices are snapshotted from the catalog at
	// this moment and the cart is cleared in the same transaction.
	Checkout(ctx context.Context, userID uuid.UUID, input *CheckoutInput) (*entity.Order, error)

	// Pay marks a pending order as paid and records the payment method.
	Pay(ctx context.Context, orderID uuid.UUID, paymentMethod string) (*entity.Order, error)

	// SetStatus overwrites the order's status. When the new status is
	// "shipped", a shipment record is derived in the operations store if
	// one does not already exist.
	SetStatus(ctx context.Context, orderID uuid.UUID, status string) (*entity.Order, error)

	// Get returns an order with its lines.
	Get(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// ListByUser returns the user's order history, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// AdminList returns one page of orders for the admin surface.
	AdminList(ctx context.Context, input *AdminOrderListInput) (*OrderPage, error)

	// Delete removes the order and its lines. Any shipment row for the
	// order in the operations store is left untouched.
	Delete(ctx context.Context, orderID uuid.UUID) error
}

// --- Input DTOs ---

// CheckoutInput defines the data required to convert a cart into an order.
type CheckoutInput struct {
	PaymentMethod string       `json:"payment_method"`
	Address       AddressInput `json:"address" validate:"required"`
}

// AddressInput is the delivery address captured at checkout. It is copied
// into the order as an immutable snapshot.
type AddressInput struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Province string `json:"province"`
	City     string `json:"city"`
	District string `json:"district"`
	Detail   string `json:"detail" validate:"required"`
}

// AdminOrderListInput narrows and pages the admin order listing.
type AdminOrderListInput struct {
	Status      string `json:"status"`
	OrderNumber string `json:"order_number"`
	SortBy      string `json:"sort_by"`
	Page        int    `json:"page" validate:"gte=0"`
	PageSize    int    `json:"page_size" validate:"gte=0,lte=100"`
}

// --- Output DTOs ---

// OrderPage is one page of orders plus the total matching count.
type OrderPage struct {
	Orders []*entity.Order `json:"orders"`
	Total  int64           `json:"total"`
}
