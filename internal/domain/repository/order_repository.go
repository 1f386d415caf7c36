package repository

import (
	"context"
	"errors"
	"time"

	"petmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when a referenced order is absent.
var ErrOrderNotFound = errors.New("order not found")

// OrderSort selects the ordering of admin order listings.
type OrderSort string

const (
	OrderSortCreateTimeDesc OrderSort = ""
	OrderSortAmountDesc     OrderSort = "amount_desc"
	OrderSortAmountAsc      OrderSort = "amount_asc"
)

// OrderListFilter narrows and orders admin order listings.
type OrderListFilter struct {
	Status      entity.OrderStatus // empty means all statuses
	OrderNumber string             // substring match on order number
	SortBy      OrderSort
	Offset      int
	Limit       int
}

// OrderRepository defines the persistence operations of the order ledger,
// including the read-only aggregation queries the dashboard depends on.
type OrderRepository interface {
	// Create persists a new order together with its lines in one insert
	// unit. A duplicate order number surfaces as a Conflict error, never a
	// silent overwrite.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID returns an order with its lines, or ErrOrderNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDs returns the orders whose IDs are in ids, lines included;
	// missing IDs are silently absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Order, error)

	// FindByUser returns the user's orders, newest first, lines included.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// List returns one page of orders plus the total matching count.
	List(ctx context.Context, filter OrderListFilter) ([]*entity.Order, int64, error)

	// UpdateStatus overwrites the order's status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// UpdatePayment sets status to paid and records the payment method.
	UpdatePayment(ctx context.Context, id uuid.UUID, paymentMethod string) error

	// Delete removes the order and its lines. The corresponding shipment
	// row in the operations store is not touched.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of orders, any status.
	Count(ctx context.Context) (int64, error)

	// CountByUser returns the number of orders placed by a user, any status.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// SumTotalAmountByUser sums total_amount across a user's orders, any
	// status. Returns 0 when the user has no orders.
	SumTotalAmountByUser(ctx context.Context, userID uuid.UUID) (float64, error)

	// SumTotalAmount sums total_amount across all orders, any status.
	SumTotalAmount(ctx context.Context) (float64, error)

	// SumTotalAmountBetween sums total_amount for orders created in
	// [start, end). Returns 0 when no orders match.
	SumTotalAmountBetween(ctx context.Context, start, end time.Time) (float64, error)

	// SumTotalAmountByVIPLevelSince sums total_amount for orders whose
	// user belongs to the given VIP level and whose create_time >= since.
	SumTotalAmountByVIPLevelSince(ctx context.Context, vipLevelID uuid.UUID, since time.Time) (float64, error)

	// Recent returns the latest orders, newest first, lines included.
	Recent(ctx context.Context, limit int) ([]*entity.Order, error)
}
