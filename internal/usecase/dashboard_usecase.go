package usecase

import (
	"context"

	"github.com/google/uuid"
)

// DashboardUsecase defines the read-only aggregation queries behind the
// admin dashboard. All results are point-in-time snapshots.
type DashboardUsecase interface {
	// Stats returns the headline counters.
	Stats(ctx context.Context) (*DashboardStats, error)

	// MonthlySales returns revenue for the trailing six calendar months,
	// oldest first, zero-filled, always exactly six entries.
	MonthlySales(ctx context.Context) ([]MonthlySalesPoint, error)

	// CategoryBreakdown returns the product count per non-empty category.
	CategoryBreakdown(ctx context.Context) ([]CategoryBreakdownEntry, error)

	// RecentOrders returns the latest orders with customer names resolved.
	RecentOrders(ctx context.Context, limit int) ([]RecentOrderEntry, error)
}

// --- Output DTOs ---

// DashboardStats is the headline counter set. TotalRevenue sums orders of
// every status, cancelled and pending included.
type DashboardStats struct {
	TotalRevenue float64 `json:"total_revenue"`
	OrderCount   int64   `json:"order_count"`
	UserCount    int64   `json:"user_count"`
	ProductCount int64   `json:"product_count"`
}

// MonthlySalesPoint is the revenue of one calendar month.
type MonthlySalesPoint struct {
	Month   string  `json:"month"` // formatted as 2006-01
	Revenue float64 `json:"revenue"`
}

// CategoryBreakdownEntry is the product count of one category.
type CategoryBreakdownEntry struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// RecentOrderEntry is one row of the recent-orders widget.
type RecentOrderEntry struct {
	OrderID      uuid.UUID `json:"order_id"`
	OrderNumber  string    `json:"order_number"`
	CustomerName string    `json:"customer_name"`
	TotalAmount  float64   `json:"total_amount"`
	Status       string    `json:"status"`
	ItemSummary  string    `json:"item_summary"`
}
