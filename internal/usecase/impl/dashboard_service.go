package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"petmart/internal/domain/entity"
	"petmart/internal/domain/repository"
	"petmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	monthlySalesWindow       = 6
	defaultRecentOrdersLimit = 5
	unknownCustomerName      = "unknown customer"
)

// dashboardService implements the DashboardUsecase interface. Every query is
// a point-in-time snapshot over the storefront store; no cross-query
// consistency is promised.
type dashboardService struct {
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	return &dashboardService{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Stats returns the headline counters. Revenue sums orders of every status,
// pending and cancelled included.
func (srv *dashboardService) Stats(ctx context.Context) (*usecase.DashboardStats, error) {
	revenue, err := srv.orderRepo.SumTotalAmount(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}

	orderCount, err := srv.orderRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	userCount, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	productCount, err := srv.productRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	return &usecase.DashboardStats{
		TotalRevenue: revenue,
		OrderCount:   orderCount,
		UserCount:    userCount,
		ProductCount: productCount,
	}, nil
}

// MonthlySales returns revenue per calendar month for the trailing six
// months including the current one, oldest first. Months without orders
// appear with zero revenue; the result always has exactly six entries.
func (srv *dashboardService) MonthlySales(ctx context.Context) ([]usecase.MonthlySalesPoint, error) {
	now := srv.now()
	points := make([]usecase.MonthlySalesPoint, 0, monthlySalesWindow)

	for i := monthlySalesWindow - 1; i >= 0; i-- {
		// time.Date normalizes out-of-range months, so January minus one
		// lands in December of the previous year.
		start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0)

		revenue, err := srv.orderRepo.SumTotalAmountBetween(ctx, start, end)
		if err != nil {
			return nil, errors.Wrap(err, "failed to sum monthly revenue")
		}

		points = append(points, usecase.MonthlySalesPoint{
			Month:   start.Format("2006-01"),
			Revenue: revenue,
		})
	}

	return points, nil
}

// CategoryBreakdown returns the product count per non-empty category.
func (srv *dashboardService) CategoryBreakdown(ctx context.Context) ([]usecase.CategoryBreakdownEntry, error) {
	counts, err := srv.productRepo.CountByCategory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products by category")
	}

	entries := make([]usecase.CategoryBreakdownEntry, 0, len(counts))
	for _, count := range counts {
		entries = append(entries, usecase.CategoryBreakdownEntry{
			Category: count.Category,
			Count:    count.Count,
		})
	}

	return entries, nil
}

// RecentOrders returns the latest orders with customer names resolved in a
// single batch lookup. A missing user yields the fallback name instead of an
// error.
func (srv *dashboardService) RecentOrders(ctx context.Context, limit int) ([]usecase.RecentOrderEntry, error) {
	if limit < 1 {
		limit = defaultRecentOrdersLimit
	}

	orders, err := srv.orderRepo.Recent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent orders")
	}

	userIDs := make([]uuid.UUID, 0, len(orders))
	for _, order := range orders {
		userIDs = append(userIDs, order.UserID)
	}

	nameByID := make(map[uuid.UUID]string, len(userIDs))
	if len(userIDs) > 0 {
		users, err := srv.userRepo.FindByIDs(ctx, userIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve customers")
		}
		for _, user := range users {
			nameByID[user.ID] = user.Username
		}
	}

	entries := make([]usecase.RecentOrderEntry, 0, len(orders))
	for _, order := range orders {
		name, ok := nameByID[order.UserID]
		if !ok || name == "" {
			name = unknownCustomerName
		}

		entries = append(entries, usecase.RecentOrderEntry{
			OrderID:      order.ID,
			OrderNumber:  order.OrderNumber,
			CustomerName: name,
			TotalAmount:  order.TotalAmount,
			Status:       string(order.Status),
			ItemSummary:  summarizeLines(order.Lines),
		})
	}

	return entries, nil
}

// summarizeLines renders a short human-readable digest of an order's lines.
func summarizeLines(lines []*entity.OrderLine) string {
	if len(lines) == 0 {
		return ""
	}

	first := "item"
	if lines[0].Product != nil && lines[0].Product.Name != "" {
		first = lines[0].Product.Name
	}
	if len(lines) == 1 {
		return fmt.Sprintf("%s x%d", first, lines[0].Quantity)
	}

	return fmt.Sprintf("%s x%d and %d more", first, lines[0].Quantity, len(lines)-1)
}
