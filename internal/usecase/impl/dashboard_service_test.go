package impl

import (
	"context"
	"testing"
	"time"

	"petmart/internal/domain/entity"
	"petmart/internal/domain/repository"
	mockRepo "petmart/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Stats(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewDashboardService(mockOrderRepo, mockUserRepo, mockProductRepo, testLogger())

	ctx := context.Background()

	// Revenue counts orders of every status, pending and cancelled included.
	mockOrderRepo.EXPECT().SumTotalAmount(ctx).Return(1234.5, nil)
	mockOrderRepo.EXPECT().Count(ctx).Return(int64(17), nil)
	mockUserRepo.EXPECT().Count(ctx).Return(int64(8), nil)
	mockProductRepo.EXPECT().Count(ctx).Return(int64(120), nil)

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1234.5, stats.TotalRevenue)
	assert.Equal(t, int64(17), stats.OrderCount)
	assert.Equal(t, int64(8), stats.UserCount)
	assert.Equal(t, int64(120), stats.ProductCount)
}

func TestDashboardService_MonthlySales(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewDashboardService(mockOrderRepo, mockUserRepo, mockProductRepo, testLogger()).(*dashboardService)
	// Pinned in March so the six-month window crosses the year boundary.
	service.now = func() time.Time {
		return time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	}

	ctx := context.Background()

	revenueByMonth := map[string]float64{
		"2025-12": 300.0,
		"2026-02": 55.5,
	}
	for i := 0; i < monthlySalesWindow; i++ {
		start := time.Date(2025, time.October+time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		mockOrderRepo.EXPECT().
			SumTotalAmountBetween(ctx, start, end).
			Return(revenueByMonth[start.Format("2006-01")], nil)
	}

	points, err := service.MonthlySales(ctx)
	require.NoError(t, err)
	require.Len(t, points, monthlySalesWindow)

	labels := make([]string, 0, len(points))
	for _, point := range points {
		labels = append(labels, point.Month)
	}
	assert.Equal(t, []string{"2025-10", "2025-11", "2025-12", "2026-01", "2026-02", "2026-03"}, labels)

	// Months without orders stay in the series with zero revenue.
	assert.Equal(t, 0.0, points[0].Revenue)
	assert.Equal(t, 300.0, points[2].Revenue)
	assert.Equal(t, 55.5, points[4].Revenue)
	assert.Equal(t, 0.0, points[5].Revenue)
}

func TestDashboardService_CategoryBreakdown(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewDashboardService(mockOrderRepo, mockUserRepo, mockProductRepo, testLogger())

	ctx := context.Background()

	mockProductRepo.EXPECT().
		CountByCategory(ctx).
		Return([]repository.CategoryCount{
			{Category: "food", Count: 12},
			{Category: "toys", Count: 3},
		}, nil)

	entries, err := service.CategoryBreakdown(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "food", entries[0].Category)
	assert.Equal(t, int64(12), entries[0].Count)
}

func TestDashboardService_RecentOrders(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewDashboardService(mockOrderRepo, mockUserRepo, mockProductRepo, testLogger())

	ctx := context.Background()
	knownUserID := uuid.New()
	ghostUserID := uuid.New()

	orders := []*entity.Order{
		{
			ID:          uuid.New(),
			OrderNumber: "PET2",
			UserID:      knownUserID,
			TotalAmount: 60.0,
			Status:      entity.OrderStatusPaid,
			Lines: []*entity.OrderLine{
				{Quantity: 2, Product: &entity.Product{Name: "Dog Food"}},
				{Quantity: 1, Product: &entity.Product{Name: "Chew Toy"}},
			},
		},
		{
			ID:          uuid.New(),
			OrderNumber: "PET1",
			UserID:      ghostUserID,
			TotalAmount: 15.0,
			Status:      entity.OrderStatusPending,
			Lines: []*entity.OrderLine{
				{Quantity: 1, Product: &entity.Product{Name: "Catnip"}},
			},
		},
	}

	mockOrderRepo.EXPECT().Recent(ctx, 2).Return(orders, nil)

	// The second customer's account no longer exists.
	mockUserRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{knownUserID, ghostUserID}).
		Return([]*entity.User{{ID: knownUserID, Username: "alex"}}, nil)

	entries, err := service.RecentOrders(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "alex", entries[0].CustomerName)
	assert.Equal(t, "Dog Food x2 and 1 more", entries[0].ItemSummary)
	assert.Equal(t, unknownCustomerName, entries[1].CustomerName)
	assert.Equal(t, "Catnip x1", entries[1].ItemSummary)
}

func TestDashboardService_RecentOrders_DefaultLimit(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewDashboardService(mockOrderRepo, mockUserRepo, mockProductRepo, testLogger())

	ctx := context.Background()

	mockOrderRepo.EXPECT().
		Recent(ctx, defaultRecentOrdersLimit).
		Return([]*entity.Order{}, nil)

	entries, err := service.RecentOrders(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
