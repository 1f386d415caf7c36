package impl

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"petmart/internal/domain/entity"
	domainerrors "petmart/internal/domain/errors"
	"petmart/internal/domain/repository"
	mockRepo "petmart/internal/mocks/repository"
	"petmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// passthroughTxManager runs the unit of work directly against the given
// factory, standing in for a real database transaction.
func passthroughTxManager(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txManager
}

func TestOrderService_Checkout(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockShipmentRepo := mockRepo.NewMockShipmentRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCartRepository().Return(mockCartRepo)
	factory.EXPECT().NewProductRepository().Return(mockProductRepo)
	factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

	txManager := passthroughTxManager(t, factory)

	service := NewOrderService(txManager, mockOrderRepo, mockShipmentRepo, testLogger()).(*orderService)
	checkoutAt := time.Date(2026, time.August, 20, 9, 30, 0, 0, time.UTC)
	service.now = func() time.Time { return checkoutAt }

	ctx := context.Background()
	userID := uuid.New()
	foodID := uuid.New()
	toyID := uuid.New()

	mockCartRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.CartItem{
			{ID: 1, UserID: userID, ProductID: foodID, Quantity: 2},
			{ID: 2, UserID: userID, ProductID: toyID, Quantity: 1},
		}, nil)

	mockProductRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{foodID, toyID}).
		Return([]*entity.Product{
			{ID: foodID, Name: "Dog Food", Price: 10.0},
			{ID: toyID, Name: "Chew Toy", Price: 5.0},
		}, nil)

	mockOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	mockProductRepo.EXPECT().IncrementSales(ctx, foodID, 2).Return(nil)
	mockProductRepo.EXPECT().IncrementSales(ctx, toyID, 1).Return(nil)

	mockCartRepo.EXPECT().ClearByUser(ctx, userID).Return(nil)

	order, err := service.Checkout(ctx, userID, &usecase.CheckoutInput{
		PaymentMethod: "wechat",
		Address: usecase.AddressInput{
			Name:   "Alex",
			Phone:  "13800000000",
			Detail: "1 Pet Street",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, 25.0, order.TotalAmount)
	assert.Equal(t, fmt.Sprintf("PET%d", checkoutAt.UnixMilli()), order.OrderNumber)
	assert.Equal(t, "wechat", order.PaymentMethod)
	assert.Equal(t, "Alex", order.Address.Name)
	require.Len(t, order.Lines, 2)
	assert.Equal(t, 10.0, order.Lines[0].Price)
	assert.Equal(t, 2, order.Lines[0].Quantity)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockShipmentRepo := mockRepo.NewMockShipmentRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCartRepository().Return(mockCartRepo)
	factory.EXPECT().NewProductRepository().Return(mockRepo.NewMockProductRepository(t))
	factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

	txManager := passthroughTxManager(t, factory)
	service := NewOrderService(txManager, mockOrderRepo, mockShipmentRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()

	mockCartRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.CartItem{}, nil)

	order, err := service.Checkout(ctx, userID, &usecase.CheckoutInput{})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestOrderService_Checkout_MissingProduct(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockShipmentRepo := mockRepo.NewMockShipmentRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCartRepository().Return(mockCartRepo)
	factory.EXPECT().NewProductRepository().Return(mockProductRepo)
	factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

	txManager := passthroughTxManager(t, factory)
	service := NewOrderService(txManager, mockOrderRepo, mockShipmentRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	mockCartRepo.EXPECT().
		FindByUser(ctx, userID).
		Return([]*entity.CartItem{
			{ID: 1, UserID: userID, ProductID: productID, Quantity: 1},
		}, nil)

	// The referenced product was deleted between add-to-cart and checkout.
	mockProductRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{productID}).
		Return([]*entity.Product{}, nil)

	order, err := service.Checkout(ctx, userID, &usecase.CheckoutInput{})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestOrderService_Pay(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockShipmentRepo := mockRepo.NewMockShipmentRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewOrderService(txManager, mockOrderRepo, mockShipmentRepo, testLogger())

	ctx := context.Background()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPending}, nil)

	mockOrderRepo.EXPECT().
		UpdatePayment(ctx, orderID, "alipay").
		Return(nil)

	order, err := service.Pay(ctx, orderID, "alipay")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
	assert.Equal(t, "alipay", order.PaymentMethod)
}

func TestOrderService_Pay_NotPending(t *testing.T) {
	// Every non-pending status must be rejected by the transition table.
	statuses := []entity.OrderStatus{
		entity.OrderStatusPaid,
		entity.OrderStatusShipped,
		entity.OrderStatusCompleted,
		entity.OrderStatusCancelled,
	}

	for _, status := range statuses {
		t.Run(string(status), func(t *testing.T) {
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockShipmentRepo := mockRepo.NewMockShipmentRepository(t)
			txManager := mockRepo.NewMockTransactionManager(t)

			service := NewOrderService(txManager, mockOrderRepo, mockShipmentRepo, testLogger())

			ctx := context.Background()
			orderID := uuid.New()

			mockOrderRepo.EXPECT().
				FindByID(ctx, orderID).
				Return(&entity.Order{ID: orderID, Status: status}, nil)

			order, err := service.Pay(ctx, orderID, "alipay")
			require.Error(t, err)
			assert.Nil(t, order)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
		})
	}
}

func TestOrderService_Pay_NotFound(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockShipmentRepo := mockRepo.NewMockShipmentRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewOrderService(txManager, mockOrderRepo, mockShipmentRepo, testLogger())

	ctx := context.Background()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	order, err := service.Pay(ctx, orderID, "alipay")
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_SetStatus_EmptyStatus(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockShipmentRepo := mockRepo.NewMockShipmentRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewOrderService(txManager, mockOrderRepo, mockShipmentRepo, testLogger())

	order, err := service.SetStatus(context.Background(), uuid.New(), "")
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrStatusRequired)
}

func TestOrderService_SetStatus_ShippedDerivesShipment(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockShipmentRepo := mockRepo.NewMockShipmentRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewOrderService(txManager, mockOrderRepo, mockShipmentRepo, testLogger())

	ctx := context.Background()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPaid}, nil).
		Once()

	mockOrderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusShipped).
		Return(nil)

	mockShipmentRepo.EXPECT().
		FindByOrderID(ctx, orderID).
		Return(nil, repository.ErrShipmentNotFound)

	mockShipmentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Shipment")).
		RunAndReturn(func(_ context.Context, shipment *entity.Shipment) error {
			assert.Equal(t, orderID, shipment.OrderID)
			assert.Equal(t, entity.ShipmentStatusAwaitingPickup, shipment.Status)

			return nil
		})

	mockOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusShipped}, nil).
		Once()

	order, err := service.SetStatus(ctx, orderID, "shipped")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
}

func TestOrderService_SetStatus_ShipmentAlreadyExists(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockShipmentRepo := mockRepo.NewMockShipmentRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewOrderService(txManager, mockOrderRepo, mockShipmentRepo, testLogger())

	ctx := context.Background()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusShipped}, nil)

	mockOrderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusShipped).
		Return(nil)

	// A shipment is already on file, so no second create happens.
	mockShipmentRepo.EXPECT().
		FindByOrderID(ctx, orderID).
		Return(&entity.Shipment{ID: 7, OrderID: orderID}, nil)

	order, err := service.SetStatus(ctx, orderID, "shipped")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
}

func TestOrderService_SetStatus_ShipmentConflictIsSwallowed(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockShipmentRepo := mockRepo.NewMockShipmentRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewOrderService(txManager, mockOrderRepo, mockShipmentRepo, testLogger())

	ctx := context.Background()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusShipped}, nil)

	mockOrderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusShipped).
		Return(nil)

	mockShipmentRepo.EXPECT().
		FindByOrderID(ctx, orderID).
		Return(nil, repository.ErrShipmentNotFound)

	// A concurrent writer won the uniqueness race; the loser treats the
	// conflict as a no-op success.
	mockShipmentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Shipment")).
		Return(domainerrors.ErrShipmentExists)

	order, err := service.SetStatus(ctx, orderID, "shipped")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
}

func TestOrderService_AdminList_Defaults(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockShipmentRepo := mockRepo.NewMockShipmentRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewOrderService(txManager, mockOrderRepo, mockShipmentRepo, testLogger())

	ctx := context.Background()
	orders := []*entity.Order{{ID: uuid.New()}}

	mockOrderRepo.EXPECT().
		List(ctx, repository.OrderListFilter{Offset: 0, Limit: defaultOrderPageSize}).
		Return(orders, int64(42), nil)

	page, err := service.AdminList(ctx, &usecase.AdminOrderListInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(42), page.Total)
	assert.Equal(t, orders, page.Orders)
}

func TestOrderService_AdminList_Paging(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockShipmentRepo := mockRepo.NewMockShipmentRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewOrderService(txManager, mockOrderRepo, mockShipmentRepo, testLogger())

	ctx := context.Background()

	mockOrderRepo.EXPECT().
		List(ctx, repository.OrderListFilter{
			Status:      entity.OrderStatusPaid,
			OrderNumber: "PET17",
			SortBy:      repository.OrderSortAmountDesc,
			Offset:      40,
			Limit:       20,
		}).
		Return([]*entity.Order{}, int64(0), nil)

	_, err := service.AdminList(ctx, &usecase.AdminOrderListInput{
		Status:      "paid",
		OrderNumber: "PET17",
		SortBy:      "amount_desc",
		Page:        3,
		PageSize:    20,
	})
	require.NoError(t, err)
}

func TestOrderService_Delete_NotFound(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockShipmentRepo := mockRepo.NewMockShipmentRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

	txManager := passthroughTxManager(t, factory)
	service := NewOrderService(txManager, mockOrderRepo, mockShipmentRepo, testLogger())

	ctx := context.Background()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().
		Delete(ctx, orderID).
		Return(repository.ErrOrderNotFound)

	err := service.Delete(ctx, orderID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
