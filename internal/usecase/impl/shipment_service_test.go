package impl

import (
	"context"
	"testing"

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

func TestShipmentService_Create_DefaultsStatus(t *testing.T) {
	mockShipmentRepo := mockRepo.NewMockShipmentRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewShipmentService(mockShipmentRepo, mockOrderRepo, testLogger())

	ctx := context.Background()
	orderID := uuid.New()

	mockShipmentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Shipment")).
		RunAndReturn(func(_ context.Context, shipment *entity.Shipment) error {
			assert.Equal(t, orderID, shipment.OrderID)
			assert.Equal(t, entity.ShipmentStatusAwaitingPickup, shipment.Status)

			return nil
		})

	shipment, err := service.Create(ctx, &usecase.CreateShipmentInput{
		OrderID:        orderID,
		TrackingNumber: "SF123456",
		Carrier:        "SF Express",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ShipmentStatusAwaitingPickup, shipment.Status)
	assert.Equal(t, "SF123456", shipment.TrackingNumber)
}

func TestShipmentService_Create_DuplicateOrder(t *testing.T) {
	mockShipmentRepo := mockRepo.NewMockShipmentRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewShipmentService(mockShipmentRepo, mockOrderRepo, testLogger())

	ctx := context.Background()

	mockShipmentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Shipment")).
		Return(domainerrors.ErrShipmentExists)

	shipment, err := service.Create(ctx, &usecase.CreateShipmentInput{OrderID: uuid.New()})
	require.Error(t, err)
	assert.Nil(t, shipment)
	assert.ErrorIs(t, err, domainerrors.ErrShipmentExists)
}

func TestShipmentService_GetByOrder_NotFound(t *testing.T) {
	mockShipmentRepo := mockRepo.NewMockShipmentRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewShipmentService(mockShipmentRepo, mockOrderRepo, testLogger())

	ctx := context.Background()
	orderID := uuid.New()

	mockShipmentRepo.EXPECT().
		FindByOrderID(ctx, orderID).
		Return(nil, repository.ErrShipmentNotFound)

	shipment, err := service.GetByOrder(ctx, orderID)
	require.Error(t, err)
	assert.Nil(t, shipment)
	assert.ErrorIs(t, err, domainerrors.ErrShipmentNotFound)
}

func TestShipmentService_Update_Refetches(t *testing.T) {
	mockShipmentRepo := mockRepo.NewMockShipmentRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewShipmentService(mockShipmentRepo, mockOrderRepo, testLogger())

	ctx := context.Background()
	tracking := "YT987"

	mockShipmentRepo.EXPECT().
		Update(ctx, uint(3), repository.ShipmentUpdate{TrackingNumber: &tracking}).
		Return(nil)

	mockShipmentRepo.EXPECT().
		FindByID(ctx, uint(3)).
		Return(&entity.Shipment{ID: 3, TrackingNumber: tracking}, nil)

	shipment, err := service.Update(ctx, 3, &usecase.UpdateShipmentInput{TrackingNumber: &tracking})
	require.NoError(t, err)
	assert.Equal(t, tracking, shipment.TrackingNumber)
}

func TestShipmentService_ListWithOrders_PartialJoin(t *testing.T) {
	mockShipmentRepo := mockRepo.NewMockShipmentRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewShipmentService(mockShipmentRepo, mockOrderRepo, testLogger())

	ctx := context.Background()
	resolvedOrderID := uuid.New()
	danglingOrderID := uuid.New()

	mockShipmentRepo.EXPECT().
		List(ctx, 0, 10).
		Return([]*entity.Shipment{
			{ID: 1, OrderID: resolvedOrderID},
			{ID: 2, OrderID: danglingOrderID},
		}, int64(2), nil)

	// Only one of the two cross-store references resolves; the other order
	// was deleted from the storefront store after shipping.
	mockOrderRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{resolvedOrderID, danglingOrderID}).
		Return([]*entity.Order{{ID: resolvedOrderID, OrderNumber: "PET1"}}, nil)

	page, err := service.ListWithOrders(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Items, 2)
	require.NotNil(t, page.Items[0].Order)
	assert.Equal(t, "PET1", page.Items[0].Order.OrderNumber)
	assert.Nil(t, page.Items[1].Order)
}
