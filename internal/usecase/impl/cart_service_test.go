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

func TestCartService_AddItem_NewEntry(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(mockCartRepo, mockProductRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Cat Tree", Price: 89.9}, nil)

	mockCartRepo.EXPECT().
		FindByUserAndProduct(ctx, userID, productID).
		Return(nil, repository.ErrCartItemNotFound)

	mockCartRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CartItem")).
		RunAndReturn(func(_ context.Context, item *entity.CartItem) error {
			assert.Equal(t, userID, item.UserID)
			assert.Equal(t, productID, item.ProductID)
			assert.Equal(t, 2, item.Quantity)

			return nil
		})

	err := service.AddItem(ctx, userID, &usecase.AddCartItemInput{
		ProductID: productID,
		Quantity:  2,
	})
	require.NoError(t, err)
}

func TestCartService_AddItem_MergesQuantity(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(mockCartRepo, mockProductRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)

	mockCartRepo.EXPECT().
		FindByUserAndProduct(ctx, userID, productID).
		Return(&entity.CartItem{ID: 9, UserID: userID, ProductID: productID, Quantity: 2}, nil)

	mockCartRepo.EXPECT().
		UpdateQuantity(ctx, uint(9), 5).
		Return(nil)

	err := service.AddItem(ctx, userID, &usecase.AddCartItemInput{
		ProductID: productID,
		Quantity:  3,
	})
	require.NoError(t, err)
}

func TestCartService_AddItem_ProductMissing(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(mockCartRepo, mockProductRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	err := service.AddItem(ctx, userID, &usecase.AddCartItemInput{
		ProductID: productID,
		Quantity:  1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_SetQuantity(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(mockCartRepo, mockProductRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	mockCartRepo.EXPECT().
		FindByUserAndProduct(ctx, userID, productID).
		Return(&entity.CartItem{ID: 4, UserID: userID, ProductID: productID, Quantity: 1}, nil)

	mockCartRepo.EXPECT().
		UpdateQuantity(ctx, uint(4), 7).
		Return(nil)

	err := service.SetQuantity(ctx, userID, productID, 7)
	require.NoError(t, err)
}

func TestCartService_SetQuantity_ZeroRemoves(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(mockCartRepo, mockProductRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	mockCartRepo.EXPECT().
		Delete(ctx, userID, productID).
		Return(nil)

	err := service.SetQuantity(ctx, userID, productID, 0)
	require.NoError(t, err)
}

func TestCartService_RemoveItem_NotFound(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(mockCartRepo, mockProductRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	mockCartRepo.EXPECT().
		Delete(ctx, userID, productID).
		Return(repository.ErrCartItemNotFound)

	err := service.RemoveItem(ctx, userID, productID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_GetCart(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(mockCartRepo, mockProductRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.CartItem{
		{ID: 1, UserID: userID, Quantity: 2, Product: &entity.Product{Name: "Dog Food"}},
	}

	mockCartRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(items, nil)

	got, err := service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}
