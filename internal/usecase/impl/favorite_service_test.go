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

func TestFavoriteService_Add_NewEntry(t *testing.T) {
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewFavoriteService(mockFavoriteRepo, mockProductRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Name: "Cat Tree"}, nil)

	mockFavoriteRepo.EXPECT().
		FindByUserAndProduct(ctx, userID, productID).
		Return(nil, repository.ErrFavoriteNotFound)

	mockFavoriteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Favorite")).
		Run(func(ctx context.Context, favorite *entity.Favorite) {
			favorite.ID = 7
		}).
		Return(nil)

	favorite, err := service.Add(ctx, userID, &usecase.AddFavoriteInput{ProductID: productID})
	require.NoError(t, err)
	assert.Equal(t, uint(7), favorite.ID)
	assert.Equal(t, userID, favorite.UserID)
	assert.Equal(t, productID, favorite.ProductID)
}

func TestFavoriteService_Add_AlreadyFavorited(t *testing.T) {
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewFavoriteService(mockFavoriteRepo, mockProductRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	existing := &entity.Favorite{ID: 3, UserID: userID, ProductID: productID}

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)

	mockFavoriteRepo.EXPECT().
		FindByUserAndProduct(ctx, userID, productID).
		Return(existing, nil)

	// Re-favoriting returns the existing entry; no create happens.
	favorite, err := service.Add(ctx, userID, &usecase.AddFavoriteInput{ProductID: productID})
	require.NoError(t, err)
	assert.Same(t, existing, favorite)
	mockFavoriteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFavoriteService_Add_ProductMissing(t *testing.T) {
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewFavoriteService(mockFavoriteRepo, mockProductRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	favorite, err := service.Add(ctx, userID, &usecase.AddFavoriteInput{ProductID: productID})
	require.Error(t, err)
	assert.Nil(t, favorite)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestFavoriteService_List(t *testing.T) {
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewFavoriteService(mockFavoriteRepo, mockProductRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	favorites := []*entity.Favorite{
		{ID: 1, UserID: userID, Product: &entity.Product{Name: "Dog Food"}},
		{ID: 2, UserID: userID, Product: &entity.Product{Name: "Catnip"}},
	}

	mockFavoriteRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(favorites, nil)

	got, err := service.List(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, favorites, got)
}

func TestFavoriteService_Remove_NotFound(t *testing.T) {
	mockFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewFavoriteService(mockFavoriteRepo, mockProductRepo, testLogger())

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	mockFavoriteRepo.EXPECT().
		Delete(ctx, userID, productID).
		Return(repository.ErrFavoriteNotFound)

	err := service.Remove(ctx, userID, productID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
}
