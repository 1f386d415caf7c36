package impl

import (
	"context"
	"testing"

	"petmart/internal/domain/entity"
	domainerrors "petmart/internal/domain/errors"
	"petmart/internal/domain/repository"
	mockRepo "petmart/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_Browse(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewProductService(mockProductRepo, testLogger())

	ctx := context.Background()
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Cat Tree", Price: 89.9},
		{ID: uuid.New(), Name: "Dog Food", Price: 10.0},
	}

	mockProductRepo.EXPECT().List(ctx, 0, 20).Return(products, nil)
	mockProductRepo.EXPECT().Count(ctx).Return(int64(57), nil)

	page, err := service.Browse(ctx, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, products, page.Products)
	assert.Equal(t, int64(57), page.Total)
}

func TestProductService_Get_NotFound(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)

	service := NewProductService(mockProductRepo, testLogger())

	ctx := context.Background()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	product, err := service.Get(ctx, productID)
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
