package impl

import (
	"context"
	"testing"

	"petmart/internal/domain/entity"
	domainerrors "petmart/internal/domain/errors"
	"petmart/internal/domain/repository"
	mockRepo "petmart/internal/mocks/repository"
	"petmart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Create(t *testing.T) {
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

	service := NewCategoryService(mockCategoryRepo, testLogger())

	ctx := context.Background()

	mockCategoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		RunAndReturn(func(_ context.Context, category *entity.Category) error {
			assert.Equal(t, "food", category.Name)
			assert.True(t, category.IsActive)

			return nil
		})

	category, err := service.Create(ctx, &usecase.CreateCategoryInput{Name: "food"})
	require.NoError(t, err)
	assert.Equal(t, "food", category.Name)
}

func TestCategoryService_Update_Partial(t *testing.T) {
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

	service := NewCategoryService(mockCategoryRepo, testLogger())

	ctx := context.Background()
	name := "dry food"

	mockCategoryRepo.EXPECT().
		FindByID(ctx, uint(2)).
		Return(&entity.Category{ID: 2, Name: "food", SortOrder: 3, IsActive: true}, nil)

	mockCategoryRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Category")).
		RunAndReturn(func(_ context.Context, category *entity.Category) error {
			assert.Equal(t, "dry food", category.Name)
			assert.Equal(t, 3, category.SortOrder)

			return nil
		})

	category, err := service.Update(ctx, 2, &usecase.UpdateCategoryInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "dry food", category.Name)
}

func TestCategoryService_Delete_NotFound(t *testing.T) {
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

	service := NewCategoryService(mockCategoryRepo, testLogger())

	ctx := context.Background()

	mockCategoryRepo.EXPECT().
		Delete(ctx, uint(404)).
		Return(repository.ErrCategoryNotFound)

	err := service.Delete(ctx, 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
