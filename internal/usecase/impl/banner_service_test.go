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

func TestBannerService_Create_DefaultsActive(t *testing.T) {
	mockBannerRepo := mockRepo.NewMockBannerRepository(t)

	service := NewBannerService(mockBannerRepo, testLogger())

	ctx := context.Background()

	mockBannerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Banner")).
		Return(nil)

	banner, err := service.Create(ctx, &usecase.CreateBannerInput{
		Title:    "Summer Sale",
		ImageURL: "https://cdn.petmart.dev/summer.png",
	})
	require.NoError(t, err)
	assert.True(t, banner.IsActive)
	assert.Equal(t, "Summer Sale", banner.Title)
}

func TestBannerService_Update_Partial(t *testing.T) {
	mockBannerRepo := mockRepo.NewMockBannerRepository(t)

	service := NewBannerService(mockBannerRepo, testLogger())

	ctx := context.Background()
	inactive := false

	mockBannerRepo.EXPECT().
		FindByID(ctx, uint(5)).
		Return(&entity.Banner{ID: 5, Title: "Summer Sale", IsActive: true}, nil)

	mockBannerRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Banner")).
		RunAndReturn(func(_ context.Context, banner *entity.Banner) error {
			assert.Equal(t, "Summer Sale", banner.Title)
			assert.False(t, banner.IsActive)

			return nil
		})

	banner, err := service.Update(ctx, 5, &usecase.UpdateBannerInput{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, banner.IsActive)
}

func TestBannerService_Update_NotFound(t *testing.T) {
	mockBannerRepo := mockRepo.NewMockBannerRepository(t)

	service := NewBannerService(mockBannerRepo, testLogger())

	ctx := context.Background()

	mockBannerRepo.EXPECT().
		FindByID(ctx, uint(99)).
		Return(nil, repository.ErrBannerNotFound)

	banner, err := service.Update(ctx, 99, &usecase.UpdateBannerInput{})
	require.Error(t, err)
	assert.Nil(t, banner)
	assert.ErrorIs(t, err, domainerrors.ErrBannerNotFound)
}

func TestBannerService_List(t *testing.T) {
	mockBannerRepo := mockRepo.NewMockBannerRepository(t)

	service := NewBannerService(mockBannerRepo, testLogger())

	ctx := context.Background()
	banners := []*entity.Banner{{ID: 1, Title: "Summer Sale", IsActive: true}}

	mockBannerRepo.EXPECT().List(ctx, true).Return(banners, nil)

	got, err := service.List(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, banners, got)
}
