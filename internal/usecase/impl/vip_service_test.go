package impl

import (
	"context"
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

func TestVIPService_List_Rollups(t *testing.T) {
	mockVIPRepo := mockRepo.NewMockVIPLevelRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewVIPService(mockVIPRepo, mockUserRepo, mockOrderRepo, testLogger()).(*vipService)
	service.now = func() time.Time {
		return time.Date(2026, time.August, 20, 14, 0, 0, 0, time.UTC)
	}
	monthStart := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	ctx := context.Background()
	bronzeID := uuid.New()
	goldID := uuid.New()

	mockVIPRepo.EXPECT().
		List(ctx).
		Return([]*entity.VIPLevel{
			{ID: bronzeID, Name: "Bronze", Level: 1},
			{ID: goldID, Name: "Gold", Level: 3},
		}, nil)

	mockUserRepo.EXPECT().CountByVIPLevel(ctx, bronzeID).Return(int64(10), nil)
	mockOrderRepo.EXPECT().SumTotalAmountByVIPLevelSince(ctx, bronzeID, monthStart).Return(99.5, nil)

	mockUserRepo.EXPECT().CountByVIPLevel(ctx, goldID).Return(int64(0), nil)
	mockOrderRepo.EXPECT().SumTotalAmountByVIPLevelSince(ctx, goldID, monthStart).Return(0.0, nil)

	rollups, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, rollups, 2)

	assert.Equal(t, "Bronze", rollups[0].Level.Name)
	assert.Equal(t, int64(10), rollups[0].MemberCount)
	assert.Equal(t, 99.5, rollups[0].MonthlyRevenue)
	assert.Equal(t, int64(0), rollups[1].MemberCount)
	assert.Equal(t, 0.0, rollups[1].MonthlyRevenue)
}

func TestVIPService_Create(t *testing.T) {
	mockVIPRepo := mockRepo.NewMockVIPLevelRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewVIPService(mockVIPRepo, mockUserRepo, mockOrderRepo, testLogger())

	ctx := context.Background()

	mockVIPRepo.EXPECT().FindByName(ctx, "Gold").Return(nil, repository.ErrVIPLevelNotFound)
	mockVIPRepo.EXPECT().FindByLevel(ctx, 3).Return(nil, repository.ErrVIPLevelNotFound)
	mockVIPRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.VIPLevel")).Return(nil)

	level, err := service.Create(ctx, &usecase.CreateVIPLevelInput{
		Name:     "Gold",
		Level:    3,
		Discount: 15,
		Benefits: []string{"free shipping"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Gold", level.Name)
	assert.Equal(t, 3, level.Level)
	assert.Equal(t, []string{"free shipping"}, level.Benefits)
}

func TestVIPService_Create_DuplicateName(t *testing.T) {
	mockVIPRepo := mockRepo.NewMockVIPLevelRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewVIPService(mockVIPRepo, mockUserRepo, mockOrderRepo, testLogger())

	ctx := context.Background()

	mockVIPRepo.EXPECT().
		FindByName(ctx, "Gold").
		Return(&entity.VIPLevel{ID: uuid.New(), Name: "Gold"}, nil)

	level, err := service.Create(ctx, &usecase.CreateVIPLevelInput{Name: "Gold", Level: 3})
	require.Error(t, err)
	assert.Nil(t, level)
	assert.ErrorIs(t, err, domainerrors.ErrVIPNameExists)
}

func TestVIPService_Update_RankConflict(t *testing.T) {
	mockVIPRepo := mockRepo.NewMockVIPLevelRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewVIPService(mockVIPRepo, mockUserRepo, mockOrderRepo, testLogger())

	ctx := context.Background()
	levelID := uuid.New()
	newRank := 2

	mockVIPRepo.EXPECT().
		FindByID(ctx, levelID).
		Return(&entity.VIPLevel{ID: levelID, Name: "Silver", Level: 1}, nil)

	// Another level already holds the requested rank.
	mockVIPRepo.EXPECT().
		FindByLevel(ctx, newRank).
		Return(&entity.VIPLevel{ID: uuid.New(), Name: "Gold", Level: newRank}, nil)

	level, err := service.Update(ctx, levelID, &usecase.UpdateVIPLevelInput{Level: &newRank})
	require.Error(t, err)
	assert.Nil(t, level)
	assert.ErrorIs(t, err, domainerrors.ErrVIPRankExists)
}

func TestVIPService_Delete_WithMembers(t *testing.T) {
	mockVIPRepo := mockRepo.NewMockVIPLevelRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewVIPService(mockVIPRepo, mockUserRepo, mockOrderRepo, testLogger())

	ctx := context.Background()
	levelID := uuid.New()

	mockVIPRepo.EXPECT().
		FindByID(ctx, levelID).
		Return(&entity.VIPLevel{ID: levelID, Name: "Gold"}, nil)

	mockUserRepo.EXPECT().CountByVIPLevel(ctx, levelID).Return(int64(4), nil)

	err := service.Delete(ctx, levelID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVIPLevelInUse)
}

func TestVIPService_Delete(t *testing.T) {
	mockVIPRepo := mockRepo.NewMockVIPLevelRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewVIPService(mockVIPRepo, mockUserRepo, mockOrderRepo, testLogger())

	ctx := context.Background()
	levelID := uuid.New()

	mockVIPRepo.EXPECT().
		FindByID(ctx, levelID).
		Return(&entity.VIPLevel{ID: levelID, Name: "Gold"}, nil)

	mockUserRepo.EXPECT().CountByVIPLevel(ctx, levelID).Return(int64(0), nil)
	mockVIPRepo.EXPECT().Delete(ctx, levelID).Return(nil)

	err := service.Delete(ctx, levelID)
	require.NoError(t, err)
}
