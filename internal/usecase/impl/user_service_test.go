package impl

import (
	"context"
	"testing"

	"petmart/internal/domain/entity"
	"petmart/internal/domain/repository"
	mockRepo "petmart/internal/mocks/repository"
	"petmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_AdminList_Rollup(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewUserService(mockUserRepo, mockOrderRepo, testLogger())

	ctx := context.Background()
	alice := &entity.User{ID: uuid.New(), Username: "alice"}
	bob := &entity.User{ID: uuid.New(), Username: "bob"}

	mockUserRepo.EXPECT().
		List(ctx, repository.UserListFilter{Offset: 0, Limit: defaultUserPageSize}).
		Return([]*entity.User{alice, bob}, int64(42), nil)

	mockOrderRepo.EXPECT().CountByUser(ctx, alice.ID).Return(int64(3), nil)
	mockOrderRepo.EXPECT().SumTotalAmountByUser(ctx, alice.ID).Return(120.5, nil)
	mockOrderRepo.EXPECT().CountByUser(ctx, bob.ID).Return(int64(0), nil)
	mockOrderRepo.EXPECT().SumTotalAmountByUser(ctx, bob.ID).Return(0.0, nil)

	page, err := service.AdminList(ctx, &usecase.AdminUserListInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(42), page.Total)
	require.Len(t, page.Users, 2)

	assert.Same(t, alice, page.Users[0].User)
	assert.Equal(t, int64(3), page.Users[0].OrderCount)
	assert.Equal(t, 120.5, page.Users[0].TotalSpent)

	assert.Same(t, bob, page.Users[1].User)
	assert.Equal(t, int64(0), page.Users[1].OrderCount)
	assert.Equal(t, 0.0, page.Users[1].TotalSpent)
}

func TestUserService_AdminList_SearchAndStatusFilter(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewUserService(mockUserRepo, mockOrderRepo, testLogger())

	ctx := context.Background()
	inactive := false

	mockUserRepo.EXPECT().
		List(ctx, repository.UserListFilter{
			Search:   "ali",
			IsActive: &inactive,
			Offset:   20,
			Limit:    20,
		}).
		Return(nil, int64(0), nil)

	page, err := service.AdminList(ctx, &usecase.AdminUserListInput{
		Search:   "ali",
		Status:   "inactive",
		Page:     2,
		PageSize: 20,
	})
	require.NoError(t, err)
	assert.Empty(t, page.Users)
	assert.Equal(t, int64(0), page.Total)
}

func TestUserService_AdminList_UnknownStatusMeansAll(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewUserService(mockUserRepo, mockOrderRepo, testLogger())

	ctx := context.Background()

	// A status the surface does not define falls back to no filter.
	mockUserRepo.EXPECT().
		List(ctx, repository.UserListFilter{Offset: 0, Limit: defaultUserPageSize}).
		Return(nil, int64(5), nil)

	page, err := service.AdminList(ctx, &usecase.AdminUserListInput{Status: "frozen"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
}
