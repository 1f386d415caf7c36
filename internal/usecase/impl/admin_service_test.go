package impl

import (
	"context"
	"testing"
	"time"

	"petmart/internal/domain/entity"
	domainerrors "petmart/internal/domain/errors"
	"petmart/internal/domain/repository"
	mockRepo "petmart/internal/mocks/repository"
	mockSvc "petmart/internal/mocks/service"
	"petmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminService_Register(t *testing.T) {
	mockAdminRepo := mockRepo.NewMockAdminUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenService := mockSvc.NewMockTokenService(t)

	service := NewAdminService(mockAdminRepo, mockHasher, mockTokenService, testLogger())

	ctx := context.Background()

	mockHasher.EXPECT().Hash("correct horse battery").Return("$2a$10$hash", nil)

	mockAdminRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AdminUser")).
		Return(nil)

	admin, err := service.Register(ctx, &usecase.RegisterAdminInput{
		Username: "root",
		Email:    "root@petmart.dev",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "root", admin.Username)
	assert.Equal(t, "$2a$10$hash", admin.PasswordHash)
}

func TestAdminService_Login(t *testing.T) {
	mockAdminRepo := mockRepo.NewMockAdminUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenService := mockSvc.NewMockTokenService(t)

	service := NewAdminService(mockAdminRepo, mockHasher, mockTokenService, testLogger()).(*adminService)
	loginAt := time.Date(2026, time.August, 20, 8, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return loginAt }

	ctx := context.Background()
	adminID := uuid.New()
	admin := &entity.AdminUser{ID: adminID, Username: "root", PasswordHash: "$2a$10$hash"}

	mockAdminRepo.EXPECT().FindByIdentifier(ctx, "root").Return(admin, nil)
	mockHasher.EXPECT().Check("secret-password", "$2a$10$hash").Return(true)
	mockTokenService.EXPECT().GenerateAccessToken(adminID).Return("signed-token", nil)
	mockAdminRepo.EXPECT().UpdateLastLogin(ctx, adminID, loginAt).Return(nil)

	output, err := service.Login(ctx, &usecase.AdminLoginInput{
		Identifier: "root",
		Password:   "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	require.NotNil(t, output.Admin.LastLogin)
	assert.Equal(t, loginAt, *output.Admin.LastLogin)
}

func TestAdminService_Login_WrongPassword(t *testing.T) {
	mockAdminRepo := mockRepo.NewMockAdminUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenService := mockSvc.NewMockTokenService(t)

	service := NewAdminService(mockAdminRepo, mockHasher, mockTokenService, testLogger())

	ctx := context.Background()
	admin := &entity.AdminUser{ID: uuid.New(), Username: "root", PasswordHash: "$2a$10$hash"}

	mockAdminRepo.EXPECT().FindByIdentifier(ctx, "root").Return(admin, nil)
	mockHasher.EXPECT().Check("wrong", "$2a$10$hash").Return(false)

	output, err := service.Login(ctx, &usecase.AdminLoginInput{Identifier: "root", Password: "wrong"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAdminService_Login_UnknownIdentifier(t *testing.T) {
	mockAdminRepo := mockRepo.NewMockAdminUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenService := mockSvc.NewMockTokenService(t)

	service := NewAdminService(mockAdminRepo, mockHasher, mockTokenService, testLogger())

	ctx := context.Background()

	mockAdminRepo.EXPECT().
		FindByIdentifier(ctx, "nobody@petmart.dev").
		Return(nil, repository.ErrAdminUserNotFound)

	// Lookup misses map to the same error as bad passwords.
	output, err := service.Login(ctx, &usecase.AdminLoginInput{
		Identifier: "nobody@petmart.dev",
		Password:   "whatever",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAdminService_Login_LastLoginWriteFails(t *testing.T) {
	mockAdminRepo := mockRepo.NewMockAdminUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenService := mockSvc.NewMockTokenService(t)

	service := NewAdminService(mockAdminRepo, mockHasher, mockTokenService, testLogger())

	ctx := context.Background()
	adminID := uuid.New()
	admin := &entity.AdminUser{ID: adminID, Username: "root", PasswordHash: "$2a$10$hash"}

	mockAdminRepo.EXPECT().FindByIdentifier(ctx, "root").Return(admin, nil)
	mockHasher.EXPECT().Check("secret-password", "$2a$10$hash").Return(true)
	mockTokenService.EXPECT().GenerateAccessToken(adminID).Return("signed-token", nil)
	mockAdminRepo.EXPECT().
		UpdateLastLogin(ctx, adminID, mock.AnythingOfType("time.Time")).
		Return(assert.AnError)

	// A failed last_login write must not fail the login.
	output, err := service.Login(ctx, &usecase.AdminLoginInput{
		Identifier: "root",
		Password:   "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Nil(t, output.Admin.LastLogin)
}
