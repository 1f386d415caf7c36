package impl

import (
	"context"
	"log/slog"
	"time"

	"petmart/internal/domain/entity"
	domainerrors "petmart/internal/domain/errors"
	"petmart/internal/domain/repository"
	"petmart/internal/domain/service"
	"petmart/internal/usecase"

	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	adminRepo    repository.AdminUserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	adminRepo repository.AdminUserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		adminRepo:    adminRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
		now:          time.Now,
	}
}

// Register creates a new admin account with a hashed password.
func (srv *adminService) Register(ctx context.Context, input *usecase.RegisterAdminInput) (*entity.AdminUser, error) {
	srv.logger.Info("Registering admin account", "username", input.Username)

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	admin := &entity.AdminUser{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Avatar:       input.Avatar,
	}

	if err := srv.adminRepo.Create(ctx, admin); err != nil {
		return nil, errors.Wrap(err, "failed to create admin account")
	}

	return admin, nil
}

// Login authenticates by username or email. Lookup misses and bad passwords
// both map to the same credentials error so the response does not reveal
// which accounts exist.
func (srv *adminService) Login(ctx context.Context, input *usecase.AdminLoginInput) (*usecase.AdminLoginOutput, error) {
	admin, err := srv.adminRepo.FindByIdentifier(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrAdminUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find admin account")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateAccessToken(admin.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	// Best effort: a failed last_login write must not fail the login.
	loginAt := srv.now()
	if err := srv.adminRepo.UpdateLastLogin(ctx, admin.ID, loginAt); err != nil {
		srv.logger.Warn("failed to record last login", "adminID", admin.ID, "error", err)
	} else {
		admin.LastLogin = &loginAt
	}

	srv.logger.Info("Admin logged in", "adminID", admin.ID)

	return &usecase.AdminLoginOutput{
		AccessToken: token,
		Admin:       admin,
	}, nil
}
