package postgres

import (
	"context"
	"time"

	"petmart/internal/domain/entity"
	domainerrors "petmart/internal/domain/errors"
	"petmart/internal/domain/repository"
	"petmart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminUserRepository implements the repository.AdminUserRepository interface
// against the operations store.
type adminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository is the constructor for adminUserRepository.
func NewAdminUserRepository(db *gorm.DB) repository.AdminUserRepository {
	return &adminUserRepository{db: db}
}

// FindByEmail returns the account with the given email.
func (repo *adminUserRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	var adminM model.AdminUserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	return toAdminUserDomain(&adminM), nil
}

// FindByIdentifier returns the account whose username or email equals
// identifier. Login accepts either.
func (repo *adminUserRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.AdminUser, error) {
	var adminM model.AdminUserModel

	if err := repo.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by identifier")
	}

	return toAdminUserDomain(&adminM), nil
}

// Create persists a new admin account. Duplicate username or email surfaces
// as ErrAdminEmailExists.
func (repo *adminUserRepository) Create(ctx context.Context, admin *entity.AdminUser) error {
	adminM := fromAdminUserDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAdminEmailExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin user")
	}

	admin.ID = adminM.ID
	admin.CreateTime = adminM.CreateTime

	return nil
}

// UpdateLastLogin records the most recent successful login.
func (repo *adminUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminUserModel{}).
		Where("id = ?", id).
		Update("last_login", at)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update last login")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdminUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAdminUserDomain(data *model.AdminUserModel) *entity.AdminUser {
	if data == nil {
		return nil
	}

	return &entity.AdminUser{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.Password,
		Avatar:       data.Avatar,
		CreateTime:   data.CreateTime,
		LastLogin:    data.LastLogin,
	}
}

func fromAdminUserDomain(data *entity.AdminUser) *model.AdminUserModel {
	if data == nil {
		return nil
	}

	return &model.AdminUserModel{
		ID:         data.ID,
		Username:   data.Username,
		Email:      data.Email,
		Password:   data.PasswordHash,
		Avatar:     data.Avatar,
		CreateTime: data.CreateTime,
		LastLogin:  data.LastLogin,
	}
}
