package repository

import (
	"context"
	"errors"
	"time"

	"petmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAdminUserNotFound is returned when a referenced admin account is absent.
var ErrAdminUserNotFound = errors.New("admin user not found")

// AdminUserRepository defines the persistence operations for operator
// accounts in the operations store.
type AdminUserRepository interface {
	// FindByEmail returns the account with the given email or
	// ErrAdminUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error)

	// FindByIdentifier returns the account whose username or email equals
	// identifier, or ErrAdminUserNotFound.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.AdminUser, error)

	// Create persists a new admin account.
	Create(ctx context.Context, admin *entity.AdminUser) error

	// UpdateLastLogin records the most recent successful login.
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
