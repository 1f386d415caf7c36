package repository

import (
	"context"
	"errors"

	"petmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a referenced user is absent.
var ErrUserNotFound = errors.New("user not found")

// UserListFilter narrows and pages admin user listings.
type UserListFilter struct {
	Search   string // substring match on username, email or phone
	IsActive *bool  // nil means all accounts
	Offset   int
	Limit    int
}

// UserRepository exposes the user lookups the order, aggregation and admin
// listing paths need. Credential storage and end-user authentication live
// outside this core.
type UserRepository interface {
	// FindByID returns a user or ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDs returns the users whose IDs are in ids; missing IDs are
	// silently absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)

	// List returns one page of users plus the total matching count.
	List(ctx context.Context, filter UserListFilter) ([]*entity.User, int64, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)

	// CountByVIPLevel returns the number of users attached to a VIP level.
	CountByVIPLevel(ctx context.Context, vipLevelID uuid.UUID) (int64, error)
}
