package repository

import (
	"context"
	"errors"

	"petmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFavoriteNotFound is returned when a (user, product) wishlist entry is
// absent.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository defines the persistence operations of the wishlist.
type FavoriteRepository interface {
	// FindByUser returns all wishlist entries for a user with products
	// joined, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)

	// FindByUserAndProduct returns the unique entry for a (user, product)
	// pair, or ErrFavoriteNotFound.
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Favorite, error)

	// Create persists a new wishlist entry.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the entry for a (user, product) pair.
	Delete(ctx context.Context, userID, productID uuid.UUID) error
}
