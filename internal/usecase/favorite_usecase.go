package usecase

import (
	"context"

	"petmart/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase defines the interface for wishlist operations.
type FavoriteUsecase interface {
	// List returns the user's wishlist entries with products joined.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)

	// Add puts a product on the user's wishlist. Adding an already
	// favorited product is a no-op that returns the existing entry.
	Add(ctx context.Context, userID uuid.UUID, input *AddFavoriteInput) (*entity.Favorite, error)

	// Remove deletes the entry for the given product.
	Remove(ctx context.Context, userID, productID uuid.UUID) error
}

// --- Input DTOs ---

// AddFavoriteInput defines the data required to favorite a product.
type AddFavoriteInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}
