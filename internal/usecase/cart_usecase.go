// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"petmart/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the interface for cart-related business operations.
type CartUsecase interface {
	// GetCart returns the user's cart entries with their products joined.
	GetCart(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// AddItem merges a product into the cart: an existing entry has its
	// quantity increased, otherwise a new entry is created.
	AddItem(ctx context.Context, userID uuid.UUID, input *AddCartItemInput) error

	// SetQuantity overwrites an entry's quantity; zero or negative removes
	// the entry.
	SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error

	// RemoveItem deletes the entry for the given product.
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error

	// Clear removes every entry of the user's cart.
	Clear(ctx context.Context, userID uuid.UUID) error
}

// --- Input DTOs ---

// AddCartItemInput defines the data required to add a product to the cart.
type AddCartItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}
