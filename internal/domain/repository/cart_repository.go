// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"petmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when a (user, product) cart entry is absent.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the persistence operations of the cart ledger.
type CartRepository interface {
	// FindByUser returns all cart entries for a user with products joined.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// FindByUserAndProduct returns the unique entry for a (user, product)
	// pair, or ErrCartItemNotFound.
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error)

	// Create persists a new cart entry.
	Create(ctx context.Context, item *entity.CartItem) error

	// UpdateQuantity overwrites the quantity of an existing entry.
	UpdateQuantity(ctx context.Context, id uint, quantity int) error

	// Delete removes the entry for a (user, product) pair.
	Delete(ctx context.Context, userID, productID uuid.UUID) error

	// ClearByUser removes every entry of the user's cart.
	ClearByUser(ctx context.Context, userID uuid.UUID) error
}
