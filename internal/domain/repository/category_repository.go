package repository

import (
	"context"
	"errors"

	"petmart/internal/domain/entity"
)

// ErrCategoryNotFound is returned when a referenced category is absent.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the persistence operations for categories in
// the operations store.
type CategoryRepository interface {
	// List returns all categories ordered by sort order then name.
	List(ctx context.Context) ([]*entity.Category, error)

	// FindByID returns a category or ErrCategoryNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update overwrites an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category.
	Delete(ctx context.Context, id uint) error
}
