package repository

import (
	"context"
	"errors"

	"petmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a referenced product is absent.
var ErrProductNotFound = errors.New("product not found")

// CategoryCount is one slice of the category breakdown chart.
type CategoryCount struct {
	Category string
	Count    int64
}

// ProductRepository exposes the catalog operations the cart, order and
// aggregation paths need. Full catalog CRUD lives outside this core.
type ProductRepository interface {
	// FindByID returns a product or ErrProductNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs returns the products whose IDs are in ids; missing IDs are
	// silently absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// List returns a page of products ordered by name.
	List(ctx context.Context, offset, limit int) ([]*entity.Product, error)

	// Count returns the total number of products.
	Count(ctx context.Context) (int64, error)

	// CountByCategory groups products by category name. Products with an
	// empty category are excluded.
	CountByCategory(ctx context.Context) ([]CategoryCount, error)

	// IncrementSales atomically adds delta to the product's sales counter.
	IncrementSales(ctx context.Context, id uuid.UUID, delta int) error
}
