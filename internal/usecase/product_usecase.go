package usecase

import (
	"context"

	"petmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductUsecase defines the read-only catalog surface of the storefront.
// Catalog management (create, update, image upload) lives outside this core.
type ProductUsecase interface {
	// Browse returns one page of products ordered by name, plus the total
	// catalog size.
	Browse(ctx context.Context, offset, limit int) (*ProductPage, error)

	// Get returns a single product.
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}

// --- Output DTOs ---

// ProductPage is one page of products plus the total count.
type ProductPage struct {
	Products []*entity.Product `json:"products"`
	Total    int64             `json:"total"`
}
