package usecase

import (
	"context"

	"petmart/internal/domain/entity"
)

// CategoryUsecase defines the interface for category management.
type CategoryUsecase interface {
	// List returns all categories ordered by sort order then name.
	List(ctx context.Context) ([]*entity.Category, error)

	// Create persists a new category. Names are unique.
	Create(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)

	// Update applies a partial update to a category.
	Update(ctx context.Context, id uint, input *UpdateCategoryInput) (*entity.Category, error)

	// Delete removes a category.
	Delete(ctx context.Context, id uint) error
}

// --- Input DTOs ---

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// UpdateCategoryInput defines a partial category update. Nil fields are
// left unchanged.
type UpdateCategoryInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Color       *string `json:"color,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
