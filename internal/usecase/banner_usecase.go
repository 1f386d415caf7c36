package usecase

import (
	"context"

	"petmart/internal/domain/entity"
)

// BannerUsecase defines the interface for promotional banner management.
type BannerUsecase interface {
	// List returns banners ordered by sort order; activeOnly restricts the
	// result to visible banners.
	List(ctx context.Context, activeOnly bool) ([]*entity.Banner, error)

	// Create persists a new banner.
	Create(ctx context.Context, input *CreateBannerInput) (*entity.Banner, error)

	// Update applies a partial update to a banner.
	Update(ctx context.Context, id uint, input *UpdateBannerInput) (*entity.Banner, error)

	// Delete removes a banner.
	Delete(ctx context.Context, id uint) error
}

// --- Input DTOs ---

// CreateBannerInput defines the data required to create a banner.
type CreateBannerInput struct {
	Title       string `json:"title" validate:"required,max=100"`
	ImageURL    string `json:"image_url" validate:"required"`
	Description string `json:"description"`
	LinkURL     string `json:"link_url"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// UpdateBannerInput defines a partial banner update. Nil fields are left
// unchanged.
type UpdateBannerInput struct {
	Title       *string `json:"title,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Description *string `json:"description,omitempty"`
	LinkURL     *string `json:"link_url,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
