package repository

import (
	"context"
	"errors"

	"petmart/internal/domain/entity"
)

// ErrBannerNotFound is returned when a referenced banner is absent.
var ErrBannerNotFound = errors.New("banner not found")

// BannerRepository defines the persistence operations for banners in the
// operations store.
type BannerRepository interface {
	// List returns banners ordered by sort order; activeOnly restricts the
	// result to visible banners.
	List(ctx context.Context, activeOnly bool) ([]*entity.Banner, error)

	// FindByID returns a banner or ErrBannerNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Banner, error)

	// Create persists a new banner.
	Create(ctx context.Context, banner *entity.Banner) error

	// Update overwrites an existing banner.
	Update(ctx context.Context, banner *entity.Banner) error

	// Delete removes a banner.
	Delete(ctx context.Context, id uint) error
}
