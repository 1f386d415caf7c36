package impl

import (
	"context"
	"log/slog"

	"petmart/internal/domain/entity"
	domainerrors "petmart/internal/domain/errors"
	"petmart/internal/domain/repository"
	"petmart/internal/usecase"

	"github.com/pkg/errors"
)

// bannerService implements the BannerUsecase interface.
type bannerService struct {
	bannerRepo repository.BannerRepository
	logger     *slog.Logger
}

// NewBannerService is the constructor for bannerService.
func NewBannerService(
	bannerRepo repository.BannerRepository,
	logger *slog.Logger,
) usecase.BannerUsecase {
	return &bannerService{
		bannerRepo: bannerRepo,
		logger:     logger,
	}
}

// List returns banners ordered by sort order.
func (srv *bannerService) List(ctx context.Context, activeOnly bool) ([]*entity.Banner, error) {
	banners, err := srv.bannerRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list banners")
	}

	return banners, nil
}

// Create persists a new banner.
func (srv *bannerService) Create(ctx context.Context, input *usecase.CreateBannerInput) (*entity.Banner, error) {
	srv.logger.Info("Creating banner", "title", input.Title)

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	banner := &entity.Banner{
		Title:       input.Title,
		ImageURL:    input.ImageURL,
		Description: input.Description,
		LinkURL:     input.LinkURL,
		SortOrder:   input.SortOrder,
		IsActive:    active,
	}

	if err := srv.bannerRepo.Create(ctx, banner); err != nil {
		return nil, errors.Wrap(err, "failed to create banner")
	}

	return banner, nil
}

// Update applies a partial update to a banner.
func (srv *bannerService) Update(ctx context.Context, id uint, input *usecase.UpdateBannerInput) (*entity.Banner, error) {
	banner, err := srv.bannerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBannerNotFound) {
			return nil, domainerrors.ErrBannerNotFound
		}

		return nil, errors.Wrap(err, "failed to find banner")
	}

	if input.Title != nil {
		banner.Title = *input.Title
	}
	if input.ImageURL != nil {
		banner.ImageURL = *input.ImageURL
	}
	if input.Description != nil {
		banner.Description = *input.Description
	}
	if input.LinkURL != nil {
		banner.LinkURL = *input.LinkURL
	}
	if input.SortOrder != nil {
		banner.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}

	if err := srv.bannerRepo.Update(ctx, banner); err != nil {
		return nil, errors.Wrap(err, "failed to update banner")
	}

	return banner, nil
}

// Delete removes a banner.
func (srv *bannerService) Delete(ctx context.Context, id uint) error {
	if err := srv.bannerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBannerNotFound) {
			return domainerrors.ErrBannerNotFound
		}

		return errors.Wrap(err, "failed to delete banner")
	}

	return nil
}
