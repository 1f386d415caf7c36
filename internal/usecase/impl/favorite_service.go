package impl

import (
	"context"
	"log/slog"

	"petmart/internal/domain/entity"
	domainerrors "petmart/internal/domain/errors"
	"petmart/internal/domain/repository"
	"petmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// List returns the user's wishlist entries with products joined.
func (srv *favoriteService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}

// Add puts a product on the user's wishlist. An already favorited product is
// a no-op that returns the existing entry instead of a Conflict.
func (srv *favoriteService) Add(ctx context.Context, userID uuid.UUID, input *usecase.AddFavoriteInput) (*entity.Favorite, error) {
	srv.logger.Debug("Adding favorite", "userID", userID, "productID", input.ProductID)

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	existing, err := srv.favoriteRepo.FindByUserAndProduct(ctx, userID, input.ProductID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrFavoriteNotFound) {
		return nil, errors.Wrap(err, "failed to find favorite")
	}

	favorite := &entity.Favorite{
		UserID:    userID,
		ProductID: input.ProductID,
	}
	if err := srv.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, errors.Wrap(err, "failed to create favorite")
	}

	return favorite, nil
}

// Remove deletes the entry for the given product.
func (srv *favoriteService) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	if err := srv.favoriteRepo.Delete(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound
		}

		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}
