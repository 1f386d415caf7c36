// Package impl contains the application-specific business rules implementations.
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

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetCart returns the user's cart entries with products joined.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	items, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return items, nil
}

// AddItem merges a product into the cart. An existing (user, product) entry
// has its quantity increased; otherwise a new entry is created.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddCartItemInput) error {
	srv.logger.Debug("Adding item to cart", "userID", userID, "productID", input.ProductID, "quantity", input.Quantity)

	// Stock is advisory: the product must exist, but low stock never
	// rejects the add.
	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to find product")
	}

	existing, err := srv.cartRepo.FindByUserAndProduct(ctx, userID, input.ProductID)
	if err != nil {
		if !errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.Wrap(err, "failed to find cart item")
		}

		item := &entity.CartItem{
			UserID:    userID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
		}
		if err := srv.cartRepo.Create(ctx, item); err != nil {
			return errors.Wrap(err, "failed to create cart item")
		}

		return nil
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, existing.ID, existing.Quantity+input.Quantity); err != nil {
		return errors.Wrap(err, "failed to update cart quantity")
	}

	return nil
}

// SetQuantity overwrites an entry's quantity. Zero or negative removes the
// entry instead.
func (srv *cartService) SetQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	srv.logger.Debug("Setting cart quantity", "userID", userID, "productID", productID, "quantity", quantity)

	if quantity <= 0 {
		return srv.RemoveItem(ctx, userID, productID)
	}

	existing, err := srv.cartRepo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to find cart item")
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, existing.ID, quantity); err != nil {
		return errors.Wrap(err, "failed to update cart quantity")
	}

	return nil
}

// RemoveItem deletes the entry for the given product.
func (srv *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	if err := srv.cartRepo.Delete(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

// Clear removes every entry of the user's cart.
func (srv *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := srv.cartRepo.ClearByUser(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
