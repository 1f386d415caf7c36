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

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Browse returns one page of the catalog ordered by name.
func (srv *productService) Browse(ctx context.Context, offset, limit int) (*usecase.ProductPage, error) {
	products, err := srv.productRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	total, err := srv.productRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	return &usecase.ProductPage{Products: products, Total: total}, nil
}

// Get returns a single product.
func (srv *productService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
