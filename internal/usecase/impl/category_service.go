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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	logger *slog.Logger,
) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// List returns all categories ordered by sort order then name.
func (srv *categoryService) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// Create persists a new category. A duplicate name is a Conflict.
func (srv *categoryService) Create(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	srv.logger.Info("Creating category", "name", input.Name)

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	category := &entity.Category{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
		SortOrder:   input.SortOrder,
		IsActive:    active,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// Update applies a partial update to a category.
func (srv *categoryService) Update(ctx context.Context, id uint, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.Icon != nil {
		category.Icon = *input.Icon
	}
	if input.Color != nil {
		category.Color = *input.Color
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

// Delete removes a category.
func (srv *categoryService) Delete(ctx context.Context, id uint) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}
