package postgres

import (
	"context"

	"petmart/internal/domain/entity"
	domainerrors "petmart/internal/domain/errors"
	"petmart/internal/domain/repository"
	"petmart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface
// against the storefront store.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// FindByUser returns all wishlist entries for a user with products joined.
func (repo *favoriteRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("create_time DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// FindByUserAndProduct returns the unique entry for a (user, product) pair.
func (repo *favoriteRepository) FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Favorite, error) {
	var favoriteM model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// Create persists a new wishlist entry.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("favorite already exists for this product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreateTime = favoriteM.CreateTime

	return nil
}

// Delete removes the entry for a (user, product) pair.
func (repo *favoriteRepository) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		ID:         data.ID,
		UserID:     data.UserID,
		ProductID:  data.ProductID,
		CreateTime: data.CreateTime,
		Product:    toProductDomain(data.Product),
	}
}

func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
	}
}
