package postgres

import (
	"context"

	"petmart/internal/domain/entity"
	domainerrors "petmart/internal/domain/errors"
	"petmart/internal/domain/repository"
	"petmart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bannerRepository implements the repository.BannerRepository interface
// against the operations store.
type bannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository is the constructor for bannerRepository.
func NewBannerRepository(db *gorm.DB) repository.BannerRepository {
	return &bannerRepository{db: db}
}

// List returns banners ordered by sort order; activeOnly restricts the
// result to visible banners.
func (repo *bannerRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Banner, error) {
	query := repo.db.WithContext(ctx).Order("sort_order, id")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var bannerModels []*model.BannerModel
	if err := query.Find(&bannerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list banners")
	}

	banners := make([]*entity.Banner, 0, len(bannerModels))
	for _, bannerM := range bannerModels {
		banners = append(banners, toBannerDomain(bannerM))
	}

	return banners, nil
}

// FindByID returns a banner or ErrBannerNotFound.
func (repo *bannerRepository) FindByID(ctx context.Context, id uint) (*entity.Banner, error) {
	var bannerM model.BannerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bannerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBannerNotFound
		}

		return nil, errors.Wrap(err, "failed to find banner by id")
	}

	return toBannerDomain(&bannerM), nil
}

// Create persists a new banner.
func (repo *bannerRepository) Create(ctx context.Context, banner *entity.Banner) error {
	bannerM := fromBannerDomain(banner)

	if err := repo.db.WithContext(ctx).Create(bannerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create banner")
	}

	banner.ID = bannerM.ID
	banner.CreateTime = bannerM.CreateTime

	return nil
}

// Update overwrites an existing banner.
func (repo *bannerRepository) Update(ctx context.Context, banner *entity.Banner) error {
	bannerM := fromBannerDomain(banner)

	result := repo.db.WithContext(ctx).
		Model(&model.BannerModel{}).
		Where("id = ?", banner.ID).
		Select("title", "image_url", "description", "link_url", "sort_order", "is_active").
		Updates(bannerM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update banner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBannerNotFound
	}

	return nil
}

// Delete removes a banner.
func (repo *bannerRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BannerModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete banner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBannerNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBannerDomain(data *model.BannerModel) *entity.Banner {
	if data == nil {
		return nil
	}

	return &entity.Banner{
		ID:          data.ID,
		Title:       data.Title,
		ImageURL:    data.ImageURL,
		Description: data.Description,
		LinkURL:     data.LinkURL,
		SortOrder:   data.SortOrder,
		IsActive:    data.IsActive,
		CreateTime:  data.CreateTime,
	}
}

func fromBannerDomain(data *entity.Banner) *model.BannerModel {
	if data == nil {
		return nil
	}

	return &model.BannerModel{
		ID:          data.ID,
		Title:       data.Title,
		ImageURL:    data.ImageURL,
		Description: data.Description,
		LinkURL:     data.LinkURL,
		SortOrder:   data.SortOrder,
		IsActive:    data.IsActive,
		CreateTime:  data.CreateTime,
	}
}
