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

// vipLevelRepository implements the repository.VIPLevelRepository interface
// against the storefront store.
type vipLevelRepository struct {
	db *gorm.DB
}

// NewVIPLevelRepository is the constructor for vipLevelRepository.
func NewVIPLevelRepository(db *gorm.DB) repository.VIPLevelRepository {
	return &vipLevelRepository{db: db}
}

// List returns all levels ordered by ascending rank.
func (repo *vipLevelRepository) List(ctx context.Context) ([]*entity.VIPLevel, error) {
	var levelModels []*model.VIPLevelModel

	if err := repo.db.WithContext(ctx).
		Order("level").
		Find(&levelModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vip levels")
	}

	levels := make([]*entity.VIPLevel, 0, len(levelModels))
	for _, levelM := range levelModels {
		levels = append(levels, toVIPLevelDomain(levelM))
	}

	return levels, nil
}

// FindByID returns a level or ErrVIPLevelNotFound.
func (repo *vipLevelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VIPLevel, error) {
	var levelM model.VIPLevelModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&levelM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVIPLevelNotFound
		}

		return nil, errors.Wrap(err, "failed to find vip level by id")
	}

	return toVIPLevelDomain(&levelM), nil
}

// FindByName returns the level with the given unique name.
func (repo *vipLevelRepository) FindByName(ctx context.Context, name string) (*entity.VIPLevel, error) {
	var levelM model.VIPLevelModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&levelM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVIPLevelNotFound
		}

		return nil, errors.Wrap(err, "failed to find vip level by name")
	}

	return toVIPLevelDomain(&levelM), nil
}

// FindByLevel returns the level with the given unique rank.
func (repo *vipLevelRepository) FindByLevel(ctx context.Context, level int) (*entity.VIPLevel, error) {
	var levelM model.VIPLevelModel

	if err := repo.db.WithContext(ctx).
		Where("level = ?", level).
		First(&levelM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVIPLevelNotFound
		}

		return nil, errors.Wrap(err, "failed to find vip level by rank")
	}

	return toVIPLevelDomain(&levelM), nil
}

// Create persists a new level. Duplicate name or rank surfaces as a Conflict.
func (repo *vipLevelRepository) Create(ctx context.Context, level *entity.VIPLevel) error {
	levelM := fromVIPLevelDomain(level)

	if err := repo.db.WithContext(ctx).Create(levelM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrVIPNameExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vip level")
	}

	level.ID = levelM.ID

	return nil
}

// Update overwrites an existing level.
func (repo *vipLevelRepository) Update(ctx context.Context, level *entity.VIPLevel) error {
	levelM := fromVIPLevelDomain(level)

	// Struct-based Updates so the JSON serializer applies to Benefits; Select
	// forces zero values like a 0% discount through.
	result := repo.db.WithContext(ctx).
		Model(&model.VIPLevelModel{}).
		Where("id = ?", level.ID).
		Select("name", "level", "discount", "min_spend", "color", "icon", "benefits").
		Updates(levelM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrVIPNameExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update vip level")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVIPLevelNotFound
	}

	return nil
}

// Delete removes a level. Membership checks happen in the service layer.
func (repo *vipLevelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VIPLevelModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete vip level")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVIPLevelNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toVIPLevelDomain(data *model.VIPLevelModel) *entity.VIPLevel {
	if data == nil {
		return nil
	}

	return &entity.VIPLevel{
		ID:       data.ID,
		Name:     data.Name,
		Level:    data.Level,
		Discount: data.Discount,
		MinSpend: data.MinSpend,
		Color:    data.Color,
		Icon:     data.Icon,
		Benefits: data.Benefits,
	}
}

func fromVIPLevelDomain(data *entity.VIPLevel) *model.VIPLevelModel {
	if data == nil {
		return nil
	}

	return &model.VIPLevelModel{
		ID:       data.ID,
		Name:     data.Name,
		Level:    data.Level,
		Discount: data.Discount,
		MinSpend: data.MinSpend,
		Color:    data.Color,
		Icon:     data.Icon,
		Benefits: data.Benefits,
	}
}
