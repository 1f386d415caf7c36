package impl

import (
	"context"
	"log/slog"
	"time"

	"petmart/internal/domain/entity"
	domainerrors "petmart/internal/domain/errors"
	"petmart/internal/domain/repository"
	"petmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// vipService implements the VIPUsecase interface.
type vipService struct {
	vipRepo   repository.VIPLevelRepository
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewVIPService is the constructor for vipService.
func NewVIPService(
	vipRepo repository.VIPLevelRepository,
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	logger *slog.Logger,
) usecase.VIPUsecase {
	return &vipService{
		vipRepo:   vipRepo,
		userRepo:  userRepo,
		orderRepo: orderRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// List returns all levels in ascending rank order, each carrying its member
// count and the revenue of members' orders since the first day of the
// current month. The figures are an explicit rollup type; level entities are
// never mutated to carry aggregates.
func (srv *vipService) List(ctx context.Context) ([]*usecase.VIPLevelRollup, error) {
	levels, err := srv.vipRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vip levels")
	}

	now := srv.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	rollups := make([]*usecase.VIPLevelRollup, 0, len(levels))
	for _, level := range levels {
		memberCount, err := srv.userRepo.CountByVIPLevel(ctx, level.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count vip members")
		}

		revenue, err := srv.orderRepo.SumTotalAmountByVIPLevelSince(ctx, level.ID, monthStart)
		if err != nil {
			return nil, errors.Wrap(err, "failed to sum vip revenue")
		}

		rollups = append(rollups, &usecase.VIPLevelRollup{
			Level:          level,
			MemberCount:    memberCount,
			MonthlyRevenue: revenue,
		})
	}

	return rollups, nil
}

// Create persists a new level after checking name and rank uniqueness. The
// database constraints remain the backstop under concurrent creates.
func (srv *vipService) Create(ctx context.Context, input *usecase.CreateVIPLevelInput) (*entity.VIPLevel, error) {
	srv.logger.Info("Creating vip level", "name", input.Name, "level", input.Level)

	if _, err := srv.vipRepo.FindByName(ctx, input.Name); err == nil {
		return nil, domainerrors.ErrVIPNameExists
	} else if !errors.Is(err, repository.ErrVIPLevelNotFound) {
		return nil, errors.Wrap(err, "failed to check vip name")
	}

	if _, err := srv.vipRepo.FindByLevel(ctx, input.Level); err == nil {
		return nil, domainerrors.ErrVIPRankExists
	} else if !errors.Is(err, repository.ErrVIPLevelNotFound) {
		return nil, errors.Wrap(err, "failed to check vip rank")
	}

	level := &entity.VIPLevel{
		Name:     input.Name,
		Level:    input.Level,
		Discount: input.Discount,
		MinSpend: input.MinSpend,
		Color:    input.Color,
		Icon:     input.Icon,
		Benefits: input.Benefits,
	}

	if err := srv.vipRepo.Create(ctx, level); err != nil {
		return nil, errors.Wrap(err, "failed to create vip level")
	}

	return level, nil
}

// Update applies a partial update to a level. A changed name or rank is
// re-checked for uniqueness against other levels.
func (srv *vipService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateVIPLevelInput) (*entity.VIPLevel, error) {
	level, err := srv.vipRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVIPLevelNotFound) {
			return nil, domainerrors.ErrVIPLevelNotFound
		}

		return nil, errors.Wrap(err, "failed to find vip level")
	}

	if input.Name != nil && *input.Name != level.Name {
		other, err := srv.vipRepo.FindByName(ctx, *input.Name)
		if err == nil && other.ID != id {
			return nil, domainerrors.ErrVIPNameExists
		}
		if err != nil && !errors.Is(err, repository.ErrVIPLevelNotFound) {
			return nil, errors.Wrap(err, "failed to check vip name")
		}
		level.Name = *input.Name
	}

	if input.Level != nil && *input.Level != level.Level {
		other, err := srv.vipRepo.FindByLevel(ctx, *input.Level)
		if err == nil && other.ID != id {
			return nil, domainerrors.ErrVIPRankExists
		}
		if err != nil && !errors.Is(err, repository.ErrVIPLevelNotFound) {
			return nil, errors.Wrap(err, "failed to check vip rank")
		}
		level.Level = *input.Level
	}

	if input.Discount != nil {
		level.Discount = *input.Discount
	}
	if input.MinSpend != nil {
		level.MinSpend = *input.MinSpend
	}
	if input.Color != nil {
		level.Color = *input.Color
	}
	if input.Icon != nil {
		level.Icon = *input.Icon
	}
	if input.Benefits != nil {
		level.Benefits = *input.Benefits
	}

	if err := srv.vipRepo.Update(ctx, level); err != nil {
		return nil, errors.Wrap(err, "failed to update vip level")
	}

	return level, nil
}

// Delete removes a level. A level with members attached is rejected with a
// Conflict and stays unchanged; members must be moved off the level first.
func (srv *vipService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.vipRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrVIPLevelNotFound) {
			return domainerrors.ErrVIPLevelNotFound
		}

		return errors.Wrap(err, "failed to find vip level")
	}

	memberCount, err := srv.userRepo.CountByVIPLevel(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to count vip members")
	}
	if memberCount > 0 {
		return domainerrors.ErrVIPLevelInUse
	}

	if err := srv.vipRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete vip level")
	}

	return nil
}
