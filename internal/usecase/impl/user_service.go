package impl

import (
	"context"
	"log/slog"

	"petmart/internal/domain/repository"
	"petmart/internal/usecase"

	"github.com/pkg/errors"
)

const defaultUserPageSize = 10

// userService implements the UserUsecase interface.
type userService struct {
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// AdminList returns one page of users for the admin surface, each carrying
// its order count and lifetime spend. The figures are an explicit rollup
// type; user entities are never mutated to carry aggregates.
func (srv *userService) AdminList(ctx context.Context, input *usecase.AdminUserListInput) (*usecase.UserPage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = defaultUserPageSize
	}

	filter := repository.UserListFilter{
		Search: input.Search,
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	}
	switch input.Status {
	case "active":
		active := true
		filter.IsActive = &active
	case "inactive":
		active := false
		filter.IsActive = &active
	}

	users, total, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	overviews := make([]*usecase.UserOverview, 0, len(users))
	for _, user := range users {
		orderCount, err := srv.orderRepo.CountByUser(ctx, user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count user orders")
		}

		totalSpent, err := srv.orderRepo.SumTotalAmountByUser(ctx, user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to sum user order amounts")
		}

		overviews = append(overviews, &usecase.UserOverview{
			User:       user,
			OrderCount: orderCount,
			TotalSpent: totalSpent,
		})
	}

	return &usecase.UserPage{Users: overviews, Total: total}, nil
}
