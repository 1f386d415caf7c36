package usecase

import (
	"context"

	"petmart/internal/domain/entity"
)

// UserUsecase defines the admin-facing read surface over storefront users.
// Account creation and end-user authentication live outside this core.
type UserUsecase interface {
	// AdminList returns one page of users, each carrying its order rollup.
	AdminList(ctx context.Context, input *AdminUserListInput) (*UserPage, error)
}

// --- Input DTOs ---

// AdminUserListInput narrows and pages the admin user listing. Status is
// "active", "inactive" or empty for all accounts.
type AdminUserListInput struct {
	Search   string `json:"search"`
	Status   string `json:"status"`
	Page     int    `json:"page" validate:"gte=0"`
	PageSize int    `json:"page_size" validate:"gte=0,lte=100"`
}

// --- Output DTOs ---

// UserOverview pairs a user with its order rollup. The figures cover the
// user's orders in any status.
type UserOverview struct {
	User       *entity.User `json:"user"`
	OrderCount int64        `json:"order_count"`
	TotalSpent float64      `json:"total_spent"`
}

// UserPage is one page of user overviews plus the total matching count.
type UserPage struct {
	Users []*UserOverview `json:"users"`
	Total int64           `json:"total"`
}
