package usecase

import (
	"context"

	"petmart/internal/domain/entity"

	"github.com/google/uuid"
)

// VIPUsecase defines the interface for VIP level management and rollups.
type VIPUsecase interface {
	// List returns all levels ordered by ascending rank, each with its
	// member count and revenue since the first day of the current month.
	List(ctx context.Context) ([]*VIPLevelRollup, error)

	// Create persists a new level. Name and rank are both unique.
	Create(ctx context.Context, input *CreateVIPLevelInput) (*entity.VIPLevel, error)

	// Update applies a partial update to a level.
	Update(ctx context.Context, id uuid.UUID, input *UpdateVIPLevelInput) (*entity.VIPLevel, error)

	// Delete removes a level. A level with members attached is rejected
	// with a Conflict error and left unchanged.
	Delete(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateVIPLevelInput defines the data required to create a VIP level.
type CreateVIPLevelInput struct {
	Name     string   `json:"name" validate:"required"`
	Level    int      `json:"level" validate:"required,gt=0"`
	Discount int      `json:"discount" validate:"gte=0,lte=100"`
	MinSpend float64  `json:"min_spend" validate:"gte=0"`
	Color    string   `json:"color"`
	Icon     string   `json:"icon"`
	Benefits []string `json:"benefits"`
}

// UpdateVIPLevelInput defines a partial VIP level update. Nil fields are
// left unchanged.
type UpdateVIPLevelInput struct {
	Name     *string   `json:"name,omitempty"`
	Level    *int      `json:"level,omitempty"`
	Discount *int      `json:"discount,omitempty"`
	MinSpend *float64  `json:"min_spend,omitempty"`
	Color    *string   `json:"color,omitempty"`
	Icon     *string   `json:"icon,omitempty"`
	Benefits *[]string `json:"benefits,omitempty"`
}

// --- Output DTOs ---

// VIPLevelRollup pairs a level with its aggregate figures. MonthlyRevenue
// covers members' orders since the first day of the current month, any
// status.
type VIPLevelRollup struct {
	Level          *entity.VIPLevel `json:"level"`
	MemberCount    int64            `json:"member_count"`
	MonthlyRevenue float64          `json:"monthly_revenue"`
}
