package repository

import (
	"context"
	"errors"

	"petmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVIPLevelNotFound is returned when a referenced VIP level is absent.
var ErrVIPLevelNotFound = errors.New("vip level not found")

// VIPLevelRepository defines the persistence operations for VIP levels.
type VIPLevelRepository interface {
	// List returns all levels ordered by ascending rank.
	List(ctx context.Context) ([]*entity.VIPLevel, error)

	// FindByID returns a level or ErrVIPLevelNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VIPLevel, error)

	// FindByName returns the level with the given unique name or
	// ErrVIPLevelNotFound.
	FindByName(ctx context.Context, name string) (*entity.VIPLevel, error)

	// FindByLevel returns the level with the given unique rank or
	// ErrVIPLevelNotFound.
	FindByLevel(ctx context.Context, level int) (*entity.VIPLevel, error)

	// Create persists a new level.
	Create(ctx context.Context, level *entity.VIPLevel) error

	// Update overwrites an existing level.
	Update(ctx context.Context, level *entity.VIPLevel) error

	// Delete removes a level. Callers must reject deletion while members
	// are attached.
	Delete(ctx context.Context, id uuid.UUID) error
}
