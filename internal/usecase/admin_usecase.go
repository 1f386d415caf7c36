package usecase

import (
	"context"

	"petmart/internal/domain/entity"
)

// AdminUsecase defines the interface for operator account operations.
type AdminUsecase interface {
	// Register creates a new admin account with a hashed password.
	Register(ctx context.Context, input *RegisterAdminInput) (*entity.AdminUser, error)

	// Login authenticates by username or email and returns a signed access
	// token. A successful login records last_login.
	Login(ctx context.Context, input *AdminLoginInput) (*AdminLoginOutput, error)
}

// --- Input DTOs ---

// RegisterAdminInput defines the data required to create an admin account.
type RegisterAdminInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Avatar   string `json:"avatar"`
}

// AdminLoginInput defines the login credentials. Identifier matches either
// username or email.
type AdminLoginInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AdminLoginOutput is the successful login result.
type AdminLoginOutput struct {
	AccessToken string            `json:"access_token"`
	Admin       *entity.AdminUser `json:"admin"`
}
