package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and validates admin access tokens.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for an admin account.
	GenerateAccessToken(adminID uuid.UUID) (string, error)

	// ValidateToken checks a token string and returns the parsed token.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
