// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront customer account. Credential handling lives outside
// this core; the entity exists for order ownership and VIP membership.
type User struct {
	ID           uuid.UUID  // The unique identifier for the user.
	Username     string     // Unique display/login name.
	Email        string     // Unique contact email.
	Phone        string     // Optional contact phone number.
	Avatar       string     // URL of the user's avatar image.
	Role         string     // Role within the storefront, e.g. "user".
	IsActive     bool       // Whether the account is enabled.
	VIPLevelID   *uuid.UUID // Nullable reference to the user's VIP level.
	RegisterTime time.Time  // Timestamp of account creation.
}
