package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is an operator account in the operations store. Passwords are
// stored as bcrypt hashes.
type AdminUser struct {
	ID           uuid.UUID  // The unique identifier for the admin account.
	Username     string     // Unique login name.
	Email        string     // Unique contact email.
	PasswordHash string     // Bcrypt hash of the password.
	Avatar       string     // URL of the admin's avatar image.
	CreateTime   time.Time  // Timestamp of account creation.
	LastLogin    *time.Time // Timestamp of the most recent login, nil if never.
}
