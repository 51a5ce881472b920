package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents an account holder row in the database.
// Users are keyed by email, matched case-insensitively.
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`       // Primary key
	Email        string    `json:"email" db:"email"`           // User email, unique ignoring case
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash, empty for users created by ledger resolution
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
