package models

import (
	"time"

	"github.com/google/uuid"
)

// WalletDB represents one (user, token) balance pair in the database.
// At most one wallet exists per pair.
type WalletDB struct {
	WalletID  uuid.UUID `json:"wallet_id" db:"wallet_id"`   // Unique wallet identifier
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owning user
	TokenID   uuid.UUID `json:"token_id" db:"token_id"`     // Referenced token
	Balance   int64     `json:"balance" db:"balance"`       // Current balance, never negative
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the wallet was created
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last balance change
}
