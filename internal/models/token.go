package models

import (
	"time"

	"github.com/google/uuid"
)

// TokenDB represents a loyalty token row in the database
type TokenDB struct {
	TokenID           uuid.UUID `json:"token_id" db:"token_id"`                     // Unique token identifier
	SecretKey         string    `json:"-" db:"secret_key"`                          // Authorization credential, never serialized outward
	Name              string    `json:"name" db:"name"`                             // Display name
	Symbol            string    `json:"symbol" db:"symbol"`                         // Ticker symbol
	MaxSupply         int64     `json:"max_supply" db:"max_supply"`                 // Declared supply ceiling
	CirculatingSupply int64     `json:"circulating_supply" db:"circulating_supply"` // Cached sum of all wallet balances
	CreatedAt         time.Time `json:"created_at" db:"created_at"`                 // Creation timestamp
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`                 // Last update timestamp
}
