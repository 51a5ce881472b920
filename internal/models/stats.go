package models

// TokenStats is the composite market view of a token: the token record
// with its freshly recomputed circulating supply, plus the derived unit
// price and market capitalization.
type TokenStats struct {
	Token             *TokenDB `json:"token"`              // Token record after the supply refresh
	CirculatingSupply int64    `json:"circulating_supply"` // Sum of all wallet balances for the token
	MaxSupply         int64    `json:"max_supply"`         // Declared supply ceiling
	Price             float64  `json:"price"`              // Unit price, 6 fractional digits
	MarketCap         float64  `json:"market_cap"`         // Price * circulating supply, 2 fractional digits
}
