package handlers

import (
	"context"
	"net/http"

	"github.com/credalabs/loyalty-ledger/internal/jwt"
)

// Tokener extracts and parses the bearer token on protected routes.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}
