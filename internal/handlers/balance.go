package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/credalabs/loyalty-ledger/internal/logger"
	"github.com/credalabs/loyalty-ledger/internal/services"
)

// BalanceProvider defines the interface that the service must implement.
type BalanceProvider interface {
	Balance(ctx context.Context, email string) (int64, error)
}

// BalanceResponse represents a successful response with the user's balance
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Account email
	Email string `json:"email"`

	// Wallet balance for the active token
	Balance int64 `json:"balance"`
}

// BalanceErrorResponse represents an error response when fetching balance
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching a user's balance.
// @Summary Get user balance
// @Description Returns the wallet balance of the authenticated user, or of the user named by the email query parameter. A user without a wallet reports 0.
// @Tags ledger
// @Produce json
// @Param email query string false "Account email, defaults to the authenticated user"
// @Success 200 {object} handlers.BalanceResponse "User balance"
// @Failure 401 {object} handlers.BalanceErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.BalanceErrorResponse "User not found"
// @Failure 500 {object} handlers.BalanceErrorResponse "Internal server error"
// @Router /balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(svc BalanceProvider, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized balance request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Unauthorized"})
			return
		}

		email := r.URL.Query().Get("email")
		if email == "" {
			email = claims.Email
		}

		balance, err := svc.Balance(ctx, email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("failed to get balance", "email", email, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BalanceResponse{
			Email:   email,
			Balance: balance,
		})
	}
}
