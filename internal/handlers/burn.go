package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/credalabs/loyalty-ledger/internal/logger"
	"github.com/credalabs/loyalty-ledger/internal/models"
	"github.com/credalabs/loyalty-ledger/internal/services"
)

// Burner defines the interface that the service must implement.
type Burner interface {
	Burn(ctx context.Context, email string, amount int64) (*services.BurnResult, error)
}

// BurnRequest represents the JSON body for burning tokens
// swagger:model BurnRequest
type BurnRequest struct {
	// Account email; defaults to the authenticated user
	// default: john@example.com
	Email string `json:"email,omitempty"`

	// Amount to burn, must be positive
	// required: true
	// default: 50
	Amount int64 `json:"amount"`
}

// BurnResponse represents a successful burn response
// swagger:model BurnResponse
type BurnResponse struct {
	// Success message
	// default: Tokens burned successfully
	Message string `json:"message"`

	// Amount burned
	BurnedAmount int64 `json:"burned_amount"`

	// Wallet balance before the burn
	PreviousBalance int64 `json:"previous_balance"`

	// Wallet balance after the burn
	NewBalance int64 `json:"new_balance"`

	// Market view of the token after the burn
	TokenStats *models.TokenStats `json:"token_stats"`
}

// BurnErrorResponse represents an error response for burn
// swagger:model BurnErrorResponse
type BurnErrorResponse struct {
	// Error message
	// default: Insufficient balance
	Error string `json:"error"`
}

// NewBurnHandler returns an HTTP handler that retires tokens from a wallet.
// @Summary Burn tokens
// @Description Retires tokens from a user's wallet. The user and wallet must exist and hold at least the requested amount.
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body handlers.BurnRequest true "Burn Request"
// @Success 200 {object} handlers.BurnResponse "Tokens burned successfully"
// @Failure 400 {object} handlers.BurnErrorResponse "Invalid amount or insufficient balance"
// @Failure 401 {object} handlers.BurnErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.BurnErrorResponse "User or wallet not found"
// @Router /burn [post]
// @Security BearerAuth
func NewBurnHandler(svc Burner, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BurnErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BurnErrorResponse{Error: "Unauthorized"})
			return
		}

		var req BurnRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode burn request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BurnErrorResponse{Error: "Invalid request body"})
			return
		}

		email := req.Email
		if email == "" {
			email = claims.Email
		}

		res, err := svc.Burn(ctx, email, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(BurnErrorResponse{Error: "Invalid amount"})
			case errors.Is(err, services.ErrInsufficientBalance):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(BurnErrorResponse{Error: "Insufficient balance"})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BurnErrorResponse{Error: "User not found"})
			case errors.Is(err, services.ErrWalletNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BurnErrorResponse{Error: "Wallet not found"})
			default:
				logger.Log.Errorw("failed to burn tokens", "email", email, "amount", req.Amount, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BurnErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BurnResponse{
			Message:         "Tokens burned successfully",
			BurnedAmount:    res.BurnedAmount,
			PreviousBalance: res.PreviousBalance,
			NewBalance:      res.NewBalance,
			TokenStats:      res.TokenStats,
		})
	}
}
