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

// Minter defines the interface that the service must implement.
type Minter interface {
	Mint(ctx context.Context, email string, amount int64) (*services.MintResult, error)
}

// MintRequest represents the JSON body for minting tokens
// swagger:model MintRequest
type MintRequest struct {
	// Recipient email; defaults to the authenticated user
	// default: john@example.com
	Email string `json:"email,omitempty"`

	// Amount to mint; 0 acts as a stats probe
	// required: true
	// default: 100
	Amount int64 `json:"amount"`
}

// MintResponse represents a successful mint response
// swagger:model MintResponse
type MintResponse struct {
	// Success message
	// default: Tokens minted successfully
	Message string `json:"message"`

	// Amount minted
	MintedAmount int64 `json:"minted_amount"`

	// Wallet balance after the mint
	NewBalance int64 `json:"new_balance"`

	// Market view of the token after the mint
	TokenStats *models.TokenStats `json:"token_stats"`
}

// MintErrorResponse represents an error response for mint
// swagger:model MintErrorResponse
type MintErrorResponse struct {
	// Error message
	// default: Invalid amount
	Error string `json:"error"`
}

// NewMintHandler returns an HTTP handler that issues tokens into a wallet.
// @Summary Mint tokens
// @Description Issues tokens into a user's wallet, creating the user and wallet when absent. Refreshes circulating supply and price statistics.
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body handlers.MintRequest true "Mint Request"
// @Success 200 {object} handlers.MintResponse "Tokens minted successfully"
// @Failure 400 {object} handlers.MintErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.MintErrorResponse "Unauthorized"
// @Router /mint [post]
// @Security BearerAuth
func NewMintHandler(svc Minter, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MintErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MintErrorResponse{Error: "Unauthorized"})
			return
		}

		var req MintRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode mint request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MintErrorResponse{Error: "Invalid request body"})
			return
		}

		email := req.Email
		if email == "" {
			email = claims.Email
		}

		res, err := svc.Mint(ctx, email, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MintErrorResponse{Error: "Invalid amount"})
			default:
				logger.Log.Errorw("failed to mint tokens", "email", email, "amount", req.Amount, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MintErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MintResponse{
			Message:      "Tokens minted successfully",
			MintedAmount: res.MintedAmount,
			NewBalance:   res.NewBalance,
			TokenStats:   res.TokenStats,
		})
	}
}
