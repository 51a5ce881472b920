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

// Distributor defines the interface that the service must implement.
type Distributor interface {
	Distribute(ctx context.Context, fromEmail, toEmail string, amount int64) (*services.DistributeResult, error)
}

// TransferRequest represents the JSON body for transferring tokens
// swagger:model TransferRequest
type TransferRequest struct {
	// Sender email; defaults to the authenticated user
	// default: john@example.com
	FromEmail string `json:"from_email,omitempty"`

	// Recipient email
	// required: true
	// default: jane@example.com
	ToEmail string `json:"to_email"`

	// Amount to transfer, must be positive
	// required: true
	// default: 40
	Amount int64 `json:"amount"`
}

// TransferResponse represents a successful transfer response
// swagger:model TransferResponse
type TransferResponse struct {
	// Success message
	// default: Tokens transferred successfully
	Message string `json:"message"`

	// Amount transferred
	TransferAmount int64 `json:"transfer_amount"`

	// Sender balance after the transfer
	FromBalance int64 `json:"from_balance"`

	// Recipient balance after the transfer
	ToBalance int64 `json:"to_balance"`

	// Market view of the token after the transfer
	TokenStats *models.TokenStats `json:"token_stats"`
}

// TransferErrorResponse represents an error response for transfer
// swagger:model TransferErrorResponse
type TransferErrorResponse struct {
	// Error message
	// default: Insufficient balance
	Error string `json:"error"`
}

// NewTransferHandler returns an HTTP handler that moves tokens between users.
// @Summary Transfer tokens
// @Description Transfers tokens from the sender to the recipient, net zero across both wallets. Creates the recipient and their wallet when absent.
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body handlers.TransferRequest true "Transfer Request"
// @Success 200 {object} handlers.TransferResponse "Tokens transferred successfully"
// @Failure 400 {object} handlers.TransferErrorResponse "Invalid amount or insufficient balance"
// @Failure 401 {object} handlers.TransferErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.TransferErrorResponse "Sender or sender wallet not found"
// @Router /transfer [post]
// @Security BearerAuth
func NewTransferHandler(svc Distributor, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Unauthorized"})
			return
		}

		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode transfer request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.ToEmail == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Recipient email is required"})
			return
		}

		fromEmail := req.FromEmail
		if fromEmail == "" {
			fromEmail = claims.Email
		}

		res, err := svc.Distribute(ctx, fromEmail, req.ToEmail, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Invalid amount"})
			case errors.Is(err, services.ErrInsufficientBalance):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Insufficient balance"})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Sender not found"})
			case errors.Is(err, services.ErrWalletNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Sender wallet not found"})
			default:
				logger.Log.Errorw("failed to transfer tokens", "from", fromEmail, "to", req.ToEmail, "amount", req.Amount, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransferResponse{
			Message:        "Tokens transferred successfully",
			TransferAmount: res.TransferAmount,
			FromBalance:    res.FromBalance,
			ToBalance:      res.ToBalance,
			TokenStats:     res.TokenStats,
		})
	}
}
