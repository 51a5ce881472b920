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

// StatsProvider defines the interface that the service must implement.
type StatsProvider interface {
	TokenStats(ctx context.Context) (*models.TokenStats, error)
}

// StatsErrorResponse represents an error response for token stats
// swagger:model StatsErrorResponse
type StatsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewTokenStatsHandler returns an HTTP handler for the token's market view.
// @Summary Get token statistics
// @Description Recomputes circulating supply, persists it onto the token record and returns supply, price and market cap.
// @Tags ledger
// @Produce json
// @Success 200 {object} models.TokenStats "Token statistics"
// @Failure 401 {object} handlers.StatsErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.StatsErrorResponse "Internal server error"
// @Router /token/stats [get]
// @Security BearerAuth
func NewTokenStatsHandler(svc StatsProvider, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized stats request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(StatsErrorResponse{Error: "Unauthorized"})
			return
		}

		if _, err := tokenGetter.GetClaims(ctx, tokenStr); err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(StatsErrorResponse{Error: "Unauthorized"})
			return
		}

		stats, err := svc.TokenStats(ctx)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotInitialized), errors.Is(err, services.ErrTokenNotFound):
				logger.Log.Errorw("token context unavailable", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(StatsErrorResponse{Error: "Token not configured"})
			default:
				logger.Log.Errorw("failed to get token stats", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(StatsErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(stats)
	}
}
