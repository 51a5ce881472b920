package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/credalabs/loyalty-ledger/internal/models"
	"github.com/credalabs/loyalty-ledger/internal/services"
)

func TestTokenStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		setupMocks     func(svc *MockStatsProvider, tok *MockTokener)
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name: "success",
			setupMocks: func(svc *MockStatsProvider, tok *MockTokener) {
				expectAuthorized(tok, "john@example.com")
				svc.EXPECT().
					TokenStats(gomock.Any()).
					Return(&models.TokenStats{
						Token:             &models.TokenDB{TokenID: uuid.New(), Symbol: "CRD", MaxSupply: 1_000_000},
						CirculatingSupply: 100,
						MaxSupply:         1_000_000,
						Price:             500.0,
						MarketCap:         50000.0,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp models.TokenStats
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.NotNil(t, resp.Token)
				assert.Equal(t, "CRD", resp.Token.Symbol)
				assert.Equal(t, int64(100), resp.CirculatingSupply)
				assert.Equal(t, 500.0, resp.Price)
				assert.Equal(t, 50000.0, resp.MarketCap)
			},
		},
		{
			name: "token not configured",
			setupMocks: func(svc *MockStatsProvider, tok *MockTokener) {
				expectAuthorized(tok, "john@example.com")
				svc.EXPECT().
					TokenStats(gomock.Any()).
					Return(nil, services.ErrNotInitialized)
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body []byte) {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "Token not configured", resp["error"])
			},
		},
		{
			name: "unauthorized",
			setupMocks: func(svc *MockStatsProvider, tok *MockTokener) {
				expectUnauthorized(tok)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "internal error",
			setupMocks: func(svc *MockStatsProvider, tok *MockTokener) {
				expectAuthorized(tok, "john@example.com")
				svc.EXPECT().
					TokenStats(gomock.Any()).
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockStatsProvider(ctrl)
			tok := NewMockTokener(ctrl)
			tt.setupMocks(svc, tok)

			req := httptest.NewRequest(http.MethodGet, "/token/stats", nil)
			rec := httptest.NewRecorder()

			NewTokenStatsHandler(svc, tok)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rec.Body.Bytes())
			}
		})
	}
}
