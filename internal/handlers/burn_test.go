package handlers

import (
	"bytes"
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

func TestBurnHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := &models.TokenStats{
		Token:             &models.TokenDB{TokenID: uuid.New(), Symbol: "CRD", MaxSupply: 1_000_000},
		CirculatingSupply: 50,
		MaxSupply:         1_000_000,
		Price:             1000.0,
		MarketCap:         50000.0,
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(svc *MockBurner, tok *MockTokener)
		expectedStatus int
		expectedError  string
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name:        "success",
			requestBody: BurnRequest{Email: "john@example.com", Amount: 50},
			setupMocks: func(svc *MockBurner, tok *MockTokener) {
				expectAuthorized(tok, "john@example.com")
				svc.EXPECT().
					Burn(gomock.Any(), "john@example.com", int64(50)).
					Return(&services.BurnResult{
						BurnedAmount:    50,
						PreviousBalance: 100,
						NewBalance:      50,
						TokenStats:      stats,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp BurnResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, int64(50), resp.BurnedAmount)
				assert.Equal(t, int64(100), resp.PreviousBalance)
				assert.Equal(t, int64(50), resp.NewBalance)
				assert.Equal(t, int64(50), resp.TokenStats.CirculatingSupply)
			},
		},
		{
			name:        "insufficient balance",
			requestBody: BurnRequest{Email: "john@example.com", Amount: 500},
			setupMocks: func(svc *MockBurner, tok *MockTokener) {
				expectAuthorized(tok, "john@example.com")
				svc.EXPECT().
					Burn(gomock.Any(), "john@example.com", int64(500)).
					Return(nil, services.ErrInsufficientBalance)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Insufficient balance",
		},
		{
			name:        "zero amount",
			requestBody: BurnRequest{Email: "john@example.com", Amount: 0},
			setupMocks: func(svc *MockBurner, tok *MockTokener) {
				expectAuthorized(tok, "john@example.com")
				svc.EXPECT().
					Burn(gomock.Any(), "john@example.com", int64(0)).
					Return(nil, services.ErrInvalidAmount)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid amount",
		},
		{
			name:        "unknown user",
			requestBody: BurnRequest{Email: "ghost@example.com", Amount: 10},
			setupMocks: func(svc *MockBurner, tok *MockTokener) {
				expectAuthorized(tok, "john@example.com")
				svc.EXPECT().
					Burn(gomock.Any(), "ghost@example.com", int64(10)).
					Return(nil, services.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "User not found",
		},
		{
			name:        "user without wallet",
			requestBody: BurnRequest{Email: "john@example.com", Amount: 10},
			setupMocks: func(svc *MockBurner, tok *MockTokener) {
				expectAuthorized(tok, "john@example.com")
				svc.EXPECT().
					Burn(gomock.Any(), "john@example.com", int64(10)).
					Return(nil, services.ErrWalletNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Wallet not found",
		},
		{
			name:        "unauthorized",
			requestBody: BurnRequest{Amount: 10},
			setupMocks: func(svc *MockBurner, tok *MockTokener) {
				expectUnauthorized(tok)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockBurner(ctrl)
			tok := NewMockTokener(ctrl)
			tt.setupMocks(svc, tok)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/burn", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			NewBurnHandler(svc, tok)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp["error"])
			}
			if tt.checkBody != nil {
				tt.checkBody(t, rec.Body.Bytes())
			}
		})
	}
}
