package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubTokener struct {
	token       string
	tokenErr    error
	validateErr error
}

func (s *stubTokener) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	return s.token, s.tokenErr
}

func (s *stubTokener) Validate(ctx context.Context, tokenString string) error {
	return s.validateErr
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		tokener        *stubTokener
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "valid token",
			tokener:        &stubTokener{token: "valid"},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "missing token",
			tokener:        &stubTokener{tokenErr: errors.New("authorization header missing")},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			tokener:        &stubTokener{token: "bad", validateErr: errors.New("invalid token")},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(tt.tokener)(next)
			req := httptest.NewRequest(http.MethodGet, "/balance", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
		})
	}
}
