package services

import (
	"context"
	"errors"

	"github.com/credalabs/loyalty-ledger/internal/logger"
	"github.com/credalabs/loyalty-ledger/internal/models"
)

var (
	// ErrNotInitialized is returned when the service is used without a configured secret key.
	ErrNotInitialized = errors.New("token provider not initialized: no secret key configured")
	// ErrTokenNotFound is returned when no token record matches the configured secret key.
	ErrTokenNotFound = errors.New("no token matches the configured secret key")
)

// TokenStoreReader fetches token records from the store.
type TokenStoreReader interface {
	GetBySecretKey(ctx context.Context, secretKey string) (*models.TokenDB, error) // Returns (nil, nil) on miss
}

// TokenCache memoizes token records between lookups.
type TokenCache interface {
	Get(ctx context.Context, secretKey string) (*models.TokenDB, error)        // Returns (nil, nil) on miss
	Set(ctx context.Context, secretKey string, token *models.TokenDB) error    // Caches a token record
}

// TokenProvider resolves the active token for the configured secret key.
// The record is memoized in the cache with a TTL, so a lookup hits the
// store only when the cache misses.
type TokenProvider struct {
	secretKey string
	reader    TokenStoreReader
	cache     TokenCache
}

// NewTokenProvider creates a TokenProvider for the given secret key.
func NewTokenProvider(secretKey string, reader TokenStoreReader, cache TokenCache) *TokenProvider {
	return &TokenProvider{
		secretKey: secretKey,
		reader:    reader,
		cache:     cache,
	}
}

// ActiveToken returns the token record owning the configured secret key.
func (p *TokenProvider) ActiveToken(ctx context.Context) (*models.TokenDB, error) {
	if p.secretKey == "" {
		return nil, ErrNotInitialized
	}

	if p.cache != nil {
		token, err := p.cache.Get(ctx, p.secretKey)
		if err != nil {
			logger.Log.Errorw("token cache lookup failed", "error", err)
		}
		if token != nil {
			return token, nil
		}
	}

	token, err := p.reader.GetBySecretKey(ctx, p.secretKey)
	if err != nil {
		logger.Log.Errorw("failed to fetch token by secret key", "error", err)
		return nil, err
	}
	if token == nil {
		return nil, ErrTokenNotFound
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, p.secretKey, token); err != nil {
			logger.Log.Errorw("failed to cache token", "error", err)
		}
	}

	return token, nil
}
