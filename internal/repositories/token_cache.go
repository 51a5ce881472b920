package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/credalabs/loyalty-ledger/internal/logger"
	"github.com/credalabs/loyalty-ledger/internal/models"
)

// TokenCacheRepository memoizes token records in Redis, keyed by secret
// key, so the active token is not refetched from Postgres on every
// ledger operation. Entries expire after the configured TTL instead of
// living for the whole process lifetime.
type TokenCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached tokens
}

// NewTokenCacheRepository creates a new repository instance with the given TTL.
func NewTokenCacheRepository(client *redis.Client, expiration time.Duration) *TokenCacheRepository {
	return &TokenCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func tokenCacheKey(secretKey string) string {
	return fmt.Sprintf("token:%s", secretKey)
}

// Get fetches a cached token record for the secret key.
// Returns (nil, nil) on a cache miss.
func (r *TokenCacheRepository) Get(ctx context.Context, secretKey string) (*models.TokenDB, error) {
	key := tokenCacheKey(secretKey)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", nil,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var token models.TokenDB
	if err := json.Unmarshal([]byte(val), &token); err != nil {
		logger.Log.Errorw("failed to decode cached token", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", token.TokenID,
		"error", nil,
	)

	return &token, nil
}

// Set caches a token record under its secret key with expiration.
func (r *TokenCacheRepository) Set(ctx context.Context, secretKey string, token *models.TokenDB) error {
	key := tokenCacheKey(secretKey)

	data, err := json.Marshal(token)
	if err != nil {
		logger.Log.Errorw("failed to encode token for cache", "key", key, "error", err)
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Delete drops the cached token for the secret key, forcing the next
// lookup to refetch from the store.
func (r *TokenCacheRepository) Delete(ctx context.Context, secretKey string) error {
	key := tokenCacheKey(secretKey)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
