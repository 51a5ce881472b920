package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/credalabs/loyalty-ledger/internal/models"
)

func TestTokenCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewTokenCacheRepository(rdb, 2*time.Second)

	token := &models.TokenDB{
		TokenID:           uuid.New(),
		SecretKey:         "sk-test",
		Name:              "Creda Points",
		Symbol:            "CRD",
		MaxSupply:         1_000_000,
		CirculatingSupply: 100,
	}

	t.Run("Set and Get token", func(t *testing.T) {
		err := repo.Set(ctx, "sk-test", token)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, "sk-test")
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, token.TokenID, got.TokenID)
		assert.Equal(t, token.Symbol, got.Symbol)
		assert.Equal(t, token.CirculatingSupply, got.CirculatingSupply)
	})

	t.Run("Get missing key returns nil", func(t *testing.T) {
		got, err := repo.Get(ctx, "sk-unknown")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Delete drops the cached token", func(t *testing.T) {
		err := repo.Set(ctx, "sk-drop", token)
		assert.NoError(t, err)

		err = repo.Delete(ctx, "sk-drop")
		assert.NoError(t, err)

		got, err := repo.Get(ctx, "sk-drop")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Cached token expires", func(t *testing.T) {
		err := repo.Set(ctx, "sk-expire", token)
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx, "sk-expire")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
