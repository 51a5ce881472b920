package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserSaveAndGetByEmail(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewUserWriteRepository(db, nil)
	reader := NewUserReadRepository(db)

	// unknown email resolves to nil without error
	user, err := reader.GetByEmail(ctx, "alice@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)

	saved, err := writer.Save(ctx, "Alice@Example.com", "hash1")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", saved.Email)
	assert.Equal(t, "hash1", saved.PasswordHash)

	// lookup is case-insensitive
	user, err = reader.GetByEmail(ctx, "ALICE@EXAMPLE.COM")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, saved.UserID, user.UserID)
}

func TestUserSaveKeepsExistingPasswordHash(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewUserWriteRepository(db, nil)

	first, err := writer.Save(ctx, "alice@example.com", "hash1")
	assert.NoError(t, err)

	// re-saving converges on the stored row and keeps the hash
	second, err := writer.Save(ctx, "alice@example.com", "hash2")
	assert.NoError(t, err)
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, "hash1", second.PasswordHash)
}

func TestUserSaveClaimsLedgerCreatedAccount(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewUserWriteRepository(db, nil)

	// ledger resolution creates the account with no credentials
	created, err := writer.Save(ctx, "bob@example.com", "")
	assert.NoError(t, err)
	assert.Empty(t, created.PasswordHash)

	// registration later fills in the hash
	claimed, err := writer.Save(ctx, "bob@example.com", "hash1")
	assert.NoError(t, err)
	assert.Equal(t, created.UserID, claimed.UserID)
	assert.Equal(t, "hash1", claimed.PasswordHash)
}
