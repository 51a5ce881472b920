package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/credalabs/loyalty-ledger/internal/logger"
	"github.com/credalabs/loyalty-ledger/internal/models"
)

// TokenReadRepository handles token read operations.
type TokenReadRepository struct {
	db *sqlx.DB
}

func NewTokenReadRepository(db *sqlx.DB) *TokenReadRepository {
	return &TokenReadRepository{db: db}
}

// GetBySecretKey returns the token owning the given secret key,
// or (nil, nil) when no token matches.
func (r *TokenReadRepository) GetBySecretKey(ctx context.Context, secretKey string) (*models.TokenDB, error) {
	const query = `
		SELECT token_id, secret_key, name, symbol, max_supply, circulating_supply, created_at, updated_at
		FROM tokens
		WHERE secret_key = $1
	`

	var token models.TokenDB
	err := r.db.GetContext(ctx, &token, query, secretKey)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{"<secret>"},
		"result", token.TokenID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &token, nil
}

// GetByID returns the token with the given id, or (nil, nil) when absent.
func (r *TokenReadRepository) GetByID(ctx context.Context, tokenID uuid.UUID) (*models.TokenDB, error) {
	const query = `
		SELECT token_id, secret_key, name, symbol, max_supply, circulating_supply, created_at, updated_at
		FROM tokens
		WHERE token_id = $1
	`

	var token models.TokenDB
	err := r.db.GetContext(ctx, &token, query, tokenID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tokenID},
		"result", token.TokenID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &token, nil
}

// TokenWriteRepository handles token write operations.
type TokenWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTokenWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TokenWriteRepository {
	return &TokenWriteRepository{db: db, txGetter: txGetter}
}

// UpdateCirculatingSupply persists a freshly computed circulating supply
// onto the token record and returns the updated row.
func (r *TokenWriteRepository) UpdateCirculatingSupply(ctx context.Context, tokenID uuid.UUID, supply int64) (*models.TokenDB, error) {
	query := `
		UPDATE tokens
		SET circulating_supply = $2, updated_at = NOW()
		WHERE token_id = $1
		RETURNING token_id, secret_key, name, symbol, max_supply, circulating_supply, created_at, updated_at
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var token models.TokenDB
	err := sqlx.GetContext(ctx, executor, &token, query, tokenID, supply)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tokenID, supply},
		"result", token.CirculatingSupply,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &token, nil
}
