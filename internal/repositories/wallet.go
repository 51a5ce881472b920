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

// WalletReadRepository handles wallet read operations.
type WalletReadRepository struct {
	db *sqlx.DB
}

func NewWalletReadRepository(db *sqlx.DB) *WalletReadRepository {
	return &WalletReadRepository{db: db}
}

// GetByUserAndToken returns the wallet for the (user, token) pair,
// or (nil, nil) when the pair has no wallet yet.
func (r *WalletReadRepository) GetByUserAndToken(ctx context.Context, userID, tokenID uuid.UUID) (*models.WalletDB, error) {
	const query = `
		SELECT wallet_id, user_id, token_id, balance, created_at, updated_at
		FROM wallets
		WHERE user_id = $1 AND token_id = $2
	`

	var wallet models.WalletDB
	err := r.db.GetContext(ctx, &wallet, query, userID, tokenID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, tokenID},
		"result", wallet.WalletID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &wallet, nil
}

// SumBalances returns the circulating supply of a token: the sum of the
// balance column over every wallet referencing it. A token with no
// wallets has supply 0.
func (r *WalletReadRepository) SumBalances(ctx context.Context, tokenID uuid.UUID) (int64, error) {
	const query = `
		SELECT COALESCE(SUM(balance), 0)
		FROM wallets
		WHERE token_id = $1
	`

	var supply int64
	err := r.db.GetContext(ctx, &supply, query, tokenID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tokenID},
		"result", supply,
		"error", err,
	)

	return supply, err
}

// WalletWriteRepository handles wallet write operations.
type WalletWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletWriteRepository {
	return &WalletWriteRepository{db: db, txGetter: txGetter}
}

func (r *WalletWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a wallet for the (user, token) pair with the given initial
// balance and returns the stored row. If the pair already has a wallet the
// existing row is returned with its balance untouched.
func (r *WalletWriteRepository) Save(ctx context.Context, userID, tokenID uuid.UUID, initialBalance int64) (*models.WalletDB, error) {
	query := `
		INSERT INTO wallets (wallet_id, user_id, token_id, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, token_id) DO UPDATE
		SET updated_at = wallets.updated_at
		RETURNING wallet_id, user_id, token_id, balance, created_at, updated_at
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &wallet, query, uuid.New(), userID, tokenID, initialBalance)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, tokenID, initialBalance},
		"result", wallet.WalletID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &wallet, nil
}

// AddBalance atomically increases a wallet balance and returns the new
// balance. The increment happens server side, so concurrent additions
// never lose updates.
func (r *WalletWriteRepository) AddBalance(ctx context.Context, walletID uuid.UUID, amount int64) (int64, error) {
	query := `
		UPDATE wallets
		SET balance = balance + $2, updated_at = NOW()
		WHERE wallet_id = $1
		RETURNING balance
	`

	var balance int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, walletID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, amount},
		"result", balance,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return balance, nil
}

// SubtractBalance atomically decreases a wallet balance, guarded so the
// balance never goes negative. Returns the new balance, or sql.ErrNoRows
// when the wallet holds less than the requested amount.
func (r *WalletWriteRepository) SubtractBalance(ctx context.Context, walletID uuid.UUID, amount int64) (int64, error) {
	query := `
		UPDATE wallets
		SET balance = balance - $2, updated_at = NOW()
		WHERE wallet_id = $1 AND balance >= $2
		RETURNING balance
	`

	var balance int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, walletID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, amount},
		"result", balance,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return balance, nil
}
