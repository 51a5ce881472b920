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

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, matched
// case-insensitively, or (nil, nil) when no user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, email, password_hash, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", user.UserID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a user with the given email and password hash and returns
// the stored row. A concurrent insert of the same email converges on the
// already stored row instead of failing, so creation races are harmless.
// An existing password hash is never overwritten; a user first created by
// ledger resolution (empty hash) picks up the hash on registration.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash string) (*models.UserDB, error) {
	query := `
		INSERT INTO users (user_id, email, password_hash, created_at, updated_at)
		VALUES ($1, LOWER($2), $3, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE
		SET password_hash = CASE
				WHEN users.password_hash = '' THEN EXCLUDED.password_hash
				ELSE users.password_hash
			END,
		    updated_at = NOW()
		RETURNING user_id, email, password_hash, created_at, updated_at
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor, &user, query, uuid.New(), email, passwordHash)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", user.UserID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}
