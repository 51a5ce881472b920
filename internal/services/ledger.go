package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/credalabs/loyalty-ledger/internal/logger"
	"github.com/credalabs/loyalty-ledger/internal/models"
	"github.com/credalabs/loyalty-ledger/internal/pricing"
)

var (
	// ErrUserNotFound is returned when an operation requires an existing user.
	ErrUserNotFound = errors.New("user not found")
	// ErrWalletNotFound is returned when an operation requires an existing wallet.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrInvalidAmount is returned for non-positive amounts (mint permits exactly 0).
	ErrInvalidAmount = errors.New("amount must be greater than 0")
	// ErrInsufficientBalance is returned when a wallet holds less than the requested amount.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// ActiveTokenProvider resolves the token the ledger operates on.
type ActiveTokenProvider interface {
	ActiveToken(ctx context.Context) (*models.TokenDB, error)
}

// TokenSupplyWriter persists recomputed circulating supply onto a token.
type TokenSupplyWriter interface {
	UpdateCirculatingSupply(ctx context.Context, tokenID uuid.UUID, supply int64) (*models.TokenDB, error)
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error) // Returns (nil, nil) on miss
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, passwordHash string) (*models.UserDB, error)
}

// WalletReader defines read-only operations for wallets.
type WalletReader interface {
	GetByUserAndToken(ctx context.Context, userID, tokenID uuid.UUID) (*models.WalletDB, error) // Returns (nil, nil) on miss
	SumBalances(ctx context.Context, tokenID uuid.UUID) (int64, error)
}

// WalletWriter defines write operations for wallets.
type WalletWriter interface {
	Save(ctx context.Context, userID, tokenID uuid.UUID, initialBalance int64) (*models.WalletDB, error)
	AddBalance(ctx context.Context, walletID uuid.UUID, amount int64) (int64, error)
	SubtractBalance(ctx context.Context, walletID uuid.UUID, amount int64) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MintResult is the outcome of a mint operation.
type MintResult struct {
	User         *models.UserDB     `json:"user"`
	Wallet       *models.WalletDB   `json:"wallet"`
	MintedAmount int64              `json:"minted_amount"`
	NewBalance   int64              `json:"new_balance"`
	TokenStats   *models.TokenStats `json:"token_stats"`
}

// BurnResult is the outcome of a burn operation.
type BurnResult struct {
	User            *models.UserDB     `json:"user"`
	Wallet          *models.WalletDB   `json:"wallet"`
	BurnedAmount    int64              `json:"burned_amount"`
	NewBalance      int64              `json:"new_balance"`
	PreviousBalance int64              `json:"previous_balance"`
	TokenStats      *models.TokenStats `json:"token_stats"`
}

// DistributeResult is the outcome of a transfer between two users.
type DistributeResult struct {
	FromUser       *models.UserDB     `json:"from_user"`
	ToUser         *models.UserDB     `json:"to_user"`
	FromWallet     *models.WalletDB   `json:"from_wallet"`
	ToWallet       *models.WalletDB   `json:"to_wallet"`
	Token          *models.TokenDB    `json:"token"`
	TransferAmount int64              `json:"transfer_amount"`
	FromBalance    int64              `json:"from_balance"`
	ToBalance      int64              `json:"to_balance"`
	TokenStats     *models.TokenStats `json:"token_stats"`
}

// LedgerService is the accounting core: it resolves users and wallets,
// mutates balances through atomic store updates, refreshes the token's
// circulating supply and derives price statistics.
type LedgerService struct {
	tokens       ActiveTokenProvider
	tokenWriter  TokenSupplyWriter
	userReader   UserReader
	userWriter   UserWriter
	walletReader WalletReader
	walletWriter WalletWriter
	kafkaWriter  KafkaWriter
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	tokens ActiveTokenProvider,
	tokenWriter TokenSupplyWriter,
	userReader UserReader,
	userWriter UserWriter,
	walletReader WalletReader,
	walletWriter WalletWriter,
	kafkaWriter KafkaWriter,
) *LedgerService {
	return &LedgerService{
		tokens:       tokens,
		tokenWriter:  tokenWriter,
		userReader:   userReader,
		userWriter:   userWriter,
		walletReader: walletReader,
		walletWriter: walletWriter,
		kafkaWriter:  kafkaWriter,
	}
}

// resolveUser returns the user with the given email, creating it when absent.
func (s *LedgerService) resolveUser(ctx context.Context, email string) (*models.UserDB, error) {
	user, err := s.userReader.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}
	return s.userWriter.Save(ctx, email, "")
}

// resolveWallet returns the wallet for the (user, token) pair, creating
// it with the given initial balance when absent.
func (s *LedgerService) resolveWallet(ctx context.Context, userID, tokenID uuid.UUID, initialBalance int64) (*models.WalletDB, error) {
	wallet, err := s.walletReader.GetByUserAndToken(ctx, userID, tokenID)
	if err != nil {
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}
	return s.walletWriter.Save(ctx, userID, tokenID, initialBalance)
}

// refreshStats recomputes the token's circulating supply, persists it
// onto the token record and derives price and market cap. The persist is
// a documented part of every stats computation so the stored figure
// stays fresh.
func (s *LedgerService) refreshStats(ctx context.Context, token *models.TokenDB) (*models.TokenStats, error) {
	supply, err := s.walletReader.SumBalances(ctx, token.TokenID)
	if err != nil {
		logger.Log.Errorw("failed to sum wallet balances", "tokenID", token.TokenID, "error", err)
		return nil, err
	}

	updated, err := s.tokenWriter.UpdateCirculatingSupply(ctx, token.TokenID, supply)
	if err != nil {
		logger.Log.Errorw("failed to persist circulating supply", "tokenID", token.TokenID, "supply", supply, "error", err)
		return nil, err
	}

	price := pricing.Price(updated.MaxSupply, supply)

	return &models.TokenStats{
		Token:             updated,
		CirculatingSupply: supply,
		MaxSupply:         updated.MaxSupply,
		Price:             price,
		MarketCap:         pricing.MarketCap(price, supply),
	}, nil
}

// publishEvent publishes a ledger event to Kafka. Publishing is best
// effort: failures are logged and never fail the operation.
func (s *LedgerService) publishEvent(ctx context.Context, event models.LedgerEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal ledger event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish ledger event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Ledger event published to Kafka", "event_id", event.EventID, "operation", event.Operation, "amount", event.Amount)
	}
}

// Mint issues tokens into a user's wallet. The user and wallet are
// created when absent. An amount of exactly 0 is permitted and acts as a
// stats probe; negative amounts are rejected. The declared max supply is
// not enforced as a ceiling.
func (s *LedgerService) Mint(ctx context.Context, email string, amount int64) (*MintResult, error) {
	if amount < 0 {
		return nil, ErrInvalidAmount
	}

	token, err := s.tokens.ActiveToken(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.resolveUser(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to resolve user", "email", email, "error", err)
		return nil, err
	}

	wallet, err := s.resolveWallet(ctx, user.UserID, token.TokenID, 0)
	if err != nil {
		logger.Log.Errorw("failed to resolve wallet", "userID", user.UserID, "tokenID", token.TokenID, "error", err)
		return nil, err
	}

	newBalance, err := s.walletWriter.AddBalance(ctx, wallet.WalletID, amount)
	if err != nil {
		logger.Log.Errorw("failed to add balance", "walletID", wallet.WalletID, "amount", amount, "error", err)
		return nil, err
	}
	wallet.Balance = newBalance

	stats, err := s.refreshStats(ctx, token)
	if err != nil {
		return nil, err
	}

	if amount > 0 {
		s.publishEvent(ctx, models.LedgerEvent{
			EventID:   uuid.NewString(),
			Timestamp: time.Now().Unix(),
			Operation: models.OperationMint,
			Token:     token.Symbol,
			ToEmail:   user.Email,
			Amount:    amount,
			Balance:   newBalance,
		})
	}

	return &MintResult{
		User:         user,
		Wallet:       wallet,
		MintedAmount: amount,
		NewBalance:   newBalance,
		TokenStats:   stats,
	}, nil
}

// Burn retires tokens from a user's wallet. Both the user and the wallet
// must already exist, and the wallet must hold at least the requested
// amount. Returns the balance before and after the burn.
func (s *LedgerService) Burn(ctx context.Context, email string, amount int64) (*BurnResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	token, err := s.tokens.ActiveToken(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	wallet, err := s.walletReader.GetByUserAndToken(ctx, user.UserID, token.TokenID)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "userID", user.UserID, "tokenID", token.TokenID, "error", err)
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}

	newBalance, err := s.walletWriter.SubtractBalance(ctx, wallet.WalletID, amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInsufficientBalance
		}
		logger.Log.Errorw("failed to subtract balance", "walletID", wallet.WalletID, "amount", amount, "error", err)
		return nil, err
	}
	previousBalance := newBalance + amount
	wallet.Balance = newBalance

	stats, err := s.refreshStats(ctx, token)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, models.LedgerEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: models.OperationBurn,
		Token:     token.Symbol,
		FromEmail: user.Email,
		Amount:    amount,
		Balance:   newBalance,
	})

	return &BurnResult{
		User:            user,
		Wallet:          wallet,
		BurnedAmount:    amount,
		NewBalance:      newBalance,
		PreviousBalance: previousBalance,
		TokenStats:      stats,
	}, nil
}

// Distribute transfers tokens between two users. The sender and the
// sender's wallet must already exist; the recipient and their wallet are
// created when absent. The debit is guarded, so the pair of updates
// conserves the aggregate sum and circulating supply is unchanged.
func (s *LedgerService) Distribute(ctx context.Context, fromEmail, toEmail string, amount int64) (*DistributeResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	token, err := s.tokens.ActiveToken(ctx)
	if err != nil {
		return nil, err
	}

	fromUser, err := s.userReader.GetByEmail(ctx, fromEmail)
	if err != nil {
		logger.Log.Errorw("failed to get sender", "email", fromEmail, "error", err)
		return nil, err
	}
	if fromUser == nil {
		return nil, ErrUserNotFound
	}

	toUser, err := s.resolveUser(ctx, toEmail)
	if err != nil {
		logger.Log.Errorw("failed to resolve recipient", "email", toEmail, "error", err)
		return nil, err
	}

	fromWallet, err := s.walletReader.GetByUserAndToken(ctx, fromUser.UserID, token.TokenID)
	if err != nil {
		logger.Log.Errorw("failed to get sender wallet", "userID", fromUser.UserID, "tokenID", token.TokenID, "error", err)
		return nil, err
	}
	if fromWallet == nil {
		return nil, ErrWalletNotFound
	}

	toWallet, err := s.resolveWallet(ctx, toUser.UserID, token.TokenID, 0)
	if err != nil {
		logger.Log.Errorw("failed to resolve recipient wallet", "userID", toUser.UserID, "tokenID", token.TokenID, "error", err)
		return nil, err
	}

	fromBalance, err := s.walletWriter.SubtractBalance(ctx, fromWallet.WalletID, amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInsufficientBalance
		}
		logger.Log.Errorw("failed to debit sender", "walletID", fromWallet.WalletID, "amount", amount, "error", err)
		return nil, err
	}
	fromWallet.Balance = fromBalance

	toBalance, err := s.walletWriter.AddBalance(ctx, toWallet.WalletID, amount)
	if err != nil {
		logger.Log.Errorw("failed to credit recipient", "walletID", toWallet.WalletID, "amount", amount, "error", err)
		return nil, err
	}
	toWallet.Balance = toBalance

	stats, err := s.refreshStats(ctx, token)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, models.LedgerEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: models.OperationDistribute,
		Token:     token.Symbol,
		FromEmail: fromUser.Email,
		ToEmail:   toUser.Email,
		Amount:    amount,
		Balance:   fromBalance,
	})

	return &DistributeResult{
		FromUser:       fromUser,
		ToUser:         toUser,
		FromWallet:     fromWallet,
		ToWallet:       toWallet,
		Token:          token,
		TransferAmount: amount,
		FromBalance:    fromBalance,
		ToBalance:      toBalance,
		TokenStats:     stats,
	}, nil
}

// Balance returns the wallet balance of the user with the given email
// for the active token. The user must exist; a user without a wallet for
// the token reports 0, and no wallet is created.
func (s *LedgerService) Balance(ctx context.Context, email string) (int64, error) {
	token, err := s.tokens.ActiveToken(ctx)
	if err != nil {
		return 0, err
	}

	user, err := s.userReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "error", err)
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	wallet, err := s.walletReader.GetByUserAndToken(ctx, user.UserID, token.TokenID)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "userID", user.UserID, "tokenID", token.TokenID, "error", err)
		return 0, err
	}
	if wallet == nil {
		return 0, nil
	}

	return wallet.Balance, nil
}

// TokenStats recomputes and returns the market view of the active token.
// The recomputed circulating supply is persisted onto the token record
// as part of the operation.
func (s *LedgerService) TokenStats(ctx context.Context) (*models.TokenStats, error) {
	token, err := s.tokens.ActiveToken(ctx)
	if err != nil {
		return nil, err
	}
	return s.refreshStats(ctx, token)
}
