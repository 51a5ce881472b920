package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/credalabs/loyalty-ledger/internal/models"
)

func newTestToken() *models.TokenDB {
	return &models.TokenDB{
		TokenID:   uuid.New(),
		Name:      "Creda Points",
		Symbol:    "CRD",
		MaxSupply: 1_000_000,
	}
}

type ledgerMocks struct {
	tokens       *MockActiveTokenProvider
	tokenWriter  *MockTokenSupplyWriter
	userReader   *MockUserReader
	userWriter   *MockUserWriter
	walletReader *MockWalletReader
	walletWriter *MockWalletWriter
	kafka        *MockKafkaWriter
}

func newLedgerService(ctrl *gomock.Controller) (*LedgerService, ledgerMocks) {
	m := ledgerMocks{
		tokens:       NewMockActiveTokenProvider(ctrl),
		tokenWriter:  NewMockTokenSupplyWriter(ctrl),
		userReader:   NewMockUserReader(ctrl),
		userWriter:   NewMockUserWriter(ctrl),
		walletReader: NewMockWalletReader(ctrl),
		walletWriter: NewMockWalletWriter(ctrl),
		kafka:        NewMockKafkaWriter(ctrl),
	}
	svc := NewLedgerService(m.tokens, m.tokenWriter, m.userReader, m.userWriter, m.walletReader, m.walletWriter, m.kafka)
	return svc, m
}

// expectStats wires the supply recomputation that every operation ends with.
func expectStats(m ledgerMocks, token *models.TokenDB, supply int64) {
	updated := *token
	updated.CirculatingSupply = supply
	m.walletReader.EXPECT().SumBalances(gomock.Any(), token.TokenID).Return(supply, nil)
	m.tokenWriter.EXPECT().UpdateCirculatingSupply(gomock.Any(), token.TokenID, supply).Return(&updated, nil)
}

func TestLedgerService_Mint_NewUserAndWallet(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLedgerService(ctrl)

	token := newTestToken()
	user := &models.UserDB{UserID: uuid.New(), Email: "alice@example.com"}
	wallet := &models.WalletDB{WalletID: uuid.New(), UserID: user.UserID, TokenID: token.TokenID, Balance: 0}

	m.tokens.EXPECT().ActiveToken(ctx).Return(token, nil)
	m.userReader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(nil, nil)
	m.userWriter.EXPECT().Save(ctx, "alice@example.com", "").Return(user, nil)
	m.walletReader.EXPECT().GetByUserAndToken(ctx, user.UserID, token.TokenID).Return(nil, nil)
	m.walletWriter.EXPECT().Save(ctx, user.UserID, token.TokenID, int64(0)).Return(wallet, nil)
	m.walletWriter.EXPECT().AddBalance(ctx, wallet.WalletID, int64(100)).Return(int64(100), nil)
	expectStats(m, token, 100)
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Mint(ctx, "alice@example.com", 100)

	assert.NoError(t, err)
	assert.Equal(t, int64(100), res.MintedAmount)
	assert.Equal(t, int64(100), res.NewBalance)
	assert.Equal(t, int64(100), res.Wallet.Balance)
	assert.Equal(t, int64(100), res.TokenStats.CirculatingSupply)
	// 0.05 * 1_000_000 / 100
	assert.Equal(t, 500.0, res.TokenStats.Price)
	assert.Equal(t, 50000.0, res.TokenStats.MarketCap)
}

func TestLedgerService_Mint_ZeroAmountIsStatsProbe(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLedgerService(ctrl)

	token := newTestToken()
	user := &models.UserDB{UserID: uuid.New(), Email: "alice@example.com"}
	wallet := &models.WalletDB{WalletID: uuid.New(), UserID: user.UserID, TokenID: token.TokenID, Balance: 42}

	m.tokens.EXPECT().ActiveToken(ctx).Return(token, nil)
	m.userReader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(user, nil)
	m.walletReader.EXPECT().GetByUserAndToken(ctx, user.UserID, token.TokenID).Return(wallet, nil)
	m.walletWriter.EXPECT().AddBalance(ctx, wallet.WalletID, int64(0)).Return(int64(42), nil)
	expectStats(m, token, 42)
	// no Kafka event for the zero probe

	res, err := svc.Mint(ctx, "alice@example.com", 0)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), res.MintedAmount)
	assert.Equal(t, int64(42), res.NewBalance)
}

func TestLedgerService_Mint_NegativeAmount(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newLedgerService(ctrl)

	res, err := svc.Mint(ctx, "alice@example.com", -1)
	assert.Nil(t, res)
	assert.Equal(t, ErrInvalidAmount, err)
}

func TestLedgerService_Burn(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLedgerService(ctrl)

	token := newTestToken()
	user := &models.UserDB{UserID: uuid.New(), Email: "alice@example.com"}
	wallet := &models.WalletDB{WalletID: uuid.New(), UserID: user.UserID, TokenID: token.TokenID, Balance: 50}

	m.tokens.EXPECT().ActiveToken(ctx).Return(token, nil)
	m.userReader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(user, nil)
	m.walletReader.EXPECT().GetByUserAndToken(ctx, user.UserID, token.TokenID).Return(wallet, nil)
	m.walletWriter.EXPECT().SubtractBalance(ctx, wallet.WalletID, int64(50)).Return(int64(0), nil)
	expectStats(m, token, 0)
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Burn(ctx, "alice@example.com", 50)

	assert.NoError(t, err)
	assert.Equal(t, int64(50), res.BurnedAmount)
	assert.Equal(t, int64(0), res.NewBalance)
	assert.Equal(t, int64(50), res.PreviousBalance)
	// with nothing left in circulation the model quotes the base price
	assert.Equal(t, 0.05, res.TokenStats.Price)
}

func TestLedgerService_Burn_Insufficient(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLedgerService(ctrl)

	token := newTestToken()
	user := &models.UserDB{UserID: uuid.New(), Email: "alice@example.com"}
	wallet := &models.WalletDB{WalletID: uuid.New(), UserID: user.UserID, TokenID: token.TokenID, Balance: 0}

	m.tokens.EXPECT().ActiveToken(ctx).Return(token, nil)
	m.userReader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(user, nil)
	m.walletReader.EXPECT().GetByUserAndToken(ctx, user.UserID, token.TokenID).Return(wallet, nil)
	m.walletWriter.EXPECT().SubtractBalance(ctx, wallet.WalletID, int64(1)).Return(int64(0), sql.ErrNoRows)

	res, err := svc.Burn(ctx, "alice@example.com", 1)
	assert.Nil(t, res)
	assert.Equal(t, ErrInsufficientBalance, err)
}

func TestLedgerService_Burn_Errors(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLedgerService(ctrl)
	token := newTestToken()

	// non-positive amounts
	_, err := svc.Burn(ctx, "alice@example.com", 0)
	assert.Equal(t, ErrInvalidAmount, err)
	_, err = svc.Burn(ctx, "alice@example.com", -5)
	assert.Equal(t, ErrInvalidAmount, err)

	// unknown user
	m.tokens.EXPECT().ActiveToken(ctx).Return(token, nil)
	m.userReader.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, nil)
	_, err = svc.Burn(ctx, "ghost@example.com", 10)
	assert.Equal(t, ErrUserNotFound, err)

	// user without a wallet
	user := &models.UserDB{UserID: uuid.New(), Email: "alice@example.com"}
	m.tokens.EXPECT().ActiveToken(ctx).Return(token, nil)
	m.userReader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(user, nil)
	m.walletReader.EXPECT().GetByUserAndToken(ctx, user.UserID, token.TokenID).Return(nil, nil)
	_, err = svc.Burn(ctx, "alice@example.com", 10)
	assert.Equal(t, ErrWalletNotFound, err)
}

func TestLedgerService_Distribute_Conservation(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLedgerService(ctrl)

	token := newTestToken()
	alice := &models.UserDB{UserID: uuid.New(), Email: "alice@example.com"}
	bob := &models.UserDB{UserID: uuid.New(), Email: "bob@example.com"}
	aliceWallet := &models.WalletDB{WalletID: uuid.New(), UserID: alice.UserID, TokenID: token.TokenID, Balance: 100}
	bobWallet := &models.WalletDB{WalletID: uuid.New(), UserID: bob.UserID, TokenID: token.TokenID, Balance: 0}

	m.tokens.EXPECT().ActiveToken(ctx).Return(token, nil)
	m.userReader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(alice, nil)
	m.userReader.EXPECT().GetByEmail(ctx, "bob@example.com").Return(nil, nil)
	m.userWriter.EXPECT().Save(ctx, "bob@example.com", "").Return(bob, nil)
	m.walletReader.EXPECT().GetByUserAndToken(ctx, alice.UserID, token.TokenID).Return(aliceWallet, nil)
	m.walletReader.EXPECT().GetByUserAndToken(ctx, bob.UserID, token.TokenID).Return(nil, nil)
	m.walletWriter.EXPECT().Save(ctx, bob.UserID, token.TokenID, int64(0)).Return(bobWallet, nil)
	m.walletWriter.EXPECT().SubtractBalance(ctx, aliceWallet.WalletID, int64(40)).Return(int64(60), nil)
	m.walletWriter.EXPECT().AddBalance(ctx, bobWallet.WalletID, int64(40)).Return(int64(40), nil)
	expectStats(m, token, 100) // supply is invariant under transfer
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Distribute(ctx, "alice@example.com", "bob@example.com", 40)

	assert.NoError(t, err)
	assert.Equal(t, int64(60), res.FromBalance)
	assert.Equal(t, int64(40), res.ToBalance)
	assert.Equal(t, int64(100), res.FromBalance+res.ToBalance)
	assert.Equal(t, int64(100), res.TokenStats.CirculatingSupply)
}

func TestLedgerService_Distribute_Errors(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLedgerService(ctrl)
	token := newTestToken()

	// non-positive amount
	_, err := svc.Distribute(ctx, "a@x.com", "b@x.com", 0)
	assert.Equal(t, ErrInvalidAmount, err)

	// unknown sender
	m.tokens.EXPECT().ActiveToken(ctx).Return(token, nil)
	m.userReader.EXPECT().GetByEmail(ctx, "ghost@x.com").Return(nil, nil)
	_, err = svc.Distribute(ctx, "ghost@x.com", "b@x.com", 10)
	assert.Equal(t, ErrUserNotFound, err)

	// sender without a wallet
	alice := &models.UserDB{UserID: uuid.New(), Email: "a@x.com"}
	bob := &models.UserDB{UserID: uuid.New(), Email: "b@x.com"}
	m.tokens.EXPECT().ActiveToken(ctx).Return(token, nil)
	m.userReader.EXPECT().GetByEmail(ctx, "a@x.com").Return(alice, nil)
	m.userReader.EXPECT().GetByEmail(ctx, "b@x.com").Return(bob, nil)
	m.walletReader.EXPECT().GetByUserAndToken(ctx, alice.UserID, token.TokenID).Return(nil, nil)
	_, err = svc.Distribute(ctx, "a@x.com", "b@x.com", 10)
	assert.Equal(t, ErrWalletNotFound, err)

	// insufficient balance
	aliceWallet := &models.WalletDB{WalletID: uuid.New(), UserID: alice.UserID, TokenID: token.TokenID, Balance: 5}
	bobWallet := &models.WalletDB{WalletID: uuid.New(), UserID: bob.UserID, TokenID: token.TokenID, Balance: 0}
	m.tokens.EXPECT().ActiveToken(ctx).Return(token, nil)
	m.userReader.EXPECT().GetByEmail(ctx, "a@x.com").Return(alice, nil)
	m.userReader.EXPECT().GetByEmail(ctx, "b@x.com").Return(bob, nil)
	m.walletReader.EXPECT().GetByUserAndToken(ctx, alice.UserID, token.TokenID).Return(aliceWallet, nil)
	m.walletReader.EXPECT().GetByUserAndToken(ctx, bob.UserID, token.TokenID).Return(bobWallet, nil)
	m.walletWriter.EXPECT().SubtractBalance(ctx, aliceWallet.WalletID, int64(10)).Return(int64(0), sql.ErrNoRows)
	_, err = svc.Distribute(ctx, "a@x.com", "b@x.com", 10)
	assert.Equal(t, ErrInsufficientBalance, err)
}

func TestLedgerService_Balance(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLedgerService(ctrl)

	token := newTestToken()
	user := &models.UserDB{UserID: uuid.New(), Email: "alice@example.com"}
	wallet := &models.WalletDB{WalletID: uuid.New(), UserID: user.UserID, TokenID: token.TokenID, Balance: 100}

	// existing wallet
	m.tokens.EXPECT().ActiveToken(ctx).Return(token, nil)
	m.userReader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(user, nil)
	m.walletReader.EXPECT().GetByUserAndToken(ctx, user.UserID, token.TokenID).Return(wallet, nil)
	balance, err := svc.Balance(ctx, "alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, int64(100), balance)

	// user without a wallet reports 0
	m.tokens.EXPECT().ActiveToken(ctx).Return(token, nil)
	m.userReader.EXPECT().GetByEmail(ctx, "alice@example.com").Return(user, nil)
	m.walletReader.EXPECT().GetByUserAndToken(ctx, user.UserID, token.TokenID).Return(nil, nil)
	balance, err = svc.Balance(ctx, "alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	// unknown user
	m.tokens.EXPECT().ActiveToken(ctx).Return(token, nil)
	m.userReader.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, nil)
	_, err = svc.Balance(ctx, "ghost@example.com")
	assert.Equal(t, ErrUserNotFound, err)
}

func TestLedgerService_TokenStats_PersistsSupply(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLedgerService(ctrl)

	token := newTestToken()
	updated := *token
	updated.CirculatingSupply = 200_000

	m.tokens.EXPECT().ActiveToken(ctx).Return(token, nil)
	m.walletReader.EXPECT().SumBalances(ctx, token.TokenID).Return(int64(200_000), nil)
	// the stats query always writes the recomputed supply back
	m.tokenWriter.EXPECT().UpdateCirculatingSupply(ctx, token.TokenID, int64(200_000)).Return(&updated, nil)

	stats, err := svc.TokenStats(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(200_000), stats.CirculatingSupply)
	assert.Equal(t, int64(1_000_000), stats.MaxSupply)
	assert.Equal(t, 0.25, stats.Price)
	assert.Equal(t, 50000.0, stats.MarketCap)
}

func TestLedgerService_TokenStats_SupplyError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newLedgerService(ctrl)
	token := newTestToken()

	m.tokens.EXPECT().ActiveToken(ctx).Return(token, nil)
	m.walletReader.EXPECT().SumBalances(ctx, token.TokenID).Return(int64(0), errors.New("store unavailable"))

	_, err := svc.TokenStats(ctx)
	assert.EqualError(t, err, "store unavailable")
}

func TestLedgerService_publishEvent(t *testing.T) {
	ctx := context.Background()
	event := models.LedgerEvent{
		EventID:   "evt-123",
		Operation: models.OperationMint,
		Amount:    1000,
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := NewMockKafkaWriter(ctrl)
	svc := &LedgerService{kafkaWriter: mockKafka}

	mockKafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil).Times(1)
	svc.publishEvent(ctx, event)

	mockKafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("kafka error")).Times(1)
	svc.publishEvent(ctx, event)

	// nil writer must not panic
	svc = &LedgerService{}
	svc.publishEvent(ctx, event)
}
