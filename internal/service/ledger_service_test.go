package service

import (
	"context"
	"errors"
	"testing"

	"group-wager-ledger/internal/core/domain"
	"group-wager-ledger/internal/core/ports/mocks"
	"group-wager-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ledgerTestDeps struct {
	svc        *LedgerServiceImpl
	userRepo   *mocks.MockUserRepository
	txRepo     *mocks.MockTransactionRepository
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupLedgerService(t *testing.T) *ledgerTestDeps {
	ctrl := gomock.NewController(t)
	d := &ledgerTestDeps{
		userRepo:   mocks.NewMockUserRepository(ctrl),
		txRepo:     mocks.NewMockTransactionRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewLedgerService(d.userRepo, d.txRepo, d.transactor, 500, zerolog.Nop())
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func TestLedgerService_GetOrCreateUser_Creates(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByID(ctx, int64(42)).Return(nil, nil)
	d.userRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	user, err := d.svc.GetOrCreateUser(ctx, 42, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "alice", user.Handle)
	assert.Equal(t, int64(0), user.Balance)
}

func TestLedgerService_GetOrCreateUser_ReturnsExisting(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	existing := &domain.User{ID: 42, Handle: "alice", Balance: 700}
	d.userRepo.EXPECT().GetByID(ctx, int64(42)).Return(existing, nil)

	user, err := d.svc.GetOrCreateUser(ctx, 42, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(700), user.Balance)
}

func TestLedgerService_GetOrCreateUser_UpdatesChangedHandle(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	existing := &domain.User{ID: 42, Handle: "alice_old", Balance: 100}
	d.userRepo.EXPECT().GetByID(ctx, int64(42)).Return(existing, nil)
	d.userRepo.EXPECT().UpdateHandle(ctx, int64(42), "alice_new").Return(nil)

	user, err := d.svc.GetOrCreateUser(ctx, 42, "alice_new")
	require.NoError(t, err)
	assert.Equal(t, "alice_new", user.Handle)
}

func TestLedgerService_Debit_Success(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	wagerID := uuid.New()

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.userRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(&domain.User{ID: 1, Handle: "p1", Balance: 500}, nil)
	d.userRepo.EXPECT().UpdateBalance(ctx, tx, int64(1), int64(200)).Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	txn, err := d.svc.Debit(ctx, 1, 300, domain.TransactionKindBet, "stake", &wagerID)
	require.NoError(t, err)
	assert.Equal(t, int64(-300), txn.Amount)
	assert.Equal(t, domain.TransactionKindBet, txn.Kind)
	require.NotNil(t, txn.WagerID)
	assert.Equal(t, wagerID, *txn.WagerID)
}

func TestLedgerService_Debit_InsufficientFunds(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.userRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(&domain.User{ID: 1, Handle: "p1", Balance: 100}, nil)

	_, err := d.svc.Debit(ctx, 1, 300, domain.TransactionKindBet, "stake", nil)
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeInsufficientFunds))
}

func TestLedgerService_Debit_ExactBalanceAllowed(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.userRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(&domain.User{ID: 1, Handle: "p1", Balance: 300}, nil)
	d.userRepo.EXPECT().UpdateBalance(ctx, tx, int64(1), int64(0)).Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	_, err := d.svc.Debit(ctx, 1, 300, domain.TransactionKindBet, "stake", nil)
	require.NoError(t, err)
}

func TestLedgerService_Debit_InvalidAmount(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Debit(context.Background(), 1, 0, domain.TransactionKindBet, "stake", nil)
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidAmount))

	_, err = d.svc.Debit(context.Background(), 1, -5, domain.TransactionKindBet, "stake", nil)
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidAmount))
}

func TestLedgerService_Debit_UserNotFound(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.userRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(9)).Return(nil, nil)

	_, err := d.svc.Debit(ctx, 9, 100, domain.TransactionKindBet, "stake", nil)
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeUserNotFound))
}

func TestLedgerService_Credit_Success(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.userRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(2)).Return(&domain.User{ID: 2, Handle: "p2", Balance: 0}, nil)
	d.userRepo.EXPECT().UpdateBalance(ctx, tx, int64(2), int64(570)).Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	txn, err := d.svc.Credit(ctx, 2, 570, domain.TransactionKindWin, "payout", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(570), txn.Amount)
}

func TestLedgerService_Credit_TransactionCreateFails(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.userRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(2)).Return(&domain.User{ID: 2, Balance: 0}, nil)
	d.userRepo.EXPECT().UpdateBalance(ctx, tx, int64(2), int64(100)).Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(errors.New("db down"))

	_, err := d.svc.Credit(ctx, 2, 100, domain.TransactionKindWin, "payout", nil)
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeInternal))
}

func TestLedgerService_ComputeCommission_DefaultRate(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.User{ID: 1}, nil)

	net, commission, err := d.svc.ComputeCommission(ctx, 1, 600)
	require.NoError(t, err)
	assert.Equal(t, int64(570), net)
	assert.Equal(t, int64(30), commission)
	assert.Equal(t, int64(600), net+commission)
}

func TestLedgerService_ComputeCommission_Override(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	bps := 1000
	d.userRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.User{ID: 1, CommissionBps: &bps}, nil)

	net, commission, err := d.svc.ComputeCommission(ctx, 1, 600)
	require.NoError(t, err)
	assert.Equal(t, int64(540), net)
	assert.Equal(t, int64(60), commission)
}

func TestLedgerService_ComputeCommission_RoundsHalfUp(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	// 5% of 70 = 3.5, rounds up to 4.
	d.userRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.User{ID: 1}, nil)

	net, commission, err := d.svc.ComputeCommission(ctx, 1, 70)
	require.NoError(t, err)
	assert.Equal(t, int64(4), commission)
	assert.Equal(t, int64(66), net)
}

func TestLedgerService_ComputeCommission_ZeroRate(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	bps := 0
	d.userRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.User{ID: 1, CommissionBps: &bps}, nil)

	net, commission, err := d.svc.ComputeCommission(ctx, 1, 600)
	require.NoError(t, err)
	assert.Equal(t, int64(600), net)
	assert.Equal(t, int64(0), commission)
}

func TestLedgerService_SetCommissionRate(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.User{ID: 1}, nil)
	d.userRepo.EXPECT().UpdateCommissionBps(ctx, int64(1), gomock.Any()).Return(nil)

	require.NoError(t, d.svc.SetCommissionRate(ctx, 1, 750))
}

func TestLedgerService_SetCommissionRate_Invalid(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	err := d.svc.SetCommissionRate(context.Background(), 1, -1)
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidRate))

	err = d.svc.SetCommissionRate(context.Background(), 1, 10001)
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidRate))
}

func TestLedgerService_ManualAdjust_Negative(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.userRepo.EXPECT().GetByIDForUpdate(ctx, tx, int64(1)).Return(&domain.User{ID: 1, Balance: 500}, nil)
	d.userRepo.EXPECT().UpdateBalance(ctx, tx, int64(1), int64(450)).Return(nil)
	d.txRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	txn, err := d.svc.ManualAdjust(ctx, 1, -50, "correction")
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionKindAdjustment, txn.Kind)
	assert.Equal(t, int64(-50), txn.Amount)
	assert.Equal(t, "correction", txn.Description)
}

func TestLedgerService_VerifyBalance_Matches(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.User{ID: 1, Balance: 270}, nil)
	d.txRepo.EXPECT().SumByUser(ctx, int64(1)).Return(int64(270), nil)

	require.NoError(t, d.svc.VerifyBalance(ctx, 1))
}

func TestLedgerService_VerifyBalance_Corruption(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByID(ctx, int64(1)).Return(&domain.User{ID: 1, Balance: 270}, nil)
	d.txRepo.EXPECT().SumByUser(ctx, int64(1)).Return(int64(300), nil)

	err := d.svc.VerifyBalance(ctx, 1)
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeLedgerCorruption))
}
