package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"group-wager-ledger/internal/core/domain"
	"group-wager-ledger/internal/core/ports"
	"group-wager-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const maxCommissionBps = 10000

// LedgerServiceImpl implements ports.Ledger. It is the only component
// that writes balances; every write pairs the balance update with an
// append-only Transaction inside one database transaction, guarded by a
// row lock plus an in-process per-user mutex so concurrent operations on
// the same user serialize while different users proceed without
// contention.
type LedgerServiceImpl struct {
	userRepo   ports.UserRepository
	txRepo     ports.TransactionRepository
	transactor ports.DBTransactor
	defaultBps int
	log        zerolog.Logger

	userLocks sync.Map // int64 -> *sync.Mutex
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	userRepo ports.UserRepository,
	txRepo ports.TransactionRepository,
	transactor ports.DBTransactor,
	defaultCommissionBps int,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		userRepo:   userRepo,
		txRepo:     txRepo,
		transactor: transactor,
		defaultBps: defaultCommissionBps,
		log:        log,
	}
}

func (s *LedgerServiceImpl) lockUser(id int64) func() {
	mu, _ := s.userLocks.LoadOrStore(id, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// GetOrCreateUser returns the existing record or creates one with zero
// balance and the default commission rate. A changed display handle is
// persisted on the existing record.
func (s *LedgerServiceImpl) GetOrCreateUser(ctx context.Context, id int64, handle string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("fetch user: %w", err))
	}
	if user != nil {
		if handle != "" && !domain.HandleEquals(user.Handle, handle) {
			if err := s.userRepo.UpdateHandle(ctx, id, handle); err != nil {
				return nil, apperror.InternalError(fmt.Errorf("update handle: %w", err))
			}
			user.Handle = handle
		}
		return user, nil
	}

	now := time.Now().UTC()
	user = &domain.User{
		ID:        id,
		Handle:    handle,
		Balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create user: %w", err))
	}

	s.log.Info().Int64("user_id", id).Str("handle", handle).Msg("user created")
	return user, nil
}

// GetUser fetches a user by numeric identifier.
func (s *LedgerServiceImpl) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("fetch user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound(fmt.Sprintf("id %d", id))
	}
	return user, nil
}

// GetUserByHandle fetches a user by display handle, case-insensitively.
func (s *LedgerServiceImpl) GetUserByHandle(ctx context.Context, handle string) (*domain.User, error) {
	user, err := s.userRepo.GetByHandle(ctx, handle)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("fetch user by handle: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound(handle)
	}
	return user, nil
}

// Debit subtracts amount from the user's balance and appends the ledger
// entry. Fails with LED_001 if the balance would go negative; the caller
// decides whether that aborts a wider operation.
func (s *LedgerServiceImpl) Debit(ctx context.Context, userID int64, amount int64, kind domain.TransactionKind, description string, wagerID *uuid.UUID) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	return s.apply(ctx, userID, -amount, kind, description, wagerID)
}

// Credit adds amount to the user's balance and appends the ledger entry.
// Crediting never fails on funds grounds.
func (s *LedgerServiceImpl) Credit(ctx context.Context, userID int64, amount int64, kind domain.TransactionKind, description string, wagerID *uuid.UUID) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	return s.apply(ctx, userID, amount, kind, description, wagerID)
}

// apply performs the balance update and transaction append atomically.
// delta is signed.
func (s *LedgerServiceImpl) apply(ctx context.Context, userID int64, delta int64, kind domain.TransactionKind, description string, wagerID *uuid.UUID) (*domain.Transaction, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	user, err := s.userRepo.GetByIDForUpdate(ctx, dbTx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound(fmt.Sprintf("id %d", userID))
	}

	newBalance := user.Balance + delta
	if newBalance < 0 {
		return nil, apperror.ErrInsufficientFunds(user.Handle)
	}

	txn := &domain.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        kind,
		Amount:      delta,
		Description: description,
		WagerID:     wagerID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.userRepo.UpdateBalance(ctx, dbTx, userID, newBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append transaction: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Int64("user_id", userID).
		Str("kind", string(kind)).
		Int64("amount", delta).
		Int64("balance", newBalance).
		Msg("ledger entry recorded")

	return txn, nil
}

// ComputeCommission splits gross into net + commission. Commission is
// round-half-up of gross at the user's rate; net is the complement, so
// net + commission == gross with no unit lost.
func (s *LedgerServiceImpl) ComputeCommission(ctx context.Context, userID int64, gross int64) (int64, int64, error) {
	if gross < 0 {
		return 0, 0, apperror.ErrInvalidAmount()
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, 0, apperror.InternalError(fmt.Errorf("fetch user: %w", err))
	}
	if user == nil {
		return 0, 0, apperror.ErrUserNotFound(fmt.Sprintf("id %d", userID))
	}

	bps := s.defaultBps
	if user.CommissionBps != nil {
		bps = *user.CommissionBps
	}

	commission := (gross*int64(bps) + maxCommissionBps/2) / maxCommissionBps
	return gross - commission, commission, nil
}

// SetCommissionRate sets a per-user commission override in basis points.
func (s *LedgerServiceImpl) SetCommissionRate(ctx context.Context, userID int64, bps int) error {
	if bps < 0 || bps > maxCommissionBps {
		return apperror.ErrInvalidRate()
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("fetch user: %w", err))
	}
	if user == nil {
		return apperror.ErrUserNotFound(fmt.Sprintf("id %d", userID))
	}
	if err := s.userRepo.UpdateCommissionBps(ctx, userID, &bps); err != nil {
		return apperror.InternalError(fmt.Errorf("update commission: %w", err))
	}

	s.log.Info().Int64("user_id", userID).Int("bps", bps).Msg("commission rate updated")
	return nil
}

// ManualAdjust applies a signed administrative balance change with an
// ADJUSTMENT transaction carrying the reason. Negative adjustments still
// respect the non-negative balance rule.
func (s *LedgerServiceImpl) ManualAdjust(ctx context.Context, userID int64, amount int64, reason string) (*domain.Transaction, error) {
	if amount == 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	return s.apply(ctx, userID, amount, domain.TransactionKindAdjustment, reason, nil)
}

// ListTransactions returns the user's most recent ledger entries.
func (s *LedgerServiceImpl) ListTransactions(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error) {
	txns, err := s.txRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}
	return txns, nil
}

// ListWagerTransactions returns all ledger entries tied to one wager,
// oldest first.
func (s *LedgerServiceImpl) ListWagerTransactions(ctx context.Context, wagerID uuid.UUID) ([]domain.Transaction, error) {
	txns, err := s.txRepo.ListByWager(ctx, wagerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wager transactions: %w", err))
	}
	return txns, nil
}

// VerifyBalance checks that the user's balance equals the sum of their
// transactions. A mismatch is SYS_002: processing for this user must
// halt rather than risk double settlement.
func (s *LedgerServiceImpl) VerifyBalance(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("fetch user: %w", err))
	}
	if user == nil {
		return apperror.ErrUserNotFound(fmt.Sprintf("id %d", userID))
	}

	sum, err := s.txRepo.SumByUser(ctx, userID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("sum transactions: %w", err))
	}
	if sum != user.Balance {
		return apperror.ErrLedgerCorruption(
			fmt.Errorf("user %d: balance %d, transaction sum %d", userID, user.Balance, sum))
	}
	return nil
}
