package ports

import (
	"context"
	"errors"
	"time"

	"group-wager-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrDuplicateSourceRef is returned by WagerRepository.Create when a
// wager already references the same announcement message. It lets two
// racing creates resolve without a prior existence check being reliable.
var ErrDuplicateSourceRef = errors.New("wager already references this source message")

// UserRepository defines persistence operations for users.
// Methods accepting pgx.Tx run inside transaction blocks for pessimistic
// locking; balance writes only happen through them.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// GetByHandle matches the handle case-insensitively, with or without
	// a leading sigil.
	GetByHandle(ctx context.Context, handle string) (*domain.User, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.User, error)
	GetByHandleForUpdate(ctx context.Context, tx pgx.Tx, handle string) (*domain.User, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, id int64, balance int64) error
	UpdateHandle(ctx context.Context, id int64, handle string) error
	UpdateCommissionBps(ctx context.Context, id int64, bps *int) error
}

// WagerRepository defines persistence operations for wagers.
type WagerRepository interface {
	Create(ctx context.Context, wager *domain.Wager) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wager, error)
	GetBySourceRef(ctx context.Context, ref domain.SourceRef) (*domain.Wager, error)
	ListActive(ctx context.Context) ([]domain.Wager, error)
	List(ctx context.Context, status *domain.WagerStatus, limit int) ([]domain.Wager, error)
	// CompareAndTransition atomically moves the wager out of ACTIVE.
	// Returns false (and no error) when the wager was no longer ACTIVE;
	// this is the single synchronization point that makes settlement
	// exactly-once across racing observation channels.
	CompareAndTransition(ctx context.Context, id uuid.UUID, to domain.WagerStatus, winners []string, settledAt time.Time) (bool, error)
}

// TransactionRepository defines persistence for the append-only ledger log.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error)
	ListByWager(ctx context.Context, wagerID uuid.UUID) ([]domain.Transaction, error)
	// SumByUser returns the sum of all transaction amounts for a user,
	// used to verify the balance invariant.
	SumByUser(ctx context.Context, userID int64) (int64, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
