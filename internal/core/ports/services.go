package ports

import (
	"context"
	"time"

	"group-wager-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// MessageEvent is a chat message delivered by the transport layer.
// SenderAuthorized is decided upstream; the core never re-checks it.
// Channel names which observation channel delivered the event and is
// informational only; correctness never depends on it.
type MessageEvent struct {
	Text             string
	Source           domain.SourceRef
	SenderAuthorized bool
	Channel          string
}

// Ledger is the sole mutator of user balances. Every balance change is
// paired with an append-only Transaction; the two writes are indivisible
// from the point of view of any concurrent reader.
type Ledger interface {
	GetOrCreateUser(ctx context.Context, id int64, handle string) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByHandle(ctx context.Context, handle string) (*domain.User, error)
	// Debit fails with LED_001 when the resulting balance would go
	// negative. amount must be positive.
	Debit(ctx context.Context, userID int64, amount int64, kind domain.TransactionKind, description string, wagerID *uuid.UUID) (*domain.Transaction, error)
	// Credit never fails on funds grounds. amount must be positive.
	Credit(ctx context.Context, userID int64, amount int64, kind domain.TransactionKind, description string, wagerID *uuid.UUID) (*domain.Transaction, error)
	// ComputeCommission splits gross into net + commission using the
	// user's override rate or the configured default, round-half-up.
	// net + commission == gross always.
	ComputeCommission(ctx context.Context, userID int64, gross int64) (net int64, commission int64, err error)
	SetCommissionRate(ctx context.Context, userID int64, bps int) error
	ManualAdjust(ctx context.Context, userID int64, amount int64, reason string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error)
	// ListWagerTransactions returns every ledger entry a wager produced,
	// oldest first, across all users it touched.
	ListWagerTransactions(ctx context.Context, wagerID uuid.UUID) ([]domain.Transaction, error)
	// VerifyBalance checks the balance invariant for one user and
	// returns SYS_002 on violation.
	VerifyBalance(ctx context.Context, userID int64) error
}

// GameStore is the wager lifecycle authority: the single source of truth
// for "is this wager still open for resolution".
type GameStore interface {
	// CreateWager fails with WGR_001 when a wager already references the
	// announcement's source message.
	CreateWager(ctx context.Context, ann domain.Announcement) (*domain.Wager, error)
	GetWager(ctx context.Context, id uuid.UUID) (*domain.Wager, error)
	FindBySourceRef(ctx context.Context, ref domain.SourceRef) (*domain.Wager, error)
	// FindActiveByParticipants returns WGR_002 when no active wager
	// overlaps the handles and WGR_003 when more than one does. The
	// caller must not guess on ambiguity.
	FindActiveByParticipants(ctx context.Context, handles []string) (*domain.Wager, error)
	ListWagers(ctx context.Context, status *domain.WagerStatus, limit int) ([]domain.Wager, error)
	ListActive(ctx context.Context) ([]domain.Wager, error)
	// The transition calls fail with WGR_004 when the wager is no longer
	// ACTIVE. Exactly one caller ever gets a nil error per wager.
	TransitionToCompleted(ctx context.Context, id uuid.UUID, winners []string) error
	TransitionToCancelled(ctx context.Context, id uuid.UUID) error
	TransitionToExpired(ctx context.Context, id uuid.UUID) error
}

// Resolver consumes chat events and drives wagers to settlement with
// exactly-once guarantees.
type Resolver interface {
	HandleMessageCreated(ctx context.Context, ev MessageEvent) error
	HandleMessageEdited(ctx context.Context, ev MessageEvent) error
	CancelBySourceRef(ctx context.Context, ref domain.SourceRef) (*domain.Wager, error)
}

// Notifier is the outbound boundary for outcome events. Implementations
// must not block settlement; errors are logged and dropped.
type Notifier interface {
	WagerOpened(ctx context.Context, ev domain.WagerOpened) error
	WagerSettled(ctx context.Context, ev domain.WagerSettled) error
	WagerExpired(ctx context.Context, ev domain.WagerExpiredRefunded) error
	WagerCancelled(ctx context.Context, ev domain.WagerCancelled) error
}

// OutcomeCache is a fast-path record of recently settled source refs so
// a duplicate edit event can be discarded without touching the store.
// Best-effort: a miss or an error always falls through to the store.
type OutcomeCache interface {
	GetSettled(ctx context.Context, ref domain.SourceRef) ([]byte, error)
	MarkSettled(ctx context.Context, ref domain.SourceRef, payload []byte, ttl time.Duration) error
}

// HashService handles password hashing for the admin API (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles admin session tokens.
type TokenService interface {
	Generate(username string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Username string
}
