package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"group-wager-ledger/internal/core/domain"
	"group-wager-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[int64]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[int64]*domain.User)}
}

func (r *inMemoryUserRepo) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; ok {
		return fmt.Errorf("user already exists: %d", u.ID)
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *inMemoryUserRepo) GetByHandle(ctx context.Context, handle string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if domain.HandleEquals(u.Handle, handle) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryUserRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.User, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryUserRepo) GetByHandleForUpdate(ctx context.Context, tx pgx.Tx, handle string) (*domain.User, error) {
	return r.GetByHandle(ctx, handle)
}

func (r *inMemoryUserRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, id int64, balance int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user not found: %d", id)
	}
	u.Balance = balance
	u.UpdatedAt = time.Now()
	return nil
}

func (r *inMemoryUserRepo) UpdateHandle(ctx context.Context, id int64, handle string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user not found: %d", id)
	}
	u.Handle = handle
	u.UpdatedAt = time.Now()
	return nil
}

func (r *inMemoryUserRepo) UpdateCommissionBps(ctx context.Context, id int64, bps *int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user not found: %d", id)
	}
	u.CommissionBps = bps
	u.UpdatedAt = time.Now()
	return nil
}

// --- In-Memory Wager Repo ---

type inMemoryWagerRepo struct {
	mu     sync.Mutex
	wagers map[uuid.UUID]*domain.Wager
}

func newInMemoryWagerRepo() *inMemoryWagerRepo {
	return &inMemoryWagerRepo{wagers: make(map[uuid.UUID]*domain.Wager)}
}

func (r *inMemoryWagerRepo) Create(ctx context.Context, w *domain.Wager) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.wagers {
		if existing.Source == w.Source {
			return ports.ErrDuplicateSourceRef
		}
	}
	cp := *w
	r.wagers[w.ID] = &cp
	return nil
}

func (r *inMemoryWagerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wager, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wagers[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWagerRepo) GetBySourceRef(ctx context.Context, ref domain.SourceRef) (*domain.Wager, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.wagers {
		if w.Source == ref {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWagerRepo) ListActive(ctx context.Context) ([]domain.Wager, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Wager
	for _, w := range r.wagers {
		if w.Status == domain.WagerStatusActive {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *inMemoryWagerRepo) List(ctx context.Context, status *domain.WagerStatus, limit int) ([]domain.Wager, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Wager
	for _, w := range r.wagers {
		if status != nil && w.Status != *status {
			continue
		}
		out = append(out, *w)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

// CompareAndTransition is atomic under the repo mutex, matching the
// behavior of the conditional UPDATE in the PostgreSQL implementation.
func (r *inMemoryWagerRepo) CompareAndTransition(ctx context.Context, id uuid.UUID, to domain.WagerStatus, winners []string, settledAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wagers[id]
	if !ok {
		return false, nil
	}
	if w.Status != domain.WagerStatusActive {
		return false, nil
	}
	w.Status = to
	w.Winners = winners
	w.SettledAt = &settledAt
	return true, nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transactions = append(r.transactions, *t)
	return nil
}

func (r *inMemoryTransactionRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Transaction
	for i := len(r.transactions) - 1; i >= 0 && len(out) < limit; i-- {
		if r.transactions[i].UserID == userID {
			out = append(out, r.transactions[i])
		}
	}
	return out, nil
}

func (r *inMemoryTransactionRepo) ListByWager(ctx context.Context, wagerID uuid.UUID) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Transaction
	for _, t := range r.transactions {
		if t.WagerID != nil && *t.WagerID == wagerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *inMemoryTransactionRepo) SumByUser(ctx context.Context, userID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var sum int64
	for _, t := range r.transactions {
		if t.UserID == userID {
			sum += t.Amount
		}
	}
	return sum, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
