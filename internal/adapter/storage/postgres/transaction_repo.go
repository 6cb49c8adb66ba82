package postgres

import (
	"context"
	"fmt"

	"group-wager-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository. The table is
// append-only: entries are never updated or deleted, so the sum over a
// user's rows is always comparable against their balance.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

const transactionColumns = `id, user_id, kind, amount, description, wager_id, created_at`

// Create inserts a new ledger entry within a database transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, user_id, kind, amount, description, wager_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.UserID, t.Kind, t.Amount, t.Description, t.WagerID, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListByUser returns a user's ledger entries, newest first.
func (r *TransactionRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions by user: %w", err)
	}
	return scanTransactions(rows)
}

// ListByWager returns every ledger entry tied to a wager, oldest first.
func (r *TransactionRepo) ListByWager(ctx context.Context, wagerID uuid.UUID) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE wager_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, wagerID)
	if err != nil {
		return nil, fmt.Errorf("list transactions by wager: %w", err)
	}
	return scanTransactions(rows)
}

// SumByUser returns the signed sum of a user's ledger entries.
func (r *TransactionRepo) SumByUser(ctx context.Context, userID int64) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1`

	var sum int64
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum transactions by user: %w", err)
	}
	return sum, nil
}

func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t := domain.Transaction{}
		err := rows.Scan(&t.ID, &t.UserID, &t.Kind, &t.Amount, &t.Description, &t.WagerID, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
