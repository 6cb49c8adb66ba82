package postgres

import (
	"context"
	"errors"
	"fmt"

	"group-wager-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// UserRepo implements ports.UserRepository.
type UserRepo struct {
	pool Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, handle, balance, commission_bps, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Handle, &u.Balance, &u.CommissionBps, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// Create inserts a new user.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, handle, balance, commission_bps, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Handle, u.Balance, u.CommissionBps, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by ID (without locking).
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// GetByHandle fetches a user by handle, ignoring case and mention sigil.
func (r *UserRepo) GetByHandle(ctx context.Context, handle string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(handle) = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, query, domain.NormalizeHandle(handle)))
	if err != nil {
		return nil, fmt.Errorf("get user by handle: %w", err)
	}
	return u, nil
}

// GetByIDForUpdate fetches a user by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *UserRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`

	u, err := scanUser(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get user for update by id: %w", err)
	}
	return u, nil
}

// GetByHandleForUpdate fetches a user by handle with pessimistic locking.
// This MUST be called within a transaction.
func (r *UserRepo) GetByHandleForUpdate(ctx context.Context, tx pgx.Tx, handle string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(handle) = $1 FOR UPDATE`

	u, err := scanUser(tx.QueryRow(ctx, query, domain.NormalizeHandle(handle)))
	if err != nil {
		return nil, fmt.Errorf("get user for update by handle: %w", err)
	}
	return u, nil
}

// UpdateBalance sets a user's balance within a transaction.
func (r *UserRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, id int64, balance int64) error {
	query := `UPDATE users SET balance = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, balance, id)
	if err != nil {
		return fmt.Errorf("update user balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %d", id)
	}
	return nil
}

// UpdateHandle sets a user's display handle.
func (r *UserRepo) UpdateHandle(ctx context.Context, id int64, handle string) error {
	query := `UPDATE users SET handle = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, handle, id)
	if err != nil {
		return fmt.Errorf("update user handle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %d", id)
	}
	return nil
}

// UpdateCommissionBps sets or clears a user's commission override.
func (r *UserRepo) UpdateCommissionBps(ctx context.Context, id int64, bps *int) error {
	query := `UPDATE users SET commission_bps = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, bps, id)
	if err != nil {
		return fmt.Errorf("update user commission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %d", id)
	}
	return nil
}
