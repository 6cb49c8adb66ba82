package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"group-wager-ledger/internal/core/domain"
	"group-wager-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// WagerRepo implements ports.WagerRepository. The (chat_id, message_id)
// pair carries a unique constraint so one announcement message can never
// produce two wagers.
type WagerRepo struct {
	pool Pool
}

// NewWagerRepo creates a new WagerRepo.
func NewWagerRepo(pool Pool) *WagerRepo {
	return &WagerRepo{pool: pool}
}

const wagerColumns = `id, chat_id, message_id, participants, stake, pot, status, winners, created_at, expires_at, settled_at`

func scanWager(row pgx.Row) (*domain.Wager, error) {
	w := &domain.Wager{}
	err := row.Scan(
		&w.ID, &w.Source.ChatID, &w.Source.MessageID, &w.Participants,
		&w.Stake, &w.Pot, &w.Status, &w.Winners,
		&w.CreatedAt, &w.ExpiresAt, &w.SettledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return w, nil
}

func scanWagers(rows pgx.Rows) ([]domain.Wager, error) {
	defer rows.Close()

	var wagers []domain.Wager
	for rows.Next() {
		w := domain.Wager{}
		err := rows.Scan(
			&w.ID, &w.Source.ChatID, &w.Source.MessageID, &w.Participants,
			&w.Stake, &w.Pot, &w.Status, &w.Winners,
			&w.CreatedAt, &w.ExpiresAt, &w.SettledAt,
		)
		if err != nil {
			return nil, err
		}
		wagers = append(wagers, w)
	}
	return wagers, rows.Err()
}

// Create inserts a new wager.
func (r *WagerRepo) Create(ctx context.Context, w *domain.Wager) error {
	query := `INSERT INTO wagers (id, chat_id, message_id, participants, stake, pot, status, winners, created_at, expires_at, settled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.Source.ChatID, w.Source.MessageID, w.Participants,
		w.Stake, w.Pot, w.Status, w.Winners,
		w.CreatedAt, w.ExpiresAt, w.SettledAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ports.ErrDuplicateSourceRef
		}
		return fmt.Errorf("insert wager: %w", err)
	}
	return nil
}

// GetByID fetches a wager by UUID.
func (r *WagerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wager, error) {
	query := `SELECT ` + wagerColumns + ` FROM wagers WHERE id = $1`

	w, err := scanWager(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get wager by id: %w", err)
	}
	return w, nil
}

// GetBySourceRef fetches the wager announced by a specific chat message.
func (r *WagerRepo) GetBySourceRef(ctx context.Context, ref domain.SourceRef) (*domain.Wager, error) {
	query := `SELECT ` + wagerColumns + ` FROM wagers WHERE chat_id = $1 AND message_id = $2`

	w, err := scanWager(r.pool.QueryRow(ctx, query, ref.ChatID, ref.MessageID))
	if err != nil {
		return nil, fmt.Errorf("get wager by source ref: %w", err)
	}
	return w, nil
}

// ListActive returns all wagers still in the ACTIVE state.
func (r *WagerRepo) ListActive(ctx context.Context) ([]domain.Wager, error) {
	query := `SELECT ` + wagerColumns + ` FROM wagers WHERE status = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, domain.WagerStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active wagers: %w", err)
	}
	wagers, err := scanWagers(rows)
	if err != nil {
		return nil, fmt.Errorf("list active wagers: %w", err)
	}
	return wagers, nil
}

// List returns wagers newest first, optionally filtered by status.
func (r *WagerRepo) List(ctx context.Context, status *domain.WagerStatus, limit int) ([]domain.Wager, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if status != nil {
		query := `SELECT ` + wagerColumns + ` FROM wagers WHERE status = $1 ORDER BY created_at DESC LIMIT $2`
		rows, err = r.pool.Query(ctx, query, *status, limit)
	} else {
		query := `SELECT ` + wagerColumns + ` FROM wagers ORDER BY created_at DESC LIMIT $1`
		rows, err = r.pool.Query(ctx, query, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("list wagers: %w", err)
	}
	wagers, err := scanWagers(rows)
	if err != nil {
		return nil, fmt.Errorf("list wagers: %w", err)
	}
	return wagers, nil
}

// CompareAndTransition atomically moves a wager out of ACTIVE. The WHERE
// clause on status makes the row the single synchronization point:
// exactly one caller observes RowsAffected == 1, every later caller
// gets false.
func (r *WagerRepo) CompareAndTransition(ctx context.Context, id uuid.UUID, to domain.WagerStatus, winners []string, settledAt time.Time) (bool, error) {
	query := `UPDATE wagers SET status = $1, winners = $2, settled_at = $3
		WHERE id = $4 AND status = $5`

	tag, err := r.pool.Exec(ctx, query, to, winners, settledAt, id, domain.WagerStatusActive)
	if err != nil {
		return false, fmt.Errorf("transition wager: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
