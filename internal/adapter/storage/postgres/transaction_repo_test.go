package postgres

import (
	"context"
	"testing"
	"time"

	"group-wager-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(userID int64) *domain.Transaction {
	wagerID := uuid.New()
	return &domain.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        domain.TransactionKindBet,
		Amount:      -300,
		Description: "Stake for wager -100200300:42",
		WagerID:     &wagerID,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
}

func transactionColumnNames() []string {
	return []string{"id", "user_id", "kind", "amount", "description", "wager_id", "created_at"}
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(12345)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(txn.ID, txn.UserID, txn.Kind, txn.Amount, txn.Description, txn.WagerID, txn.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(12345)

	mock.ExpectQuery(`SELECT .+ FROM transactions\s+WHERE user_id`).
		WithArgs(int64(12345), 20).
		WillReturnRows(pgxmock.NewRows(transactionColumnNames()).AddRow(
			txn.ID, txn.UserID, txn.Kind, txn.Amount, txn.Description, txn.WagerID, txn.CreatedAt,
		))

	result, err := repo.ListByUser(context.Background(), 12345, 20)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, txn.ID, result[0].ID)
	assert.Equal(t, int64(-300), result[0].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByWager(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(12345)

	mock.ExpectQuery(`SELECT .+ FROM transactions\s+WHERE wager_id`).
		WithArgs(*txn.WagerID).
		WillReturnRows(pgxmock.NewRows(transactionColumnNames()).AddRow(
			txn.ID, txn.UserID, txn.Kind, txn.Amount, txn.Description, txn.WagerID, txn.CreatedAt,
		))

	result, err := repo.ListByWager(context.Background(), *txn.WagerID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, domain.TransactionKindBet, result[0].Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_SumByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(int64(12345)).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(int64(270)))

	sum, err := repo.SumByUser(context.Background(), 12345)
	require.NoError(t, err)
	assert.Equal(t, int64(270), sum)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_SumByUser_NoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(int64(0)))

	sum, err := repo.SumByUser(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum)
	assert.NoError(t, mock.ExpectationsWereMet())
}
