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

func newTestWager() *domain.Wager {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Wager{
		ID:           uuid.New(),
		Source:       domain.SourceRef{ChatID: -100200300, MessageID: 42},
		Participants: []string{"p1", "p2"},
		Stake:        300,
		Pot:          600,
		Status:       domain.WagerStatusActive,
		CreatedAt:    now,
		ExpiresAt:    now.Add(time.Hour),
	}
}

func wagerColumnNames() []string {
	return []string{"id", "chat_id", "message_id", "participants", "stake", "pot", "status", "winners", "created_at", "expires_at", "settled_at"}
}

func wagerRow(w *domain.Wager) *pgxmock.Rows {
	return pgxmock.NewRows(wagerColumnNames()).AddRow(
		w.ID, w.Source.ChatID, w.Source.MessageID, w.Participants,
		w.Stake, w.Pot, w.Status, w.Winners,
		w.CreatedAt, w.ExpiresAt, w.SettledAt,
	)
}

func TestWagerRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWagerRepo(mock)
	w := newTestWager()

	mock.ExpectExec("INSERT INTO wagers").
		WithArgs(w.ID, w.Source.ChatID, w.Source.MessageID, w.Participants,
			w.Stake, w.Pot, w.Status, w.Winners,
			w.CreatedAt, w.ExpiresAt, w.SettledAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), w)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWagerRepo_GetBySourceRef(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWagerRepo(mock)
	w := newTestWager()

	mock.ExpectQuery("SELECT .+ FROM wagers WHERE chat_id .+ AND message_id").
		WithArgs(w.Source.ChatID, w.Source.MessageID).
		WillReturnRows(wagerRow(w))

	result, err := repo.GetBySourceRef(context.Background(), w.Source)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, w.ID, result.ID)
	assert.Equal(t, w.Source, result.Source)
	assert.Equal(t, []string{"p1", "p2"}, result.Participants)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWagerRepo_GetBySourceRef_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWagerRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM wagers WHERE chat_id .+ AND message_id").
		WithArgs(int64(-1), int64(2)).
		WillReturnRows(pgxmock.NewRows(wagerColumnNames()))

	result, err := repo.GetBySourceRef(context.Background(), domain.SourceRef{ChatID: -1, MessageID: 2})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWagerRepo_ListActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWagerRepo(mock)
	w1 := newTestWager()
	w2 := newTestWager()
	w2.Source.MessageID = 43

	rows := wagerRow(w1).AddRow(
		w2.ID, w2.Source.ChatID, w2.Source.MessageID, w2.Participants,
		w2.Stake, w2.Pot, w2.Status, w2.Winners,
		w2.CreatedAt, w2.ExpiresAt, w2.SettledAt,
	)

	mock.ExpectQuery("SELECT .+ FROM wagers WHERE status").
		WithArgs(domain.WagerStatusActive).
		WillReturnRows(rows)

	result, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, w1.ID, result[0].ID)
	assert.Equal(t, w2.ID, result[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWagerRepo_List_WithStatusFilter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWagerRepo(mock)
	w := newTestWager()
	w.Status = domain.WagerStatusCompleted
	w.Winners = []string{"p1"}

	mock.ExpectQuery("SELECT .+ FROM wagers WHERE status .+ LIMIT").
		WithArgs(domain.WagerStatusCompleted, 50).
		WillReturnRows(wagerRow(w))

	status := domain.WagerStatusCompleted
	result, err := repo.List(context.Background(), &status, 50)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, []string{"p1"}, result[0].Winners)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWagerRepo_CompareAndTransition_Wins(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWagerRepo(mock)
	id := uuid.New()
	settledAt := time.Now().UTC()
	winners := []string{"p1"}

	mock.ExpectExec("UPDATE wagers SET status").
		WithArgs(domain.WagerStatusCompleted, winners, settledAt, id, domain.WagerStatusActive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	ok, err := repo.CompareAndTransition(context.Background(), id, domain.WagerStatusCompleted, winners, settledAt)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWagerRepo_CompareAndTransition_AlreadyTerminal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWagerRepo(mock)
	id := uuid.New()
	settledAt := time.Now().UTC()

	// Status is no longer ACTIVE: zero rows match, no error.
	mock.ExpectExec("UPDATE wagers SET status").
		WithArgs(domain.WagerStatusExpired, []string(nil), settledAt, id, domain.WagerStatusActive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.CompareAndTransition(context.Background(), id, domain.WagerStatusExpired, nil, settledAt)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
