package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHandle(t *testing.T) {
	assert.Equal(t, "player1", NormalizeHandle("@Player1"))
	assert.Equal(t, "player1", NormalizeHandle("  player1 "))
	assert.Equal(t, "player1", NormalizeHandle("PLAYER1"))
}

func TestHandleEquals(t *testing.T) {
	assert.True(t, HandleEquals("@alice", "Alice"))
	assert.True(t, HandleEquals("bob", "bob"))
	assert.False(t, HandleEquals("alice", "alicia"))
}

func TestWager_IsTerminal(t *testing.T) {
	w := &Wager{Status: WagerStatusActive}
	assert.False(t, w.IsTerminal())

	for _, s := range []WagerStatus{WagerStatusCompleted, WagerStatusCancelled, WagerStatusExpired} {
		w.Status = s
		assert.True(t, w.IsTerminal(), string(s))
	}
}

func TestWager_IsExpired(t *testing.T) {
	now := time.Now()
	w := &Wager{Status: WagerStatusActive, ExpiresAt: now.Add(time.Hour)}
	assert.False(t, w.IsExpired(now))
	assert.True(t, w.IsExpired(now.Add(2*time.Hour)))

	// Terminal wagers never report expired.
	w.Status = WagerStatusCompleted
	assert.False(t, w.IsExpired(now.Add(2*time.Hour)))
}

func TestWager_ParticipantOverlap(t *testing.T) {
	w := &Wager{Participants: []string{"alice", "bob", "carol"}}

	// Overlap preserves participant order regardless of input order.
	got := w.ParticipantOverlap([]string{"@CAROL", "alice", "mallory"})
	assert.Equal(t, []string{"alice", "carol"}, got)

	assert.Nil(t, w.ParticipantOverlap([]string{"mallory"}))
}

func TestSourceRef_String(t *testing.T) {
	ref := SourceRef{ChatID: -100123, MessageID: 42}
	assert.Equal(t, "-100123:42", ref.String())
	assert.False(t, ref.IsZero())
	assert.True(t, SourceRef{}.IsZero())
}
