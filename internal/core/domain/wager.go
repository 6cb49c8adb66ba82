package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WagerStatus is the lifecycle state of a wager.
// ACTIVE is the only non-terminal state; every transition out of it is final.
type WagerStatus string

const (
	WagerStatusActive    WagerStatus = "ACTIVE"
	WagerStatusCompleted WagerStatus = "COMPLETED"
	WagerStatusCancelled WagerStatus = "CANCELLED"
	WagerStatusExpired   WagerStatus = "EXPIRED"
)

// SourceRef identifies the chat message that announced a wager.
// It correlates later edits of that message back to the wager.
type SourceRef struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int64 `json:"message_id"`
}

// IsZero reports whether the reference is unset.
func (r SourceRef) IsZero() bool {
	return r.ChatID == 0 && r.MessageID == 0
}

func (r SourceRef) String() string {
	return fmt.Sprintf("%d:%d", r.ChatID, r.MessageID)
}

// Wager is a tracked bet among a fixed set of participants with a fixed
// per-player stake. Participants are stored as handles exactly as written
// in the announcement, in order of first appearance.
type Wager struct {
	ID           uuid.UUID   `json:"id"`
	Source       SourceRef   `json:"source"`
	Participants []string    `json:"participants"`
	Stake        int64       `json:"stake"` // per participant, minor units
	Pot          int64       `json:"pot"`   // stake * len(participants), fixed at creation
	Status       WagerStatus `json:"status"`
	Winners      []string    `json:"winners,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	ExpiresAt    time.Time   `json:"expires_at"`
	SettledAt    *time.Time  `json:"settled_at,omitempty"`
}

// IsTerminal reports whether the wager has left the ACTIVE state.
func (w *Wager) IsTerminal() bool {
	return w.Status != WagerStatusActive
}

// IsExpired reports whether an active wager has passed its deadline.
func (w *Wager) IsExpired(now time.Time) bool {
	return w.Status == WagerStatusActive && now.After(w.ExpiresAt)
}

// HasParticipant reports whether handle names one of the wager's
// participants, ignoring case and mention sigil.
func (w *Wager) HasParticipant(handle string) bool {
	for _, p := range w.Participants {
		if HandleEquals(p, handle) {
			return true
		}
	}
	return false
}

// ParticipantOverlap returns the wager participants, in participant order,
// that appear in handles.
func (w *Wager) ParticipantOverlap(handles []string) []string {
	var overlap []string
	for _, p := range w.Participants {
		for _, h := range handles {
			if HandleEquals(p, h) {
				overlap = append(overlap, p)
				break
			}
		}
	}
	return overlap
}
