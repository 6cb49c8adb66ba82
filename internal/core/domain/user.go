package domain

import (
	"strings"
	"time"
)

// User is a chat member with a ledger balance.
// The ID is the stable numeric identifier assigned by the chat platform;
// the handle is the mutable display name used for text matching and is
// not guaranteed unique over time.
type User struct {
	ID            int64     `json:"id"`
	Handle        string    `json:"handle"`
	Balance       int64     `json:"balance"` // minor currency units, signed
	CommissionBps *int      `json:"commission_bps,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NormalizeHandle strips the mention sigil and lowercases a handle so
// "@Player1" and "player1" compare equal.
func NormalizeHandle(handle string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(handle), "@"))
}

// HandleEquals reports whether two handles refer to the same name,
// ignoring case and a leading sigil.
func HandleEquals(a, b string) bool {
	return NormalizeHandle(a) == NormalizeHandle(b)
}
