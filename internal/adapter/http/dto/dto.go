package dto

import (
	"time"

	"group-wager-ledger/internal/core/domain"
)

// MessageEventRequest is the request body for message ingestion. Both
// observation channels post the same shape; the channel itself comes
// from the X-Channel header.
type MessageEventRequest struct {
	ChatID           int64  `json:"chat_id" binding:"required"`
	MessageID        int64  `json:"message_id" binding:"required"`
	Text             string `json:"text" binding:"required"`
	SenderAuthorized bool   `json:"sender_authorized"`
}

// LoginRequest is the request body for admin login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// CancelWagerRequest identifies the announcement message of the wager
// to cancel.
type CancelWagerRequest struct {
	ChatID    int64 `json:"chat_id" binding:"required"`
	MessageID int64 `json:"message_id" binding:"required"`
}

// CreateUserRequest onboards a chat member so wagers can lock their
// stakes. The id is the chat platform's numeric user id.
type CreateUserRequest struct {
	ID     int64  `json:"id" binding:"required"`
	Handle string `json:"handle" binding:"required,max=64"`
}

// CommissionRequest sets a user's commission override in basis points.
type CommissionRequest struct {
	Bps *int `json:"bps" binding:"required"`
}

// AdjustRequest applies a signed manual balance correction.
type AdjustRequest struct {
	Amount int64  `json:"amount" binding:"required"`
	Reason string `json:"reason" binding:"required,max=200"`
}

// UserResponse is the response body for user queries.
type UserResponse struct {
	ID            int64  `json:"id"`
	Handle        string `json:"handle"`
	Balance       int64  `json:"balance"`
	CommissionBps *int   `json:"commission_bps,omitempty"`
}

// FromUser converts a domain user.
func FromUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Handle:        u.Handle,
		Balance:       u.Balance,
		CommissionBps: u.CommissionBps,
	}
}

// WagerResponse is the response body for wager queries.
type WagerResponse struct {
	ID           string   `json:"id"`
	ChatID       int64    `json:"chat_id"`
	MessageID    int64    `json:"message_id"`
	Participants []string `json:"participants"`
	Stake        int64    `json:"stake"`
	Pot          int64    `json:"pot"`
	Status       string   `json:"status"`
	Winners      []string `json:"winners,omitempty"`
	CreatedAt    string   `json:"created_at"`
	ExpiresAt    string   `json:"expires_at"`
	SettledAt    *string  `json:"settled_at,omitempty"`
}

// FromWager converts a domain wager.
func FromWager(w *domain.Wager) WagerResponse {
	resp := WagerResponse{
		ID:           w.ID.String(),
		ChatID:       w.Source.ChatID,
		MessageID:    w.Source.MessageID,
		Participants: w.Participants,
		Stake:        w.Stake,
		Pot:          w.Pot,
		Status:       string(w.Status),
		Winners:      w.Winners,
		CreatedAt:    w.CreatedAt.Format(time.RFC3339),
		ExpiresAt:    w.ExpiresAt.Format(time.RFC3339),
	}
	if w.SettledAt != nil {
		s := w.SettledAt.Format(time.RFC3339)
		resp.SettledAt = &s
	}
	return resp
}

// FromWagers converts a domain wager slice.
func FromWagers(wagers []domain.Wager) []WagerResponse {
	out := make([]WagerResponse, 0, len(wagers))
	for i := range wagers {
		out = append(out, FromWager(&wagers[i]))
	}
	return out
}

// TransactionResponse is the response body for ledger entries.
type TransactionResponse struct {
	ID          string  `json:"id"`
	UserID      int64   `json:"user_id"`
	Kind        string  `json:"kind"`
	Amount      int64   `json:"amount"`
	Description string  `json:"description"`
	WagerID     *string `json:"wager_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// FromTransaction converts a domain transaction.
func FromTransaction(t *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:          t.ID.String(),
		UserID:      t.UserID,
		Kind:        string(t.Kind),
		Amount:      t.Amount,
		Description: t.Description,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.WagerID != nil {
		s := t.WagerID.String()
		resp.WagerID = &s
	}
	return resp
}

// FromTransactions converts a domain transaction slice.
func FromTransactions(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, FromTransaction(&txns[i]))
	}
	return out
}

// SweepResponse reports the result of a manual expiry sweep.
type SweepResponse struct {
	Expired int `json:"expired"`
}
