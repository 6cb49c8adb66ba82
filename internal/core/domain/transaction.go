package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind classifies a ledger entry.
type TransactionKind string

const (
	TransactionKindDeposit    TransactionKind = "DEPOSIT"
	TransactionKindBet        TransactionKind = "BET"
	TransactionKindWin        TransactionKind = "WIN"
	TransactionKindRefund     TransactionKind = "REFUND"
	TransactionKindAdjustment TransactionKind = "ADJUSTMENT"
	TransactionKindCommission TransactionKind = "COMMISSION"
)

// Transaction is an immutable, append-only ledger entry. The sum of a
// user's transaction amounts always equals that user's current balance.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	UserID      int64           `json:"user_id"`
	Kind        TransactionKind `json:"kind"`
	Amount      int64           `json:"amount"` // signed: debits negative, credits positive
	Description string          `json:"description"`
	WagerID     *uuid.UUID      `json:"wager_id,omitempty"` // nil for manual adjustments
	CreatedAt   time.Time       `json:"created_at"`
}
