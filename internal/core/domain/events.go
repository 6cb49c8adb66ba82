package domain

import (
	"time"

	"github.com/google/uuid"
)

// Outcome events emitted to the notification boundary after a wager
// changes state. Delivery failures never roll back the change that
// produced the event.

// WagerOpened is emitted once all stakes are locked.
type WagerOpened struct {
	WagerID      uuid.UUID `json:"wager_id"`
	Source       SourceRef `json:"source"`
	Participants []string  `json:"participants"`
	StakeEach    int64     `json:"stake_each"`
	PotTotal     int64     `json:"pot_total"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// WinnerPayout describes one winner's share of a settled pot.
type WinnerPayout struct {
	Handle     string `json:"handle"`
	Gross      int64  `json:"gross"`
	Net        int64  `json:"net"`
	Commission int64  `json:"commission"`
}

// WagerSettled is emitted by the event that wins the completion race.
type WagerSettled struct {
	WagerID  uuid.UUID      `json:"wager_id"`
	Source   SourceRef      `json:"source"`
	GrossPot int64          `json:"gross_pot"`
	Payouts  []WinnerPayout `json:"payouts"`
}

// WagerExpiredRefunded is emitted after an expiry sweep refunds stakes.
type WagerExpiredRefunded struct {
	WagerID      uuid.UUID `json:"wager_id"`
	Source       SourceRef `json:"source"`
	Participants []string  `json:"participants"`
	RefundEach   int64     `json:"refund_each"`
}

// WagerCancelled is emitted after an administrative cancellation.
type WagerCancelled struct {
	WagerID      uuid.UUID `json:"wager_id"`
	Source       SourceRef `json:"source"`
	Participants []string  `json:"participants"`
	RefundEach   int64     `json:"refund_each"`
}
