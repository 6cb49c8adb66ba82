// Package notify holds outbound notification adapters. The default
// adapter writes outcome events to the structured log, where a chat
// relay or any other consumer can tail them.
package notify

import (
	"context"

	"group-wager-ledger/internal/core/domain"

	"github.com/rs/zerolog"
)

// LogNotifier implements ports.Notifier by emitting each outcome event
// as a structured log record.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) WagerOpened(_ context.Context, ev domain.WagerOpened) error {
	n.log.Info().
		Str("event", "wager_opened").
		Str("wager_id", ev.WagerID.String()).
		Str("source", ev.Source.String()).
		Strs("participants", ev.Participants).
		Int64("stake_each", ev.StakeEach).
		Int64("pot_total", ev.PotTotal).
		Time("expires_at", ev.ExpiresAt).
		Msg("wager opened")
	return nil
}

func (n *LogNotifier) WagerSettled(_ context.Context, ev domain.WagerSettled) error {
	e := n.log.Info().
		Str("event", "wager_settled").
		Str("wager_id", ev.WagerID.String()).
		Str("source", ev.Source.String()).
		Int64("gross_pot", ev.GrossPot)
	for _, p := range ev.Payouts {
		e = e.Dict(p.Handle, zerolog.Dict().
			Int64("gross", p.Gross).
			Int64("net", p.Net).
			Int64("commission", p.Commission))
	}
	e.Msg("wager settled")
	return nil
}

func (n *LogNotifier) WagerExpired(_ context.Context, ev domain.WagerExpiredRefunded) error {
	n.log.Info().
		Str("event", "wager_expired").
		Str("wager_id", ev.WagerID.String()).
		Str("source", ev.Source.String()).
		Strs("participants", ev.Participants).
		Int64("refund_each", ev.RefundEach).
		Msg("wager expired, stakes refunded")
	return nil
}

func (n *LogNotifier) WagerCancelled(_ context.Context, ev domain.WagerCancelled) error {
	n.log.Info().
		Str("event", "wager_cancelled").
		Str("wager_id", ev.WagerID.String()).
		Str("source", ev.Source.String()).
		Strs("participants", ev.Participants).
		Int64("refund_each", ev.RefundEach).
		Msg("wager cancelled, stakes refunded")
	return nil
}
