package service

import (
	"context"
	"fmt"
	"time"

	"group-wager-ledger/internal/core/domain"
	"group-wager-ledger/internal/core/ports"
	"group-wager-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// ExpiryServiceImpl sweeps active wagers past their deadline, voids them
// and refunds every stake. The transition runs before any refund: a
// sweep that loses the race to a settlement edit gets WGR_004 and
// touches no balances.
type ExpiryServiceImpl struct {
	ledger   ports.Ledger
	games    ports.GameStore
	notifier ports.Notifier
	interval time.Duration
	log      zerolog.Logger
}

// NewExpiryService creates a new ExpiryServiceImpl.
func NewExpiryService(
	ledger ports.Ledger,
	games ports.GameStore,
	notifier ports.Notifier,
	interval time.Duration,
	log zerolog.Logger,
) *ExpiryServiceImpl {
	return &ExpiryServiceImpl{
		ledger:   ledger,
		games:    games,
		notifier: notifier,
		interval: interval,
		log:      log,
	}
}

// Run sweeps on the configured interval until ctx is cancelled.
func (s *ExpiryServiceImpl) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.interval).Msg("expiry sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("expiry sweeper stopped")
			return
		case <-ticker.C:
			if n, err := s.SweepOnce(ctx); err != nil {
				s.log.Error().Err(err).Msg("expiry sweep failed")
			} else if n > 0 {
				s.log.Info().Int("expired", n).Msg("expiry sweep completed")
			}
		}
	}
}

// SweepOnce expires every active wager past its deadline and returns how
// many were expired. A wager that settles mid-sweep is skipped.
func (s *ExpiryServiceImpl) SweepOnce(ctx context.Context) (int, error) {
	active, err := s.games.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	expired := 0
	for i := range active {
		wager := &active[i]
		if !wager.IsExpired(now) {
			continue
		}
		if err := s.ExpireWager(ctx, wager); err != nil {
			if apperror.HasCode(err, apperror.CodeAlreadyTerminal) {
				continue
			}
			s.log.Error().Err(err).Str("wager_id", wager.ID.String()).Msg("failed to expire wager")
			continue
		}
		expired++
	}
	return expired, nil
}

// ExpireWager voids a single wager and refunds every participant's
// stake. WGR_004 when the wager already left ACTIVE.
func (s *ExpiryServiceImpl) ExpireWager(ctx context.Context, wager *domain.Wager) error {
	if err := s.games.TransitionToExpired(ctx, wager.ID); err != nil {
		return err
	}

	desc := fmt.Sprintf("Refund for expired wager %s", wager.Source.String())
	for _, handle := range wager.Participants {
		user, err := s.ledger.GetUserByHandle(ctx, handle)
		if err != nil {
			s.log.Error().Err(err).Str("handle", handle).Str("wager_id", wager.ID.String()).Msg("cannot refund unknown participant")
			continue
		}
		if _, err := s.ledger.Credit(ctx, user.ID, wager.Stake, domain.TransactionKindRefund, desc, &wager.ID); err != nil {
			s.log.Error().Err(err).Int64("user_id", user.ID).Str("wager_id", wager.ID.String()).Msg("failed to refund expired stake")
		}
	}

	s.log.Info().
		Str("wager_id", wager.ID.String()).
		Str("source", wager.Source.String()).
		Int64("refund_each", wager.Stake).
		Msg("wager expired and refunded")

	if err := s.notifier.WagerExpired(ctx, domain.WagerExpiredRefunded{
		WagerID:      wager.ID,
		Source:       wager.Source,
		Participants: wager.Participants,
		RefundEach:   wager.Stake,
	}); err != nil {
		s.log.Warn().Err(err).Str("wager_id", wager.ID.String()).Msg("notification delivery failed")
	}

	return nil
}
