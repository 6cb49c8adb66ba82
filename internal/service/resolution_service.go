package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"group-wager-ledger/internal/core/domain"
	"group-wager-ledger/internal/core/ports"
	"group-wager-ledger/internal/extract"
	"group-wager-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// settledTTL bounds how long a settled source ref stays in the fast-path
// cache. Edits to a message this old no longer arrive in practice.
const settledTTL = 24 * time.Hour

// ResolutionServiceImpl implements ports.Resolver. It consumes raw chat
// events from any number of observation channels and drives wagers
// through creation and settlement. Correctness does not depend on the
// cache or on which channel delivers an event first; the wager store's
// single atomic transition decides every race.
type ResolutionServiceImpl struct {
	extractor *extract.Extractor
	ledger    ports.Ledger
	games     ports.GameStore
	cache     ports.OutcomeCache
	notifier  ports.Notifier
	log       zerolog.Logger
}

// NewResolutionService creates a new ResolutionServiceImpl.
func NewResolutionService(
	extractor *extract.Extractor,
	ledger ports.Ledger,
	games ports.GameStore,
	cache ports.OutcomeCache,
	notifier ports.Notifier,
	log zerolog.Logger,
) *ResolutionServiceImpl {
	return &ResolutionServiceImpl{
		extractor: extractor,
		ledger:    ledger,
		games:     games,
		cache:     cache,
		notifier:  notifier,
		log:       log,
	}
}

// HandleMessageCreated processes a new chat message. A message that is
// not a wager announcement is silently ignored. An announcement creates
// the wager and locks every participant's stake; if any stake cannot be
// locked, the ones already taken are refunded and the wager is
// cancelled, so stake locking is all-or-nothing.
func (s *ResolutionServiceImpl) HandleMessageCreated(ctx context.Context, ev ports.MessageEvent) error {
	if !ev.SenderAuthorized {
		s.log.Debug().Str("source", ev.Source.String()).Msg("message from unauthorized sender ignored")
		return nil
	}

	ann, ok := s.extractor.Announcement(ev.Text, ev.Source)
	if !ok {
		return nil
	}

	wager, err := s.games.CreateWager(ctx, ann)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeDuplicateSource) {
			// The same message delivered by the other observation channel.
			s.log.Debug().Str("source", ev.Source.String()).Str("channel", ev.Channel).Msg("duplicate announcement discarded")
			return nil
		}
		return err
	}

	if err := s.lockStakes(ctx, wager); err != nil {
		return err
	}

	s.notify(ctx, "wager_opened", func() error {
		return s.notifier.WagerOpened(ctx, domain.WagerOpened{
			WagerID:      wager.ID,
			Source:       wager.Source,
			Participants: wager.Participants,
			StakeEach:    wager.Stake,
			PotTotal:     wager.Pot,
			ExpiresAt:    wager.ExpiresAt,
		})
	})

	return nil
}

// lockStakes debits every participant's stake. On the first failure it
// credits back the stakes already taken and cancels the wager.
func (s *ResolutionServiceImpl) lockStakes(ctx context.Context, wager *domain.Wager) error {
	desc := fmt.Sprintf("Stake for wager %s", wager.Source.String())
	var locked []int64

	for _, handle := range wager.Participants {
		user, err := s.ledger.GetUserByHandle(ctx, handle)
		if err == nil {
			_, err = s.ledger.Debit(ctx, user.ID, wager.Stake, domain.TransactionKindBet, desc, &wager.ID)
		}
		if err != nil {
			s.unlockStakes(ctx, wager, locked)
			if cancelErr := s.games.TransitionToCancelled(ctx, wager.ID); cancelErr != nil && !apperror.HasCode(cancelErr, apperror.CodeAlreadyTerminal) {
				s.log.Error().Err(cancelErr).Str("wager_id", wager.ID.String()).Msg("failed to cancel wager after stake lock failure")
			}
			return apperror.ErrStakeLockFailed(fmt.Errorf("participant %s: %w", handle, err))
		}
		locked = append(locked, user.ID)
	}
	return nil
}

func (s *ResolutionServiceImpl) unlockStakes(ctx context.Context, wager *domain.Wager, userIDs []int64) {
	desc := fmt.Sprintf("Stake refund for wager %s", wager.Source.String())
	for _, id := range userIDs {
		if _, err := s.ledger.Credit(ctx, id, wager.Stake, domain.TransactionKindRefund, desc, &wager.ID); err != nil {
			s.log.Error().Err(err).Int64("user_id", id).Str("wager_id", wager.ID.String()).Msg("failed to refund locked stake")
		}
	}
}

// HandleMessageEdited processes an edit of a chat message. An edit that
// marks winners on an active wager settles it; every other edit is
// discarded. Both observation channels deliver the same edit, so the
// whole path must be an idempotent no-op the second time through: the
// cache discards most duplicates cheaply and the store's atomic
// transition catches the rest.
func (s *ResolutionServiceImpl) HandleMessageEdited(ctx context.Context, ev ports.MessageEvent) error {
	if !ev.SenderAuthorized {
		s.log.Debug().Str("source", ev.Source.String()).Msg("edit from unauthorized sender ignored")
		return nil
	}

	marks, ok := s.extractor.WinnerMarks(ev.Text, ev.Source)
	if !ok {
		return nil
	}

	// Fast path: a settled source ref in the cache means the other
	// channel already won. Cache errors fall through to the store.
	if payload, err := s.cache.GetSettled(ctx, ev.Source); err != nil {
		s.log.Warn().Err(err).Str("source", ev.Source.String()).Msg("outcome cache lookup failed")
	} else if payload != nil {
		s.log.Debug().Str("source", ev.Source.String()).Str("channel", ev.Channel).Msg("duplicate settlement edit discarded via cache")
		return nil
	}

	wager, err := s.findWagerForEdit(ctx, ev.Source, s.lookupHandles(ev.Text, marks.Handles()))
	if err != nil {
		if apperror.HasCode(err, apperror.CodeWagerNotFound) || apperror.HasCode(err, apperror.CodeAmbiguousMatch) {
			s.log.Warn().Err(err).Str("source", ev.Source.String()).Msg("winner marks discarded")
			return nil
		}
		return err
	}
	if wager.IsTerminal() {
		s.log.Debug().Str("wager_id", wager.ID.String()).Str("channel", ev.Channel).Msg("edit on terminal wager discarded")
		return nil
	}

	// Only marks naming actual participants count; the rest of the edit
	// is noise.
	winners := wager.ParticipantOverlap(marks.Handles())
	if len(winners) == 0 {
		s.log.Warn().Str("wager_id", wager.ID.String()).Msg("no marked handle is a participant, edit discarded")
		return nil
	}

	if err := s.games.TransitionToCompleted(ctx, wager.ID, winners); err != nil {
		if apperror.HasCode(err, apperror.CodeAlreadyTerminal) {
			// Lost the race to the other channel.
			s.log.Debug().Str("wager_id", wager.ID.String()).Str("channel", ev.Channel).Msg("settlement race lost, duplicate discarded")
			return nil
		}
		return err
	}

	settled, err := s.payout(ctx, wager, winners)
	if err != nil {
		return err
	}

	if payload, err := json.Marshal(settled); err == nil {
		if err := s.cache.MarkSettled(ctx, ev.Source, payload, settledTTL); err != nil {
			s.log.Warn().Err(err).Str("source", ev.Source.String()).Msg("failed to cache settlement")
		}
	}

	s.notify(ctx, "wager_settled", func() error {
		return s.notifier.WagerSettled(ctx, settled)
	})

	return nil
}

// payout distributes the pot among winners. The pot splits evenly with
// any indivisible remainder going to the first winner in participant
// order. Each winner's share is credited gross and the commission taken
// as a separate debit, so the ledger shows both figures.
func (s *ResolutionServiceImpl) payout(ctx context.Context, wager *domain.Wager, winners []string) (domain.WagerSettled, error) {
	share := wager.Pot / int64(len(winners))
	remainder := wager.Pot % int64(len(winners))

	settled := domain.WagerSettled{
		WagerID:  wager.ID,
		Source:   wager.Source,
		GrossPot: wager.Pot,
	}

	for i, handle := range winners {
		gross := share
		if i == 0 {
			gross += remainder
		}

		user, err := s.ledger.GetUserByHandle(ctx, handle)
		if err != nil {
			return settled, apperror.InternalError(fmt.Errorf("winner %s: %w", handle, err))
		}

		net, commission, err := s.ledger.ComputeCommission(ctx, user.ID, gross)
		if err != nil {
			return settled, err
		}

		winDesc := fmt.Sprintf("Winnings for wager %s", wager.Source.String())
		if _, err := s.ledger.Credit(ctx, user.ID, gross, domain.TransactionKindWin, winDesc, &wager.ID); err != nil {
			return settled, err
		}
		if commission > 0 {
			commDesc := fmt.Sprintf("Commission on wager %s", wager.Source.String())
			if _, err := s.ledger.Debit(ctx, user.ID, commission, domain.TransactionKindCommission, commDesc, &wager.ID); err != nil {
				return settled, err
			}
		}

		settled.Payouts = append(settled.Payouts, domain.WinnerPayout{
			Handle:     handle,
			Gross:      gross,
			Net:        net,
			Commission: commission,
		})

		s.log.Info().
			Str("wager_id", wager.ID.String()).
			Str("winner", handle).
			Int64("gross", gross).
			Int64("net", net).
			Int64("commission", commission).
			Msg("winner paid out")
	}

	return settled, nil
}

// lookupHandles widens the marked handles with every other handle
// visible in the edit text. An unmarked co-participant can be what
// makes the participant-overlap lookup unique; only the marked handles
// decide the winners later.
func (s *ResolutionServiceImpl) lookupHandles(text string, marked []string) []string {
	handles := append([]string(nil), marked...)
	seen := map[string]bool{}
	for _, h := range marked {
		seen[domain.NormalizeHandle(h)] = true
	}
	for _, h := range s.extractor.Handles(text) {
		key := domain.NormalizeHandle(h)
		if !seen[key] {
			seen[key] = true
			handles = append(handles, h)
		}
	}
	return handles
}

// findWagerForEdit resolves the wager an edit refers to: by the edited
// message's source ref first, then by participant overlap with the
// handles visible in the edit for reposted or forwarded tables.
func (s *ResolutionServiceImpl) findWagerForEdit(ctx context.Context, ref domain.SourceRef, handles []string) (*domain.Wager, error) {
	wager, err := s.games.FindBySourceRef(ctx, ref)
	if err == nil {
		return wager, nil
	}
	if !apperror.HasCode(err, apperror.CodeWagerNotFound) {
		return nil, err
	}
	return s.games.FindActiveByParticipants(ctx, handles)
}

// CancelBySourceRef administratively voids the wager announced by the
// given message and refunds every stake.
func (s *ResolutionServiceImpl) CancelBySourceRef(ctx context.Context, ref domain.SourceRef) (*domain.Wager, error) {
	wager, err := s.games.FindBySourceRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if wager.IsTerminal() {
		return nil, apperror.ErrAlreadyTerminal()
	}

	if err := s.games.TransitionToCancelled(ctx, wager.ID); err != nil {
		return nil, err
	}

	desc := fmt.Sprintf("Refund for cancelled wager %s", wager.Source.String())
	for _, handle := range wager.Participants {
		user, err := s.ledger.GetUserByHandle(ctx, handle)
		if err != nil {
			s.log.Error().Err(err).Str("handle", handle).Str("wager_id", wager.ID.String()).Msg("cannot refund unknown participant")
			continue
		}
		if _, err := s.ledger.Credit(ctx, user.ID, wager.Stake, domain.TransactionKindRefund, desc, &wager.ID); err != nil {
			s.log.Error().Err(err).Int64("user_id", user.ID).Str("wager_id", wager.ID.String()).Msg("failed to refund cancelled stake")
		}
	}

	wager.Status = domain.WagerStatusCancelled

	s.notify(ctx, "wager_cancelled", func() error {
		return s.notifier.WagerCancelled(ctx, domain.WagerCancelled{
			WagerID:      wager.ID,
			Source:       wager.Source,
			Participants: wager.Participants,
			RefundEach:   wager.Stake,
		})
	})

	return wager, nil
}

// notify delivers an outbound event; failures are logged and dropped so
// notification problems never undo a settlement.
func (s *ResolutionServiceImpl) notify(ctx context.Context, event string, fn func() error) {
	if err := fn(); err != nil {
		s.log.Warn().Err(err).Str("event", event).Msg("notification delivery failed")
	}
}
