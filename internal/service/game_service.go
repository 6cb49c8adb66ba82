package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"group-wager-ledger/internal/core/domain"
	"group-wager-ledger/internal/core/ports"
	"group-wager-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// GameServiceImpl implements ports.GameStore. Lifecycle transitions out
// of ACTIVE go through the repository's compare-and-transition so exactly
// one caller wins regardless of how many observation channels race.
type GameServiceImpl struct {
	wagerRepo    ports.WagerRepository
	expiryWindow time.Duration
	log          zerolog.Logger
}

// NewGameService creates a new GameServiceImpl.
func NewGameService(wagerRepo ports.WagerRepository, expiryWindow time.Duration, log zerolog.Logger) *GameServiceImpl {
	return &GameServiceImpl{
		wagerRepo:    wagerRepo,
		expiryWindow: expiryWindow,
		log:          log,
	}
}

// CreateWager records a new active wager from a parsed announcement.
// The source message reference is unique; a second announcement from the
// same message is WGR_001.
func (s *GameServiceImpl) CreateWager(ctx context.Context, ann domain.Announcement) (*domain.Wager, error) {
	if len(ann.Participants) < 2 || ann.Stake <= 0 {
		return nil, apperror.Validation("announcement needs at least two participants and a positive stake")
	}

	existing, err := s.wagerRepo.GetBySourceRef(ctx, ann.Source)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check source ref: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateSource()
	}

	now := time.Now().UTC()
	wager := &domain.Wager{
		ID:           uuid.New(),
		Source:       ann.Source,
		Participants: ann.Participants,
		Stake:        ann.Stake,
		Pot:          ann.Stake * int64(len(ann.Participants)),
		Status:       domain.WagerStatusActive,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.expiryWindow),
	}

	if err := s.wagerRepo.Create(ctx, wager); err != nil {
		// A racing create from the other channel can slip past the
		// existence check; the unique constraint closes that window.
		if errors.Is(err, ports.ErrDuplicateSourceRef) {
			return nil, apperror.ErrDuplicateSource()
		}
		return nil, apperror.InternalError(fmt.Errorf("create wager: %w", err))
	}

	s.log.Info().
		Str("wager_id", wager.ID.String()).
		Str("source", wager.Source.String()).
		Int("participants", len(wager.Participants)).
		Int64("stake", wager.Stake).
		Int64("pot", wager.Pot).
		Msg("wager created")

	return wager, nil
}

// GetWager fetches a wager by ID.
func (s *GameServiceImpl) GetWager(ctx context.Context, id uuid.UUID) (*domain.Wager, error) {
	wager, err := s.wagerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("fetch wager: %w", err))
	}
	if wager == nil {
		return nil, apperror.ErrWagerNotFound()
	}
	return wager, nil
}

// FindBySourceRef fetches the wager announced by the given message, in
// any lifecycle state. Returns WGR_002 when none exists.
func (s *GameServiceImpl) FindBySourceRef(ctx context.Context, ref domain.SourceRef) (*domain.Wager, error) {
	wager, err := s.wagerRepo.GetBySourceRef(ctx, ref)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("fetch wager by source: %w", err))
	}
	if wager == nil {
		return nil, apperror.ErrWagerNotFound()
	}
	return wager, nil
}

// FindActiveByParticipants locates the single active wager whose
// participant set overlaps the given handles. Zero matches is WGR_002;
// more than one is WGR_003 and the caller must not guess.
func (s *GameServiceImpl) FindActiveByParticipants(ctx context.Context, handles []string) (*domain.Wager, error) {
	if len(handles) == 0 {
		return nil, apperror.ErrWagerNotFound()
	}

	active, err := s.wagerRepo.ListActive(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list active wagers: %w", err))
	}

	var match *domain.Wager
	for i := range active {
		if len(active[i].ParticipantOverlap(handles)) == 0 {
			continue
		}
		if match != nil {
			return nil, apperror.ErrAmbiguousMatch()
		}
		match = &active[i]
	}
	if match == nil {
		return nil, apperror.ErrWagerNotFound()
	}
	return match, nil
}

// ListWagers lists wagers, optionally filtered by status.
func (s *GameServiceImpl) ListWagers(ctx context.Context, status *domain.WagerStatus, limit int) ([]domain.Wager, error) {
	wagers, err := s.wagerRepo.List(ctx, status, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wagers: %w", err))
	}
	return wagers, nil
}

// ListActive lists all active wagers.
func (s *GameServiceImpl) ListActive(ctx context.Context) ([]domain.Wager, error) {
	wagers, err := s.wagerRepo.ListActive(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list active wagers: %w", err))
	}
	return wagers, nil
}

// TransitionToCompleted moves an active wager to COMPLETED with the
// winning handles. WGR_004 when the wager already left ACTIVE.
func (s *GameServiceImpl) TransitionToCompleted(ctx context.Context, id uuid.UUID, winners []string) error {
	return s.transition(ctx, id, domain.WagerStatusCompleted, winners)
}

// TransitionToCancelled moves an active wager to CANCELLED.
func (s *GameServiceImpl) TransitionToCancelled(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, domain.WagerStatusCancelled, nil)
}

// TransitionToExpired moves an active wager to EXPIRED.
func (s *GameServiceImpl) TransitionToExpired(ctx context.Context, id uuid.UUID) error {
	return s.transition(ctx, id, domain.WagerStatusExpired, nil)
}

func (s *GameServiceImpl) transition(ctx context.Context, id uuid.UUID, to domain.WagerStatus, winners []string) error {
	ok, err := s.wagerRepo.CompareAndTransition(ctx, id, to, winners, time.Now().UTC())
	if err != nil {
		return apperror.InternalError(fmt.Errorf("transition wager to %s: %w", to, err))
	}
	if !ok {
		return apperror.ErrAlreadyTerminal()
	}

	s.log.Info().
		Str("wager_id", id.String()).
		Str("status", string(to)).
		Strs("winners", winners).
		Msg("wager transitioned")

	return nil
}
