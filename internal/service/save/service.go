package save

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/citorva/connect-four/internal/domain"
)

// Store persists at most the latest snapshot per game. Terminal games are
// removed, never archived; game history stays out of scope.
type Store interface {
	Save(ctx context.Context, id string, snap domain.Snapshot, updatedAt time.Time) error
	LoadLatest(ctx context.Context) (string, domain.Snapshot, error)
	Delete(ctx context.Context, id string) error
}

// Service checkpoints the running game after every ply and can rebuild an
// engine from the most recent checkpoint.
type Service struct {
	store  Store
	logger *slog.Logger
	gameID string
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Checkpoint writes the current snapshot. Finished games are not saved; call
// Finish instead.
func (s *Service) Checkpoint(ctx context.Context, e *domain.Engine) error {
	if e.Finished() {
		return nil
	}
	if s.gameID == "" {
		s.gameID = uuid.NewString()
	}
	if err := s.store.Save(ctx, s.gameID, e.Snapshot(), time.Now().UTC()); err != nil {
		return fmt.Errorf("checkpoint game %s: %w", s.gameID, err)
	}
	return nil
}

// Finish drops the checkpoint of the current game, if any. Also used to
// discard a loaded save the user declined to resume.
func (s *Service) Finish(ctx context.Context) error {
	if s.gameID == "" {
		return nil
	}
	id := s.gameID
	s.gameID = ""
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete saved game %s: %w", id, err)
	}
	return nil
}

// Resume rebuilds an engine from the latest checkpoint. The second return is
// false when there is nothing to resume. A checkpoint that fails validation is
// discarded rather than surfaced: losing a corrupt save must not block play.
func (s *Service) Resume(ctx context.Context, playerOne, playerTwo domain.Player) (*domain.Engine, bool, error) {
	id, snap, err := s.store.LoadLatest(ctx)
	if errors.Is(err, domain.ErrNoSavedGame) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load saved game: %w", err)
	}

	engine, err := domain.RestoreEngine(snap, playerOne, playerTwo)
	if err != nil {
		s.logger.Warn("discarding unusable saved game", "game_id", id, "err", err)
		_ = s.store.Delete(ctx, id)
		return nil, false, nil
	}

	s.gameID = id
	return engine, true, nil
}
