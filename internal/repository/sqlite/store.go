package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/citorva/connect-four/internal/domain"
)

// Schema defines the saved-game table. One row per game, latest snapshot only.
const Schema = `
CREATE TABLE IF NOT EXISTS saved_game (
	game_id TEXT PRIMARY KEY,
	board TEXT NOT NULL,
	turn INTEGER NOT NULL,
	moves INTEGER NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_saved_game_updated_at ON saved_game(updated_at);
`

// Store keeps game checkpoints in an embedded SQLite database.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// New opens (or creates) the database at path and applies the schema.
// Use ":memory:" for an ephemeral store.
func New(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	logger.Debug("sqlite store ready", "path", path)
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save upserts the snapshot for a game id.
func (s *Store) Save(ctx context.Context, id string, snap domain.Snapshot, updatedAt time.Time) error {
	query := `
	INSERT INTO saved_game (game_id, board, turn, moves, updated_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (game_id) DO UPDATE SET
		board = excluded.board,
		turn = excluded.turn,
		moves = excluded.moves,
		updated_at = excluded.updated_at;
	`
	if _, err := s.db.ExecContext(ctx, query, id, snap.Board, int(snap.Turn), snap.Moves, updatedAt); err != nil {
		return fmt.Errorf("upsert saved game: %w", err)
	}
	return nil
}

// LoadLatest returns the most recently updated checkpoint, or
// domain.ErrNoSavedGame when the table is empty.
func (s *Store) LoadLatest(ctx context.Context) (string, domain.Snapshot, error) {
	query := `
	SELECT game_id, board, turn, moves
	FROM saved_game
	ORDER BY updated_at DESC, game_id
	LIMIT 1;
	`
	var (
		id   string
		snap domain.Snapshot
		turn int
	)
	err := s.db.QueryRowContext(ctx, query).Scan(&id, &snap.Board, &turn, &snap.Moves)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.Snapshot{}, domain.ErrNoSavedGame
	}
	if err != nil {
		return "", domain.Snapshot{}, fmt.Errorf("query saved game: %w", err)
	}
	snap.Turn = domain.Token(turn)
	return id, snap, nil
}

// Delete removes the checkpoint for a game id. Deleting an absent id is not
// an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM saved_game WHERE game_id = ?;`, id); err != nil {
		return fmt.Errorf("delete saved game: %w", err)
	}
	return nil
}
