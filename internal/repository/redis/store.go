package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/citorva/connect-four/internal/domain"
)

const (
	gameKeyPrefix = "connect4:saved:"
	latestKey     = "connect4:saved:latest"
)

// Store keeps game checkpoints in Redis, one hash per game plus a pointer to
// the most recent id. Used instead of the SQLite store when Redis is enabled.
type Store struct {
	client *redis.Client
	logger *slog.Logger
}

// New connects and pings. The caller decides what to do when Redis is down;
// the binary falls back to the embedded store rather than failing startup.
func New(addr, password string, logger *slog.Logger) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	logger.Debug("redis store ready", "addr", addr)
	return &Store{client: client, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func gameKey(id string) string {
	return gameKeyPrefix + id
}

func (s *Store) Save(ctx context.Context, id string, snap domain.Snapshot, updatedAt time.Time) error {
	fields := map[string]interface{}{
		"board":      snap.Board,
		"turn":       int(snap.Turn),
		"moves":      snap.Moves,
		"updated_at": updatedAt.Format(time.RFC3339Nano),
	}
	if err := s.client.HSet(ctx, gameKey(id), fields).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := s.client.Set(ctx, latestKey, id, 0).Err(); err != nil {
		return fmt.Errorf("update latest pointer: %w", err)
	}
	return nil
}

func (s *Store) LoadLatest(ctx context.Context) (string, domain.Snapshot, error) {
	id, err := s.client.Get(ctx, latestKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.Snapshot{}, domain.ErrNoSavedGame
	}
	if err != nil {
		return "", domain.Snapshot{}, fmt.Errorf("read latest pointer: %w", err)
	}

	fields, err := s.client.HGetAll(ctx, gameKey(id)).Result()
	if err != nil {
		return "", domain.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	if len(fields) == 0 {
		// dangling pointer, treat as empty
		_ = s.client.Del(ctx, latestKey).Err()
		return "", domain.Snapshot{}, domain.ErrNoSavedGame
	}

	turn, err := strconv.Atoi(fields["turn"])
	if err != nil {
		return "", domain.Snapshot{}, domain.ErrBadSnapshot
	}
	moves, err := strconv.Atoi(fields["moves"])
	if err != nil {
		return "", domain.Snapshot{}, domain.ErrBadSnapshot
	}

	snap := domain.Snapshot{
		Board: fields["board"],
		Turn:  domain.Token(turn),
		Moves: moves,
	}
	return id, snap, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, gameKey(id)).Err(); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	latest, err := s.client.Get(ctx, latestKey).Result()
	if err == nil && latest == id {
		if err := s.client.Del(ctx, latestKey).Err(); err != nil {
			return fmt.Errorf("clear latest pointer: %w", err)
		}
	} else if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("read latest pointer: %w", err)
	}
	return nil
}
