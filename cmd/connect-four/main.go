package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"

	"github.com/citorva/connect-four/internal/config"
	"github.com/citorva/connect-four/internal/display"
	"github.com/citorva/connect-four/internal/domain"
	"github.com/citorva/connect-four/internal/logging"
	"github.com/citorva/connect-four/internal/player"
	redisrepo "github.com/citorva/connect-four/internal/repository/redis"
	sqliterepo "github.com/citorva/connect-four/internal/repository/sqlite"
	"github.com/citorva/connect-four/internal/service/save"
)

func main() {
	// running without a .env file is fine
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(logging.ParseLevel(cfg.LogLevel))
	ctx := context.Background()

	store, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open saved-game store", "err", err)
		os.Exit(1)
	}
	defer closeStore()

	saver := save.NewService(store, logger)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          display.Prompt("connect-four"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		logger.Error("failed to initialize terminal input", "err", err)
		os.Exit(1)
	}
	defer rl.Close()

	renderer := display.New(display.ColorEnabled(cfg.Color))

	playerOne := player.NewCLI("Player 1", rl, os.Stdout, renderer)
	playerTwo := player.NewCLI("Player 2", rl, os.Stdout, renderer)
	bot := player.NewRandom("Random bot", nil)

	for {
		players, err := askChoice(rl, "Number of players", []string{"1", "2"})
		if err != nil {
			return
		}

		name, err := askLine(rl, "Player 1 name")
		if err != nil {
			return
		}
		playerOne.Rename(name)

		var second domain.Player = bot
		if players == "2" {
			name, err := askLine(rl, "Player 2 name")
			if err != nil {
				return
			}
			playerTwo.Rename(name)
			second = playerTwo
		}

		engine := domain.NewEngine(playerOne, second)
		if resumed, ok, err := saver.Resume(ctx, playerOne, second); err != nil {
			logger.Warn("could not load saved game", "err", err)
		} else if ok {
			answer, err := askChoice(rl, "Resume saved game?", []string{"y", "n"})
			if err != nil {
				return
			}
			if answer == "y" {
				engine = resumed
			} else if err := saver.Finish(ctx); err != nil {
				logger.Warn("could not discard saved game", "err", err)
			}
		}

		if err := playGame(ctx, engine, saver, renderer, logger); err != nil {
			// a player bailing out (EOF, ^D) ends the session; the last
			// checkpoint stays on disk for the next run
			logger.Info("game interrupted", "err", err)
			return
		}

		again, err := askChoice(rl, "Play again?", []string{"y", "n"})
		if err != nil || again == "n" {
			return
		}
	}
}

// playGame drives the engine ply by ply, checkpointing after each one so the
// game can be resumed after an interruption.
func playGame(ctx context.Context, engine *domain.Engine, saver *save.Service, renderer *display.Renderer, logger *slog.Logger) error {
	for !engine.Finished() {
		if _, err := engine.PlayTurn(); err != nil {
			return err
		}
		if err := saver.Checkpoint(ctx, engine); err != nil {
			logger.Warn("checkpoint failed", "err", err)
		}
	}

	fmt.Println()
	fmt.Println(renderer.Board(engine.Board()))

	result := engine.Result()
	switch result.Status {
	case domain.StatusWon:
		fmt.Printf("%s wins!\n", engine.Player(result.Winner).Name())
	case domain.StatusDraw:
		fmt.Println("Draw game")
	}

	if err := saver.Finish(ctx); err != nil {
		logger.Warn("could not remove finished game", "err", err)
	}
	return nil
}

// openStore picks the checkpoint backend. Redis is opt-in and degrades to the
// embedded database when unreachable, so startup never fails on a cache.
func openStore(cfg *config.Config, logger *slog.Logger) (save.Store, func(), error) {
	if cfg.RedisEnabled {
		store, err := redisrepo.New(cfg.RedisURL, cfg.RedisPassword, logger)
		if err != nil {
			logger.Warn("could not connect to redis, falling back to sqlite", "err", err)
		} else {
			return store, func() { store.Close() }, nil
		}
	}

	store, err := sqliterepo.New(cfg.DBPath, logger)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { store.Close() }, nil
}

func askLine(rl *readline.Instance, prompt string) (string, error) {
	for {
		fmt.Println(prompt)
		line, err := rl.Readline()
		if err != nil {
			return "", err
		}
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
}

func askChoice(rl *readline.Instance, prompt string, options []string) (string, error) {
	label := fmt.Sprintf("%s [%s]", prompt, strings.Join(options, "/"))
	for {
		line, err := askLine(rl, label)
		if err != nil {
			return "", err
		}
		for _, option := range options {
			if line == option {
				return option, nil
			}
		}
	}
}
