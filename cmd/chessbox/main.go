// chessbox is a terminal chess game for two players or one player against a
// one-ply heuristic opponent.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/lgbarn/chessbox/internal/config"
	"github.com/lgbarn/chessbox/internal/engine"
	"github.com/lgbarn/chessbox/internal/snapshot"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("chessbox version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := setupStore(cfg)
	game := startGame(cfg, store)

	s := newSession(cfg, game, store)
	if err := s.run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the -config file when given, otherwise the XDG config file.
func loadConfig() (*config.Config, error) {
	if *configFile == "" {
		return config.Load()
	}
	cfg := config.NewConfig()
	if err := cfg.LoadFile(*configFile); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupStore opens the snapshot store. Without one the game is not saved.
func setupStore(cfg *config.Config) *snapshot.Store {
	store, err := snapshot.NewStore(cfg.SnapshotPath)
	if err != nil {
		cfg.Logf(config.Quiet, "Saving disabled: %v", err)
		return nil
	}
	return store
}

// startGame builds the first game of the session: the -fen position, the
// saved game, or a new one.
func startGame(cfg *config.Config, store *snapshot.Store) *engine.Game {
	s := cfg.Game.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	opts := []engine.GameOption{
		engine.WithRandomizer(rand.New(rand.NewSource(s))), //nolint:gosec // G404: move variety, not security
		engine.WithSinglePlayer(cfg.Game.SinglePlayer),
	}

	if cfg.Game.StartFEN != "" {
		board, err := engine.NewBoardFromFEN(cfg.Game.StartFEN)
		if err == nil {
			cfg.Logf(config.Verbose, "Starting from %s", cfg.Game.StartFEN)
			return engine.NewGame(append(opts, engine.WithBoard(board))...)
		}
		cfg.Logf(config.Quiet, "Ignoring start position: %v", err)
	}

	if store == nil || !cfg.Game.Resume {
		return engine.NewGame(opts...)
	}

	game, err := store.LoadOrNew(opts...)
	if err != nil {
		cfg.Logf(config.Quiet, "Discarding saved game: %v", err)
	}

	// An explicit mode flag beats the saved mode; switching starts a new game.
	if mode, ok, _ := modeFlag(); ok && game.SetSinglePlayer(mode) {
		cfg.Logf(config.Normal, "Mode changed, starting new game %s", game.Name)
	}
	return game
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessbox [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess in the terminal. Moves are typed as origin and destination\n")
	fmt.Fprintf(os.Stderr, "squares, e.g. \"e2 e4\" or \"e2e4\".\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove notations (-notation):\n")
	fmt.Fprintf(os.Stderr, "  lalg   Long algebraic (e2e4)\n")
	fmt.Fprintf(os.Stderr, "  halg   Hyphenated long algebraic (e2-e4)\n")
	fmt.Fprintf(os.Stderr, "  elalg  Enhanced long algebraic (Ng1-f3, default)\n")
	fmt.Fprintf(os.Stderr, "  uci    UCI format\n")
}
