// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chessbox/internal/config"
	"github.com/lgbarn/chessbox/internal/errors"
)

var (
	// Files
	configFile   = flag.String("config", "", "Config file (default: chessbox/config.json in the XDG config dirs)")
	snapshotPath = flag.String("snapshot", "", "Saved game file (default: chessbox/game.json in the XDG state dir)")

	// Game options
	singlePlayer = flag.Bool("single", false, "Play White against the computer")
	multiPlayer  = flag.Bool("multi", false, "Two players share the terminal")
	seed         = flag.Int64("seed", 0, "Seed for the computer opponent (0 = from the clock)")
	startFEN     = flag.String("fen", "", "Start from this FEN position instead of the saved game")
	autoSave     = flag.Bool("autosave", false, "Save the game after every move")
	fresh        = flag.Bool("fresh", false, "Ignore the saved game and start a new one")

	// Output options
	noColour    = flag.Bool("nocolor", false, "Disable coloured output")
	unicode     = flag.Bool("unicode", false, "Draw pieces with Unicode chess symbols")
	noCoords    = flag.Bool("nocoords", false, "Don't print rank and file labels")
	moveFormat  = flag.String("notation", "", "Move notation: lalg, halg, elalg, uci")
	verbosity   = flag.Int("v", -1, "Verbosity: 0 quiet, 1 normal, 2 verbose")
	quiet       = flag.Bool("s", false, "Silent mode (no diagnostics)")
	help        = flag.Bool("h", false, "Show help")
	showVersion = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if *snapshotPath != "" {
		cfg.SnapshotPath = *snapshotPath
	}
	if err := applyGameFlags(cfg); err != nil {
		return err
	}
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}

	if *verbosity >= 0 {
		cfg.Verbosity = *verbosity
	}
	if *quiet {
		cfg.Verbosity = config.Quiet
	}
	return nil
}

// applyGameFlags configures the game session.
func applyGameFlags(cfg *config.Config) error {
	if mode, ok, err := modeFlag(); err != nil {
		return err
	} else if ok {
		cfg.Game.SinglePlayer = mode
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if *startFEN != "" {
		cfg.Game.StartFEN = *startFEN
	}
	if *autoSave {
		cfg.Game.AutoSave = true
	}
	if *fresh {
		cfg.Game.Resume = false
	}
	return nil
}

// applyOutputFlags configures board rendering and move notation.
func applyOutputFlags(cfg *config.Config) error {
	if *noColour {
		cfg.Output.Colour = false
	}
	if *unicode {
		cfg.Output.Unicode = true
	}
	if *noCoords {
		cfg.Output.Coordinates = false
	}
	if *moveFormat != "" {
		format, err := config.ParseOutputFormat(*moveFormat)
		if err != nil {
			return err
		}
		cfg.Output.Format = format
	}
	return nil
}

// modeFlag returns the player mode requested on the command line, if any.
func modeFlag() (single bool, ok bool, err error) {
	switch {
	case *singlePlayer && *multiPlayer:
		return false, false, fmt.Errorf("-single and -multi are mutually exclusive: %w", errors.ErrInvalidConfig)
	case *singlePlayer:
		return true, true, nil
	case *multiPlayer:
		return false, true, nil
	}
	return false, false, nil
}
