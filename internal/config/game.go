package config

import (
	"fmt"

	"github.com/lgbarn/chessbox/internal/engine"
	"github.com/lgbarn/chessbox/internal/errors"
)

// GameConfig holds settings for the game session.
type GameConfig struct {
	// SinglePlayer lets the heuristic opponent play Black
	SinglePlayer bool

	// Seed seeds the opponent's randomizer; 0 picks a seed from the clock
	Seed int64

	// StartFEN starts the session from this position instead of the saved
	// game; later new games use the standard layout
	StartFEN string

	// AutoSave writes the snapshot after every move, not only on exit
	AutoSave bool

	// Resume restores the saved game on startup
	Resume bool
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		Resume: true,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.StartFEN == "" {
		return nil
	}
	if _, err := engine.NewBoardFromFEN(g.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}
