package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessbox/internal/errors"
)

// OutputFormat represents the notation moves are printed in.
type OutputFormat int

const (
	LALG  OutputFormat = iota // Long algebraic (e2e4)
	HALG                      // Hyphenated long algebraic (e2-e4, e2xd3)
	ELALG                     // Enhanced long algebraic (Ng1-f3)
	UCI                       // UCI format (e7e8q)
)

var formatNames = []string{"lalg", "halg", "elalg", "uci"}

// String returns the name used in config files and flags.
func (f OutputFormat) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseOutputFormat converts a format name to an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	for i, n := range formatNames {
		if strings.EqualFold(name, n) {
			return OutputFormat(i), nil
		}
	}
	return 0, fmt.Errorf("unknown notation %q: %w", name, errors.ErrInvalidConfig)
}

// OutputConfig holds settings for rendering the board.
type OutputConfig struct {
	// Colour enables ANSI colours for pieces and highlighted squares
	Colour bool

	// Unicode draws pieces with chess glyphs instead of letters
	Unicode bool

	// Coordinates prints file letters and rank numbers around the board
	Coordinates bool

	// ShowMoves highlights the legal destinations of a queried piece
	ShowMoves bool

	// Format is the move notation
	Format OutputFormat
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Colour:      true,
		Coordinates: true,
		ShowMoves:   true,
		Format:      ELALG,
	}
}
