// Package config provides configuration for chessbox.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessbox/internal/errors"
)

// Verbosity levels for diagnostic output on LogFile.
const (
	Quiet   = 0 // only errors
	Normal  = 1 // game events such as saves and restores
	Verbose = 2 // running commentary, including the opponent's choices
)

// Config holds all program configuration.
type Config struct {
	// Game holds settings for the game session
	Game GameConfig

	// Output holds settings for board rendering
	Output OutputConfig

	// Verbosity is one of Quiet, Normal or Verbose
	Verbosity int

	// SnapshotPath is where the game is saved; empty means the XDG state
	// directory
	SnapshotPath string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Game:       *NewGameConfig(),
		Output:     *NewOutputConfig(),
		Verbosity:  Normal,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer the board and replies go to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer for diagnostics.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > Verbose {
		return fmt.Errorf("verbosity %d out of range %d-%d: %w", c.Verbosity, Quiet, Verbose, errors.ErrInvalidConfig)
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return nil
}
