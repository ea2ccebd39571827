package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	chesserrors "github.com/lgbarn/chessbox/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if !cfg.Colour {
		t.Error("Colour should be true by default")
	}
	if cfg.Unicode {
		t.Error("Unicode should be false by default")
	}
	if !cfg.Coordinates {
		t.Error("Coordinates should be true by default")
	}
	if !cfg.ShowMoves {
		t.Error("ShowMoves should be true by default")
	}
	if cfg.Format != ELALG {
		t.Errorf("Format = %v, want %v", cfg.Format, ELALG)
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    OutputFormat
		wantErr bool
	}{
		{"lalg", LALG, false},
		{"HALG", HALG, false},
		{"elalg", ELALG, false},
		{"uci", UCI, false},
		{"san", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, chesserrors.ErrInvalidConfig) {
					t.Errorf("error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if got != tt.want || got.String() != strings.ToLower(tt.name) {
				t.Errorf("ParseOutputFormat(%q) = %v", tt.name, got)
			}
		})
	}
}

// TestGameConfig_Defaults verifies GameConfig has sensible defaults
func TestGameConfig_Defaults(t *testing.T) {
	cfg := NewGameConfig()

	if cfg.SinglePlayer {
		t.Error("SinglePlayer should be false by default")
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.AutoSave {
		t.Error("AutoSave should be false by default")
	}
	if !cfg.Resume {
		t.Error("Resume should be true by default")
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "verbose", mutate: func(c *Config) { c.Verbosity = Verbose }},
		{name: "verbosity too high", mutate: func(c *Config) { c.Verbosity = 3 }, wantErr: true},
		{name: "negative verbosity", mutate: func(c *Config) { c.Verbosity = -1 }, wantErr: true},
		{
			name:   "valid start position",
			mutate: func(c *Config) { c.Game.StartFEN = "4k3/8/8/8/8/8/8/4K3 w - - 0 1" },
		},
		{
			name:    "invalid start position",
			mutate:  func(c *Config) { c.Game.StartFEN = "not a position" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}

	cfg.SetOutput(out)
	cfg.SetLog(log)

	if cfg.OutputFile != out {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != log {
		t.Error("SetLog did not set LogFile")
	}
}

func TestConfig_Logf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLog(&buf).WithVerbosity(Normal).Build()

	cfg.Logf(Normal, "saved %s", "game")
	cfg.Logf(Verbose, "considering %d moves", 20)

	if diff := cmp.Diff("saved game\n", buf.String()); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithSinglePlayer(true).
		WithSeed(42).
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithAutoSave(true).
		WithResume(false).
		WithSnapshotPath("/tmp/game.json").
		WithColour(false).
		WithUnicode(true).
		WithOutputFormat(UCI).
		WithVerbosity(Verbose).
		Build()

	want := &Config{
		Game: GameConfig{
			SinglePlayer: true,
			Seed:         42,
			StartFEN:     "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			AutoSave:     true,
		},
		Output: OutputConfig{
			Unicode:     true,
			Coordinates: true,
			ShowMoves:   true,
			Format:      UCI,
		},
		Verbosity:    Verbose,
		SnapshotPath: "/tmp/game.json",
	}
	opt := cmpopts.IgnoreFields(Config{}, "OutputFile", "LogFile")
	if diff := cmp.Diff(want, cfg, opt); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
  "snapshot_path": "/var/tmp/chess.json",
  "verbosity": 2,
  "game": {"single_player": true, "seed": 7},
  "output": {"colour": false, "notation": "halg"}
}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.SnapshotPath != "/var/tmp/chess.json" || cfg.Verbosity != Verbose {
		t.Errorf("SnapshotPath = %q, Verbosity = %d", cfg.SnapshotPath, cfg.Verbosity)
	}
	if !cfg.Game.SinglePlayer || cfg.Game.Seed != 7 {
		t.Errorf("Game = %+v", cfg.Game)
	}
	if cfg.Output.Colour {
		t.Error("Output.Colour should be overridden to false")
	}
	if cfg.Output.Format != HALG {
		t.Errorf("Output.Format = %v, want halg", cfg.Output.Format)
	}
	// Keys absent from the file keep their defaults.
	if !cfg.Game.Resume || !cfg.Output.Coordinates {
		t.Errorf("defaults lost: Game = %+v, Output = %+v", cfg.Game, cfg.Output)
	}
}

func TestConfig_LoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if err := NewConfig().LoadFile(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile(missing) error = %v, want not exist", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"verbosity": "loud"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := NewConfig().LoadFile(bad); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("LoadFile(bad) error = %v, want ErrInvalidConfig", err)
	}

	notation := filepath.Join(dir, "notation.json")
	if err := os.WriteFile(notation, []byte(`{"output": {"notation": "figurine"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := NewConfig().LoadFile(notation); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("LoadFile(notation) error = %v, want ErrInvalidConfig", err)
	}
}
