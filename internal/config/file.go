package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adrg/xdg"

	"github.com/lgbarn/chessbox/internal/errors"
)

// RelPath is the config file location under the XDG config directories.
const RelPath = "chessbox/config.json"

// fileConfig is the JSON form of the config file. Pointer fields tell an
// absent key from a zero value, so only keys present in the file override
// the defaults.
type fileConfig struct {
	SnapshotPath *string `json:"snapshot_path"`
	Verbosity    *int    `json:"verbosity"`
	Game         struct {
		SinglePlayer *bool   `json:"single_player"`
		Seed         *int64  `json:"seed"`
		StartFEN     *string `json:"start_fen"`
		AutoSave     *bool   `json:"autosave"`
		Resume       *bool   `json:"resume"`
	} `json:"game"`
	Output struct {
		Colour      *bool   `json:"colour"`
		Unicode     *bool   `json:"unicode"`
		Coordinates *bool   `json:"coordinates"`
		ShowMoves   *bool   `json:"show_moves"`
		Notation    *string `json:"notation"`
	} `json:"output"`
}

// Load returns the defaults overlaid with the config file found in the XDG
// config directories, if there is one. The result is validated.
func Load() (*Config, error) {
	cfg := NewConfig()
	if path, err := xdg.SearchConfigFile(RelPath); err == nil {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the settings in a JSON config file onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config file %s: %v: %w", path, err, errors.ErrInvalidConfig)
	}
	if err := c.apply(&fc); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) apply(fc *fileConfig) error {
	setString(&c.SnapshotPath, fc.SnapshotPath)
	setInt(&c.Verbosity, fc.Verbosity)

	setBool(&c.Game.SinglePlayer, fc.Game.SinglePlayer)
	if fc.Game.Seed != nil {
		c.Game.Seed = *fc.Game.Seed
	}
	setString(&c.Game.StartFEN, fc.Game.StartFEN)
	setBool(&c.Game.AutoSave, fc.Game.AutoSave)
	setBool(&c.Game.Resume, fc.Game.Resume)

	setBool(&c.Output.Colour, fc.Output.Colour)
	setBool(&c.Output.Unicode, fc.Output.Unicode)
	setBool(&c.Output.Coordinates, fc.Output.Coordinates)
	setBool(&c.Output.ShowMoves, fc.Output.ShowMoves)
	if fc.Output.Notation != nil {
		format, err := ParseOutputFormat(*fc.Output.Notation)
		if err != nil {
			return err
		}
		c.Output.Format = format
	}
	return nil
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
