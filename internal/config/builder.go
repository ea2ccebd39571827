package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithSinglePlayer sets the player mode.
func (b *ConfigBuilder) WithSinglePlayer(enabled bool) *ConfigBuilder {
	b.cfg.Game.SinglePlayer = enabled
	return b
}

// WithSeed sets the opponent's random seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Game.Seed = seed
	return b
}

// WithStartFEN sets the starting position for new games.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithAutoSave enables saving after every move.
func (b *ConfigBuilder) WithAutoSave(enabled bool) *ConfigBuilder {
	b.cfg.Game.AutoSave = enabled
	return b
}

// WithResume controls whether the saved game is restored on startup.
func (b *ConfigBuilder) WithResume(enabled bool) *ConfigBuilder {
	b.cfg.Game.Resume = enabled
	return b
}

// WithSnapshotPath sets the snapshot file.
func (b *ConfigBuilder) WithSnapshotPath(path string) *ConfigBuilder {
	b.cfg.SnapshotPath = path
	return b
}

// WithColour enables coloured output.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Output.Colour = enabled
	return b
}

// WithUnicode enables chess glyphs.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Output.Unicode = enabled
	return b
}

// WithOutputFormat sets the move notation.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
