package config

import (
	"io"

	"github.com/apex/log"

	"github.com/lgbarn/cmdchess-go/internal/chess"
)

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

// WithSides sets the colour configuration.
func (b *ConfigBuilder) WithSides(sides chess.Sides) *ConfigBuilder {
	b.cfg.Game.Sides = sides
	return b
}

// WithFEN sets the start position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Game.FEN = fen
	return b
}

// WithLogDir sets the folder move logs are saved to.
func (b *ConfigBuilder) WithLogDir(dir string) *ConfigBuilder {
	b.cfg.MoveLog.Dir = dir
	return b
}

// WithRestore names a log to replay at start, silently or step by step.
func (b *ConfigBuilder) WithRestore(name string, silent bool) *ConfigBuilder {
	b.cfg.MoveLog.Restore = name
	b.cfg.MoveLog.Silent = silent
	return b
}

// WithLogLevel sets the minimum structured log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Output.LogLevel = level
	return b
}

// WithAttacks enables printing controlled squares below the board.
func (b *ConfigBuilder) WithAttacks(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowAttacks = enabled
	return b
}

// WithFlip enables drawing the board from the side to move.
func (b *ConfigBuilder) WithFlip(enabled bool) *ConfigBuilder {
	b.cfg.Output.Flip = enabled
	return b
}

// WithWorkers sets the number of batch verification workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Verify.Workers = n
	if b.cfg.Verify.BufferSize < n {
		b.cfg.Verify.BufferSize = n * 2
	}
	return b
}

// WithLogger sets the structured logger.
func (b *ConfigBuilder) WithLogger(logger log.Interface) *ConfigBuilder {
	b.cfg.Logger = logger
	return b
}

// WithInput sets the player input stream.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.Input = r
	return b
}

// WithOutput sets the session output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}
