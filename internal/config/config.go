// Package config provides configuration for a cmdchess session.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"

	"github.com/lgbarn/cmdchess-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Rules of the game being played
	Game *GameConfig

	// Move log files
	MoveLog *MoveLogConfig

	// Board and log display
	Output *OutputConfig

	// Batch log verification
	Verify *VerifyConfig

	// Logger receives structured session events.
	Logger log.Interface

	// Player input and session output streams
	Input      io.Reader
	OutputFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Game:       NewGameConfig(),
		MoveLog:    NewMoveLogConfig(),
		Output:     NewOutputConfig(),
		Verify:     NewVerifyConfig(),
		Logger:     log.Log,
		Input:      os.Stdin,
		OutputFile: os.Stdout,
	}
}

// SetOutput sets the session output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Logger == nil {
		return fmt.Errorf("no logger: %w", errors.ErrInvalidConfig)
	}
	if c.Game == nil || c.MoveLog == nil || c.Output == nil || c.Verify == nil {
		return fmt.Errorf("missing configuration section: %w", errors.ErrInvalidConfig)
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if err := c.MoveLog.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Verify.Validate()
}
