package config

import (
	"fmt"

	"github.com/apex/log"

	"github.com/lgbarn/cmdchess-go/internal/errors"
)

// OutputConfig holds settings related to session output.
type OutputConfig struct {
	// LogLevel is the minimum level of structured log entries shown.
	LogLevel string

	// ShowAttacks prints the controlled squares of both sides below the board.
	ShowAttacks bool

	// Flip turns the board so the side to move always plays up the screen.
	Flip bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{LogLevel: "warn"}
}

// Level returns the parsed log level.
func (o *OutputConfig) Level() (log.Level, error) {
	level, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		return log.InvalidLevel, fmt.Errorf("log level %q: %w", o.LogLevel, errors.ErrInvalidConfig)
	}
	return level, nil
}

// Validate checks that the log level is known.
func (o *OutputConfig) Validate() error {
	_, err := o.Level()
	return err
}
