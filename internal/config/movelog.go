package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/cmdchess-go/internal/errors"
)

// DefaultLogDir is the folder saved move logs are written to.
const DefaultLogDir = "chess_log_files"

// MoveLogConfig holds settings for saving and restoring move logs.
type MoveLogConfig struct {
	// Dir is the folder logs are saved to and restored from.
	Dir string

	// Silent replays a restored log to its final position without
	// showing the intermediate boards.
	Silent bool

	// Restore names a log to replay when the session starts.
	Restore string
}

// NewMoveLogConfig creates a MoveLogConfig with default values.
func NewMoveLogConfig() *MoveLogConfig {
	return &MoveLogConfig{Dir: DefaultLogDir}
}

// Validate checks that the log folder is set and the restore name is usable.
func (m *MoveLogConfig) Validate() error {
	if strings.TrimSpace(m.Dir) == "" {
		return fmt.Errorf("empty log directory: %w", errors.ErrInvalidConfig)
	}
	if strings.Contains(m.Restore, ":") {
		return fmt.Errorf("log name %q contains ':': %w", m.Restore, errors.ErrInvalidConfig)
	}
	return nil
}
