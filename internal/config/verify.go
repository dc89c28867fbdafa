package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/cmdchess-go/internal/errors"
)

// VerifyConfig holds settings for batch verification of move logs.
type VerifyConfig struct {
	// Workers is the number of logs replayed concurrently.
	Workers int

	// BufferSize is the capacity of the job and result channels.
	BufferSize int
}

// NewVerifyConfig creates a VerifyConfig with one worker per CPU.
func NewVerifyConfig() *VerifyConfig {
	workers := runtime.GOMAXPROCS(0)
	return &VerifyConfig{Workers: workers, BufferSize: workers * 2}
}

// Validate checks that at least one worker is configured.
func (v *VerifyConfig) Validate() error {
	if v.Workers < 1 {
		return fmt.Errorf("workers = %d: %w", v.Workers, errors.ErrInvalidConfig)
	}
	if v.BufferSize < 0 {
		return fmt.Errorf("buffer size = %d: %w", v.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
