// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/cmdchess-go/internal/config"
)

var (
	// Game options
	startFEN = flag.String("fen", "", "Start position in FEN (default: the standard start)")

	// Move log options
	logDir      = flag.String("logdir", config.DefaultLogDir, "Folder move logs are saved to and restored from")
	restoreName = flag.String("restore", "", "Restore this move log before play starts")
	silent      = flag.Bool("silent", false, "Restore without reviewing each move")

	// Display options
	logLevel    = flag.String("loglevel", "warn", "Log level: debug, info, warn, error, fatal")
	showAttacks = flag.Bool("attacks", false, "Show the squares each side controls")
	flipBoard   = flag.Bool("flip", false, "Turn the board toward the side to move")
	jsonOutput  = flag.Bool("json", false, "Write game summaries and verify reports as JSON")

	// Batch verification
	verify  = flag.Bool("verify", false, "Replay the given move logs (default: every log in -logdir) and report")
	workers = flag.Int("workers", 0, "Number of verification workers (0 = GOMAXPROCS)")

	// Info
	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("help", false, "Show usage")
)

// applyFlags applies all command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Game.FEN = *startFEN
	applyMoveLogFlags(cfg)
	applyOutputFlags(cfg)
	applyVerifyFlags(cfg)
}

// applyMoveLogFlags configures saving and restoring.
func applyMoveLogFlags(cfg *config.Config) {
	cfg.MoveLog.Dir = *logDir
	cfg.MoveLog.Restore = *restoreName
	cfg.MoveLog.Silent = *silent
}

// applyOutputFlags configures display settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.LogLevel = *logLevel
	cfg.Output.ShowAttacks = *showAttacks
	cfg.Output.Flip = *flipBoard
}

// applyVerifyFlags configures the verification pool. Zero keeps the defaults.
func applyVerifyFlags(cfg *config.Config) {
	if *workers > 0 {
		cfg.Verify.Workers = *workers
		cfg.Verify.BufferSize = 2 * *workers
	}
}
