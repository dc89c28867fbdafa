// cmdchess is a two-player chess game for the terminal. Games can be saved
// as move logs, restored later and batch verified.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/lgbarn/cmdchess-go/internal/config"
	"github.com/lgbarn/cmdchess-go/internal/movelog"
	"github.com/lgbarn/cmdchess-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("cmdchess-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := setupLogger(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *verify {
		os.Exit(runVerify(context.Background(), cfg, flag.Args(), *jsonOutput))
	}

	if err := newSession(cfg, *jsonOutput).Run(); err != nil {
		cfg.Logger.WithError(err).Error("session ended")
		os.Exit(1)
	}
}

// setupLogger sends log entries to stderr at the configured level.
func setupLogger(cfg *config.Config) error {
	level, err := cfg.Output.Level()
	if err != nil {
		return err
	}
	cfg.Logger = &log.Logger{
		Handler: cli.New(os.Stderr),
		Level:   level,
	}
	return nil
}

// runVerify replays every log in paths, or every log under the log folder
// when paths is empty, and returns the exit code.
func runVerify(ctx context.Context, cfg *config.Config, paths []string, asJSON bool) int {
	if len(paths) == 0 {
		found, err := filepath.Glob(filepath.Join(cfg.MoveLog.Dir, "*"+movelog.Extension))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing %s: %v\n", cfg.MoveLog.Dir, err)
			return 2
		}
		paths = found
	}
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "No move logs to verify in %s\n", cfg.MoveLog.Dir)
		return 0
	}

	reports := movelog.VerifyAll(ctx, cfg, paths)

	rejected := 0
	for _, r := range reports {
		if r.Err != nil {
			rejected++
		}
	}

	var err error
	if asJSON {
		err = output.WriteReportsJSON(cfg.OutputFile, reports)
	} else {
		_, err = output.WriteReports(cfg.OutputFile, reports)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing reports: %v\n", err)
		return 2
	}
	if rejected > 0 {
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: cmdchess [options]\n")
	fmt.Fprintf(os.Stderr, "       cmdchess -verify [options] [log-files...]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess game for the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprint(os.Stderr, output.Instructions())
}
