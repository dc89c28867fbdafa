package movelog

import (
	"context"
	"os"

	"github.com/apex/log"

	"github.com/lgbarn/cmdchess-go/internal/config"
	"github.com/lgbarn/cmdchess-go/internal/errors"
	"github.com/lgbarn/cmdchess-go/internal/game"
	"github.com/lgbarn/cmdchess-go/internal/hashing"
	"github.com/lgbarn/cmdchess-go/internal/worker"
)

// VerifyFile replays the log at path on a fresh game built from cfg.
func VerifyFile(cfg *config.Config, job worker.Job) worker.Report {
	report := worker.Report{Index: job.Index, Path: job.Path}

	g, err := game.New(cfg)
	if err != nil {
		report.Err = err
		return report
	}
	f, err := os.Open(job.Path)
	if err != nil {
		report.Err = errors.Wrapf(err, "verifying %s", job.Path)
		return report
	}
	defer f.Close()

	report.Plies, report.Err = Restore(g, f, job.Path)
	report.Status = g.Status().String()
	report.Result = g.Result()
	report.FEN = g.FEN()
	board := g.Board()
	report.Signature = hashing.Signature(job.Path, &board, g.ToMove(), g.Moves())
	return report
}

// VerifyAll replays every log in paths concurrently, each on its own game,
// and returns the reports in input order. A valid log repeating the game of
// an earlier one is marked with DuplicateOf.
func VerifyAll(ctx context.Context, cfg *config.Config, paths []string) []worker.Report {
	pool := worker.NewPool(
		func(job worker.Job) worker.Report { return VerifyFile(cfg, job) },
		worker.WithWorkers(cfg.Verify.Workers),
		worker.WithBufferSize(cfg.Verify.BufferSize),
	)
	reports := pool.Run(ctx, paths)
	detector := hashing.NewDuplicateDetector()

	for i, r := range reports {
		entry := cfg.Logger.WithFields(log.Fields{
			"file":   r.Path,
			"plies":  r.Plies,
			"result": r.Result,
		})
		if r.Err != nil {
			entry.WithError(r.Err).Warn("log rejected")
			continue
		}
		if first, dup := detector.CheckAndAdd(r.Signature); dup {
			reports[i].DuplicateOf = first
			entry = entry.WithField("duplicate_of", first)
		}
		entry.Info("log verified")
	}

	cfg.Logger.WithFields(log.Fields{
		"logs":       len(reports),
		"unique":     detector.UniqueCount(),
		"duplicates": detector.DuplicateCount(),
	}).Info("verification finished")
	return reports
}
