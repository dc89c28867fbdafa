// Package worker provides a worker pool for replaying move logs in parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/cmdchess-go/internal/hashing"
)

// Job is one move log to replay.
type Job struct {
	Index int // Position in the submitted batch
	Path  string
}

// Report is the outcome of replaying one move log.
type Report struct {
	Index  int
	Path   string
	Plies  int    // Moves replayed before the end of the log or the first error
	Status string // Game status after the last replayed move
	Result string // "1-0", "0-1", "1/2-1/2" or "*"
	FEN    string // Final position
	Err    error

	// Signature identifies the replayed game for duplicate detection.
	Signature hashing.GameSignature
	// DuplicateOf names an earlier log in the batch with the same game.
	DuplicateOf string
}

// VerifyFunc replays the log named by a job. Each call must use its own
// game; the pool runs calls concurrently.
type VerifyFunc func(job Job) Report

// Pool manages a pool of workers for parallel log verification.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	reports    chan Report
	verify     VerifyFunc
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool around verify.
// Default: 1 worker, buffer size of 10.
func NewPool(verify VerifyFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		verify:     verify,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.jobs = make(chan Job, p.bufferSize)
	p.reports = make(chan Report, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker replays jobs until the job channel is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.IsStopped() {
			continue // Drain channel without replaying
		}
		p.reports <- p.verify(job)
	}
}

// Submit queues a job. It may block if the job buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Stop signals workers to skip the jobs still queued.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the job channel and waits for all workers to finish.
// The report channel is closed once every worker is done.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.reports)
}

// Results returns the report channel.
func (p *Pool) Results() <-chan Report {
	return p.reports
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run replays every path and returns the reports in input order. When ctx
// is cancelled the remaining jobs are skipped and their reports carry
// ctx.Err().
func (p *Pool) Run(ctx context.Context, paths []string) []Report {
	reports := make([]Report, len(paths))
	for i, path := range paths {
		reports[i] = Report{Index: i, Path: path, Err: context.Canceled}
	}

	p.Start()
	go func() {
		defer p.Close()
		for i, path := range paths {
			select {
			case <-ctx.Done():
				p.Stop()
				return
			case p.jobs <- Job{Index: i, Path: path}:
			}
		}
	}()

	for r := range p.reports {
		reports[r.Index] = r
	}
	if err := ctx.Err(); err != nil {
		for i := range reports {
			if reports[i].Err == context.Canceled {
				reports[i].Err = err
			}
		}
	}
	return reports
}
