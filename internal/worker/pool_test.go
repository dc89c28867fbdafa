package worker

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

// noopVerifyFunc returns a verify function that does nothing.
func noopVerifyFunc() VerifyFunc {
	return func(job Job) Report {
		return Report{Index: job.Index, Path: job.Path}
	}
}

// countingVerifyFunc returns a verify function that increments a counter.
func countingVerifyFunc(counter *int32) VerifyFunc {
	return func(job Job) Report {
		atomic.AddInt32(counter, 1)
		return Report{Index: job.Index, Path: job.Path, Result: "*"}
	}
}

// collectResults drains the report channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingVerifyFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start()

	const numJobs = 10
	for i := 0; i < numJobs; i++ {
		pool.Submit(Job{Index: i, Path: fmt.Sprintf("game%d.txt", i)})
	}

	go pool.Close()

	if got := collectResults(pool); got != numJobs {
		t.Errorf("results = %d; want %d", got, numJobs)
	}
	if got := atomic.LoadInt32(&processed); got != numJobs {
		t.Errorf("processed = %d; want %d", got, numJobs)
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowVerifyFunc := func(job Job) Report {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return Report{Index: job.Index}
	}

	pool := NewPool(slowVerifyFunc, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numJobs = 50
	for i := 0; i < numJobs; i++ {
		pool.Submit(Job{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	// Should have processed fewer than total due to early stop
	if processed := atomic.LoadInt32(&processedCount); processed >= numJobs {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(noopVerifyFunc(), WithWorkers(2))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

// TestNewPool tests the functional options constructor.
func TestNewPool(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopVerifyFunc(), tt.opts...)
			if got := pool.NumWorkers(); got != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

// TestPoolRun tests that Run returns one report per path in input order.
func TestPoolRun(t *testing.T) {
	variableDelayFunc := func(job Job) Report {
		if job.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return Report{Index: job.Index, Path: job.Path, Plies: job.Index}
	}

	paths := make([]string, 12)
	for i := range paths {
		paths[i] = fmt.Sprintf("log%02d.txt", i)
	}

	pool := NewPool(variableDelayFunc, WithWorkers(4), WithBufferSize(3))
	reports := pool.Run(context.Background(), paths)

	if len(reports) != len(paths) {
		t.Fatalf("reports = %d; want %d", len(reports), len(paths))
	}
	for i, r := range reports {
		if r.Path != paths[i] || r.Plies != i || r.Err != nil {
			t.Errorf("reports[%d] = %+v", i, r)
		}
	}
}

// TestPoolRunCancelled tests that a cancelled context skips the queued jobs.
func TestPoolRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var processed int32
	pool := NewPool(countingVerifyFunc(&processed), WithWorkers(2))
	reports := pool.Run(ctx, []string{"a.txt", "b.txt", "c.txt"})

	if len(reports) != 3 {
		t.Fatalf("reports = %d; want 3", len(reports))
	}
	skipped := 0
	for _, r := range reports {
		if r.Err == context.Canceled {
			skipped++
		}
	}
	if int(atomic.LoadInt32(&processed))+skipped != 3 {
		t.Errorf("processed %d + skipped %d != 3", processed, skipped)
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingVerifyFunc(&counter), WithWorkers(8), WithBufferSize(50))

	paths := make([]string, 100)
	reports := pool.Run(context.Background(), paths)

	if got := atomic.LoadInt32(&counter); got != int32(len(reports)) {
		t.Errorf("processed = %d; want %d", got, len(reports))
	}
}
