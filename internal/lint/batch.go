package lint

import (
	"bytes"
	"context"
	"io"
	"time"
)

// DefaultBatchSize is the number of files handed to an external tool
// per invocation when no override is configured.
const DefaultBatchSize = 50

// BatchChecker checks one batch of files, writing all tool output to
// sink and returning the combined status code (zero = clean). A
// non-nil error means a tool could not run and aborts the whole run.
type BatchChecker func(ctx context.Context, sink io.Writer, files []string) (int, error)

// batchRun accumulates the outcome of one batched category.
type batchRun struct {
	// failures holds the captured output of each failing batch, in
	// batch order. Clean batches contribute nothing.
	failures []string

	// batches is the number of checker invocations performed.
	batches int

	// elapsed is wall-clock from first batch start to last batch end.
	elapsed time.Duration
}

func (r batchRun) passed() bool {
	return len(r.failures) == 0
}

func (r batchRun) message() string {
	var buf bytes.Buffer
	for _, f := range r.failures {
		buf.WriteString(f)
	}
	return buf.String()
}

// runInBatches slices files into contiguous batches of at most
// m.batchSize, preserving order and covering every file exactly once,
// and invokes check once per batch. Each batch gets a fresh capture
// buffer, so output never leaks between batches. A failing batch marks
// the category failed but never stops later batches.
func (m *Manager) runInBatches(ctx context.Context, files []string, check BatchChecker) (batchRun, error) {
	if m.batchSize <= 0 {
		panic("lint: batch size must be positive")
	}

	var run batchRun
	start := time.Now()

	for begin := 0; begin < len(files); begin += m.batchSize {
		end := begin + m.batchSize
		if end > len(files) {
			end = len(files)
		}

		if m.verbose {
			m.printf("Linting files %d to %d...\n", begin+1, end)
		}

		var sink bytes.Buffer
		status, err := check(ctx, &sink, files[begin:end])
		if err != nil {
			return batchRun{}, err
		}

		run.batches++
		if status != 0 {
			run.failures = append(run.failures, sink.String())
		}
	}

	run.elapsed = time.Since(start)
	return run, nil
}
