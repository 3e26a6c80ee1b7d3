package lint

import (
	"context"
	"fmt"
	"io"
	"testing"
)

func testManager(files []string, batchSize int) *Manager {
	m := NewManager(files, Engines{}, false)
	m.SetOutput(io.Discard)
	if batchSize > 0 {
		m.SetBatchSize(batchSize)
	}
	return m
}

func fileNames(n int) []string {
	files := make([]string, n)
	for i := range files {
		files[i] = fmt.Sprintf("file_%03d.py", i)
	}
	return files
}

func TestRunInBatches_PartitionsInOrder(t *testing.T) {
	files := fileNames(7)
	m := testManager(files, 3)

	var calls [][]string
	check := func(ctx context.Context, sink io.Writer, batch []string) (int, error) {
		calls = append(calls, append([]string(nil), batch...))
		return 0, nil
	}

	run, err := m.runInBatches(context.Background(), files, check)
	if err != nil {
		t.Fatalf("runInBatches() error = %v", err)
	}

	if run.batches != 3 {
		t.Errorf("batches = %d, want 3", run.batches)
	}
	wantSizes := []int{3, 3, 1}
	var rejoined []string
	for i, call := range calls {
		if len(call) != wantSizes[i] {
			t.Errorf("batch %d size = %d, want %d", i, len(call), wantSizes[i])
		}
		rejoined = append(rejoined, call...)
	}
	if len(rejoined) != len(files) {
		t.Fatalf("batches cover %d files, want %d", len(rejoined), len(files))
	}
	for i, f := range rejoined {
		if f != files[i] {
			t.Errorf("file %d = %q, want %q (order must be preserved)", i, f, files[i])
		}
	}
}

func TestRunInBatches_InvocationCount(t *testing.T) {
	tests := []struct {
		files     int
		batchSize int
		want      int
	}{
		{1, 50, 1},
		{50, 50, 1},
		{51, 50, 2},
		{120, 50, 3},
		{100, 1, 100},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dfiles_size%d", tt.files, tt.batchSize), func(t *testing.T) {
			files := fileNames(tt.files)
			m := testManager(files, tt.batchSize)

			count := 0
			check := func(ctx context.Context, sink io.Writer, batch []string) (int, error) {
				count++
				return 0, nil
			}

			if _, err := m.runInBatches(context.Background(), files, check); err != nil {
				t.Fatalf("runInBatches() error = %v", err)
			}
			if count != tt.want {
				t.Errorf("invocations = %d, want %d", count, tt.want)
			}
		})
	}
}

func TestRunInBatches_AllBatchesRunAfterFailure(t *testing.T) {
	files := fileNames(9)
	m := testManager(files, 3)

	count := 0
	check := func(ctx context.Context, sink io.Writer, batch []string) (int, error) {
		count++
		return 1, nil // every batch fails
	}

	run, err := m.runInBatches(context.Background(), files, check)
	if err != nil {
		t.Fatalf("runInBatches() error = %v", err)
	}
	if count != 3 {
		t.Errorf("invocations = %d, want 3 (no early abort)", count)
	}
	if run.passed() {
		t.Error("run.passed() = true, want false")
	}
}

func TestRunInBatches_CaptureIsolation(t *testing.T) {
	files := fileNames(9)
	m := testManager(files, 3)

	call := 0
	check := func(ctx context.Context, sink io.Writer, batch []string) (int, error) {
		fmt.Fprintf(sink, "marker-%d\n", call)
		status := 0
		if call == 0 || call == 2 {
			status = 1
		}
		call++
		return status, nil
	}

	run, err := m.runInBatches(context.Background(), files, check)
	if err != nil {
		t.Fatalf("runInBatches() error = %v", err)
	}

	if len(run.failures) != 2 {
		t.Fatalf("failures = %d, want 2", len(run.failures))
	}
	if run.failures[0] != "marker-0\n" {
		t.Errorf("failure 0 = %q, want only batch 0's capture", run.failures[0])
	}
	if run.failures[1] != "marker-2\n" {
		t.Errorf("failure 1 = %q, want only batch 2's capture", run.failures[1])
	}
}

func TestRunInBatches_ErrorAborts(t *testing.T) {
	files := fileNames(6)
	m := testManager(files, 3)

	count := 0
	check := func(ctx context.Context, sink io.Writer, batch []string) (int, error) {
		count++
		return 0, fmt.Errorf("tool missing")
	}

	if _, err := m.runInBatches(context.Background(), files, check); err == nil {
		t.Fatal("runInBatches() error = nil, want error")
	}
	if count != 1 {
		t.Errorf("invocations = %d, want 1 (error aborts the run)", count)
	}
}

func TestSetBatchSize_PanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetBatchSize(0) did not panic")
		}
	}()
	testManager(fileNames(1), 0).SetBatchSize(0)
}
