// Package lint orchestrates external Python checkers over batched file
// lists: it slices the input into bounded batches, captures each
// tool's output per batch, and aggregates SUCCESS/FAILED summaries per
// checker category. No lint rule lives here; all analysis belongs to
// the injected engines.
package lint

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"github.com/lintkit/pybatch/internal/engine"
)

// DefaultShimPattern excludes the compatibility-shim layer from the
// Python 3 check; shim files exist to paper over version differences
// and would only report on themselves.
var DefaultShimPattern = regexp.MustCompile(`python_utils.*\.py$`)

// Engines holds the injected external checker capabilities. The
// manager receives already-resolved handles; it never resolves tools
// itself.
type Engines struct {
	// Convention is the convention linter (pylint with a rcfile).
	Convention engine.BatchEngine

	// Style is the style-guide checker (pycodestyle with a config file).
	Style engine.BatchEngine

	// Py3Compat is the Python 3 compatibility checker (pylint --py3k).
	Py3Compat engine.BatchEngine

	// ImportOrder is the per-file import-order checker (isort).
	ImportOrder engine.FileEngine
}

// Manager runs all lint checks over a fixed file list.
//
// Execution is strictly sequential: batches run one after another,
// categories run one after another. Only the manager appends to the
// summary list; checkers report through their CheckResult.
type Manager struct {
	files   []string
	engines Engines
	verbose bool

	batchSize int
	shim      *regexp.Regexp
	out       io.Writer

	results []CheckResult
}

// NewManager creates a manager for the given files and capabilities.
func NewManager(files []string, engines Engines, verbose bool) *Manager {
	return &Manager{
		files:     files,
		engines:   engines,
		verbose:   verbose,
		batchSize: DefaultBatchSize,
		shim:      DefaultShimPattern,
		out:       os.Stdout,
	}
}

// SetBatchSize overrides the default batch size. n must be positive.
func (m *Manager) SetBatchSize(n int) {
	if n <= 0 {
		panic("lint: batch size must be positive")
	}
	m.batchSize = n
}

// SetShimPattern overrides the exclusion pattern for the Python 3
// compatibility check. nil disables the exclusion.
func (m *Manager) SetShimPattern(re *regexp.Regexp) {
	m.shim = re
}

// SetOutput redirects the manager's informational and diagnostic
// output. Default: os.Stdout.
func (m *Manager) SetOutput(w io.Writer) {
	m.out = w
}

// Results returns the CheckResults produced so far, in invocation order.
func (m *Manager) Results() []CheckResult {
	return m.results
}

func (m *Manager) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format, args...)
}

// CheckImportOrder asks the import-order capability about each file
// individually (not batched) in check-only mode. Passed only if every
// file is already sorted; a failing file's diagnostic is retained in
// file-list order. An empty file list produces no CheckResult.
func (m *Manager) CheckImportOrder(ctx context.Context) (*CheckResult, error) {
	if len(m.files) == 0 {
		m.printf("\nThere are no Python files to check for import order.\n")
		return nil, nil
	}

	if m.verbose {
		m.printf("Starting import-order checks\n")
		m.printf("----------------------------------------\n")
	}

	start := time.Now()
	var message bytes.Buffer
	failed := false

	for _, path := range m.files {
		var sink bytes.Buffer
		sorted, err := m.engines.ImportOrder.CheckFile(ctx, &sink, path)
		if err != nil {
			return nil, err
		}
		if !sorted {
			failed = true
			message.Write(sink.Bytes())
		}
	}

	res := &CheckResult{
		Category:       ImportOrder,
		Passed:         !failed,
		ElapsedSeconds: time.Since(start).Seconds(),
		FileCount:      len(m.files),
	}
	if failed {
		res.Message = message.String()
	}
	return res, nil
}

// CheckStyleAndConvention runs the convention linter and the style
// checker over batches of files. A batch fails if either tool reports
// a non-zero status; its captured text carries convention output
// first, then style output. Elapsed time covers the whole invocation.
func (m *Manager) CheckStyleAndConvention(ctx context.Context) (*CheckResult, error) {
	if len(m.files) == 0 {
		return nil, nil
	}

	m.printf("Linting %d Python files\n", len(m.files))

	check := func(ctx context.Context, sink io.Writer, files []string) (int, error) {
		convStatus, err := m.engines.Convention.Run(ctx, sink, files)
		if err != nil {
			return 0, err
		}
		styleStatus, err := m.engines.Style.Run(ctx, sink, files)
		if err != nil {
			return 0, err
		}
		if convStatus != 0 {
			return convStatus, nil
		}
		return styleStatus, nil
	}

	run, err := m.runInBatches(ctx, m.files, check)
	if err != nil {
		return nil, err
	}

	res := &CheckResult{
		Category:       StyleAndConvention,
		Passed:         run.passed(),
		ElapsedSeconds: run.elapsed.Seconds(),
		FileCount:      len(m.files),
	}
	if !res.Passed {
		res.Message = run.message()
	}

	m.printf("Python linting finished.\n")
	return res, nil
}

// CheckPython3Compatibility batch-runs the compatibility checker over
// the files left after excluding the shim layer. An empty filtered
// list produces no CheckResult (not a vacuous pass).
func (m *Manager) CheckPython3Compatibility(ctx context.Context) (*CheckResult, error) {
	files := m.filterShimFiles()
	if len(files) == 0 {
		m.printf("\nThere are no Python files to lint for Python 3 compatibility.\n")
		return nil, nil
	}

	m.printf("Linting %d Python files for Python 3 compatibility.\n", len(files))

	check := func(ctx context.Context, sink io.Writer, batch []string) (int, error) {
		fmt.Fprintln(sink, "Messages for Python 3 support:")
		return m.engines.Py3Compat.Run(ctx, sink, batch)
	}

	run, err := m.runInBatches(ctx, files, check)
	if err != nil {
		return nil, err
	}

	res := &CheckResult{
		Category:       Python3Compatibility,
		Passed:         run.passed(),
		ElapsedSeconds: run.elapsed.Seconds(),
		FileCount:      len(files),
	}
	if !res.Passed {
		res.Message = run.message()
	}

	m.printf("Python linting for Python 3 compatibility finished.\n")
	return res, nil
}

// filterShimFiles returns the files eligible for the Python 3 check.
func (m *Manager) filterShimFiles() []string {
	if m.shim == nil {
		return m.files
	}
	filtered := make([]string, 0, len(m.files))
	for _, path := range m.files {
		if !m.shim.MatchString(path) {
			filtered = append(filtered, path)
		}
	}
	return filtered
}

// PerformAllChecks runs every checker category in order (import
// order, then style/convention, then Python 3 compatibility) and
// returns one summary line per produced CheckResult. An empty file
// list short-circuits with a single "nothing to lint" summary and no
// engine is invoked. Failing categories have their captured
// diagnostics printed to the manager's output before the summary is
// returned; deriving a process exit status from the summaries is the
// caller's job.
func (m *Manager) PerformAllChecks(ctx context.Context) ([]string, error) {
	if len(m.files) == 0 {
		m.printf("\nThere are no Python files to lint.\n")
		return []string{"There are no Python files to lint."}, nil
	}

	checks := []func(context.Context) (*CheckResult, error){
		m.CheckImportOrder,
		m.CheckStyleAndConvention,
		m.CheckPython3Compatibility,
	}

	var summaries []string
	for _, check := range checks {
		res, err := check(ctx)
		if err != nil {
			return nil, err
		}
		if res == nil {
			// Skipped: not applicable, distinct from passed.
			continue
		}
		if !res.Passed && res.Message != "" {
			m.printf("%s\n", res.Message)
		}
		m.results = append(m.results, *res)
		summaries = append(summaries, Summarize(res))
	}

	return summaries, nil
}
