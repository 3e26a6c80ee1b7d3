package lint

// Category identifies one checker kind. Each category produces at most
// one CheckResult per run.
type Category int

const (
	// ImportOrder is the per-file isort check.
	ImportOrder Category = iota

	// StyleAndConvention is the batched pylint + pycodestyle check.
	StyleAndConvention

	// Python3Compatibility is the batched pylint --py3k check.
	Python3Compatibility
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case ImportOrder:
		return "import-order"
	case StyleAndConvention:
		return "style-and-convention"
	case Python3Compatibility:
		return "python3-compatibility"
	}
	return "unknown"
}

// CheckResult is the outcome of one checker category over a whole run.
// It is created once per category and never mutated afterwards.
type CheckResult struct {
	Category Category

	// Passed is derived strictly from the external tool's status
	// codes, never from message content.
	Passed bool

	// Message holds the captured diagnostics of failing batches (or
	// failing files), concatenated in invocation order. Empty when
	// Passed, so clean runs don't flood callers with detail.
	Message string

	// ElapsedSeconds is the wall-clock time across all batches of the
	// category, not per batch.
	ElapsedSeconds float64

	// FileCount is the number of files the category actually checked,
	// after any filtering.
	FileCount int
}
