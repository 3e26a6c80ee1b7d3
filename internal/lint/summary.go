package lint

import (
	"fmt"
	"strings"
)

// Summary line prefixes. The CLI driver derives its exit status from
// these.
const (
	MessageTypeSuccess = "SUCCESS"
	MessageTypeFailed  = "FAILED"
)

// Summarize renders the single summary line for a category result.
// Successful categories carry a trailing parenthetical with the file
// count and elapsed seconds.
func Summarize(res *CheckResult) string {
	switch res.Category {
	case ImportOrder:
		if res.Passed {
			return fmt.Sprintf(
				"%s   Import order checks passed (%d files, %.1f secs)",
				MessageTypeSuccess, res.FileCount, res.ElapsedSeconds)
		}
		return fmt.Sprintf(
			"%s   Import order checks failed, file imports should be alphabetized, see affected files above.",
			MessageTypeFailed)

	case StyleAndConvention:
		if res.Passed {
			return fmt.Sprintf(
				"%s   %d Python files linted (%.1f secs)",
				MessageTypeSuccess, res.FileCount, res.ElapsedSeconds)
		}
		return fmt.Sprintf("%s    Python linting failed", MessageTypeFailed)

	case Python3Compatibility:
		if res.Passed {
			return fmt.Sprintf(
				"%s   %d Python files linted for Python 3 compatibility (%.1f secs)",
				MessageTypeSuccess, res.FileCount, res.ElapsedSeconds)
		}
		return fmt.Sprintf(
			"%s    Python linting for Python 3 compatibility failed",
			MessageTypeFailed)
	}

	return fmt.Sprintf("%s    %s", MessageTypeFailed, res.Category)
}

// Failed reports whether any summary line marks its category failed.
func Failed(summaries []string) bool {
	for _, line := range summaries {
		if strings.HasPrefix(line, MessageTypeFailed) {
			return true
		}
	}
	return false
}
