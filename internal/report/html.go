// Package report renders lint run results into a standalone HTML file.
package report

import (
	"html/template"
	"os"
	"time"

	"github.com/lintkit/pybatch/internal/lint"
)

// Report is the data rendered into the HTML page.
type Report struct {
	GeneratedAt time.Time
	Summaries   []string
	Results     []lint.CheckResult
	Passed      bool
}

// New builds a report from a finished lint run.
func New(results []lint.CheckResult, summaries []string) *Report {
	return &Report{
		GeneratedAt: time.Now(),
		Summaries:   summaries,
		Results:     results,
		Passed:      !lint.Failed(summaries),
	}
}

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>pybatch lint report</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { font-size: 1.4em; }
.passed { color: #1a7f37; }
.failed { color: #cf222e; }
ul.summaries { list-style: none; padding: 0; }
ul.summaries li { font-family: monospace; margin: 0.3em 0; }
section { margin-top: 1.5em; }
pre { background: #f6f8fa; padding: 1em; overflow-x: auto; }
.meta { color: #666; font-size: 0.85em; }
</style>
</head>
<body>
<h1>pybatch lint report</h1>
<p class="meta">Generated {{.GeneratedAt.Format "2006-01-02 15:04:05"}}</p>
<p>Overall: {{if .Passed}}<strong class="passed">PASSED</strong>{{else}}<strong class="failed">FAILED</strong>{{end}}</p>
<ul class="summaries">
{{range .Summaries}}<li>{{.}}</li>
{{end}}</ul>
{{range .Results}}{{if not .Passed}}
<section>
<h2 class="failed">{{.Category}} diagnostics</h2>
<pre>{{.Message}}</pre>
</section>
{{end}}{{end}}
</body>
</html>
`))

// Write renders the report to path.
func Write(path string, rep *Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return pageTemplate.Execute(f, rep)
}
