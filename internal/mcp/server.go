// Package mcp exposes the lint checks over the Model Context Protocol
// so MCP-capable clients (editors, agents) can run them directly.
package mcp

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lintkit/pybatch/internal/config"
	"github.com/lintkit/pybatch/internal/engine"
	"github.com/lintkit/pybatch/internal/engine/isort"
	"github.com/lintkit/pybatch/internal/engine/pycodestyle"
	"github.com/lintkit/pybatch/internal/engine/pylint"
	"github.com/lintkit/pybatch/internal/lint"
)

// Server is a MCP (Model Context Protocol) server.
// It communicates via JSON-RPC over stdio.
type Server struct {
	version string
}

// NewServer creates a new MCP server instance.
func NewServer(version string) *Server {
	return &Server{version: version}
}

// Start starts the MCP server over stdio.
func (s *Server) Start() error {
	fmt.Fprintln(os.Stderr, "pybatch MCP server started (stdio mode)")
	fmt.Fprintln(os.Stderr, "Available tools: lint_files, list_engines")
	return s.runStdio(context.Background())
}

// LintFilesInput is the input schema for the lint_files tool.
type LintFilesInput struct {
	Files     []string `json:"files" jsonschema:"Python file paths to lint"`
	BatchSize int      `json:"batch_size,omitempty" jsonschema:"Files per external-tool invocation (optional, default 50)"`
}

// ListEnginesInput is the input schema for the list_engines tool.
type ListEnginesInput struct {
	// No parameters - returns all registered engines
}

// runStdio runs a spec-compliant MCP server over stdio using the
// official go-sdk.
func (s *Server) runStdio(ctx context.Context) error {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "pybatch",
		Version: s.version,
	}, nil)

	// Tool: lint_files
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "lint_files",
		Description: "Run the import-order, style/convention, and Python 3 compatibility checks over the given Python files. Returns one SUCCESS/FAILED summary line per checker category plus captured diagnostics for failures.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input LintFilesInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		result, err := s.handleLintFiles(ctx, input)
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, err
		}
		return nil, result, nil
	})

	// Tool: list_engines
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_engines",
		Description: "List the registered external lint engines and whether each is installed.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListEnginesInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		return nil, s.handleListEngines(ctx), nil
	})

	// Run the server over stdio until the client disconnects
	return server.Run(ctx, &sdkmcp.StdioTransport{})
}

func (s *Server) handleLintFiles(ctx context.Context, input LintFilesInput) (map[string]any, error) {
	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		return nil, err
	}

	pl := pylint.New(cfg.ToolsDir, cfg.PylintRc)
	engines := lint.Engines{
		Convention:  pl,
		Style:       pycodestyle.New(cfg.ToolsDir, cfg.PycodestyleConfig),
		Py3Compat:   pl.Py3k(),
		ImportOrder: isort.New(cfg.ToolsDir),
	}

	mgr := lint.NewManager(input.Files, engines, false)
	mgr.SetBatchSize(cfg.BatchSize)
	if input.BatchSize > 0 {
		mgr.SetBatchSize(input.BatchSize)
	}
	if cfg.NoShimExclusion {
		mgr.SetShimPattern(nil)
	} else if cfg.ShimPattern != "" {
		re, err := regexp.Compile(cfg.ShimPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid shim_pattern in config: %w", err)
		}
		mgr.SetShimPattern(re)
	}
	// Informational output would corrupt the stdio transport.
	mgr.SetOutput(io.Discard)

	summaries, err := mgr.PerformAllChecks(ctx)
	if err != nil {
		return nil, err
	}

	var diagnostics []string
	for _, res := range mgr.Results() {
		if !res.Passed && res.Message != "" {
			diagnostics = append(diagnostics, res.Message)
		}
	}

	return map[string]any{
		"passed":      !lint.Failed(summaries),
		"summaries":   summaries,
		"diagnostics": strings.Join(diagnostics, "\n"),
	}, nil
}

func (s *Server) handleListEngines(ctx context.Context) map[string]any {
	reg := engine.Global()
	enginesOut := make([]map[string]any, 0)

	for _, name := range reg.Names() {
		r, err := reg.Get(name)
		if err != nil {
			continue
		}

		var availErr error
		switch {
		case r.Batch != nil:
			availErr = r.Batch.CheckAvailability(ctx)
		case r.File != nil:
			availErr = r.File.CheckAvailability(ctx)
		}

		entry := map[string]any{
			"name":      name,
			"available": availErr == nil,
		}
		if availErr != nil {
			entry["detail"] = availErr.Error()
		}
		enginesOut = append(enginesOut, entry)
	}

	return map[string]any{"engines": enginesOut}
}
