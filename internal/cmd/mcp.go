package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lintkit/pybatch/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server (stdio mode)",
	Long: `Starts a Model Context Protocol server over stdio, exposing the lint
checks as tools (lint_files, list_engines) for MCP-capable clients.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return mcp.NewServer(version).Start()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
