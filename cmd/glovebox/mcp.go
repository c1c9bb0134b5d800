// ABOUTME: MCP server command implementation for glovebox.
// ABOUTME: Starts the MCP server in stdio mode for AI agent integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcppkg "github.com/2389-research/glovebox/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server (stdio mode)",
	Long: `Start the Model Context Protocol server for AI agent integration.

The MCP server communicates via stdio, allowing AI agents like Claude
to look up vectors, ranks, and nearest neighbors through a
standardized protocol.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	table, err := loadTable()
	if err != nil {
		return err
	}

	var opts []mcppkg.ServerOption
	index, err := loadVocabIfSet()
	if err != nil {
		return err
	}
	if index != nil {
		opts = append(opts, mcppkg.WithVocabulary(index))
	}

	server, err := mcppkg.NewServer(table, opts...)
	if err != nil {
		return err
	}

	return server.Serve(ctx)
}
