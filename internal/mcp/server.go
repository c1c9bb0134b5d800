// ABOUTME: MCP server initialization and configuration for glovebox.
// ABOUTME: Sets up server with vector and vocabulary tools for AI agent access.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/glovebox/internal/embeddings"
	"github.com/2389-research/glovebox/internal/vocab"
)

// Server wraps the MCP server with a vector table and optional vocabulary.
type Server struct {
	mcp   *gomcp.Server
	table *embeddings.Table
	index *vocab.Index
}

// ServerOption configures optional Server dependencies.
type ServerOption func(*Server)

// WithVocabulary sets the vocabulary index backing the rank tools.
func WithVocabulary(index *vocab.Index) ServerOption {
	return func(s *Server) {
		s.index = index
	}
}

// NewServer creates an MCP server exposing vector lookup and similarity
// tools. Vocabulary tools respond with an explanation until a vocabulary
// is attached with WithVocabulary.
func NewServer(table *embeddings.Table, opts ...ServerOption) (*Server, error) {
	if table == nil {
		return nil, fmt.Errorf("vector table is required")
	}

	mcpServer := gomcp.NewServer(
		&gomcp.Implementation{
			Name:    "glovebox",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp:   mcpServer,
		table: table,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.registerVectorTools()
	s.registerVocabTools()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &gomcp.StdioTransport{})
}
