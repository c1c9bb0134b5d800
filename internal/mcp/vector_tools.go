// ABOUTME: MCP tool implementations for vector table operations.
// ABOUTME: Registers lookup_vector, similar_words, compare_words.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/glovebox/internal/embeddings"
)

func (s *Server) registerVectorTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "lookup_vector",
		Description: "Look up the pre-trained vector for a word. Returns the word's dimension and components, or reports that the word is out of vocabulary.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"word": {"type": "string", "description": "Word to look up (case-sensitive; pre-trained tables are usually lowercase)"}
			},
			"required": ["word"]
		}`),
	}, s.handleLookupVector)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "similar_words",
		Description: "Find the words most similar to a given word by cosine similarity over the vector table. Results are ranked best first.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"word": {"type": "string", "description": "Query word"},
				"limit": {"type": "number", "description": "Maximum number of results (default 10)"}
			},
			"required": ["word"]
		}`),
	}, s.handleSimilarWords)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "compare_words",
		Description: "Compute the cosine similarity between the vectors of two words.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"word_a": {"type": "string", "description": "First word"},
				"word_b": {"type": "string", "description": "Second word"}
			},
			"required": ["word_a", "word_b"]
		}`),
	}, s.handleCompareWords)
}

func (s *Server) handleLookupVector(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Word string `json:"word"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if args.Word == "" {
		return toolError("word is required"), nil
	}

	vec, ok := s.table.Lookup(args.Word)
	if !ok {
		return &gomcp.CallToolResult{
			Content: []gomcp.Content{&gomcp.TextContent{
				Text: fmt.Sprintf("%q is not in the vector table; its matrix row would be all zeros.", args.Word),
			}},
		}, nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Word: %s\n", args.Word))
	sb.WriteString(fmt.Sprintf("Dimension: %d\n", len(vec)))
	sb.WriteString("Vector: ")
	sb.WriteString(formatVector(vec))

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: sb.String()}},
	}, nil
}

func (s *Server) handleSimilarWords(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Word  string `json:"word"`
		Limit int    `json:"limit"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if args.Word == "" {
		return toolError("word is required"), nil
	}
	if args.Limit <= 0 {
		args.Limit = 10
	}

	results, err := s.table.Similar(args.Word, args.Limit)
	if err != nil {
		return toolError("similarity search failed: %v", err), nil
	}

	if len(results) == 0 {
		return &gomcp.CallToolResult{
			Content: []gomcp.Content{&gomcp.TextContent{Text: "No similar words found."}},
		}, nil
	}

	var sb strings.Builder
	for i, r := range results {
		sb.WriteString(fmt.Sprintf("%d. %s (%.4f)\n", i+1, r.Word, r.Score))
	}

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: sb.String()}},
	}, nil
}

func (s *Server) handleCompareWords(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		WordA string `json:"word_a"`
		WordB string `json:"word_b"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if args.WordA == "" || args.WordB == "" {
		return toolError("word_a and word_b are required"), nil
	}

	vecA, ok := s.table.Lookup(args.WordA)
	if !ok {
		return toolError("%q is not in the vector table", args.WordA), nil
	}
	vecB, ok := s.table.Lookup(args.WordB)
	if !ok {
		return toolError("%q is not in the vector table", args.WordB), nil
	}

	score := embeddings.CosineSimilarity(vecA, vecB)

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{
			Text: fmt.Sprintf("cosine(%s, %s) = %.4f", args.WordA, args.WordB, score),
		}},
	}, nil
}

// formatVector renders vector components space-separated in compact form.
func formatVector(vec []float64) string {
	parts := make([]string, len(vec))
	for i, v := range vec {
		parts[i] = fmt.Sprintf("%.6g", v)
	}
	return strings.Join(parts, " ")
}

// toolError creates an error result for MCP tool responses.
func toolError(format string, args ...interface{}) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}
