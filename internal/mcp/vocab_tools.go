// ABOUTME: MCP tool implementations for vocabulary index operations.
// ABOUTME: Registers vocab_rank and vocab_words; both require an attached vocabulary.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerVocabTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "vocab_rank",
		Description: "Look up the matrix row (rank) assigned to a word in the loaded vocabulary. Rank r means the word's vector lives in matrix row r.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"word": {"type": "string", "description": "Word to look up"}
			},
			"required": ["word"]
		}`),
	}, s.handleVocabRank)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "vocab_words",
		Description: "List vocabulary words by rank, starting at a given rank. Ranks are contiguous from 0, most frequent word first.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"start": {"type": "number", "description": "First rank to list (default 0)"},
				"limit": {"type": "number", "description": "Maximum number of words (default 20)"}
			}
		}`),
	}, s.handleVocabWords)
}

func (s *Server) handleVocabRank(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	if s.index == nil {
		return toolError("no vocabulary loaded; start the server with a vocabulary file"), nil
	}

	var args struct {
		Word string `json:"word"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if args.Word == "" {
		return toolError("word is required"), nil
	}

	rank, ok := s.index.Rank(args.Word)
	if !ok {
		return &gomcp.CallToolResult{
			Content: []gomcp.Content{&gomcp.TextContent{
				Text: fmt.Sprintf("%q is not in the vocabulary (%d words).", args.Word, s.index.Size()),
			}},
		}, nil
	}

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{
			Text: fmt.Sprintf("%q has rank %d of %d.", args.Word, rank, s.index.Size()),
		}},
	}, nil
}

func (s *Server) handleVocabWords(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	if s.index == nil {
		return toolError("no vocabulary loaded; start the server with a vocabulary file"), nil
	}

	var args struct {
		Start int `json:"start"`
		Limit int `json:"limit"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if args.Start < 0 {
		args.Start = 0
	}
	if args.Limit <= 0 {
		args.Limit = 20
	}

	if args.Start >= s.index.Size() {
		return &gomcp.CallToolResult{
			Content: []gomcp.Content{&gomcp.TextContent{
				Text: fmt.Sprintf("No words at rank %d or above; the vocabulary has %d words.", args.Start, s.index.Size()),
			}},
		}, nil
	}

	end := args.Start + args.Limit
	if end > s.index.Size() {
		end = s.index.Size()
	}

	var sb strings.Builder
	for r := args.Start; r < end; r++ {
		w, err := s.index.Word(r)
		if err != nil {
			return toolError("failed to read rank %d: %v", r, err), nil
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", r, w))
	}

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: sb.String()}},
	}, nil
}
