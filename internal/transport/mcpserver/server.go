package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sandevgo/pdfchat/internal/core"
	"github.com/sandevgo/pdfchat/internal/service/agent"
	"github.com/sandevgo/pdfchat/pkg/log"
)

// Server exposes the retrieval tool over MCP stdio, so external MCP clients
// can search the ingested document. Results are hit metadata as JSON; the
// page images themselves stay on this machine.
type Server struct {
	retriever *agent.Retriever
	mcp       *server.MCPServer
}

func New(retriever *agent.Retriever) *Server {
	s := &Server{
		retriever: retriever,
		mcp:       server.NewMCPServer(core.AppName, core.AppVersion),
	}

	tool := mcp.NewTool(core.RetrievalToolName,
		mcp.WithDescription("Retrieve the ingested document pages most relevant to a question."),
		mcp.WithString("user_query",
			mcp.Required(),
			mcp.Description("The question or search phrase to retrieve context for."),
		),
	)
	s.mcp.AddTool(tool, s.handleRetrieve)

	return s
}

// Serve blocks on stdio until the client disconnects.
func (s *Server) Serve(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("serving retrieval tool over mcp stdio")
	return server.ServeStdio(s.mcp)
}

func (s *Server) handleRetrieve(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("user_query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	hits := s.retriever.Retrieve(ctx, query)
	if len(hits) == 0 {
		return mcp.NewToolResultText("No relevant pages found."), nil
	}

	data, err := json.Marshal(hits)
	if err != nil {
		return nil, fmt.Errorf("encode hits: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
