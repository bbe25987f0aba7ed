package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterMCPTools registers the catalog on an MCP server, sharing the
// registry's handlers with the HTTP surface.
func RegisterMCPTools(s *mcpserver.MCPServer, r *Registry) {
	for _, tool := range r.Tools() {
		name := tool.Name
		s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			result, err := r.Dispatch(ctx, name, request.GetArguments())
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return result, nil
		})
	}
}
