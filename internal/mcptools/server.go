package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"pdf-toolkit/internal/domain"
)

// CreateServer registers every PDF tool on a new MCP server
func CreateServer(deps Deps, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "pdf-toolkit", Version: version}, nil)

	mcp.AddTool(server, MergeTool(), func(ctx context.Context, req *mcp.CallToolRequest, query MergeQuery) (*mcp.CallToolResult, *OperationResponse, error) {
		return MergeToolHandler(ctx, req, query, deps)
	})

	mcp.AddTool(server, RotateTool(), func(ctx context.Context, req *mcp.CallToolRequest, query RotateQuery) (*mcp.CallToolResult, *OperationResponse, error) {
		return RotateToolHandler(ctx, req, query, deps)
	})

	mcp.AddTool(server, SplitTool(), func(ctx context.Context, req *mcp.CallToolRequest, query SplitQuery) (*mcp.CallToolResult, *OperationResponse, error) {
		return SplitToolHandler(ctx, req, query, deps)
	})

	mcp.AddTool(server, CompressTool(), func(ctx context.Context, req *mcp.CallToolRequest, query CompressQuery) (*mcp.CallToolResult, *OperationResponse, error) {
		return CompressToolHandler(ctx, req, query, deps)
	})

	mcp.AddTool(server, ExtractTool(), func(ctx context.Context, req *mcp.CallToolRequest, query ExtractQuery) (*mcp.CallToolResult, *OperationResponse, error) {
		return ExtractToolHandler(ctx, req, query, deps)
	})

	mcp.AddTool(server, InfoTool(), func(ctx context.Context, req *mcp.CallToolRequest, query InfoQuery) (*mcp.CallToolResult, *domain.DocumentInfo, error) {
		return InfoToolHandler(ctx, req, query, deps)
	})

	deps.Logger.Info("MCP tools registered", "count", 6)
	return server
}
