package usecase

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpGoServer "github.com/mark3labs/mcp-go/server"

	"github.com/flowhost/sfbridge/internal/domain"
)

// ToolInvoker executes a resolved tool descriptor as one outbound HTTP
// round trip. Implemented by the salesforce client.
type ToolInvoker interface {
	Invoke(ctx context.Context, desc *domain.Descriptor, params *domain.Params) (*domain.Result, error)
}

// ToolResolver maps an operation tag to its tool descriptor. Implemented
// by the salesforce catalog.
type ToolResolver interface {
	Resolve(op domain.Operation) (*domain.Descriptor, error)
}

// MCPServerAdapter is what tool registration needs from the underlying MCP
// server, kept as an interface so use cases do not depend on a concrete
// server implementation.
type MCPServerAdapter interface {
	// AddTool registers a tool and its handler with the server. The
	// handler signature is the mcp-go server's.
	AddTool(tool mcp.Tool, handlerFunc mcpGoServer.ToolHandlerFunc)
}
