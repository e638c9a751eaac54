package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/flowhost/sfbridge/internal/block"
	"github.com/flowhost/sfbridge/internal/domain"
)

// RegisterToolsUseCase exposes the operation catalog through the MCP
// server: one tool per operation, with an input schema derived from the
// block descriptor's visible fields for that operation.
type RegisterToolsUseCase struct {
	server      MCPServerAdapter
	executor    *ExecuteOperationUseCase
	descriptors []*domain.Descriptor
	logger      *slog.Logger
}

// NewRegisterToolsUseCase creates the registration use case over a fixed
// descriptor catalog.
func NewRegisterToolsUseCase(
	server MCPServerAdapter,
	executor *ExecuteOperationUseCase,
	descriptors []*domain.Descriptor,
	logger *slog.Logger,
) *RegisterToolsUseCase {
	return &RegisterToolsUseCase{
		server:      server,
		executor:    executor,
		descriptors: descriptors,
		logger:      logger.With("usecase", "RegisterTools"),
	}
}

// RegisterAll registers every catalog tool with the MCP server. The
// catalog is static, so this runs once at startup.
func (uc *RegisterToolsUseCase) RegisterAll() error {
	for _, desc := range uc.descriptors {
		schema, err := block.InputSchema(desc.Operation)
		if err != nil {
			return fmt.Errorf("building schema for %s: %w", desc.ID, err)
		}
		tool := mcp.NewToolWithRawSchema(desc.ID, desc.Description, schema)
		uc.server.AddTool(tool, uc.handlerFor(desc.Operation))
		uc.logger.Debug("registered tool", slog.String("tool", desc.ID))
	}
	uc.logger.Info("tool registration complete", slog.Int("count", len(uc.descriptors)))
	return nil
}

// handlerFor builds the MCP handler for one operation. Arguments are
// assembled into an ordered bag in block field order before dispatch so the
// dispatcher sees a deterministic key order regardless of how the host
// serialized them.
func (uc *RegisterToolsUseCase) handlerFor(op domain.Operation) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := block.ParamsFrom(op, req.GetArguments())
		result, err := uc.executor.Execute(ctx, string(op), params)
		if err != nil {
			// Operation failures are tool results, not protocol errors.
			return mcp.NewToolResultError(err.Error()), nil
		}
		encoded, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("encoding result for %s: %w", op, err)
		}
		return mcp.NewToolResultText(string(encoded)), nil
	}
}
