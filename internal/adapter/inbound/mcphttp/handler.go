// Package mcphttp holds the bridge's plain HTTP surface: health checking
// and the block descriptor endpoint the host UI reads field definitions
// from. MCP traffic itself is handled by the mcp-go server in main.
package mcphttp

import (
	"log/slog"
	"net/http"

	"github.com/flowhost/sfbridge/internal/block"
)

// Handlers holds dependencies for the admin HTTP handlers.
type Handlers struct {
	logger *slog.Logger
}

// NewHandlers creates a new Handlers struct.
func NewHandlers(logger *slog.Logger) *Handlers {
	return &Handlers{
		logger: logger.With("component", "mcphttp_handler"),
	}
}

// RegisterAdminRoutes sets up the HTTP routes for admin endpoints.
func (h *Handlers) RegisterAdminRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.handleHealthz)
	mux.HandleFunc("GET /admin/block", h.handleBlockDescriptor)
}

func (h *Handlers) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// handleBlockDescriptor serves the declarative block descriptor (fields,
// visibility rules, operation dropdown) for the host UI.
func (h *Handlers) handleBlockDescriptor(w http.ResponseWriter, r *http.Request) {
	doc, err := block.Descriptor()
	if err != nil {
		h.logger.Error("failed to render block descriptor", slog.Any("error", err))
		http.Error(w, "failed to render block descriptor", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		h.logger.Warn("failed to write block descriptor response", slog.Any("error", err))
	}
}
