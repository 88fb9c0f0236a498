package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/helpcenter/internal/config"
	"github.com/aretw0/helpcenter/pkg/adapters/mcp"
	"github.com/aretw0/helpcenter/pkg/observability"
)

// MCPOptions configures the MCP host.
type MCPOptions struct {
	Transport string // "stdio" or "sse"
	Addr      string
	BaseURL   string
}

// ServeMCP runs the MCP host. Logs go to the logger only: stdout carries JSON-RPC.
func ServeMCP(ctx context.Context, cfg config.Config, opts MCPOptions, logger *slog.Logger) error {
	engine, closeSource, err := createEngine(ctx, cfg, logger, observability.LoggingHooks(logger))
	if err != nil {
		return err
	}
	defer closeSource()

	s := mcp.NewServer(engine, mcp.WithLogger(logger))
	switch opts.Transport {
	case "", "stdio":
		return s.ServeStdio()
	case "sse":
		return s.ServeSSE(ctx, opts.Addr, opts.BaseURL)
	default:
		return fmt.Errorf("unknown transport %q (want stdio or sse)", opts.Transport)
	}
}
