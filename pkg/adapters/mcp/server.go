package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/cors"

	"github.com/aretw0/helpcenter"
	"github.com/aretw0/helpcenter/pkg/corpus"
	"github.com/aretw0/helpcenter/pkg/domain"
)

// CorpusURI addresses the compiled corpus resource.
const CorpusURI = "helpcenter://corpus"

// Engine defines what the MCP server needs from the help center core.
type Engine interface {
	Handle(ctx context.Context, ev domain.Event) domain.Payload
	Corpus() *corpus.Corpus
}

// OpenArgs are the arguments of help_open.
type OpenArgs struct {
	Permissions string `json:"permissions,omitempty" jsonschema_description:"Decimal capability bitmask of the invoker"`
}

// SelectArgs are the arguments of help_select.
type SelectArgs struct {
	TopicID   string `json:"topic_id" jsonschema_description:"Id of the topic picked in the select menu"`
	Ephemeral bool   `json:"ephemeral,omitempty" jsonschema_description:"Whether the message carrying the menu was private"`
}

// PressArgs are the arguments of help_press.
type PressArgs struct {
	ControlID   string `json:"control_id" jsonschema_description:"Identifier of the button that was pressed"`
	Permissions string `json:"permissions,omitempty" jsonschema_description:"Decimal capability bitmask of the invoker"`
	Ephemeral   bool   `json:"ephemeral,omitempty" jsonschema_description:"Whether the message carrying the button was private"`
}

// Server wraps the engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger for tool calls.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		mcpServer: server.NewMCPServer("helpcenter-mcp", strings.TrimSpace(helpcenter.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves over SSE on addr until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, addr, baseURL string) error {
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           cors.AllowAll().Handler(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("help_open",
		mcp.WithDescription("Open the help center: renders the root listing as a new private message."),
		mcp.WithString("permissions", mcp.Description("Decimal capability bitmask of the invoker (optional)")),
		mcp.WithOutputSchema[domain.Payload](),
	), mcp.NewStructuredToolHandler(s.handleOpen))

	s.mcpServer.AddTool(mcp.NewTool("help_select",
		mcp.WithDescription("Pick a topic from a select menu and render its detail view."),
		mcp.WithString("topic_id", mcp.Required(), mcp.Description("Topic id taken from a select option value")),
		mcp.WithBoolean("ephemeral", mcp.Description("Whether the message carrying the menu was private")),
		mcp.WithOutputSchema[domain.Payload](),
	), mcp.NewStructuredToolHandler(s.handleSelect))

	s.mcpServer.AddTool(mcp.NewTool("help_press",
		mcp.WithDescription("Press a button (back, home, static menu) by its control id."),
		mcp.WithString("control_id", mcp.Required(), mcp.Description("Control id of the button")),
		mcp.WithString("permissions", mcp.Description("Decimal capability bitmask of the invoker (optional)")),
		mcp.WithBoolean("ephemeral", mcp.Description("Whether the message carrying the button was private")),
		mcp.WithOutputSchema[domain.Payload](),
	), mcp.NewStructuredToolHandler(s.handlePress))
}

func (s *Server) handleOpen(ctx context.Context, _ mcp.CallToolRequest, args OpenArgs) (domain.Payload, error) {
	return s.handle(ctx, domain.Event{Kind: domain.EventCommand, Permissions: args.Permissions}), nil
}

func (s *Server) handleSelect(ctx context.Context, _ mcp.CallToolRequest, args SelectArgs) (domain.Payload, error) {
	if args.TopicID == "" {
		return domain.Payload{}, errors.New("topic_id is required")
	}
	return s.handle(ctx, domain.Event{
		Kind:      domain.EventSelect,
		ControlID: domain.SelectControlID,
		Values:    []string{args.TopicID},
		Ephemeral: args.Ephemeral,
	}), nil
}

func (s *Server) handlePress(ctx context.Context, _ mcp.CallToolRequest, args PressArgs) (domain.Payload, error) {
	if args.ControlID == "" {
		return domain.Payload{}, errors.New("control_id is required")
	}
	return s.handle(ctx, domain.Event{
		Kind:        domain.EventButton,
		ControlID:   args.ControlID,
		Permissions: args.Permissions,
		Ephemeral:   args.Ephemeral,
	}), nil
}

func (s *Server) handle(ctx context.Context, ev domain.Event) domain.Payload {
	s.logger.Debug("mcp tool call", "kind", ev.Kind, "control", ev.ControlID)
	return s.engine.Handle(ctx, ev)
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(CorpusURI, "Compiled help corpus",
		mcp.WithResourceDescription("Every topic keyed by id, as produced by helpcenter build"),
		mcp.WithMIMEType("application/json"),
	), s.readCorpus)
}

func (s *Server) readCorpus(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := corpus.Encode(s.engine.Corpus())
	if err != nil {
		return nil, fmt.Errorf("failed to encode corpus: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      CorpusURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
