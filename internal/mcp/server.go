// Package mcp exposes the documentation-retrieval tools over the Model
// Context Protocol.
package mcp

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stormlightlabs/searchlight/internal/api"
)

// ServerConfig carries the immutable settings for one server instance.
type ServerConfig struct {
	Version    string
	MaxResults int // cap for the search-docs maxResults argument
}

// NewServer creates the MCP server and registers every tool. Argument
// schemas carry the declared constraints, so malformed calls are rejected
// before a handler runs.
func NewServer(client *api.Client, cfg ServerConfig) *mcp.Server {
	logger := slog.New(slog.NewJSONHandler(
		os.Stderr,
		&slog.HandlerOptions{Level: slog.LevelInfo},
	))

	server := mcp.NewServer(
		&mcp.Implementation{Name: "searchlight", Version: cfg.Version},
		&mcp.ServerOptions{Logger: logger},
	)

	handlers := NewHandlers(client, cfg.MaxResults, cfg.Version)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "help",
		Description: "Describe the searchlight tools and how to combine them",
		InputSchema: emptySchema(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, any, error) {
		return handlers.HelpHandler(ctx, req, input)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "version",
		Description: "Report the running searchlight version",
		InputSchema: emptySchema(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, any, error) {
		return handlers.VersionHandler(ctx, req, input)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search-docs",
		Description: "Search the documentation service for sections matching a query",
		InputSchema: searchDocsSchema(cfg.MaxResults),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input SearchDocsInput) (*mcp.CallToolResult, any, error) {
		logger.Info("Tool call: search-docs", "query", input.Query, "tag", input.Tag, "method", input.Method)
		return handlers.SearchDocsHandler(ctx, req, input)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-docs",
		Description: "Fetch the full markdown content stored for a documentation route",
		InputSchema: getDocsSchema(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input GetDocsInput) (*mcp.CallToolResult, any, error) {
		logger.Info("Tool call: get-docs", "route", input.Route)
		return handlers.GetDocsHandler(ctx, req, input)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list-indexes",
		Description: "List the index tags known to the documentation service",
		InputSchema: emptySchema(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, any, error) {
		logger.Info("Tool call: list-indexes")
		return handlers.ListIndexesHandler(ctx, req, input)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list-routes",
		Description: "List every content route stored by the documentation service",
		InputSchema: emptySchema(),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, any, error) {
		logger.Info("Tool call: list-routes")
		return handlers.ListRoutesHandler(ctx, req, input)
	})

	return server
}

// RunStdio runs the server using the stdio transport.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP runs the server using the streamable HTTP transport.
func RunHTTP(ctx context.Context, server *mcp.Server, addr string) error {
	f := func(r *http.Request) *mcp.Server { return server }
	handler := mcp.NewStreamableHTTPHandler(f, nil)

	s := &http.Server{Addr: addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = s.Shutdown(context.Background())
	}()

	return s.ListenAndServe()
}

func emptySchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: map[string]*jsonschema.Schema{},
	}
}

func searchDocsSchema(maxResults int) *jsonschema.Schema {
	if maxResults <= 0 {
		maxResults = 100
	}
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"query": {
				Type:        "string",
				Description: "Search query for the documentation service",
				MinLength:   ptrTo(1),
			},
			"maxResults": {
				Type:        "integer",
				Description: "Maximum number of results to return",
				Minimum:     ptrTo(float64(1)),
				Maximum:     ptrTo(float64(maxResults)),
			},
			"tag": {
				Type:        "string",
				Description: "Restrict the search to a single index tag",
			},
			"method": {
				Type:        "string",
				Description: "HTTP transport for the search call",
				Enum:        []any{"get", "post"},
			},
		},
		Required: []string{"query"},
	}
}

func getDocsSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"route": {
				Type:        "string",
				Description: "Content route to fetch",
				Pattern:     "^/",
			},
		},
		Required: []string{"route"},
	}
}

func ptrTo[T any](v T) *T { return &v }
