package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stormlightlabs/searchlight/internal/api"
	"github.com/stormlightlabs/searchlight/internal/format"
)

// Handlers bind tool calls to the API client. The client is immutable
// after construction; handlers hold no other state.
type Handlers struct {
	client     *api.Client
	maxResults int
	help       HelpDocument
	version    string
}

// NewHandlers creates the tool handlers. maxResults caps the search-docs
// maxResults argument.
func NewHandlers(client *api.Client, maxResults int, version string) *Handlers {
	if maxResults <= 0 {
		maxResults = 100
	}
	return &Handlers{
		client:     client,
		maxResults: maxResults,
		help:       newHelpDocument(version),
		version:    version,
	}
}

// HelpHandler serves the static help document.
func (h *Handlers) HelpHandler(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, any, error) {
	return textResult(h.help.Render()), h.help, nil
}

// VersionHandler reports the running version.
func (h *Handlers) VersionHandler(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, any, error) {
	return textResult(h.version), VersionOutput{Version: h.version}, nil
}

// SearchDocsHandler runs a keyword search and returns a ranked summary
// alongside the raw response.
func (h *Handlers) SearchDocsHandler(ctx context.Context, req *mcp.CallToolRequest, input SearchDocsInput) (*mcp.CallToolResult, any, error) {
	if input.Query == "" {
		return errorResult("query must not be empty"), nil, nil
	}
	if input.MaxResults != 0 && (input.MaxResults < 1 || input.MaxResults > h.maxResults) {
		return errorResult(fmt.Sprintf("maxResults must be between 1 and %d, got %d", h.maxResults, input.MaxResults)), nil, nil
	}
	if input.Method != "" && input.Method != "get" && input.Method != "post" {
		return errorResult(fmt.Sprintf("method must be \"get\" or \"post\", got %q", input.Method)), nil, nil
	}

	resp, err := h.client.Search(ctx, api.SearchRequest{
		Query:      input.Query,
		Tag:        input.Tag,
		MaxResults: input.MaxResults,
		Post:       input.Method == "post",
	})
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	text := format.SearchSummary(resp) + "\n\n" + format.JSONBlock("Search response", resp)
	return textResult(text), resp, nil
}

// GetDocsHandler fetches the markdown body stored for a route.
func (h *Handlers) GetDocsHandler(ctx context.Context, req *mcp.CallToolRequest, input GetDocsInput) (*mcp.CallToolResult, any, error) {
	if len(input.Route) == 0 || input.Route[0] != '/' {
		return errorResult(fmt.Sprintf("route must start with \"/\", got %q", input.Route)), nil, nil
	}

	resp, err := h.client.Content(ctx, input.Route)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	result := textResult(format.JSONBlock("Content response", resp))
	result.Content = append(result.Content, &mcp.TextContent{Text: resp.Content})
	return result, resp, nil
}

// ListIndexesHandler enumerates the service's index tags.
func (h *Handlers) ListIndexesHandler(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, any, error) {
	resp, err := h.client.Indexes(ctx)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	return textResult(format.JSONBlock("Indexes", resp)), resp, nil
}

// ListRoutesHandler enumerates the service's stored content routes.
func (h *Handlers) ListRoutesHandler(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, any, error) {
	resp, err := h.client.Routes(ctx)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}
	return textResult(format.JSONBlock("Routes", resp)), resp, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult converts a per-call failure into a tool-level error result.
// Handlers never return transport errors for recoverable conditions; the
// calling agent is expected to read the message and react.
func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
