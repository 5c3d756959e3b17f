package mcp

// SearchDocsInput defines the input schema for the search-docs tool.
type SearchDocsInput struct {
	Query      string `json:"query" jsonschema:"Search query for the documentation service"`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"Maximum number of results to return (1-100)"`
	Tag        string `json:"tag,omitempty" jsonschema:"Restrict the search to a single index tag"`
	Method     string `json:"method,omitempty" jsonschema:"HTTP transport for the search call: get (default) or post"`
}

// GetDocsInput defines the input schema for the get-docs tool.
type GetDocsInput struct {
	Route string `json:"route" jsonschema:"Content route to fetch (must start with /)"`
}

// EmptyInput is the input type for tools that take no arguments.
type EmptyInput struct{}

// VersionOutput is the structured content of the version tool.
type VersionOutput struct {
	Version string `json:"version"`
}
