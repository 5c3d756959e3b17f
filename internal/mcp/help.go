package mcp

import (
	"fmt"
	"strings"
)

// HelpDocument is the static capability description served by the help
// tool. It is built once and rendered the same way on every call.
type HelpDocument struct {
	Name     string     `json:"name"`
	Version  string     `json:"version"`
	Overview string     `json:"overview"`
	Tools    []HelpTool `json:"tools"`
}

// HelpTool documents a single tool for the help output.
type HelpTool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
}

func newHelpDocument(version string) HelpDocument {
	return HelpDocument{
		Name:    "searchlight",
		Version: version,
		Overview: "searchlight bridges an AI coding assistant to a remote documentation " +
			"search service. Search for sections with search-docs, then fetch the full " +
			"markdown body of a match with get-docs using its route.",
		Tools: []HelpTool{
			{
				Name:        "search-docs",
				Description: "Keyword search across the indexed documentation.",
				Usage:       `search-docs {"query": "http client", "maxResults": 10}`,
			},
			{
				Name:        "get-docs",
				Description: "Fetch the stored markdown body for a route returned by search-docs.",
				Usage:       `get-docs {"route": "/guides/http-client"}`,
			},
			{
				Name:        "list-indexes",
				Description: "List the index tags available for the tag filter of search-docs.",
				Usage:       "list-indexes",
			},
			{
				Name:        "list-routes",
				Description: "List every content route stored by the service.",
				Usage:       "list-routes",
			},
			{
				Name:        "version",
				Description: "Report the running searchlight version.",
				Usage:       "version",
			},
			{
				Name:        "help",
				Description: "Show this document.",
				Usage:       "help",
			},
		},
	}
}

// Render produces the text form of the help document.
func (d HelpDocument) Render() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s v%s\n\n", d.Name, d.Version)
	sb.WriteString(d.Overview)
	sb.WriteString("\n\n## Tools\n")
	for _, t := range d.Tools {
		fmt.Fprintf(&sb, "\n- %s: %s\n  Usage: %s\n", t.Name, t.Description, t.Usage)
	}
	return sb.String()
}
