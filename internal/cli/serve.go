package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stormlightlabs/searchlight/internal/mcp"
	"github.com/stormlightlabs/searchlight/internal/version"
)

func newServeCommand() *cobra.Command {
	var stdio bool
	var httpAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the MCP server over stdio (default) or streamable HTTP.

The documentation service base URL is resolved once at startup; an invalid
URL terminates the process before any tool call is served.`,
		Example: `  searchlight serve
  searchlight serve --http :8080
  DCS_BASE_URL=http://localhost:7700 searchlight serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stdio && httpAddr == "" {
				stdio = true
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			server := mcp.NewServer(client, mcp.ServerConfig{
				Version:    version.Version,
				MaxResults: cfg.Search.MaxResults,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if httpAddr != "" {
				fmt.Fprintf(os.Stderr, "Starting MCP server on HTTP %s (service %s)\n", httpAddr, client.BaseURL())
				return mcp.RunHTTP(ctx, server, httpAddr)
			}
			return mcp.RunStdio(ctx, server)
		},
	}

	cmd.Flags().BoolVar(&stdio, "stdio", false, "Use stdio transport (default)")
	cmd.Flags().StringVar(&httpAddr, "http", "", "Use HTTP transport on the specified address (e.g., :8080)")
	return cmd
}
