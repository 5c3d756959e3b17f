package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/stormlightlabs/searchlight/internal/api"
	"github.com/stormlightlabs/searchlight/internal/config"
	"github.com/stormlightlabs/searchlight/internal/version"
)

var (
	cfg     *config.Config
	baseURL string
	quiet   bool

	p = NewPrinter()
)

var rootCmd = &cobra.Command{
	Use:   "searchlight",
	Short: "A documentation search bridge for AI coding assistants",
	Long: `Searchlight is a thin bridge between an AI coding assistant and a remote
documentation search service. It exposes search, content retrieval, and
listing operations as MCP tools, and the same operations as CLI commands.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it.
// A malformed base URL is fatal: the process exits non-zero before
// serving a single request.
func Execute() error {
	loadConfig()
	rootCmd.AddCommand(
		newServeCommand(),
		newSearchCommand(),
		newReadCommand(),
		newListCommand(),
		newInfoCommand(),
		newConfigCommand(),
	)
	return fang.Execute(context.Background(), rootCmd)
}

func loadConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.DefaultConfig()
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&baseURL, "base-url", "u", "", "Documentation service base URL (overrides $"+config.EnvBaseURL+")")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
}

// resolveBaseURL applies the --base-url flag over the config/env resolution.
func resolveBaseURL() (string, error) {
	if baseURL != "" {
		return baseURL, nil
	}
	return config.ResolveBaseURL(cfg)
}

// newClient builds the API client every command shares. The base URL is
// resolved exactly once per invocation.
func newClient() (*api.Client, error) {
	resolved, err := resolveBaseURL()
	if err != nil {
		return nil, err
	}
	return api.New(resolved)
}
