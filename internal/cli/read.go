package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	readRender bool
	readWidth  int
)

func newReadCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <route>",
		Short: "Fetch documentation content by route",
		Long: `Fetch the markdown body stored for a route and print it.

Routes come from search results or from "searchlight list routes" and
always start with a slash.`,
		Example: `  searchlight read /guides/http-client
  searchlight read -r -w 100 /reference/config`,
		Args: cobra.ExactArgs(1),
		RunE: runRead,
	}

	cmd.Flags().BoolVarP(&readRender, "render", "r", false, "Render markdown with glamour")
	cmd.Flags().IntVarP(&readWidth, "width", "w", 0, "Render width (defaults to config)")

	return cmd
}

func runRead(cmd *cobra.Command, args []string) error {
	route := args[0]
	if len(route) == 0 || route[0] != '/' {
		return fmt.Errorf("route must start with \"/\", got %q", route)
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	resp, err := client.Content(cmd.Context(), route)
	if err != nil {
		return err
	}

	output := resp.Content
	if readRender || cfg.Display.RenderMarkdown {
		rendered, err := renderMarkdown(resp.Content, readWidth)
		if err != nil {
			return err
		}
		output = rendered
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), output)
	return err
}

func renderMarkdown(input string, width int) (string, error) {
	if width <= 0 {
		width = cfg.Display.Width
	}
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(input)
}
