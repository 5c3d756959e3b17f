package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/stormlightlabs/searchlight/internal/api"
)

var (
	searchMax    int
	searchTag    string
	searchPost   bool
	searchFormat string
)

func newSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the documentation service",
		Long: `Run a keyword search against the remote documentation service.

Result order and relevance scores come from the service and are shown
as returned.`,
		Example: `  searchlight search "http client"
  searchlight search -n 10 -t guides "retry"
  searchlight search -f json "websocket"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().IntVarP(&searchMax, "max-results", "n", 0, "Maximum number of results (service default when 0)")
	cmd.Flags().StringVarP(&searchTag, "tag", "t", "", "Restrict the search to a single index tag")
	cmd.Flags().BoolVar(&searchPost, "post", false, "Send the search as a POST with a JSON body")
	cmd.Flags().StringVarP(&searchFormat, "format", "f", "table", "Output format (table, json)")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	if searchMax < 0 || searchMax > cfg.Search.MaxResults {
		return fmt.Errorf("max-results must be between 1 and %d", cfg.Search.MaxResults)
	}

	log.Debug("search", "query", query, "tag", searchTag, "post", searchPost)

	resp, err := client.Search(cmd.Context(), api.SearchRequest{
		Query:      query,
		Tag:        searchTag,
		MaxResults: searchMax,
		Post:       searchPost,
	})
	if err != nil {
		return err
	}

	if len(resp.Results) == 0 {
		if !quiet {
			p.PrintError(fmt.Sprintf("No matches for %q", resp.Query))
		}
		return nil
	}

	switch searchFormat {
	case "json":
		return outputSearchJSON(cmd, resp)
	default:
		return outputSearchTable(cmd, resp)
	}
}

func outputSearchTable(cmd *cobra.Command, resp *api.SearchResponse) error {
	if !quiet {
		p.PrintInfo(fmt.Sprintf("%d result(s) for %q (%dms)", resp.Total, resp.Query, resp.Took))
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"#", "Title", "Route", "Type", "Score"})

	for i, res := range resp.Results {
		score := ""
		if res.Score != nil {
			score = fmt.Sprintf("%.3f", *res.Score)
		}
		t.AppendRow(table.Row{i + 1, res.DisplayTitle(), res.SectionRoute, res.Type, score})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}

func outputSearchJSON(cmd *cobra.Command, resp *api.SearchResponse) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
