// Package format renders service responses for human readers. All
// functions are pure: the same input always yields the same text.
package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stormlightlabs/searchlight/internal/api"
)

// SummaryLimit bounds how many ranked matches a search summary shows.
const SummaryLimit = 5

// JSONBlock renders a value as a titled, fenced JSON block so every tool's
// raw-data output looks the same.
func JSONBlock(title string, v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		data = []byte(fmt.Sprintf("%q", err.Error()))
	}

	var sb strings.Builder
	sb.WriteString("## ")
	sb.WriteString(title)
	sb.WriteString("\n\n```json\n")
	sb.Write(data)
	sb.WriteString("\n```")
	return sb.String()
}

// SearchSummary renders a short ranked summary of a search response. The
// service's result order is trusted as-is.
func SearchSummary(resp *api.SearchResponse) string {
	if resp == nil || len(resp.Results) == 0 {
		query := ""
		if resp != nil {
			query = resp.Query
		}
		return fmt.Sprintf("No matches for %q.", query)
	}

	shown := len(resp.Results)
	if shown > SummaryLimit {
		shown = SummaryLimit
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d result(s) for %q (showing %d, %dms).\n",
		resp.Total, resp.Query, shown, resp.Took)

	for i, res := range resp.Results[:shown] {
		fmt.Fprintf(&sb, "%d. %s [%s]", i+1, res.DisplayTitle(), res.SectionRoute)
		if res.Score != nil {
			fmt.Fprintf(&sb, " (score %.3f)", *res.Score)
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}
