package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "info",
		Short:   "Show documentation service metadata",
		Long:    `Fetch and display the metadata document from the service root endpoint.`,
		Example: "  searchlight info",
		Args:    cobra.NoArgs,
		RunE:    runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	meta, err := client.Metadata(cmd.Context())
	if err != nil {
		return err
	}

	p.PrintListItem("Service", client.BaseURL())
	if len(meta) == 0 {
		p.PrintWarning("Service returned no metadata")
		return nil
	}

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		p.PrintListItem(k, fmt.Sprint(meta[k]))
	}
	return nil
}
