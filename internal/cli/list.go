package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List service metadata",
	}
	cmd.AddCommand(newListIndexesCommand())
	cmd.AddCommand(newListRoutesCommand())
	return cmd
}

func newListIndexesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "indexes",
		Short:   "List index tags known to the service",
		Example: "  searchlight list indexes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.Indexes(cmd.Context())
			if err != nil {
				return err
			}

			if len(resp.Indexes) == 0 && !quiet {
				p.PrintWarning("No indexes reported by the service")
				return nil
			}
			for _, tag := range resp.Indexes {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
}

func newListRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "routes",
		Short:   "List content routes stored by the service",
		Example: "  searchlight list routes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.Routes(cmd.Context())
			if err != nil {
				return err
			}

			if len(resp.Routes) == 0 && !quiet {
				p.PrintWarning("No routes reported by the service")
				return nil
			}
			for _, route := range resp.Routes {
				fmt.Fprintln(cmd.OutOrStdout(), p.FormatPath(route))
			}
			return nil
		},
	}
}
