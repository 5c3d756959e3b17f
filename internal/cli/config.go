package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/stormlightlabs/searchlight/internal/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		RunE:  runConfigShow,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the current configuration to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Save(); err != nil {
				return err
			}
			if !quiet {
				p.PrintSuccess("Configuration written")
			}
			return nil
		},
	})
	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	resolved, err := resolveBaseURL()

	source := config.BaseURLSource(cfg)
	if baseURL != "" {
		source = "--base-url flag"
	}

	if err != nil {
		p.PrintError(err.Error())
	} else {
		p.PrintListItem("Base URL", resolved)
	}
	p.PrintListItem("Source", source)
	p.PrintListItem("Max results", strconv.Itoa(cfg.Search.MaxResults))
	p.PrintListItem("Render width", strconv.Itoa(cfg.Display.Width))
	return err
}
