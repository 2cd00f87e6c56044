package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/liner/internal/app"
)

func (c *CLI) newShipCmd() *cobra.Command {
	var opts app.SyncOptions

	cmd := &cobra.Command{
		Use:   "ship",
		Short: "Install or update the configured packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.ConfigPath = c.configPath
			return c.app.Sync(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NoSelf, "no-self", false, "Do not update liner itself")
	cmd.Flags().BoolVar(&opts.OnlySelf, "only-self", false, "Only update liner itself")
	cmd.MarkFlagsMutuallyExclusive("no-self", "only-self")

	return cmd
}
