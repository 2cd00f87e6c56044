package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/liner/internal/app"
	"go.trai.ch/liner/internal/core/domain"
)

func (c *CLI) newImportCmd() *cobra.Command {
	var (
		exact, compatible, patch, star bool
		opts                           app.ImportOptions
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Write a configuration from the currently installed packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !exact && !compatible && !patch {
				star = true
			}

			mode, err := domain.ImportModeFromFlags(exact, compatible, patch, star)
			if err != nil {
				return err
			}

			opts.Mode = mode
			opts.ConfigPath = c.configPath
			return c.app.Import(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&exact, "exact", "e", false, "Pin every package to its installed version")
	flags.BoolVarP(&compatible, "compatible", "C", false, "Allow semver-compatible updates (^)")
	flags.BoolVarP(&patch, "patch", "p", false, "Allow patch updates only (~)")
	flags.BoolVarP(&star, "star", "s", false, "Always follow the latest version (default)")
	cmd.MarkFlagsMutuallyExclusive("exact", "compatible", "patch", "star")

	flags.BoolVar(&opts.KeepSelf, "keep-self", false, "Keep liner's own package in the configuration")
	flags.BoolVarP(&opts.Force, "force", "f", false, "Overwrite an existing configuration")

	return cmd
}
