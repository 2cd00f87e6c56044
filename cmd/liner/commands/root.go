// Package commands implements the CLI commands for liner.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"go.trai.ch/liner/internal/app"
	"go.trai.ch/liner/internal/build"
)

// CLI represents the command line interface for liner.
type CLI struct {
	app     Application
	levels  LevelSetter
	rootCmd *cobra.Command

	configPath string
	verbose    int
	quiet      int
}

// Application represents the application logic interface.
type Application interface {
	Import(ctx context.Context, opts app.ImportOptions) error
	Sync(ctx context.Context, opts app.SyncOptions) error
}

// LevelSetter adjusts the log verbosity.
type LevelSetter interface {
	SetLevel(level slog.Level)
}

// New creates a new CLI instance with the given app. levels may be nil.
func New(a Application, levels LevelSetter) *CLI {
	c := &CLI{
		app:    a,
		levels: levels,
	}

	rootCmd := &cobra.Command{
		Use:   "liner",
		Short: "Keep cargo-installed binaries in line with a declared configuration",
		Long: "Without a subcommand, liner installs or updates every package declared in\n" +
			"its configuration file, as if `liner ship` was run.",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           build.Version,
		PersistentPreRunE: c.applyVerbosity,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Sync(cmd.Context(), app.SyncOptions{ConfigPath: c.configPath})
		},
	}

	// Registered before the version flag so that it does not claim -v.
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Path to the configuration file")
	flags.CountVarP(&c.verbose, "verbose", "v", "Increase log verbosity")
	flags.CountVarP(&c.quiet, "quiet", "q", "Decrease log verbosity (-qq for errors only, -qqq for none)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.AddCommand(c.newShipCmd())
	rootCmd.AddCommand(c.newImportCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	c.rootCmd = rootCmd
	return c
}

// LevelOff is above every level the logger emits.
const LevelOff = slog.LevelError + 4

// Level maps the counted verbosity flags to a log level.
// Debug covers every extra -v; -qqq silences logging entirely.
func Level(verbose, quiet int) slog.Level {
	switch {
	case verbose > 0:
		return slog.LevelDebug
	case quiet == 1:
		return slog.LevelWarn
	case quiet == 2:
		return slog.LevelError
	case quiet > 2:
		return LevelOff
	default:
		return slog.LevelInfo
	}
}

func (c *CLI) applyVerbosity(_ *cobra.Command, _ []string) error {
	if c.levels != nil {
		c.levels.SetLevel(Level(c.verbose, c.quiet))
	}
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
