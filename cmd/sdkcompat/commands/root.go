// Package commands implements the CLI commands for sdkcompat.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/sdkcompat/internal/app"
	"go.trai.ch/sdkcompat/internal/build"
	"go.trai.ch/sdkcompat/internal/core/ports"
)

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for sdkcompat.
type CLI struct {
	app      *app.App
	logger   ports.Logger
	progress ports.ProgressLog
	rootCmd  *cobra.Command
}

// New creates a new CLI instance with the given app. progress backs the
// --progress flag of apply.
func New(a *app.App, logger ports.Logger, progress ports.ProgressLog) *CLI {
	rootCmd := &cobra.Command{
		Use:           "sdkcompat",
		Short:         "Keep Android dependencies compatible with the compile SDK",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", ".", "Build descriptor file or a directory to search from")
	rootCmd.PersistentFlags().Bool("json", false, "Write log messages as JSON")

	c := &CLI{
		app:      a,
		logger:   logger,
		progress: progress,
		rootCmd:  rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if enabled, _ := cmd.Flags().GetBool("json"); enabled {
			if l, ok := c.logger.(jsonLogger); ok {
				l.SetJSON(true)
			}
		}
	}

	rootCmd.AddCommand(c.newApplyCmd())
	rootCmd.AddCommand(c.newDetectCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

// SetErr redirects diagnostic output such as the progress summary.
func (c *CLI) SetErr(w io.Writer) {
	c.rootCmd.SetErr(w)
}
