package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sdkcompat/internal/app"
)

func (c *CLI) newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the variant rewrite rules and report the resolved variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := formatFlag(cmd)
			if err != nil {
				return err
			}

			configPath, _ := cmd.Flags().GetString("config")
			outDir, _ := cmd.Flags().GetString("out")
			parallel, _ := cmd.Flags().GetInt("parallel")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			progress, _ := cmd.Flags().GetBool("progress")

			report, err := c.app.Apply(cmd.Context(), app.ApplyOptions{
				ConfigPath: configPath,
				OutDir:     outDir,
				Parallel:   parallel,
				NoCache:    noCache,
			})
			if progress && c.progress != nil {
				if perr := app.RenderProgress(cmd.ErrOrStderr(), c.progress.Steps()); perr != nil && err == nil {
					err = perr
				}
			}
			if err != nil {
				return err
			}
			return app.RenderReport(cmd.OutOrStdout(), report, format)
		},
	}
	cmd.Flags().StringP("out", "o", "", "Write rewritten module metadata below this directory")
	cmd.Flags().IntP("parallel", "p", 0, "Number of projects evaluated concurrently (0 uses every CPU)")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the rule cache")
	cmd.Flags().Bool("progress", false, "Print a summary of every evaluation step to stderr")
	addFormatFlag(cmd)
	return cmd
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", string(app.FormatText), "Output format: text, yaml or json")
}

func formatFlag(cmd *cobra.Command) (app.Format, error) {
	raw, _ := cmd.Flags().GetString("format")
	return app.ParseFormat(raw)
}
