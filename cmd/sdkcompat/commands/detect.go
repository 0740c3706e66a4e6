package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sdkcompat/internal/app"
)

func (c *CLI) newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Print the compile SDK level each project declares",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := formatFlag(cmd)
			if err != nil {
				return err
			}

			configPath, _ := cmd.Flags().GetString("config")
			detections, err := c.app.Detect(cmd.Context(), configPath)
			if err != nil {
				return err
			}
			return app.RenderDetections(cmd.OutOrStdout(), detections, format)
		},
	}
	addFormatFlag(cmd)
	return cmd
}
