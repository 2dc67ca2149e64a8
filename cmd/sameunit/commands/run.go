package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sameunit/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Run the test targets of scripts",
		Long: "Run every test target of the scripts found in the given files and directories.\n" +
			"Directories are searched recursively for files matching --pattern.",
		Args: cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.config.BindFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.config.RunOptions(args)
			if err != nil {
				return err
			}
			if watch, _ := cmd.Flags().GetBool("watch"); watch {
				return c.app.Watch(cmd.Context(), opts)
			}
			return c.app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringP("pattern", "p", domain.DefaultScriptPattern, "File name pattern of scripts in directories")
	flags.StringP("filter", "r", "", "Only run test targets matching this regular expression")
	flags.Bool("fail-on-error", true, "Exit with an error when any test failed or errored")
	flags.BoolP("changed", "c", false, "Skip scripts unchanged since their last passing run")
	flags.String("report-dir", domain.DefaultReportPath(), "Directory report files are written to")
	flags.StringSlice("reports", nil, "Report formats to produce (plain)")
	flags.String("log-level", "info", "Minimum level of captured log messages in reports, or none")
	flags.String("send-log-to", "console", "Where reports go: console, file or both")
	flags.BoolP("summary", "s", false, "Print a summary table at the end of the run")
	flags.BoolP("watch", "w", false, "Rerun when a script changes")

	return cmd
}
