package cli

import "github.com/spf13/cobra"

func newCheckCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...|-]",
		Short: "Report syntax errors in ley files",
		Long: `Parse ley files and report only syntax errors, with the offending
source line. Exits non-zero when any file fails to parse.

Examples:
  ley check                      # Check current directory
  ley check --format summary     # Per-file status table`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, args, flags, modeCheck)
		},
	}

	addRunFlags(cmd, flags, modeCheck)

	return cmd
}
