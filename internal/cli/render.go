package cli

import "github.com/spf13/cobra"

func newRenderCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "render [paths...|-]",
		Short: "Interpret ley blocks with their structure handlers",
		Long: `Parse ley files, then hand each block to the handler registered for its
structure name and print the interpreted output. Blocks whose structure is
unknown or disabled are skipped, or fail the run with --strict.

Run 'ley structures' to list the available handlers.

Examples:
  ley render doc.ley                          # Render one file
  ley render --flavor gfm                     # GitHub Flavored Markdown
  ley render --where 'name == "intro"' doc.ley
  ley render --strict --format yaml`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, args, flags, modeRender)
		},
	}

	addRunFlags(cmd, flags, modeRender)

	return cmd
}
