package cli

import "github.com/spf13/cobra"

func newParseCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "parse [paths...|-]",
		Short: "Parse ley files and print their block trees",
		Long: `Parse ley files and print the resulting block trees.

By default, parses all .ley files in the current directory and
subdirectories. Pass '-' to read a single document from standard input.

Examples:
  ley parse                                # Parse current directory
  ley parse docs/ notes.ley                # Parse specific paths
  cat doc.ley | ley parse -                # Parse standard input
  ley parse --format json                  # Output as JSON
  ley parse --where 'structure == "code"'  # Only code blocks`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, args, flags, modeParse)
		},
	}

	addRunFlags(cmd, flags, modeParse)

	return cmd
}
