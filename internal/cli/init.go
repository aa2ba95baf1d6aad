package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/leyline/internal/logging"
	"github.com/yaklabco/leyline/pkg/config"
	"github.com/yaklabco/leyline/pkg/fsutil"
	"github.com/yaklabco/leyline/pkg/structure"
)

// defaultConfigFile is the project config file written by init.
const defaultConfigFile = ".ley.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new ley configuration file",
		Long: `Create a new .ley.yml configuration file in the current directory
with sensible defaults.

Examples:
  ley init                       Create minimal .ley.yml
  ley init --full                Also document every structure handler
  ley init --output custom.yml   Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runInit(ctx, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Document all structure handlers in the template")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "Output file path")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultConfigFile
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if fsutil.Exists(absPath) {
		if !flags.force {
			return &UsageError{Err: fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)}
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	opts := config.TemplateOptions{}
	if flags.full {
		opts.Structures = templateStructures(structure.DefaultRegistry)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, config.GenerateTemplate(opts), fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'ley structures' to see all available structure handlers")

	return nil
}

func templateStructures(registry *structure.Registry) []config.StructureInfo {
	handlers := registry.Handlers()
	infos := make([]config.StructureInfo, 0, len(handlers))
	for _, h := range handlers {
		infos = append(infos, config.StructureInfo{
			Name:        h.Name(),
			Aliases:     registry.Aliases(h.Name()),
			Description: h.Description(),
		})
	}
	return infos
}
