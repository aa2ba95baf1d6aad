package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/leyline/internal/ui/pretty"
	"github.com/yaklabco/leyline/pkg/ley"
	"github.com/yaklabco/leyline/pkg/structure"
)

const formatJSON = "json"

// structureInfo represents a structure handler in JSON output.
type structureInfo struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases"`
	Content     string   `json:"content"`
	Description string   `json:"description"`
}

type structuresFlags struct {
	format string
}

func newStructuresCommand() *cobra.Command {
	flags := &structuresFlags{}

	cmd := &cobra.Command{
		Use:   "structures",
		Short: "List available structure handlers",
		Long: `List the structure handlers that 'ley render' dispatches blocks to,
with their aliases and the content kinds they accept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := collectStructures(structure.DefaultRegistry)

			switch flags.format {
			case formatJSON:
				return outputStructuresJSON(cmd.OutOrStdout(), infos)
			case "text":
				colorMode, err := cmd.Flags().GetString("color")
				if err != nil {
					colorMode = "auto"
				}
				return outputStructuresTable(cmd.OutOrStdout(), colorMode, infos)
			default:
				return &UsageError{Err: fmt.Errorf("invalid format %q: must be text or json", flags.format)}
			}
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}

func collectStructures(registry *structure.Registry) []structureInfo {
	handlers := registry.Handlers()
	infos := make([]structureInfo, 0, len(handlers))

	for _, h := range handlers {
		aliases := registry.Aliases(h.Name())
		if aliases == nil {
			aliases = []string{}
		}
		infos = append(infos, structureInfo{
			Name:        h.Name(),
			Aliases:     aliases,
			Content:     acceptedContent(h),
			Description: h.Description(),
		})
	}

	return infos
}

// acceptedContent names the content kinds a handler accepts.
func acceptedContent(h structure.Handler) string {
	var kinds []string
	for _, kind := range []ley.ContentKind{ley.ContentText, ley.ContentNested} {
		if h.Accepts(kind) {
			kinds = append(kinds, kind.String())
		}
	}
	return strings.Join(kinds, ",")
}

func outputStructuresTable(w io.Writer, colorMode string, infos []structureInfo) error {
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, w))

	table := pretty.Table{
		Headers: []string{"STRUCTURE", "ALIASES", "CONTENT", "DESCRIPTION"},
		Flex:    3,
	}
	for _, info := range infos {
		table.Rows = append(table.Rows, []string{
			info.Name,
			strings.Join(info.Aliases, ", "),
			info.Content,
			info.Description,
		})
	}

	formatter := pretty.NewTableFormatter(styles, pretty.TerminalWidth(w))
	if _, err := io.WriteString(w, formatter.Format(table)); err != nil {
		return fmt.Errorf("write structures: %w", err)
	}
	return nil
}

// outputStructuresJSON outputs structures as a JSON array.
func outputStructuresJSON(w io.Writer, infos []structureInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding structures: %w", err)
	}
	return nil
}
