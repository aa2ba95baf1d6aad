package config

import (
	"bytes"
	"fmt"
	"strings"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Structures lists the registered structure names to document.
	// When empty, the structures section is omitted.
	Structures []StructureInfo
}

// StructureInfo describes a structure handler for template generation.
type StructureInfo struct {
	Name        string
	Aliases     []string
	Description string
}

// GenerateTemplate creates a commented .ley.yml template.
func GenerateTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer

	buf.WriteString(`# ley configuration
# See: https://github.com/yaklabco/leyline

# File extensions treated as ley sources
extensions:
  - .ley

# Markdown flavor for markdown blocks: commonmark or gfm
flavor: commonmark

# Fail rendering when a block names an unknown or disabled structure
# strict: false

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
`)

	if len(opts.Structures) == 0 {
		return buf.Bytes()
	}

	buf.WriteString("\n# Per-structure settings\nstructures:\n")
	for _, info := range opts.Structures {
		buf.WriteString("  # " + info.Description)
		if len(info.Aliases) > 0 {
			buf.WriteString(fmt.Sprintf(" (aliases: %s)", strings.Join(info.Aliases, ", ")))
		}
		buf.WriteString("\n")
		buf.WriteString(fmt.Sprintf("  %s:\n    enabled: true\n", info.Name))
	}

	return buf.Bytes()
}
