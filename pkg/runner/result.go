package runner

import (
	"github.com/yaklabco/leyline/pkg/fsutil"
	"github.com/yaklabco/leyline/pkg/ley"
	"github.com/yaklabco/leyline/pkg/query"
	"github.com/yaklabco/leyline/pkg/structure"
)

// FileOutcome is the result of processing one file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Info describes the file as read. Nil for stdin and unreadable files.
	Info *fsutil.FileInfo

	// File is the parsed file. Nil if reading or parsing failed.
	File *ley.File

	// Source holds the content of a file that failed to parse, for error context.
	Source string

	// Matches holds the blocks selected by Options.Filter. Nil without a filter.
	Matches []query.Match

	// Results holds interpreted blocks when a Dispatcher was configured.
	Results []*structure.Result

	// Error is set if the file could not be read, parsed or interpreted.
	Error error
}

// Content returns the source text of the file when it was read.
func (o *FileOutcome) Content() string {
	if o.File != nil {
		return o.File.Content
	}
	return o.Source
}

// Blocks returns the blocks of the parsed document, or nil.
func (o *FileOutcome) Blocks() []*ley.Block {
	if o.File == nil || o.File.Document == nil {
		return nil
	}
	return o.File.Document.Blocks
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int `json:"files_discovered" yaml:"files_discovered"`

	// FilesParsed is the number of files that parsed successfully.
	FilesParsed int `json:"files_parsed" yaml:"files_parsed"`

	// FilesErrored is the number of files that failed.
	FilesErrored int `json:"files_errored" yaml:"files_errored"`

	// BlocksTotal counts all non-comment blocks, nested ones included.
	BlocksTotal int `json:"blocks_total" yaml:"blocks_total"`

	// BlocksMatched counts blocks selected by a filter.
	BlocksMatched int `json:"blocks_matched,omitempty" yaml:"blocks_matched,omitempty"`

	// BlocksSkipped counts interpreted blocks whose structure was not handled.
	BlocksSkipped int `json:"blocks_skipped,omitempty" yaml:"blocks_skipped,omitempty"`

	// MaxDepth is the deepest nesting level seen in any file.
	MaxDepth int `json:"max_depth" yaml:"max_depth"`
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Filtered is set when Options.Filter was used.
	Filtered bool

	// Interpreted is set when Options.Dispatcher was used.
	Interpreted bool
}

// HasFailures reports whether any file failed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesParsed++

	blocks := outcome.Blocks()
	r.Stats.BlocksTotal += ley.Count(blocks)
	r.Stats.BlocksMatched += len(outcome.Matches)
	r.Stats.MaxDepth = max(r.Stats.MaxDepth, ley.MaxDepth(blocks))

	for _, res := range outcome.Results {
		r.Stats.BlocksSkipped += countSkipped(res)
	}
}

func countSkipped(res *structure.Result) int {
	n := 0
	if res.Skipped {
		n++
	}
	for _, child := range res.Children {
		n += countSkipped(child)
	}
	return n
}
