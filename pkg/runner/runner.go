package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/leyline/internal/logging"
	"github.com/yaklabco/leyline/pkg/fsutil"
	"github.com/yaklabco/leyline/pkg/ley"
	"github.com/yaklabco/leyline/pkg/query"
)

// Runner parses ley files with a pool of workers.
type Runner struct {
	opts Options
}

// New creates a Runner.
func New(opts Options) *Runner {
	return &Runner{opts: opts}
}

// Run discovers files under the configured paths and processes them concurrently.
// It returns outcomes in deterministic path order and aggregate stats.
//
// A file that fails to read, parse or interpret is recorded in its outcome;
// it does not stop the run. Run itself fails only on discovery errors and
// context cancellation.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, r.opts)
	if err != nil {
		return nil, err
	}

	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	result := r.newResult()
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := r.opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	// Don't use more workers than files.
	jobs = min(jobs, len(files))

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order; collect by path, then emit in discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	logger.Debug("run complete",
		logging.FieldFilesParsed, result.Stats.FilesParsed,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
		logging.FieldBlocks, result.Stats.BlocksTotal,
	)

	return result, nil
}

// RunContent processes in-memory content, such as stdin, as a single file.
func (r *Runner) RunContent(ctx context.Context, path string, content []byte) *Result {
	result := r.newResult()
	result.Stats.FilesDiscovered = 1
	result.accumulate(r.process(ctx, path, content))
	return result
}

func (r *Runner) newResult() *Result {
	return &Result{
		Files:       []FileOutcome{},
		Filtered:    r.opts.Filter != nil,
		Interpreted: r.opts.Dispatcher != nil,
	}
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		if ctx.Err() != nil {
			return
		}

		var outcome FileOutcome
		content, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			outcome = FileOutcome{Path: path, Error: err}
		} else {
			outcome = r.process(ctx, path, content)
			outcome.Info = info
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// process parses content and applies the filter and dispatcher.
func (r *Runner) process(ctx context.Context, path string, content []byte) FileOutcome {
	outcome := FileOutcome{Path: path}

	file, err := ley.ParseFile(ctx, path, content)
	if err != nil {
		logging.FromContext(ctx).Debug("parse failed", logging.FieldPath, path, logging.FieldError, err)
		outcome.Error = err
		outcome.Source = string(content)
		return outcome
	}
	outcome.File = file

	blocks := file.Document.Blocks
	if r.opts.Filter != nil {
		matches, err := query.Select(blocks, r.opts.Filter)
		if err != nil {
			outcome.Error = err
			return outcome
		}
		outcome.Matches = matches
		blocks = matchedBlocks(matches)
	}

	if r.opts.Dispatcher != nil {
		results, err := r.opts.Dispatcher.DispatchAll(ctx, blocks)
		if err != nil {
			outcome.Error = err
			return outcome
		}
		outcome.Results = results
	}

	return outcome
}

// matchedBlocks returns the selected blocks whose ancestors were not also
// selected, so nested matches are interpreted once.
func matchedBlocks(matches []query.Match) []*ley.Block {
	blocks := make([]*ley.Block, 0, len(matches))
	var covered ley.Span
	for _, m := range matches {
		if len(blocks) > 0 && covered.Contains(m.Block.Span.Start) {
			continue
		}
		blocks = append(blocks, m.Block)
		covered = m.Block.Span
	}
	return blocks
}
