package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/leyline/internal/configloader"
	"github.com/yaklabco/leyline/internal/logging"
	"github.com/yaklabco/leyline/internal/ui/pretty"
	"github.com/yaklabco/leyline/pkg/config"
	"github.com/yaklabco/leyline/pkg/fsutil"
	"github.com/yaklabco/leyline/pkg/query"
	"github.com/yaklabco/leyline/pkg/reporter"
	"github.com/yaklabco/leyline/pkg/runner"
	"github.com/yaklabco/leyline/pkg/structure"
)

// stdinPath is the argument that selects standard input.
const stdinPath = "-"

// stdinDisplayName labels content read from standard input in output.
const stdinDisplayName = "<stdin>"

// runMode selects what a run does after parsing.
type runMode int

const (
	modeParse runMode = iota
	modeCheck
	modeRender
)

// runFlags are shared by parse, check and render.
type runFlags struct {
	format  string
	flavor  string
	where   string
	ignore  []string
	jobs    int
	strict  bool
	spans   bool
	compact bool
	summary bool
}

func addRunFlags(cmd *cobra.Command, flags *runFlags, mode runMode) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, yaml, summary")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().BoolVar(&flags.summary, "summary", true, "print a summary line after text output")

	if mode == modeCheck {
		return
	}

	cmd.Flags().StringVar(&flags.where, "where", "",
		`only report blocks matching an expression, e.g. 'structure == "code" && depth > 0'`)
	cmd.Flags().BoolVar(&flags.spans, "spans", false, "show byte spans in text trees")

	if mode == modeRender {
		cmd.Flags().StringVar(&flags.flavor, "flavor", "commonmark", "Markdown flavor for markdown blocks: commonmark, gfm")
		cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail on blocks with unknown or disabled structures")
	}
}

// cliConfig builds the highest-precedence config layer from explicitly set flags.
func (f *runFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{
		Jobs:   f.jobs,
		Strict: f.strict,
		Ignore: f.ignore,
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(f.format)
	}
	if cmd.Flags().Changed("flavor") {
		cfg.Flavor = config.Flavor(f.flavor)
	}
	return cfg
}

func runCommand(cmd *cobra.Command, args []string, flags *runFlags, mode runMode) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.Default()
	ctx = logging.WithLogger(ctx, logger)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := loadConfig(ctx, cmd, workDir, flags.cliConfig(cmd))
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		logging.FieldFlavor, cfg.Flavor,
		logging.FieldStrict, cfg.Strict,
		logging.FieldJobs, cfg.Jobs,
	)

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return &UsageError{Err: err}
	}

	runOpts := runner.OptionsFromConfig(cfg, args)
	runOpts.WorkingDir = workDir

	if flags.where != "" {
		filter, err := query.Compile(flags.where)
		if err != nil {
			return &UsageError{Err: fmt.Errorf("invalid --where: %w", err)}
		}
		runOpts.Filter = filter
	}

	if mode == modeRender {
		runOpts.Dispatcher = structure.NewDispatcher(structure.DefaultRegistry, cfg)
	}

	result, err := execute(ctx, cmd, runner.New(runOpts), args)
	if err != nil {
		return err
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: flags.summary,
		ShowSpans:   flags.spans,
		ErrorsOnly:  mode == modeCheck,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	failed, err := rep.Report(ctx, result)
	if err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if failed > 0 || ExitCodeFromResult(result) != ExitSuccess {
		return ErrParseFailed
	}

	return nil
}

// loadConfig resolves configuration for a command and logs loader warnings.
func loadConfig(ctx context.Context, cmd *cobra.Command, workDir string, cliCfg *config.Config) (*config.Config, error) {
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, &ConfigError{Err: err}
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// execute runs over files, or over standard input when the only argument is "-".
func execute(ctx context.Context, cmd *cobra.Command, r *runner.Runner, args []string) (*runner.Result, error) {
	if len(args) == 1 && args[0] == stdinPath {
		in := cmd.InOrStdin()
		if pretty.IsInteractive(in) {
			return nil, &UsageError{Err: errors.New("refusing to read ley source from a terminal; pipe input or pass file paths")}
		}

		content, err := fsutil.ReadAll(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		return r.RunContent(ctx, stdinDisplayName, content), nil
	}

	for _, arg := range args {
		if arg == stdinPath {
			return nil, &UsageError{Err: errors.New("'-' (stdin) cannot be combined with other paths")}
		}
	}

	result, err := r.Run(ctx)
	if err != nil {
		return nil, errors.Join(errors.New("run failed"), err)
	}

	return result, nil
}
