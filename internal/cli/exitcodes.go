package cli

import (
	"errors"

	"github.com/yaklabco/leyline/pkg/runner"
)

// ErrParseFailed is returned when one or more files failed to parse or render.
// It signals a non-zero exit code; the failures themselves are already reported.
var ErrParseFailed = errors.New("one or more files failed")

// Exit codes for ley.
const (
	// ExitSuccess indicates every file parsed.
	ExitSuccess = 0

	// ExitParseErrors indicates at least one file failed to parse or render.
	ExitParseErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

// ExitCodeFromResult determines the exit code for a run result.
func ExitCodeFromResult(result *runner.Result) int {
	if result.HasFailures() {
		return ExitParseErrors
	}
	return ExitSuccess
}

// ExitCodeFromError maps a command error to an exit code.
func ExitCodeFromError(err error) int {
	var usageErr *UsageError
	var configErr *ConfigError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrParseFailed):
		return ExitParseErrors
	case errors.As(err, &usageErr):
		return ExitInvalidUsage
	case errors.As(err, &configErr):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}

// UsageError reports invalid flags or arguments.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// ConfigError reports a configuration that could not be loaded.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return "failed to load configuration: " + e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }
