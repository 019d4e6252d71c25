package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josephmachado/data-quality-checker/internal/checker"
	"github.com/josephmachado/data-quality-checker/internal/logstore"
	"github.com/josephmachado/data-quality-checker/internal/suite"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions

	// Tokens allows overriding the run token generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	Tokens suite.TokenGenerator
}

// SuiteCheckResult holds the outcome of a single suite entry.
type SuiteCheckResult struct {
	Kind   string `json:"kind"`
	Data   string `json:"data"`
	Passed bool   `json:"passed"`
	Error  string `json:"error,omitempty"`
}

// SuiteRunResult holds the overall suite outcome.
type SuiteRunResult struct {
	Suite    string             `json:"suite"`
	RunToken string             `json:"run_token"`
	Checks   []SuiteCheckResult `json:"checks"`
	Passed   int                `json:"passed"`
	Failed   int                `json:"failed"`
	Errored  int                `json:"errored"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <suite.yaml>",
		Short: "Run a YAML suite of checks",
		Long: `Run every check declared in a YAML suite file, in order.

The suite file is validated against the suite schema before anything
executes. Checks run sequentially; a check that fails or raises an
error never stops the rest. Every run gets a fresh run token that also
appears in the log lines, so one invocation's checks can be correlated.

Exit codes:
  0 - every check passed
  1 - at least one check failed or errored
  2 - the suite file could not be loaded

Examples:
  dqc run checks.yaml
  dqc run checks.yaml --db ./quality_checks.db --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(opts, args[0], cmd)
		},
	}

	return cmd
}

func runSuite(opts *RunOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	s, err := suite.Load(path)
	if err != nil {
		return commandError(formatter, err)
	}

	formatter.VerboseLog("Loaded suite %q with %d check(s)", s.Name, len(s.Checks))

	// Use the command's context if available (set by Execute), otherwise
	// fall back for direct calls from tests.
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runner := suite.NewRunner(checker.New(logstore.New(opts.Database)), opts.Tokens)
	summary, err := runner.Run(ctx, s)
	if err != nil {
		return WrapExitError(ExitCommandError, "suite run interrupted", err)
	}

	result := SuiteRunResult{
		Suite:    summary.Suite,
		RunToken: summary.RunToken,
		Checks:   make([]SuiteCheckResult, 0, len(summary.Results)),
		Passed:   summary.Passed,
		Failed:   summary.Failed,
		Errored:  summary.Errored,
	}
	for _, res := range summary.Results {
		cr := SuiteCheckResult{Kind: res.Kind, Data: res.Data, Passed: res.Passed}
		if res.Err != nil {
			cr.Error = res.Err.Error()
		}
		result.Checks = append(result.Checks, cr)
	}

	if opts.Format == "json" {
		return outputSuiteJSON(formatter, result)
	}
	return outputSuiteText(formatter, result)
}

// outputSuiteJSON outputs the suite result as JSON.
func outputSuiteJSON(formatter *OutputFormatter, result SuiteRunResult) error {
	failed := result.Failed + result.Errored

	response := CLIResponse{Status: "ok", Data: result}
	if failed > 0 {
		response.Status = "error"
		response.Error = &CLIError{
			Code:    "SUITE_FAILED",
			Message: fmt.Sprintf("%d check(s) failed", failed),
		}
	}

	encoder := json.NewEncoder(formatter.Writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d check(s) failed", failed))
	}
	return nil
}

// outputSuiteText outputs the suite result as text.
func outputSuiteText(formatter *OutputFormatter, result SuiteRunResult) error {
	w := formatter.Writer

	fmt.Fprintf(w, "Suite: %s (run %s)\n", result.Suite, result.RunToken)
	for _, cr := range result.Checks {
		switch {
		case cr.Error != "":
			fmt.Fprintf(w, "! %s (%s)\n", cr.Kind, cr.Data)
			fmt.Fprintf(w, "  Error: %s\n", cr.Error)
		case cr.Passed:
			fmt.Fprintf(w, "✓ %s (%s)\n", cr.Kind, cr.Data)
		default:
			fmt.Fprintf(w, "✗ %s (%s)\n", cr.Kind, cr.Data)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Suite Summary: %d passed, %d failed, %d errored\n",
		result.Passed, result.Failed, result.Errored)

	if failed := result.Failed + result.Errored; failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d check(s) failed", failed))
	}

	fmt.Fprintln(w, "✓ All checks passed")
	return nil
}
