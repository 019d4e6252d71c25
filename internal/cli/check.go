package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/josephmachado/data-quality-checker/internal/checker"
	"github.com/josephmachado/data-quality-checker/internal/logstore"
	"github.com/josephmachado/data-quality-checker/internal/source"
	"github.com/josephmachado/data-quality-checker/internal/suite"
)

// CheckOutcome is the payload for a single executed check.
type CheckOutcome struct {
	Kind   string `json:"kind"`
	Data   string `json:"data"`
	Passed bool   `json:"passed"`
}

// newFormatter builds the formatter for a command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// runFileCheck executes one check against a data file, logging the
// outcome to the configured store. A failed check maps to ExitFailure,
// a typed error to ExitCommandError.
func runFileCheck(opts *RootOptions, cmd *cobra.Command, data string, chk checker.Check) error {
	formatter := newFormatter(opts, cmd)

	c := checker.New(logstore.New(opts.Database))

	formatter.VerboseLog("Running %s against %s", chk.Kind(), data)

	passed, err := c.Run(cmd.Context(), source.NewFile(data), chk)
	if err != nil {
		return commandError(formatter, err)
	}

	return outputCheckOutcome(formatter, CheckOutcome{Kind: chk.Kind(), Data: data, Passed: passed})
}

// commandError renders a typed error and converts it to the
// command-error exit code.
func commandError(formatter *OutputFormatter, err error) error {
	code := errorCode(err)
	_ = formatter.Error(code, err.Error(), nil)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %v", code, err))
}

// errorCode maps typed errors onto response codes.
func errorCode(err error) string {
	var checkErr *checker.Error
	if errors.As(err, &checkErr) {
		return string(checkErr.Code)
	}
	var srcErr *source.Error
	if errors.As(err, &srcErr) {
		return string(srcErr.Code)
	}
	var loadErr *suite.LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Code
	}
	return "INTERNAL"
}

// outputCheckOutcome renders a completed check. A failed check carries
// ExitFailure so callers exit 1.
func outputCheckOutcome(formatter *OutputFormatter, outcome CheckOutcome) error {
	if formatter.Format == "json" {
		response := CLIResponse{Status: "ok", Data: outcome}
		if !outcome.Passed {
			response.Status = "error"
			response.Error = &CLIError{
				Code:    "CHECK_FAILED",
				Message: fmt.Sprintf("%s failed", outcome.Kind),
			}
		}
		if err := json.NewEncoder(formatter.Writer).Encode(response); err != nil {
			return err
		}
		if !outcome.Passed {
			return NewExitError(ExitFailure, fmt.Sprintf("%s failed", outcome.Kind))
		}
		return nil
	}

	if outcome.Passed {
		fmt.Fprintf(formatter.Writer, "✓ %s passed (%s)\n", outcome.Kind, outcome.Data)
		return nil
	}
	fmt.Fprintf(formatter.Writer, "✗ %s failed (%s)\n", outcome.Kind, outcome.Data)
	return NewExitError(ExitFailure, fmt.Sprintf("%s failed", outcome.Kind))
}

// ColumnCheckOptions holds flags for checks parameterized by a data
// file and one column.
type ColumnCheckOptions struct {
	*RootOptions
	Data   string
	Column string
}

// newColumnCheckCommand builds a command for checks that take --data
// and --column alone.
func newColumnCheckCommand(rootOpts *RootOptions, use, short string, build func(column string) checker.Check) *cobra.Command {
	opts := &ColumnCheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFileCheck(rootOpts, cmd, opts.Data, build(opts.Column))
		},
	}

	cmd.Flags().StringVar(&opts.Data, "data", "", "path to the data file (required)")
	_ = cmd.MarkFlagRequired("data")
	cmd.Flags().StringVar(&opts.Column, "column", "", "name of the column to check (required)")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

// RangeCheckOptions holds flags for checks that bound column values or
// a column aggregate between --min and --max.
type RangeCheckOptions struct {
	*RootOptions
	Data   string
	Column string
	Min    float64
	Max    float64
}

// newRangeCheckCommand builds a command for checks with numeric
// [--min, --max] bounds on one column.
func newRangeCheckCommand(rootOpts *RootOptions, use, short string, build func(column string, min, max float64) checker.Check) *cobra.Command {
	opts := &RangeCheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFileCheck(rootOpts, cmd, opts.Data, build(opts.Column, opts.Min, opts.Max))
		},
	}

	cmd.Flags().StringVar(&opts.Data, "data", "", "path to the data file (required)")
	_ = cmd.MarkFlagRequired("data")
	cmd.Flags().StringVar(&opts.Column, "column", "", "name of the column to check (required)")
	_ = cmd.MarkFlagRequired("column")
	cmd.Flags().Float64Var(&opts.Min, "min", 0, "lower bound")
	cmd.Flags().Float64Var(&opts.Max, "max", 0, "upper bound")

	return cmd
}

// CountCheckOptions holds flags for checks that bound a whole-table
// count, with no column.
type CountCheckOptions struct {
	*RootOptions
	Data string
	Min  int64
	Max  int64
}

// newCountCheckCommand builds a command for row- and column-count
// checks.
func newCountCheckCommand(rootOpts *RootOptions, use, short string, build func(min, max int64) checker.Check) *cobra.Command {
	opts := &CountCheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFileCheck(rootOpts, cmd, opts.Data, build(opts.Min, opts.Max))
		},
	}

	cmd.Flags().StringVar(&opts.Data, "data", "", "path to the data file (required)")
	_ = cmd.MarkFlagRequired("data")
	cmd.Flags().Int64Var(&opts.Min, "min", 0, "lower bound")
	cmd.Flags().Int64Var(&opts.Max, "max", 0, "upper bound")

	return cmd
}

// SetCheckOptions holds flags for checks parameterized by a value set.
type SetCheckOptions struct {
	*RootOptions
	Data   string
	Column string
	Values []string
}

// newSetCheckCommand builds a command for checks that compare a column
// against a comma-separated value list.
func newSetCheckCommand(rootOpts *RootOptions, use, short, valuesFlag, valuesUsage string, build func(column string, values []string) checker.Check) *cobra.Command {
	opts := &SetCheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFileCheck(rootOpts, cmd, opts.Data, build(opts.Column, opts.Values))
		},
	}

	cmd.Flags().StringVar(&opts.Data, "data", "", "path to the data file (required)")
	_ = cmd.MarkFlagRequired("data")
	cmd.Flags().StringVar(&opts.Column, "column", "", "name of the column to check (required)")
	_ = cmd.MarkFlagRequired("column")
	cmd.Flags().StringSliceVar(&opts.Values, valuesFlag, nil, valuesUsage)
	_ = cmd.MarkFlagRequired(valuesFlag)

	return cmd
}

// ParamCheckOptions holds flags for checks carrying one extra string
// parameter, such as a regex or a type name.
type ParamCheckOptions struct {
	*RootOptions
	Data   string
	Column string
	Param  string
}

// newParamCheckCommand builds a command for checks with a single string
// parameter beyond --data and --column.
func newParamCheckCommand(rootOpts *RootOptions, use, short, paramFlag, paramUsage string, build func(column, param string) checker.Check) *cobra.Command {
	opts := &ParamCheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFileCheck(rootOpts, cmd, opts.Data, build(opts.Column, opts.Param))
		},
	}

	cmd.Flags().StringVar(&opts.Data, "data", "", "path to the data file (required)")
	_ = cmd.MarkFlagRequired("data")
	cmd.Flags().StringVar(&opts.Column, "column", "", "name of the column to check (required)")
	_ = cmd.MarkFlagRequired("column")
	cmd.Flags().StringVar(&opts.Param, paramFlag, "", paramUsage)
	_ = cmd.MarkFlagRequired(paramFlag)

	return cmd
}
