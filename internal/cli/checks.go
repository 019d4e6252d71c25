package cli

import (
	"github.com/spf13/cobra"

	"github.com/josephmachado/data-quality-checker/internal/checker"
	"github.com/josephmachado/data-quality-checker/internal/source"
)

// NewCheckUniqueCommand creates the check-unique command.
func NewCheckUniqueCommand(rootOpts *RootOptions) *cobra.Command {
	return newColumnCheckCommand(rootOpts, "check-unique",
		"Check if a column contains unique values",
		func(column string) checker.Check { return checker.Unique{Column: column} })
}

// NewCheckNotNullCommand creates the check-not-null command.
func NewCheckNotNullCommand(rootOpts *RootOptions) *cobra.Command {
	return newColumnCheckCommand(rootOpts, "check-not-null",
		"Check if a column contains no null values",
		func(column string) checker.Check { return checker.NotNull{Column: column} })
}

// NewCheckEnumCommand creates the check-enum command.
func NewCheckEnumCommand(rootOpts *RootOptions) *cobra.Command {
	return newSetCheckCommand(rootOpts, "check-enum",
		"Check if a column only contains values from a specified list",
		"enum-values", "allowed values (comma-separated, required)",
		func(column string, values []string) checker.Check {
			return checker.Enum{Column: column, Allowed: values}
		})
}

// CheckReferencesOptions holds flags for the check-references command.
type CheckReferencesOptions struct {
	*RootOptions
	Data      string
	Reference string
	JoinKeys  []string
}

// NewCheckReferencesCommand creates the check-references command.
func NewCheckReferencesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckReferencesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check-references",
		Short: "Check referential integrity between two files",
		Long: `Check that every row of the data file has a match in the reference
file on all join keys. Rows with a null join key never match.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			chk := checker.ReferentialIntegrity{
				Reference: source.NewFile(opts.Reference),
				JoinKeys:  opts.JoinKeys,
			}
			return runFileCheck(rootOpts, cmd, opts.Data, chk)
		},
	}

	cmd.Flags().StringVar(&opts.Data, "data", "", "path to the data file (required)")
	_ = cmd.MarkFlagRequired("data")
	cmd.Flags().StringVar(&opts.Reference, "reference", "", "path to the reference data file (required)")
	_ = cmd.MarkFlagRequired("reference")
	cmd.Flags().StringSliceVar(&opts.JoinKeys, "join-keys", nil, "columns to join on (comma-separated, required)")
	_ = cmd.MarkFlagRequired("join-keys")

	return cmd
}

// NewCheckColumnExistsCommand creates the check-column-exists command.
func NewCheckColumnExistsCommand(rootOpts *RootOptions) *cobra.Command {
	return newColumnCheckCommand(rootOpts, "check-column-exists",
		"Check if a column exists in the data file",
		func(column string) checker.Check { return checker.InData{Column: column} })
}

// NewCheckBetweenCommand creates the check-between command.
func NewCheckBetweenCommand(rootOpts *RootOptions) *cobra.Command {
	return newRangeCheckCommand(rootOpts, "check-between",
		"Check if column values are within a numeric range",
		func(column string, min, max float64) checker.Check {
			return checker.Between{Column: column, Min: min, Max: max}
		})
}

// NewCheckRegexCommand creates the check-regex command.
func NewCheckRegexCommand(rootOpts *RootOptions) *cobra.Command {
	return newParamCheckCommand(rootOpts, "check-regex",
		"Check if column values match a regex",
		"regex", "RE2 pattern to match (required)",
		func(column, pattern string) checker.Check {
			return checker.RegexMatch{Column: column, Pattern: pattern}
		})
}

// NewCheckTypeCommand creates the check-type command.
func NewCheckTypeCommand(rootOpts *RootOptions) *cobra.Command {
	return newParamCheckCommand(rootOpts, "check-type",
		"Check if column values match a DuckDB type",
		"type", "DuckDB type, e.g. INTEGER, VARCHAR, DATE (required)",
		func(column, typeName string) checker.Check {
			return checker.OfType{Column: column, Type: typeName}
		})
}

// CheckLengthOptions holds flags for the check-length command.
type CheckLengthOptions struct {
	*RootOptions
	Data   string
	Column string
	Min    int64
	Max    int64
}

// NewCheckLengthCommand creates the check-length command.
func NewCheckLengthCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckLengthOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "check-length",
		Short:         "Check if column value lengths are within range",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			chk := checker.LengthBetween{Column: opts.Column, Min: opts.Min, Max: opts.Max}
			return runFileCheck(rootOpts, cmd, opts.Data, chk)
		},
	}

	cmd.Flags().StringVar(&opts.Data, "data", "", "path to the data file (required)")
	_ = cmd.MarkFlagRequired("data")
	cmd.Flags().StringVar(&opts.Column, "column", "", "name of the column to check (required)")
	_ = cmd.MarkFlagRequired("column")
	cmd.Flags().Int64Var(&opts.Min, "min", 0, "minimum length")
	cmd.Flags().Int64Var(&opts.Max, "max", 0, "maximum length")

	return cmd
}

// NewCheckMaxCommand creates the check-max command.
func NewCheckMaxCommand(rootOpts *RootOptions) *cobra.Command {
	return newRangeCheckCommand(rootOpts, "check-max",
		"Check if the maximum value in a column is within range",
		func(column string, min, max float64) checker.Check {
			return checker.MaxBetween{Column: column, Min: min, Max: max}
		})
}

// NewCheckMinCommand creates the check-min command.
func NewCheckMinCommand(rootOpts *RootOptions) *cobra.Command {
	return newRangeCheckCommand(rootOpts, "check-min",
		"Check if the minimum value in a column is within range",
		func(column string, min, max float64) checker.Check {
			return checker.MinBetween{Column: column, Min: min, Max: max}
		})
}

// NewCheckMeanCommand creates the check-mean command.
func NewCheckMeanCommand(rootOpts *RootOptions) *cobra.Command {
	return newRangeCheckCommand(rootOpts, "check-mean",
		"Check if the mean value in a column is within range",
		func(column string, min, max float64) checker.Check {
			return checker.MeanBetween{Column: column, Min: min, Max: max}
		})
}

// NewCheckMedianCommand creates the check-median command.
func NewCheckMedianCommand(rootOpts *RootOptions) *cobra.Command {
	return newRangeCheckCommand(rootOpts, "check-median",
		"Check if the median value in a column is within range",
		func(column string, min, max float64) checker.Check {
			return checker.MedianBetween{Column: column, Min: min, Max: max}
		})
}

// NewCheckDateFormatCommand creates the check-date-format command.
func NewCheckDateFormatCommand(rootOpts *RootOptions) *cobra.Command {
	return newParamCheckCommand(rootOpts, "check-date-format",
		"Check if column values match a date format",
		"date-layout", "strptime date format, e.g. %Y-%m-%d (required)",
		func(column, format string) checker.Check {
			return checker.DateFormat{Column: column, Format: format}
		})
}

// NewCheckRowCountCommand creates the check-row-count command.
func NewCheckRowCountCommand(rootOpts *RootOptions) *cobra.Command {
	return newCountCheckCommand(rootOpts, "check-row-count",
		"Check if the table row count is within range",
		func(min, max int64) checker.Check {
			return checker.RowCountBetween{Min: min, Max: max}
		})
}

// NewCheckColCountCommand creates the check-col-count command.
func NewCheckColCountCommand(rootOpts *RootOptions) *cobra.Command {
	return newCountCheckCommand(rootOpts, "check-col-count",
		"Check if the table column count is within range",
		func(min, max int64) checker.Check {
			return checker.ColumnCountBetween{Min: min, Max: max}
		})
}

// NewCheckNotInSetCommand creates the check-not-in-set command.
func NewCheckNotInSetCommand(rootOpts *RootOptions) *cobra.Command {
	return newSetCheckCommand(rootOpts, "check-not-in-set",
		"Check if column values avoid a specified list",
		"values", "denied values (comma-separated, required)",
		func(column string, values []string) checker.Check {
			return checker.NotInSet{Column: column, Denied: values}
		})
}

// NewCheckIncreasingCommand creates the check-increasing command.
func NewCheckIncreasingCommand(rootOpts *RootOptions) *cobra.Command {
	return newColumnCheckCommand(rootOpts, "check-increasing",
		"Check if column values are in strictly increasing order",
		func(column string) checker.Check { return checker.Increasing{Column: column} })
}

// NewCheckDateParseableCommand creates the check-date-parseable command.
func NewCheckDateParseableCommand(rootOpts *RootOptions) *cobra.Command {
	return newColumnCheckCommand(rootOpts, "check-date-parseable",
		"Check if column values are parseable as dates",
		func(column string) checker.Check { return checker.DateParseable{Column: column} })
}

// CheckPairEqualOptions holds flags for the check-pair-equal command.
type CheckPairEqualOptions struct {
	*RootOptions
	Data    string
	Column1 string
	Column2 string
}

// NewCheckPairEqualCommand creates the check-pair-equal command.
func NewCheckPairEqualCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckPairEqualOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "check-pair-equal",
		Short:         "Check if two columns have equal values in every row",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			chk := checker.PairsEqual{Column1: opts.Column1, Column2: opts.Column2}
			return runFileCheck(rootOpts, cmd, opts.Data, chk)
		},
	}

	cmd.Flags().StringVar(&opts.Data, "data", "", "path to the data file (required)")
	_ = cmd.MarkFlagRequired("data")
	cmd.Flags().StringVar(&opts.Column1, "col1", "", "first column name (required)")
	_ = cmd.MarkFlagRequired("col1")
	cmd.Flags().StringVar(&opts.Column2, "col2", "", "second column name (required)")
	_ = cmd.MarkFlagRequired("col2")

	return cmd
}

// NewCheckDistinctInSetCommand creates the check-distinct-in-set command.
func NewCheckDistinctInSetCommand(rootOpts *RootOptions) *cobra.Command {
	return newSetCheckCommand(rootOpts, "check-distinct-in-set",
		"Check if all distinct values in a column are in a specified list",
		"values", "allowed values (comma-separated, required)",
		func(column string, values []string) checker.Check {
			return checker.DistinctInSet{Column: column, Allowed: values}
		})
}
