// Package checker runs declarative data-quality checks.
//
// Every check follows the same shape: validate the parameters, open an
// engine handle, attach the source, run one parameterized query, reduce
// the result to a boolean, append the outcome to the log, return the
// boolean. Argument and source failures fire before the query and are
// never logged; a completed check always logs exactly one record,
// whatever its outcome.
package checker

import (
	"context"
	"fmt"

	"github.com/josephmachado/data-quality-checker/internal/checkval"
	"github.com/josephmachado/data-quality-checker/internal/logstore"
	"github.com/josephmachado/data-quality-checker/internal/source"
)

// Checker executes checks and records their outcomes.
type Checker struct {
	log *logstore.Store
}

// New creates a Checker writing outcomes to the given log store.
func New(log *logstore.Store) *Checker {
	return &Checker{log: log}
}

// Run executes one check against a source.
//
// The returned boolean is the check outcome. An error means the check
// did not complete: invalid arguments and unopenable sources propagate
// as typed errors, anything later as ordinary wrapped errors. The log
// write happens before the outcome is returned, so callers never branch
// on an unlogged result.
func (c *Checker) Run(ctx context.Context, src source.Source, chk Check) (bool, error) {
	if err := Validate(chk); err != nil {
		return false, err
	}
	if src == nil {
		return false, &Error{Code: ErrCodeInvalidArgument, Message: "source is nil", Check: chk.Kind()}
	}

	eng, err := source.OpenEngine(ctx)
	if err != nil {
		return false, err
	}
	defer eng.Close()

	rel, err := src.Attach(ctx, eng)
	if err != nil {
		return false, err
	}

	passed, meta, err := c.execute(ctx, eng, rel, src, chk)
	if err != nil {
		return false, err
	}

	meta["source"] = checkval.String(src.Label())
	if err := c.log.Append(ctx, chk.Kind(), passed, meta); err != nil {
		return false, fmt.Errorf("log check outcome: %w", err)
	}

	return passed, nil
}

// IsColumnUnique reports whether no non-null value of column occurs
// more than once in src.
func (c *Checker) IsColumnUnique(ctx context.Context, src source.Source, column string) (bool, error) {
	return c.Run(ctx, src, Unique{Column: column})
}

// IsColumnNotNull reports whether column contains no nulls.
func (c *Checker) IsColumnNotNull(ctx context.Context, src source.Source, column string) (bool, error) {
	return c.Run(ctx, src, NotNull{Column: column})
}

// IsColumnEnum reports whether every non-null value of column is in
// allowed.
func (c *Checker) IsColumnEnum(ctx context.Context, src source.Source, column string, allowed []string) (bool, error) {
	return c.Run(ctx, src, Enum{Column: column, Allowed: allowed})
}

// AreTablesReferentialIntegral reports whether every row of src has at
// least one row in ref agreeing on all joinKeys.
func (c *Checker) AreTablesReferentialIntegral(ctx context.Context, src, ref source.Source, joinKeys []string) (bool, error) {
	return c.Run(ctx, src, ReferentialIntegrity{Reference: ref, JoinKeys: joinKeys})
}

// IsColumnInData reports whether column resolves in the source schema.
func (c *Checker) IsColumnInData(ctx context.Context, src source.Source, column string) (bool, error) {
	return c.Run(ctx, src, InData{Column: column})
}

// IsColumnBetween reports whether every value of column lies in
// [min, max].
func (c *Checker) IsColumnBetween(ctx context.Context, src source.Source, column string, min, max float64) (bool, error) {
	return c.Run(ctx, src, Between{Column: column, Min: min, Max: max})
}

// IsColumnRegexMatch reports whether every non-null value of column
// matches pattern.
func (c *Checker) IsColumnRegexMatch(ctx context.Context, src source.Source, column, pattern string) (bool, error) {
	return c.Run(ctx, src, RegexMatch{Column: column, Pattern: pattern})
}

// IsColumnOfType reports whether every non-null value of column casts
// to typeName.
func (c *Checker) IsColumnOfType(ctx context.Context, src source.Source, column, typeName string) (bool, error) {
	return c.Run(ctx, src, OfType{Column: column, Type: typeName})
}

// IsColumnLengthBetween reports whether every value length of column
// lies in [min, max].
func (c *Checker) IsColumnLengthBetween(ctx context.Context, src source.Source, column string, min, max int64) (bool, error) {
	return c.Run(ctx, src, LengthBetween{Column: column, Min: min, Max: max})
}

// IsColumnMaxBetween reports whether MAX(column) lies in [min, max].
func (c *Checker) IsColumnMaxBetween(ctx context.Context, src source.Source, column string, min, max float64) (bool, error) {
	return c.Run(ctx, src, MaxBetween{Column: column, Min: min, Max: max})
}

// IsColumnMinBetween reports whether MIN(column) lies in [min, max].
func (c *Checker) IsColumnMinBetween(ctx context.Context, src source.Source, column string, min, max float64) (bool, error) {
	return c.Run(ctx, src, MinBetween{Column: column, Min: min, Max: max})
}

// IsColumnMeanBetween reports whether AVG(column) lies in [min, max].
func (c *Checker) IsColumnMeanBetween(ctx context.Context, src source.Source, column string, min, max float64) (bool, error) {
	return c.Run(ctx, src, MeanBetween{Column: column, Min: min, Max: max})
}

// IsColumnMedianBetween reports whether MEDIAN(column) lies in
// [min, max].
func (c *Checker) IsColumnMedianBetween(ctx context.Context, src source.Source, column string, min, max float64) (bool, error) {
	return c.Run(ctx, src, MedianBetween{Column: column, Min: min, Max: max})
}

// IsColumnDateFormat reports whether every non-null value of column
// parses under the strptime format.
func (c *Checker) IsColumnDateFormat(ctx context.Context, src source.Source, column, format string) (bool, error) {
	return c.Run(ctx, src, DateFormat{Column: column, Format: format})
}

// IsTableRowCountBetween reports whether the source row count lies in
// [min, max].
func (c *Checker) IsTableRowCountBetween(ctx context.Context, src source.Source, min, max int64) (bool, error) {
	return c.Run(ctx, src, RowCountBetween{Min: min, Max: max})
}

// IsTableColumnCountBetween reports whether the source column count
// lies in [min, max].
func (c *Checker) IsTableColumnCountBetween(ctx context.Context, src source.Source, min, max int64) (bool, error) {
	return c.Run(ctx, src, ColumnCountBetween{Min: min, Max: max})
}

// IsColumnNotInSet reports whether no value of column appears in
// denied.
func (c *Checker) IsColumnNotInSet(ctx context.Context, src source.Source, column string, denied []string) (bool, error) {
	return c.Run(ctx, src, NotInSet{Column: column, Denied: denied})
}

// IsColumnIncreasing reports whether every value of column is strictly
// greater than its predecessor in row order.
func (c *Checker) IsColumnIncreasing(ctx context.Context, src source.Source, column string) (bool, error) {
	return c.Run(ctx, src, Increasing{Column: column})
}

// IsColumnDateParseable reports whether every non-null value of column
// casts to DATE.
func (c *Checker) IsColumnDateParseable(ctx context.Context, src source.Source, column string) (bool, error) {
	return c.Run(ctx, src, DateParseable{Column: column})
}

// AreColumnPairsEqual reports whether column1 and column2 agree on
// every row.
func (c *Checker) AreColumnPairsEqual(ctx context.Context, src source.Source, column1, column2 string) (bool, error) {
	return c.Run(ctx, src, PairsEqual{Column1: column1, Column2: column2})
}

// AreDistinctValuesInSet reports whether every distinct non-null value
// of column is in allowed.
func (c *Checker) AreDistinctValuesInSet(ctx context.Context, src source.Source, column string, allowed []string) (bool, error) {
	return c.Run(ctx, src, DistinctInSet{Column: column, Allowed: allowed})
}
