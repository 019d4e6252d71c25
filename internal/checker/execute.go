package checker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/josephmachado/data-quality-checker/internal/checksql"
	"github.com/josephmachado/data-quality-checker/internal/checkval"
	"github.com/josephmachado/data-quality-checker/internal/source"
)

// execute dispatches a validated check to its runner. Each runner
// issues exactly one query and reduces it to (outcome, metadata).
func (c *Checker) execute(ctx context.Context, eng *source.Engine, rel string, src source.Source, chk Check) (bool, checkval.Metadata, error) {
	switch s := chk.(type) {
	case Unique:
		return runUnique(ctx, eng, rel, s)
	case NotNull:
		return runNotNull(ctx, eng, rel, s)
	case Enum:
		return runEnum(ctx, eng, rel, s)
	case ReferentialIntegrity:
		return runReferential(ctx, eng, rel, src, s)
	case InData:
		return runProbe(ctx, eng, rel, s)
	case Between:
		query, args, err := checksql.RangeViolations(rel, s.Column, s.Min, s.Max)
		if err != nil {
			return false, nil, err
		}
		return runViolations(ctx, eng, query, args, checkval.Metadata{
			"column": checkval.String(s.Column),
			"min":    checkval.Float(s.Min),
			"max":    checkval.Float(s.Max),
		})
	case RegexMatch:
		query, args, err := checksql.RegexViolations(rel, s.Column, s.Pattern)
		if err != nil {
			return false, nil, err
		}
		return runViolations(ctx, eng, query, args, checkval.Metadata{
			"column":  checkval.String(s.Column),
			"pattern": checkval.String(s.Pattern),
		})
	case OfType:
		canonical, err := checksql.NormalizeTypeName(s.Type)
		if err != nil {
			return false, nil, err
		}
		query, args, err := checksql.CastViolations(rel, s.Column, canonical)
		if err != nil {
			return false, nil, err
		}
		return runViolations(ctx, eng, query, args, checkval.Metadata{
			"column": checkval.String(s.Column),
			"type":   checkval.String(canonical),
		})
	case LengthBetween:
		query, args, err := checksql.LengthViolations(rel, s.Column, s.Min, s.Max)
		if err != nil {
			return false, nil, err
		}
		return runViolations(ctx, eng, query, args, checkval.Metadata{
			"column": checkval.String(s.Column),
			"min":    checkval.Int(s.Min),
			"max":    checkval.Int(s.Max),
		})
	case MaxBetween:
		return runMeasure(ctx, eng, rel, s.Column, checksql.AggregateMax, s.Min, s.Max, "max_value")
	case MinBetween:
		return runMeasure(ctx, eng, rel, s.Column, checksql.AggregateMin, s.Min, s.Max, "min_value")
	case MeanBetween:
		return runMeasure(ctx, eng, rel, s.Column, checksql.AggregateMean, s.Min, s.Max, "avg_value")
	case MedianBetween:
		return runMeasure(ctx, eng, rel, s.Column, checksql.AggregateMedian, s.Min, s.Max, "median_value")
	case DateFormat:
		query, args, err := checksql.DateFormatViolations(rel, s.Column, s.Format)
		if err != nil {
			return false, nil, err
		}
		return runViolations(ctx, eng, query, args, checkval.Metadata{
			"column": checkval.String(s.Column),
			"format": checkval.String(s.Format),
		})
	case RowCountBetween:
		query, args, err := checksql.RowCount(rel)
		if err != nil {
			return false, nil, err
		}
		return runCountBounds(ctx, eng, query, args, s.Min, s.Max, "row_count")
	case ColumnCountBetween:
		query, args, err := checksql.ColumnCount(rel)
		if err != nil {
			return false, nil, err
		}
		return runCountBounds(ctx, eng, query, args, s.Min, s.Max, "col_count")
	case NotInSet:
		query, args, err := checksql.SetViolations(rel, s.Column, s.Denied)
		if err != nil {
			return false, nil, err
		}
		return runViolations(ctx, eng, query, args, checkval.Metadata{
			"column":        checkval.String(s.Column),
			"denied_values": checkval.Strings(s.Denied),
		})
	case Increasing:
		query, args, err := checksql.IncreasingViolations(rel, s.Column)
		if err != nil {
			return false, nil, err
		}
		return runViolations(ctx, eng, query, args, checkval.Metadata{
			"column": checkval.String(s.Column),
		})
	case DateParseable:
		query, args, err := checksql.DateParseViolations(rel, s.Column)
		if err != nil {
			return false, nil, err
		}
		return runViolations(ctx, eng, query, args, checkval.Metadata{
			"column": checkval.String(s.Column),
		})
	case PairsEqual:
		query, args, err := checksql.PairMismatch(rel, s.Column1, s.Column2)
		if err != nil {
			return false, nil, err
		}
		return runViolations(ctx, eng, query, args, checkval.Metadata{
			"column1": checkval.String(s.Column1),
			"column2": checkval.String(s.Column2),
		})
	case DistinctInSet:
		query, args, err := checksql.DistinctSetViolations(rel, s.Column, s.Allowed)
		if err != nil {
			return false, nil, err
		}
		return runViolations(ctx, eng, query, args, checkval.Metadata{
			"column":         checkval.String(s.Column),
			"allowed_values": checkval.Strings(s.Allowed),
		})
	default:
		return false, nil, fmt.Errorf("unknown check type %T", chk)
	}
}

// runUnique derives the uniqueness outcome from the count triple.
// duplicate_count is non-null rows minus distinct non-null values, so
// nulls never count toward violations.
func runUnique(ctx context.Context, eng *source.Engine, rel string, s Unique) (bool, checkval.Metadata, error) {
	query, args, err := checksql.UniqueStats(rel, s.Column)
	if err != nil {
		return false, nil, err
	}

	var total, nonNull, distinct int64
	if err := eng.QueryRowContext(ctx, query, args...).Scan(&total, &nonNull, &distinct); err != nil {
		return false, nil, fmt.Errorf("unique stats query: %w", err)
	}

	duplicates := nonNull - distinct
	meta := checkval.Metadata{
		"column":          checkval.String(s.Column),
		"total_rows":      checkval.Int(total),
		"distinct_rows":   checkval.Int(distinct),
		"duplicate_count": checkval.Int(duplicates),
	}
	return duplicates == 0, meta, nil
}

func runNotNull(ctx context.Context, eng *source.Engine, rel string, s NotNull) (bool, checkval.Metadata, error) {
	query, args, err := checksql.NullStats(rel, s.Column)
	if err != nil {
		return false, nil, err
	}

	var total, nulls int64
	if err := eng.QueryRowContext(ctx, query, args...).Scan(&total, &nulls); err != nil {
		return false, nil, fmt.Errorf("null stats query: %w", err)
	}

	meta := checkval.Metadata{
		"column":     checkval.String(s.Column),
		"null_count": checkval.Int(nulls),
		"total_rows": checkval.Int(total),
	}
	return nulls == 0, meta, nil
}

// runEnum collects the sorted distinct violating values. The
// invalid_values key is omitted entirely when there are none.
func runEnum(ctx context.Context, eng *source.Engine, rel string, s Enum) (bool, checkval.Metadata, error) {
	query, args, err := checksql.EnumViolations(rel, s.Column, s.Allowed)
	if err != nil {
		return false, nil, err
	}

	rows, err := eng.QueryContext(ctx, query, args...)
	if err != nil {
		return false, nil, fmt.Errorf("enum violations query: %w", err)
	}
	defer rows.Close()

	var invalid []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return false, nil, fmt.Errorf("scan enum violation: %w", err)
		}
		invalid = append(invalid, v)
	}
	if err := rows.Err(); err != nil {
		return false, nil, fmt.Errorf("iterate enum violations: %w", err)
	}

	meta := checkval.Metadata{
		"column":         checkval.String(s.Column),
		"allowed_values": checkval.Strings(s.Allowed),
	}
	if len(invalid) > 0 {
		meta["invalid_values"] = checkval.Strings(invalid)
	}
	return len(invalid) == 0, meta, nil
}

// runReferential attaches the reference source to the same engine so
// one query can join both relations. Passing the identical source as
// its own reference reuses the already-attached relation.
func runReferential(ctx context.Context, eng *source.Engine, rel string, src source.Source, s ReferentialIntegrity) (bool, checkval.Metadata, error) {
	refRel := rel
	if s.Reference != src {
		var err error
		refRel, err = s.Reference.Attach(ctx, eng)
		if err != nil {
			return false, nil, err
		}
	}

	query, args, err := checksql.ReferentialStats(rel, refRel, s.JoinKeys)
	if err != nil {
		return false, nil, err
	}

	var total, matched int64
	if err := eng.QueryRowContext(ctx, query, args...).Scan(&total, &matched); err != nil {
		return false, nil, fmt.Errorf("referential stats query: %w", err)
	}

	orphaned := total - matched
	meta := checkval.Metadata{
		"join_keys":     checkval.Strings(s.JoinKeys),
		"total_rows":    checkval.Int(total),
		"matched_rows":  checkval.Int(matched),
		"orphaned_rows": checkval.Int(orphaned),
		"reference":     checkval.String(s.Reference.Label()),
	}
	return orphaned == 0, meta, nil
}

// runProbe selects the column with LIMIT 0. A binder failure means the
// column is absent; that is the check outcome, not an error.
func runProbe(ctx context.Context, eng *source.Engine, rel string, s InData) (bool, checkval.Metadata, error) {
	query, args, err := checksql.ColumnProbe(rel, s.Column)
	if err != nil {
		return false, nil, err
	}

	meta := checkval.Metadata{"column": checkval.String(s.Column)}

	rows, err := eng.QueryContext(ctx, query, args...)
	if err != nil {
		return false, meta, nil
	}
	closeErr := rows.Close()
	if err := errors.Join(rows.Err(), closeErr); err != nil {
		return false, meta, nil
	}
	return true, meta, nil
}

// runViolations scans a single violation count and passes iff it is
// zero. The count lands in metadata as error_count.
func runViolations(ctx context.Context, eng *source.Engine, query string, args []any, meta checkval.Metadata) (bool, checkval.Metadata, error) {
	var count int64
	if err := eng.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, nil, fmt.Errorf("count violations: %w", err)
	}

	meta["error_count"] = checkval.Int(count)
	return count == 0, meta, nil
}

// runMeasure scans a single nullable aggregate and bounds it. A NULL
// measure (empty or all-null input) fails the check and records the
// null under the measure key.
func runMeasure(ctx context.Context, eng *source.Engine, rel, column string, agg checksql.Aggregate, min, max float64, measureKey string) (bool, checkval.Metadata, error) {
	query, args, err := checksql.Measure(rel, column, agg)
	if err != nil {
		return false, nil, err
	}

	var measure sql.NullFloat64
	if err := eng.QueryRowContext(ctx, query, args...).Scan(&measure); err != nil {
		return false, nil, fmt.Errorf("measure query: %w", err)
	}

	meta := checkval.Metadata{
		"column": checkval.String(column),
		"min":    checkval.Float(min),
		"max":    checkval.Float(max),
	}
	if !measure.Valid {
		meta[measureKey] = checkval.Null{}
		return false, meta, nil
	}
	meta[measureKey] = checkval.Float(measure.Float64)
	return measure.Float64 >= min && measure.Float64 <= max, meta, nil
}

// runCountBounds scans a single count and bounds it inclusively.
func runCountBounds(ctx context.Context, eng *source.Engine, query string, args []any, min, max int64, countKey string) (bool, checkval.Metadata, error) {
	var count int64
	if err := eng.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, nil, fmt.Errorf("count query: %w", err)
	}

	meta := checkval.Metadata{
		"min":    checkval.Int(min),
		"max":    checkval.Int(max),
		countKey: checkval.Int(count),
	}
	return count >= min && count <= max, meta, nil
}
