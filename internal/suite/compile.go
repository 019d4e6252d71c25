package suite

import (
	"fmt"

	"github.com/josephmachado/data-quality-checker/internal/checker"
	"github.com/josephmachado/data-quality-checker/internal/source"
)

// compileEntry maps one suite entry onto a data source and a check.
//
// Entries that came through Load already satisfy the schema;
// compileEntry still reports missing parameters so hand-built entries
// fail the same way.
func compileEntry(e Entry) (source.Source, checker.Check, error) {
	src := source.NewFile(e.Data)

	switch e.Kind {
	case "is_column_unique":
		return src, checker.Unique{Column: e.Column}, nil
	case "is_column_not_null":
		return src, checker.NotNull{Column: e.Column}, nil
	case "is_column_enum":
		return src, checker.Enum{Column: e.Column, Allowed: e.AllowedValues}, nil
	case "are_tables_referential_integral":
		return src, checker.ReferentialIntegrity{
			Reference: source.NewFile(e.Reference),
			JoinKeys:  e.JoinKeys,
		}, nil
	case "is_column_in_data":
		return src, checker.InData{Column: e.Column}, nil
	case "is_column_between":
		min, max, err := e.bounds()
		if err != nil {
			return nil, nil, err
		}
		return src, checker.Between{Column: e.Column, Min: min, Max: max}, nil
	case "is_column_regex_match":
		return src, checker.RegexMatch{Column: e.Column, Pattern: e.Pattern}, nil
	case "is_column_of_type":
		return src, checker.OfType{Column: e.Column, Type: e.Type}, nil
	case "is_column_length_between":
		min, max, err := e.intBounds()
		if err != nil {
			return nil, nil, err
		}
		return src, checker.LengthBetween{Column: e.Column, Min: min, Max: max}, nil
	case "is_column_max_between":
		min, max, err := e.bounds()
		if err != nil {
			return nil, nil, err
		}
		return src, checker.MaxBetween{Column: e.Column, Min: min, Max: max}, nil
	case "is_column_min_between":
		min, max, err := e.bounds()
		if err != nil {
			return nil, nil, err
		}
		return src, checker.MinBetween{Column: e.Column, Min: min, Max: max}, nil
	case "is_column_mean_between":
		min, max, err := e.bounds()
		if err != nil {
			return nil, nil, err
		}
		return src, checker.MeanBetween{Column: e.Column, Min: min, Max: max}, nil
	case "is_column_median_between":
		min, max, err := e.bounds()
		if err != nil {
			return nil, nil, err
		}
		return src, checker.MedianBetween{Column: e.Column, Min: min, Max: max}, nil
	case "is_column_date_format":
		return src, checker.DateFormat{Column: e.Column, Format: e.Format}, nil
	case "is_table_row_count_between":
		min, max, err := e.intBounds()
		if err != nil {
			return nil, nil, err
		}
		return src, checker.RowCountBetween{Min: min, Max: max}, nil
	case "is_table_column_count_between":
		min, max, err := e.intBounds()
		if err != nil {
			return nil, nil, err
		}
		return src, checker.ColumnCountBetween{Min: min, Max: max}, nil
	case "is_column_not_in_set":
		return src, checker.NotInSet{Column: e.Column, Denied: e.DeniedValues}, nil
	case "is_column_increasing":
		return src, checker.Increasing{Column: e.Column}, nil
	case "is_column_date_parseable":
		return src, checker.DateParseable{Column: e.Column}, nil
	case "are_column_pairs_equal":
		return src, checker.PairsEqual{Column1: e.Column1, Column2: e.Column2}, nil
	case "are_distinct_values_in_set":
		return src, checker.DistinctInSet{Column: e.Column, Allowed: e.AllowedValues}, nil
	default:
		return nil, nil, &LoadError{Code: ErrCodeUnknownKind, Message: fmt.Sprintf("unknown check kind %q", e.Kind)}
	}
}

// bounds returns the float bounds, reporting a missing pair.
func (e Entry) bounds() (float64, float64, error) {
	if e.Min == nil || e.Max == nil {
		return 0, 0, &LoadError{Code: ErrCodeMissingParam, Message: fmt.Sprintf("check %q requires min and max", e.Kind)}
	}
	return *e.Min, *e.Max, nil
}

// intBounds returns the bounds for length and count kinds. The schema
// constrains these to integers, so the conversion is exact.
func (e Entry) intBounds() (int64, int64, error) {
	min, max, err := e.bounds()
	if err != nil {
		return 0, 0, err
	}
	return int64(min), int64(max), nil
}
