package checksql

import (
	"fmt"
)

// Each builder returns one query plus its bound arguments. Queries that
// return value lists carry a deterministic ORDER BY; single-row
// aggregate queries need none. The rel arguments are pre-quoted
// relation fragments produced by QuoteIdent or QuotePathLiteral.

// UniqueStats counts total rows, non-null values, and distinct non-null
// values of a column in one pass. COUNT(DISTINCT x) ignores nulls, so
// nulls never contribute to duplicate counts.
func UniqueStats(rel, column string) (string, []any, error) {
	col, err := QuoteIdent(column)
	if err != nil {
		return "", nil, err
	}
	sql := fmt.Sprintf("SELECT COUNT(*), COUNT(%s), COUNT(DISTINCT %s) FROM %s", col, col, rel)
	return sql, nil, nil
}

// NullStats counts total rows and null entries of a column.
func NullStats(rel, column string) (string, []any, error) {
	col, err := QuoteIdent(column)
	if err != nil {
		return "", nil, err
	}
	sql := fmt.Sprintf("SELECT COUNT(*), COUNT(*) - COUNT(%s) FROM %s", col, rel)
	return sql, nil, nil
}

// EnumViolations selects the distinct non-null values of a column that
// fall outside the allowed set, rendered as text and ordered for
// deterministic read-back. Allowed values are bound, never spliced.
func EnumViolations(rel, column string, allowed []string) (string, []any, error) {
	col, err := QuoteIdent(column)
	if err != nil {
		return "", nil, err
	}
	if len(allowed) == 0 {
		return "", nil, fmt.Errorf("allowed set is empty")
	}
	sql := fmt.Sprintf(
		"SELECT DISTINCT CAST(%s AS VARCHAR) AS invalid_value FROM %s WHERE %s NOT IN (%s) AND %s IS NOT NULL ORDER BY invalid_value",
		col, rel, col, Placeholders(len(allowed)), col)
	return sql, stringArgs(allowed), nil
}

// ReferentialStats counts source rows and how many of them have at
// least one reference row agreeing on every join key. A null join key
// makes the equality unknown, so such rows never match.
func ReferentialStats(rel, refRel string, joinKeys []string) (string, []any, error) {
	if len(joinKeys) == 0 {
		return "", nil, fmt.Errorf("join key list is empty")
	}
	exists := ""
	for i, key := range joinKeys {
		k, err := QuoteIdent(key)
		if err != nil {
			return "", nil, err
		}
		if i > 0 {
			exists += " AND "
		}
		exists += fmt.Sprintf("r.%s = l.%s", k, k)
	}
	sql := fmt.Sprintf(
		"SELECT COUNT(*), COUNT(CASE WHEN EXISTS (SELECT 1 FROM %s r WHERE %s) THEN 1 END) FROM %s l",
		refRel, exists, rel)
	return sql, nil, nil
}

// ColumnProbe selects a column with LIMIT 0; it succeeds iff the
// column resolves in the relation's schema.
func ColumnProbe(rel, column string) (string, []any, error) {
	col, err := QuoteIdent(column)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("SELECT %s FROM %s LIMIT 0", col, rel), nil, nil
}

// RangeViolations counts values outside the inclusive [min, max] range.
// Null values compare unknown and are not counted.
func RangeViolations(rel, column string, min, max float64) (string, []any, error) {
	col, err := QuoteIdent(column)
	if err != nil {
		return "", nil, err
	}
	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s < ? OR %s > ?", rel, col, col)
	return sql, []any{min, max}, nil
}

// RegexViolations counts non-null values not matching an RE2 pattern.
func RegexViolations(rel, column, pattern string) (string, []any, error) {
	col, err := QuoteIdent(column)
	if err != nil {
		return "", nil, err
	}
	sql := fmt.Sprintf(
		"SELECT COUNT(*) FROM %s WHERE NOT regexp_matches(CAST(%s AS VARCHAR), ?) AND %s IS NOT NULL",
		rel, col, col)
	return sql, []any{pattern}, nil
}

// CastViolations counts non-null values that do not cast to the given
// engine type. The type name must come from the allowlist.
func CastViolations(rel, column, typeName string) (string, []any, error) {
	col, err := QuoteIdent(column)
	if err != nil {
		return "", nil, err
	}
	canonical, err := NormalizeTypeName(typeName)
	if err != nil {
		return "", nil, err
	}
	sql := fmt.Sprintf(
		"SELECT COUNT(*) FROM %s WHERE TRY_CAST(%s AS %s) IS NULL AND %s IS NOT NULL",
		rel, col, canonical, col)
	return sql, nil, nil
}

// LengthViolations counts values whose length falls outside the
// inclusive [min, max] range. length(NULL) is null, so nulls are exempt.
func LengthViolations(rel, column string, min, max int64) (string, []any, error) {
	col, err := QuoteIdent(column)
	if err != nil {
		return "", nil, err
	}
	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE length(%s) < ? OR length(%s) > ?", rel, col, col)
	return sql, []any{min, max}, nil
}

// Measure computes one scalar aggregate of a column, cast to DOUBLE so
// the result scans uniformly. The aggregate is NULL over empty input.
func Measure(rel, column string, agg Aggregate) (string, []any, error) {
	col, err := QuoteIdent(column)
	if err != nil {
		return "", nil, err
	}
	if !agg.valid() {
		return "", nil, fmt.Errorf("unsupported aggregate %q", string(agg))
	}
	sql := fmt.Sprintf("SELECT CAST(%s(%s) AS DOUBLE) FROM %s", string(agg), col, rel)
	return sql, nil, nil
}

// DateFormatViolations counts non-null values that do not parse under a
// strptime format. try_strptime yields NULL instead of raising.
func DateFormatViolations(rel, column, format string) (string, []any, error) {
	col, err := QuoteIdent(column)
	if err != nil {
		return "", nil, err
	}
	sql := fmt.Sprintf(
		"SELECT COUNT(*) FROM %s WHERE try_strptime(CAST(%s AS VARCHAR), ?) IS NULL AND %s IS NOT NULL",
		rel, col, col)
	return sql, []any{format}, nil
}

// RowCount counts the rows of a relation.
func RowCount(rel string) (string, []any, error) {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", rel), nil, nil
}

// ColumnCount counts the columns of a relation via DESCRIBE.
func ColumnCount(rel string) (string, []any, error) {
	return fmt.Sprintf("SELECT COUNT(*) FROM (DESCRIBE SELECT * FROM %s)", rel), nil, nil
}

// SetViolations counts values that appear in a denied set.
func SetViolations(rel, column string, denied []string) (string, []any, error) {
	col, err := QuoteIdent(column)
	if err != nil {
		return "", nil, err
	}
	if len(denied) == 0 {
		return "", nil, fmt.Errorf("denied set is empty")
	}
	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s IN (%s)", rel, col, Placeholders(len(denied)))
	return sql, stringArgs(denied), nil
}

// IncreasingViolations counts rows whose value is not strictly greater
// than the previous row's value in the relation's row order.
func IncreasingViolations(rel, column string) (string, []any, error) {
	col, err := QuoteIdent(column)
	if err != nil {
		return "", nil, err
	}
	sql := fmt.Sprintf(
		"SELECT COUNT(*) FROM (SELECT %s AS cur, LAG(%s) OVER () AS prev FROM %s) WHERE cur <= prev",
		col, col, rel)
	return sql, nil, nil
}

// DateParseViolations counts non-null values that do not cast to DATE.
func DateParseViolations(rel, column string) (string, []any, error) {
	col, err := QuoteIdent(column)
	if err != nil {
		return "", nil, err
	}
	sql := fmt.Sprintf(
		"SELECT COUNT(*) FROM %s WHERE TRY_CAST(%s AS DATE) IS NULL AND %s IS NOT NULL",
		rel, col, col)
	return sql, nil, nil
}

// PairMismatch counts rows where two columns differ. IS DISTINCT FROM
// treats two nulls as equal and null-versus-value as a difference.
func PairMismatch(rel, column1, column2 string) (string, []any, error) {
	c1, err := QuoteIdent(column1)
	if err != nil {
		return "", nil, err
	}
	c2, err := QuoteIdent(column2)
	if err != nil {
		return "", nil, err
	}
	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s IS DISTINCT FROM %s", rel, c1, c2)
	return sql, nil, nil
}

// DistinctSetViolations counts distinct non-null values outside an
// allowed set.
func DistinctSetViolations(rel, column string, allowed []string) (string, []any, error) {
	col, err := QuoteIdent(column)
	if err != nil {
		return "", nil, err
	}
	if len(allowed) == 0 {
		return "", nil, fmt.Errorf("allowed set is empty")
	}
	sql := fmt.Sprintf(
		"SELECT COUNT(*) FROM (SELECT DISTINCT %s FROM %s WHERE %s NOT IN (%s) AND %s IS NOT NULL)",
		col, rel, col, Placeholders(len(allowed)), col)
	return sql, stringArgs(allowed), nil
}

// stringArgs widens a string slice for driver binding.
func stringArgs(vals []string) []any {
	args := make([]any, len(vals))
	for i, v := range vals {
		args[i] = v
	}
	return args
}
