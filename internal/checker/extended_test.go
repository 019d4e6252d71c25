package checker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephmachado/data-quality-checker/internal/source"
)

// floatTable builds a one-column DOUBLE table named "t". Use nil for NULL.
func floatTable(column string, vals ...any) *source.Table {
	rows := make([][]any, len(vals))
	for i, v := range vals {
		rows[i] = []any{v}
	}
	return source.NewTable("t", []source.Column{{Name: column, Type: "DOUBLE"}}, rows)
}

func TestExtendedChecks(t *testing.T) {
	pairCols := []source.Column{{Name: "a", Type: "INTEGER"}, {Name: "b", Type: "INTEGER"}}

	tests := []struct {
		name    string
		tbl     *source.Table
		chk     Check
		want    bool
		metaHas []string
	}{
		{
			name:    "between passes with inclusive bounds",
			tbl:     floatTable("price", 1.0, 5.0, 10.0),
			chk:     Between{Column: "price", Min: 1, Max: 10},
			want:    true,
			metaHas: []string{`"error_count":0`},
		},
		{
			name:    "between counts out-of-range values",
			tbl:     floatTable("price", 1.0, 5.0, 10.0, 99.0),
			chk:     Between{Column: "price", Min: 0, Max: 10},
			want:    false,
			metaHas: []string{`"error_count":1`, `"column":"price"`},
		},
		{
			name: "regex passes when all non-null values match",
			tbl:  strTable("email", "a@x.io", "b@y.io", nil),
			chk:  RegexMatch{Column: "email", Pattern: "^[^@]+@[^@]+$"},
			want: true,
		},
		{
			name:    "regex counts mismatches",
			tbl:     strTable("email", "a@x.io", "nope"),
			chk:     RegexMatch{Column: "email", Pattern: "^[^@]+@[^@]+$"},
			want:    false,
			metaHas: []string{`"error_count":1`},
		},
		{
			name: "of type passes castable values",
			tbl:  strTable("age", "1", "42", nil),
			chk:  OfType{Column: "age", Type: "INTEGER"},
			want: true,
		},
		{
			name:    "of type counts uncastable values",
			tbl:     strTable("age", "1", "old"),
			chk:     OfType{Column: "age", Type: "integer"},
			want:    false,
			metaHas: []string{`"error_count":1`, `"type":"INTEGER"`},
		},
		{
			name: "length between passes",
			tbl:  strTable("code", "AB", "ABCD"),
			chk:  LengthBetween{Column: "code", Min: 2, Max: 4},
			want: true,
		},
		{
			name:    "length between counts short values",
			tbl:     strTable("code", "AB", "ABCD"),
			chk:     LengthBetween{Column: "code", Min: 3, Max: 4},
			want:    false,
			metaHas: []string{`"error_count":1`, `"min":3`, `"max":4`},
		},
		{
			name:    "max between bounds the maximum",
			tbl:     floatTable("price", 10.5, 30.25),
			chk:     MaxBetween{Column: "price", Min: 30, Max: 31},
			want:    true,
			metaHas: []string{`"max_value":30.25`},
		},
		{
			name:    "max between fails outside bounds",
			tbl:     floatTable("price", 10.5, 30.25),
			chk:     MaxBetween{Column: "price", Min: 0, Max: 20},
			want:    false,
			metaHas: []string{`"max_value":30.25`},
		},
		{
			name:    "min between bounds the minimum",
			tbl:     floatTable("price", 10.5, 30.25),
			chk:     MinBetween{Column: "price", Min: 10, Max: 11},
			want:    true,
			metaHas: []string{`"min_value":10.5`},
		},
		{
			name:    "mean between bounds the average",
			tbl:     floatTable("price", 10.0, 20.0, 30.0),
			chk:     MeanBetween{Column: "price", Min: 19, Max: 21},
			want:    true,
			metaHas: []string{`"avg_value":20`},
		},
		{
			name:    "median between bounds the median",
			tbl:     floatTable("price", 10.0, 20.0, 90.0),
			chk:     MedianBetween{Column: "price", Min: 19, Max: 21},
			want:    true,
			metaHas: []string{`"median_value":20`},
		},
		{
			name: "date format passes parseable values",
			tbl:  strTable("day", "2024-01-01", "2024-06-30", nil),
			chk:  DateFormat{Column: "day", Format: "%Y-%m-%d"},
			want: true,
		},
		{
			name:    "date format counts unparseable values",
			tbl:     strTable("day", "2024-01-01", "2024-13-40"),
			chk:     DateFormat{Column: "day", Format: "%Y-%m-%d"},
			want:    false,
			metaHas: []string{`"error_count":1`, `"format":"%Y-%m-%d"`},
		},
		{
			name:    "row count between",
			tbl:     intTable("id", 1, 2, 3),
			chk:     RowCountBetween{Min: 1, Max: 10},
			want:    true,
			metaHas: []string{`"row_count":3`},
		},
		{
			name:    "row count outside bounds",
			tbl:     intTable("id", 1, 2, 3),
			chk:     RowCountBetween{Min: 5, Max: 10},
			want:    false,
			metaHas: []string{`"row_count":3`},
		},
		{
			name: "column count between",
			tbl:  source.NewTable("t", pairCols, [][]any{{1, 1}}),
			chk:  ColumnCountBetween{Min: 2, Max: 2},
			want: true,
			metaHas: []string{
				`"col_count":2`,
			},
		},
		{
			name: "not in set passes clean values",
			tbl:  strTable("country", "US", "CA"),
			chk:  NotInSet{Column: "country", Denied: []string{"XX", "ZZ"}},
			want: true,
		},
		{
			name:    "not in set counts denied values",
			tbl:     strTable("country", "US", "XX", "XX"),
			chk:     NotInSet{Column: "country", Denied: []string{"XX"}},
			want:    false,
			metaHas: []string{`"error_count":2`, `"denied_values":["XX"]`},
		},
		{
			name: "increasing passes strictly rising values",
			tbl:  intTable("seq", 1, 2, 5),
			chk:  Increasing{Column: "seq"},
			want: true,
		},
		{
			name:    "increasing counts descents",
			tbl:     intTable("seq", 1, 5, 2),
			chk:     Increasing{Column: "seq"},
			want:    false,
			metaHas: []string{`"error_count":1`},
		},
		{
			name: "increasing rejects plateaus",
			tbl:  intTable("seq", 1, 1, 2),
			chk:  Increasing{Column: "seq"},
			want: false,
		},
		{
			name: "date parseable passes",
			tbl:  strTable("day", "2024-01-01", "2024-06-30"),
			chk:  DateParseable{Column: "day"},
			want: true,
		},
		{
			name:    "date parseable counts garbage",
			tbl:     strTable("day", "2024-01-01", "not a date"),
			chk:     DateParseable{Column: "day"},
			want:    false,
			metaHas: []string{`"error_count":1`},
		},
		{
			name: "pairs equal passes matching columns",
			tbl:  source.NewTable("t", pairCols, [][]any{{1, 1}, {2, 2}, {nil, nil}}),
			chk:  PairsEqual{Column1: "a", Column2: "b"},
			want: true,
		},
		{
			name:    "pairs equal counts differing rows",
			tbl:     source.NewTable("t", pairCols, [][]any{{1, 1}, {2, 3}, {nil, 4}}),
			chk:     PairsEqual{Column1: "a", Column2: "b"},
			want:    false,
			metaHas: []string{`"error_count":2`, `"column1":"a"`, `"column2":"b"`},
		},
		{
			name: "distinct values in set passes",
			tbl:  strTable("status", "a", "a", "b", nil),
			chk:  DistinctInSet{Column: "status", Allowed: []string{"a", "b"}},
			want: true,
		},
		{
			name:    "distinct values in set counts outsiders",
			tbl:     strTable("status", "a", "b", "b", "c"),
			chk:     DistinctInSet{Column: "status", Allowed: []string{"a"}},
			want:    false,
			metaHas: []string{`"error_count":2`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, store := setupChecker(t)

			passed, err := c.Run(context.Background(), tt.tbl, tt.chk)
			require.NoError(t, err)
			assert.Equal(t, tt.want, passed)

			recs := records(t, store)
			require.Len(t, recs, 1)
			assert.Equal(t, tt.chk.Kind(), recs[0].CheckKind)
			assert.Equal(t, tt.want, recs[0].Result)
			for _, want := range tt.metaHas {
				assert.Contains(t, recs[0].Metadata, want)
			}
		})
	}
}

func TestMeasureChecks_NullMeasureFails(t *testing.T) {
	c, store := setupChecker(t)

	// AVG over an empty table is NULL: the check fails and records it.
	passed, err := c.IsColumnMeanBetween(context.Background(), floatTable("price"), "price", 0, 100)
	require.NoError(t, err)
	assert.False(t, passed)

	recs := records(t, store)
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0].Metadata, `"avg_value":null`)
}

func TestNamedWrappers_MatchCheckKinds(t *testing.T) {
	c, store := setupChecker(t)
	ctx := context.Background()

	_, err := c.IsColumnMaxBetween(ctx, floatTable("v", 1.0), "v", 0, 10)
	require.NoError(t, err)
	_, err = c.IsColumnMinBetween(ctx, floatTable("v", 1.0), "v", 0, 10)
	require.NoError(t, err)
	_, err = c.IsColumnMedianBetween(ctx, floatTable("v", 1.0), "v", 0, 10)
	require.NoError(t, err)
	_, err = c.IsTableColumnCountBetween(ctx, intTable("id", 1), 1, 1)
	require.NoError(t, err)
	_, err = c.IsColumnIncreasing(ctx, intTable("id", 1, 2), "id")
	require.NoError(t, err)
	_, err = c.IsColumnDateParseable(ctx, strTable("d", "2024-01-01"), "d")
	require.NoError(t, err)
	_, err = c.AreColumnPairsEqual(ctx,
		source.NewTable("t", []source.Column{{Name: "a", Type: "INTEGER"}, {Name: "b", Type: "INTEGER"}}, [][]any{{1, 1}}),
		"a", "b")
	require.NoError(t, err)
	_, err = c.AreDistinctValuesInSet(ctx, strTable("s", "a"), "s", []string{"a"})
	require.NoError(t, err)
	_, err = c.IsColumnLengthBetween(ctx, strTable("s", "ab"), "s", 1, 5)
	require.NoError(t, err)
	_, err = c.IsColumnRegexMatch(ctx, strTable("s", "ab"), "s", "^a")
	require.NoError(t, err)
	_, err = c.IsColumnOfType(ctx, strTable("s", "1"), "s", "INTEGER")
	require.NoError(t, err)
	_, err = c.IsColumnDateFormat(ctx, strTable("s", "2024-01-01"), "s", "%Y-%m-%d")
	require.NoError(t, err)
	_, err = c.IsColumnNotInSet(ctx, strTable("s", "a"), "s", []string{"z"})
	require.NoError(t, err)
	_, err = c.IsTableRowCountBetween(ctx, intTable("id", 1), 0, 5)
	require.NoError(t, err)
	_, err = c.IsColumnBetween(ctx, floatTable("v", 1.0), "v", 0, 10)
	require.NoError(t, err)

	wantKinds := []string{
		"is_column_max_between",
		"is_column_min_between",
		"is_column_median_between",
		"is_table_column_count_between",
		"is_column_increasing",
		"is_column_date_parseable",
		"are_column_pairs_equal",
		"are_distinct_values_in_set",
		"is_column_length_between",
		"is_column_regex_match",
		"is_column_of_type",
		"is_column_date_format",
		"is_column_not_in_set",
		"is_table_row_count_between",
		"is_column_between",
	}
	recs := records(t, store)
	require.Len(t, recs, len(wantKinds))
	for i, kind := range wantKinds {
		assert.Equal(t, kind, recs[i].CheckKind)
	}
}
