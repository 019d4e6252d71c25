package checker

import "github.com/josephmachado/data-quality-checker/internal/source"

// Check describes one data-quality check.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and
// enables exhaustive type switches in validation and execution.
//
// Every variant carries exactly the parameters of its check; the source
// it runs against is supplied separately to Checker.Run.
type Check interface {
	// Kind returns the check's label as recorded in the log, e.g.
	// "is_column_unique".
	Kind() string

	checkSpec() // Marker method - seals interface to this package
}

// Unique passes when no non-null value of Column occurs more than once.
// Nulls never count toward uniqueness violations.
type Unique struct {
	Column string
}

func (Unique) Kind() string { return "is_column_unique" }
func (Unique) checkSpec()   {}

// NotNull passes when Column contains no nulls.
type NotNull struct {
	Column string
}

func (NotNull) Kind() string { return "is_column_not_null" }
func (NotNull) checkSpec()   {}

// Enum passes when every non-null value of Column is in Allowed.
type Enum struct {
	Column  string
	Allowed []string
}

func (Enum) Kind() string { return "is_column_enum" }
func (Enum) checkSpec()   {}

// ReferentialIntegrity passes when every source row has at least one
// Reference row agreeing on all JoinKeys. Rows with a null join key
// never match.
type ReferentialIntegrity struct {
	Reference source.Source
	JoinKeys  []string
}

func (ReferentialIntegrity) Kind() string { return "are_tables_referential_integral" }
func (ReferentialIntegrity) checkSpec()   {}

// InData passes when Column resolves in the source schema.
type InData struct {
	Column string
}

func (InData) Kind() string { return "is_column_in_data" }
func (InData) checkSpec()   {}

// Between passes when every value of Column lies in [Min, Max].
type Between struct {
	Column string
	Min    float64
	Max    float64
}

func (Between) Kind() string { return "is_column_between" }
func (Between) checkSpec()   {}

// RegexMatch passes when every non-null value of Column matches Pattern
// (RE2 syntax).
type RegexMatch struct {
	Column  string
	Pattern string
}

func (RegexMatch) Kind() string { return "is_column_regex_match" }
func (RegexMatch) checkSpec()   {}

// OfType passes when every non-null value of Column casts to Type,
// an engine type name from the fixed allowlist.
type OfType struct {
	Column string
	Type   string
}

func (OfType) Kind() string { return "is_column_of_type" }
func (OfType) checkSpec()   {}

// LengthBetween passes when every value length of Column lies in
// [Min, Max].
type LengthBetween struct {
	Column string
	Min    int64
	Max    int64
}

func (LengthBetween) Kind() string { return "is_column_length_between" }
func (LengthBetween) checkSpec()   {}

// MaxBetween passes when MAX(Column) lies in [Min, Max].
type MaxBetween struct {
	Column string
	Min    float64
	Max    float64
}

func (MaxBetween) Kind() string { return "is_column_max_between" }
func (MaxBetween) checkSpec()   {}

// MinBetween passes when MIN(Column) lies in [Min, Max].
type MinBetween struct {
	Column string
	Min    float64
	Max    float64
}

func (MinBetween) Kind() string { return "is_column_min_between" }
func (MinBetween) checkSpec()   {}

// MeanBetween passes when AVG(Column) lies in [Min, Max].
type MeanBetween struct {
	Column string
	Min    float64
	Max    float64
}

func (MeanBetween) Kind() string { return "is_column_mean_between" }
func (MeanBetween) checkSpec()   {}

// MedianBetween passes when MEDIAN(Column) lies in [Min, Max].
type MedianBetween struct {
	Column string
	Min    float64
	Max    float64
}

func (MedianBetween) Kind() string { return "is_column_median_between" }
func (MedianBetween) checkSpec()   {}

// DateFormat passes when every non-null value of Column parses under
// the strptime Format.
type DateFormat struct {
	Column string
	Format string
}

func (DateFormat) Kind() string { return "is_column_date_format" }
func (DateFormat) checkSpec()   {}

// RowCountBetween passes when the source row count lies in [Min, Max].
type RowCountBetween struct {
	Min int64
	Max int64
}

func (RowCountBetween) Kind() string { return "is_table_row_count_between" }
func (RowCountBetween) checkSpec()   {}

// ColumnCountBetween passes when the source column count lies in
// [Min, Max].
type ColumnCountBetween struct {
	Min int64
	Max int64
}

func (ColumnCountBetween) Kind() string { return "is_table_column_count_between" }
func (ColumnCountBetween) checkSpec()   {}

// NotInSet passes when no value of Column appears in Denied.
type NotInSet struct {
	Column string
	Denied []string
}

func (NotInSet) Kind() string { return "is_column_not_in_set" }
func (NotInSet) checkSpec()   {}

// Increasing passes when every value of Column is strictly greater than
// its predecessor in the source's row order.
type Increasing struct {
	Column string
}

func (Increasing) Kind() string { return "is_column_increasing" }
func (Increasing) checkSpec()   {}

// DateParseable passes when every non-null value of Column casts to
// DATE.
type DateParseable struct {
	Column string
}

func (DateParseable) Kind() string { return "is_column_date_parseable" }
func (DateParseable) checkSpec()   {}

// PairsEqual passes when Column1 and Column2 agree on every row; null
// versus non-null counts as a difference, null versus null does not.
type PairsEqual struct {
	Column1 string
	Column2 string
}

func (PairsEqual) Kind() string { return "are_column_pairs_equal" }
func (PairsEqual) checkSpec()   {}

// DistinctInSet passes when every distinct non-null value of Column is
// in Allowed.
type DistinctInSet struct {
	Column  string
	Allowed []string
}

func (DistinctInSet) Kind() string { return "are_distinct_values_in_set" }
func (DistinctInSet) checkSpec()   {}
