// Package suite loads and runs YAML check suites.
//
// A suite file declares a named, ordered list of checks against file
// sources. Loading is strict: unknown fields are rejected, and the
// document is validated against an embedded CUE schema before any
// check runs, so type violations (a numeric column name, a missing
// bound) surface as load errors with file positions instead of
// failing mid-run.
//
// Execution is sequential. Every run gets a run token that correlates
// its log lines; a check that raises a typed error is recorded in the
// summary and does not abort the remaining checks.
package suite

// Suite is a named, ordered list of checks parsed from a YAML file.
type Suite struct {
	// Name identifies the suite in run output and logs.
	Name string `yaml:"name"`

	// Description explains what the suite gates. Optional.
	Description string `yaml:"description,omitempty"`

	// Checks are executed in declaration order.
	Checks []Entry `yaml:"checks"`
}

// Entry is one check declaration in a suite file.
//
// Which fields are required depends on Kind; the schema enforces the
// per-kind shape before an Entry is ever built.
type Entry struct {
	// Kind is the check kind label, e.g. "is_column_unique".
	Kind string `yaml:"kind"`

	// Data is the path of the file to check.
	Data string `yaml:"data"`

	// Column names the column under check, for single-column kinds.
	Column string `yaml:"column,omitempty"`

	// Column1 and Column2 name the pair for are_column_pairs_equal.
	Column1 string `yaml:"column1,omitempty"`
	Column2 string `yaml:"column2,omitempty"`

	// Reference is the path of the reference file for
	// are_tables_referential_integral.
	Reference string `yaml:"reference,omitempty"`

	// JoinKeys are the columns joined on, in order.
	JoinKeys []string `yaml:"join_keys,omitempty"`

	// AllowedValues is the permitted value set for is_column_enum and
	// are_distinct_values_in_set.
	AllowedValues []string `yaml:"allowed_values,omitempty"`

	// DeniedValues is the forbidden value set for is_column_not_in_set.
	DeniedValues []string `yaml:"denied_values,omitempty"`

	// Min and Max bound range, measure, length, and count kinds.
	// Bounds are inclusive.
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`

	// Pattern is the regular expression for is_column_regex_match.
	Pattern string `yaml:"pattern,omitempty"`

	// Type is the column type name for is_column_of_type.
	Type string `yaml:"type,omitempty"`

	// Format is the strptime format for is_column_date_format.
	Format string `yaml:"format,omitempty"`
}
