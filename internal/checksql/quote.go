// Package checksql builds the SQL dispatched to the analytical engine.
//
// Values are ALWAYS bound as parameters, never interpolated. The two
// things that cannot be bound (identifiers and the relation a query
// reads FROM) go through rigorous quoting instead: identifiers are
// validated and double-quoted with embedded quotes doubled, file paths
// become single-quoted literals with embedded quotes doubled. Type and
// aggregate names are restricted to fixed allowlists.
package checksql

import (
	"fmt"
	"strings"
)

// maxIdentLen bounds identifier length; real CSV headers stay far below it.
const maxIdentLen = 256

// ValidateIdent reports whether name is usable as a column or table
// identifier. Empty names, names over 256 bytes, and names containing
// control characters are rejected.
func ValidateIdent(name string) error {
	if name == "" {
		return fmt.Errorf("identifier is empty")
	}
	if len(name) > maxIdentLen {
		return fmt.Errorf("identifier exceeds %d bytes", maxIdentLen)
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("identifier %q contains control characters", name)
		}
	}
	return nil
}

// QuoteIdent validates name and wraps it in double quotes, doubling any
// embedded quote. The result is safe to splice into SQL as a column or
// table reference.
func QuoteIdent(name string) (string, error) {
	if err := ValidateIdent(name); err != nil {
		return "", err
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`, nil
}

// QuotePathLiteral turns a file path into a single-quoted SQL literal,
// doubling any embedded quote. The engine resolves quoted paths in FROM
// position to file-backed relations; paths cannot be bound as
// parameters there.
func QuotePathLiteral(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.ContainsRune(path, 0) {
		return "", fmt.Errorf("path contains NUL byte")
	}
	return "'" + strings.ReplaceAll(path, "'", "''") + "'", nil
}

// Placeholders returns n comma-separated ? markers for an IN list.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(n*2 - 1)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('?')
	}
	return b.String()
}

// columnTypes is the fixed set of engine type names accepted by the
// cast check. Type names appear in TRY_CAST and cannot be bound, so
// anything outside this set is rejected up front.
var columnTypes = map[string]struct{}{
	"BOOLEAN":   {},
	"TINYINT":   {},
	"SMALLINT":  {},
	"INTEGER":   {},
	"BIGINT":    {},
	"HUGEINT":   {},
	"UTINYINT":  {},
	"USMALLINT": {},
	"UINTEGER":  {},
	"UBIGINT":   {},
	"FLOAT":     {},
	"DOUBLE":    {},
	"DECIMAL":   {},
	"VARCHAR":   {},
	"DATE":      {},
	"TIME":      {},
	"TIMESTAMP": {},
	"UUID":      {},
	"INTERVAL":  {},
	"BLOB":      {},
}

// NormalizeTypeName canonicalizes an engine type name against the
// allowlist. Returns the upper-cased name or an error for unknown types.
func NormalizeTypeName(name string) (string, error) {
	canonical := strings.ToUpper(strings.TrimSpace(name))
	if _, ok := columnTypes[canonical]; !ok {
		return "", fmt.Errorf("unsupported column type %q", name)
	}
	return canonical, nil
}

// Aggregate identifies the scalar aggregate a measure query computes.
// Only these four reach SQL text, so no user input is ever spliced.
type Aggregate string

const (
	AggregateMax    Aggregate = "MAX"
	AggregateMin    Aggregate = "MIN"
	AggregateMean   Aggregate = "AVG"
	AggregateMedian Aggregate = "MEDIAN"
)

func (a Aggregate) valid() bool {
	switch a {
	case AggregateMax, AggregateMin, AggregateMean, AggregateMedian:
		return true
	}
	return false
}
