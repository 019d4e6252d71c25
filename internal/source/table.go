package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/josephmachado/data-quality-checker/internal/checksql"
)

// Table is an in-memory tabular source. Attach materializes it into the
// engine with typed columns and bound-parameter inserts, after which it
// is queried exactly like a file source.
type Table struct {
	// Name is the table name, used as relation identifier and log label.
	Name string

	// Columns declares the table shape in order.
	Columns []Column

	// Rows holds the data; each row must match the column count.
	// Value types must be bindable by the engine driver.
	Rows [][]any
}

// Column declares one typed column of an in-memory table.
type Column struct {
	// Name is the column identifier.
	Name string

	// Type is an engine type name from the fixed allowlist
	// (INTEGER, VARCHAR, DOUBLE, DATE, ...). Case-insensitive.
	Type string
}

// NewTable creates an in-memory source from a shape and rows.
func NewTable(name string, columns []Column, rows [][]any) *Table {
	return &Table{Name: name, Columns: columns, Rows: rows}
}

// Label returns the table name.
func (t *Table) Label() string {
	return t.Name
}

// Attach validates the definition, creates the table on the engine, and
// inserts every row with bound parameters. Definition problems yield an
// invalid-table error before the engine is touched.
func (t *Table) Attach(ctx context.Context, eng *Engine) (string, error) {
	rel, createSQL, err := t.compile()
	if err != nil {
		return "", err
	}

	if _, err := eng.ExecContext(ctx, createSQL); err != nil {
		return "", fmt.Errorf("failed to create table %s: %w", rel, err)
	}

	if len(t.Rows) > 0 {
		insertSQL := fmt.Sprintf("INSERT INTO %s VALUES (%s)", rel, checksql.Placeholders(len(t.Columns)))
		for _, row := range t.Rows {
			if _, err := eng.ExecContext(ctx, insertSQL, row...); err != nil {
				return "", fmt.Errorf("failed to insert row into %s: %w", rel, err)
			}
		}
	}

	return rel, nil
}

// compile validates the definition and builds the relation identifier
// plus the CREATE TABLE statement.
func (t *Table) compile() (rel, createSQL string, err error) {
	rel, err = checksql.QuoteIdent(t.Name)
	if err != nil {
		return "", "", NewInvalidTableError(t.Name, "invalid table name", err)
	}
	if len(t.Columns) == 0 {
		return "", "", NewInvalidTableError(t.Name, "table has no columns", nil)
	}

	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(rel)
	b.WriteString(" (")
	for i, col := range t.Columns {
		name, err := checksql.QuoteIdent(col.Name)
		if err != nil {
			return "", "", NewInvalidTableError(t.Name, fmt.Sprintf("invalid column name %q", col.Name), err)
		}
		typ, err := checksql.NormalizeTypeName(col.Type)
		if err != nil {
			return "", "", NewInvalidTableError(t.Name, fmt.Sprintf("invalid type for column %q", col.Name), err)
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteByte(' ')
		b.WriteString(typ)
	}
	b.WriteString(")")

	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return "", "", NewInvalidTableError(t.Name,
				fmt.Sprintf("row %d has %d values, want %d", i, len(row), len(t.Columns)), nil)
		}
	}

	return rel, b.String(), nil
}
