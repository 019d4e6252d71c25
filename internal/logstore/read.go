package logstore

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
)

// Record is one stored check outcome.
type Record struct {
	// ID is the auto-increment row id; unique and monotonic per store.
	ID int64 `json:"id"`

	// Timestamp is the RFC 3339 insert time.
	Timestamp string `json:"timestamp"`

	// CheckKind is the check's kind label, e.g. "is_column_unique".
	CheckKind string `json:"check_kind"`

	// Result is the check outcome.
	Result bool `json:"result"`

	// Metadata is the rendered metadata JSON, or "" when none was stored.
	Metadata string `json:"metadata,omitempty"`
}

// List returns all records ordered by ascending id.
// Returns an empty slice (not nil) if the store holds no records.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT id, timestamp, data_quality_check_type, result, additional_params
		FROM log
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query log: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate log: %w", err)
	}

	// Return empty slice instead of nil
	if records == nil {
		records = []Record{}
	}

	return records, nil
}

// scanRecord scans a single record from a log row.
func scanRecord(rows *sql.Rows) (Record, error) {
	var rec Record
	var meta sql.NullString

	if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.CheckKind, &rec.Result, &meta); err != nil {
		return Record{}, fmt.Errorf("scan log record: %w", err)
	}
	if meta.Valid {
		rec.Metadata = meta.String
	}

	return rec, nil
}

// PrintAll renders every record as a fixed-width table, or the line
// "No log entries found." when the store is empty.
func (s *Store) PrintAll(ctx context.Context, w io.Writer) error {
	records, err := s.List(ctx)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No log entries found.")
		return nil
	}

	fmt.Fprintf(w, "%-5s %-26s %-35s %-8s %s\n", "ID", "Timestamp", "Check Type", "Result", "Additional Params")
	fmt.Fprintln(w, strings.Repeat("-", 120))
	for _, rec := range records {
		outcome := "FAIL"
		if rec.Result {
			outcome = "PASS"
		}
		fmt.Fprintf(w, "%-5d %-26s %-35s %-8s %s\n", rec.ID, rec.Timestamp, rec.CheckKind, outcome, rec.Metadata)
	}

	return nil
}
