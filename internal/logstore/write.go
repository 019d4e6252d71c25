package logstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/josephmachado/data-quality-checker/internal/checkval"
)

// Append inserts one outcome record. The timestamp is taken from the
// store's clock at insert, in UTC RFC 3339 form. Empty or nil metadata
// stores SQL NULL; otherwise additional_params holds the canonical
// JSON rendering of the metadata.
func (s *Store) Append(ctx context.Context, kind string, result bool, meta checkval.Metadata) error {
	var rendered sql.NullString
	if len(meta) > 0 {
		text, err := checkval.Render(meta)
		if err != nil {
			return fmt.Errorf("append log record: %w", err)
		}
		rendered = sql.NullString{String: text, Valid: true}
	}

	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `
		INSERT INTO log (timestamp, data_quality_check_type, result, additional_params)
		VALUES (?, ?, ?, ?)
	`,
		s.clock.Now().UTC().Format(time.RFC3339),
		kind,
		result,
		rendered,
	)
	if err != nil {
		return fmt.Errorf("append log record: %w", err)
	}

	return nil
}

// Clear deletes every record. The id sequence is not reset, so ids
// stay unique across the store's lifetime.
func (s *Store) Clear(ctx context.Context) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "DELETE FROM log"); err != nil {
		return fmt.Errorf("clear log: %w", err)
	}

	return nil
}
