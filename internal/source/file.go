package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/josephmachado/data-quality-checker/internal/checksql"
)

// File is a source backed by a file the engine can scan directly:
// CSV, Parquet, or JSON, resolved by extension.
type File struct {
	// Path is the file path as given by the caller. It is stored
	// verbatim and reported unchanged in log metadata.
	Path string
}

// NewFile creates a file-backed source for the given path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Label returns the file path.
func (f *File) Label() string {
	return f.Path
}

// Attach stats the path and probes the file on the engine. A missing
// path yields a not-found error and an existing path the engine cannot
// parse yields an unreadable error; both fire before any check query
// runs.
func (f *File) Attach(ctx context.Context, eng *Engine) (string, error) {
	info, err := os.Stat(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", NewNotFoundError(f.Path)
	}
	if err != nil {
		return "", NewUnreadableError(f.Path, err)
	}
	if info.IsDir() {
		return "", NewUnreadableError(f.Path, errors.New("path is a directory"))
	}

	rel, err := checksql.QuotePathLiteral(f.Path)
	if err != nil {
		return "", NewUnreadableError(f.Path, err)
	}

	// Probe with LIMIT 0: forces the engine to open and bind the file
	// without reading data.
	rows, err := eng.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT 0", rel))
	if err != nil {
		return "", NewUnreadableError(f.Path, err)
	}
	closeErr := rows.Close()
	if err := errors.Join(rows.Err(), closeErr); err != nil {
		return "", NewUnreadableError(f.Path, err)
	}

	return rel, nil
}
