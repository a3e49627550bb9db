// Package store implements the tabular-file persistence layer. Each dataset
// lives in one CSV file with a fixed header row; every operation is a full
// read of the file and, for writes, a full rewrite. A store value is the
// sole owner of its backing file and serializes access with one mutex held
// for the whole read-modify-write sequence.
package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrBlankName is returned when a menu item with a blank name is added.
var ErrBlankName = errors.New("menu item name is blank")

// table is the shared file-access core of the catalog and ledger stores.
// Methods are not safe for concurrent use; the owning store locks mu.
type table struct {
	mu     sync.Mutex
	path   string
	header []string
}

// ensure creates the backing file with a header-only schema if it does not
// exist. It never modifies an existing file.
func (t *table) ensure() error {
	if _, err := os.Stat(t.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", t.path, err)
	}
	if dir := filepath.Dir(t.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return t.write(nil)
}

// read returns all data rows, header excluded. Rows keep whatever field
// count the file has; callers pad or truncate as needed.
func (t *table) read() ([][]string, error) {
	if err := t.ensure(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(t.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", t.path, err)
	}
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	// Staff hand-edit these files; a stray quote must degrade to an odd
	// row, not make every load fail.
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", t.path, err)
	}
	if len(records) <= 1 {
		return nil, nil
	}
	return records[1:], nil
}

// write truncates the file and rewrites the header plus the given rows.
// The rewrite is in place, not via a temp file; a crash mid-write can leave
// a partial file.
func (t *table) write(rows [][]string) error {
	f, err := os.Create(t.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", t.path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(t.header); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to flush %s: %w", t.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", t.path, err)
	}
	return nil
}

// raw returns the backing file's bytes, creating the empty schema first if
// the file is absent.
func (t *table) raw() ([]byte, error) {
	if err := t.ensure(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(t.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", t.path, err)
	}
	return data, nil
}

// pad grows row to n fields, filling with empty strings.
func pad(row []string, n int) []string {
	if len(row) >= n {
		return row
	}
	out := make([]string, n)
	copy(out, row)
	return out
}

// blank reports whether every field of the row is empty.
func blank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
