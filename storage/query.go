package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// DuplicateKeyError reports an insert that violated a primary key or
// uniqueness constraint. The prior row is left unchanged; this layer never
// upserts.
type DuplicateKeyError struct {
	Table string
	Err   error
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key in table %s: %v", e.Table, e.Err)
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

// field is one column/value pair. Statement builders preserve the order
// fields are given in.
type field struct {
	column string
	value  any
}

type fields []field

// active drops the pairs whose value is falsy. An empty string, zero or nil
// filter means "match any value for this column", so callers cannot filter
// on a literal falsy value through this path.
func (fs fields) active() fields {
	out := make(fields, 0, len(fs))
	for _, f := range fs {
		if isFalsy(f.value) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func isFalsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case int:
		return val == 0
	case int64:
		return val == 0
	case float64:
		return val == 0
	case bool:
		return !val
	}
	return false
}

// createTable issues CREATE TABLE IF NOT EXISTS with the given column and
// constraint definitions. Never fails on rerun.
func (s *Store) createTable(table string, defs []string) error {
	stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table, strings.Join(defs, ", "))
	_, err := s.db.Exec(stmt)
	return err
}

// insertRow inserts a single row. All values are bound as parameters.
func (s *Store) insertRow(table string, fs fields) error {
	cols := make([]string, len(fs))
	marks := make([]string, len(fs))
	args := make([]any, len(fs))
	for i, f := range fs {
		cols[i] = f.column
		marks[i] = "?"
		args[i] = f.value
	}
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(marks, ", "))

	if _, err := s.db.Exec(stmt, args...); err != nil {
		var serr sqlite3.Error
		if errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint {
			return &DuplicateKeyError{Table: table, Err: err}
		}
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

// selectRows selects the rows of a table matching the given filters, in
// storage-native order. Falsy filter values are dropped. A limit of zero
// means no limit.
func (s *Store) selectRows(table string, filters fields, limit int) (*sqlx.Rows, error) {
	active := filters.active()

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT * FROM %s", table)
	args := make([]any, 0, len(active))
	if len(active) > 0 {
		clauses := make([]string, len(active))
		for i, f := range active {
			clauses[i] = f.column + " = ?"
			args = append(args, f.value)
		}
		fmt.Fprintf(&sb, " WHERE %s", strings.Join(clauses, " AND "))
	}
	if limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", limit)
	}

	rows, err := s.db.Queryx(sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select from %s: %w", table, err)
	}
	return rows, nil
}

// updateRows sets one column across all rows matching the given filters,
// with the same falsy-drop convention as selectRows. Callers do not depend
// on the affected-row count.
func (s *Store) updateRows(table string, column string, newValue any, filters fields, limit int) error {
	active := filters.active()

	var sb strings.Builder
	fmt.Fprintf(&sb, "UPDATE %s SET %s = ?", table, column)
	args := []any{newValue}
	if len(active) > 0 {
		clauses := make([]string, len(active))
		for i, f := range active {
			clauses[i] = f.column + " = ?"
			args = append(args, f.value)
		}
		fmt.Fprintf(&sb, " WHERE %s", strings.Join(clauses, " AND "))
	}
	if limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", limit)
	}

	if _, err := s.db.Exec(sb.String(), args...); err != nil {
		return fmt.Errorf("failed to update %s: %w", table, err)
	}
	return nil
}
