package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// table is a CSV read with every column as nullable text. Typing happens in
// the mappers so that one malformed cell blanks a field instead of failing
// the whole file.
type table struct {
	cols map[string]int
	rows [][]sql.NullString
}

func readCSV(ctx context.Context, db *sql.DB, path string) (*table, error) {
	query := fmt.Sprintf(
		"SELECT * FROM read_csv_auto('%s', header=true, all_varchar=true, delim=',', quote='\"', escape='\"')",
		strings.ReplaceAll(path, "'", "''"),
	)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	t := &table{cols: make(map[string]int, len(columns))}
	for i, c := range columns {
		t.cols[strings.TrimSpace(c)] = i
	}

	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		t.rows = append(t.rows, values)
	}
	return t, rows.Err()
}

func (t *table) each(fn func(r row)) {
	for _, vals := range t.rows {
		fn(row{cols: t.cols, vals: vals})
	}
}

type row struct {
	cols map[string]int
	vals []sql.NullString
}

// str returns the trimmed cell, or "" when the cell is null or the column
// does not exist.
func (r row) str(col string) string {
	i, ok := r.cols[col]
	if !ok || !r.vals[i].Valid {
		return ""
	}
	return strings.TrimSpace(r.vals[i].String)
}

func (r row) float(col string) float64 {
	f, _ := r.floatOK(col)
	return f
}

func (r row) floatOK(col string) (float64, bool) {
	f, err := strconv.ParseFloat(r.str(col), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (r row) floatPtr(col string) *float64 {
	f, ok := r.floatOK(col)
	if !ok {
		return nil
	}
	return &f
}

// int accepts "3" and "3.0".
func (r row) int(col string) int {
	return int(r.float(col))
}

func (r row) bool(col string) bool {
	switch strings.ToLower(r.str(col)) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
	"2006-01-02 15:04:05-07:00",
	time.DateOnly,
}

// time returns the zero time when the cell is empty or unparseable.
func (r row) time(col string) time.Time {
	s := r.str(col)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
