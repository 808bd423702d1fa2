// Package tablekit implements the generic grid behavior shared by the ETF
// spreadsheet and the movers list: stable column sorting, substring row
// filtering, and column-visibility masks.
package tablekit

import (
	"sort"
	"strconv"
	"strings"
)

// Column describes one grid column: how to render its cell for filtering and
// how to order two rows by it.
type Column[T any] struct {
	Key  string
	Cell func(T) string
	Less func(a, b T) bool
}

// StringColumn builds a column ordered lexicographically by a string field.
func StringColumn[T any](key string, cell func(T) string) Column[T] {
	return Column[T]{
		Key:  key,
		Cell: cell,
		Less: func(a, b T) bool { return cell(a) < cell(b) },
	}
}

// NumberColumn builds a column ordered by a numeric field.
func NumberColumn[T any](key string, value func(T) float64) Column[T] {
	return Column[T]{
		Key:  key,
		Cell: func(row T) string { return strconv.FormatFloat(value(row), 'f', -1, 64) },
		Less: func(a, b T) bool { return value(a) < value(b) },
	}
}

// Table is a reusable sort/filter/visibility helper over a fixed column set.
type Table[T any] struct {
	columns []Column[T]
	byKey   map[string]Column[T]
}

// New builds a Table. The first column is the fallback sort key.
func New[T any](columns ...Column[T]) *Table[T] {
	byKey := make(map[string]Column[T], len(columns))
	for _, c := range columns {
		byKey[c.Key] = c
	}
	return &Table[T]{columns: columns, byKey: byKey}
}

// Sort orders rows in place by the named column. Unknown keys fall back to
// the first registered column; dir "desc" reverses. The sort is stable so
// equal cells keep their incoming order.
func (t *Table[T]) Sort(rows []T, key, dir string) {
	if len(t.columns) == 0 {
		return
	}
	col, ok := t.byKey[key]
	if !ok {
		col = t.columns[0]
	}

	desc := strings.EqualFold(dir, "desc")
	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return col.Less(rows[j], rows[i])
		}
		return col.Less(rows[i], rows[j])
	})
}

// Filter returns the rows whose cells contain the query, case-insensitively.
// An empty query returns the input unchanged.
func (t *Table[T]) Filter(rows []T, query string) []T {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return rows
	}

	var out []T
	for _, row := range rows {
		for _, col := range t.columns {
			if strings.Contains(strings.ToLower(col.Cell(row)), query) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// Keys returns all registered column keys in declaration order.
func (t *Table[T]) Keys() []string {
	keys := make([]string, len(t.columns))
	for i, c := range t.columns {
		keys[i] = c.Key
	}
	return keys
}

// VisibleColumns resolves a requested visibility list against the registered
// columns: unknown keys are dropped, an empty request means "all columns".
func (t *Table[T]) VisibleColumns(requested []string) []string {
	if len(requested) == 0 {
		return t.Keys()
	}
	var out []string
	for _, key := range requested {
		if _, ok := t.byKey[key]; ok {
			out = append(out, key)
		}
	}
	if len(out) == 0 {
		return t.Keys()
	}
	return out
}
