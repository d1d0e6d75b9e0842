// Package results parses benchmark CSV result files into ordered rows.
// The first CSV record is the header; every following record becomes one
// Row keyed by header name, preserving column order.
package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Field is a single named value from a result row.
type Field struct {
	Name  string
	Value string
}

// Row is one CSV data row keyed by column header. Keys keep the CSV column
// order; a duplicate header name overwrites the earlier value (last wins)
// without repeating the key.
type Row struct {
	keys   []string
	values map[string]string
}

// NewRow creates an empty row.
func NewRow() *Row {
	return &Row{values: make(map[string]string)}
}

// Set stores a value under name, appending the key on first sight.
func (r *Row) Set(name, value string) {
	if _, ok := r.values[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.values[name] = value
}

// Get returns the value stored under name.
func (r *Row) Get(name string) (string, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Delete removes name from the row and reports whether it was present.
func (r *Row) Delete(name string) bool {
	if _, ok := r.values[name]; !ok {
		return false
	}
	delete(r.values, name)
	for i, k := range r.keys {
		if k == name {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of fields in the row.
func (r *Row) Len() int {
	return len(r.keys)
}

// Fields returns the row's fields in column order. Templates iterate over
// this to render metric tables.
func (r *Row) Fields() []Field {
	fields := make([]Field, 0, len(r.keys))
	for _, k := range r.keys {
		fields = append(fields, Field{Name: k, Value: r.values[k]})
	}
	return fields
}

// ParseFile reads a comma-delimited UTF-8 CSV file and returns one Row per
// data record, in file order. The record length is pinned to the header
// length, so a short or long data row fails parsing instead of silently
// shifting columns.
func ParseFile(path string) ([]*Row, error) {
	f, err := os.Open(path) //nolint:gosec // G304: results path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("opening results file: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header from %s: %w", path, err)
	}

	var rows []*Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record from %s: %w", path, err)
		}

		row := NewRow()
		for i, name := range header {
			row.Set(name, record[i])
		}
		rows = append(rows, row)
	}

	return rows, nil
}
