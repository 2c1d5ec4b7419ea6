// Package dataset provides an in-memory rectangular dataset: one header
// row plus zero or more data rows. It is the disposable working copy the
// prep pipeline transforms; source files are never modified.
package dataset

import (
	"strings"

	"github.com/skumap/skumap/pkg/errors"
	"github.com/skumap/skumap/pkg/header"
)

// Dataset is a rectangular table with a header row. Rows are padded to
// the header width on load, so every row has len(Headers) cells.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

// New creates a dataset from a header row and data rows, padding or
// truncating rows to the header width.
func New(headers []string, rows [][]string) *Dataset {
	d := &Dataset{Headers: headers}
	d.Rows = make([][]string, 0, len(rows))
	for _, row := range rows {
		d.Rows = append(d.Rows, pad(row, len(headers)))
	}
	return d
}

// NormalizeHeaders replaces every header with its canonical snake-case
// token and returns the normalized header list.
func (d *Dataset) NormalizeHeaders() []string {
	d.Headers = header.NormalizeAll(d.Headers)
	return d.Headers
}

// ColumnIndex returns the index of the named column, or -1.
func (d *Dataset) ColumnIndex(name string) int {
	for i, h := range d.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Select returns a new dataset containing only the named columns. The
// original left-to-right column order is preserved regardless of the
// order names are given in. Every name must be an existing header.
// An empty selection yields a dataset with no columns and no cells,
// which exports as an empty header row.
func (d *Dataset) Select(names []string) (*Dataset, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		if d.ColumnIndex(n) < 0 {
			return nil, errors.NewValidationError("columns", n,
				"selection must be a subset of the header set, "+n+" is not a header")
		}
		want[n] = true
	}

	var keep []int
	for i, h := range d.Headers {
		if want[h] {
			keep = append(keep, i)
		}
	}

	out := &Dataset{
		Headers: make([]string, 0, len(keep)),
		Rows:    make([][]string, 0, len(d.Rows)),
	}
	for _, i := range keep {
		out.Headers = append(out.Headers, d.Headers[i])
	}
	for _, row := range d.Rows {
		cells := make([]string, 0, len(keep))
		for _, i := range keep {
			cells = append(cells, row[i])
		}
		out.Rows = append(out.Rows, cells)
	}
	return out, nil
}

// Deduplicate removes exact-duplicate rows (all cells equal), keeping
// the first occurrence and preserving row order. It returns the number
// of rows removed.
func (d *Dataset) Deduplicate() int {
	seen := make(map[string]bool, len(d.Rows))
	kept := d.Rows[:0]
	removed := 0
	for _, row := range d.Rows {
		key := strings.Join(row, "\x1f")
		if seen[key] {
			removed++
			continue
		}
		seen[key] = true
		kept = append(kept, row)
	}
	d.Rows = kept
	return removed
}

// pad returns row extended with empty cells (or truncated) to width n.
func pad(row []string, n int) []string {
	if len(row) == n {
		return row
	}
	out := make([]string, n)
	copy(out, row)
	return out
}
