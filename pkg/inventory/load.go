package inventory

import (
	"context"
	"strings"

	"github.com/skumap/skumap/pkg/dataset"
	"github.com/skumap/skumap/pkg/errors"
	"github.com/skumap/skumap/pkg/logging"
)

// LoadOptions configures a snapshot load.
type LoadOptions struct {
	// Side labels the source system in logs and reports.
	Side string
	// Columns names the key, quantity, and auxiliary columns.
	Columns Columns
	// Lenient switches quantity parsing from the strict policy (a
	// present non-integer value fails the whole load) to the tolerant
	// legacy policy (unparseable values coalesce to zero).
	Lenient bool
}

// rawRecord is one pre-aggregation row.
type rawRecord struct {
	key string
	qty int
	aux string
}

// Load reads a snapshot CSV, normalizes each row, and aggregates by
// key. Rows whose key is blank after trimming are excluded. Under the
// strict policy the first unparseable quantity aborts the whole load
// with a parse error naming the row and column; no partial snapshot is
// returned.
func Load(ctx context.Context, path string, opts LoadOptions) (*Snapshot, error) {
	log := logging.FromContext(ctx)

	d, err := dataset.ReadCSV(path, dataset.ReadOptions{})
	if err != nil {
		return nil, err
	}

	keyIdx := d.ColumnIndex(opts.Columns.Key)
	if keyIdx < 0 {
		return nil, errors.NewNotFoundError("column", opts.Columns.Key)
	}
	qtyIdx := d.ColumnIndex(opts.Columns.Qty)
	if qtyIdx < 0 {
		return nil, errors.NewNotFoundError("column", opts.Columns.Qty)
	}
	auxIdx := -1
	if opts.Columns.Aux != "" {
		auxIdx = d.ColumnIndex(opts.Columns.Aux)
		if auxIdx < 0 {
			return nil, errors.NewNotFoundError("column", opts.Columns.Aux)
		}
	}

	raw := make([]rawRecord, 0, len(d.Rows))
	skipped := 0
	for i, row := range d.Rows {
		key := CleanKey(row[keyIdx])
		if key == "" {
			skipped++
			continue
		}

		var qty int
		if opts.Lenient {
			qty = ParseQtyLenient(row[qtyIdx])
		} else {
			qty, err = ParseQty(row[qtyIdx])
			if err != nil {
				return nil, &errors.ParseError{
					Format:  "csv",
					File:    path,
					Line:    i + 2, // 1-based, after the header row
					Column:  opts.Columns.Qty,
					Message: err.Error(),
					Err:     err,
				}
			}
		}

		rec := rawRecord{key: key, qty: qty}
		if auxIdx >= 0 {
			rec.aux = strings.TrimSpace(row[auxIdx])
		}
		raw = append(raw, rec)
	}

	snap := aggregate(opts.Side, raw)
	snap.RawRows = len(d.Rows)

	log.Debug().
		Str("side", opts.Side).
		Str("file", path).
		Int("raw_rows", snap.RawRows).
		Int("skipped_blank_key", skipped).
		Int("records", snap.Len()).
		Msg("Snapshot loaded")

	return snap, nil
}

// aggregate groups raw records by key: quantities are summed and the
// auxiliary attribute takes the lexicographically smallest non-empty
// value among the duplicates.
func aggregate(side string, raw []rawRecord) *Snapshot {
	records := make(map[string]Record, len(raw))
	for _, r := range raw {
		agg, ok := records[r.key]
		if !ok {
			records[r.key] = Record{Key: r.key, Qty: r.qty, Aux: r.aux}
			continue
		}
		agg.Qty += r.qty
		if r.aux != "" && (agg.Aux == "" || r.aux < agg.Aux) {
			agg.Aux = r.aux
		}
		records[r.key] = agg
	}
	return &Snapshot{Side: side, Records: records}
}
