// Package genimport turns a stock export into storefront import files.
// Each input row fans out into one row per source code, carrying the
// sku, a binary stock status, the source code, and the quantity. The
// result is written as chunked CSV parts so each file stays below the
// import size limit of the storefront.
package genimport

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/skumap/skumap/pkg/dataset"
	"github.com/skumap/skumap/pkg/errors"
	"github.com/skumap/skumap/pkg/logging"
)

// DefaultSourceCodes are the stock sources imports target when none
// are given.
var DefaultSourceCodes = []string{"pos_337", "src_virtualstock"}

// DefaultChunkSize is the number of import rows per output part.
const DefaultChunkSize = 1000

var importHeaders = []string{"sku", "stock_status", "source_code", "qty"}

// Options configures an import generation run.
type Options struct {
	// Source is the input CSV.
	Source string
	// OutputDir receives the generated parts.
	OutputDir string

	// SKUColumn and QtyColumn name the input columns.
	SKUColumn string
	QtyColumn string

	// RawSKU keeps the sku column value as-is. By default a
	// composite key such as "ABC-1|supplier" is cut at the first
	// "|" and trimmed.
	RawSKU bool

	// SourceCodes overrides DefaultSourceCodes.
	SourceCodes []string

	// ChunkSize overrides DefaultChunkSize. Values below one fall
	// back to the default.
	ChunkSize int
}

// Row is a single generated import row.
type Row struct {
	SKU         string
	StockStatus int
	SourceCode  string
	Qty         float64
}

// Stats summarizes a generation run.
type Stats struct {
	TotalSKUs      int      `json:"total_skus"`
	InStockSKUs    int      `json:"in_stock_skus"`
	OutOfStockSKUs int      `json:"out_of_stock_skus"`
	SourceCodes    int      `json:"source_codes"`
	Rows           int      `json:"rows"`
	Parts          []string `json:"parts"`
}

// Generate builds the import rows for a stock export without writing
// anything.
func Generate(d *dataset.Dataset, opts Options) ([]Row, error) {
	skuIdx := d.ColumnIndex(opts.SKUColumn)
	if skuIdx < 0 {
		return nil, errors.NewNotFoundError("column", opts.SKUColumn)
	}
	qtyIdx := d.ColumnIndex(opts.QtyColumn)
	if qtyIdx < 0 {
		return nil, errors.NewNotFoundError("column", opts.QtyColumn)
	}

	codes := opts.SourceCodes
	if len(codes) == 0 {
		codes = DefaultSourceCodes
	}

	rows := make([]Row, 0, len(d.Rows)*len(codes))
	for _, row := range d.Rows {
		sku := row[skuIdx]
		if !opts.RawSKU {
			sku = strings.TrimSpace(strings.SplitN(sku, "|", 2)[0])
		}

		qty, err := strconv.ParseFloat(strings.TrimSpace(row[qtyIdx]), 64)
		status := 0
		if err != nil {
			qty = 0
		} else if qty > 0 {
			status = 1
		}

		for _, code := range codes {
			rows = append(rows, Row{
				SKU:         sku,
				StockStatus: status,
				SourceCode:  code,
				Qty:         qty,
			})
		}
	}
	return rows, nil
}

// Run reads the source CSV, generates the import rows, and writes the
// chunked parts.
func Run(opts Options) (*Stats, error) {
	d, err := dataset.ReadCSV(opts.Source, dataset.ReadOptions{})
	if err != nil {
		return nil, err
	}

	rows, err := Generate(d, opts)
	if err != nil {
		return nil, err
	}

	chunkSize := opts.ChunkSize
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	codes := opts.SourceCodes
	if len(codes) == 0 {
		codes = DefaultSourceCodes
	}

	base := strings.TrimSuffix(filepath.Base(opts.Source), filepath.Ext(opts.Source))
	var parts []string
	for start := 0; start < len(rows); start += chunkSize {
		end := start + chunkSize
		if end > len(rows) {
			end = len(rows)
		}
		name := fmt.Sprintf("%s_m2_import_part%d.csv", base, start/chunkSize+1)
		path := filepath.Join(opts.OutputDir, name)
		if err := writePart(path, rows[start:end]); err != nil {
			return nil, err
		}
		parts = append(parts, path)
	}

	stats := summarize(rows, codes)
	stats.Parts = parts

	logging.Default().Info().
		Str("pipeline", "genimport").
		Int("rows", stats.Rows).
		Int("parts", len(parts)).
		Msg("import files written")

	return stats, nil
}

func writePart(path string, rows []Row) error {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = []string{
			r.SKU,
			strconv.Itoa(r.StockStatus),
			r.SourceCode,
			strconv.FormatFloat(r.Qty, 'f', -1, 64),
		}
	}
	return dataset.New(importHeaders, records).WriteCSV(path)
}

func summarize(rows []Row, codes []string) *Stats {
	seen := map[string]bool{}
	inStock := map[string]bool{}
	outStock := map[string]bool{}
	for _, r := range rows {
		seen[r.SKU] = true
		if r.StockStatus == 1 {
			inStock[r.SKU] = true
		} else {
			outStock[r.SKU] = true
		}
	}
	return &Stats{
		TotalSKUs:      len(seen),
		InStockSKUs:    len(inStock),
		OutOfStockSKUs: len(outStock),
		SourceCodes:    len(codes),
		Rows:           len(rows),
	}
}
