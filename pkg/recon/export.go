package recon

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/skumap/skumap/pkg/dataset"
)

// dateTagLayout is the dd_mm_yyyy run-date tag used in export names.
const dateTagLayout = "02_01_2006"

// exportHeaders is the column layout of every reconciliation export.
var exportHeaders = []string{"sku", "a_qty", "b_qty", "qty_diff", "supplier_id", "account", "status"}

// Exports names the files written by ExportAll.
type Exports struct {
	Mismatches string
	OnlyInA    string
	OnlyInB    string
}

// WriteRowsCSV writes reconciliation rows to a CSV file in the detail
// report layout. Absent quantities become empty cells, not zeros.
func WriteRowsCSV(path string, rows []Row) error {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.Key,
			formatQty(row.AQty),
			formatQty(row.BQty),
			formatQty(row.Diff),
			row.SupplierID,
			row.Account,
			string(row.Status),
		})
	}
	return dataset.New(exportHeaders, records).WriteCSV(path)
}

// ExportAll writes the per-status export files into dir, tagged with
// the run date: quantity mismatches ordered by largest discrepancy,
// and the two only-in sets in key order.
func ExportAll(dir string, r *Result, now time.Time) (*Exports, error) {
	tag := now.Format(dateTagLayout)
	out := &Exports{
		Mismatches: filepath.Join(dir, fmt.Sprintf("stock_mismatches_%s.csv", tag)),
		OnlyInA:    filepath.Join(dir, fmt.Sprintf("only_in_a_%s.csv", tag)),
		OnlyInB:    filepath.Join(dir, fmt.Sprintf("only_in_b_%s.csv", tag)),
	}

	if err := WriteRowsCSV(out.Mismatches, r.TopDiscrepancies(0)); err != nil {
		return nil, err
	}
	if err := WriteRowsCSV(out.OnlyInA, r.ByStatus(StatusOnlyInA)); err != nil {
		return nil, err
	}
	if err := WriteRowsCSV(out.OnlyInB, r.ByStatus(StatusOnlyInB)); err != nil {
		return nil, err
	}
	return out, nil
}

// formatQty renders an optional quantity; nil is an empty cell.
func formatQty(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
