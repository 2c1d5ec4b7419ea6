// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"sort"
	"strconv"

	"github.com/skumap/skumap/pkg/analyze"
	"github.com/skumap/skumap/pkg/genimport"
	"github.com/skumap/skumap/pkg/recon"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// ReconRowsToTableData converts reconciliation rows to table format.
func ReconRowsToTableData(rows []recon.Row) Data {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Key,
			formatQty(r.AQty),
			formatQty(r.BQty),
			formatQty(r.Diff),
			orDash(r.SupplierID),
			orDash(r.Account),
			string(r.Status),
		})
	}

	return Data{
		Headers: []string{"SKU", "A Qty", "B Qty", "Diff", "Supplier", "Account", "Status"},
		Rows:    out,
		ColumnAlignment: []Align{
			AlignLeft, AlignRight, AlignRight, AlignRight,
			AlignLeft, AlignLeft, AlignLeft,
		},
	}
}

// SummaryToTableData converts a reconciliation summary to a key-value
// table.
func SummaryToTableData(s *recon.Summary) Data {
	rows := [][]string{
		{"A rows", strconv.Itoa(s.ARows)},
		{"B rows", strconv.Itoa(s.BRows)},
		{"Matches", strconv.Itoa(s.Matches)},
		{"Qty mismatches", strconv.Itoa(s.QtyMismatches)},
		{"Only in A", strconv.Itoa(s.OnlyInA)},
		{"Only in B", strconv.Itoa(s.OnlyInB)},
		{"Total A qty", strconv.Itoa(s.TotalAQty)},
		{"Total B qty", strconv.Itoa(s.TotalBQty)},
		{"Sum |diff|", strconv.Itoa(s.SumAbsDiff)},
		{"Avg |diff|", formatAvg(s.AvgAbsDiff)},
		{"In stock in A, out in B", strconv.Itoa(s.AInBOut)},
		{"In stock in B, out in A", strconv.Itoa(s.BInAOut)},
	}

	return Data{
		Headers:         []string{"Metric", "Value"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// AnalyzeReportToTableData converts a stock analysis report to count
// rows.
func AnalyzeReportToTableData(r *analyze.Report) Data {
	rows := make([][]string, 0, len(r.StatusCounts)+len(r.ValidationCounts))
	for _, key := range sortedKeys(r.StatusCounts) {
		rows = append(rows, []string{"status", key, strconv.Itoa(r.StatusCounts[key])})
	}
	for _, key := range sortedKeys(r.ValidationCounts) {
		rows = append(rows, []string{"validation", key, strconv.Itoa(r.ValidationCounts[key])})
	}

	return Data{
		Headers:         []string{"Kind", "Value", "Count"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignRight},
	}
}

// ImportStatsToTableData converts import generation stats to a
// key-value table.
func ImportStatsToTableData(s *genimport.Stats) Data {
	rows := [][]string{
		{"Total SKUs", strconv.Itoa(s.TotalSKUs)},
		{"In stock", strconv.Itoa(s.InStockSKUs)},
		{"Out of stock", strconv.Itoa(s.OutOfStockSKUs)},
		{"Source codes", strconv.Itoa(s.SourceCodes)},
		{"Import rows", strconv.Itoa(s.Rows)},
		{"Parts", strconv.Itoa(len(s.Parts))},
	}

	return Data{
		Headers:         []string{"Metric", "Value"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

func formatQty(q *int) string {
	if q == nil {
		return "-"
	}
	return strconv.Itoa(*q)
}

func formatAvg(avg *float64) string {
	if avg == nil {
		return "-"
	}
	return strconv.FormatFloat(*avg, 'f', 2, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
