// Package recon compares two normalized inventory snapshots by SKU and
// classifies every key in the union as matched, quantity-mismatched, or
// present on one side only. It emulates a full outer join with a single
// pass over two key-indexed maps, so it stays O(|A| + |B|) no matter how
// the snapshots overlap.
package recon

import (
	"sort"

	"github.com/skumap/skumap/pkg/inventory"
)

// Status classifies one reconciliation row.
type Status string

// Reconciliation statuses.
const (
	StatusMatch       Status = "MATCH"
	StatusQtyMismatch Status = "QTY_MISMATCH"
	StatusOnlyInA     Status = "ONLY_IN_A"
	StatusOnlyInB     Status = "ONLY_IN_B"
)

// statusRank fixes the report ordering of statuses.
var statusRank = map[Status]int{
	StatusMatch:       0,
	StatusQtyMismatch: 1,
	StatusOnlyInA:     2,
	StatusOnlyInB:     3,
}

// Row is one computed comparison record for a unique key across both
// inventories. Quantities and the difference are nil when undefined:
// the B-side quantity of an ONLY_IN_A key is absent, not zero.
type Row struct {
	Key        string `json:"sku"`
	AQty       *int   `json:"a_qty"`
	BQty       *int   `json:"b_qty"`
	Diff       *int   `json:"qty_diff"`
	SupplierID string `json:"supplier_id,omitempty"`
	Account    string `json:"account,omitempty"`
	Status     Status `json:"status"`
}

// Result holds the reconciliation rows, sorted by (status, key), plus
// the snapshots they were computed from. Rows are derived views: they
// are recomputed every run and never persisted as independent entities.
type Result struct {
	Rows []Row
	A    *inventory.Snapshot
	B    *inventory.Snapshot
}

// Reconcile compares snapshot A against snapshot B over the union of
// their keys.
func Reconcile(a, b *inventory.Snapshot) *Result {
	rows := make([]Row, 0, len(a.Records)+len(b.Records))

	for key, ra := range a.Records {
		row := Row{Key: key, AQty: intPtr(ra.Qty), SupplierID: ra.Aux}
		if rb, ok := b.Records[key]; ok {
			row.BQty = intPtr(rb.Qty)
			row.Account = rb.Aux
			row.Diff = intPtr(rb.Qty - ra.Qty)
			if ra.Qty == rb.Qty {
				row.Status = StatusMatch
			} else {
				row.Status = StatusQtyMismatch
			}
		} else {
			row.Status = StatusOnlyInA
		}
		rows = append(rows, row)
	}

	// Right-only complement: keys in B that A never visited.
	for key, rb := range b.Records {
		if _, ok := a.Records[key]; ok {
			continue
		}
		rows = append(rows, Row{
			Key:     key,
			BQty:    intPtr(rb.Qty),
			Account: rb.Aux,
			Status:  StatusOnlyInB,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Status != rows[j].Status {
			return statusRank[rows[i].Status] < statusRank[rows[j].Status]
		}
		return rows[i].Key < rows[j].Key
	})

	return &Result{Rows: rows, A: a, B: b}
}

// NonMatching returns the rows whose status is not MATCH, preserving
// the (status, key) order of the detail report.
func (r *Result) NonMatching() []Row {
	out := make([]Row, 0, len(r.Rows))
	for _, row := range r.Rows {
		if row.Status != StatusMatch {
			out = append(out, row)
		}
	}
	return out
}

// ByStatus returns the rows with the given status in key order.
func (r *Result) ByStatus(status Status) []Row {
	var out []Row
	for _, row := range r.Rows {
		if row.Status == status {
			out = append(out, row)
		}
	}
	return out
}

// TopDiscrepancies returns up to n QTY_MISMATCH rows ordered by
// absolute difference descending, ties broken by key.
func (r *Result) TopDiscrepancies(n int) []Row {
	mismatches := r.ByStatus(StatusQtyMismatch)
	sort.Slice(mismatches, func(i, j int) bool {
		di, dj := abs(*mismatches[i].Diff), abs(*mismatches[j].Diff)
		if di != dj {
			return di > dj
		}
		return mismatches[i].Key < mismatches[j].Key
	})
	if n > 0 && len(mismatches) > n {
		mismatches = mismatches[:n]
	}
	return mismatches
}

func intPtr(n int) *int {
	return &n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
