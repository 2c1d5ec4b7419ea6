package recon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skumap/skumap/pkg/inventory"
	"github.com/skumap/skumap/pkg/recon"
)

func snapshot(side string, records ...inventory.Record) *inventory.Snapshot {
	m := make(map[string]inventory.Record, len(records))
	for _, r := range records {
		m[r.Key] = r
	}
	return &inventory.Snapshot{Side: side, Records: m, RawRows: len(records)}
}

func findRow(t *testing.T, rows []recon.Row, key string) recon.Row {
	t.Helper()
	for _, row := range rows {
		if row.Key == key {
			return row
		}
	}
	t.Fatalf("no row for key %q", key)
	return recon.Row{}
}

func TestReconcileStatuses(t *testing.T) {
	a := snapshot("a",
		inventory.Record{Key: "SKU1", Qty: 5, Aux: "S1"},
		inventory.Record{Key: "SKU2", Qty: 5, Aux: "S2"},
		inventory.Record{Key: "SKU3", Qty: 5, Aux: "S3"},
	)
	b := snapshot("b",
		inventory.Record{Key: "SKU2", Qty: 5, Aux: "ACC2"},
		inventory.Record{Key: "SKU3", Qty: 8, Aux: "ACC3"},
		inventory.Record{Key: "SKU4", Qty: 2, Aux: "ACC4"},
	)

	result := recon.Reconcile(a, b)
	require.Len(t, result.Rows, 4)

	t.Run("only in a has no b quantity and no diff", func(t *testing.T) {
		row := findRow(t, result.Rows, "SKU1")
		assert.Equal(t, recon.StatusOnlyInA, row.Status)
		require.NotNil(t, row.AQty)
		assert.Equal(t, 5, *row.AQty)
		assert.Nil(t, row.BQty)
		assert.Nil(t, row.Diff)
		assert.Equal(t, "S1", row.SupplierID)
	})

	t.Run("equal quantities match", func(t *testing.T) {
		row := findRow(t, result.Rows, "SKU2")
		assert.Equal(t, recon.StatusMatch, row.Status)
		require.NotNil(t, row.Diff)
		assert.Equal(t, 0, *row.Diff)
	})

	t.Run("mismatch diff is b minus a", func(t *testing.T) {
		row := findRow(t, result.Rows, "SKU3")
		assert.Equal(t, recon.StatusQtyMismatch, row.Status)
		require.NotNil(t, row.Diff)
		assert.Equal(t, 3, *row.Diff)
		assert.Equal(t, "S3", row.SupplierID)
		assert.Equal(t, "ACC3", row.Account)
	})

	t.Run("only in b has no a quantity", func(t *testing.T) {
		row := findRow(t, result.Rows, "SKU4")
		assert.Equal(t, recon.StatusOnlyInB, row.Status)
		assert.Nil(t, row.AQty)
		assert.Nil(t, row.Diff)
		assert.Equal(t, "ACC4", row.Account)
	})
}

func TestReconcileOrdering(t *testing.T) {
	a := snapshot("a",
		inventory.Record{Key: "Z", Qty: 1},
		inventory.Record{Key: "A", Qty: 1},
		inventory.Record{Key: "M", Qty: 2},
	)
	b := snapshot("b",
		inventory.Record{Key: "Z", Qty: 1},
		inventory.Record{Key: "A", Qty: 1},
		inventory.Record{Key: "M", Qty: 9},
	)

	result := recon.Reconcile(a, b)

	// (status, key): MATCH rows first in key order, then the mismatch.
	var got []string
	for _, row := range result.Rows {
		got = append(got, string(row.Status)+":"+row.Key)
	}
	assert.Equal(t, []string{"MATCH:A", "MATCH:Z", "QTY_MISMATCH:M"}, got)
}

func TestNonMatching(t *testing.T) {
	a := snapshot("a",
		inventory.Record{Key: "X", Qty: 1},
		inventory.Record{Key: "Y", Qty: 2},
	)
	b := snapshot("b",
		inventory.Record{Key: "X", Qty: 1},
		inventory.Record{Key: "Y", Qty: 3},
	)

	rows := recon.Reconcile(a, b).NonMatching()
	require.Len(t, rows, 1)
	assert.Equal(t, "Y", rows[0].Key)
}

func TestTopDiscrepancies(t *testing.T) {
	a := snapshot("a",
		inventory.Record{Key: "P", Qty: 10},
		inventory.Record{Key: "Q", Qty: 10},
		inventory.Record{Key: "R", Qty: 10},
		inventory.Record{Key: "S", Qty: 10},
	)
	b := snapshot("b",
		inventory.Record{Key: "P", Qty: 11},  // |diff| 1
		inventory.Record{Key: "Q", Qty: 3},   // |diff| 7
		inventory.Record{Key: "R", Qty: 17},  // |diff| 7
		inventory.Record{Key: "S", Qty: 110}, // |diff| 100
	)

	result := recon.Reconcile(a, b)

	t.Run("ordered by magnitude then key", func(t *testing.T) {
		top := result.TopDiscrepancies(0)
		var keys []string
		for _, row := range top {
			keys = append(keys, row.Key)
		}
		assert.Equal(t, []string{"S", "Q", "R", "P"}, keys)
	})

	t.Run("truncated to n", func(t *testing.T) {
		top := result.TopDiscrepancies(2)
		require.Len(t, top, 2)
		assert.Equal(t, "S", top[0].Key)
		assert.Equal(t, "Q", top[1].Key)
	})
}

func TestReconcileEndToEnd(t *testing.T) {
	a := snapshot("a",
		inventory.Record{Key: "SKU1", Qty: 10},
		inventory.Record{Key: "SKU2", Qty: 5},
	)
	b := snapshot("b",
		inventory.Record{Key: "SKU2", Qty: 5},
		inventory.Record{Key: "SKU3", Qty: 7},
	)

	result := recon.Reconcile(a, b)

	assert.Equal(t, recon.StatusOnlyInA, findRow(t, result.Rows, "SKU1").Status)
	assert.Equal(t, recon.StatusMatch, findRow(t, result.Rows, "SKU2").Status)
	assert.Equal(t, recon.StatusOnlyInB, findRow(t, result.Rows, "SKU3").Status)

	s := recon.Summarize(result)
	assert.Equal(t, 2, s.ARows)
	assert.Equal(t, 2, s.BRows)
	assert.Equal(t, 1, s.Matches)
	assert.Equal(t, 1, s.OnlyInA)
	assert.Equal(t, 1, s.OnlyInB)
	assert.Equal(t, 0, s.QtyMismatches)
}

func TestReconcileEmptySides(t *testing.T) {
	t.Run("both empty", func(t *testing.T) {
		result := recon.Reconcile(snapshot("a"), snapshot("b"))
		assert.Empty(t, result.Rows)
	})

	t.Run("one side empty", func(t *testing.T) {
		a := snapshot("a", inventory.Record{Key: "X", Qty: 4})
		result := recon.Reconcile(a, snapshot("b"))
		require.Len(t, result.Rows, 1)
		assert.Equal(t, recon.StatusOnlyInA, result.Rows[0].Status)
	})
}
