package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skumap/skumap/pkg/recon"
)

func intPtr(v int) *int { return &v }

func TestReconRowsToTableData(t *testing.T) {
	rows := []recon.Row{
		{
			Key:        "SKU1",
			AQty:       intPtr(10),
			BQty:       intPtr(7),
			Diff:       intPtr(-3),
			SupplierID: "SUP-1",
			Status:     recon.StatusQtyMismatch,
		},
		{
			Key:    "SKU2",
			BQty:   intPtr(4),
			Status: recon.StatusOnlyInB,
		},
	}

	data := ReconRowsToTableData(rows)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"SKU1", "10", "7", "-3", "SUP-1", "-", "QTY_MISMATCH"}, data.Rows[0])
	assert.Equal(t, []string{"SKU2", "-", "4", "-", "-", "-", "ONLY_IN_B"}, data.Rows[1])
	assert.Len(t, data.ColumnAlignment, len(data.Headers))
}

func TestSummaryToTableData(t *testing.T) {
	avg := 2.5
	data := SummaryToTableData(&recon.Summary{
		ARows:         3,
		BRows:         4,
		QtyMismatches: 2,
		SumAbsDiff:    5,
		AvgAbsDiff:    &avg,
		AInBOut:       1,
	})

	assert.Contains(t, data.Rows, []string{"Avg |diff|", "2.50"})
	assert.Contains(t, data.Rows, []string{"A rows", "3"})

	// The drift counters cover keys present on both sides where one
	// side has stock and the other does not.
	assert.Contains(t, data.Rows, []string{"In stock in A, out in B", "1"})
	assert.Contains(t, data.Rows, []string{"In stock in B, out in A", "0"})
}

func TestSummaryToTableDataNilAvg(t *testing.T) {
	data := SummaryToTableData(&recon.Summary{})
	assert.Contains(t, data.Rows, []string{"Avg |diff|", "-"})
}
