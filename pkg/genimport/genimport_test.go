package genimport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skumap/skumap/pkg/dataset"
	"github.com/skumap/skumap/pkg/errors"
)

func TestGenerate(t *testing.T) {
	d := dataset.New(
		[]string{"key", "free_stock_tgt"},
		[][]string{
			{"ABC-1 | supplier_a", "5"},
			{"DEF-2", "0"},
			{"GHI-3", "n/a"},
		},
	)

	rows, err := Generate(d, Options{SKUColumn: "key", QtyColumn: "free_stock_tgt"})
	require.NoError(t, err)
	require.Len(t, rows, 6)

	assert.Equal(t, Row{SKU: "ABC-1", StockStatus: 1, SourceCode: "pos_337", Qty: 5}, rows[0])
	assert.Equal(t, Row{SKU: "ABC-1", StockStatus: 1, SourceCode: "src_virtualstock", Qty: 5}, rows[1])
	assert.Equal(t, Row{SKU: "DEF-2", StockStatus: 0, SourceCode: "pos_337", Qty: 0}, rows[2])
	// Unparseable quantities fall back to zero stock.
	assert.Equal(t, Row{SKU: "GHI-3", StockStatus: 0, SourceCode: "pos_337", Qty: 0}, rows[4])
}

func TestGenerateRawSKU(t *testing.T) {
	d := dataset.New(
		[]string{"key", "qty"},
		[][]string{{"ABC-1 | supplier_a", "2"}},
	)

	rows, err := Generate(d, Options{
		SKUColumn:   "key",
		QtyColumn:   "qty",
		RawSKU:      true,
		SourceCodes: []string{"pos_1"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ABC-1 | supplier_a", rows[0].SKU)
}

func TestGenerateMissingColumn(t *testing.T) {
	d := dataset.New([]string{"key"}, nil)

	_, err := Generate(d, Options{SKUColumn: "key", QtyColumn: "qty"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestRunChunking(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "stock_export.csv")
	content := "key,free_stock_tgt\n"
	content += "A-1,1\nA-2,2\nA-3,0\n"
	require.NoError(t, os.WriteFile(src, []byte(content), 0o644))

	stats, err := Run(Options{
		Source:      src,
		OutputDir:   dir,
		SKUColumn:   "key",
		QtyColumn:   "free_stock_tgt",
		SourceCodes: []string{"pos_337", "src_virtualstock"},
		ChunkSize:   4,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalSKUs)
	assert.Equal(t, 2, stats.InStockSKUs)
	assert.Equal(t, 1, stats.OutOfStockSKUs)
	assert.Equal(t, 2, stats.SourceCodes)
	assert.Equal(t, 6, stats.Rows)
	require.Equal(t, []string{
		filepath.Join(dir, "stock_export_m2_import_part1.csv"),
		filepath.Join(dir, "stock_export_m2_import_part2.csv"),
	}, stats.Parts)

	first, err := os.ReadFile(stats.Parts[0])
	require.NoError(t, err)
	assert.Equal(t,
		"sku,stock_status,source_code,qty\n"+
			"A-1,1,pos_337,1\n"+
			"A-1,1,src_virtualstock,1\n"+
			"A-2,1,pos_337,2\n"+
			"A-2,1,src_virtualstock,2\n",
		string(first))

	second, err := os.ReadFile(stats.Parts[1])
	require.NoError(t, err)
	assert.Equal(t,
		"sku,stock_status,source_code,qty\n"+
			"A-3,0,pos_337,0\n"+
			"A-3,0,src_virtualstock,0\n",
		string(second))
}
