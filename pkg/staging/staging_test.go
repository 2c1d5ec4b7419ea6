package staging_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/skumap/skumap/pkg/inventory"
	"github.com/skumap/skumap/pkg/staging"
)

func snapshot(side string, records ...inventory.Record) *inventory.Snapshot {
	m := make(map[string]inventory.Record, len(records))
	for _, r := range records {
		m[r.Key] = r
	}
	return &inventory.Snapshot{Side: side, Records: m}
}

func TestWriteSnapshots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.db")
	ctx := context.Background()

	a := snapshot("a",
		inventory.Record{Key: "SKU1", Qty: 10, Aux: "S1"},
		inventory.Record{Key: "SKU2", Qty: 5},
	)
	b := snapshot("b", inventory.Record{Key: "SKU2", Qty: 5, Aux: "ACC"})

	require.NoError(t, staging.WriteSnapshots(ctx, path, a, b))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	t.Run("a_norm rows", func(t *testing.T) {
		var count int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM a_norm`).Scan(&count))
		assert.Equal(t, 2, count)

		var qty int
		var supplier sql.NullString
		require.NoError(t, db.QueryRow(`SELECT qty, supplier_id FROM a_norm WHERE sku = 'SKU1'`).Scan(&qty, &supplier))
		assert.Equal(t, 10, qty)
		assert.Equal(t, "S1", supplier.String)

		// Empty aux is stored as NULL, not empty string.
		require.NoError(t, db.QueryRow(`SELECT qty, supplier_id FROM a_norm WHERE sku = 'SKU2'`).Scan(&qty, &supplier))
		assert.False(t, supplier.Valid)
	})

	t.Run("b_norm rows", func(t *testing.T) {
		var account string
		require.NoError(t, db.QueryRow(`SELECT account FROM b_norm WHERE sku = 'SKU2'`).Scan(&account))
		assert.Equal(t, "ACC", account)
	})
}

func TestWriteSnapshotsReplacesPriorRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.db")
	ctx := context.Background()

	first := snapshot("a", inventory.Record{Key: "OLD", Qty: 1})
	require.NoError(t, staging.WriteSnapshots(ctx, path, first, snapshot("b")))

	second := snapshot("a", inventory.Record{Key: "NEW", Qty: 2})
	require.NoError(t, staging.WriteSnapshots(ctx, path, second, snapshot("b")))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM a_norm WHERE sku = 'OLD'`).Scan(&count))
	assert.Equal(t, 0, count)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM a_norm WHERE sku = 'NEW'`).Scan(&count))
	assert.Equal(t, 1, count)
}
