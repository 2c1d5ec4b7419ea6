// Package staging persists normalized inventory snapshots into a SQLite
// database, mirroring the staging tables the reconciliation was
// originally prototyped against. The database is an inspection
// artifact: the reconciler itself works from in-memory maps.
package staging

import (
	"context"
	"database/sql"
	"sort"

	_ "modernc.org/sqlite" // pure-Go sqlite driver

	"github.com/skumap/skumap/pkg/errors"
	"github.com/skumap/skumap/pkg/inventory"
)

// WriteSnapshots writes both normalized snapshots to the SQLite
// database at path. Existing staging tables are dropped first, so the
// database always reflects the latest run only.
func WriteSnapshots(ctx context.Context, path string, a, b *inventory.Snapshot) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return errors.WrapIO("open", path, err)
	}
	defer db.Close() //nolint:errcheck

	if err := writeSnapshot(ctx, db, "a_norm", "supplier_id", a); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if err := writeSnapshot(ctx, db, "b_norm", "account", b); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

func writeSnapshot(ctx context.Context, db *sql.DB, table, auxCol string, snap *inventory.Snapshot) error {
	if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS "`+table+`"`); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE "`+table+`" (
		sku  TEXT PRIMARY KEY,
		qty  INTEGER,
		`+auxCol+` TEXT
	)`); err != nil {
		return err
	}

	stmt, err := db.PrepareContext(ctx, `INSERT INTO "`+table+`" (sku, qty, `+auxCol+`) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close() //nolint:errcheck

	// Insert in key order so the artifact is reproducible run to run.
	keys := make([]string, 0, len(snap.Records))
	for key := range snap.Records {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		rec := snap.Records[key]
		var aux any
		if rec.Aux != "" {
			aux = rec.Aux
		}
		if _, err := stmt.ExecContext(ctx, rec.Key, rec.Qty, aux); err != nil {
			return err
		}
	}
	return nil
}
