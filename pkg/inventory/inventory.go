// Package inventory loads inventory snapshots from CSV exports and
// normalizes them for reconciliation: keys are trimmed and uppercased,
// quantities parsed to integers, and duplicate keys aggregated.
package inventory

// Record is one normalized, aggregated inventory entry.
type Record struct {
	// Key is the normalized SKU: trimmed and uppercased.
	Key string
	// Qty is the summed quantity over all raw rows sharing the key.
	Qty int
	// Aux is the auxiliary attribute (supplier id or account). When raw
	// rows disagree, the lexicographically smallest non-empty value wins
	// so the pick is deterministic.
	Aux string
}

// Snapshot is one side's normalized inventory, keyed by SKU.
type Snapshot struct {
	// Side labels the source system, e.g. "a" or "b".
	Side string
	// Records maps normalized key to its aggregated record.
	Records map[string]Record
	// RawRows is the number of data rows read before aggregation,
	// including rows later dropped for an empty key.
	RawRows int
}

// Len returns the number of aggregated records.
func (s *Snapshot) Len() int {
	return len(s.Records)
}

// TotalQty returns the sum of quantities over all records.
func (s *Snapshot) TotalQty() int {
	total := 0
	for _, r := range s.Records {
		total += r.Qty
	}
	return total
}

// Columns names the three relevant columns of a snapshot CSV.
type Columns struct {
	Key string
	Qty string
	Aux string
}
