package recon

// Summary aggregates one reconciliation run into a single row of
// statistics.
type Summary struct {
	// ARows and BRows count aggregated records per side.
	ARows int `json:"a_rows"`
	BRows int `json:"b_rows"`

	// Per-status counts over the union of keys.
	Matches       int `json:"matches"`
	QtyMismatches int `json:"qty_mismatches"`
	OnlyInA       int `json:"only_in_a"`
	OnlyInB       int `json:"only_in_b"`

	// Quantity totals per side over the union set; an absent side
	// contributes zero.
	TotalAQty int `json:"total_a_qty"`
	TotalBQty int `json:"total_b_qty"`

	// Absolute difference over QTY_MISMATCH rows only. The average is
	// nil when there are no mismatches; it is never a division by zero.
	SumAbsDiff int      `json:"sum_abs_qty_diff"`
	AvgAbsDiff *float64 `json:"avg_abs_qty_diff"`

	// Stock-presence drift: keys present on both sides where one side
	// has stock (> 0) and the other does not (<= 0).
	AInBOut int `json:"a_in_b_out"`
	BInAOut int `json:"b_in_a_out"`
}

// Summarize computes the summary statistics for a reconciliation
// result.
func Summarize(r *Result) Summary {
	s := Summary{
		ARows: r.A.Len(),
		BRows: r.B.Len(),
	}

	for _, row := range r.Rows {
		if row.AQty != nil {
			s.TotalAQty += *row.AQty
		}
		if row.BQty != nil {
			s.TotalBQty += *row.BQty
		}

		switch row.Status {
		case StatusMatch:
			s.Matches++
		case StatusQtyMismatch:
			s.QtyMismatches++
			s.SumAbsDiff += abs(*row.Diff)
		case StatusOnlyInA:
			s.OnlyInA++
		case StatusOnlyInB:
			s.OnlyInB++
		}

		if row.AQty != nil && row.BQty != nil {
			switch {
			case *row.AQty > 0 && *row.BQty <= 0:
				s.AInBOut++
			case *row.BQty > 0 && *row.AQty <= 0:
				s.BInAOut++
			}
		}
	}

	if s.QtyMismatches > 0 {
		avg := float64(s.SumAbsDiff) / float64(s.QtyMismatches)
		s.AvgAbsDiff = &avg
	}

	return s
}
