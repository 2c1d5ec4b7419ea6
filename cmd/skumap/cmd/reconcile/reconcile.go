// Package reconcile implements the reconcile command.
package reconcile

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/skumap/skumap/cmd/application"
	"github.com/skumap/skumap/internal/cmd/output"
	"github.com/skumap/skumap/internal/cmd/table"
	"github.com/skumap/skumap/pkg/inventory"
	"github.com/skumap/skumap/pkg/logging"
	"github.com/skumap/skumap/pkg/recon"
	"github.com/skumap/skumap/pkg/staging"
)

// Default column mappings for the two snapshot sides.
const (
	defaultAKey = "sku_oms_details_sku"
	defaultAQty = "online_salable_qty_quantity"
	defaultAAux = "sku_oms_details_sap_supplier_id"

	defaultBKey = "supplier_sku"
	defaultBQty = "free_stock"
	defaultBAux = "account"
)

// Flags holds the reconcile command flags.
type Flags struct {
	AFile string
	BFile string

	AKey string
	AQty string
	AAux string
	BKey string
	BQty string
	BAux string

	Lenient   bool
	Top       int
	ExportDir string
	DB        string
}

// report is the full command output for json/yaml formats.
type report struct {
	Summary     recon.Summary `json:"summary"`
	NonMatching []recon.Row   `json:"non_matching"`
	Top         []recon.Row   `json:"top_discrepancies"`
}

// NewCommand creates the reconcile command.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "reconcile",
		GroupID: "pipeline",
		Short:   "Reconcile two stock snapshots by SKU",
		Long: `Reconcile joins two snapshot CSVs on their SKU key and classifies
every SKU as a match, a quantity mismatch, or present on only one side.

Keys are trimmed and uppercased before the join, duplicate keys have
their quantities summed, and rows with a blank key are excluded. The
quantity difference is reported as side B minus side A.`,
		Example: `  skumap reconcile --a oms_export.csv --b supplier_feed.csv
  skumap reconcile --a a.csv --b b.csv --top 20 --export-dir ./exports
  skumap reconcile --a a.csv --b b.csv --lenient --db staging.db`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), app, flags, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&flags.AFile, "a", "", "side A snapshot CSV (required)")
	cmd.Flags().StringVar(&flags.BFile, "b", "", "side B snapshot CSV (required)")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	cmd.Flags().StringVar(&flags.AKey, "a-sku", defaultAKey, "side A SKU column")
	cmd.Flags().StringVar(&flags.AQty, "a-qty", defaultAQty, "side A quantity column")
	cmd.Flags().StringVar(&flags.AAux, "a-aux", defaultAAux, "side A auxiliary column")
	cmd.Flags().StringVar(&flags.BKey, "b-sku", defaultBKey, "side B SKU column")
	cmd.Flags().StringVar(&flags.BQty, "b-qty", defaultBQty, "side B quantity column")
	cmd.Flags().StringVar(&flags.BAux, "b-aux", defaultBAux, "side B auxiliary column")

	cmd.Flags().BoolVar(&flags.Lenient, "lenient", false, "coalesce unparseable quantities to zero instead of failing")
	cmd.Flags().IntVar(&flags.Top, "top", 50, "number of largest discrepancies to show (0 for all)")
	cmd.Flags().StringVar(&flags.ExportDir, "export-dir", "", "write per-status CSV exports into this directory")
	cmd.Flags().StringVar(&flags.DB, "db", "", "write normalized snapshots to this SQLite database")

	return cmd
}

func run(ctx context.Context, app application.Application, flags *Flags, out io.Writer) error {
	ctx = logging.WithLogger(ctx, app.Logger())

	a, err := inventory.Load(ctx, flags.AFile, inventory.LoadOptions{
		Side:    "a",
		Columns: inventory.Columns{Key: flags.AKey, Qty: flags.AQty, Aux: flags.AAux},
		Lenient: flags.Lenient,
	})
	if err != nil {
		return err
	}
	b, err := inventory.Load(ctx, flags.BFile, inventory.LoadOptions{
		Side:    "b",
		Columns: inventory.Columns{Key: flags.BKey, Qty: flags.BQty, Aux: flags.BAux},
		Lenient: flags.Lenient,
	})
	if err != nil {
		return err
	}

	result := recon.Reconcile(a, b)
	summary := recon.Summarize(result)

	if flags.DB != "" {
		if err := staging.WriteSnapshots(ctx, flags.DB, a, b); err != nil {
			return err
		}
	}
	if flags.ExportDir != "" {
		exports, err := recon.ExportAll(flags.ExportDir, result, time.Now())
		if err != nil {
			return err
		}
		app.Logger().Info().
			Str("mismatches", exports.Mismatches).
			Str("only_in_a", exports.OnlyInA).
			Str("only_in_b", exports.OnlyInB).
			Msg("exports written")
	}

	detail := result.NonMatching()
	top := result.TopDiscrepancies(flags.Top)

	format := output.DetectFormat(app.OutputFormat())
	formatter := output.NewFormatter(format)
	switch format {
	case output.FormatTable, output.FormatWide:
		views := []struct {
			title string
			data  table.Data
		}{
			{"Non-matching rows", table.ReconRowsToTableData(detail)},
			{fmt.Sprintf("Top %d discrepancies", len(top)), table.ReconRowsToTableData(top)},
			{"Summary", table.SummaryToTableData(&summary)},
		}
		for _, view := range views {
			fmt.Fprintln(out, view.title)
			if err := formatter.Format(out, outputData(view.data)); err != nil {
				return err
			}
			fmt.Fprintln(out)
		}
		return nil
	default:
		return formatter.Format(out, report{Summary: summary, NonMatching: detail, Top: top})
	}
}

// outputData bridges table.Data into the formatter's table type.
func outputData(d table.Data) output.Data {
	return output.Data{
		Headers:         d.Headers,
		Rows:            d.Rows,
		ColumnAlignment: d.ColumnAlignment,
	}
}
