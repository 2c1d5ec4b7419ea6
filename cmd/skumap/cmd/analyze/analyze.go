// Package analyze implements the analyze command.
package analyze

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/skumap/skumap/cmd/application"
	"github.com/skumap/skumap/internal/cmd/output"
	"github.com/skumap/skumap/internal/cmd/table"
	"github.com/skumap/skumap/pkg/analyze"
)

// Flags holds the analyze command flags.
type Flags struct {
	Output          string
	Sheet           string
	WarehouseColumn string
	EcommerceColumn string
}

// NewCommand creates the analyze command.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "analyze <workbook>",
		GroupID: "analysis",
		Short:   "Classify warehouse versus ecommerce stock levels",
		Long: `Analyze appends a stock status and a validation column to a stock
workbook. Every row is classified by whether stock is available in the
warehouse, in ecommerce, in both, or in neither, and rows with negative
or malformed quantities are flagged. A summary sheet with per-status
counts is rebuilt on every run.`,
		Example: `  skumap analyze stock.xlsx
  skumap analyze stock.xlsx --output annotated.xlsx
  skumap analyze stock.xlsx --warehouse-col wh_qty --ecommerce-col web_qty`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(app, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.Output, "output", "", "annotated workbook path (default overwrites the source)")
	cmd.Flags().StringVar(&flags.Sheet, "sheet", "", "data sheet to analyze (default first sheet)")
	cmd.Flags().StringVar(&flags.WarehouseColumn, "warehouse-col", "", "warehouse quantity column")
	cmd.Flags().StringVar(&flags.EcommerceColumn, "ecommerce-col", "", "ecommerce quantity column")

	return cmd
}

func run(app application.Application, flags *Flags, source string) error {
	report, err := analyze.Run(analyze.Options{
		Source:          source,
		Output:          flags.Output,
		Sheet:           flags.Sheet,
		WarehouseColumn: flags.WarehouseColumn,
		EcommerceColumn: flags.EcommerceColumn,
	})
	if err != nil {
		return err
	}

	format := output.DetectFormat(app.OutputFormat())
	formatter := output.NewFormatter(format)
	switch format {
	case output.FormatTable, output.FormatWide:
		data := table.AnalyzeReportToTableData(report)
		return formatter.Format(os.Stdout, output.Data{
			Headers:         data.Headers,
			Rows:            data.Rows,
			ColumnAlignment: data.ColumnAlignment,
		})
	default:
		return formatter.Format(os.Stdout, report)
	}
}
