// Package genimport implements the genimport command.
package genimport

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/skumap/skumap/cmd/application"
	"github.com/skumap/skumap/internal/cmd/output"
	"github.com/skumap/skumap/internal/cmd/table"
	"github.com/skumap/skumap/pkg/genimport"
)

// Flags holds the genimport command flags.
type Flags struct {
	OutDir      string
	SKUColumn   string
	QtyColumn   string
	RawSKU      bool
	SourceCodes []string
	ChunkSize   int
}

// NewCommand creates the genimport command.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "genimport <source>",
		GroupID: "analysis",
		Short:   "Generate storefront stock import files",
		Long: `Genimport fans a stock export out into storefront import rows, one per
configured source code, and writes them as chunked CSV parts.

Composite SKU keys such as "ABC-1|supplier" are cut at the first "|"
unless --raw-sku is given. Unparseable quantities coalesce to zero and
are marked out of stock.`,
		Example: `  skumap genimport stock_export.csv --out-dir ./imports
  skumap genimport stock_export.csv --sku-col key --qty-col free_stock_tgt
  skumap genimport stock_export.csv --source-codes pos_1,pos_2 --chunk-size 500`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(app, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.OutDir, "out-dir", "", "output directory for the import parts (default from config)")
	cmd.Flags().StringVar(&flags.SKUColumn, "sku-col", "key", "SKU column")
	cmd.Flags().StringVar(&flags.QtyColumn, "qty-col", "free_stock_tgt", "quantity column")
	cmd.Flags().BoolVar(&flags.RawSKU, "raw-sku", false, "use the SKU column value as-is without splitting")
	cmd.Flags().StringSliceVar(&flags.SourceCodes, "source-codes", nil, "source codes to fan out to (default from config)")
	cmd.Flags().IntVar(&flags.ChunkSize, "chunk-size", 0, "rows per import part (default from config)")

	return cmd
}

func run(app application.Application, flags *Flags, source string) error {
	outDir := flags.OutDir
	if outDir == "" {
		outDir = app.ExportDir()
	}
	codes := flags.SourceCodes
	if len(codes) == 0 {
		codes = app.SourceCodes()
	}
	chunkSize := flags.ChunkSize
	if chunkSize == 0 {
		chunkSize = app.ChunkSize()
	}

	stats, err := genimport.Run(genimport.Options{
		Source:      source,
		OutputDir:   outDir,
		SKUColumn:   flags.SKUColumn,
		QtyColumn:   flags.QtyColumn,
		RawSKU:      flags.RawSKU,
		SourceCodes: codes,
		ChunkSize:   chunkSize,
	})
	if err != nil {
		return err
	}

	format := output.DetectFormat(app.OutputFormat())
	formatter := output.NewFormatter(format)
	switch format {
	case output.FormatTable, output.FormatWide:
		data := table.ImportStatsToTableData(stats)
		return formatter.Format(os.Stdout, output.Data{
			Headers:         data.Headers,
			Rows:            data.Rows,
			ColumnAlignment: data.ColumnAlignment,
		})
	default:
		return formatter.Format(os.Stdout, stats)
	}
}
