// Package prep implements the prep command.
package prep

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/skumap/skumap/cmd/application"
	"github.com/skumap/skumap/internal/cmd/output"
	"github.com/skumap/skumap/pkg/prep"
)

// Flags holds the prep command flags.
type Flags struct {
	Sheet            string
	HeaderRow        int
	BaseName         string
	SavePath         string
	SettingsWorkbook string
	SettingsTable    string
	Columns          []string
	Force            bool
}

// NewCommand creates the prep command.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "prep <source>",
		GroupID: "pipeline",
		Short:   "Normalize headers and export selected columns",
		Long: `Prep reads a spreadsheet or CSV export, normalizes its headers into
lowercase snake_case, keeps a chosen subset of columns, drops duplicate
rows, and writes a date-tagged CSV next to earlier exports.

The source file is never modified. Columns are picked interactively
unless --columns is given. The export base name and save path come from
flags or from a named settings table in a settings workbook.`,
		Example: `  skumap prep stock.xlsx --base-name warehouse --save-path ./exports
  skumap prep stock.xlsx --settings settings.xlsx
  skumap prep stock.csv --base-name oms --save-path . --columns sku,qty --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(app, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.Sheet, "sheet", "", "worksheet to read (default first sheet)")
	cmd.Flags().IntVar(&flags.HeaderRow, "header-row", 1, "1-based row holding the headers")
	cmd.Flags().StringVar(&flags.BaseName, "base-name", "", "export file base name")
	cmd.Flags().StringVar(&flags.SavePath, "save-path", "", "export directory")
	cmd.Flags().StringVar(&flags.SettingsWorkbook, "settings", "", "settings workbook holding base name and save path")
	cmd.Flags().StringVar(&flags.SettingsTable, "settings-table", "", "settings table name (default from config)")
	cmd.Flags().StringSliceVar(&flags.Columns, "columns", nil, "columns to export, skipping the interactive picker")
	cmd.Flags().BoolVar(&flags.Force, "force", false, "overwrite an existing same-day export")

	return cmd
}

func run(app application.Application, flags *Flags, source string) error {
	settings, err := resolveSettings(app, flags)
	if err != nil {
		return err
	}

	var selector prep.Selector
	if len(flags.Columns) > 0 {
		selector = &prep.StaticSelector{Columns: flags.Columns}
	} else {
		selector = &prep.TerminalSelector{}
	}

	res, err := prep.Run(prep.Options{
		Source:    source,
		Sheet:     flags.Sheet,
		HeaderRow: flags.HeaderRow,
		Settings:  *settings,
		Selector:  selector,
		Force:     flags.Force,
	})
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(output.DetectFormat(app.OutputFormat()))
	return formatter.Format(os.Stdout, res)
}

// resolveSettings builds the run settings. Flags win over the settings
// workbook, which wins over config defaults.
func resolveSettings(app application.Application, flags *Flags) (*prep.Settings, error) {
	settings := &prep.Settings{
		BaseName: flags.BaseName,
		SavePath: flags.SavePath,
	}

	if flags.SettingsWorkbook != "" && (settings.BaseName == "" || settings.SavePath == "") {
		tableName := flags.SettingsTable
		if tableName == "" {
			tableName = app.SettingsTable()
		}
		loaded, err := prep.LoadSettingsFromWorkbook(flags.SettingsWorkbook, tableName)
		if err != nil {
			return nil, err
		}
		if settings.BaseName == "" {
			settings.BaseName = loaded.BaseName
		}
		if settings.SavePath == "" {
			settings.SavePath = loaded.SavePath
		}
	}

	if settings.SavePath == "" {
		settings.SavePath = app.ExportDir()
	}

	return settings, nil
}
