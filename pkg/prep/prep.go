// Package prep implements the export preparation pipeline: it reads a
// source table, normalizes its headers, keeps a selected subset of
// columns, deduplicates rows, and writes a date-tagged CSV export. The
// source file is never modified.
package prep

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/skumap/skumap/pkg/dataset"
	"github.com/skumap/skumap/pkg/errors"
	"github.com/skumap/skumap/pkg/logging"
)

const dateTagLayout = "02_01_2006"

// Options configures a preparation run.
type Options struct {
	// Source is the input file (.xlsx, .xlsm, or .csv).
	Source string
	// Sheet selects the worksheet of a workbook source. Empty means
	// the first sheet.
	Sheet string
	// HeaderRow is the 1-based row holding the headers. Zero means
	// row 1.
	HeaderRow int

	// Settings carries the export base name and destination.
	Settings Settings

	// Selector chooses the columns to keep.
	Selector Selector

	// Force overwrites an existing export instead of picking a
	// numbered alternative name.
	Force bool

	// Now stamps the export file name. Zero means time.Now.
	Now time.Time
}

// Result reports what a preparation run produced.
type Result struct {
	// Path is the written export file.
	Path string `json:"path"`
	// Columns are the exported columns, in source order.
	Columns []string `json:"columns"`
	// Rows is the number of data rows written.
	Rows int `json:"rows"`
	// Duplicates is the number of duplicate rows dropped.
	Duplicates int `json:"duplicates"`
}

// Run executes the preparation pipeline and returns the export it
// wrote.
func Run(opts Options) (*Result, error) {
	if err := opts.Settings.Validate(); err != nil {
		return nil, err
	}
	if opts.Selector == nil {
		return nil, errors.NewConfigError("prep", "column selector is required", nil)
	}

	log := logging.Default().With().
		Str("pipeline", "prep").
		Str("source", opts.Source).
		Logger()

	d, err := dataset.Read(opts.Source, dataset.ReadOptions{
		Sheet:     opts.Sheet,
		HeaderRow: opts.HeaderRow,
	})
	if err != nil {
		return nil, err
	}
	headers := d.NormalizeHeaders()
	log.Debug().Int("columns", len(headers)).Int("rows", len(d.Rows)).Msg("source loaded")

	selected, err := opts.Selector.Select(headers)
	if err != nil {
		return nil, err
	}

	out, err := d.Select(selected)
	if err != nil {
		return nil, err
	}
	dropped := out.Deduplicate()

	path, err := exportPath(opts.Settings, opts.Now, opts.Force)
	if err != nil {
		return nil, err
	}
	if err := out.WriteCSV(path); err != nil {
		return nil, err
	}

	log.Info().
		Str("path", path).
		Int("rows", len(out.Rows)).
		Int("duplicates", dropped).
		Msg("export written")

	return &Result{
		Path:       path,
		Columns:    out.Headers,
		Rows:       len(out.Rows),
		Duplicates: dropped,
	}, nil
}

// exportPath builds the date-tagged export file name. When force is
// off and the name is taken, a numeric suffix keeps earlier same-day
// exports intact.
func exportPath(s Settings, now time.Time, force bool) (string, error) {
	if now.IsZero() {
		now = time.Now()
	}
	tag := now.Format(dateTagLayout)

	base := filepath.Join(s.SavePath, fmt.Sprintf("%s_%s.csv", s.BaseName, tag))
	if force {
		return base, nil
	}

	path := base
	for n := 2; ; n++ {
		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			return path, nil
		}
		if err != nil {
			return "", errors.WrapIO("stat", path, err)
		}
		path = filepath.Join(s.SavePath, fmt.Sprintf("%s_%s_%d.csv", s.BaseName, tag, n))
	}
}
