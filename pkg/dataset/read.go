package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/skumap/skumap/pkg/errors"
)

// ReadOptions controls how a source file is loaded.
type ReadOptions struct {
	// Sheet selects the worksheet by name. Empty means the first sheet.
	// Ignored for CSV sources.
	Sheet string

	// HeaderRow is the 1-based row holding the headers. Rows above it
	// are skipped. Zero means row 1.
	HeaderRow int
}

// Read loads a source file into a dataset based on its extension.
// Workbook formats (.xlsx, .xlsm, .xls) go through excelize; .csv goes
// through encoding/csv. The source is opened read-only and closed
// without saving, whatever happens.
func Read(path string, opts ReadOptions) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		return ReadWorkbook(path, opts)
	case ".csv":
		return ReadCSV(path, opts)
	default:
		return nil, errors.NewValidationError("file", path,
			"unsupported extension, want .xlsx, .xlsm, .xls, or .csv")
	}
}

// ReadWorkbook loads one sheet of a workbook into a dataset.
func ReadWorkbook(path string, opts ReadOptions) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapIO("open", path, err)
		}
		return nil, errors.WrapParse("xlsx", path, err)
	}
	// Close without saving: the source stays untouched on every path.
	defer f.Close() //nolint:errcheck

	sheet := opts.Sheet
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, errors.NewNotFoundError("sheet", "(any)")
		}
		sheet = list[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewNotFoundError("sheet", sheet)
	}

	return fromRawRows(path, rows, opts.HeaderRow)
}

// ReadCSV loads a CSV file into a dataset.
func ReadCSV(path string, opts ReadOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close() //nolint:errcheck

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows, pad later

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", path, err)
		}
		rows = append(rows, record)
	}

	return fromRawRows(path, rows, opts.HeaderRow)
}

// fromRawRows splits raw rows into header and data per the header row
// setting.
func fromRawRows(path string, rows [][]string, headerRow int) (*Dataset, error) {
	if headerRow <= 0 {
		headerRow = 1
	}
	if len(rows) < headerRow {
		return nil, errors.NewParseError("table", path, "no header row", nil)
	}
	return New(rows[headerRow-1], rows[headerRow:]), nil
}
