// Package analyze classifies warehouse versus ecommerce stock levels in
// a workbook. It appends a stock status and a validation column to the
// data sheet, highlights the rows that need attention, and rebuilds a
// summary sheet with per-status counts.
package analyze

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/skumap/skumap/pkg/errors"
	"github.com/skumap/skumap/pkg/logging"
)

// Stock status values written to the status column.
const (
	StatusMissingData   = "Missing data"
	StatusOutOfStock    = "Out of stock in both warehouse and ecommerce"
	StatusEcommerceOnly = "Stock available in ecommerce only"
	StatusWarehouseOnly = "Stock available in warehouse only"
	StatusBoth          = "Stock available in both warehouse and ecommerce"
)

// Validation values written to the validation column.
const (
	ValidationPass     = "Stock Qty Data Type Validation PASS"
	ValidationNegative = "Check negative stock"
	ValidationBadType  = "Check stock data type"
)

const (
	statusHeader     = "StockStatus"
	validationHeader = "Validation"
	summarySheet     = "PivotTables"

	defaultWarehouseColumn = "quantity_warehouse"
	defaultEcommerceColumn = "quantity_ecommerce"

	alertColor = "FF9999"
)

// statusOrder fixes the summary sheet ordering.
var statusOrder = []string{
	StatusMissingData,
	StatusOutOfStock,
	StatusEcommerceOnly,
	StatusWarehouseOnly,
	StatusBoth,
}

var validationOrder = []string{
	ValidationPass,
	ValidationNegative,
	ValidationBadType,
}

// Options configures an analysis run.
type Options struct {
	// Source is the workbook to analyze.
	Source string
	// Output is where the annotated workbook is saved. Empty means
	// overwrite the source path.
	Output string
	// Sheet selects the data sheet. Empty means the first sheet.
	Sheet string
	// WarehouseColumn and EcommerceColumn name the quantity columns.
	// Empty picks the defaults.
	WarehouseColumn string
	EcommerceColumn string
}

// Report summarizes an analysis run.
type Report struct {
	Rows             int            `json:"rows"`
	StatusCounts     map[string]int `json:"status_counts"`
	ValidationCounts map[string]int `json:"validation_counts"`
	Output           string         `json:"output"`
}

// Run annotates the workbook and writes it to the output path.
func Run(opts Options) (*Report, error) {
	if opts.WarehouseColumn == "" {
		opts.WarehouseColumn = defaultWarehouseColumn
	}
	if opts.EcommerceColumn == "" {
		opts.EcommerceColumn = defaultEcommerceColumn
	}
	if opts.Output == "" {
		opts.Output = opts.Source
	}

	f, err := excelize.OpenFile(opts.Source)
	if err != nil {
		return nil, errors.WrapIO("open", opts.Source, err)
	}
	defer f.Close() //nolint:errcheck

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.WrapParse("xlsx", opts.Source, err)
	}
	if len(rows) == 0 {
		return nil, errors.NewParseError("xlsx", opts.Source, "sheet has no header row", nil)
	}

	headers := rows[0]
	whIdx := columnIndex(headers, opts.WarehouseColumn)
	ecIdx := columnIndex(headers, opts.EcommerceColumn)
	if whIdx < 0 {
		return nil, errors.NewNotFoundError("column", opts.WarehouseColumn)
	}
	if ecIdx < 0 {
		return nil, errors.NewNotFoundError("column", opts.EcommerceColumn)
	}

	statusIdx := columnIndex(headers, statusHeader)
	if statusIdx < 0 {
		statusIdx = len(headers)
		headers = append(headers, statusHeader)
		if err := setCell(f, sheet, statusIdx, 0, statusHeader); err != nil {
			return nil, err
		}
	}
	validationIdx := columnIndex(headers, validationHeader)
	if validationIdx < 0 {
		validationIdx = len(headers)
		headers = append(headers, validationHeader)
		if err := setCell(f, sheet, validationIdx, 0, validationHeader); err != nil {
			return nil, err
		}
	}

	alertStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{alertColor}, Pattern: 1},
	})
	if err != nil {
		return nil, errors.WrapIO("style", opts.Source, err)
	}

	report := &Report{
		Rows:             len(rows) - 1,
		StatusCounts:     map[string]int{},
		ValidationCounts: map[string]int{},
		Output:           opts.Output,
	}

	for i, row := range rows[1:] {
		wh, whOK := parseQty(cellAt(row, whIdx))
		ec, ecOK := parseQty(cellAt(row, ecIdx))

		status := classify(wh, whOK, ec, ecOK)
		validation := validate(row, whIdx, ecIdx, wh, whOK, ec, ecOK)

		if err := setCell(f, sheet, statusIdx, i+1, status); err != nil {
			return nil, err
		}
		if err := setCell(f, sheet, validationIdx, i+1, validation); err != nil {
			return nil, err
		}
		if status == StatusEcommerceOnly || status == StatusWarehouseOnly {
			if err := styleCell(f, sheet, statusIdx, i+1, alertStyle); err != nil {
				return nil, err
			}
		}
		if validation != ValidationPass {
			if err := styleCell(f, sheet, validationIdx, i+1, alertStyle); err != nil {
				return nil, err
			}
		}

		report.StatusCounts[status]++
		report.ValidationCounts[validation]++
	}

	if err := writeSummary(f, report, alertStyle); err != nil {
		return nil, err
	}

	if err := f.SaveAs(opts.Output); err != nil {
		return nil, errors.WrapIO("save", opts.Output, err)
	}

	logging.Default().Info().
		Str("pipeline", "analyze").
		Str("output", opts.Output).
		Int("rows", report.Rows).
		Msg("workbook annotated")

	return report, nil
}

// classify maps a pair of quantities to a stock status.
func classify(wh float64, whOK bool, ec float64, ecOK bool) string {
	switch {
	case !whOK || !ecOK:
		return StatusMissingData
	case wh <= 0 && ec <= 0:
		return StatusOutOfStock
	case wh <= 0:
		return StatusEcommerceOnly
	case ec <= 0:
		return StatusWarehouseOnly
	default:
		return StatusBoth
	}
}

func validate(row []string, whIdx, ecIdx int, wh float64, whOK bool, ec float64, ecOK bool) string {
	if (!whOK && strings.TrimSpace(cellAt(row, whIdx)) != "") ||
		(!ecOK && strings.TrimSpace(cellAt(row, ecIdx)) != "") {
		return ValidationBadType
	}
	if (whOK && wh < 0) || (ecOK && ec < 0) {
		return ValidationNegative
	}
	return ValidationPass
}

// writeSummary replaces the summary sheet with status and validation
// counts. Rows needing attention get the alert fill.
func writeSummary(f *excelize.File, report *Report, alertStyle int) error {
	if idx, err := f.GetSheetIndex(summarySheet); err == nil && idx >= 0 {
		if err := f.DeleteSheet(summarySheet); err != nil {
			return errors.WrapIO("sheet", summarySheet, err)
		}
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return errors.WrapIO("sheet", summarySheet, err)
	}

	row := 0
	if err := setCell(f, summarySheet, 0, row, statusHeader); err != nil {
		return err
	}
	if err := setCell(f, summarySheet, 1, row, "Count"); err != nil {
		return err
	}
	row++
	for _, status := range statusOrder {
		count, ok := report.StatusCounts[status]
		if !ok {
			continue
		}
		if err := setCell(f, summarySheet, 0, row, status); err != nil {
			return err
		}
		if err := setCell(f, summarySheet, 1, row, count); err != nil {
			return err
		}
		if strings.Contains(status, "only") {
			if err := styleCell(f, summarySheet, 0, row, alertStyle); err != nil {
				return err
			}
		}
		row++
	}

	row++
	if err := setCell(f, summarySheet, 0, row, validationHeader); err != nil {
		return err
	}
	if err := setCell(f, summarySheet, 1, row, "Count"); err != nil {
		return err
	}
	row++
	for _, validation := range validationOrder {
		count, ok := report.ValidationCounts[validation]
		if !ok {
			continue
		}
		if err := setCell(f, summarySheet, 0, row, validation); err != nil {
			return err
		}
		if err := setCell(f, summarySheet, 1, row, count); err != nil {
			return err
		}
		if strings.Contains(validation, "Check") {
			if err := styleCell(f, summarySheet, 0, row, alertStyle); err != nil {
				return err
			}
		}
		row++
	}
	return nil
}

func columnIndex(headers []string, name string) int {
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseQty(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return errors.WrapIO("cell", sheet, err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return errors.WrapIO("cell", sheet, err)
	}
	return nil
}

func styleCell(f *excelize.File, sheet string, col, row, style int) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return errors.WrapIO("cell", sheet, err)
	}
	if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
		return errors.WrapIO("cell", sheet, err)
	}
	return nil
}
