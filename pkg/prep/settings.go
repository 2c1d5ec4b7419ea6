package prep

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/skumap/skumap/pkg/errors"
)

// Settings attribute keys recognized in a settings table.
const (
	settingBaseName = "base name"
	settingSavePath = "file save path"
)

// Settings holds the export run settings.
type Settings struct {
	// BaseName is the prefix of the export file name.
	BaseName string
	// SavePath is the destination directory of the export.
	SavePath string
}

// Validate checks that the required settings are present. It fails with
// a configuration error before any source I/O happens.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.BaseName) == "" {
		return errors.NewConfigError("prep", "base name is required", nil)
	}
	if strings.TrimSpace(s.SavePath) == "" {
		return errors.NewConfigError("prep", "file save path is required", nil)
	}
	return nil
}

// LoadSettingsFromWorkbook reads run settings from a named table in a
// settings workbook. The table name is an explicit input, not an
// environment scan; the table holds attribute/value pairs with the
// attribute keys "base name" and "file save path".
func LoadSettingsFromWorkbook(path, tableName string) (*Settings, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close() //nolint:errcheck

	for _, sheet := range f.GetSheetList() {
		tables, err := f.GetTables(sheet)
		if err != nil {
			continue
		}
		for _, table := range tables {
			if table.Name != tableName {
				continue
			}
			return settingsFromRange(f, sheet, table.Range)
		}
	}

	return nil, errors.NewNotFoundError("table", tableName)
}

// settingsFromRange reads attribute/value pairs from a two-column table
// range such as "A1:B3".
func settingsFromRange(f *excelize.File, sheet, cellRange string) (*Settings, error) {
	bounds := strings.SplitN(cellRange, ":", 2)
	if len(bounds) != 2 {
		return nil, errors.NewParseError("xlsx", sheet, "malformed table range "+cellRange, nil)
	}
	x1, y1, err := excelize.CellNameToCoordinates(bounds[0])
	if err != nil {
		return nil, errors.WrapParse("xlsx", sheet, err)
	}
	_, y2, err := excelize.CellNameToCoordinates(bounds[1])
	if err != nil {
		return nil, errors.WrapParse("xlsx", sheet, err)
	}

	s := &Settings{}
	for y := y1; y <= y2; y++ {
		keyCell, err := excelize.CoordinatesToCellName(x1, y)
		if err != nil {
			return nil, errors.WrapParse("xlsx", sheet, err)
		}
		valueCell, err := excelize.CoordinatesToCellName(x1+1, y)
		if err != nil {
			return nil, errors.WrapParse("xlsx", sheet, err)
		}

		key, _ := f.GetCellValue(sheet, keyCell)
		value, _ := f.GetCellValue(sheet, valueCell)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case settingBaseName:
			s.BaseName = strings.TrimSpace(value)
		case settingSavePath:
			s.SavePath = strings.TrimSpace(value)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
