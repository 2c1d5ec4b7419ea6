package dataset

import (
	"encoding/csv"
	"os"

	"github.com/skumap/skumap/pkg/errors"
)

// WriteCSV writes the dataset to path as comma-delimited UTF-8 with the
// header row first. The destination directory must already exist;
// failures surface as IOError to the caller, never silently.
func (d *Dataset) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(d.Headers); err != nil {
		f.Close() //nolint:errcheck,gosec
		return errors.WrapIO("write", path, err)
	}
	for _, row := range d.Rows {
		if err := w.Write(row); err != nil {
			f.Close() //nolint:errcheck,gosec
			return errors.WrapIO("write", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close() //nolint:errcheck,gosec
		return errors.WrapIO("write", path, err)
	}

	if err := f.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	return nil
}
