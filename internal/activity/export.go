package activity

import (
	"encoding/csv"
	"os"
)

// csvHeader is the fixed column order of the export file.
var csvHeader = []string{"clientNameOrEmail", "assetName", "date", "cashIn", "cashOut"}

// WriteCSV writes records to path as CSV with a header row and no index
// column. An existing file at path is overwritten. Callers are expected to
// have sorted records already; WriteCSV preserves their order.
func WriteCSV(records []Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return err
	}
	for _, r := range records {
		row := []string{
			r.ClientNameOrEmail,
			r.AssetName,
			r.Date,
			FormatAmount(r.CashIn),
			FormatAmount(r.CashOut),
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
