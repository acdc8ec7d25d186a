package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes rows as CSV with a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(row.values()); err != nil {
			return fmt.Errorf("writing csv row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
