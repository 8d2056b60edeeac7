package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/randompersona1/ultrastar/internal/types"
)

func init() {
	Register(types.ExportCSV, csvExporter{})
}

// csvExporter writes a header row of column names followed by one
// record per song. Quoting and escaping follow RFC 4180.
type csvExporter struct{}

func (csvExporter) Export(w io.Writer, columns []string, rows []map[string]string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = row[col]
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
