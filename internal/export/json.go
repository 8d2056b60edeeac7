package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/randompersona1/ultrastar/internal/types"
)

func init() {
	Register(types.ExportJSON, jsonExporter{})
}

// jsonExporter writes an array of objects, one per song, keyed by
// column name. An empty library yields an empty array, not null.
type jsonExporter struct{}

func (jsonExporter) Export(w io.Writer, columns []string, rows []map[string]string) error {
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		obj := make(map[string]string, len(columns))
		for _, col := range columns {
			obj[col] = row[col]
		}
		out = append(out, obj)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json export: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing json export: %w", err)
	}
	return nil
}
