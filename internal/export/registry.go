// Package export writes library listings to tabular output formats.
package export

import (
	"io"

	"github.com/randompersona1/ultrastar/internal/types"
)

// Exporter writes a listing to one output format.
type Exporter interface {
	// Export writes one row per song to w. columns fixes the column
	// set and order; rows hold a value per column, empty string for
	// attributes a song does not have.
	Export(w io.Writer, columns []string, rows []map[string]string) error
}

// exporters maps formats to their implementations.
var exporters = make(map[types.ExportFormat]Exporter)

// Register registers an exporter for a format.
// This is called by format files during initialization (init functions).
func Register(format types.ExportFormat, e Exporter) {
	exporters[format] = e
}

// Get returns the exporter for a given format.
// Returns nil if no exporter is registered for the format.
func Get(format types.ExportFormat) Exporter {
	return exporters[format]
}
