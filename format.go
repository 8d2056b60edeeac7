package ultrastar

import (
	"github.com/randompersona1/ultrastar/internal/types"
)

// FormatVersion is an alias to types.FormatVersion for backwards compatibility.
// Re-exporting from internal/types to maintain public API.
type FormatVersion = types.FormatVersion

// ParseFormatVersion is a wrapper around types.ParseFormatVersion.
// Maintains the public API while delegating to internal implementation.
func ParseFormatVersion(s string) (FormatVersion, error) {
	return types.ParseFormatVersion(s)
}

// ExportFormat is an alias to types.ExportFormat for backwards compatibility.
// Re-exporting from internal/types to maintain public API.
type ExportFormat = types.ExportFormat

// Re-export all export format constants.
const (
	ExportUnknown = types.ExportUnknown
	ExportCSV     = types.ExportCSV
	ExportJSON    = types.ExportJSON
)

// ParseExportFormat is a wrapper around types.ParseExportFormat.
// Maintains the public API while delegating to internal implementation.
func ParseExportFormat(s string) (ExportFormat, error) {
	return types.ParseExportFormat(s)
}
