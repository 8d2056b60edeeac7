package types

import "strings"

// ExportFormat identifies a library export format.
type ExportFormat int

const (
	// ExportUnknown represents an unrecognized export format.
	ExportUnknown ExportFormat = iota
	// ExportCSV exports one row per song with a header row.
	ExportCSV
	// ExportJSON exports an array of objects, one per song.
	ExportJSON
)

// String returns the canonical lower-case format name.
func (f ExportFormat) String() string {
	switch f {
	case ExportCSV:
		return "csv"
	case ExportJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Extension returns the conventional file extension for the format,
// including the leading dot.
func (f ExportFormat) Extension() string {
	switch f {
	case ExportCSV:
		return ".csv"
	case ExportJSON:
		return ".json"
	default:
		return ""
	}
}

// ParseExportFormat maps a format string to an ExportFormat. Matching
// is case-insensitive and ignores surrounding whitespace and a leading
// dot, so "CSV", "csv" and ".csv" are equivalent.
//
// Returns *UnsupportedFormatError for anything else.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "csv":
		return ExportCSV, nil
	case "json":
		return ExportJSON, nil
	default:
		return ExportUnknown, &UnsupportedFormatError{
			Format: s,
			Reason: "expected csv or json",
		}
	}
}
