package ultrastar

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/randompersona1/ultrastar/internal/export"
)

// DefaultExportColumns is the column set Export uses when no option
// overrides it.
var DefaultExportColumns = []string{"TITLE", "ARTIST", "BPM", "PATH"}

// ExportOption configures behavior when exporting a library listing.
type ExportOption func(*exportOptions)

type exportOptions struct {
	columns       []string // Explicit column set ("" entries dropped)
	allAttributes bool     // Export every attribute seen in the library
}

func defaultExportOptions() *exportOptions {
	return &exportOptions{}
}

// WithColumns sets the exported columns. Keys are normalized like any
// attribute lookup, so "title" and "#TITLE" both select the TITLE
// column. The PATH column is always available and holds the song's
// file path.
//
// Example:
//
//	err := lib.Export("songs.csv", "csv",
//	    ultrastar.WithColumns("ARTIST", "TITLE", "YEAR"),
//	)
func WithColumns(columns ...string) ExportOption {
	return func(o *exportOptions) {
		normalized := make([]string, 0, len(columns))
		for _, c := range columns {
			if key := NormalizeKey(c); key != "" {
				normalized = append(normalized, key)
			}
		}
		o.columns = normalized
	}
}

// WithAllAttributes exports every attribute key that appears in at
// least one song, in canonical order with unknown keys last, plus a
// trailing PATH column.
func WithAllAttributes() ExportOption {
	return func(o *exportOptions) {
		o.allAttributes = true
	}
}

// Export writes a listing of the library to path in the given format,
// "csv" or "json" (case-insensitive, with or without a leading dot).
//
// Each song becomes one row. The PATH column always carries the song's
// file path, even when a song declares a literal PATH attribute.
// Attributes a song does not have export as empty strings. Without
// options the columns are DefaultExportColumns.
//
// The write is atomic: an unknown format or a failed write leaves no
// file behind, and an existing file at path is only replaced on
// success.
//
// Example:
//
//	err := lib.Export("songs.json", "json")
func (l *Library) Export(path string, format string, opts ...ExportOption) error {
	f, err := ParseExportFormat(format)
	if err != nil {
		return err
	}
	exporter := export.Get(f)
	if exporter == nil {
		return &UnsupportedFormatError{Format: format, Reason: "no exporter registered"}
	}

	options := defaultExportOptions()
	for _, opt := range opts {
		opt(options)
	}

	columns := DefaultExportColumns
	switch {
	case options.allAttributes:
		// A song can declare a literal PATH attribute, which would
		// collide with the virtual PATH column appended here.
		columns = l.AttributeUnion()
		if !slices.Contains(columns, "PATH") {
			columns = append(columns, "PATH")
		}
	case options.columns != nil:
		columns = options.columns
	}

	rows := make([]map[string]string, 0, len(l.songs))
	for _, song := range l.songs {
		row := make(map[string]string, len(columns))
		for _, column := range columns {
			if column == "PATH" {
				row[column] = song.Path
				continue
			}
			value, _ := song.GetAttribute(column)
			row[column] = value
		}
		rows = append(rows, row)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), ".ultrastar-export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if err := exporter.Export(tempFile, columns, rows); err != nil {
		return err
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("replacing export file: %w", err)
	}

	success = true
	return nil
}
