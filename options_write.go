package ultrastar

// FlushOption configures behavior when writing song files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	err := song.Flush(
//	    ultrastar.WithBackup(".bak"),
//	    ultrastar.WithAutoReorder(),
//	)
type FlushOption func(*flushOptions)

// flushOptions holds configuration for writing files.
type flushOptions struct {
	lineEnding   string // Override line ending ("" keeps the file's own)
	autoReorder  bool   // Sort attributes into canonical order first
	backupSuffix string // Suffix for backup file (e.g., ".bak")
}

// defaultFlushOptions returns the default configuration for writing.
func defaultFlushOptions() *flushOptions {
	return &flushOptions{
		lineEnding:   "",
		autoReorder:  false,
		backupSuffix: "",
	}
}

// WithCRLF writes the file with Windows line endings regardless of
// what it was read with.
//
// UltraStar Deluxe accepts both endings, but some older editors only
// handle CRLF. By default a song keeps the endings it came with.
//
// Example:
//
//	err := song.Flush(ultrastar.WithCRLF())
//	// Every line terminated with \r\n
func WithCRLF() FlushOption {
	return func(o *flushOptions) {
		o.lineEnding = "\r\n"
	}
}

// WithAutoReorder sorts the attributes into canonical order before
// writing, the same order ReorderAuto applies: VERSION first, then
// TITLE, ARTIST, the media attributes, and so on. Unknown attributes
// sort to the end in their current order.
//
// The reorder changes the in-memory song, not just the written file.
//
// Example:
//
//	err := song.Flush(ultrastar.WithAutoReorder())
//	// Header written in canonical attribute order
func WithAutoReorder() FlushOption {
	return func(o *flushOptions) {
		o.autoReorder = true
	}
}

// WithBackup creates a backup of the original file before saving.
//
// The backup file will have the specified suffix appended to the
// original filename. For example, WithBackup(".bak") will create
// "song.txt.bak" before modifying "song.txt".
//
// If the backup file already exists, it will be overwritten.
//
// Example:
//
//	err := song.Flush(ultrastar.WithBackup(".bak"))
//	// Original file preserved as song.txt.bak
func WithBackup(suffix string) FlushOption {
	return func(o *flushOptions) {
		o.backupSuffix = suffix
	}
}
