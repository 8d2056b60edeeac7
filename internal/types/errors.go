package types

import "fmt"

// ParseError is returned when a song file cannot be parsed. With the
// permissive attribute grammar this is rare; it occurs for unreadable
// content or when strict parsing promotes a warning to an error.
type ParseError struct {
	Path    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: parse error at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: parse error: %s", e.Path, e.Message)
}

// InvalidVersionError is returned when a version string does not match
// the MAJOR.MINOR.PATCH grammar, or when a migration target is not a
// known format version.
type InvalidVersionError struct {
	Version string
	Reason  string
}

func (e *InvalidVersionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid version %q: %s", e.Version, e.Reason)
	}
	return fmt.Sprintf("invalid version %q", e.Version)
}

// FileGoneError is returned by flush when the backing file has been
// deleted externally since the song was opened.
type FileGoneError struct {
	Path string
}

func (e *FileGoneError) Error() string {
	return fmt.Sprintf("%s: file no longer exists", e.Path)
}

// DuplicatePathError is returned when adding a song whose path is
// already present in the library.
type DuplicatePathError struct {
	Path string
}

func (e *DuplicatePathError) Error() string {
	return fmt.Sprintf("%s: song already in library", e.Path)
}

// NotFoundError is returned when removing a song that is not in the
// library, or when an index is out of range. Path is empty for
// index-based lookups.
type NotFoundError struct {
	Path  string
	Index int
}

func (e *NotFoundError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: song not in library", e.Path)
	}
	return fmt.Sprintf("index %d out of range", e.Index)
}

// UnsupportedFormatError is returned for an unknown export format
// string, or when no tag writer exists for a media file extension.
type UnsupportedFormatError struct {
	Format string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported format %q: %s", e.Format, e.Reason)
	}
	return fmt.Sprintf("unsupported format %q", e.Format)
}

// Warning represents a non-fatal issue encountered while parsing a
// song file.
//
// Warnings indicate recoverable oddities that do not prevent the file
// from loading, such as duplicate attribute keys (the later value
// wins) or blank lines dropped from the attribute run. They are
// collected in Song.Warnings.
type Warning struct {
	// Stage where the warning occurred ("header", "media")
	Stage string

	// One-based line number in the source file (0 if not applicable)
	Line int

	// Warning message
	Message string
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", w.Stage, w.Line, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
