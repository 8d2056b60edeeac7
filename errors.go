package ultrastar

import (
	"github.com/randompersona1/ultrastar/internal/types"
)

// ParseError is an alias to types.ParseError for backwards compatibility.
// Re-exporting from internal/types to maintain public API.
type ParseError = types.ParseError

// InvalidVersionError is an alias to types.InvalidVersionError for backwards compatibility.
// Re-exporting from internal/types to maintain public API.
type InvalidVersionError = types.InvalidVersionError

// FileGoneError is an alias to types.FileGoneError for backwards compatibility.
// Re-exporting from internal/types to maintain public API.
type FileGoneError = types.FileGoneError

// DuplicatePathError is an alias to types.DuplicatePathError for backwards compatibility.
// Re-exporting from internal/types to maintain public API.
type DuplicatePathError = types.DuplicatePathError

// NotFoundError is an alias to types.NotFoundError for backwards compatibility.
// Re-exporting from internal/types to maintain public API.
type NotFoundError = types.NotFoundError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError for backwards compatibility.
// Re-exporting from internal/types to maintain public API.
type UnsupportedFormatError = types.UnsupportedFormatError

// Warning is an alias to types.Warning for backwards compatibility.
// Re-exporting from internal/types to maintain public API.
type Warning = types.Warning
