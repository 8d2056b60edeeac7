package ultrastar

// Option configures behavior when opening song files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	song, err := ultrastar.Open("song.txt",
//	    ultrastar.WithStrictParsing(),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	strictParsing  bool // Fail on any header problem
	ignoreWarnings bool // Suppress all warnings
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		strictParsing:  false,
		ignoreWarnings: false,
	}
}

// WithStrictParsing treats any header problem as a fatal error.
//
// By default, parsing repairs what it can: comment-like lines without
// a colon are dropped, attribute lines with an empty key are skipped,
// and duplicate attributes keep the later value. Each repair is
// reported as a warning alongside the parsed song.
//
// With strict parsing enabled, any of these problems becomes a
// *ParseError carrying the file path and line number.
//
// Example:
//
//	song, err := ultrastar.Open("song.txt", ultrastar.WithStrictParsing())
//	// err != nil if the header needed ANY repair
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// By default, warnings about repaired header problems are collected in
// Song.Warnings. This option discards them. Parsing behaves exactly
// the same either way.
//
// Example:
//
//	song, err := ultrastar.Open("song.txt", ultrastar.WithIgnoreWarnings())
//	// song.Warnings will always be empty
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}
