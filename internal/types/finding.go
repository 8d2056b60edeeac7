package types

import "fmt"

// FindingKind classifies a validation finding.
type FindingKind int

const (
	// FindingMissingAttribute means a required attribute is absent.
	FindingMissingAttribute FindingKind = iota
	// FindingBadNumber means a numeric attribute does not parse or is
	// negative.
	FindingBadNumber
	// FindingMissingFile means a file-path attribute does not resolve
	// to an existing file in the song folder.
	FindingMissingFile
	// FindingBadURL means a URL attribute is not a well-formed
	// absolute URL.
	FindingBadURL
	// FindingDuetAttributes means the P1/P2 duet attributes are not
	// paired consistently.
	FindingDuetAttributes
	// FindingDuetMarkers means the note body's voice-change markers do
	// not match the declared duet roles.
	FindingDuetMarkers
	// FindingEmptyBody means the song has no note body.
	FindingEmptyBody
	// FindingMediaMismatch means an embedded media tag disagrees with
	// the corresponding song attribute.
	FindingMediaMismatch
)

// String returns a short name for the kind.
func (k FindingKind) String() string {
	switch k {
	case FindingMissingAttribute:
		return "missing attribute"
	case FindingBadNumber:
		return "bad number"
	case FindingMissingFile:
		return "missing file"
	case FindingBadURL:
		return "bad url"
	case FindingDuetAttributes:
		return "duet attributes"
	case FindingDuetMarkers:
		return "duet markers"
	case FindingEmptyBody:
		return "empty body"
	case FindingMediaMismatch:
		return "media mismatch"
	default:
		return "unknown"
	}
}

// Finding is one data-quality diagnostic produced by a validation.
//
// Validations report findings instead of failing, so a caller can
// collect the full diagnostic set for a song or a whole library in one
// pass. An empty finding slice means the validated aspect is healthy.
type Finding struct {
	// Kind of problem found
	Kind FindingKind

	// Offending attribute key ("" when the finding is not tied to a
	// single attribute, e.g. an empty note body)
	Key string

	// Offending value, if any
	Value string

	// Human-readable detail
	Message string
}

// String returns a human-readable description of the finding.
func (f Finding) String() string {
	switch {
	case f.Key != "" && f.Message != "":
		return fmt.Sprintf("%s: %s: %s", f.Key, f.Kind, f.Message)
	case f.Key != "":
		return fmt.Sprintf("%s: %s", f.Key, f.Kind)
	case f.Message != "":
		return fmt.Sprintf("%s: %s", f.Kind, f.Message)
	default:
		return f.Kind.String()
	}
}
