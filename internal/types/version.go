package types

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatVersion is an Ultrastar file format version (the VERSION
// attribute), following the MAJOR.MINOR.PATCH grammar.
type FormatVersion struct {
	Major int
	Minor int
	Patch int
}

// ParseFormatVersion parses a version string such as "1.1.0" or
// "v2.0.0". A single leading 'v' or 'V' is tolerated. All three
// numeric components are required and must be non-negative.
//
// Returns *InvalidVersionError when the string does not match the
// grammar.
func ParseFormatVersion(s string) (FormatVersion, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > 0 && (trimmed[0] == 'v' || trimmed[0] == 'V') {
		trimmed = trimmed[1:]
	}
	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return FormatVersion{}, &InvalidVersionError{
			Version: s,
			Reason:  "expected MAJOR.MINOR.PATCH",
		}
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return FormatVersion{}, &InvalidVersionError{
				Version: s,
				Reason:  fmt.Sprintf("component %q is not a non-negative integer", p),
			}
		}
		nums[i] = n
	}
	return FormatVersion{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String renders the canonical MAJOR.MINOR.PATCH form.
func (v FormatVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare orders versions: negative if v < other, zero if equal,
// positive if v > other.
func (v FormatVersion) Compare(other FormatVersion) int {
	if v.Major != other.Major {
		return v.Major - other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor - other.Minor
	}
	return v.Patch - other.Patch
}

// Less reports whether v precedes other.
func (v FormatVersion) Less(other FormatVersion) bool {
	return v.Compare(other) < 0
}

// IsZero reports whether v is the zero version (0.0.0), which is not a
// valid format version.
func (v FormatVersion) IsZero() bool {
	return v == FormatVersion{}
}
