package ultrastar

import (
	"github.com/randompersona1/ultrastar/internal/types"
)

// Finding is an alias to types.Finding for backwards compatibility.
// Re-exporting from internal/types to maintain public API.
type Finding = types.Finding

// FindingKind is an alias to types.FindingKind for backwards compatibility.
// Re-exporting from internal/types to maintain public API.
type FindingKind = types.FindingKind

// Re-export all finding kind constants.
const (
	FindingMissingAttribute = types.FindingMissingAttribute
	FindingBadNumber        = types.FindingBadNumber
	FindingMissingFile      = types.FindingMissingFile
	FindingBadURL           = types.FindingBadURL
	FindingDuetAttributes   = types.FindingDuetAttributes
	FindingDuetMarkers      = types.FindingDuetMarkers
	FindingEmptyBody        = types.FindingEmptyBody
	FindingMediaMismatch    = types.FindingMediaMismatch
)
