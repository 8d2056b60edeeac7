package ultrastar

import (
	"github.com/randompersona1/ultrastar/internal/types"
)

// MediaTags is an alias to types.MediaTags for backwards compatibility.
// Re-exporting from internal/types to maintain public API.
type MediaTags = types.MediaTags
