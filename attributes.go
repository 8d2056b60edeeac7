package ultrastar

import (
	"slices"

	"github.com/randompersona1/ultrastar/internal/types"
	"github.com/randompersona1/ultrastar/internal/usdx"
)

// AttributeBlock is an alias to types.AttributeBlock for backwards compatibility.
// Re-exporting from internal/types to maintain public API.
type AttributeBlock = types.AttributeBlock

// NewAttributeBlock is a wrapper around types.NewAttributeBlock.
// Maintains the public API while delegating to internal implementation.
func NewAttributeBlock() *AttributeBlock {
	return types.NewAttributeBlock()
}

// NormalizeKey is a wrapper around types.NormalizeKey.
// Maintains the public API while delegating to internal implementation.
func NormalizeKey(key string) string {
	return types.NormalizeKey(key)
}

// CanonicalOrder returns every attribute the format defines, in the
// order ReorderAuto sorts by.
func CanonicalOrder() []string {
	return slices.Clone(usdx.CanonicalOrder)
}
