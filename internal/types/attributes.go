// Package types provides core data structures for Ultrastar song files.
//
// This package defines the AttributeBlock, Finding, FormatVersion,
// MediaTags, and error types shared by the codec, validation, and
// library layers.
package types

import (
	"cmp"
	"iter"
	"slices"
	"strings"
)

// AttributeBlock is an ordered mapping from attribute key to raw string
// value, representing the leading #KEY:VALUE run of a song file.
//
// Keys are normalized to upper-case without the leading '#'. Insertion
// order is preserved and is significant: serialization emits entries in
// the block's current order, and reordering operations manipulate it.
//
// Values are kept as raw strings; type coercion is left to callers.
type AttributeBlock struct {
	keys   []string
	values map[string]string
}

// NewAttributeBlock returns an empty attribute block.
func NewAttributeBlock() *AttributeBlock {
	return &AttributeBlock{values: make(map[string]string)}
}

// NormalizeKey converts a caller-supplied key to its canonical form:
// surrounding whitespace and a single leading '#' removed, upper-cased.
//
// Both "artist" and "#ARTIST" normalize to "ARTIST", so lookups accept
// either spelling.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	key = strings.TrimPrefix(key, "#")
	return strings.ToUpper(strings.TrimSpace(key))
}

// Len returns the number of attributes in the block.
func (b *AttributeBlock) Len() int {
	return len(b.keys)
}

// Has reports whether the key is present. The key is normalized before
// lookup.
func (b *AttributeBlock) Has(key string) bool {
	if b.values == nil {
		return false
	}
	_, ok := b.values[NormalizeKey(key)]
	return ok
}

// Get returns the value for key and whether it is present. Absence is
// not an error. The key is normalized before lookup.
//
// Example:
//
//	if bpm, ok := block.Get("bpm"); ok {
//		fmt.Println("BPM:", bpm)
//	}
func (b *AttributeBlock) Get(key string) (string, bool) {
	if b.values == nil {
		return "", false
	}
	v, ok := b.values[NormalizeKey(key)]
	return v, ok
}

// Set upserts the value for key. If the key already exists its position
// in the block is preserved; otherwise the key is appended at the end.
func (b *AttributeBlock) Set(key, value string) {
	if b.values == nil {
		b.values = make(map[string]string)
	}
	k := NormalizeKey(key)
	if _, ok := b.values[k]; !ok {
		b.keys = append(b.keys, k)
	}
	b.values[k] = value
}

// Delete removes the key from the block. It reports whether the key was
// present.
func (b *AttributeBlock) Delete(key string) bool {
	k := NormalizeKey(key)
	if _, ok := b.values[k]; !ok {
		return false
	}
	delete(b.values, k)
	if i := slices.Index(b.keys, k); i >= 0 {
		b.keys = slices.Delete(b.keys, i, i+1)
	}
	return true
}

// Keys returns the keys in block order. The returned slice is a copy.
func (b *AttributeBlock) Keys() []string {
	return slices.Clone(b.keys)
}

// All returns an iterator over key/value pairs in block order.
//
// Example:
//
//	for key, value := range block.All() {
//		fmt.Printf("#%s:%s\n", key, value)
//	}
func (b *AttributeBlock) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range b.keys {
			if !yield(k, b.values[k]) {
				return
			}
		}
	}
}

// Move relocates the attribute at oldIndex to newIndex, shifting the
// entries in between. Indices refer to block order.
func (b *AttributeBlock) Move(oldIndex, newIndex int) error {
	if oldIndex < 0 || oldIndex >= len(b.keys) {
		return &NotFoundError{Index: oldIndex}
	}
	if newIndex < 0 || newIndex >= len(b.keys) {
		return &NotFoundError{Index: newIndex}
	}
	if oldIndex == newIndex {
		return nil
	}
	k := b.keys[oldIndex]
	b.keys = slices.Delete(b.keys, oldIndex, oldIndex+1)
	b.keys = slices.Insert(b.keys, newIndex, k)
	return nil
}

// Rename changes oldKey to newKey, keeping the entry's position and
// value. If newKey already exists, the old entry is dropped and the
// existing one kept untouched. It reports whether oldKey was present.
func (b *AttributeBlock) Rename(oldKey, newKey string) bool {
	o := NormalizeKey(oldKey)
	n := NormalizeKey(newKey)
	if _, ok := b.values[o]; !ok {
		return false
	}
	if o == n {
		return true
	}
	if _, ok := b.values[n]; ok {
		b.Delete(o)
		return true
	}
	if i := slices.Index(b.keys, o); i >= 0 {
		b.keys[i] = n
	}
	b.values[n] = b.values[o]
	delete(b.values, o)
	return true
}

// Sort stably reorders the block by ascending rank. Entries with equal
// rank keep their current relative order, so ranking recognized keys
// and giving every unrecognized key the same large rank moves the
// unrecognized keys to the tail without disturbing their pairwise
// order. Sorting twice with the same rank function yields the same
// order as sorting once.
func (b *AttributeBlock) Sort(rank func(key string) int) {
	slices.SortStableFunc(b.keys, func(a, c string) int {
		return cmp.Compare(rank(a), rank(c))
	})
}

// Clone returns a deep copy of the block.
func (b *AttributeBlock) Clone() *AttributeBlock {
	clone := &AttributeBlock{
		keys:   slices.Clone(b.keys),
		values: make(map[string]string, len(b.values)),
	}
	for k, v := range b.values {
		clone.values[k] = v
	}
	return clone
}

// Equal reports whether two blocks have the same entries in the same
// order.
func (b *AttributeBlock) Equal(other *AttributeBlock) bool {
	if b == nil || other == nil {
		return b == other
	}
	if !slices.Equal(b.keys, other.keys) {
		return false
	}
	for k, v := range b.values {
		if other.values[k] != v {
			return false
		}
	}
	return true
}
