package types

// MediaTags is the slice of song attributes that maps onto the
// embedded tags of the referenced audio file. Values stay raw strings,
// matching the attribute block they come from.
type MediaTags struct {
	Title    string
	Artist   string
	Album    string
	Genre    string
	Language string
	Year     string
	BPM      string

	// HasCover reports whether a cover image is present (embedded
	// picture when probing, COVER attribute when stamping).
	HasCover bool
}
