// Package usdx encodes knowledge about the UltraStar Deluxe song file
// format: the canonical attribute order, attribute classes used by
// validation, and the known format versions with their migration rules.
package usdx

import "slices"

// CanonicalOrder lists every attribute the format defines, in the order
// editors and the usdb database conventionally write them. Reordering a
// song sorts its attributes by position in this list; unknown attributes
// keep their relative order after the known ones.
var CanonicalOrder = []string{
	"VERSION",
	"TITLE",
	"ARTIST",
	"MP3",
	"AUDIO",
	"AUDIOURL",
	"BPM",
	"GAP",
	"COVER",
	"COVERURL",
	"BACKGROUND",
	"BACKGROUNDURL",
	"VIDEO",
	"VIDEOURL",
	"VIDEOGAP",
	"VOCALS",
	"INSTRUMENTAL",
	"GENRE",
	"TAGS",
	"EDITION",
	"CREATOR",
	"LANGUAGE",
	"YEAR",
	"START",
	"END",
	"PREVIEWSTART",
	"MEDLEYSTART",
	"MEDLEYEND",
	"MEDLEYSTARTBEAT",
	"MEDLEYENDBEAT",
	"CALCMEDLEY",
	"P1",
	"P2",
	"PROVIDEDBY",
	"COMMENT",
}

// FileKeys name attributes whose value is a path relative to the song
// file. Validation checks these paths exist on disk.
var FileKeys = []string{
	"MP3",
	"AUDIO",
	"VOCALS",
	"INSTRUMENTAL",
	"COVER",
	"BACKGROUND",
	"VIDEO",
}

// NumberKeys name attributes whose value must parse as a number. The
// format allows a decimal comma, so "285,5" is a valid BPM.
var NumberKeys = []string{
	"BPM",
	"GAP",
	"VIDEOGAP",
	"YEAR",
	"START",
	"END",
	"PREVIEWSTART",
	"MEDLEYSTART",
	"MEDLEYEND",
	"MEDLEYSTARTBEAT",
	"MEDLEYENDBEAT",
}

// URLKeys name attributes whose value must be an absolute http(s) URL.
var URLKeys = []string{
	"AUDIOURL",
	"COVERURL",
	"BACKGROUNDURL",
	"VIDEOURL",
}

var canonicalRank = func() map[string]int {
	m := make(map[string]int, len(CanonicalOrder))
	for i, key := range CanonicalOrder {
		m[key] = i
	}
	return m
}()

// Rank returns the canonical position of key, or len(CanonicalOrder)
// for attributes the format does not define. Sorting by Rank therefore
// keeps unknown attributes at the tail in their original order.
func Rank(key string) int {
	if i, ok := canonicalRank[key]; ok {
		return i
	}
	return len(CanonicalOrder)
}

// IsFileKey reports whether key references a file on disk.
func IsFileKey(key string) bool {
	return slices.Contains(FileKeys, key)
}

// IsNumberKey reports whether key holds a numeric value.
func IsNumberKey(key string) bool {
	return slices.Contains(NumberKeys, key)
}

// IsURLKey reports whether key holds a URL.
func IsURLKey(key string) bool {
	return slices.Contains(URLKeys, key)
}
