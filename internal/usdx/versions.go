package usdx

import (
	"maps"
	"slices"

	"github.com/randompersona1/ultrastar/internal/types"
)

// VersionSpec describes one release of the song file format: which
// attributes it requires, which it recognizes, and how attribute names
// changed relative to the release below it.
type VersionSpec struct {
	Version  types.FormatVersion
	Required []string
	Optional []string

	// PrimaryAudio lists the attributes naming the main audio file,
	// in lookup order.
	PrimaryAudio []string

	// UpgradeRenames maps old attribute names to new ones and applies
	// when a song moves up into this version. DowngradeRenames is the
	// reverse mapping and applies when a song leaves this version for
	// the one below it.
	UpgradeRenames   map[string]string
	DowngradeRenames map[string]string
}

var (
	v010 = types.FormatVersion{Major: 0, Minor: 1}
	v020 = types.FormatVersion{Major: 0, Minor: 2}
	v030 = types.FormatVersion{Major: 0, Minor: 3}
	v100 = types.FormatVersion{Major: 1}
	v110 = types.FormatVersion{Major: 1, Minor: 1}
	v120 = types.FormatVersion{Major: 1, Minor: 2}
	v200 = types.FormatVersion{Major: 2}
)

// Optional attribute sets shared between releases. 0.2.0 and 0.3.0
// recognize the same attributes, 1.0.0 drops the ones UltraStar Deluxe
// had stopped reading, and 1.1.0/1.2.0 add the multi-track and URL
// attributes.
var (
	optionalV02x = []string{
		"GAP", "COVER", "BACKGROUND", "VIDEO", "VIDEOGAP",
		"GENRE", "EDITION", "CREATOR", "LANGUAGE", "YEAR",
		"START", "END", "PREVIEWSTART",
		"MEDLEYSTARTBEAT", "MEDLEYENDBEAT", "CALCMEDLEY",
		"DUETSINGERP1", "DUETSINGERP2", "P1", "P2", "COMMENT",
		"RESOLUTION", "NOTESGAP", "RELATIVE", "ENCODING",
	}
	optionalV100 = []string{
		"GAP", "COVER", "BACKGROUND", "VIDEO", "VIDEOGAP",
		"GENRE", "EDITION", "CREATOR", "LANGUAGE", "YEAR",
		"START", "END", "PREVIEWSTART",
		"MEDLEYSTARTBEAT", "MEDLEYENDBEAT", "CALCMEDLEY",
		"P1", "P2", "COMMENT",
	}
	optionalV110 = []string{
		"VOCALS", "INSTRUMENTAL",
		"GAP", "COVER", "BACKGROUND", "VIDEO", "VIDEOGAP",
		"GENRE", "EDITION", "TAGS", "CREATOR", "LANGUAGE", "YEAR",
		"START", "END", "PREVIEWSTART",
		"MEDLEYSTARTBEAT", "MEDLEYENDBEAT", "CALCMEDLEY",
		"P1", "P2", "COMMENT", "PROVIDEDBY",
	}
	optionalV120 = []string{
		"AUDIOURL", "VOCALS", "INSTRUMENTAL",
		"GAP", "COVER", "COVERURL", "BACKGROUND", "BACKGROUNDURL",
		"VIDEO", "VIDEOURL", "VIDEOGAP",
		"GENRE", "EDITION", "TAGS", "CREATOR", "LANGUAGE", "YEAR",
		"START", "END", "PREVIEWSTART",
		"MEDLEYSTARTBEAT", "MEDLEYENDBEAT", "CALCMEDLEY",
		"P1", "P2", "COMMENT", "PROVIDEDBY",
	}
	optionalV200 = []string{
		"GAP", "COVER", "BACKGROUND", "VIDEO", "VIDEOGAP",
		"GENRE", "EDITION", "CREATOR", "LANGUAGE", "YEAR",
		"START", "END", "PREVIEWSTART",
		"MEDLEYSTART", "MEDLEYEND", "CALCMEDLEY",
		"P1", "P2", "COMMENT",
	}
)

// Versions holds every supported format version in ascending order.
// Migration walks this slice one step at a time.
var Versions = []VersionSpec{
	{
		Version:      v010,
		Required:     []string{"VERSION", "TITLE", "ARTIST", "MP3", "BPM"},
		Optional:     nil,
		PrimaryAudio: []string{"MP3"},
	},
	{
		Version:      v020,
		Required:     []string{"VERSION", "TITLE", "ARTIST", "MP3", "BPM"},
		Optional:     optionalV02x,
		PrimaryAudio: []string{"MP3"},
	},
	{
		Version:      v030,
		Required:     []string{"VERSION", "TITLE", "ARTIST", "MP3", "BPM"},
		Optional:     optionalV02x,
		PrimaryAudio: []string{"MP3"},
	},
	{
		Version:      v100,
		Required:     []string{"VERSION", "TITLE", "ARTIST", "MP3", "BPM"},
		Optional:     optionalV100,
		PrimaryAudio: []string{"MP3"},
	},
	{
		Version:      v110,
		Required:     []string{"VERSION", "TITLE", "ARTIST", "MP3", "AUDIO", "BPM"},
		Optional:     optionalV110,
		PrimaryAudio: []string{"MP3", "AUDIO"},
		UpgradeRenames: map[string]string{
			"MP3": "AUDIO",
		},
		DowngradeRenames: map[string]string{
			"AUDIO": "MP3",
		},
	},
	{
		Version:      v120,
		Required:     []string{"VERSION", "TITLE", "ARTIST", "MP3", "AUDIO", "BPM"},
		Optional:     optionalV120,
		PrimaryAudio: []string{"MP3", "AUDIO"},
		UpgradeRenames: map[string]string{
			"MP3": "AUDIO",
		},
		DowngradeRenames: map[string]string{
			"AUDIO": "MP3",
		},
	},
	{
		Version:      v200,
		Required:     []string{"VERSION", "TITLE", "ARTIST", "AUDIO", "BPM"},
		Optional:     optionalV200,
		PrimaryAudio: []string{"MP3", "AUDIO"},
		UpgradeRenames: map[string]string{
			"MP3":             "AUDIO",
			"MEDLEYSTARTBEAT": "MEDLEYSTART",
			"MEDLEYENDBEAT":   "MEDLEYEND",
		},
		DowngradeRenames: map[string]string{
			"AUDIO":       "MP3",
			"MEDLEYSTART": "MEDLEYSTARTBEAT",
			"MEDLEYEND":   "MEDLEYENDBEAT",
		},
	},
}

// fallbackVersion is assumed for files that predate the VERSION
// attribute and match no release by shape.
var fallbackVersion = v100

// Lookup returns the spec for an exact version.
func Lookup(v types.FormatVersion) (VersionSpec, bool) {
	if i := indexOf(v); i >= 0 {
		return Versions[i], true
	}
	return VersionSpec{}, false
}

// Latest returns the newest supported version.
func Latest() VersionSpec {
	return Versions[len(Versions)-1]
}

// Supported returns all supported versions in ascending order.
func Supported() []types.FormatVersion {
	out := make([]types.FormatVersion, len(Versions))
	for i, spec := range Versions {
		out[i] = spec.Version
	}
	return out
}

// Detect determines which format version the attributes belong to.
//
// A parseable VERSION attribute naming a supported release wins. Without
// one the attributes are matched against each release's shape, newest
// first: every release whose required attributes are all present is a
// candidate, and the one recognizing the most of the remaining
// attributes is chosen. Files matching nothing are assumed to be 1.0.0,
// the last release before VERSION became mandatory.
func Detect(attrs *types.AttributeBlock) types.FormatVersion {
	if raw, ok := attrs.Get("VERSION"); ok {
		if v, err := types.ParseFormatVersion(raw); err == nil {
			if _, known := Lookup(v); known {
				return v
			}
		}
	}

	best := fallbackVersion
	bestMatches := -1
	for i := len(Versions) - 1; i >= 0; i-- {
		spec := Versions[i]
		if !hasAll(attrs, spec.Required) {
			continue
		}
		matches := 0
		for _, key := range spec.Optional {
			if attrs.Has(key) {
				matches++
			}
		}
		if matches > bestMatches {
			best = spec.Version
			bestMatches = matches
		}
	}
	return best
}

// Migrate rewrites attrs from its detected version to target, applying
// each intermediate release's attribute renames along the way, and sets
// the VERSION attribute to target. Attribute order is preserved:
// renamed attributes stay in place.
func Migrate(attrs *types.AttributeBlock, target types.FormatVersion) error {
	targetIdx := indexOf(target)
	if targetIdx < 0 {
		return &types.InvalidVersionError{
			Version: target.String(),
			Reason:  "not a supported format version",
		}
	}

	currentIdx := indexOf(Detect(attrs))
	for currentIdx < targetIdx {
		applyRenames(attrs, Versions[currentIdx+1].UpgradeRenames)
		currentIdx++
	}
	for currentIdx > targetIdx {
		applyRenames(attrs, Versions[currentIdx].DowngradeRenames)
		currentIdx--
	}

	attrs.Set("VERSION", target.String())
	return nil
}

func applyRenames(attrs *types.AttributeBlock, renames map[string]string) {
	for _, oldKey := range slices.Sorted(maps.Keys(renames)) {
		attrs.Rename(oldKey, renames[oldKey])
	}
}

func hasAll(attrs *types.AttributeBlock, keys []string) bool {
	for _, key := range keys {
		if !attrs.Has(key) {
			return false
		}
	}
	return true
}

func indexOf(v types.FormatVersion) int {
	return slices.IndexFunc(Versions, func(spec VersionSpec) bool {
		return spec.Version == v
	})
}
