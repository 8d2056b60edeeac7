package ultrastar

import (
	"github.com/randompersona1/ultrastar/internal/usdx"
)

// Version returns the format version the song file conforms to.
//
// When the header carries a parseable VERSION attribute naming a
// supported release, that wins. Otherwise the version is inferred from
// the header's shape: the highest supported release whose required
// attributes are all present and whose optional attributes match best.
// Files that predate versioned headers come out as 1.0.0.
func (s *Song) Version() FormatVersion {
	return usdx.Detect(s.attrs)
}

// DeclaredVersion returns the parsed VERSION attribute. The second
// return value is false when the attribute is absent or malformed.
// Unlike Version this never guesses, so a file that simply omits the
// attribute reports no declared version.
func (s *Song) DeclaredVersion() (FormatVersion, bool) {
	raw, ok := s.attrs.Get("VERSION")
	if !ok {
		return FormatVersion{}, false
	}
	v, err := ParseFormatVersion(raw)
	if err != nil {
		return FormatVersion{}, false
	}
	return v, true
}

// SetVersion sets the VERSION attribute to the given version string
// without touching any other attribute. The string must parse as
// MAJOR.MINOR.PATCH but does not have to name a supported release,
// future versions can be declared ahead of library support.
//
// Use MigrateVersion to convert a song between releases, renames
// included.
func (s *Song) SetVersion(version string) error {
	v, err := ParseFormatVersion(version)
	if err != nil {
		return err
	}
	s.attrs.Set("VERSION", v.String())
	s.dirty = true
	return nil
}

// MigrateVersion converts the song to the given format version,
// applying every attribute rename between the current release and the
// target in order. Upgrading from 1.0.0 to 2.0.0 renames MP3 to AUDIO
// and the MEDLEY*BEAT attributes to their beat-less forms, downgrading
// reverses that. The VERSION attribute is set to the target.
//
// The target must be a supported release, otherwise an
// *InvalidVersionError is returned and the song is unchanged.
func (s *Song) MigrateVersion(target FormatVersion) error {
	if err := usdx.Migrate(s.attrs, target); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// SupportedVersions returns every format version this library knows,
// in ascending order.
func SupportedVersions() []FormatVersion {
	return usdx.Supported()
}

// LatestVersion returns the newest supported format version.
func LatestVersion() FormatVersion {
	return usdx.Latest().Version
}
