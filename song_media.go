package ultrastar

import (
	"fmt"
	"strings"

	"github.com/randompersona1/ultrastar/internal/media"
	"github.com/randompersona1/ultrastar/internal/parsing"
)

// StampOption configures behavior when stamping media tags.
type StampOption func(*stampOptions)

type stampOptions struct {
	embedCover   bool // Embed the COVER image into the audio file
	maxCoverEdge int  // Scale the cover down to this edge length (0 = keep)
}

func defaultStampOptions() *stampOptions {
	return &stampOptions{
		embedCover:   false,
		maxCoverEdge: 1000,
	}
}

// WithCover embeds the song's COVER image as front-cover artwork when
// stamping. Songs without a COVER attribute are stamped without
// artwork. MP4 containers take text tags only, the cover is skipped
// there.
func WithCover() StampOption {
	return func(o *stampOptions) {
		o.embedCover = true
	}
}

// WithMaxCoverEdge scales the embedded cover down so its longer edge
// is at most the given number of pixels. Smaller images are embedded
// as they are. The default is 1000, passing 0 embeds covers at their
// original size. Only meaningful together with WithCover.
func WithMaxCoverEdge(pixels int) StampOption {
	return func(o *stampOptions) {
		o.maxCoverEdge = pixels
	}
}

// ReadMediaTags reads the embedded tags of the song's primary audio
// file. The song must have an audio attribute (MP3 or AUDIO depending
// on the format version) and the referenced file must exist.
func (s *Song) ReadMediaTags() (*MediaTags, error) {
	audio, ok := s.AudioPath()
	if !ok {
		return nil, fmt.Errorf("song %s has no audio attribute", s.Path)
	}
	return media.ReadTags(s.MediaPath(audio))
}

// StampMediaTags writes the song's attributes into the embedded tags
// of its primary audio file: TITLE, ARTIST, GENRE, LANGUAGE, YEAR and
// BPM land in their tag counterparts, EDITION becomes the album. Empty
// attributes leave the corresponding tag untouched.
//
// MP3, FLAC and M4A/MP4 audio files are supported. Other containers
// return an *UnsupportedFormatError.
func (s *Song) StampMediaTags(opts ...StampOption) error {
	options := defaultStampOptions()
	for _, opt := range opts {
		opt(options)
	}

	audio, ok := s.AudioPath()
	if !ok {
		return fmt.Errorf("song %s has no audio attribute", s.Path)
	}

	var cover []byte
	if options.embedCover {
		if rel, ok := s.GetAttribute("COVER"); ok && strings.TrimSpace(rel) != "" {
			data, err := media.LoadCover(s.MediaPath(strings.TrimSpace(rel)), options.maxCoverEdge)
			if err != nil {
				return fmt.Errorf("loading cover: %w", err)
			}
			cover = data
		}
	}

	return media.WriteTags(s.MediaPath(audio), s.desiredMediaTags(), cover)
}

// VerifyMediaTags compares the song's attributes against the embedded
// tags of its primary audio file and reports every disagreement.
//
// Only attributes the song actually has are compared, and comparison
// is lenient: surrounding whitespace and letter case are ignored, and
// BPM values that parse on both sides are compared numerically so
// "120.0" matches "120". An empty result means the file is stamped
// consistently.
func (s *Song) VerifyMediaTags() ([]Finding, error) {
	actual, err := s.ReadMediaTags()
	if err != nil {
		return nil, err
	}
	desired := s.desiredMediaTags()

	fields := []struct {
		key              string
		desired, current string
	}{
		{"TITLE", desired.Title, actual.Title},
		{"ARTIST", desired.Artist, actual.Artist},
		{"EDITION", desired.Album, actual.Album},
		{"GENRE", desired.Genre, actual.Genre},
		{"LANGUAGE", desired.Language, actual.Language},
		{"YEAR", desired.Year, actual.Year},
		{"BPM", desired.BPM, actual.BPM},
	}

	var findings []Finding
	for _, f := range fields {
		if f.desired == "" {
			continue
		}
		if mediaValuesEqual(f.key, f.desired, f.current) {
			continue
		}
		findings = append(findings, Finding{
			Kind:    FindingMediaMismatch,
			Key:     f.key,
			Value:   f.desired,
			Message: fmt.Sprintf("song says %q but the audio file is tagged %q", f.desired, f.current),
		})
	}

	return findings, nil
}

// mediaValuesEqual compares an attribute value against a tag value.
// BPM compares numerically when both sides parse, everything else
// compares case-insensitively with surrounding whitespace removed.
func mediaValuesEqual(key, want, got string) bool {
	want = strings.TrimSpace(want)
	got = strings.TrimSpace(got)

	if key == "BPM" {
		w, errW := parsing.Number(want)
		g, errG := parsing.Number(got)
		if errW == nil && errG == nil {
			return w == g
		}
	}

	return strings.EqualFold(want, got)
}

// desiredMediaTags maps the song's attributes onto the tag fields of
// the audio file.
func (s *Song) desiredMediaTags() *MediaTags {
	get := func(key string) string {
		v, _ := s.attrs.Get(key)
		return strings.TrimSpace(v)
	}
	return &MediaTags{
		Title:    get("TITLE"),
		Artist:   get("ARTIST"),
		Album:    get("EDITION"),
		Genre:    get("GENRE"),
		Language: get("LANGUAGE"),
		Year:     get("YEAR"),
		BPM:      get("BPM"),
		HasCover: s.attrs.Has("COVER"),
	}
}
