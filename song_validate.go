package ultrastar

import (
	"fmt"
	"os"
	"strings"

	"github.com/randompersona1/ultrastar/internal/parsing"
	"github.com/randompersona1/ultrastar/internal/usdx"
)

// ValidateAttributes checks the attribute header against the song's
// detected format version and returns every violation found.
//
// Three classes of problems are reported: required attributes that are
// missing, numeric attributes that do not parse or are negative, and
// file attributes whose target does not exist next to the song file.
// An empty result means the header is sound.
//
// Validation never fails, it reports. Callers wanting a yes/no answer
// can test len(findings) == 0.
func (s *Song) ValidateAttributes() []Finding {
	var findings []Finding

	spec, _ := usdx.Lookup(s.Version())
	for _, key := range spec.Required {
		// A missing VERSION attribute is legal, detection falls back
		// to the pre-VERSION releases.
		if key == "VERSION" {
			continue
		}
		if !s.attrs.Has(key) {
			findings = append(findings, Finding{
				Kind:    FindingMissingAttribute,
				Key:     key,
				Message: fmt.Sprintf("required attribute %s is missing", key),
			})
		}
	}

	for key, value := range s.attrs.All() {
		if usdx.IsNumberKey(key) {
			n, err := parsing.Number(value)
			switch {
			case err != nil:
				findings = append(findings, Finding{
					Kind:    FindingBadNumber,
					Key:     key,
					Value:   value,
					Message: fmt.Sprintf("%s is not a number: %q", key, value),
				})
			case n < 0:
				findings = append(findings, Finding{
					Kind:    FindingBadNumber,
					Key:     key,
					Value:   value,
					Message: fmt.Sprintf("%s is negative: %q", key, value),
				})
			}
		}

		if usdx.IsFileKey(key) {
			rel := strings.TrimSpace(value)
			if rel == "" {
				findings = append(findings, Finding{
					Kind:    FindingMissingFile,
					Key:     key,
					Value:   value,
					Message: fmt.Sprintf("%s references no file", key),
				})
				continue
			}
			if _, err := os.Stat(s.MediaPath(rel)); err != nil {
				findings = append(findings, Finding{
					Kind:    FindingMissingFile,
					Key:     key,
					Value:   value,
					Message: fmt.Sprintf("%s references %s, which does not exist", key, rel),
				})
			}
		}
	}

	return findings
}

// ValidateDuet checks that the duet attributes and the note body agree.
//
// Performer names must come in pairs: P1 without P2 (or DUETSINGERP1
// without DUETSINGERP2) is reported. When the body carries voice-change
// markers, a single marked voice is reported, and so is a mismatch
// between the number of marked voices and the number of named
// performers. Songs without any duet traits produce no findings.
func (s *Song) ValidateDuet() []Finding {
	var findings []Finding

	pairs := []struct{ first, second string }{
		{"P1", "P2"},
		{"DUETSINGERP1", "DUETSINGERP2"},
	}
	for _, pair := range pairs {
		if s.attrs.Has(pair.first) != s.attrs.Has(pair.second) {
			present, missing := pair.first, pair.second
			if s.attrs.Has(pair.second) {
				present, missing = pair.second, pair.first
			}
			findings = append(findings, Finding{
				Kind:    FindingDuetAttributes,
				Key:     missing,
				Message: fmt.Sprintf("%s is set but %s is missing", present, missing),
			})
		}
	}

	voices := s.voices()
	if len(voices) == 1 {
		findings = append(findings, Finding{
			Kind:    FindingDuetMarkers,
			Message: fmt.Sprintf("note body marks only voice P%d", voices[0]),
		})
	}

	performers := 0
	if s.attrs.Has("P1") || s.attrs.Has("DUETSINGERP1") {
		performers++
	}
	if s.attrs.Has("P2") || s.attrs.Has("DUETSINGERP2") {
		performers++
	}
	if performers > 0 && len(voices) > 0 && performers != len(voices) {
		findings = append(findings, Finding{
			Kind: FindingDuetMarkers,
			Message: fmt.Sprintf("header names %d performers but the note body marks %d voices",
				performers, len(voices)),
		})
	}

	return findings
}

// ValidateURLs checks that every URL attribute holds a well-formed
// absolute http(s) URL. No network access happens, this is a syntax
// check only.
func (s *Song) ValidateURLs() []Finding {
	var findings []Finding

	for key, value := range s.attrs.All() {
		if !usdx.IsURLKey(key) {
			continue
		}
		if !parsing.IsURL(value) {
			findings = append(findings, Finding{
				Kind:    FindingBadURL,
				Key:     key,
				Value:   value,
				Message: fmt.Sprintf("%s is not a valid URL: %q", key, value),
			})
		}
	}

	return findings
}

// ValidateKaraoke reports whether the song is playable as plain
// karaoke: title, artist and a parseable BPM are present, the primary
// audio file exists on disk, and the note body is not empty.
func (s *Song) ValidateKaraoke() bool {
	if !s.attrs.Has("TITLE") || !s.attrs.Has("ARTIST") {
		return false
	}

	bpm, ok := s.attrs.Get("BPM")
	if !ok {
		return false
	}
	if _, err := parsing.Number(bpm); err != nil {
		return false
	}

	audio, ok := s.AudioPath()
	if !ok {
		return false
	}
	if _, err := os.Stat(s.MediaPath(audio)); err != nil {
		return false
	}

	return len(s.body) > 0
}

// Check runs every validation and returns the combined findings: the
// attribute, duet and URL checks plus an empty-body finding when the
// song has no notes. An empty result means the song passed everything,
// including ValidateKaraoke as long as the audio attribute is present.
func (s *Song) Check() []Finding {
	var findings []Finding
	findings = append(findings, s.ValidateAttributes()...)
	findings = append(findings, s.ValidateDuet()...)
	findings = append(findings, s.ValidateURLs()...)

	if len(s.body) == 0 {
		findings = append(findings, Finding{
			Kind:    FindingEmptyBody,
			Message: "song has no note body",
		})
	}

	return findings
}
