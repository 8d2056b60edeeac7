// Package parsing provides tolerant parsing of Ultrastar attribute
// values and note-body markers.
package parsing

import (
	"net/url"
	"strconv"
	"strings"
)

// Number parses a numeric attribute value such as BPM or GAP.
// Surrounding whitespace is ignored and a decimal comma is accepted in
// place of a decimal point ("240,5" and "240.5" both parse to 240.5),
// matching the values found in real song files.
func Number(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	return strconv.ParseFloat(s, 64)
}

// VoiceMarker reports whether a note-body line is a voice-change
// marker ("P1", "P2", ...) and returns the voice number. Markers are
// lines consisting solely of 'P' followed by digits; lyric lines that
// merely mention P1 do not count.
func VoiceMarker(line string) (int, bool) {
	line = strings.TrimSpace(line)
	if len(line) < 2 || (line[0] != 'P' && line[0] != 'p') {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(line[1:]))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// IsURL reports whether s is a syntactically well-formed absolute
// http(s) URL. No network access is performed.
func IsURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
