package media

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dhowden/tag"

	"github.com/randompersona1/ultrastar/internal/types"
)

// ReadTags extracts the metadata tags already present in the audio
// file at path. The probe detects the container itself, so this works
// for any format the tag package recognizes.
func ReadTags(path string) (*types.MediaTags, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("reading tags from %s: %w", path, err)
	}

	out := &types.MediaTags{
		Title:    m.Title(),
		Artist:   m.Artist(),
		Album:    m.Album(),
		Genre:    m.Genre(),
		HasCover: m.Picture() != nil,
	}
	if y := m.Year(); y != 0 {
		out.Year = strconv.Itoa(y)
	}
	// Language and BPM have no accessor, they only show up in the raw
	// frame map under format-specific keys.
	out.Language = rawString(m, "TLAN", "LANGUAGE", "language")
	out.BPM = rawString(m, "TBPM", "BPM", "bpm")
	return out, nil
}

func rawString(m tag.Metadata, keys ...string) string {
	raw := m.Raw()
	for _, key := range keys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				return s
			}
		case int:
			return strconv.Itoa(t)
		}
	}
	return ""
}
