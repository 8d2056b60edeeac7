package media

import (
	"fmt"

	mp4tag "github.com/Sorrow446/go-mp4tag"

	"github.com/randompersona1/ultrastar/internal/types"
)

// stampM4A writes iTunes-style atoms. Genre, year, language and BPM go
// into freeform atoms so no information is coerced into the wrong
// numeric type.
func stampM4A(path string, tags *types.MediaTags) error {
	mp4, err := mp4tag.Open(path)
	if err != nil {
		return fmt.Errorf("opening mp4 file %s: %w", path, err)
	}
	defer mp4.Close()

	custom := make(map[string]string)
	if tags.Genre != "" {
		custom["GENRE"] = tags.Genre
	}
	if tags.Year != "" {
		custom["YEAR"] = tags.Year
	}
	if tags.Language != "" {
		custom["LANGUAGE"] = tags.Language
	}
	if tags.BPM != "" {
		custom["BPM"] = tags.BPM
	}

	t := &mp4tag.MP4Tags{
		Title:  tags.Title,
		Artist: tags.Artist,
		Album:  tags.Album,
		Custom: custom,
	}

	if err := mp4.Write(t, []string{}); err != nil {
		return fmt.Errorf("writing mp4 tags of %s: %w", path, err)
	}
	return nil
}
