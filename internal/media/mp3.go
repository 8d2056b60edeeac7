package media

import (
	"fmt"

	"github.com/bogem/id3v2"

	"github.com/randompersona1/ultrastar/internal/types"
)

// stampMP3 writes ID3v2 frames. Empty tag values leave the existing
// frame untouched rather than clearing it.
func stampMP3(path string, tags *types.MediaTags, cover []byte) error {
	id3, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("opening id3 tag of %s: %w", path, err)
	}
	defer id3.Close()

	if tags.Title != "" {
		id3.SetTitle(tags.Title)
	}
	if tags.Artist != "" {
		id3.SetArtist(tags.Artist)
	}
	if tags.Album != "" {
		id3.SetAlbum(tags.Album)
	}
	if tags.Genre != "" {
		id3.SetGenre(tags.Genre)
	}
	if tags.Year != "" {
		id3.SetYear(tags.Year)
	}
	if tags.Language != "" {
		id3.AddTextFrame("TLAN", id3.DefaultEncoding(), tags.Language)
	}
	if tags.BPM != "" {
		id3.AddTextFrame("TBPM", id3.DefaultEncoding(), tags.BPM)
	}

	if cover != nil {
		id3.DeleteFrames(id3.CommonID("Attached picture"))
		id3.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/jpeg",
			PictureType: id3v2.PTFrontCover,
			Description: "Cover",
			Picture:     cover,
		})
	}

	if err := id3.Save(); err != nil {
		return fmt.Errorf("saving id3 tag of %s: %w", path, err)
	}
	return nil
}
