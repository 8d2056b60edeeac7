package media

import (
	"fmt"
	"strings"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"

	"github.com/randompersona1/ultrastar/internal/types"
)

// stampFLAC rewrites the Vorbis comment block, keeping comments for
// fields it does not touch. The front cover picture block is replaced
// when cover bytes are given.
func stampFLAC(path string, tags *types.MediaTags, cover []byte) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parsing flac file %s: %w", path, err)
	}

	var cmts *flacvorbis.MetaDataBlockVorbisComment
	cmtIdx := -1
	for idx, meta := range f.Meta {
		if meta.Type == flac.VorbisComment {
			cmts, err = flacvorbis.ParseFromMetaDataBlock(*meta)
			if err != nil {
				return fmt.Errorf("parsing vorbis comment of %s: %w", path, err)
			}
			cmtIdx = idx
			break
		}
	}
	if cmts == nil {
		cmts = flacvorbis.New()
	}

	fields := []struct {
		name  string
		value string
	}{
		{flacvorbis.FIELD_TITLE, tags.Title},
		{flacvorbis.FIELD_ARTIST, tags.Artist},
		{flacvorbis.FIELD_ALBUM, tags.Album},
		{flacvorbis.FIELD_GENRE, tags.Genre},
		{flacvorbis.FIELD_DATE, tags.Year},
		{"LANGUAGE", tags.Language},
		{"BPM", tags.BPM},
	}
	for _, field := range fields {
		if err := setComment(cmts, field.name, field.value); err != nil {
			return fmt.Errorf("setting %s on %s: %w", field.name, path, err)
		}
	}

	cmtsMeta := cmts.Marshal()
	if cmtIdx >= 0 {
		f.Meta[cmtIdx] = &cmtsMeta
	} else {
		f.Meta = append(f.Meta, &cmtsMeta)
	}

	if cover != nil {
		pic, err := flacpicture.NewFromImageData(flacpicture.PictureTypeFrontCover, "Cover", cover, "image/jpeg")
		if err != nil {
			return fmt.Errorf("building flac picture block: %w", err)
		}
		picMeta := pic.Marshal()
		replaced := false
		for idx, meta := range f.Meta {
			if meta.Type == flac.Picture {
				f.Meta[idx] = &picMeta
				replaced = true
				break
			}
		}
		if !replaced {
			f.Meta = append(f.Meta, &picMeta)
		}
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("saving flac file %s: %w", path, err)
	}
	return nil
}

// setComment replaces any existing FIELD=value comments for the field
// before adding the new one. Empty values keep whatever is there.
func setComment(cmts *flacvorbis.MetaDataBlockVorbisComment, field, value string) error {
	if value == "" {
		return nil
	}

	prefix := strings.ToUpper(field) + "="
	kept := make([]string, 0, len(cmts.Comments))
	for _, c := range cmts.Comments {
		if !strings.HasPrefix(strings.ToUpper(c), prefix) {
			kept = append(kept, c)
		}
	}
	cmts.Comments = kept
	return cmts.Add(field, value)
}
