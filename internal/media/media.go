// Package media reads and writes metadata tags in the audio files a
// song references. MP3 files get ID3v2 frames, FLAC files get Vorbis
// comments, and M4A/MP4 files get iTunes-style atoms. Reading goes
// through a single probe that understands all three containers.
package media

import (
	"path/filepath"
	"strings"

	"github.com/randompersona1/ultrastar/internal/types"
)

// WriteTags stamps tags into the audio file at path, chosen by file
// extension. cover may be nil; when set it must hold JPEG bytes and is
// embedded as front cover artwork. Cover embedding is supported for
// mp3 and flac, m4a files only receive text tags.
func WriteTags(path string, tags *types.MediaTags, cover []byte) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		return stampMP3(path, tags, cover)
	case ".flac":
		return stampFLAC(path, tags, cover)
	case ".m4a", ".mp4":
		return stampM4A(path, tags)
	default:
		return &types.UnsupportedFormatError{
			Format: ext,
			Reason: "no tag writer for this container, supported: .mp3 .flac .m4a .mp4",
		}
	}
}
