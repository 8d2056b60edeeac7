package ultrastar

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/randompersona1/ultrastar/internal/header"
	"github.com/randompersona1/ultrastar/internal/parsing"
	"github.com/randompersona1/ultrastar/internal/usdx"
)

// Song represents one opened Ultrastar song file: the attribute header
// plus the note body.
//
// The header is fully parsed into an ordered attribute block and can be
// edited through the typed accessors. The note body is opaque: it is
// carried through byte for byte and written back unchanged on Flush.
//
// A Song holds no open file handle. Open reads the whole file, Flush
// and SaveAs reopen it for the duration of the write.
//
//	song, err := ultrastar.Open("song.txt")
//	if err != nil {
//		return err
//	}
//	fmt.Println(song.DisplayName())
type Song struct {
	// Path is the file this Song was read from. It identifies the Song
	// within a Library and is the target of Flush.
	Path string

	// Warnings encountered during parsing (non-fatal issues).
	Warnings []Warning

	attrs      *AttributeBlock
	body       []string
	lineEnding string
	dirty      bool
}

// Open opens a song file and parses its attribute header.
//
// Parsing is permissive: duplicate attributes keep the later value,
// blank lines and comment-like lines inside the header are dropped.
// Every recovered oddity lands in Song.Warnings.
//
// Options can be provided to customize parsing behavior:
//
//	song, err := ultrastar.Open("song.txt",
//	    ultrastar.WithStrictParsing(),
//	)
//
// Example:
//
//	song, err := ultrastar.Open("song.txt")
//	if err != nil {
//		return err
//	}
//	title, _ := song.GetAttribute("TITLE")
//	fmt.Println(title)
func Open(path string, opts ...Option) (*Song, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open song file: %w", err)
	}
	defer f.Close()

	res, err := header.Parse(f, path, options.strictParsing)
	if err != nil {
		return nil, err
	}

	song := &Song{
		Path:       path,
		Warnings:   res.Warnings,
		attrs:      res.Attributes,
		body:       res.Body,
		lineEnding: res.LineEnding,
	}
	if options.ignoreWarnings {
		song.Warnings = nil
	}
	return song, nil
}

// OpenContext opens a song file with context support for cancellation.
//
// This is a thin wrapper around Open() that checks context before
// starting. Song files are small, so parsing itself is not
// interruptible.
func OpenContext(ctx context.Context, path string, opts ...Option) (*Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple song files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any
// file fails to open, an error is returned and the partial results are
// discarded.
//
// Example:
//
//	songs, err := ultrastar.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, s := range songs {
//		fmt.Println(s.DisplayName())
//	}
func OpenMany(ctx context.Context, paths ...string) ([]*Song, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Song, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			song, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = song
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// GetAttribute returns the value of an attribute. The key matches
// case-insensitively, with or without the leading #. Absence is not an
// error: the second return value reports whether the attribute exists.
func (s *Song) GetAttribute(key string) (string, bool) {
	return s.attrs.Get(key)
}

// AttributeExists reports whether the song has the given attribute.
func (s *Song) AttributeExists(key string) bool {
	return s.attrs.Has(key)
}

// SetAttribute sets an attribute and marks the song dirty. An existing
// attribute keeps its position in the header, a new one is appended at
// the end. Unknown keys are accepted, the format's attribute list only
// matters for validation. Keys that normalize to the empty string are
// ignored.
func (s *Song) SetAttribute(key, value string) {
	if NormalizeKey(key) == "" {
		return
	}
	s.attrs.Set(key, value)
	s.dirty = true
}

// RemoveAttribute deletes an attribute and reports whether it was
// present. The song is marked dirty only when something was removed.
func (s *Song) RemoveAttribute(key string) bool {
	if !s.attrs.Delete(key) {
		return false
	}
	s.dirty = true
	return true
}

// MoveAttribute moves the attribute at position from to position to,
// shifting the ones in between. Positions are zero-based header
// positions as reported by AttributeKeys.
func (s *Song) MoveAttribute(from, to int) error {
	if err := s.attrs.Move(from, to); err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// ReorderAuto reorders the attribute header into the canonical
// attribute order. Unrecognized attributes move to the tail, keeping
// their relative order. Reordering twice yields the same result as
// reordering once.
//
// A custom order can be passed to sort by instead, attributes not named
// in it move to the tail:
//
//	song.ReorderAuto("TITLE", "ARTIST", "BPM")
func (s *Song) ReorderAuto(order ...string) {
	rank := usdx.Rank
	if len(order) > 0 {
		index := make(map[string]int, len(order))
		for i, key := range order {
			index[NormalizeKey(key)] = i
		}
		rank = func(key string) int {
			if i, ok := index[key]; ok {
				return i
			}
			return len(order)
		}
	}
	s.attrs.Sort(rank)
	s.dirty = true
}

// AttributeKeys returns the attribute keys in header order.
func (s *Song) AttributeKeys() []string {
	return s.attrs.Keys()
}

// Attributes iterates over the attribute header in order.
//
//	for key, value := range song.Attributes() {
//		fmt.Printf("#%s:%s\n", key, value)
//	}
func (s *Song) Attributes() iter.Seq2[string, string] {
	return s.attrs.All()
}

// AttributeCount returns the number of attributes in the header.
func (s *Song) AttributeCount() int {
	return s.attrs.Len()
}

// Body returns a copy of the note body lines, without line
// terminators. The body is opaque to this package and cannot be
// edited through it.
func (s *Song) Body() []string {
	return slices.Clone(s.body)
}

// Dirty reports whether the song has unflushed changes.
func (s *Song) Dirty() bool {
	return s.dirty
}

// DisplayName returns "Artist - Title" built from the header,
// falling back to whichever half exists, then to the file name.
func (s *Song) DisplayName() string {
	title, _ := s.attrs.Get("TITLE")
	artist, _ := s.attrs.Get("ARTIST")
	title = strings.TrimSpace(title)
	artist = strings.TrimSpace(artist)

	switch {
	case artist != "" && title != "":
		return artist + " - " + title
	case title != "":
		return title
	case artist != "":
		return artist
	default:
		base := filepath.Base(s.Path)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
}

// AudioPath returns the value of the song's primary audio attribute.
// Which attributes count and in which order depends on the detected
// format version, older releases use MP3, newer ones prefer AUDIO.
// The value is a path relative to the song's folder, see MediaPath.
func (s *Song) AudioPath() (string, bool) {
	keys := []string{"MP3", "AUDIO"}
	if spec, ok := usdx.Lookup(s.Version()); ok {
		keys = spec.PrimaryAudio
	}
	for _, key := range keys {
		if v, ok := s.attrs.Get(key); ok && strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", false
}

// Dir returns the song's folder, the directory every media reference
// in the header is relative to.
func (s *Song) Dir() string {
	return filepath.Dir(s.Path)
}

// MediaPath resolves a media file reference from the header against
// the song's folder.
func (s *Song) MediaPath(rel string) string {
	return filepath.Join(s.Dir(), rel)
}

// IsDuet reports whether the song is a duet. A song counts as a duet
// when it names performers through P1/P2 style attributes, when its
// edition marks it as one, or when the note body contains voice-change
// markers.
func (s *Song) IsDuet() bool {
	if s.attrs.Has("P1") || s.attrs.Has("P2") ||
		s.attrs.Has("DUETSINGERP1") || s.attrs.Has("DUETSINGERP2") {
		return true
	}
	if edition, ok := s.attrs.Get("EDITION"); ok {
		if strings.Contains(strings.ToUpper(edition), "[DUET]") {
			return true
		}
	}
	return len(s.voices()) > 0
}

// voices returns the distinct voice numbers marked in the note body,
// ascending.
func (s *Song) voices() []int {
	var voices []int
	for _, line := range s.body {
		if n, ok := parsing.VoiceMarker(line); ok && !slices.Contains(voices, n) {
			voices = append(voices, n)
		}
	}
	slices.Sort(voices)
	return voices
}
