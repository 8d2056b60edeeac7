package ultrastar

import (
	"cmp"
	"context"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/randompersona1/ultrastar/internal/usdx"
)

// LoadIssue records a song file that was discovered but could not be
// loaded.
type LoadIssue struct {
	// Path of the file that failed
	Path string

	// Err describes the failure
	Err error
}

// Library is a collection of songs discovered under a root directory.
//
// Loading is resilient: files that fail to parse are recorded in
// Issues instead of aborting the whole load, so one broken song cannot
// hide an entire collection. Songs keep the lexical order of their
// paths.
type Library struct {
	// Root directory the library was loaded from
	Root string

	// Issues lists the files that were discovered but failed to load
	Issues []LoadIssue

	songs []*Song
	paths map[string]struct{}
}

// CheckResult pairs a song with its validation findings.
type CheckResult struct {
	Song     *Song
	Findings []Finding
}

// LoadLibrary discovers every song file under root and loads them all.
//
// Discovery walks the directory tree and picks up files with a .txt
// extension, matched case-insensitively. Files are parsed in parallel
// but the resulting library lists songs in lexical path order. A file
// that fails to parse becomes a LoadIssue on the library rather than
// an error, only a missing or unreadable root fails the load itself.
//
// Options are passed through to Open for every file.
//
// Example:
//
//	lib, err := ultrastar.LoadLibrary("/songs")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d songs, %d broken files\n", lib.Len(), len(lib.Issues))
func LoadLibrary(root string, opts ...Option) (*Library, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("library root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("library root %s is not a directory", root)
	}

	lib := &Library{
		Root:  root,
		paths: make(map[string]struct{}),
	}

	var found []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			lib.Issues = append(lib.Issues, LoadIssue{Path: path, Err: err})
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(d.Name()), ".txt") {
			found = append(found, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking %s: %w", root, walkErr)
	}

	songs := make([]*Song, len(found))
	errs := make([]error, len(found))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range found {
		g.Go(func() error {
			song, err := Open(path, opts...)
			if err != nil {
				errs[i] = err
				return nil
			}
			songs[i] = song
			return nil
		})
	}
	g.Wait()

	for i, path := range found {
		if errs[i] != nil {
			lib.Issues = append(lib.Issues, LoadIssue{Path: path, Err: errs[i]})
			continue
		}
		lib.songs = append(lib.songs, songs[i])
		lib.paths[filepath.Clean(path)] = struct{}{}
	}

	return lib, nil
}

// Len returns the number of songs in the library.
func (l *Library) Len() int {
	return len(l.songs)
}

// All returns an iterator over the songs in path order. The iterator
// is restartable, ranging over it twice visits every song twice.
//
// Example:
//
//	for song := range lib.All() {
//	    fmt.Println(song.DisplayName())
//	}
func (l *Library) All() iter.Seq[*Song] {
	return func(yield func(*Song) bool) {
		for _, song := range l.songs {
			if !yield(song) {
				return
			}
		}
	}
}

// Songs returns a copy of the song list in path order. Mutating the
// returned slice does not affect the library.
func (l *Library) Songs() []*Song {
	return slices.Clone(l.songs)
}

// At returns the song at the given position in path order. Out-of-range
// indices return a *NotFoundError.
func (l *Library) At(i int) (*Song, error) {
	if i < 0 || i >= len(l.songs) {
		return nil, &NotFoundError{Index: i}
	}
	return l.songs[i], nil
}

// Add appends a song to the library. The song's path must not already
// be present, otherwise a *DuplicatePathError is returned. The song
// does not have to live under the library root.
func (l *Library) Add(song *Song) error {
	key := filepath.Clean(song.Path)
	if _, ok := l.paths[key]; ok {
		return &DuplicatePathError{Path: song.Path}
	}
	if l.paths == nil {
		l.paths = make(map[string]struct{})
	}
	l.songs = append(l.songs, song)
	l.paths[key] = struct{}{}
	return nil
}

// Remove removes the given song from the library, matching by path.
// Returns a *NotFoundError when the song is not in the library.
func (l *Library) Remove(song *Song) error {
	return l.RemovePath(song.Path)
}

// RemoveAt removes the song at the given position in path order.
// Out-of-range indices return a *NotFoundError.
func (l *Library) RemoveAt(i int) error {
	if i < 0 || i >= len(l.songs) {
		return &NotFoundError{Index: i}
	}
	delete(l.paths, filepath.Clean(l.songs[i].Path))
	l.songs = slices.Delete(l.songs, i, i+1)
	return nil
}

// RemovePath removes the song with the given path from the library.
// Paths are compared in cleaned form, so "dir/song.txt" and
// "dir//song.txt" refer to the same entry. Returns a *NotFoundError
// when no song has that path.
func (l *Library) RemovePath(path string) error {
	key := filepath.Clean(path)
	i := slices.IndexFunc(l.songs, func(s *Song) bool {
		return filepath.Clean(s.Path) == key
	})
	if i < 0 {
		return &NotFoundError{Path: path}
	}
	delete(l.paths, key)
	l.songs = slices.Delete(l.songs, i, i+1)
	return nil
}

// Search returns the songs whose attribute equals the given value.
// The key is normalized like any attribute lookup, and values compare
// case-insensitively with surrounding whitespace removed. Songs
// missing the attribute never match.
//
// Example:
//
//	hits := lib.Search("artist", "bon jovi")
func (l *Library) Search(key, value string) []*Song {
	want := strings.TrimSpace(value)
	var hits []*Song
	for _, song := range l.songs {
		v, ok := song.GetAttribute(key)
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(v), want) {
			hits = append(hits, song)
		}
	}
	return hits
}

// SearchContains returns the songs whose attribute contains the given
// value as a case-insensitive substring. Songs missing the attribute
// never match.
func (l *Library) SearchContains(key, value string) []*Song {
	want := strings.ToLower(strings.TrimSpace(value))
	var hits []*Song
	for _, song := range l.songs {
		v, ok := song.GetAttribute(key)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(v), want) {
			hits = append(hits, song)
		}
	}
	return hits
}

// AttributeUnion returns every attribute key that appears in at least
// one song. Known keys come first in canonical order, unknown keys
// follow alphabetically.
func (l *Library) AttributeUnion() []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, song := range l.songs {
		for _, key := range song.AttributeKeys() {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(usdx.Rank(a), usdx.Rank(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return keys
}

// CheckAll validates every song in the library in parallel and returns
// one result per song, in path order. Songs with no findings are
// included with an empty finding slice, so the result always has Len
// entries.
//
// The context cancels the run, a cancelled check returns the context's
// error and no results.
func (l *Library) CheckAll(ctx context.Context) ([]CheckResult, error) {
	results := make([]CheckResult, len(l.songs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, song := range l.songs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = CheckResult{Song: song, Findings: song.Check()}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
