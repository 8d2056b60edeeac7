package ultrastar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mediaTestSong(t *testing.T, pairs ...string) *Song {
	t.Helper()

	var sb strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		sb.WriteString("#" + pairs[i] + ":" + pairs[i+1] + "\n")
	}
	sb.WriteString(": 0 1 1 la\nE\n")

	path := filepath.Join(t.TempDir(), "song.txt")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatal(err)
	}

	song, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return song
}

func TestDesiredMediaTags(t *testing.T) {
	song := mediaTestSong(t,
		"TITLE", "Prayer",
		"ARTIST", "Bon Jovi",
		"EDITION", "SingStar Rocks",
		"GENRE", "Rock",
		"LANGUAGE", "English",
		"YEAR", "1986",
		"BPM", "246",
		"COVER", "cover.jpg",
	)

	tags := song.desiredMediaTags()
	if tags.Title != "Prayer" {
		t.Errorf("Title = %q, want %q", tags.Title, "Prayer")
	}
	if tags.Artist != "Bon Jovi" {
		t.Errorf("Artist = %q, want %q", tags.Artist, "Bon Jovi")
	}
	if tags.Album != "SingStar Rocks" {
		t.Errorf("Album = %q, want EDITION value %q", tags.Album, "SingStar Rocks")
	}
	if tags.Genre != "Rock" || tags.Language != "English" || tags.Year != "1986" || tags.BPM != "246" {
		t.Errorf("unexpected tags: %+v", tags)
	}
	if !tags.HasCover {
		t.Error("HasCover = false with COVER attribute, want true")
	}
}

func TestDesiredMediaTags_TrimsValues(t *testing.T) {
	song := mediaTestSong(t, "TITLE", "  Prayer  ")

	if got := song.desiredMediaTags().Title; got != "Prayer" {
		t.Errorf("Title = %q, want %q", got, "Prayer")
	}
}

func TestMediaValuesEqual(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		want, got string
		equal     bool
	}{
		{name: "exact", key: "TITLE", want: "Prayer", got: "Prayer", equal: true},
		{name: "case insensitive", key: "ARTIST", want: "Bon Jovi", got: "BON JOVI", equal: true},
		{name: "whitespace ignored", key: "TITLE", want: " Prayer ", got: "Prayer", equal: true},
		{name: "different", key: "TITLE", want: "Prayer", got: "Runaway", equal: false},
		{name: "bpm numeric", key: "BPM", want: "120.0", got: "120", equal: true},
		{name: "bpm decimal comma", key: "BPM", want: "277,8", got: "277.8", equal: true},
		{name: "bpm differs", key: "BPM", want: "120", got: "130", equal: false},
		{name: "bpm unparseable falls back to text", key: "BPM", want: "fast", got: "FAST", equal: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mediaValuesEqual(tt.key, tt.want, tt.got); got != tt.equal {
				t.Errorf("mediaValuesEqual(%q, %q, %q) = %v, want %v",
					tt.key, tt.want, tt.got, got, tt.equal)
			}
		})
	}
}

func TestReadMediaTags_NoAudioAttribute(t *testing.T) {
	song := mediaTestSong(t, "TITLE", "Song")

	if _, err := song.ReadMediaTags(); err == nil {
		t.Error("expected error for song without audio attribute")
	}
}

func TestStampMediaTags_NoAudioAttribute(t *testing.T) {
	song := mediaTestSong(t, "TITLE", "Song")

	if err := song.StampMediaTags(); err == nil {
		t.Error("expected error for song without audio attribute")
	}
}

func TestStampMediaTags_MissingCover(t *testing.T) {
	// WithCover on a song without a COVER attribute stamps without
	// artwork instead of failing. The stamp itself fails here because
	// the audio file does not exist, which is the expected error.
	song := mediaTestSong(t, "TITLE", "Song", "MP3", "missing.mp3")

	err := song.StampMediaTags(WithCover())
	if err == nil {
		t.Fatal("expected error for missing audio file")
	}
	if strings.Contains(err.Error(), "loading cover") {
		t.Errorf("cover loading ran without a COVER attribute: %v", err)
	}
}

func TestStampOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts := defaultStampOptions()

		if opts.embedCover {
			t.Error("expected embedCover to be false")
		}
		if opts.maxCoverEdge != 1000 {
			t.Errorf("expected maxCoverEdge 1000, got %d", opts.maxCoverEdge)
		}
	})

	t.Run("WithCover", func(t *testing.T) {
		opts := defaultStampOptions()
		WithCover()(opts)

		if !opts.embedCover {
			t.Error("expected embedCover to be true")
		}
	})

	t.Run("WithMaxCoverEdge", func(t *testing.T) {
		opts := defaultStampOptions()
		WithMaxCoverEdge(500)(opts)

		if opts.maxCoverEdge != 500 {
			t.Errorf("expected maxCoverEdge 500, got %d", opts.maxCoverEdge)
		}
	})
}
