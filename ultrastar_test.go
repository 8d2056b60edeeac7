package ultrastar_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/randompersona1/ultrastar"
)

const basicSong = `#TITLE:Livin' on a Prayer
#ARTIST:Bon Jovi
#MP3:prayer.mp3
#BPM:246
: 0 4 59 Once
: 5 3 59 u~
E
`

// writeSongFile writes a song fixture and returns its path.
func writeSongFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpen_Basic(t *testing.T) {
	path := writeSongFile(t, t.TempDir(), "song.txt", basicSong)

	song, err := ultrastar.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if title, _ := song.GetAttribute("TITLE"); title != "Livin' on a Prayer" {
		t.Errorf("TITLE = %q, want %q", title, "Livin' on a Prayer")
	}
	if artist, _ := song.GetAttribute("ARTIST"); artist != "Bon Jovi" {
		t.Errorf("ARTIST = %q, want %q", artist, "Bon Jovi")
	}
	if song.AttributeCount() != 4 {
		t.Errorf("AttributeCount() = %d, want 4", song.AttributeCount())
	}

	wantBody := []string{": 0 4 59 Once", ": 5 3 59 u~", "E"}
	if got := song.Body(); !slices.Equal(got, wantBody) {
		t.Errorf("Body() = %v, want %v", got, wantBody)
	}

	if len(song.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", song.Warnings)
	}
	if song.Dirty() {
		t.Error("freshly opened song should not be dirty")
	}
	if song.Path != path {
		t.Errorf("Path = %q, want %q", song.Path, path)
	}
}

func TestOpen_FileNotFound(t *testing.T) {
	_, err := ultrastar.Open("/nonexistent/song.txt")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestOpen_KeyNormalization(t *testing.T) {
	path := writeSongFile(t, t.TempDir(), "song.txt", basicSong)

	song, err := ultrastar.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	for _, key := range []string{"TITLE", "title", "Title", "#TITLE", " title "} {
		if _, ok := song.GetAttribute(key); !ok {
			t.Errorf("GetAttribute(%q) not found, want found", key)
		}
	}
	if !song.AttributeExists("bpm") {
		t.Error("AttributeExists(\"bpm\") = false, want true")
	}
}

func TestOpen_DuplicateAttribute(t *testing.T) {
	content := "#TITLE:First\n#ARTIST:Band\n#TITLE:Second\n: 0 1 1 la\nE\n"
	path := writeSongFile(t, t.TempDir(), "song.txt", content)

	song, err := ultrastar.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if title, _ := song.GetAttribute("TITLE"); title != "Second" {
		t.Errorf("TITLE = %q, want the later value %q", title, "Second")
	}
	if len(song.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(song.Warnings), song.Warnings)
	}
	if w := song.Warnings[0]; !strings.Contains(w.Message, "duplicate") || w.Line != 3 {
		t.Errorf("unexpected warning: %+v", w)
	}
}

func TestOpen_StrictParsing(t *testing.T) {
	content := "#TITLE:First\n#TITLE:Second\n: 0 1 1 la\nE\n"
	path := writeSongFile(t, t.TempDir(), "song.txt", content)

	_, err := ultrastar.Open(path, ultrastar.WithStrictParsing())
	if err == nil {
		t.Fatal("expected error with strict parsing")
	}

	var parseErr *ultrastar.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if parseErr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", parseErr.Path, path)
	}
	if parseErr.Line != 2 {
		t.Errorf("ParseError.Line = %d, want 2", parseErr.Line)
	}
}

func TestOpen_IgnoreWarnings(t *testing.T) {
	content := "#TITLE:First\n#TITLE:Second\n: 0 1 1 la\nE\n"
	path := writeSongFile(t, t.TempDir(), "song.txt", content)

	song, err := ultrastar.Open(path, ultrastar.WithIgnoreWarnings())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(song.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", song.Warnings)
	}
}

func TestOpen_BodyIsOpaque(t *testing.T) {
	// Once the body starts, attribute-looking lines belong to the body.
	content := "#TITLE:Song\n#BPM:120\n: 0 1 1 la\n#GAP:100\nE\n"
	path := writeSongFile(t, t.TempDir(), "song.txt", content)

	song, err := ultrastar.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if song.AttributeExists("GAP") {
		t.Error("GAP from the body leaked into the attributes")
	}
	wantBody := []string{": 0 1 1 la", "#GAP:100", "E"}
	if got := song.Body(); !slices.Equal(got, wantBody) {
		t.Errorf("Body() = %v, want %v", got, wantBody)
	}
}

func TestSong_AttributeEditing(t *testing.T) {
	path := writeSongFile(t, t.TempDir(), "song.txt", basicSong)

	song, err := ultrastar.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	// New attributes append at the end.
	song.SetAttribute("genre", "Rock")
	wantKeys := []string{"TITLE", "ARTIST", "MP3", "BPM", "GENRE"}
	if got := song.AttributeKeys(); !slices.Equal(got, wantKeys) {
		t.Errorf("AttributeKeys() = %v, want %v", got, wantKeys)
	}
	if !song.Dirty() {
		t.Error("song should be dirty after SetAttribute")
	}

	// Existing attributes keep their position.
	song.SetAttribute("TITLE", "Changed")
	if got := song.AttributeKeys(); !slices.Equal(got, wantKeys) {
		t.Errorf("AttributeKeys() after update = %v, want %v", got, wantKeys)
	}
	if title, _ := song.GetAttribute("TITLE"); title != "Changed" {
		t.Errorf("TITLE = %q, want %q", title, "Changed")
	}

	// Keys that normalize to nothing are ignored.
	song.SetAttribute("  # ", "x")
	if song.AttributeCount() != 5 {
		t.Errorf("AttributeCount() = %d, want 5", song.AttributeCount())
	}

	if !song.RemoveAttribute("GENRE") {
		t.Error("RemoveAttribute(GENRE) = false, want true")
	}
	if song.RemoveAttribute("GENRE") {
		t.Error("RemoveAttribute(GENRE) twice = true, want false")
	}
}

func TestSong_MoveAttribute(t *testing.T) {
	path := writeSongFile(t, t.TempDir(), "song.txt", basicSong)

	song, err := ultrastar.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := song.MoveAttribute(3, 0); err != nil {
		t.Fatalf("MoveAttribute failed: %v", err)
	}
	want := []string{"BPM", "TITLE", "ARTIST", "MP3"}
	if got := song.AttributeKeys(); !slices.Equal(got, want) {
		t.Errorf("AttributeKeys() = %v, want %v", got, want)
	}

	err = song.MoveAttribute(0, 99)
	var notFound *ultrastar.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("expected *NotFoundError for out-of-range move, got %T: %v", err, err)
	}
}

func TestSong_ReorderAuto(t *testing.T) {
	content := "#BPM:120\n#XCUSTOM:1\n#TITLE:Song\n#ARTIST:Band\n: 0 1 1 la\nE\n"
	path := writeSongFile(t, t.TempDir(), "song.txt", content)

	song, err := ultrastar.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	song.ReorderAuto()
	want := []string{"TITLE", "ARTIST", "BPM", "XCUSTOM"}
	if got := song.AttributeKeys(); !slices.Equal(got, want) {
		t.Errorf("AttributeKeys() = %v, want %v", got, want)
	}

	// Idempotent.
	song.ReorderAuto()
	if got := song.AttributeKeys(); !slices.Equal(got, want) {
		t.Errorf("AttributeKeys() after second reorder = %v, want %v", got, want)
	}
}

func TestSong_Attributes(t *testing.T) {
	path := writeSongFile(t, t.TempDir(), "song.txt", basicSong)

	song, err := ultrastar.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	var keys []string
	for key, value := range song.Attributes() {
		keys = append(keys, key)
		if value == "" {
			t.Errorf("attribute %s has empty value", key)
		}
	}
	want := []string{"TITLE", "ARTIST", "MP3", "BPM"}
	if !slices.Equal(keys, want) {
		t.Errorf("iteration order = %v, want %v", keys, want)
	}
}

func TestSong_DisplayName(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "artist and title",
			content: "#TITLE:Prayer\n#ARTIST:Bon Jovi\nE\n",
			want:    "Bon Jovi - Prayer",
		},
		{
			name:    "title only",
			content: "#TITLE:Prayer\nE\n",
			want:    "Prayer",
		},
		{
			name:    "artist only",
			content: "#ARTIST:Bon Jovi\nE\n",
			want:    "Bon Jovi",
		},
		{
			name:    "neither falls back to file name",
			content: "#BPM:120\nE\n",
			want:    "song",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSongFile(t, t.TempDir(), "song.txt", tt.content)

			song, err := ultrastar.Open(path)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			if got := song.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSong_IsDuet(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "plain song",
			content: basicSong,
			want:    false,
		},
		{
			name:    "performer attributes",
			content: "#TITLE:Song\n#P1:Alice\n#P2:Bob\nE\n",
			want:    true,
		},
		{
			name:    "legacy duet singer attributes",
			content: "#TITLE:Song\n#DUETSINGERP1:Alice\nE\n",
			want:    true,
		},
		{
			name:    "duet edition marker",
			content: "#TITLE:Song\n#EDITION:Best of [duet]\nE\n",
			want:    true,
		},
		{
			name:    "voice markers in the body",
			content: "#TITLE:Song\nP1\n: 0 1 1 la\nP2\n: 4 1 1 la\nE\n",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSongFile(t, t.TempDir(), "song.txt", tt.content)

			song, err := ultrastar.Open(path)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			if got := song.IsDuet(); got != tt.want {
				t.Errorf("IsDuet() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSong_AudioPath(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantOK  bool
	}{
		{
			name:    "legacy MP3 attribute",
			content: basicSong,
			want:    "prayer.mp3",
			wantOK:  true,
		},
		{
			name:    "modern AUDIO attribute",
			content: "#VERSION:2.0.0\n#TITLE:Song\n#ARTIST:Band\n#AUDIO:song.ogg\n#BPM:120\nE\n",
			want:    "song.ogg",
			wantOK:  true,
		},
		{
			name:    "blank MP3 falls through to AUDIO",
			content: "#VERSION:1.1.0\n#TITLE:Song\n#ARTIST:Band\n#MP3: \n#AUDIO:song.ogg\n#BPM:120\nE\n",
			want:    "song.ogg",
			wantOK:  true,
		},
		{
			name:    "no audio attribute",
			content: "#TITLE:Song\nE\n",
			want:    "",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSongFile(t, t.TempDir(), "song.txt", tt.content)

			song, err := ultrastar.Open(path)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			got, ok := song.AudioPath()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("AudioPath() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSong_MediaPath(t *testing.T) {
	dir := t.TempDir()
	path := writeSongFile(t, dir, "song.txt", basicSong)

	song, err := ultrastar.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	want := filepath.Join(dir, "prayer.mp3")
	if got := song.MediaPath("prayer.mp3"); got != want {
		t.Errorf("MediaPath() = %q, want %q", got, want)
	}
}
