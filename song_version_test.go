package ultrastar_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/randompersona1/ultrastar"
)

func TestVersion_ExplicitAttribute(t *testing.T) {
	content := "#VERSION:1.1.0\n#TITLE:Song\n#ARTIST:Band\n#MP3:song.mp3\n#AUDIO:song.mp3\n#BPM:120\nE\n"
	path := writeSongFile(t, t.TempDir(), "song.txt", content)

	song, err := ultrastar.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if got := song.Version().String(); got != "1.1.0" {
		t.Errorf("Version() = %s, want 1.1.0", got)
	}
}

func TestVersion_DetectedFromShape(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "no VERSION attribute",
			content: basicSong,
			want:    "1.0.0",
		},
		{
			name:    "modern shape with unparseable VERSION",
			content: "#VERSION:latest\n#TITLE:Song\n#ARTIST:Band\n#AUDIO:song.mp3\n#BPM:120\nE\n",
			want:    "2.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSongFile(t, t.TempDir(), "song.txt", tt.content)

			song, err := ultrastar.Open(path)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			if got := song.Version().String(); got != tt.want {
				t.Errorf("Version() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSetVersion(t *testing.T) {
	path := writeSongFile(t, t.TempDir(), "song.txt", basicSong)

	song, err := ultrastar.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := song.SetVersion("v1.1.0"); err != nil {
		t.Fatalf("SetVersion failed: %v", err)
	}
	if v, _ := song.GetAttribute("VERSION"); v != "1.1.0" {
		t.Errorf("VERSION = %q, want canonical %q", v, "1.1.0")
	}
	if !song.Dirty() {
		t.Error("song should be dirty after SetVersion")
	}

	// Unsupported but grammatical versions may be declared.
	if err := song.SetVersion("3.5.0"); err != nil {
		t.Errorf("SetVersion(3.5.0) failed: %v", err)
	}

	err = song.SetVersion("banana")
	var invalid *ultrastar.InvalidVersionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidVersionError, got %T: %v", err, err)
	}
	if v, _ := song.GetAttribute("VERSION"); v != "3.5.0" {
		t.Errorf("failed SetVersion changed VERSION to %q", v)
	}
}

func TestMigrateVersion(t *testing.T) {
	content := "#VERSION:1.0.0\n#TITLE:Song\n#ARTIST:Band\n#MP3:song.mp3\n#BPM:120\n#MEDLEYSTARTBEAT:96\nE\n"
	path := writeSongFile(t, t.TempDir(), "song.txt", content)

	song, err := ultrastar.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := song.MigrateVersion(ultrastar.LatestVersion()); err != nil {
		t.Fatalf("MigrateVersion failed: %v", err)
	}

	if v, _ := song.GetAttribute("VERSION"); v != "2.0.0" {
		t.Errorf("VERSION = %q, want %q", v, "2.0.0")
	}
	if song.AttributeExists("MP3") {
		t.Error("MP3 still present after migration to 2.0.0")
	}
	if audio, _ := song.GetAttribute("AUDIO"); audio != "song.mp3" {
		t.Errorf("AUDIO = %q, want %q", audio, "song.mp3")
	}
	if start, _ := song.GetAttribute("MEDLEYSTART"); start != "96" {
		t.Errorf("MEDLEYSTART = %q, want %q", start, "96")
	}

	// Renames keep header positions.
	want := []string{"VERSION", "TITLE", "ARTIST", "AUDIO", "BPM", "MEDLEYSTART"}
	if got := song.AttributeKeys(); !slices.Equal(got, want) {
		t.Errorf("AttributeKeys() = %v, want %v", got, want)
	}
	if !song.Dirty() {
		t.Error("song should be dirty after MigrateVersion")
	}
}

func TestMigrateVersion_UnknownTarget(t *testing.T) {
	path := writeSongFile(t, t.TempDir(), "song.txt", basicSong)

	song, err := ultrastar.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	err = song.MigrateVersion(ultrastar.FormatVersion{Major: 9})
	var invalid *ultrastar.InvalidVersionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidVersionError, got %T: %v", err, err)
	}
	if song.Dirty() {
		t.Error("failed migration should not dirty the song")
	}
}

func TestSupportedVersions(t *testing.T) {
	versions := ultrastar.SupportedVersions()
	if len(versions) == 0 {
		t.Fatal("SupportedVersions() is empty")
	}

	for i := 1; i < len(versions); i++ {
		if !versions[i-1].Less(versions[i]) {
			t.Errorf("versions not ascending: %v before %v", versions[i-1], versions[i])
		}
	}

	if got := ultrastar.LatestVersion(); got != versions[len(versions)-1] {
		t.Errorf("LatestVersion() = %v, want %v", got, versions[len(versions)-1])
	}
	if got := ultrastar.LatestVersion().String(); got != "2.0.0" {
		t.Errorf("LatestVersion() = %s, want 2.0.0", got)
	}
}
