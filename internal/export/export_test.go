package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/randompersona1/ultrastar/internal/types"
)

func TestGet(t *testing.T) {
	if Get(types.ExportCSV) == nil {
		t.Error("Get(ExportCSV) = nil, want registered exporter")
	}
	if Get(types.ExportJSON) == nil {
		t.Error("Get(ExportJSON) = nil, want registered exporter")
	}
	if Get(types.ExportUnknown) != nil {
		t.Error("Get(ExportUnknown) != nil, want nil")
	}
}

func TestCSV(t *testing.T) {
	columns := []string{"TITLE", "ARTIST", "BPM"}
	rows := []map[string]string{
		{"TITLE": "Song A", "ARTIST": "Band", "BPM": "120"},
		{"TITLE": "With, Comma", "ARTIST": `Quote "Me"`, "BPM": ""},
	}

	var sb strings.Builder
	if err := Get(types.ExportCSV).Export(&sb, columns, rows); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	want := "TITLE,ARTIST,BPM\n" +
		"Song A,Band,120\n" +
		"\"With, Comma\",\"Quote \"\"Me\"\"\",\n"
	if sb.String() != want {
		t.Errorf("Export() =\n%q\nwant\n%q", sb.String(), want)
	}
}

func TestCSV_Empty(t *testing.T) {
	var sb strings.Builder
	if err := Get(types.ExportCSV).Export(&sb, []string{"TITLE"}, nil); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if sb.String() != "TITLE\n" {
		t.Errorf("Export() = %q, want header only", sb.String())
	}
}

func TestJSON(t *testing.T) {
	columns := []string{"TITLE", "ARTIST"}
	rows := []map[string]string{
		{"TITLE": "Song A", "ARTIST": "Band"},
		{"TITLE": "Song B", "ARTIST": ""},
	}

	var sb strings.Builder
	if err := Get(types.ExportJSON).Export(&sb, columns, rows); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded []map[string]string
	if err := json.Unmarshal([]byte(sb.String()), &decoded); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d rows, want 2", len(decoded))
	}
	if decoded[0]["TITLE"] != "Song A" || decoded[1]["ARTIST"] != "" {
		t.Errorf("decoded rows = %v", decoded)
	}
}

func TestJSON_EmptyIsArray(t *testing.T) {
	var sb strings.Builder
	if err := Get(types.ExportJSON).Export(&sb, []string{"TITLE"}, nil); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if got := strings.TrimSpace(sb.String()); got != "[]" {
		t.Errorf("Export() = %q, want empty array", got)
	}
}

func TestJSON_DropsUnlistedColumns(t *testing.T) {
	rows := []map[string]string{
		{"TITLE": "Song A", "SECRET": "nope"},
	}

	var sb strings.Builder
	if err := Get(types.ExportJSON).Export(&sb, []string{"TITLE"}, rows); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if strings.Contains(sb.String(), "SECRET") {
		t.Errorf("Export() leaked a column not in the projection: %s", sb.String())
	}
}
