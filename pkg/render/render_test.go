package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/grid"
	"github.com/matzehuels/mazewalk/pkg/search"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"SVG", FormatSVG, false},
		{"graph", FormatDOT, false},
		{"txt", FormatText, false},
		{"gif", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ParseFormat(%q) code = %s", tt.in, errors.GetCode(err))
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatExt(t *testing.T) {
	if FormatDOT.Ext() != "svg" || FormatANSI.Ext() != "txt" || FormatPDF.Ext() != "pdf" {
		t.Error("unexpected extensions")
	}
	if !FormatPNG.Binary() || FormatSVG.Binary() {
		t.Error("unexpected Binary() values")
	}
}

func TestRecorder(t *testing.T) {
	maze, _ := grid.FromRows([]string{"..X"})
	rec := NewRecorder(search.DFS)
	res, err := search.Solve(search.DFS, maze, rec)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Calls() != 1 {
		t.Fatalf("Calls() = %d, want 1", rec.Calls())
	}
	snap := rec.Snapshot(res.Found)
	if snap.Title() != "dfs: solved!" {
		t.Errorf("Title() = %q", snap.Title())
	}
	if snap.State == res.State {
		t.Error("recorder should keep its own copy of the state")
	}
	out, err := Render(snap, FormatText, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "..X\n" {
		t.Errorf("Render(text) = %q", out)
	}
}

func TestRenderFormats(t *testing.T) {
	maze, _ := grid.FromRows([]string{".#", ".X"})
	rec := NewRecorder(search.BFS)
	res, _ := search.Solve(search.BFS, maze, rec)
	snap := rec.Snapshot(res.Found)

	svg, err := Render(snap, FormatSVG, Options{Style: "blueprint", CellSize: 4})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("<title>bfs: solved!</title>")) {
		t.Error("svg missing title")
	}

	data, err := Render(snap, FormatJSON, Options{Seed: 11})
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc["strategy"] != "bfs" || doc["found"] != true || doc["seed"] != float64(11) {
		t.Errorf("json = %v", doc)
	}

	if _, err := Render(snap, FormatSVG, Options{Style: "neon"}); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("unknown style error = %v", err)
	}
	if _, err := Render(snap, "bmp", Options{}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("unknown format error = %v", err)
	}
}
