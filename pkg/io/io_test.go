package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/grid"
	"github.com/matzehuels/mazewalk/pkg/search"
)

func TestReadMaze(t *testing.T) {
	in := "..#\r\n#.X\r\n\n\n"
	g, err := ReadMaze(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadMaze() error: %v", err)
	}
	rows, cols := g.Dims()
	if rows != 2 || cols != 3 {
		t.Fatalf("Dims() = %d,%d, want 2,3", rows, cols)
	}
	if !g.IsExit(grid.Coord{Row: 1, Col: 2}) || !g.IsWall(grid.Coord{Row: 0, Col: 2}) {
		t.Errorf("tiles parsed wrong:\n%s", g)
	}
}

func TestReadMazeKeepsSpaceRows(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantFound bool
	}{
		{"bottom row of spaces", "..#\n   \n", false},
		{"exit reached through space row", ".#X\n   \n", true},
		{"space row before crlf blank lines", ".#X\r\n   \r\n\r\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReadMaze(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("ReadMaze() error: %v", err)
			}
			rows, cols := g.Dims()
			if rows != 2 || cols != 3 {
				t.Fatalf("Dims() = %d,%d, want 2,3", rows, cols)
			}
			for col := range cols {
				if tile := g.TileAt(grid.Coord{Row: 1, Col: col}); tile != grid.Empty {
					t.Errorf("TileAt(1,%d) = %v, want empty", col, tile)
				}
			}
			res, err := search.Solve(search.BFS, g, nil)
			if err != nil {
				t.Fatal(err)
			}
			if res.Found != tt.wantFound {
				t.Errorf("Found = %v, want %v", res.Found, tt.wantFound)
			}
		})
	}
}

func TestReadMazeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"ragged", "...\n..\n"},
		{"glyph", "..?\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadMaze(strings.NewReader(tt.in))
			if !errors.Is(err, errors.ErrCodeInvalidMaze) {
				t.Errorf("ReadMaze(%q) error = %v, want %s", tt.in, err, errors.ErrCodeInvalidMaze)
			}
		})
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	g, _ := grid.FromRows([]string{"..#.", "#..X"})

	var buf bytes.Buffer
	if err := WriteMaze(g, &buf); err != nil {
		t.Fatal(err)
	}
	back, err := ReadMaze(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if back.String() != g.String() {
		t.Errorf("text round trip = %q, want %q", back.String(), g.String())
	}

	buf.Reset()
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatal(err)
	}
	back, err = ReadJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if back.String() != g.String() {
		t.Errorf("json round trip = %q, want %q", back.String(), g.String())
	}
}

func TestReadJSONSizeMismatch(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"rows": 3, "tiles": ["..", ".X"]}`))
	if !errors.Is(err, errors.ErrCodeInvalidMaze) {
		t.Errorf("ReadJSON() error = %v, want %s", err, errors.ErrCodeInvalidMaze)
	}
}

func TestFileHelpers(t *testing.T) {
	dir := t.TempDir()
	g, _ := grid.FromRows([]string{".#", ".X"})

	for _, name := range []string{"maze.txt", "maze.json"} {
		path := filepath.Join(dir, name)
		if err := ExportFile(g, path); err != nil {
			t.Fatalf("ExportFile(%s): %v", name, err)
		}
		back, err := ImportFile(path)
		if err != nil {
			t.Fatalf("ImportFile(%s): %v", name, err)
		}
		if back.String() != g.String() {
			t.Errorf("%s round trip = %q", name, back.String())
		}
	}

	_, err := ImportMaze(filepath.Join(dir, "missing.txt"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportMaze(missing) error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}
