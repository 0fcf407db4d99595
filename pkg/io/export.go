package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/mazewalk/pkg/grid"
)

// WriteMaze writes g in text form, one row per line.
// The output can be re-imported with [ReadMaze].
func WriteMaze(g *grid.Grid, w io.Writer) error {
	if _, err := io.WriteString(w, g.String()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportMaze writes g to a text file at path.
func ExportMaze(g *grid.Grid, path string) error {
	return export(path, func(w io.Writer) error { return WriteMaze(g, w) })
}

// WriteJSON encodes g as JSON and writes it to w.
func WriteJSON(g *grid.Grid, w io.Writer) error {
	rows, cols := g.Dims()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Rows: rows, Cols: cols, Tiles: g.Rows()}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
func ExportJSON(g *grid.Grid, path string) error {
	return export(path, func(w io.Writer) error { return WriteJSON(g, w) })
}

// ExportFile writes JSON when path ends in ".json" and text otherwise.
func ExportFile(g *grid.Grid, path string) error {
	if isJSON(path) {
		return ExportJSON(g, path)
	}
	return ExportMaze(g, path)
}

func export(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
