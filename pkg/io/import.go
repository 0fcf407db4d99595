package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/grid"
)

// ReadMaze decodes a text maze from r. ReadMaze does not close r.
func ReadMaze(r io.Reader) (*grid.Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 4*errors.MaxDimension+2)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	return fromRows(rows)
}

// ImportMaze reads a text maze file at path.
func ImportMaze(path string) (*grid.Grid, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadMaze(f)
}

type document struct {
	Rows  int      `json:"rows,omitempty"`
	Cols  int      `json:"cols,omitempty"`
	Tiles []string `json:"tiles"`
}

// ReadJSON decodes a JSON maze from r.
func ReadJSON(r io.Reader) (*grid.Grid, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMaze, err, "decode maze JSON")
	}
	g, err := fromRows(doc.Tiles)
	if err != nil {
		return nil, err
	}
	rows, cols := g.Dims()
	if (doc.Rows != 0 && doc.Rows != rows) || (doc.Cols != 0 && doc.Cols != cols) {
		return nil, errors.New(errors.ErrCodeInvalidMaze,
			"declared size %dx%d does not match tiles %dx%d", doc.Rows, doc.Cols, rows, cols)
	}
	return g, nil
}

// ImportJSON reads a JSON maze file at path.
func ImportJSON(path string) (*grid.Grid, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

// ImportFile reads path as JSON when it ends in ".json" and as text
// otherwise.
func ImportFile(path string) (*grid.Grid, error) {
	if isJSON(path) {
		return ImportJSON(path)
	}
	return ImportMaze(path)
}

func fromRows(rows []string) (*grid.Grid, error) {
	g, err := grid.FromRows(rows)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMaze, err, "parse maze")
	}
	rs, cs := g.Dims()
	if err := errors.ValidateDimensions(rs, cs); err != nil {
		return nil, err
	}
	return g, nil
}

func open(path string) (*os.File, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "maze file %s not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
