package grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDimensions is returned when a maze would have zero (or
	// negative) rows or columns.
	ErrInvalidDimensions = errors.New("maze dimensions must be positive")

	// ErrRaggedRows is returned by [FromRows] when rows differ in length.
	ErrRaggedRows = errors.New("maze rows must have equal length")

	// ErrUnknownGlyph is returned by [FromRows] for characters outside the
	// tile alphabet.
	ErrUnknownGlyph = errors.New("unknown maze glyph")
)

// View is read-only access to a maze: its bounds and tile classification.
// The search engine consumes mazes only through this interface.
type View interface {
	// Dims returns (rows, cols).
	Dims() (rows, cols int)

	// InBounds reports whether 0 ≤ c.Row < rows and 0 ≤ c.Col < cols.
	InBounds(c Coord) bool

	// TileAt returns the classification of c. Only valid when InBounds(c).
	TileAt(c Coord) Tile

	// IsWall reports whether c is a wall. Only valid when InBounds(c).
	IsWall(c Coord) bool

	// IsExit reports whether c is an exit. Only valid when InBounds(c).
	IsExit(c Coord) bool
}

// Lookup is the bounds-checked form of [View.TileAt].
func Lookup(v View, c Coord) (Tile, bool) {
	if !v.InBounds(c) {
		return Empty, false
	}
	return v.TileAt(c), true
}

// Grid is an in-memory rectangular maze stored row-major.
type Grid struct {
	rows, cols int
	tiles      []Tile
}

// New returns a rows×cols grid of Empty tiles.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Grid{rows: rows, cols: cols, tiles: make([]Tile, rows*cols)}, nil
}

// Glyphs used by [FromRows] and [Grid.String].
const (
	GlyphEmpty = '.'
	GlyphWall  = '#'
	GlyphExit  = 'X'
)

// FromRows builds a grid from one string per row. '.' and ' ' are Empty,
// '#' is Wall, 'X' and 'E' are Exit.
//
//	g, err := grid.FromRows([]string{
//	    "..#",
//	    "#.#",
//	    "..X",
//	})
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	width := len([]rune(rows[0]))
	g, err := New(len(rows), width)
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedRows, r, len(runes), width)
		}
		for c, ch := range runes {
			t, ok := tileForGlyph(ch)
			if !ok {
				return nil, fmt.Errorf("%w %q at %v", ErrUnknownGlyph, ch, Coord{Row: r, Col: c})
			}
			g.tiles[r*width+c] = t
		}
	}
	return g, nil
}

func tileForGlyph(ch rune) (Tile, bool) {
	switch ch {
	case GlyphEmpty, ' ':
		return Empty, true
	case GlyphWall:
		return Wall, true
	case GlyphExit, 'E':
		return Exit, true
	}
	return Empty, false
}

// Dims returns (rows, cols).
func (g *Grid) Dims() (rows, cols int) { return g.rows, g.cols }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// TileAt returns the tile at c. It panics if c is out of bounds.
func (g *Grid) TileAt(c Coord) Tile { return g.tiles[g.index(c)] }

// IsWall reports whether c is a wall.
func (g *Grid) IsWall(c Coord) bool { return g.TileAt(c) == Wall }

// IsExit reports whether c is an exit.
func (g *Grid) IsExit(c Coord) bool { return g.TileAt(c) == Exit }

// Set classifies c as t. Generators use it while building a maze; it must
// not be called while a search is reading the grid.
func (g *Grid) Set(c Coord, t Tile) { g.tiles[g.index(c)] = t }

// Fill sets every tile to t.
func (g *Grid) Fill(t Tile) {
	for i := range g.tiles {
		g.tiles[i] = t
	}
}

// Exits returns every exit coordinate in row-major order.
func (g *Grid) Exits() []Coord {
	var out []Coord
	for i, t := range g.tiles {
		if t == Exit {
			out = append(out, Coord{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return out
}

// Count returns how many tiles are classified t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, v := range g.tiles {
		if v == t {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{rows: g.rows, cols: g.cols, tiles: tiles}
}

// Rows returns the grid as one glyph string per row, the inverse of [FromRows].
func (g *Grid) Rows() []string {
	out := make([]string, g.rows)
	var b strings.Builder
	for r := range g.rows {
		b.Reset()
		for c := range g.cols {
			b.WriteRune(Glyph(g.tiles[r*g.cols+c]))
		}
		out[r] = b.String()
	}
	return out
}

func (g *Grid) String() string { return strings.Join(g.Rows(), "\n") + "\n" }

// Glyph returns the canonical text glyph for t.
func Glyph(t Tile) rune {
	switch t {
	case Wall:
		return GlyphWall
	case Exit:
		return GlyphExit
	}
	return GlyphEmpty
}

func (g *Grid) index(c Coord) int {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: coordinate %v outside %dx%d maze", c, g.rows, g.cols))
	}
	return c.Row*g.cols + c.Col
}

// Ensure Grid implements View.
var _ View = (*Grid)(nil)
