// Package ascii renders a maze and its visitation state as terminal text.
//
// [Text] produces plain glyphs that are stable enough to compare in tests
// and to paste into issues:
//
//	#  wall
//	X  exit
//	.  settled
//	o  frontier
//	   unvisited (space)
//
// [ANSI] draws the same picture with lipgloss colours taken from a
// [styles.Style] palette.
package ascii

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/mazewalk/pkg/grid"
	"github.com/matzehuels/mazewalk/pkg/render/styles"
)

// Cell glyphs.
const (
	GlyphWall      = '#'
	GlyphExit      = 'X'
	GlyphSettled   = '.'
	GlyphFrontier  = 'o'
	GlyphUnvisited = ' '
)

// Glyph returns the character for a tile with the given mark.
func Glyph(t grid.Tile, m grid.Mark) rune {
	switch {
	case t == grid.Wall:
		return GlyphWall
	case t == grid.Exit:
		return GlyphExit
	case m == grid.Settled:
		return GlyphSettled
	case m == grid.Frontier:
		return GlyphFrontier
	}
	return GlyphUnvisited
}

// Text renders one line per maze row. st may be nil, in which case every
// cell is drawn as unvisited.
func Text(maze grid.View, st *grid.State) string {
	rows, cols := maze.Dims()
	var b strings.Builder
	b.Grow(rows * (cols + 1))
	for r := range rows {
		for c := range cols {
			b.WriteRune(cellGlyph(maze, st, grid.Coord{Row: r, Col: c}))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cellGlyph(maze grid.View, st *grid.State, at grid.Coord) rune {
	m := grid.Unvisited
	if st != nil {
		m = st.MarkOf(at)
	}
	return Glyph(maze.TileAt(at), m)
}

// Option configures [ANSI].
type Option func(*ansiRenderer)

type ansiRenderer struct {
	style    styles.Style
	renderer *lipgloss.Renderer
	double   bool
}

// WithStyle selects the palette. The default is [styles.Simple].
func WithStyle(s styles.Style) Option { return func(r *ansiRenderer) { r.style = s } }

// WithRenderer renders through a specific lipgloss renderer, e.g. one bound
// to the output writer so colour support is detected for it.
func WithRenderer(lr *lipgloss.Renderer) Option { return func(r *ansiRenderer) { r.renderer = lr } }

// WithDoubleWidth draws every cell two columns wide, which looks closer to
// square in most terminal fonts.
func WithDoubleWidth() Option { return func(r *ansiRenderer) { r.double = true } }

// ANSI renders the maze as coloured blocks. Walls and exits keep their
// glyphs so the output stays readable without colour support.
func ANSI(maze grid.View, st *grid.State, opts ...Option) string {
	r := ansiRenderer{style: styles.Simple{}, renderer: lipgloss.DefaultRenderer()}
	for _, opt := range opts {
		opt(&r)
	}

	pal := r.style.Palette()
	cellStyle := func(fg string) lipgloss.Style {
		return r.renderer.NewStyle().Foreground(lipgloss.Color(fg))
	}
	byGlyph := map[rune]lipgloss.Style{
		GlyphWall:      cellStyle(pal.Wall).Background(lipgloss.Color(pal.Wall)),
		GlyphExit:      cellStyle(pal.Exit).Bold(true),
		GlyphSettled:   cellStyle(pal.Settled),
		GlyphFrontier:  cellStyle(pal.Frontier).Bold(true),
		GlyphUnvisited: cellStyle(pal.Unvisited),
	}

	rows, cols := maze.Dims()
	var b strings.Builder
	for row := range rows {
		// Batch runs of equal glyphs to keep escape sequences down.
		var run []rune
		flush := func() {
			if len(run) > 0 {
				b.WriteString(byGlyph[run[0]].Render(string(run)))
				run = run[:0]
			}
		}
		for col := range cols {
			g := cellGlyph(maze, st, grid.Coord{Row: row, Col: col})
			if len(run) > 0 && run[0] != g {
				flush()
			}
			run = append(run, g)
			if r.double {
				run = append(run, g)
			}
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}

// Legend returns a one-line key for the glyphs.
func Legend() string {
	return "# wall  X exit  . settled  o frontier"
}
