package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/mazewalk/pkg/grid"
	"github.com/matzehuels/mazewalk/pkg/render/styles"
)

// DefaultCellSize is the edge length of one tile in SVG user units.
const DefaultCellSize = 10.0

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style    styles.Style
	cellSize float64
	title    string
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithCellSize(px float64) SVGOption  { return func(r *svgRenderer) { r.cellSize = px } }

// WithTitle adds a <title> element, shown as a tooltip by most viewers.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// RenderSVG draws every tile of the maze. st may be nil.
func RenderSVG(maze grid.View, st *grid.State, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	rows, cols := maze.Dims()
	w, h := float64(cols)*r.cellSize, float64(rows)*r.cellSize

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(r.title))
	}
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.style.Palette().Background)
	r.style.RenderDefs(&buf)

	for row := range rows {
		for col := range cols {
			at := grid.Coord{Row: row, Col: col}
			m := grid.Unvisited
			if st != nil {
				m = st.MarkOf(at)
			}
			r.style.RenderCell(&buf, styles.Cell{
				At:   at,
				Tile: maze.TileAt(at),
				Mark: m,
				X:    float64(col) * r.cellSize,
				Y:    float64(row) * r.cellSize,
				W:    r.cellSize,
				H:    r.cellSize,
			})
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}, cellSize: DefaultCellSize}
	for _, opt := range opts {
		opt(&r)
	}
	if r.cellSize <= 0 {
		r.cellSize = DefaultCellSize
	}
	return r
}
