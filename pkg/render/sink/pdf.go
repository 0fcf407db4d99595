package sink

import "github.com/matzehuels/mazewalk/pkg/grid"

// RenderPDF renders the maze as PDF via SVG conversion.
func RenderPDF(maze grid.View, st *grid.State, opts ...SVGOption) ([]byte, error) {
	return ToPDF(RenderSVG(maze, st, opts...))
}
