// Package sink renders a searched maze to file formats.
//
// # Formats
//
//   - [RenderSVG]: one square per tile, coloured by tile class and mark
//   - [RenderJSON]: dimensions, tile rows, mark rows and counts
//   - [RenderPNG], [RenderPDF]: the SVG converted with rsvg-convert
//
// All renderers take the read-only maze and the final [grid.State] of a
// run and are configured with functional options:
//
//	svg := sink.RenderSVG(maze, st, sink.WithStyle(styles.Blueprint{}), sink.WithCellSize(8))
//	png, err := sink.RenderPNG(maze, st, sink.WithScale(2))
//
// PNG and PDF need librsvg: brew install librsvg (macOS),
// apt install librsvg2-bin (Linux).
package sink
