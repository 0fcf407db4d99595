// Package render turns the outcome of a search run into text, images and
// data.
//
// # Overview
//
// The search engine hands its observer the maze and the final visitation
// state exactly once per run. This package provides observers that capture
// or draw that state, and a single [Render] entry point that dispatches to
// the format-specific subpackages:
//
//   - [ascii]: plain text glyphs and lipgloss-coloured terminal output
//   - [sink]: SVG, JSON, and PNG/PDF through rsvg-convert
//   - [nodelink]: Graphviz diagram of the visited cells
//   - [styles]: colour palettes shared by all of the above
//
// # Capturing a run
//
//	rec := render.NewRecorder(search.BFS)
//	res, err := search.Solve(search.BFS, maze, rec)
//	snap := rec.Snapshot(res.Found)
//	svg, err := render.Render(snap, render.FormatSVG, render.Options{})
//
// [ascii]: github.com/matzehuels/mazewalk/pkg/render/ascii
// [sink]: github.com/matzehuels/mazewalk/pkg/render/sink
// [nodelink]: github.com/matzehuels/mazewalk/pkg/render/nodelink
// [styles]: github.com/matzehuels/mazewalk/pkg/render/styles
package render
